package dataset_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"vangogh/internal/dataset"
)

const paintingsCSV = `,Name,Genre,Style,Year,Colors,Artist
0,Starry Night,landscape,Post-Impressionism,1889,"('blue', 'yellow')",Vincent van Gogh
1,Sunflowers,still life,Post-Impressionism,1888,"('yellow', 'green', 'brown')",Vincent van Gogh
2,Potato Eaters,genre painting,Realism,,"('brown',)",Vincent van Gogh
`

const hexCSV = `Name,Colors
Starry Night,"('#0000ff', '#ffff00')"
Sunflowers,"('#ffff00', '#00ff00', '#8b4513')"
Potato Eaters,"('#8b4513',)"
`

func mustLoad(t *testing.T) ([]dataset.Painting, []dataset.HexRow) {
	t.Helper()
	paintings, err := dataset.LoadPaintings(strings.NewReader(paintingsCSV))
	if err != nil {
		t.Fatalf("LoadPaintings: %v", err)
	}
	hexRows, err := dataset.LoadHexRows(strings.NewReader(hexCSV))
	if err != nil {
		t.Fatalf("LoadHexRows: %v", err)
	}
	return paintings, hexRows
}

func TestLoadPaintings(t *testing.T) {
	paintings, _ := mustLoad(t)
	if len(paintings) != 3 {
		t.Fatalf("expected 3 paintings, got %d", len(paintings))
	}
	first := paintings[0]
	if first.Row != 0 || first.Name != "Starry Night" || first.Genre != "landscape" || first.Year != "1889" {
		t.Fatalf("unexpected first painting: %+v", first)
	}
	if first.Colors != "('blue', 'yellow')" {
		t.Fatalf("unexpected raw colors: %q", first.Colors)
	}
	if first.Extra["Artist"] != "Vincent van Gogh" {
		t.Fatalf("expected Artist extra column, got %+v", first.Extra)
	}
	if len(first.Extra) != 1 {
		t.Fatalf("expected pandas index column to be skipped, got %+v", first.Extra)
	}
	if paintings[2].Year != "" {
		t.Fatalf("expected empty year to stay empty, got %q", paintings[2].Year)
	}
}

func TestLoadPaintingsMissingColumn(t *testing.T) {
	_, err := dataset.LoadPaintings(strings.NewReader("Name,Colors\nA,\"('red',)\"\n"))
	if !errors.Is(err, dataset.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
	if !strings.Contains(err.Error(), "Genre") {
		t.Fatalf("expected missing column name in error, got %v", err)
	}
}

func TestRemoveColorFormatting(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"('red', 'dark blue', 'ochre')", []string{"red", "dark blue", "ochre"}},
		{"('#8b4513',)", []string{"#8b4513,"}},
		{"(", []string{""}},
		{")", []string{""}},
		{"plain", []string{"plain"}},
	}
	for _, tc := range cases {
		if got := dataset.RemoveColorFormatting(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("RemoveColorFormatting(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestProcessDataExplodesAndPairsPositionally(t *testing.T) {
	paintings, hexRows := mustLoad(t)

	uses, err := dataset.ProcessData(paintings, hexRows)
	if err != nil {
		t.Fatalf("ProcessData: %v", err)
	}
	if len(uses) != 6 {
		t.Fatalf("expected 6 exploded rows, got %d", len(uses))
	}

	want := []struct{ name, color, hex string }{
		{"Starry Night", "blue", "#0000ff"},
		{"Starry Night", "yellow", "#ffff00"},
		{"Sunflowers", "yellow", "#ffff00"},
		{"Sunflowers", "green", "#00ff00"},
		{"Sunflowers", "brown", "#8b4513"},
		{"Potato Eaters", "brown,", "#8b4513,"},
	}
	for i, w := range want {
		got := uses[i]
		if got.Name != w.name || got.Color != w.color || got.HexCode != w.hex {
			t.Fatalf("row %d: got (%s, %s, %s), want %+v", i, got.Name, got.Color, got.HexCode, w)
		}
		if got.HexName != w.name {
			t.Fatalf("row %d: expected hex name %q, got %q", i, w.name, got.HexName)
		}
	}
	if v, _ := uses[0].Value(dataset.ColumnColors); v != "('blue', 'yellow')" {
		t.Fatalf("expected raw Colors column to survive, got %q", v)
	}
}

func TestProcessDataRejectsMismatchedLists(t *testing.T) {
	paintings, hexRows := mustLoad(t)
	hexRows[1].Codes = "('#ffff00', '#00ff00')"

	_, err := dataset.ProcessData(paintings, hexRows)
	if !errors.Is(err, dataset.ErrRowMismatch) {
		t.Fatalf("expected ErrRowMismatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "row 1") {
		t.Fatalf("expected row index in error, got %v", err)
	}
}

func TestProcessDataRejectsMissingHexRow(t *testing.T) {
	paintings, hexRows := mustLoad(t)
	_, err := dataset.ProcessData(paintings, hexRows[:2])
	if !errors.Is(err, dataset.ErrRowMismatch) {
		t.Fatalf("expected ErrRowMismatch, got %v", err)
	}
}

func TestProcessDataRejectsExtraHexRow(t *testing.T) {
	paintings, hexRows := mustLoad(t)
	_, err := dataset.ProcessData(paintings[:2], hexRows)
	if !errors.Is(err, dataset.ErrRowMismatch) {
		t.Fatalf("expected ErrRowMismatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "hex row 2") {
		t.Fatalf("expected unmatched hex row in error, got %v", err)
	}
}

func TestApplyYearOverrides(t *testing.T) {
	paintings, _ := mustLoad(t)
	applied := dataset.ApplyYearOverrides(paintings, []dataset.YearOverride{
		{Row: 2, Year: "1885"},
		{Row: 1618, Year: "1888"},
	})
	if applied != 1 {
		t.Fatalf("expected one override to apply, got %d", applied)
	}
	if paintings[2].Year != "1885" {
		t.Fatalf("expected year override, got %q", paintings[2].Year)
	}
}

func TestListUniqueFromFile(t *testing.T) {
	rows := []dataset.Painting{
		{Row: 0, Genre: "portrait"},
		{Row: 1, Genre: "landscape"},
		{Row: 2, Genre: "portrait"},
		{Row: 3, Genre: "still life"},
		{Row: 4, Genre: "landscape"},
		{Row: 5, Genre: "portrait"},
		{Row: 6, Genre: ""},
		{Row: 7, Genre: ""},
		{Row: 8, Genre: ""},
	}

	got, err := dataset.ListUniqueFromFile(rows, dataset.ColumnGenre, 1)
	if err != nil {
		t.Fatalf("ListUniqueFromFile: %v", err)
	}
	if want := []string{"portrait", "landscape"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	got, err = dataset.ListUniqueFromFile(rows, dataset.ColumnGenre, 2)
	if err != nil {
		t.Fatalf("ListUniqueFromFile: %v", err)
	}
	if want := []string{"portrait"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("strictly-greater threshold: got %v, want %v", got, want)
	}

	if _, err := dataset.ListUniqueFromFile(rows, "Medium", 0); !errors.Is(err, dataset.ErrUnknownColumn) {
		t.Fatalf("expected ErrUnknownColumn, got %v", err)
	}
}

func TestFilterByColumnOnColorUses(t *testing.T) {
	paintings, hexRows := mustLoad(t)
	uses, err := dataset.ProcessData(paintings, hexRows)
	if err != nil {
		t.Fatalf("ProcessData: %v", err)
	}
	still := dataset.FilterByColumn(uses, dataset.ColumnGenre, "still life")
	if len(still) != 3 {
		t.Fatalf("expected 3 still life rows, got %d", len(still))
	}
}

func TestWriteColorUsesRoundTripsThroughLoader(t *testing.T) {
	paintings, hexRows := mustLoad(t)
	uses, err := dataset.ProcessData(paintings, hexRows)
	if err != nil {
		t.Fatalf("ProcessData: %v", err)
	}

	var buf bytes.Buffer
	if err := dataset.WriteColorUses(&buf, uses); err != nil {
		t.Fatalf("WriteColorUses: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected header plus 6 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Name,Genre,Style,Year,Colors,Color,Hex Name,Hex Code,Artist" {
		t.Fatalf("unexpected header: %q", lines[0])
	}

	reloaded, err := dataset.LoadPaintings(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("reload exported csv: %v", err)
	}
	if len(reloaded) != 6 {
		t.Fatalf("expected 6 reloaded rows, got %d", len(reloaded))
	}
	if reloaded[4].Extra[dataset.ColumnColor] != "brown" {
		t.Fatalf("expected exploded color column, got %+v", reloaded[4].Extra)
	}
}

func TestWritePaintingsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := dataset.WritePaintings(&buf, nil); err != nil {
		t.Fatalf("WritePaintings: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "Name,Genre,Style,Year,Colors" {
		t.Fatalf("unexpected header-only output: %q", buf.String())
	}
}

func TestEmptyExportsLoadBack(t *testing.T) {
	var paintings bytes.Buffer
	if err := dataset.WritePaintings(&paintings, nil); err != nil {
		t.Fatalf("WritePaintings: %v", err)
	}
	loaded, err := dataset.LoadPaintings(&paintings)
	if err != nil {
		t.Fatalf("LoadPaintings on header-only csv: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected no paintings, got %+v", loaded)
	}

	var uses bytes.Buffer
	if err := dataset.WriteColorUses(&uses, nil); err != nil {
		t.Fatalf("WriteColorUses: %v", err)
	}
	reloaded, err := dataset.LoadPaintings(&uses)
	if err != nil {
		t.Fatalf("LoadPaintings on exploded header: %v", err)
	}
	if len(reloaded) != 0 {
		t.Fatalf("expected no rows, got %+v", reloaded)
	}

	hexRows, err := dataset.LoadHexRows(strings.NewReader("Name,Colors\n"))
	if err != nil || len(hexRows) != 0 {
		t.Fatalf("expected empty hex rows, got %+v err=%v", hexRows, err)
	}
	joined, err := dataset.ProcessData(loaded, hexRows)
	if err != nil || len(joined) != 0 {
		t.Fatalf("expected empty join, got %+v err=%v", joined, err)
	}
}

func TestHeaderOnlyStillRequiresColumns(t *testing.T) {
	_, err := dataset.LoadPaintings(strings.NewReader("Name,Genre\n"))
	if !errors.Is(err, dataset.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
}

func TestIsMissing(t *testing.T) {
	for _, v := range []string{"", " ", "NaN", "nan", "NA"} {
		if !dataset.IsMissing(v) {
			t.Errorf("expected %q to be missing", v)
		}
	}
	for _, v := range []string{"0", "red", "1888"} {
		if dataset.IsMissing(v) {
			t.Errorf("expected %q to be present", v)
		}
	}
}
