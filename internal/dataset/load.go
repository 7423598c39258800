package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
)

var paintingColumns = []string{ColumnName, ColumnGenre, ColumnStyle, ColumnYear, ColumnColors}

// LoadPaintings parses the paintings CSV. Every column other than the five
// known ones is kept in Painting.Extra.
func LoadPaintings(r io.Reader) ([]Painting, error) {
	tbl, err := readTable(r)
	if err != nil {
		return nil, err
	}
	columns, err := tbl.require(paintingColumns...)
	if err != nil {
		return nil, err
	}

	extras := extraColumns(tbl.names, paintingColumns)
	extraValues := make(map[string][]string, len(extras))
	for _, name := range extras {
		extraValues[name] = tbl.columns[name]
	}

	rows := make([]Painting, tbl.rows)
	for i := range rows {
		p := Painting{
			Row:    i,
			Name:   columns[ColumnName][i],
			Genre:  columns[ColumnGenre][i],
			Style:  columns[ColumnStyle][i],
			Year:   columns[ColumnYear][i],
			Colors: columns[ColumnColors][i],
		}
		if len(extras) > 0 {
			p.Extra = make(map[string]string, len(extras))
			for _, name := range extras {
				p.Extra[name] = extraValues[name][i]
			}
		}
		rows[i] = p
	}
	return rows, nil
}

// LoadHexRows parses the hex CSV, which carries the same paintings as the
// paintings CSV with colors spelled as hex codes.
func LoadHexRows(r io.Reader) ([]HexRow, error) {
	tbl, err := readTable(r)
	if err != nil {
		return nil, err
	}
	columns, err := tbl.require(ColumnName, ColumnColors)
	if err != nil {
		return nil, err
	}

	rows := make([]HexRow, tbl.rows)
	for i := range rows {
		rows[i] = HexRow{
			Row:   i,
			Name:  columns[ColumnName][i],
			Codes: columns[ColumnColors][i],
		}
	}
	return rows, nil
}

// table is a CSV read into string columns keyed by header name.
type table struct {
	names   []string
	columns map[string][]string
	rows    int
}

// readTable loads every cell as a string. NaN detection is disabled so empty
// cells stay empty and IsMissing decides what counts as missing.
func readTable(r io.Reader) (*table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		if header, ok := headerOnly(data); ok {
			return emptyTable(header), nil
		}
		return nil, fmt.Errorf("read csv: %w", df.Err)
	}

	tbl := &table{names: df.Names(), columns: make(map[string][]string, df.Ncol()), rows: df.Nrow()}
	for _, name := range tbl.names {
		tbl.columns[name] = df.Col(name).Records()
	}
	return tbl, nil
}

// headerOnly reports the header of a CSV that has no data rows. gota cannot
// build a frame without rows, which is also why writeRecords bypasses it.
func headerOnly(data []byte) ([]string, bool) {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil || len(records) != 1 {
		return nil, false
	}
	return records[0], true
}

func emptyTable(header []string) *table {
	tbl := &table{names: header, columns: make(map[string][]string, len(header))}
	for _, name := range header {
		tbl.columns[name] = nil
	}
	return tbl
}

func (t *table) require(names ...string) (map[string][]string, error) {
	columns := make(map[string][]string, len(names))
	for _, name := range names {
		values, ok := t.columns[name]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
		columns[name] = values
	}
	return columns, nil
}

// extraColumns lists the unknown columns in file order, skipping the unnamed
// index column pandas writes first (gota names it X0).
func extraColumns(names, known []string) []string {
	skip := make(map[string]struct{}, len(known))
	for _, name := range known {
		skip[name] = struct{}{}
	}
	var extras []string
	for i, name := range names {
		if _, ok := skip[name]; ok {
			continue
		}
		if i == 0 && isIndexColumn(name) {
			continue
		}
		extras = append(extras, name)
	}
	return extras
}

func isIndexColumn(name string) bool {
	switch name {
	case "", "X0", "Unnamed: 0", "index":
		return true
	default:
		return false
	}
}
