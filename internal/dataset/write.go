package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/go-gota/gota/dataframe"
)

// WritePaintings exports paintings with the known columns first and any
// extra columns after them in name order.
func WritePaintings(w io.Writer, paintings []Painting) error {
	extras := extraKeys(paintings)
	header := append(append([]string{}, paintingColumns...), extras...)

	records := make([][]string, 0, len(paintings)+1)
	records = append(records, header)
	for _, p := range paintings {
		records = append(records, paintingRecord(p, extras))
	}
	return writeRecords(w, records)
}

// WriteColorUses exports the exploded long-form dataset. Colors keeps the
// raw pseudo-tuple; Color, Hex Name, and Hex Code hold the exploded values.
func WriteColorUses(w io.Writer, uses []ColorUse) error {
	painted := make([]Painting, len(uses))
	for i, use := range uses {
		painted[i] = use.Painting
	}
	extras := extraKeys(painted)
	header := append(append([]string{}, paintingColumns...), ColumnColor, ColumnHexName, ColumnHexCode)
	header = append(header, extras...)

	records := make([][]string, 0, len(uses)+1)
	records = append(records, header)
	for _, use := range uses {
		record := paintingRecord(use.Painting, nil)
		record = append(record, use.Color, use.HexName, use.HexCode)
		for _, key := range extras {
			record = append(record, use.Extra[key])
		}
		records = append(records, record)
	}
	return writeRecords(w, records)
}

func writeRecords(w io.Writer, records [][]string) error {
	if len(records) < 2 {
		// gota cannot build a frame without data rows; write the bare header.
		cw := csv.NewWriter(w)
		if err := cw.WriteAll(records); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
		return nil
	}
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return fmt.Errorf("build frame: %w", df.Err)
	}
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func paintingRecord(p Painting, extras []string) []string {
	record := []string{p.Name, p.Genre, p.Style, p.Year, p.Colors}
	for _, key := range extras {
		record = append(record, p.Extra[key])
	}
	return record
}

func extraKeys(paintings []Painting) []string {
	seen := make(map[string]struct{})
	for _, p := range paintings {
		for key := range p.Extra {
			seen[key] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
