package dataset

import (
	"fmt"
	"strings"
)

var tupleFormatting = strings.NewReplacer("'", "", "(", "", ")", "")

// RemoveColorFormatting turns a pseudo-tuple string such as
// "('red', 'dark blue')" into one value per element. Input made only of
// formatting yields a single empty value, never zero values.
func RemoveColorFormatting(value string) []string {
	return strings.Split(tupleFormatting.Replace(value), ", ")
}

// ApplyYearOverrides corrects the Year of the listed rows in place and
// returns how many overrides matched a row.
func ApplyYearOverrides(paintings []Painting, overrides []YearOverride) int {
	if len(overrides) == 0 {
		return 0
	}
	byRow := make(map[int]int, len(paintings))
	for i, p := range paintings {
		byRow[p.Row] = i
	}
	applied := 0
	for _, override := range overrides {
		idx, ok := byRow[override.Row]
		if !ok {
			continue
		}
		paintings[idx].Year = override.Year
		applied++
	}
	return applied
}

// ProcessData joins paintings with their hex rows by source row and explodes
// both color lists into long form. The k-th color of a painting is paired
// with the k-th hex code of the matching hex row; output keeps source row
// order, then list order. A painting or hex row without a partner is
// ErrRowMismatch.
func ProcessData(paintings []Painting, hexRows []HexRow) ([]ColorUse, error) {
	hexByRow := make(map[int]HexRow, len(hexRows))
	for _, row := range hexRows {
		hexByRow[row.Row] = row
	}

	matched := make(map[int]struct{}, len(paintings))
	uses := make([]ColorUse, 0, len(paintings)*4)
	for _, painting := range paintings {
		hex, ok := hexByRow[painting.Row]
		if !ok {
			return nil, fmt.Errorf("%w: row %d (%s) has no hex row", ErrRowMismatch, painting.Row, painting.Name)
		}
		matched[painting.Row] = struct{}{}

		colors := RemoveColorFormatting(painting.Colors)
		codes := RemoveColorFormatting(hex.Codes)
		if len(colors) != len(codes) {
			return nil, fmt.Errorf("%w: row %d (%s) has %d colors but %d hex codes",
				ErrRowMismatch, painting.Row, painting.Name, len(colors), len(codes))
		}

		for k, color := range colors {
			uses = append(uses, ColorUse{
				Painting: painting,
				Color:    color,
				HexName:  hex.Name,
				HexCode:  codes[k],
			})
		}
	}
	for _, row := range hexRows {
		if _, ok := matched[row.Row]; !ok {
			return nil, fmt.Errorf("%w: hex row %d (%s) has no painting", ErrRowMismatch, row.Row, row.Name)
		}
	}
	return uses, nil
}

// ListUniqueFromFile returns the distinct non-missing values of column that
// occur strictly more than minCount times, in first-appearance order.
func ListUniqueFromFile[R Record](rows []R, column string, minCount int) ([]string, error) {
	if len(rows) > 0 {
		if _, ok := rows[0].Value(column); !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownColumn, column)
		}
	}

	counts := make(map[string]int)
	var order []string
	for _, row := range rows {
		value, _ := row.Value(column)
		if IsMissing(value) {
			continue
		}
		if _, seen := counts[value]; !seen {
			order = append(order, value)
		}
		counts[value]++
	}

	unique := make([]string, 0, len(order))
	for _, value := range order {
		if counts[value] > minCount {
			unique = append(unique, value)
		}
	}
	return unique, nil
}

// FilterByColumn returns the rows whose column equals value.
func FilterByColumn[R Record](rows []R, column, value string) []R {
	var out []R
	for _, row := range rows {
		if v, ok := row.Value(column); ok && v == value {
			out = append(out, row)
		}
	}
	return out
}
