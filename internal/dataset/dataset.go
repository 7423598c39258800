package dataset

import (
	"errors"
	"strings"
)

// Column names as they appear in the paintings and hex CSV files and in the
// exploded export.
const (
	ColumnName    = "Name"
	ColumnGenre   = "Genre"
	ColumnStyle   = "Style"
	ColumnYear    = "Year"
	ColumnColors  = "Colors"
	ColumnColor   = "Color"
	ColumnHexName = "Hex Name"
	ColumnHexCode = "Hex Code"
)

var (
	// ErrMissingColumn reports a CSV without one of the required headers.
	ErrMissingColumn = errors.New("missing required column")
	// ErrRowMismatch reports paintings and hex rows that do not line up.
	ErrRowMismatch = errors.New("paintings and hex codes do not correspond")
	// ErrUnknownColumn reports a lookup of a column no row carries.
	ErrUnknownColumn = errors.New("unknown column")
)

// Record is a row that can be addressed by column name. Painting and
// ColorUse both satisfy it so aggregations work on either shape.
type Record interface {
	SourceRow() int
	Value(column string) (string, bool)
}

// Painting is one row of the paintings CSV.
type Painting struct {
	Row    int
	Name   string
	Genre  string
	Style  string
	Year   string
	Colors string
	// Extra holds every column without a dedicated field.
	Extra map[string]string
}

// SourceRow returns the 0-based data row the painting was read from.
func (p Painting) SourceRow() int { return p.Row }

// Value returns the named column.
func (p Painting) Value(column string) (string, bool) {
	switch column {
	case ColumnName:
		return p.Name, true
	case ColumnGenre:
		return p.Genre, true
	case ColumnStyle:
		return p.Style, true
	case ColumnYear:
		return p.Year, true
	case ColumnColors:
		return p.Colors, true
	}
	value, ok := p.Extra[column]
	return value, ok
}

// HexRow is one row of the hex CSV: the same painting with its colors as
// hex codes.
type HexRow struct {
	Row   int
	Name  string
	Codes string
}

// ColorUse is one exploded long-form row: a painting paired with a single
// color and the hex code at the same list position.
type ColorUse struct {
	Painting
	Color   string
	HexName string
	HexCode string
}

// Value returns the named column, resolving the exploded columns first.
func (u ColorUse) Value(column string) (string, bool) {
	switch column {
	case ColumnColor:
		return u.Color, true
	case ColumnHexName:
		return u.HexName, true
	case ColumnHexCode:
		return u.HexCode, true
	}
	return u.Painting.Value(column)
}

// YearOverride replaces the Year of the painting at Row.
type YearOverride struct {
	Row  int
	Year string
}

// IsMissing reports whether value is an empty or NaN-like cell.
func IsMissing(value string) bool {
	switch strings.TrimSpace(value) {
	case "", "NaN", "nan", "NA", "<nil>":
		return true
	default:
		return false
	}
}
