// Package dataset loads the paintings and hex-code CSV files and reshapes
// them into the long form the charts aggregate over.
//
// Both files describe the same paintings row for row. The paintings file
// names each color ("('red', 'dark blue')") and the hex file spells the same
// list as hex codes. ProcessData joins the two by source row and explodes the
// pseudo-tuples so every output row carries exactly one color and the hex
// code at the same list position.
//
// CSV parsing and export go through the gota dataframe package with type
// detection disabled; every cell is a string and IsMissing decides what
// counts as a missing value.
package dataset
