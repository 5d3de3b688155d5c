package model

import "fmt"

// DataFormatError reports a malformed row or missing column in the input file.
// Loading fails fast on the first bad row rather than silently coercing values.
type DataFormatError struct {
	Line   int    // 1-based line number in the input, 0 when not row-specific
	Column string // offending column name, "" when not column-specific
	Reason string
}

func (e *DataFormatError) Error() string {
	switch {
	case e.Line > 0 && e.Column != "":
		return fmt.Sprintf("data format: line %d, column %q: %s", e.Line, e.Column, e.Reason)
	case e.Line > 0:
		return fmt.Sprintf("data format: line %d: %s", e.Line, e.Reason)
	default:
		return fmt.Sprintf("data format: %s", e.Reason)
	}
}

// SymbolNotFoundError reports a symbol absent from the loaded dataset.
type SymbolNotFoundError struct {
	Symbol string
}

func (e *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("symbol %q not found in dataset", e.Symbol)
}

// InsufficientDataError reports a series shorter than a computation's
// minimum required window.
type InsufficientDataError struct {
	Op   string // computation that failed, e.g. "SMA_20"
	Need int    // minimum number of bars required
	Have int    // bars available
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: insufficient data: need %d bars, have %d", e.Op, e.Need, e.Have)
}
