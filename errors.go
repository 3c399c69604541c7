package mole

import (
	"errors"
	"fmt"

	"github.com/moledata/mole/value"
)

var (
	// ErrNilColumn is returned when a required column is nil.
	ErrNilColumn = errors.New("column cannot be nil")

	// ErrNilTable is returned when a required table is nil.
	ErrNilTable = errors.New("table cannot be nil")

	// ErrNilFunc is returned when a required function is nil.
	ErrNilFunc = errors.New("function cannot be nil")

	// ErrNilCells is returned when a column is constructed over a nil cell slice.
	ErrNilCells = errors.New("cells cannot be nil")

	// ErrNoColumns is returned when a table would contain no columns.
	ErrNoColumns = errors.New("table requires at least one column")

	// ErrOverlappingLabels is returned when stacking operands share a label.
	ErrOverlappingLabels = errors.New("overlapping labels")
)

// ErrSizeMismatch indicates a violated length relationship between a cell
// sequence (or column) and an index.
type ErrSizeMismatch struct {
	Want int
	Got  int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("size mismatch: want %d, got %d", e.Want, e.Got)
}

// ErrLengthMismatch indicates a replacement slice whose length does not match
// the column count.
type ErrLengthMismatch struct {
	Want int
	Got  int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: want %d names, got %d", e.Want, e.Got)
}

// ErrLabelNotFound indicates a label-based lookup that missed.
type ErrLabelNotFound struct {
	Label value.Value
}

func (e *ErrLabelNotFound) Error() string {
	return fmt.Sprintf("label not found: %s", e.Label)
}

// ErrColumnNotFound indicates a column-name lookup that missed inside an
// operation that requires the column to exist.
type ErrColumnNotFound struct {
	Name string
}

func (e *ErrColumnNotFound) Error() string {
	return fmt.Sprintf("column not found: %q", e.Name)
}

// ErrDuplicateColumnName indicates two columns ending up with the same name.
type ErrDuplicateColumnName struct {
	Name string
}

func (e *ErrDuplicateColumnName) Error() string {
	return fmt.Sprintf("duplicate column name: %q", e.Name)
}

// ErrIndexMismatch indicates a column whose index is not structurally equal
// to the table's row index.
type ErrIndexMismatch struct {
	Position int
}

func (e *ErrIndexMismatch) Error() string {
	return fmt.Sprintf("column %d: index does not match the table row index", e.Position)
}
