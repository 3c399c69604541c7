package mole

import (
	"fmt"
	"iter"
	"strings"

	"github.com/moledata/mole/index"
	"github.com/moledata/mole/value"
)

// Cell is the explicit "no data" marker around a column element: a cell is
// either Some(v) or None. The shape follows database/sql.Null.
type Cell[V any] struct {
	Value V
	Valid bool
}

// Some returns a cell holding v.
func Some[V any](v V) Cell[V] { return Cell[V]{Value: v, Valid: true} }

// None returns an absent cell.
func None[V any]() Cell[V] { return Cell[V]{} }

// Column is an immutable, optionally named sequence of cells indexed by a
// sequence of labels. The number of cells always equals the index size.
//
// The element type V must be immutable, or the sharing performed by the
// transforming operations is unsound.
type Column[V any] struct {
	name  string
	index index.Index
	cells []Cell[V]
}

// NewColumn creates a column over idx with the given cells, in index order.
// The name may be "" for an unnamed column. The cell slice is copied and its
// length must equal idx.Size(); individual cells may be None.
func NewColumn[V any](name string, idx index.Index, cells []Cell[V]) (*Column[V], error) {
	if idx == nil {
		return nil, index.ErrNilIndex
	}
	if cells == nil {
		return nil, ErrNilCells
	}
	if err := checkName(name); err != nil {
		return nil, err
	}
	if len(cells) != idx.Size() {
		return nil, &ErrSizeMismatch{Want: idx.Size(), Got: len(cells)}
	}

	owned := make([]Cell[V], len(cells))
	copy(owned, cells)

	return &Column[V]{name: name, index: idx, cells: owned}, nil
}

// Name returns the name of the column, or "" if it has no name.
func (c *Column[V]) Name() string { return c.name }

// Size returns the number of rows in the column.
func (c *Column[V]) Size() int { return len(c.cells) }

// Index returns the index providing the labels of the column.
func (c *Column[V]) Index() index.Index { return c.index }

// ValueAt returns the cell at position pos.
func (c *Column[V]) ValueAt(pos int) (Cell[V], error) {
	if pos < 0 || pos >= len(c.cells) {
		return Cell[V]{}, &index.ErrOutOfRange{Pos: pos, Size: len(c.cells)}
	}
	return c.cells[pos], nil
}

// Lookup returns the cell at the given label. Unlike Index.PositionOf, a miss
// here is a failure: the caller named a label it expects to exist.
func (c *Column[V]) Lookup(label value.Value) (Cell[V], error) {
	pos, err := c.index.PositionOf(label)
	if err != nil {
		return Cell[V]{}, err
	}
	if pos < 0 {
		return Cell[V]{}, &ErrLabelNotFound{Label: label}
	}
	return c.cells[pos], nil
}

// Rename returns a column with the same index and cells under the given name
// ("" clears it), or the receiver if the name is unchanged.
func (c *Column[V]) Rename(newName string) (*Column[V], error) {
	if err := checkName(newName); err != nil {
		return nil, err
	}
	if newName == c.name {
		return c, nil
	}
	return &Column[V]{name: newName, index: c.index, cells: c.cells}, nil
}

// ChangeIndex returns a column with the same name and cells over newIndex.
// This is a structural swap only: newIndex must have exactly Size() labels.
// The receiver is returned when newIndex is structurally equal to the current
// index.
func (c *Column[V]) ChangeIndex(newIndex index.Index) (*Column[V], error) {
	if newIndex == nil {
		return nil, index.ErrNilIndex
	}
	if index.Equal(c.index, newIndex) {
		return c, nil
	}
	if newIndex.Size() != len(c.cells) {
		return nil, &ErrSizeMismatch{Want: len(c.cells), Got: newIndex.Size()}
	}
	return &Column[V]{name: c.name, index: newIndex, cells: c.cells}, nil
}

// Reindex rebuilds the column against newIndex: for each label of newIndex,
// in its order, the cell of the matching current label is carried over, and
// labels with no match produce absent cells. The result has newIndex.Size()
// rows regardless of the current size.
func (c *Column[V]) Reindex(newIndex index.Index) (*Column[V], error) {
	if newIndex == nil {
		return nil, index.ErrNilIndex
	}
	if c.index == newIndex {
		return c, nil
	}

	cells := make([]Cell[V], 0, newIndex.Size())
	for label := range newIndex.Labels() {
		pos, err := c.index.PositionOf(label)
		if err != nil {
			return nil, err
		}
		if pos >= 0 {
			cells = append(cells, c.cells[pos])
		} else {
			cells = append(cells, None[V]())
		}
	}

	return &Column[V]{name: c.name, index: newIndex, cells: cells}, nil
}

// Stack returns a column over the fusion of the two indices holding the cells
// of c followed by the cells of other. The two indices must share no label;
// the result keeps c's name.
func (c *Column[V]) Stack(other *Column[V]) (*Column[V], error) {
	if other == nil {
		return nil, ErrNilColumn
	}

	fused, err := index.Merge(c.index, other.index)
	if err != nil {
		return nil, err
	}
	if fused.Size() != c.Size()+other.Size() {
		return nil, ErrOverlappingLabels
	}

	cells := make([]Cell[V], 0, fused.Size())
	cells = append(cells, c.cells...)
	cells = append(cells, other.cells...)

	return &Column[V]{name: c.name, index: fused, cells: cells}, nil
}

// Cells returns a lazy iterator over the cells in index order.
func (c *Column[V]) Cells() iter.Seq[Cell[V]] {
	return func(yield func(Cell[V]) bool) {
		for _, cell := range c.cells {
			if !yield(cell) {
				return
			}
		}
	}
}

// Values returns a copy of the cell slice.
func (c *Column[V]) Values() []Cell[V] {
	out := make([]Cell[V], len(c.cells))
	copy(out, c.cells)
	return out
}

// MapValues transforms every cell of c with f, in index order, producing a
// column of a new element type with the same index and name. The mapper sees
// absent cells too and may produce or clear absence; the first error aborts
// the whole map.
//
// This is a package function because Go methods cannot introduce the target
// type parameter.
func MapValues[V, U any](c *Column[V], f func(Cell[V]) (Cell[U], error)) (*Column[U], error) {
	if c == nil {
		return nil, ErrNilColumn
	}
	if f == nil {
		return nil, ErrNilFunc
	}

	cells := make([]Cell[U], len(c.cells))
	for i, cell := range c.cells {
		u, err := f(cell)
		if err != nil {
			return nil, fmt.Errorf("map value at position %d: %w", i, err)
		}
		cells[i] = u
	}

	return &Column[U]{name: c.name, index: c.index, cells: cells}, nil
}

// checkName rejects names that are non-empty but all whitespace.
func checkName(name string) error {
	if name != "" && strings.TrimSpace(name) == "" {
		return index.ErrBlankName
	}
	return nil
}
