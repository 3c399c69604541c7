package mole

import (
	"fmt"
	"iter"

	"golang.org/x/sync/errgroup"

	"github.com/moledata/mole/index"
	"github.com/moledata/mole/value"
)

// Table is an immutable, ordered set of distinctly named columns sharing one
// row index. Tables, unlike indices and columns, have no name of their own.
type Table[V any] struct {
	rowIndex index.Index
	columns  []*Column[V]
}

// NewTable creates a table over idx with the given columns, in order.
//
// Every column's index must be structurally equal to idx. Unnamed columns are
// renamed to "Column_<position>"; when that default clashes with a name
// already taken, the suffix increments until free. Duplicate names, including
// those produced by auto-naming, are rejected.
func NewTable[V any](idx index.Index, columns []*Column[V]) (*Table[V], error) {
	if idx == nil {
		return nil, index.ErrNilIndex
	}
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	for i, col := range columns {
		if col == nil {
			return nil, fmt.Errorf("column %d: %w", i, ErrNilColumn)
		}
		if !index.Equal(col.Index(), idx) {
			return nil, &ErrIndexMismatch{Position: i}
		}
	}

	used := make(map[string]struct{}, len(columns))
	owned := make([]*Column[V], 0, len(columns))
	for i, col := range columns {
		name := col.Name()
		if name == "" {
			suffix := i
			for {
				name = fmt.Sprintf("Column_%d", suffix)
				if _, taken := used[name]; !taken {
					break
				}
				suffix++
			}
		}
		if _, taken := used[name]; taken {
			return nil, &ErrDuplicateColumnName{Name: name}
		}
		used[name] = struct{}{}

		if name != col.Name() {
			renamed, err := col.Rename(name)
			if err != nil {
				return nil, err
			}
			col = renamed
		}
		owned = append(owned, col)
	}

	return &Table[V]{rowIndex: idx, columns: owned}, nil
}

// Index returns the row index of the table.
func (t *Table[V]) Index() index.Index { return t.rowIndex }

// Size returns the number of rows in the table.
func (t *Table[V]) Size() int { return t.rowIndex.Size() }

// ColumnCount returns the number of columns in the table.
func (t *Table[V]) ColumnCount() int { return len(t.columns) }

// ColumnAt returns the column at position pos.
func (t *Table[V]) ColumnAt(pos int) (*Column[V], error) {
	if pos < 0 || pos >= len(t.columns) {
		return nil, &index.ErrOutOfRange{Pos: pos, Size: len(t.columns)}
	}
	return t.columns[pos], nil
}

// ColumnByName returns the column with the given name. A miss is a normal
// outcome, reported through the second return value.
func (t *Table[V]) ColumnByName(name string) (*Column[V], bool) {
	for _, col := range t.columns {
		if col.Name() == name {
			return col, true
		}
	}
	return nil, false
}

// ValueAt returns the cell at the given row and column positions.
func (t *Table[V]) ValueAt(row, col int) (Cell[V], error) {
	if row < 0 || row >= t.rowIndex.Size() {
		return Cell[V]{}, &index.ErrOutOfRange{Pos: row, Size: t.rowIndex.Size()}
	}
	column, err := t.ColumnAt(col)
	if err != nil {
		return Cell[V]{}, err
	}
	return column.ValueAt(row)
}

// Lookup returns the cell at the given row label and column name.
func (t *Table[V]) Lookup(rowLabel value.Value, columnName string) (Cell[V], error) {
	pos, err := t.rowIndex.PositionOf(rowLabel)
	if err != nil {
		return Cell[V]{}, err
	}
	if pos < 0 {
		return Cell[V]{}, &ErrLabelNotFound{Label: rowLabel}
	}
	col, ok := t.ColumnByName(columnName)
	if !ok {
		return Cell[V]{}, &ErrColumnNotFound{Name: columnName}
	}
	return col.ValueAt(pos)
}

// ChangeIndex returns a table with the same columns over newIndex, which must
// have the same size as the current row index. The receiver is returned when
// newIndex is structurally equal to the current one.
func (t *Table[V]) ChangeIndex(newIndex index.Index) (*Table[V], error) {
	if newIndex == nil {
		return nil, index.ErrNilIndex
	}
	if index.Equal(t.rowIndex, newIndex) {
		return t, nil
	}
	if newIndex.Size() != t.rowIndex.Size() {
		return nil, &ErrSizeMismatch{Want: t.rowIndex.Size(), Got: newIndex.Size()}
	}

	columns := make([]*Column[V], len(t.columns))
	for i, col := range t.columns {
		swapped, err := col.ChangeIndex(newIndex)
		if err != nil {
			return nil, err
		}
		columns[i] = swapped
	}
	return NewTable(newIndex, columns)
}

// RenameColumns returns a table with columns renamed slot by slot. The slice
// must have one entry per column; "" keeps the current name, and the non-""
// entries must be non-blank and pairwise distinct. The receiver is returned
// when no column actually changes name.
func (t *Table[V]) RenameColumns(newNames []string) (*Table[V], error) {
	if len(newNames) != len(t.columns) {
		return nil, &ErrLengthMismatch{Want: len(t.columns), Got: len(newNames)}
	}

	changed := false
	seen := make(map[string]struct{}, len(newNames))
	for i, name := range newNames {
		if name == "" {
			continue
		}
		if err := checkName(name); err != nil {
			return nil, err
		}
		if _, dup := seen[name]; dup {
			return nil, &ErrDuplicateColumnName{Name: name}
		}
		seen[name] = struct{}{}
		if name != t.columns[i].Name() {
			changed = true
		}
	}
	if !changed {
		return t, nil
	}

	columns := make([]*Column[V], len(t.columns))
	for i, col := range t.columns {
		if newNames[i] == "" || newNames[i] == col.Name() {
			columns[i] = col
			continue
		}
		renamed, err := col.Rename(newNames[i])
		if err != nil {
			return nil, err
		}
		columns[i] = renamed
	}
	return NewTable(t.rowIndex, columns)
}

// Flank returns the horizontal union of t and other: the two row indices are
// fused, every column of both tables is reindexed onto the fusion, and the
// result holds t's columns first, then other's. Column names across the two
// tables must be disjoint.
func (t *Table[V]) Flank(other *Table[V]) (*Table[V], error) {
	if other == nil {
		return nil, ErrNilTable
	}

	names := make(map[string]struct{}, len(t.columns)+len(other.columns))
	for _, col := range t.columns {
		names[col.Name()] = struct{}{}
	}
	for _, col := range other.columns {
		if _, dup := names[col.Name()]; dup {
			return nil, &ErrDuplicateColumnName{Name: col.Name()}
		}
		names[col.Name()] = struct{}{}
	}

	fused, err := index.Merge(t.rowIndex, other.rowIndex)
	if err != nil {
		return nil, err
	}

	columns := make([]*Column[V], 0, len(t.columns)+len(other.columns))
	for _, col := range t.columns {
		reindexed, err := col.Reindex(fused)
		if err != nil {
			return nil, err
		}
		columns = append(columns, reindexed)
	}
	for _, col := range other.columns {
		reindexed, err := col.Reindex(fused)
		if err != nil {
			return nil, err
		}
		columns = append(columns, reindexed)
	}
	return NewTable(fused, columns)
}

// Stack returns the vertical union of t and other: the fused row index holds
// t's rows first, then other's, and the row-label sets must be disjoint. The
// column-name set of the result is the union, in insertion order (t's names
// first). A column present in both tables is stacked; a column present in
// only one is reindexed onto the fusion, filling the other table's rows with
// absent cells.
func (t *Table[V]) Stack(other *Table[V]) (*Table[V], error) {
	if other == nil {
		return nil, ErrNilTable
	}

	fused, err := index.Merge(t.rowIndex, other.rowIndex)
	if err != nil {
		return nil, err
	}
	if fused.Size() != t.rowIndex.Size()+other.rowIndex.Size() {
		return nil, ErrOverlappingLabels
	}

	names := make([]string, 0, len(t.columns)+len(other.columns))
	seen := make(map[string]struct{}, cap(names))
	for _, col := range t.columns {
		names = append(names, col.Name())
		seen[col.Name()] = struct{}{}
	}
	for _, col := range other.columns {
		if _, ok := seen[col.Name()]; !ok {
			names = append(names, col.Name())
			seen[col.Name()] = struct{}{}
		}
	}

	columns := make([]*Column[V], 0, len(names))
	for _, name := range names {
		mine, haveMine := t.ColumnByName(name)
		theirs, haveTheirs := other.ColumnByName(name)
		switch {
		case haveMine && haveTheirs:
			// Stacking yields exactly the fused row order because the two
			// tables already partition the fused row space.
			stacked, err := mine.Stack(theirs)
			if err != nil {
				return nil, err
			}
			columns = append(columns, stacked)
		case haveMine:
			reindexed, err := mine.Reindex(fused)
			if err != nil {
				return nil, err
			}
			columns = append(columns, reindexed)
		default:
			reindexed, err := theirs.Reindex(fused)
			if err != nil {
				return nil, err
			}
			columns = append(columns, reindexed)
		}
	}
	return NewTable(fused, columns)
}

// Columns returns a lazy iterator over the columns in order.
func (t *Table[V]) Columns() iter.Seq[*Column[V]] {
	return func(yield func(*Column[V]) bool) {
		for _, col := range t.columns {
			if !yield(col) {
				return
			}
		}
	}
}

// MapTable transforms every cell of every column of t with f, preserving the
// row index and the column names.
//
// Columns are independent, so they are mapped in parallel; the first error
// cancels the remaining work and is returned.
func MapTable[V, U any](t *Table[V], f func(Cell[V]) (Cell[U], error)) (*Table[U], error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if f == nil {
		return nil, ErrNilFunc
	}

	columns := make([]*Column[U], len(t.columns))
	g := new(errgroup.Group)
	for i, col := range t.columns {
		g.Go(func() error {
			mapped, err := MapValues(col, f)
			if err != nil {
				return fmt.Errorf("column %q: %w", col.Name(), err)
			}
			columns[i] = mapped
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return NewTable(t.rowIndex, columns)
}

// MapColumns transforms every column of t with f, in order. The mapper must
// return a non-nil column; the constructor re-validates the shared-index and
// distinct-name invariants, so a mapper that changes a column's row index or
// introduces a name collision makes the whole operation fail.
func MapColumns[V, U any](t *Table[V], f func(*Column[V]) (*Column[U], error)) (*Table[U], error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if f == nil {
		return nil, ErrNilFunc
	}

	columns := make([]*Column[U], len(t.columns))
	for i, col := range t.columns {
		mapped, err := f(col)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.Name(), err)
		}
		if mapped == nil {
			return nil, fmt.Errorf("column %q: %w", col.Name(), ErrNilColumn)
		}
		columns[i] = mapped
	}
	return NewTable(t.rowIndex, columns)
}
