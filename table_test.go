package mole

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moledata/mole/index"
	"github.com/moledata/mole/value"
)

func mustTable(t *testing.T, idx index.Index, columns ...*Column[value.Value]) *Table[value.Value] {
	t.Helper()
	tbl, err := NewTable(idx, columns)
	require.NoError(t, err)
	return tbl
}

func columnNames[V any](t *Table[V]) []string {
	names := make([]string, 0, t.ColumnCount())
	for col := range t.Columns() {
		names = append(names, col.Name())
	}
	return names
}

func TestNewTable(t *testing.T) {
	idx := stringIndex(t, "a", "b")

	t.Run("auto-names unnamed columns", func(t *testing.T) {
		tbl := mustTable(t, idx,
			mustColumn(t, "", idx, intCells(1, 2)),
			mustColumn(t, "", idx, intCells(3, 4)),
		)
		assert.Equal(t, []string{"Column_0", "Column_1"}, columnNames(tbl))
	})

	t.Run("default name collision increments the suffix", func(t *testing.T) {
		tbl := mustTable(t, idx,
			mustColumn(t, "Column_1", idx, intCells(1, 2)),
			mustColumn(t, "", idx, intCells(3, 4)),
		)
		assert.Equal(t, []string{"Column_1", "Column_2"}, columnNames(tbl))
	})

	t.Run("duplicate names", func(t *testing.T) {
		_, err := NewTable(idx, []*Column[value.Value]{
			mustColumn(t, "x", idx, intCells(1, 2)),
			mustColumn(t, "x", idx, intCells(3, 4)),
		})
		var dup *ErrDuplicateColumnName
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "x", dup.Name)
	})

	t.Run("index mismatch", func(t *testing.T) {
		_, err := NewTable(idx, []*Column[value.Value]{
			mustColumn(t, "x", stringIndex(t, "p", "q"), intCells(1, 2)),
		})
		var im *ErrIndexMismatch
		require.ErrorAs(t, err, &im)
		assert.Equal(t, 0, im.Position)
	})

	t.Run("structurally equal index is accepted", func(t *testing.T) {
		num, err := index.NewNumeric("", 0, 2, 1)
		require.NoError(t, err)
		arr, err := index.NewArray("", []value.Value{value.Int(0), value.Int(1)})
		require.NoError(t, err)
		tbl := mustTable(t, num, mustColumn(t, "x", arr, intCells(1, 2)))
		assert.Equal(t, 2, tbl.Size())
	})

	t.Run("no columns", func(t *testing.T) {
		_, err := NewTable[value.Value](idx, nil)
		assert.ErrorIs(t, err, ErrNoColumns)
	})

	t.Run("nil index", func(t *testing.T) {
		_, err := NewTable(nil, []*Column[value.Value]{mustColumn(t, "x", idx, intCells(1, 2))})
		assert.ErrorIs(t, err, index.ErrNilIndex)
	})
}

func TestTableReads(t *testing.T) {
	idx := stringIndex(t, "a", "b")
	tbl := mustTable(t, idx,
		mustColumn(t, "A", idx, intCells(1, 2)),
		mustColumn(t, "B", idx, intCells(3, 4)),
	)

	t.Run("ColumnAt", func(t *testing.T) {
		col, err := tbl.ColumnAt(1)
		require.NoError(t, err)
		assert.Equal(t, "B", col.Name())

		_, err = tbl.ColumnAt(2)
		var oor *index.ErrOutOfRange
		assert.ErrorAs(t, err, &oor)
	})

	t.Run("ColumnByName", func(t *testing.T) {
		col, ok := tbl.ColumnByName("A")
		require.True(t, ok)
		assert.Equal(t, "A", col.Name())

		_, ok = tbl.ColumnByName("missing")
		assert.False(t, ok)
	})

	t.Run("ValueAt", func(t *testing.T) {
		cell, err := tbl.ValueAt(1, 0)
		require.NoError(t, err)
		assert.True(t, cell.Value.Equal(value.Int(2)))

		_, err = tbl.ValueAt(2, 0)
		var oor *index.ErrOutOfRange
		assert.ErrorAs(t, err, &oor)
	})

	t.Run("Lookup", func(t *testing.T) {
		cell, err := tbl.Lookup(value.String("b"), "B")
		require.NoError(t, err)
		assert.True(t, cell.Value.Equal(value.Int(4)))

		_, err = tbl.Lookup(value.String("z"), "B")
		var lnf *ErrLabelNotFound
		assert.ErrorAs(t, err, &lnf)

		_, err = tbl.Lookup(value.String("a"), "missing")
		var cnf *ErrColumnNotFound
		assert.ErrorAs(t, err, &cnf)
	})
}

func TestTableChangeIndex(t *testing.T) {
	idx := stringIndex(t, "a", "b")
	tbl := mustTable(t, idx, mustColumn(t, "A", idx, intCells(1, 2)))

	t.Run("swap", func(t *testing.T) {
		swapped, err := tbl.ChangeIndex(stringIndex(t, "x", "y"))
		require.NoError(t, err)
		cell, err := swapped.Lookup(value.String("y"), "A")
		require.NoError(t, err)
		assert.True(t, cell.Value.Equal(value.Int(2)))
	})

	t.Run("identity", func(t *testing.T) {
		same, err := tbl.ChangeIndex(stringIndex(t, "a", "b"))
		require.NoError(t, err)
		assert.Same(t, tbl, same)
	})

	t.Run("size mismatch", func(t *testing.T) {
		_, err := tbl.ChangeIndex(stringIndex(t, "x"))
		var sm *ErrSizeMismatch
		assert.ErrorAs(t, err, &sm)
	})
}

func TestTableRenameColumns(t *testing.T) {
	idx := stringIndex(t, "a")
	tbl := mustTable(t, idx,
		mustColumn(t, "A", idx, intCells(1)),
		mustColumn(t, "B", idx, intCells(2)),
	)

	t.Run("rename with keep slot", func(t *testing.T) {
		renamed, err := tbl.RenameColumns([]string{"", "Z"})
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "Z"}, columnNames(renamed))
	})

	t.Run("identity when nothing changes", func(t *testing.T) {
		same, err := tbl.RenameColumns([]string{"", "B"})
		require.NoError(t, err)
		assert.Same(t, tbl, same)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := tbl.RenameColumns([]string{"X"})
		var lm *ErrLengthMismatch
		assert.ErrorAs(t, err, &lm)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := tbl.RenameColumns([]string{" ", "Z"})
		assert.ErrorIs(t, err, index.ErrBlankName)
	})

	t.Run("duplicate names", func(t *testing.T) {
		_, err := tbl.RenameColumns([]string{"Z", "Z"})
		var dup *ErrDuplicateColumnName
		assert.ErrorAs(t, err, &dup)
	})
}

func TestTableFlank(t *testing.T) {
	left := func() *Table[value.Value] {
		idx := stringIndex(t, "a", "b", "c")
		return mustTable(t, idx,
			mustColumn(t, "A", idx, intCells(1, 2, 3)),
			mustColumn(t, "B", idx, intCells(4, 5, 6)),
		)
	}()
	right := func() *Table[value.Value] {
		idx := stringIndex(t, "b", "c", "d")
		return mustTable(t, idx,
			mustColumn(t, "C", idx, intCells(7, 8, 9)),
			mustColumn(t, "D", idx, intCells(10, 11, 12)),
		)
	}()

	wide, err := left.Flank(right)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, columnNames(wide))
	wantRows := []value.Value{value.String("a"), value.String("b"), value.String("c"), value.String("d")}
	var gotRows []value.Value
	for l := range wide.Index().Labels() {
		gotRows = append(gotRows, l)
	}
	assert.Equal(t, wantRows, gotRows)

	// Row "a" exists only on the left: C and D are absent there.
	for _, name := range []string{"C", "D"} {
		cell, err := wide.Lookup(value.String("a"), name)
		require.NoError(t, err)
		assert.False(t, cell.Valid)
	}
	// Row "d" exists only on the right: A and B are absent there.
	for _, name := range []string{"A", "B"} {
		cell, err := wide.Lookup(value.String("d"), name)
		require.NoError(t, err)
		assert.False(t, cell.Valid)
	}
	// Shared rows carry both sides' values.
	cell, err := wide.Lookup(value.String("b"), "C")
	require.NoError(t, err)
	assert.True(t, cell.Value.Equal(value.Int(7)))

	t.Run("duplicate column name", func(t *testing.T) {
		idx := stringIndex(t, "x")
		clash := mustTable(t, idx, mustColumn(t, "A", idx, intCells(0)))
		_, err := left.Flank(clash)
		var dup *ErrDuplicateColumnName
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "A", dup.Name)
	})
}

func TestTableStack(t *testing.T) {
	top := func() *Table[value.Value] {
		idx := stringIndex(t, "a", "b")
		return mustTable(t, idx,
			mustColumn(t, "A", idx, intCells(1, 2)),
			mustColumn(t, "B", idx, intCells(3, 4)),
		)
	}()
	bottom := func() *Table[value.Value] {
		idx := stringIndex(t, "c", "d")
		return mustTable(t, idx,
			mustColumn(t, "B", idx, intCells(5, 6)),
			mustColumn(t, "C", idx, intCells(7, 8)),
		)
	}()

	tall, err := top.Stack(bottom)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, columnNames(tall))
	assert.Equal(t, 4, tall.Size())

	// B is the true concatenation of both tables' values in row order.
	b, ok := tall.ColumnByName("B")
	require.True(t, ok)
	assert.Equal(t, intCells(3, 4, 5, 6), b.Values())

	// A is absent on bottom's rows, C on top's.
	a, ok := tall.ColumnByName("A")
	require.True(t, ok)
	assert.Equal(t, []Cell[value.Value]{
		Some(value.Int(1)), Some(value.Int(2)), None[value.Value](), None[value.Value](),
	}, a.Values())

	c, ok := tall.ColumnByName("C")
	require.True(t, ok)
	assert.Equal(t, []Cell[value.Value]{
		None[value.Value](), None[value.Value](), Some(value.Int(7)), Some(value.Int(8)),
	}, c.Values())

	t.Run("overlapping row labels", func(t *testing.T) {
		idx := stringIndex(t, "b", "z")
		clash := mustTable(t, idx, mustColumn(t, "X", idx, intCells(0, 0)))
		_, err := top.Stack(clash)
		assert.ErrorIs(t, err, ErrOverlappingLabels)
	})
}

func TestMapTable(t *testing.T) {
	idx := stringIndex(t, "a", "b")
	tbl := mustTable(t, idx,
		mustColumn(t, "A", idx, intCells(1, 2)),
		mustColumn(t, "B", idx, []Cell[value.Value]{Some(value.Int(3)), None[value.Value]()}),
	)

	t.Run("maps every column", func(t *testing.T) {
		doubled, err := MapTable(tbl, func(c Cell[value.Value]) (Cell[value.Value], error) {
			if !c.Valid {
				return None[value.Value](), nil
			}
			v, _ := c.Value.AsInt64()
			return Some(value.Int(2 * v)), nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, columnNames(doubled))
		assert.Same(t, tbl.Index(), doubled.Index())

		b, _ := doubled.ColumnByName("B")
		assert.Equal(t, []Cell[value.Value]{Some(value.Int(6)), None[value.Value]()}, b.Values())
	})

	t.Run("propagates mapper errors", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := MapTable(tbl, func(c Cell[value.Value]) (Cell[value.Value], error) {
			return Cell[value.Value]{}, boom
		})
		assert.ErrorIs(t, err, boom)
	})
}

func TestMapColumns(t *testing.T) {
	idx := stringIndex(t, "a", "b")
	tbl := mustTable(t, idx,
		mustColumn(t, "A", idx, intCells(1, 2)),
		mustColumn(t, "B", idx, intCells(3, 4)),
	)

	t.Run("per-column transform", func(t *testing.T) {
		out, err := MapColumns(tbl, func(c *Column[value.Value]) (*Column[value.Value], error) {
			return c.Rename(c.Name() + "_v2")
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"A_v2", "B_v2"}, columnNames(out))
	})

	t.Run("nil result is an error", func(t *testing.T) {
		_, err := MapColumns(tbl, func(c *Column[value.Value]) (*Column[value.Value], error) {
			return nil, nil
		})
		assert.ErrorIs(t, err, ErrNilColumn)
	})

	t.Run("changed row index fails table validation", func(t *testing.T) {
		other := stringIndex(t, "x", "y")
		_, err := MapColumns(tbl, func(c *Column[value.Value]) (*Column[value.Value], error) {
			return c.ChangeIndex(other)
		})
		var im *ErrIndexMismatch
		assert.ErrorAs(t, err, &im)
	})

	t.Run("name collision fails table validation", func(t *testing.T) {
		_, err := MapColumns(tbl, func(c *Column[value.Value]) (*Column[value.Value], error) {
			return c.Rename("same")
		})
		var dup *ErrDuplicateColumnName
		assert.ErrorAs(t, err, &dup)
	})
}
