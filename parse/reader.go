package parse

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/moledata/mole"
	"github.com/moledata/mole/index"
	"github.com/moledata/mole/value"
)

// Reader reads descriptor-formed entities from a line-oriented stream.
type Reader struct {
	s      *bufio.Scanner
	peeked *string
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{s: bufio.NewScanner(r)}
}

// line consumes the next line, honoring a pending peek.
func (r *Reader) line() (string, error) {
	if r.peeked != nil {
		l := *r.peeked
		r.peeked = nil
		return l, nil
	}
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return r.s.Text(), nil
}

// peek looks at the next line without consuming it.
func (r *Reader) peek() (string, error) {
	if r.peeked == nil {
		l, err := r.line()
		if err != nil {
			return "", err
		}
		r.peeked = &l
	}
	return *r.peeked, nil
}

// ReadArrayIndex reads an index descriptor followed by its label line.
func (r *Reader) ReadArrayIndex() (index.Index, error) {
	dl, err := r.line()
	if err != nil {
		return nil, err
	}
	d, err := ParseDescriptor(dl)
	if err != nil {
		return nil, err
	}
	ll, err := r.line()
	if err != nil {
		return nil, err
	}
	return NewArrayIndex(d, ll)
}

// ReadNumericIndex reads a "start, end" line and builds the progression with
// the given step.
func (r *Reader) ReadNumericIndex(step int) (index.Index, error) {
	bl, err := r.line()
	if err != nil {
		return nil, err
	}
	bounds, err := ParseLabels(bl, 2)
	if err != nil {
		return nil, err
	}
	start, ok := bounds[0].AsInt64()
	if !ok {
		return nil, fmt.Errorf("start %s: not an integer", bounds[0])
	}
	end, ok := bounds[1].AsInt64()
	if !ok {
		return nil, fmt.Errorf("end %s: not an integer", bounds[1])
	}
	return index.NewNumeric("", int(start), int(end), step)
}

// ReadColumn reads a column descriptor, then either an embedded #index block
// or nothing (the implicit 0..rows progression), then the value line.
func (r *Reader) ReadColumn() (*mole.Column[value.Value], error) {
	dl, err := r.line()
	if err != nil {
		return nil, err
	}
	d, err := ParseDescriptor(dl)
	if err != nil {
		return nil, err
	}
	if err := expect(d, KindColumn); err != nil {
		return nil, err
	}

	var idx index.Index
	next, err := r.peek()
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(strings.TrimSpace(next), "#index") {
		idx, err = r.ReadArrayIndex()
	} else {
		idx, err = index.NewNumeric("", 0, d.Count, 1)
	}
	if err != nil {
		return nil, err
	}

	vl, err := r.line()
	if err != nil {
		return nil, err
	}
	cells, err := ParseCells(vl, d.Count)
	if err != nil {
		return nil, err
	}
	return mole.NewColumn(d.Name, idx, cells)
}

// ReadTable reads a table descriptor followed by that many columns. All
// columns must share the first column's index.
func (r *Reader) ReadTable() (*mole.Table[value.Value], error) {
	dl, err := r.line()
	if err != nil {
		return nil, err
	}
	d, err := ParseDescriptor(dl)
	if err != nil {
		return nil, err
	}
	if err := expect(d, KindTable); err != nil {
		return nil, err
	}

	columns := make([]*mole.Column[value.Value], 0, d.Count)
	for i := 0; i < d.Count; i++ {
		col, err := r.ReadColumn()
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		columns = append(columns, col)
	}
	return mole.NewTable(columns[0].Index(), columns)
}
