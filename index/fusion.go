package index

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/moledata/mole/value"
)

// Fusion is an Index that lazily exposes the fusion of two other indices:
// every label of first, in order, followed by the labels of second that are
// not already present in first, in their original relative order.
//
// A Fusion holds references to its operands, never copies of their labels, so
// fusions over fusions stay cheap. Construction performs the one mandatory
// scan of second to compute the size; the same scan records which positions
// of second survive the duplicate filter in a bitmap, so later lookups do not
// rescan.
type Fusion struct {
	name   string
	first  Index
	second Index
	size   int

	// extra marks the positions of second whose labels are absent from
	// first. Never mutated after construction.
	extra *roaring.Bitmap
}

var _ Index = (*Fusion)(nil)

// NewFusion creates the fusion of first and second. The name may be "" for an
// unnamed index.
//
// The result is duplicate-free by construction: both operands are themselves
// duplicate-free and the scan drops every label of second already in first.
func NewFusion(name string, first, second Index) (*Fusion, error) {
	if first == nil || second == nil {
		return nil, ErrNilIndex
	}
	if err := checkName(name); err != nil {
		return nil, err
	}

	extra := roaring.New()
	pos := 0
	for l := range second.Labels() {
		p, err := first.PositionOf(l)
		if err != nil {
			return nil, err
		}
		if p < 0 {
			extra.Add(uint32(pos))
		}
		pos++
	}

	return &Fusion{
		name:   name,
		first:  first,
		second: second,
		size:   first.Size() + int(extra.GetCardinality()),
		extra:  extra,
	}, nil
}

// Size returns the number of labels in the fused view.
func (f *Fusion) Size() int { return f.size }

// Name returns the name of the index, or "" if it has no name.
func (f *Fusion) Name() string { return f.name }

// LabelAt returns the label stored at position pos.
//
// Positions below first.Size() delegate to first; the rest select the
// surviving positions of second through the bitmap.
func (f *Fusion) LabelAt(pos int) (value.Value, error) {
	if pos < 0 || pos >= f.size {
		return value.Value{}, &ErrOutOfRange{Pos: pos, Size: f.size}
	}
	fsz := f.first.Size()
	if pos < fsz {
		return f.first.LabelAt(pos)
	}
	spos, err := f.extra.Select(uint32(pos - fsz))
	if err != nil {
		return value.Value{}, &ErrOutOfRange{Pos: pos, Size: f.size}
	}
	return f.second.LabelAt(int(spos))
}

// PositionOf returns the position of label, or -1 if absent from both
// operands.
func (f *Fusion) PositionOf(label value.Value) (int, error) {
	p, err := f.first.PositionOf(label)
	if err != nil {
		return 0, err
	}
	if p >= 0 {
		return p, nil
	}
	sp, err := f.second.PositionOf(label)
	if err != nil {
		return 0, err
	}
	if sp < 0 || !f.extra.Contains(uint32(sp)) {
		return -1, nil
	}
	// Rank counts the surviving positions of second up to and including sp.
	return f.first.Size() + int(f.extra.Rank(uint32(sp))) - 1, nil
}

// Rename returns an identical index with the given name. The operands and the
// cached scan are shared, not recomputed.
func (f *Fusion) Rename(newName string) (Index, error) {
	if err := checkName(newName); err != nil {
		return nil, err
	}
	if newName == f.name {
		return f, nil
	}
	return &Fusion{name: newName, first: f.first, second: f.second, size: f.size, extra: f.extra}, nil
}

// Labels returns an iterator over the fused label sequence.
func (f *Fusion) Labels() iter.Seq[value.Value] {
	return func(yield func(value.Value) bool) {
		for l := range f.first.Labels() {
			if !yield(l) {
				return
			}
		}
		it := f.extra.Iterator()
		for it.HasNext() {
			l, err := f.second.LabelAt(int(it.Next()))
			if err != nil {
				return
			}
			if !yield(l) {
				return
			}
		}
	}
}
