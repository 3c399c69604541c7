package index

import (
	"iter"

	"github.com/moledata/mole/value"
)

// Array is an Index backed by an explicit label sequence.
type Array struct {
	name   string
	labels []value.Value
	byKey  map[string]int
}

var _ Index = (*Array)(nil)

// NewArray creates an index over the given labels, in order. The name may be
// "" for an unnamed index.
//
// The label slice is copied; it must be non-empty, free of zero values and
// free of duplicates.
func NewArray(name string, labels []value.Value) (*Array, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}

	byKey := make(map[string]int, len(labels))
	for i, l := range labels {
		if l.IsZero() {
			return nil, ErrNilLabel
		}
		if _, dup := byKey[l.Key()]; dup {
			return nil, &ErrDuplicateLabel{Label: l}
		}
		byKey[l.Key()] = i
	}

	owned := make([]value.Value, len(labels))
	copy(owned, labels)

	return &Array{name: name, labels: owned, byKey: byKey}, nil
}

// Strings creates an unnamed index over string labels. It is a convenience
// wrapper around NewArray.
func Strings(labels ...string) (*Array, error) {
	vs := make([]value.Value, len(labels))
	for i, s := range labels {
		vs[i] = value.String(s)
	}
	return NewArray("", vs)
}

// Size returns the number of labels in the index.
func (a *Array) Size() int { return len(a.labels) }

// Name returns the name of the index, or "" if it has no name.
func (a *Array) Name() string { return a.name }

// LabelAt returns the label stored at position pos.
func (a *Array) LabelAt(pos int) (value.Value, error) {
	if pos < 0 || pos >= len(a.labels) {
		return value.Value{}, &ErrOutOfRange{Pos: pos, Size: len(a.labels)}
	}
	return a.labels[pos], nil
}

// PositionOf returns the position of label, or -1 if absent.
func (a *Array) PositionOf(label value.Value) (int, error) {
	if label.IsZero() {
		return 0, ErrNilLabel
	}
	if pos, ok := a.byKey[label.Key()]; ok {
		return pos, nil
	}
	return -1, nil
}

// Rename returns an identical index with the given name.
func (a *Array) Rename(newName string) (Index, error) {
	if err := checkName(newName); err != nil {
		return nil, err
	}
	if newName == a.name {
		return a, nil
	}
	// Labels and lookup are immutable; share them.
	return &Array{name: newName, labels: a.labels, byKey: a.byKey}, nil
}

// Labels returns an iterator over the labels in position order.
func (a *Array) Labels() iter.Seq[value.Value] {
	return func(yield func(value.Value) bool) {
		for _, l := range a.labels {
			if !yield(l) {
				return
			}
		}
	}
}
