// Package index provides the label index abstraction and its concrete
// variants.
//
// An Index is an immutable, ordered set of distinct, non-zero labels with an
// optional name. Three variants exist: Array (explicit label sequence),
// Numeric (lazy arithmetic progression) and Fusion (lazy duplicate-free
// concatenation of two other indices). Shared algorithms (Equal, Merge) are
// package functions over the interface so no variant duplicates them.
package index

import (
	"iter"
	"strings"

	"github.com/moledata/mole/value"
)

// Index represents an immutable, ordered sequence of distinct labels.
//
// Implementations guarantee Size() > 0, pairwise-distinct non-zero labels,
// and a name that is either empty (unnamed) or non-blank. Once constructed an
// index never changes; Rename returns a new value.
type Index interface {
	// Size returns the number of labels in the index.
	Size() int

	// LabelAt returns the label stored at position pos.
	// It fails with *ErrOutOfRange if pos is outside [0, Size()).
	LabelAt(pos int) (value.Value, error)

	// PositionOf returns the position of label, or -1 if the label is not
	// present. Absence is a normal branch condition, not a failure; the only
	// error is ErrNilLabel for a zero label.
	PositionOf(label value.Value) (int, error)

	// Name returns the name of the index, or "" if it has no name.
	Name() string

	// Rename returns an identical index with the given name ("" clears it),
	// or the receiver if the name is unchanged. It fails with ErrBlankName
	// if newName is non-empty but blank.
	Rename(newName string) (Index, error)

	// Labels returns a lazy, restartable iterator over the labels in
	// position order.
	Labels() iter.Seq[value.Value]
}

// Equal reports whether a and b expose the same labels in the same order.
//
// The name and the concrete representation are not considered: an Array and
// a Numeric over the same label sequence are equal.
func Equal(a, b Index) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	if a.Size() != b.Size() {
		return false
	}
	next, stop := iter.Pull(b.Labels())
	defer stop()
	for la := range a.Labels() {
		lb, ok := next()
		if !ok || !la.Equal(lb) {
			return false
		}
	}
	return true
}

// Merge returns an index containing every label of a followed, in order, by
// the labels of b not already present in a. The fused index inherits a's
// name. When a and b are equal, a itself is returned.
//
// Merge is not commutative: Merge(a, b) and Merge(b, a) generally differ.
func Merge(a, b Index) (Index, error) {
	if a == nil || b == nil {
		return nil, ErrNilIndex
	}
	if Equal(a, b) {
		return a, nil
	}
	return NewFusion(a.Name(), a, b)
}

// checkName rejects names that are non-empty but all whitespace.
func checkName(name string) error {
	if name != "" && strings.TrimSpace(name) == "" {
		return ErrBlankName
	}
	return nil
}
