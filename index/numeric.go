package index

import (
	"iter"

	"github.com/moledata/mole/value"
)

// Numeric is an Index whose labels are the terms of an arithmetic progression
// start, start+step, ... up to (excluding) end. No label storage is ever
// materialized; every operation is arithmetic.
type Numeric struct {
	name  string
	start int
	end   int
	step  int
	size  int
}

var _ Index = (*Numeric)(nil)

// NewNumeric creates an index over the progression [start, end) with the given
// non-zero step. The name may be "" for an unnamed index.
//
// The step sign must be consistent with the range and the progression must
// produce at least one label.
func NewNumeric(name string, start, end, step int) (*Numeric, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if step == 0 {
		return nil, ErrZeroStep
	}
	if int64(end-start)*int64(step) < 0 {
		return nil, &ErrStepSign{Start: start, End: end, Step: step}
	}

	size := progressionSize(start, end, step)
	if size <= 0 {
		return nil, ErrNoLabels
	}

	return &Numeric{name: name, start: start, end: end, step: step, size: size}, nil
}

// progressionSize returns ceil(|end-start| / |step|).
func progressionSize(start, end, step int) int {
	diff := int64(end) - int64(start)
	if diff < 0 {
		diff = -diff
	}
	s := int64(step)
	if s < 0 {
		s = -s
	}
	return int((diff + s - 1) / s)
}

// Size returns the number of labels in the progression.
func (n *Numeric) Size() int { return n.size }

// Name returns the name of the index, or "" if it has no name.
func (n *Numeric) Name() string { return n.name }

// LabelAt returns the integer label start + pos*step.
func (n *Numeric) LabelAt(pos int) (value.Value, error) {
	if pos < 0 || pos >= n.size {
		return value.Value{}, &ErrOutOfRange{Pos: pos, Size: n.size}
	}
	return value.Int(int64(n.start) + int64(pos)*int64(n.step)), nil
}

// PositionOf returns the position of label, or -1 if absent.
//
// Only integer labels can be present; the lookup is O(1) arithmetic on the
// progression parameters.
func (n *Numeric) PositionOf(label value.Value) (int, error) {
	if label.IsZero() {
		return 0, ErrNilLabel
	}
	v, ok := label.AsInt64()
	if !ok {
		return -1, nil
	}
	delta := v - int64(n.start)
	if delta*int64(n.step) < 0 || delta%int64(n.step) != 0 {
		return -1, nil
	}
	pos := delta / int64(n.step)
	if pos >= int64(n.size) {
		return -1, nil
	}
	return int(pos), nil
}

// Rename returns an identical index with the given name.
func (n *Numeric) Rename(newName string) (Index, error) {
	if err := checkName(newName); err != nil {
		return nil, err
	}
	if newName == n.name {
		return n, nil
	}
	return &Numeric{name: newName, start: n.start, end: n.end, step: n.step, size: n.size}, nil
}

// Labels returns an iterator over the progression in position order.
func (n *Numeric) Labels() iter.Seq[value.Value] {
	return func(yield func(value.Value) bool) {
		v := int64(n.start)
		for i := 0; i < n.size; i++ {
			if !yield(value.Int(v)) {
				return
			}
			v += int64(n.step)
		}
	}
}
