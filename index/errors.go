package index

import (
	"errors"
	"fmt"

	"github.com/moledata/mole/value"
)

var (
	// ErrNilIndex is returned when a required index operand is nil.
	ErrNilIndex = errors.New("index cannot be nil")

	// ErrNilLabel is returned when a label is the zero value.
	ErrNilLabel = errors.New("label cannot be the zero value")

	// ErrBlankName is returned when a supplied name is non-empty but blank.
	ErrBlankName = errors.New("name cannot be blank")

	// ErrNoLabels is returned when an index would contain no labels.
	ErrNoLabels = errors.New("index requires at least one label")

	// ErrZeroStep is returned when a numeric progression has step 0.
	ErrZeroStep = errors.New("step cannot be zero")
)

// ErrOutOfRange indicates a positional access outside [0, Size()).
type ErrOutOfRange struct {
	Pos  int
	Size int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("position %d out of range [0, %d)", e.Pos, e.Size)
}

// ErrDuplicateLabel indicates that a label occurs more than once in the
// sequence supplied at construction.
type ErrDuplicateLabel struct {
	Label value.Value
}

func (e *ErrDuplicateLabel) Error() string {
	return fmt.Sprintf("duplicate label: %s", e.Label)
}

// ErrStepSign indicates a numeric progression whose step sign is inconsistent
// with its range.
type ErrStepSign struct {
	Start int
	End   int
	Step  int
}

func (e *ErrStepSign) Error() string {
	return fmt.Sprintf("step %d inconsistent with range [%d, %d)", e.Step, e.Start, e.End)
}
