// Package parse reads indices, columns and tables from a line-oriented
// textual form.
//
// The grammar is descriptor lines followed by value lines:
//
//	#index 3 Weekdays
//	monday, tuesday, wednesday
//
//	#column 3 Sales
//	#index 3
//	a, b, c
//	10, , 30
//
//	#table 2
//	#column 2 A
//	1, 2
//	#column 2 B
//	3, 4
//
// A column without an embedded #index block is indexed by the implicit
// progression 0..rows. Value tokens are typed by shape: true/false, integer,
// float, RFC 3339 date-time, everything else a string (double quotes protect
// commas and leading/trailing spaces). An empty token is an absent cell;
// labels reject empty tokens.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/moledata/mole"
	"github.com/moledata/mole/index"
	"github.com/moledata/mole/value"
)

// Kind identifies which entity a descriptor line announces.
type Kind int

const (
	// KindIndex is the #index descriptor.
	KindIndex Kind = iota
	// KindColumn is the #column descriptor.
	KindColumn
	// KindTable is the #table descriptor.
	KindTable
)

// String returns the directive for the kind.
func (k Kind) String() string {
	switch k {
	case KindIndex:
		return "#index"
	case KindColumn:
		return "#column"
	case KindTable:
		return "#table"
	default:
		return "#unknown"
	}
}

// Descriptor is a parsed descriptor line: the entity kind, its element count
// (labels, rows or columns) and, for indices and columns, an optional name.
type Descriptor struct {
	Kind  Kind
	Count int
	Name  string
}

var (
	// ErrEmptyToken is returned when a label token is empty.
	ErrEmptyToken = errors.New("empty token")

	// ErrUnterminatedQuote is returned when a quoted token never closes.
	ErrUnterminatedQuote = errors.New("unterminated quote")
)

// ErrBadDescriptor indicates a malformed descriptor line.
type ErrBadDescriptor struct {
	Line   string
	Reason string
}

func (e *ErrBadDescriptor) Error() string {
	return fmt.Sprintf("bad descriptor %q: %s", e.Line, e.Reason)
}

// ErrTokenCount indicates a value line with the wrong number of tokens.
type ErrTokenCount struct {
	Want int
	Got  int
}

func (e *ErrTokenCount) Error() string {
	return fmt.Sprintf("expected %d tokens, got %d", e.Want, e.Got)
}

// ParseDescriptor parses a single descriptor line.
func ParseDescriptor(line string) (Descriptor, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "#") {
		return Descriptor{}, &ErrBadDescriptor{Line: line, Reason: "missing directive"}
	}

	var kind Kind
	switch fields[0] {
	case "#index":
		kind = KindIndex
	case "#column":
		kind = KindColumn
	case "#table":
		kind = KindTable
	default:
		return Descriptor{}, &ErrBadDescriptor{Line: line, Reason: "unknown directive " + fields[0]}
	}

	if len(fields) < 2 {
		return Descriptor{}, &ErrBadDescriptor{Line: line, Reason: "missing count"}
	}
	count, err := strconv.Atoi(fields[1])
	if err != nil || count <= 0 {
		return Descriptor{}, &ErrBadDescriptor{Line: line, Reason: "count must be a positive integer"}
	}

	name := strings.Join(fields[2:], " ")
	if kind == KindTable && name != "" {
		return Descriptor{}, &ErrBadDescriptor{Line: line, Reason: "tables have no name"}
	}

	return Descriptor{Kind: kind, Count: count, Name: name}, nil
}

// ParseValue parses one non-empty token into a Value by shape.
func ParseValue(tok string) (value.Value, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return value.Value{}, ErrEmptyToken
	}
	if strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`) && len(tok) >= 2 {
		return value.String(tok[1 : len(tok)-1]), nil
	}
	switch tok {
	case "true":
		return value.Bool(true), nil
	case "false":
		return value.Bool(false), nil
	}
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return value.Int(i), nil
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return value.Float(f), nil
	}
	if t, err := time.Parse(time.RFC3339, tok); err == nil {
		return value.Time(t), nil
	}
	return value.String(tok), nil
}

// ParseLabels parses a comma-separated line of exactly n labels.
func ParseLabels(line string, n int) ([]value.Value, error) {
	toks, err := splitTokens(line)
	if err != nil {
		return nil, err
	}
	if len(toks) != n {
		return nil, &ErrTokenCount{Want: n, Got: len(toks)}
	}
	out := make([]value.Value, n)
	for i, tok := range toks {
		v, err := ParseValue(tok)
		if err != nil {
			return nil, fmt.Errorf("label %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// ParseCells parses a comma-separated line of exactly n cells; an empty token
// is an absent cell.
func ParseCells(line string, n int) ([]mole.Cell[value.Value], error) {
	toks, err := splitTokens(line)
	if err != nil {
		return nil, err
	}
	if len(toks) != n {
		return nil, &ErrTokenCount{Want: n, Got: len(toks)}
	}
	out := make([]mole.Cell[value.Value], n)
	for i, tok := range toks {
		if strings.TrimSpace(tok) == "" {
			out[i] = mole.None[value.Value]()
			continue
		}
		v, err := ParseValue(tok)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		out[i] = mole.Some(v)
	}
	return out, nil
}

// splitTokens splits on commas outside double quotes.
func splitTokens(line string) ([]string, error) {
	var toks []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			cur.WriteRune(r)
		case r == ',' && !inQuotes:
			toks = append(toks, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	if inQuotes {
		return nil, ErrUnterminatedQuote
	}
	toks = append(toks, cur.String())
	return toks, nil
}

// expect validates that a descriptor announces the wanted kind.
func expect(d Descriptor, kind Kind) error {
	if d.Kind != kind {
		return &ErrBadDescriptor{Line: d.Kind.String(), Reason: "expected " + kind.String()}
	}
	return nil
}

// Build helpers shared by Reader and direct callers.

// NewArrayIndex builds an Array index from a parsed descriptor and its label
// line.
func NewArrayIndex(d Descriptor, labelLine string) (index.Index, error) {
	if err := expect(d, KindIndex); err != nil {
		return nil, err
	}
	labels, err := ParseLabels(labelLine, d.Count)
	if err != nil {
		return nil, err
	}
	return index.NewArray(d.Name, labels)
}
