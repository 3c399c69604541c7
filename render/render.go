// Package render formats indices, columns and tables for the console.
//
// The renderers consume only the public read surface of the core types
// (sizes, iteration, string forms); the core itself never formats anything.
// Index labels are right-justified, cells left-justified, and every width is
// the maximum over the header and all entries of its column.
package render

import (
	"fmt"
	"strings"

	"github.com/moledata/mole"
	"github.com/moledata/mole/index"
)

// Index renders idx in column format: the name (when present) on one line, a
// dash rule as wide as the widest of name and labels, then each label
// right-justified to that width.
//
//	Weekdays
//	--------
//	  monday
//	 tuesday
func Index(idx index.Index) string {
	width := len(idx.Name())
	for l := range idx.Labels() {
		if n := len(l.String()); n > width {
			width = n
		}
	}

	var sb strings.Builder
	if idx.Name() != "" {
		sb.WriteString(idx.Name())
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Repeat("-", width))
	sb.WriteByte('\n')
	for l := range idx.Labels() {
		fmt.Fprintf(&sb, "%*s\n", width, l.String())
	}
	return sb.String()
}

// Column renders c with its index rendering to the left of a |-separated
// value column. Absent cells render as empty strings.
func Column[V any](c *mole.Column[V]) string {
	idx := c.Index()

	labelWidth := len(idx.Name())
	valueWidth := len(c.Name())
	labels := make([]string, 0, c.Size())
	cells := make([]string, 0, c.Size())
	pos := 0
	for l := range idx.Labels() {
		s := l.String()
		labels = append(labels, s)
		if len(s) > labelWidth {
			labelWidth = len(s)
		}
		cell, _ := c.ValueAt(pos)
		cs := cellString(cell)
		cells = append(cells, cs)
		if len(cs) > valueWidth {
			valueWidth = len(cs)
		}
		pos++
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%*s | %-*s\n", labelWidth, idx.Name(), valueWidth, c.Name())
	sb.WriteString(strings.Repeat("-", labelWidth+1))
	sb.WriteByte('+')
	sb.WriteString(strings.Repeat("-", valueWidth+1))
	sb.WriteByte('\n')
	for i := range labels {
		fmt.Fprintf(&sb, "%*s | %-*s\n", labelWidth, labels[i], valueWidth, cells[i])
	}
	return sb.String()
}

// Table renders t as the first column's layout extended rightward: the row
// labels appear once on the left, each column contributes a |-separated
// header and cell column, and the rule crosses every separator with a +.
func Table[V any](t *mole.Table[V]) string {
	idx := t.Index()
	rows := t.Size()

	rowLabelWidth := len(idx.Name())
	labels := make([]string, 0, rows)
	for l := range idx.Labels() {
		s := l.String()
		labels = append(labels, s)
		if len(s) > rowLabelWidth {
			rowLabelWidth = len(s)
		}
	}

	headers := make([]string, 0, t.ColumnCount())
	widths := make([]int, 0, t.ColumnCount())
	cells := make([][]string, 0, t.ColumnCount())
	for col := range t.Columns() {
		w := len(col.Name())
		cs := make([]string, rows)
		for i := 0; i < rows; i++ {
			cell, _ := col.ValueAt(i)
			cs[i] = cellString(cell)
			if len(cs[i]) > w {
				w = len(cs[i])
			}
		}
		headers = append(headers, col.Name())
		widths = append(widths, w)
		cells = append(cells, cs)
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "%*s |", rowLabelWidth, idx.Name())
	for j, hdr := range headers {
		fmt.Fprintf(&sb, " %-*s ", widths[j], hdr)
		if j+1 < len(headers) {
			sb.WriteByte('|')
		}
	}
	sb.WriteByte('\n')

	sb.WriteString(strings.Repeat("-", rowLabelWidth+1))
	sb.WriteByte('+')
	for j, w := range widths {
		if j+1 < len(widths) {
			sb.WriteString(strings.Repeat("-", w+2))
			sb.WriteByte('+')
		} else {
			sb.WriteString(strings.Repeat("-", w+1))
		}
	}
	sb.WriteByte('\n')

	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, "%*s |", rowLabelWidth, labels[i])
		for j := range headers {
			fmt.Fprintf(&sb, " %-*s ", widths[j], cells[j][i])
			if j+1 < len(headers) {
				sb.WriteByte('|')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// cellString renders a cell: its value's string form, or "" when absent.
func cellString[V any](c mole.Cell[V]) string {
	if !c.Valid {
		return ""
	}
	return fmt.Sprint(c.Value)
}
