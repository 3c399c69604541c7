// Package mole provides small immutable building blocks for labeled columnar
// data: an index of distinct labels, a column of values over an index, and a
// table of distinctly named columns sharing one row index.
//
// # Values and absence
//
// Labels and (typically) cell payloads are value.Value, a closed variant over
// bool, int64, float64, string and time.Time. A cell that holds no data is a
// Cell with Valid == false; columns and tables are generic, so any element
// type works as long as the caller keeps it immutable.
//
// # Composition
//
// All higher composition funnels through index fusion:
//
//	fused, _ := index.Merge(a, b)      // a's labels, then b's new ones
//	col, _ := left.Stack(right)        // disjoint labels, fused index
//	wide, _ := t.Flank(u)              // horizontal union, reindexed columns
//	tall, _ := t.Stack(u)              // vertical union, stacked columns
//
// # Immutability
//
// Nothing is ever mutated in place: every transforming operation returns a
// new value, sharing internal immutable substructure where safe. Because of
// that, concurrent readers may share any Index, Column or Table freely.
package mole
