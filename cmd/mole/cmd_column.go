package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moledata/mole/index"
	"github.com/moledata/mole/parse"
	"github.com/moledata/mole/render"
)

func newColumnStackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "column-stack",
		Short: "Read two pairs of columns from stdin, stack each pair, print both results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := parse.NewReader(cmd.InOrStdin())
			for range 2 {
				first, err := r.ReadColumn()
				if err != nil {
					return err
				}
				second, err := r.ReadColumn()
				if err != nil {
					return err
				}
				stacked, err := first.Stack(second)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), render.Column(stacked))
			}
			return nil
		},
	}
}

func newColumnIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "column-index",
		Short: "Read a column and an index from stdin, swap the index in, print the column",
		Long: `Reads a column followed by an array index from standard input. When the
index has as many labels as the column has cells it replaces the column's
index; otherwise the implicit 0..n progression does.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := parse.NewReader(cmd.InOrStdin())
			column, err := r.ReadColumn()
			if err != nil {
				return err
			}
			idx, err := r.ReadArrayIndex()
			if err != nil {
				return err
			}
			if idx.Size() != column.Size() {
				idx, err = index.NewNumeric("", 0, column.Size(), 1)
				if err != nil {
					return err
				}
			}
			swapped, err := column.ChangeIndex(idx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Column(swapped))
			return nil
		},
	}
}
