package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moledata/mole"
	"github.com/moledata/mole/index"
	"github.com/moledata/mole/parse"
	"github.com/moledata/mole/render"
	"github.com/moledata/mole/value"
)

func newTableValueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table-value <rowLabel> <columnName>",
		Short: "Read a table from stdin and print the cell at the given row label and column name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rowLabel, err := parse.ParseValue(args[0])
			if err != nil {
				return err
			}
			table, err := parse.NewReader(cmd.InOrStdin()).ReadTable()
			if err != nil {
				return err
			}
			cell, err := table.Lookup(rowLabel, args[1])
			if err != nil {
				return err
			}
			if cell.Valid {
				fmt.Fprintln(cmd.OutOrStdout(), cell.Value)
			} else {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

func newTableSumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table-sum",
		Short: "Read a table from stdin and print the per-column sums of its integer cells",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := parse.NewReader(cmd.InOrStdin()).ReadTable()
			if err != nil {
				return err
			}

			sumIndex, err := index.NewNumeric("", 0, 1, 1)
			if err != nil {
				return err
			}

			sums := make([]*mole.Column[value.Value], 0, table.ColumnCount())
			for col := range table.Columns() {
				var sum int64
				for cell := range col.Cells() {
					if !cell.Valid {
						continue
					}
					n, ok := cell.Value.AsInt64()
					if !ok {
						return fmt.Errorf("column %q: cannot sum %s value %s",
							col.Name(), cell.Value.Kind(), cell.Value)
					}
					sum += n
				}
				sumCol, err := mole.NewColumn(col.Name(), sumIndex,
					[]mole.Cell[value.Value]{mole.Some(value.Int(sum))})
				if err != nil {
					return err
				}
				sums = append(sums, sumCol)
			}

			result, err := mole.NewTable(sumIndex, sums)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Table(result))
			return nil
		},
	}
}

func newTableFlankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table-flank",
		Short: "Read two tables from stdin and print their horizontal union",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := parse.NewReader(cmd.InOrStdin())
			first, err := r.ReadTable()
			if err != nil {
				return err
			}
			second, err := r.ReadTable()
			if err != nil {
				return err
			}
			flanked, err := first.Flank(second)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Table(flanked))
			return nil
		},
	}
}

func newTableStackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table-stack",
		Short: "Read two tables from stdin and print their vertical union",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := parse.NewReader(cmd.InOrStdin())
			first, err := r.ReadTable()
			if err != nil {
				return err
			}
			second, err := r.ReadTable()
			if err != nil {
				return err
			}
			stacked, err := first.Stack(second)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Table(stacked))
			return nil
		},
	}
}
