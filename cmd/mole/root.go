package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mole",
		Short: "Work with labeled indices, columns and tables from the shell",
		Long: `mole reads textual descriptions of indices, columns and tables from
standard input and applies the operations of the mole library to them.

Input follows a line-oriented format. Each object starts with a descriptor
line ("#index <len> [name]", "#column <rows> [name]", "#table <cols>") and
is followed by comma-separated value lines; an empty token in a column line
stands for an absent cell, and a column may embed its own index before the
value line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newFuseLastCmd(),
		newFuseSkipCmd(),
		newColumnStackCmd(),
		newColumnIndexCmd(),
		newTableValueCmd(),
		newTableSumCmd(),
		newTableFlankCmd(),
		newTableStackCmd(),
	)
	return root
}

func parseIntArg(arg, what string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", what, arg)
	}
	return n, nil
}
