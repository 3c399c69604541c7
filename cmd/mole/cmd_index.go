package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moledata/mole/index"
	"github.com/moledata/mole/parse"
)

// readFusedIndex builds the numeric progression from the arguments, reads an
// array index from cmd's input and returns their fusion.
func readFusedIndex(cmd *cobra.Command, args []string) (index.Index, error) {
	start, err := parseIntArg(args[0], "start")
	if err != nil {
		return nil, err
	}
	end, err := parseIntArg(args[1], "end")
	if err != nil {
		return nil, err
	}
	step, err := parseIntArg(args[2], "step")
	if err != nil {
		return nil, err
	}

	numeric, err := index.NewNumeric("", start, end, step)
	if err != nil {
		return nil, err
	}
	other, err := parse.NewReader(cmd.InOrStdin()).ReadArrayIndex()
	if err != nil {
		return nil, err
	}
	return index.Merge(numeric, other)
}

// joinLastLabels joins the last n labels of idx with ", ".
func joinLastLabels(idx index.Index, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("cannot take %d labels", n)
	}
	sz := idx.Size()
	if n > sz {
		return "", fmt.Errorf("cannot take %d labels from an index of size %d", n, sz)
	}

	var sb strings.Builder
	for pos := sz - n; pos < sz; pos++ {
		if pos > sz-n {
			sb.WriteString(", ")
		}
		label, err := idx.LabelAt(pos)
		if err != nil {
			return "", err
		}
		sb.WriteString(label.String())
	}
	return sb.String(), nil
}

func newFuseLastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fuse-last <start> <end> <step>",
		Short: "Fuse a numeric index with one read from stdin, print the last ten labels",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			fused, err := readFusedIndex(cmd, args)
			if err != nil {
				return err
			}
			line, err := joinLastLabels(fused, 10)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
}

func newFuseSkipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fuse-skip <start> <end> <step> <skip>",
		Short: "Fuse a numeric index with one read from stdin, print every skip-th label",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			skip, err := parseIntArg(args[3], "skip")
			if err != nil {
				return err
			}
			if skip <= 0 {
				return fmt.Errorf("skip must be positive, got %d", skip)
			}
			fused, err := readFusedIndex(cmd, args[:3])
			if err != nil {
				return err
			}

			var sb strings.Builder
			for pos := 0; pos < fused.Size(); pos += skip {
				if pos > 0 {
					sb.WriteString(", ")
				}
				label, err := fused.LabelAt(pos)
				if err != nil {
					return err
				}
				sb.WriteString(label.String())
			}
			fmt.Fprintln(cmd.OutOrStdout(), sb.String())
			return nil
		},
	}
}
