package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCmd executes the root command with in as stdin and returns stdout.
func runCmd(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	root.SetIn(strings.NewReader(in))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestFuseLast(t *testing.T) {
	// 0..20 step 2 yields ten labels already; the array index contributes
	// three more, shifting the window.
	in := "#index 3\n1, 3, 100\n"
	out, err := runCmd(t, in, "fuse-last", "0", "20", "2")
	require.NoError(t, err)
	assert.Equal(t, "6, 8, 10, 12, 14, 16, 18, 1, 3, 100\n", out)
}

func TestFuseLastTooSmall(t *testing.T) {
	in := "#index 2\na, b\n"
	_, err := runCmd(t, in, "fuse-last", "0", "4", "1")
	assert.Error(t, err)
}

func TestFuseSkip(t *testing.T) {
	in := "#index 2\n1, 9\n"
	out, err := runCmd(t, in, "fuse-skip", "0", "8", "2", "3")
	require.NoError(t, err)
	// fused labels: 0 2 4 6 1 9, every third from position 0
	assert.Equal(t, "0, 6\n", out)
}

func TestColumnStack(t *testing.T) {
	in := "#column 2 S\n#index 2\na, b\n1, 2\n" +
		"#column 2 S\n#index 2\nc, d\n3, 4\n" +
		"#column 1 T\n#index 1\nx\n5\n" +
		"#column 1 T\n#index 1\ny\n6\n"
	out, err := runCmd(t, in, "column-stack")
	require.NoError(t, err)

	want := "  | S\n" +
		"--+--\n" +
		"a | 1\n" +
		"b | 2\n" +
		"c | 3\n" +
		"d | 4\n" +
		"\n" +
		"  | T\n" +
		"--+--\n" +
		"x | 5\n" +
		"y | 6\n" +
		"\n"
	assert.Equal(t, want, out)
}

func TestColumnIndex(t *testing.T) {
	t.Run("matching size swaps in the read index", func(t *testing.T) {
		in := "#column 2 C\n7, 8\n" +
			"#index 2\na, b\n"
		out, err := runCmd(t, in, "column-index")
		require.NoError(t, err)
		assert.Contains(t, out, "a | 7\n")
		assert.Contains(t, out, "b | 8\n")
	})

	t.Run("mismatching size falls back to the progression", func(t *testing.T) {
		in := "#column 2 C\n#index 2\nx, y\n7, 8\n" +
			"#index 3\na, b, c\n"
		out, err := runCmd(t, in, "column-index")
		require.NoError(t, err)
		assert.Contains(t, out, "0 | 7\n")
		assert.Contains(t, out, "1 | 8\n")
	})
}

func TestTableValue(t *testing.T) {
	in := "#table 2\n" +
		"#column 2 A\n#index 2\na, b\n1, 2\n" +
		"#column 2 B\n#index 2\na, b\n3, \n"
	t.Run("present cell", func(t *testing.T) {
		out, err := runCmd(t, in, "table-value", "b", "A")
		require.NoError(t, err)
		assert.Equal(t, "2\n", out)
	})

	t.Run("absent cell prints blank", func(t *testing.T) {
		out, err := runCmd(t, in, "table-value", "b", "B")
		require.NoError(t, err)
		assert.Equal(t, "\n", out)
	})

	t.Run("unknown row label", func(t *testing.T) {
		_, err := runCmd(t, in, "table-value", "z", "A")
		assert.Error(t, err)
	})
}

func TestTableSum(t *testing.T) {
	in := "#table 2\n" +
		"#column 3 A\n#index 3\na, b, c\n1, 2, 3\n" +
		"#column 3 B\n#index 3\na, b, c\n10, , 30\n"
	out, err := runCmd(t, in, "table-sum")
	require.NoError(t, err)

	want := "  | A | B  \n" +
		"--+---+---\n" +
		"0 | 6 | 40 \n" +
		"\n"
	assert.Equal(t, want, out)
}

func TestTableSumRejectsNonIntegers(t *testing.T) {
	in := "#table 1\n" +
		"#column 2 A\n#index 2\na, b\n1, oops\n"
	_, err := runCmd(t, in, "table-sum")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot sum")
}

func TestTableStack(t *testing.T) {
	in := "#table 1\n#column 2 A\n#index 2\na, b\n1, 2\n" +
		"#table 1\n#column 2 A\n#index 2\nc, d\n3, 4\n"
	out, err := runCmd(t, in, "table-stack")
	require.NoError(t, err)
	assert.Contains(t, out, "c | 3 \n")
	assert.Contains(t, out, "d | 4 \n")
}

func TestTableFlankRejectsSharedNames(t *testing.T) {
	in := "#table 1\n#column 2 A\n#index 2\na, b\n1, 2\n" +
		"#table 1\n#column 2 A\n#index 2\nc, d\n3, 4\n"
	_, err := runCmd(t, in, "table-flank")
	assert.Error(t, err)
}
