package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func candidatesFor(paths ...string) []CandidateFile {
	out := make([]CandidateFile, 0, len(paths))
	for _, p := range paths {
		out = append(out, CandidateFile{Path: p})
	}
	return out
}

func TestAssemble_AllFit(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.txt": "alpha",
		"b.txt": "beta",
	})

	state := Assemble(root, candidatesFor("a.txt", "b.txt"), 1<<20, zap.NewNop())

	assert.Equal(t, []string{"a.txt", "b.txt"}, state.Included)
	assert.Empty(t, state.Skipped)
	assert.Contains(t, state.Contents(), "### a.txt\n```txt\nalpha\n```")
	assert.Contains(t, state.Contents(), "### b.txt\n```txt\nbeta\n```")
}

func TestAssemble_SkipIsAllOrNothing(t *testing.T) {
	root := t.TempDir()
	content := strings.Repeat("z", 1000)
	writeTree(t, root, map[string]string{"big.txt": content})

	// One byte short of fitting the whole block: nothing of the file appears.
	budget := int64(preambleSize()+len(formatBlock("big.txt", content))) - 1
	state := Assemble(root, candidatesFor("big.txt"), budget, zap.NewNop())

	assert.Empty(t, state.Included)
	assert.Equal(t, []string{"big.txt"}, state.Skipped)
	assert.Empty(t, state.Contents())
}

func TestAssemble_ExactFit(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": "alpha"})

	budget := int64(preambleSize() + len(formatBlock("a.txt", "alpha")))
	state := Assemble(root, candidatesFor("a.txt"), budget, zap.NewNop())

	assert.Equal(t, []string{"a.txt"}, state.Included)
	assert.Empty(t, state.Skipped)
}

func TestAssemble_GreedyOrderDependence(t *testing.T) {
	root := t.TempDir()
	big := strings.Repeat("b", 900)
	small := strings.Repeat("s", 100)
	writeTree(t, root, map[string]string{
		"big.txt":   big,
		"small.txt": small,
	})
	candidates := candidatesFor("big.txt", "small.txt")

	bigBlock := len(formatBlock("big.txt", big))

	// Budget fits the big file exactly; the small one is starved.
	state := Assemble(root, candidates, int64(preambleSize()+bigBlock), zap.NewNop())
	assert.Equal(t, []string{"big.txt"}, state.Included)
	assert.Equal(t, []string{"small.txt"}, state.Skipped)

	// One byte less: the big file is skipped and the small file now fits.
	// The included set for the larger budget is not a superset of this one;
	// the pass is greedy first-fit, not bin packing.
	state = Assemble(root, candidates, int64(preambleSize()+bigBlock)-1, zap.NewNop())
	assert.Equal(t, []string{"small.txt"}, state.Included)
	assert.Equal(t, []string{"big.txt"}, state.Skipped)
}

func TestAssemble_DecreasingBudgetNeverIncreasesCount(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.txt": strings.Repeat("a", 300),
		"b.txt": strings.Repeat("b", 200),
		"c.txt": strings.Repeat("c", 100),
	})
	candidates := candidatesFor("a.txt", "b.txt", "c.txt")

	prev := len(candidates) + 1
	for budget := int64(4096); budget >= 0; budget -= 64 {
		state := Assemble(root, candidates, budget, zap.NewNop())
		require.LessOrEqual(t, len(state.Included), prev, "budget %d", budget)
		prev = len(state.Included)
	}
}

func TestAssemble_UnreadableFileSkipped(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": "alpha"})

	candidates := candidatesFor("missing.txt", "a.txt")
	state := Assemble(root, candidates, 1<<20, zap.NewNop())

	assert.Equal(t, []string{"a.txt"}, state.Included)
	assert.Equal(t, []string{"missing.txt"}, state.Skipped)
}

func TestAssemble_Deterministic(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.txt": "alpha",
		"b.txt": strings.Repeat("b", 500),
	})
	candidates := candidatesFor("a.txt", "b.txt")

	first := Assemble(root, candidates, 600, zap.NewNop())
	second := Assemble(root, candidates, 600, zap.NewNop())

	assert.Equal(t, first.Contents(), second.Contents())
	assert.Equal(t, first.Included, second.Included)
	assert.Equal(t, first.Skipped, second.Skipped)
}

func TestFormatBlock(t *testing.T) {
	assert.Equal(t, "### a.txt\n```txt\nhi\n```\n\n", formatBlock("a.txt", "hi"))
	assert.Equal(t, "### main.go\n```go\npackage main\n```\n\n", formatBlock("main.go", "package main\n"))
	assert.Equal(t, "### Makefile\n```\nall:\n```\n\n", formatBlock("Makefile", "all:"))
	assert.Equal(t, "### a.PNG.txt\n```txt\nx\n```\n\n", formatBlock("a.PNG.txt", "x"))
}
