package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGitIgnore_BasicPatterns(t *testing.T) {
	gi := NewGitIgnore(zap.NewNop())
	gi.CompileIgnoreLines("*.log", "build/", "/dist", "# comment", "")

	assert.True(t, gi.MatchesPath("debug.log"))
	assert.True(t, gi.MatchesPath("sub/deep/debug.log"))
	assert.True(t, gi.MatchesPath("build/out.bin"))
	assert.True(t, gi.MatchesPath("nested/build/out.bin"))
	assert.True(t, gi.MatchesPath("dist/app.js"))

	assert.False(t, gi.MatchesPath("main.go"))
	assert.False(t, gi.MatchesPath("sub/dist/app.js"), "leading slash anchors to the root")
	assert.False(t, gi.MatchesPath("comment"))
}

func TestGitIgnore_Negation(t *testing.T) {
	gi := NewGitIgnore(zap.NewNop())
	gi.CompileIgnoreLines("*.log", "!keep.log")

	assert.True(t, gi.MatchesPath("debug.log"))
	assert.False(t, gi.MatchesPath("keep.log"))
	assert.False(t, gi.MatchesPath("sub/keep.log"))
}

func TestGitIgnore_MatchesPathWithPattern(t *testing.T) {
	gi := NewGitIgnore(zap.NewNop())
	gi.CompileIgnoreLines("*.log")

	matched, pattern := gi.MatchesPathWithPattern("x.log")
	require.True(t, matched)
	require.NotNil(t, pattern)
	assert.Equal(t, "*.log", pattern.Line)

	matched, pattern = gi.MatchesPathWithPattern("x.txt")
	assert.False(t, matched)
	assert.Nil(t, pattern)
}

func TestLoadProjectIgnore(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("node_modules/\n*.tmp\n"), 0644))

	gi, err := LoadProjectIgnore(root, zap.NewNop())
	require.NoError(t, err)

	assert.True(t, gi.MatchesPath("node_modules/pkg/index.js"))
	assert.True(t, gi.MatchesPath("scratch.tmp"))
	assert.True(t, gi.MatchesPath(".git/config"), "the .git directory is always seeded")
	assert.False(t, gi.MatchesPath(".gitignore"))
	assert.False(t, gi.MatchesPath("main.go"))
}

func TestLoadProjectIgnore_MissingFile(t *testing.T) {
	gi, err := LoadProjectIgnore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	assert.True(t, gi.MatchesPath(".git/HEAD"))
	assert.False(t, gi.MatchesPath("anything.txt"))
}

func TestGitIgnore_DoubleStar(t *testing.T) {
	gi := NewGitIgnore(zap.NewNop())
	gi.CompileIgnoreLines("docs/**/drafts")

	assert.True(t, gi.MatchesPath("docs/drafts"))
	assert.True(t, gi.MatchesPath("docs/2026/q3/drafts"))
	assert.True(t, gi.MatchesPath("docs/2026/drafts/x.md"))
	assert.False(t, gi.MatchesPath("docs/final"))
}
