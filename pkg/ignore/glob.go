package ignore

import (
	"fmt"
	"regexp"
	"strings"
)

// Glob is a single include or exclude pattern compiled against slash-separated
// paths relative to the project root. '*' matches within a path segment, '**'
// spans segments, '?' matches a single character.
type Glob struct {
	Source  string // Original pattern text.
	pattern *regexp.Regexp
}

// CompileGlob compiles a glob pattern. Unlike ignore rules, a glob is always
// anchored at the project root and must match the entire relative path.
func CompileGlob(pattern string) (*Glob, error) {
	source := pattern
	pattern = strings.TrimPrefix(pattern, "./")
	pattern = strings.TrimPrefix(pattern, "/")
	if pattern == "" {
		return nil, fmt.Errorf("empty glob pattern %q", source)
	}

	expr := escapeSpecialChars(pattern)
	expr = handleDoubleStarPatterns(expr)
	expr = wildcardToRegex(expr)

	compiled, err := regexp.Compile("^" + expr + "$")
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", source, err)
	}

	return &Glob{Source: source, pattern: compiled}, nil
}

// CompileGlobs compiles each pattern in order.
func CompileGlobs(patterns []string) ([]*Glob, error) {
	globs := make([]*Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := CompileGlob(p)
		if err != nil {
			return nil, err
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// Match reports whether the slash-separated relative path matches the glob.
func (g *Glob) Match(relPath string) bool {
	return g.pattern.MatchString(relPath)
}
