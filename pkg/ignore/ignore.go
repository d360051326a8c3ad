// Package ignore provides gitignore-style rule matching and glob pattern
// compilation over slash-separated relative paths.
package ignore

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// IgnorePattern encapsulates a compiled regular expression pattern,
// a negation flag, and metadata about the pattern's origin.
type IgnorePattern struct {
	Pattern *regexp.Regexp // Compiled regular expression for the pattern.
	Negate  bool           // Indicates if the pattern is a negation (starts with '!').
	Line    string         // Original pattern line.
	LineNo  int            // Line number in the source (1-based).
}

// GitIgnore represents a collection of ignore patterns.
type GitIgnore struct {
	Patterns []*IgnorePattern // List of compiled ignore patterns.
	logger   *zap.Logger      // Optional logger for debug information.
}

// NewGitIgnore initializes a GitIgnore instance with an optional logger.
func NewGitIgnore(logger *zap.Logger) *GitIgnore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GitIgnore{
		Patterns: []*IgnorePattern{},
		logger:   logger,
	}
}

// LoadProjectIgnore builds the ignore-rule set for a project root. The set is
// seeded with ".git/" and extended with the root's .gitignore when present.
// A missing .gitignore is not an error.
func LoadProjectIgnore(root string, logger *zap.Logger) (*GitIgnore, error) {
	gi := NewGitIgnore(logger)
	gi.CompileIgnoreLines(".git/")

	ignorePath := filepath.Join(root, ".gitignore")
	if err := gi.CompileIgnoreFile(ignorePath); err != nil {
		if os.IsNotExist(err) {
			gi.logger.Debug("No .gitignore file found", zap.String("path", ignorePath))
			return gi, nil
		}
		return nil, err
	}

	return gi, nil
}

// CompileIgnoreLines compiles a set of ignore pattern lines and adds them to the GitIgnore instance.
func (gi *GitIgnore) CompileIgnoreLines(lines ...string) {
	for i, line := range lines {
		pattern, negate := parsePatternLine(line)
		if pattern != nil {
			gi.Patterns = append(gi.Patterns, &IgnorePattern{
				Pattern: pattern,
				Negate:  negate,
				Line:    line,
				LineNo:  i + 1, // 1-based line numbering.
			})
		}
	}
}

// CompileIgnoreFile reads an ignore file, parses its lines, and adds them to the GitIgnore instance.
func (gi *GitIgnore) CompileIgnoreFile(fpath string) error {
	content, err := os.ReadFile(fpath)
	if err != nil {
		return err
	}

	lines := strings.Split(string(content), "\n")
	gi.CompileIgnoreLines(lines...)
	gi.logger.Debug("Compiled ignore patterns", zap.String("filePath", fpath), zap.Int("lineCount", len(lines)))
	return nil
}

// MatchesPath checks if a path matches any of the ignore patterns.
func (gi *GitIgnore) MatchesPath(path string) bool {
	matches, _ := gi.MatchesPathWithPattern(path)
	return matches
}

// MatchesPathWithPattern checks if a path matches any ignore pattern and returns
// the matched pattern if applicable. Later patterns win, so negations can
// re-include a path excluded by an earlier rule.
func (gi *GitIgnore) MatchesPathWithPattern(path string) (bool, *IgnorePattern) {
	normalizedPath := filepath.ToSlash(path)

	var matchedPattern *IgnorePattern
	matches := false

	for _, pattern := range gi.Patterns {
		if pattern.Pattern.MatchString(normalizedPath) {
			matchedPattern = pattern
			if pattern.Negate {
				matches = false
			} else {
				matches = true
			}
		}
	}

	return matches, matchedPattern
}

// parsePatternLine processes a line from an ignore file into a compiled regex and a negation flag.
// Returns nil for empty lines and comments.
func parsePatternLine(line string) (*regexp.Regexp, bool) {
	trimmedLine := strings.TrimSpace(line)

	if trimmedLine == "" || strings.HasPrefix(trimmedLine, "#") {
		return nil, false
	}

	negate := false
	if strings.HasPrefix(trimmedLine, "!") {
		negate = true
		trimmedLine = strings.TrimPrefix(trimmedLine, "!")
	}

	// Handle escaped leading '#' and '!'.
	if strings.HasPrefix(trimmedLine, `\#`) || strings.HasPrefix(trimmedLine, `\!`) {
		trimmedLine = trimmedLine[1:]
	}

	escapedLine := escapeSpecialChars(trimmedLine)
	escapedLine = handleDoubleStarPatterns(escapedLine)
	escapedLine = wildcardToRegex(escapedLine)
	escapedLine = anchorIgnorePattern(escapedLine, trimmedLine)

	compiledRegex, err := regexp.Compile(escapedLine)
	if err != nil {
		return nil, false
	}

	return compiledRegex, negate
}

// anchorIgnorePattern anchors an ignore pattern regex. A pattern names a file
// or a directory subtree; patterns without a leading slash match at any depth.
func anchorIgnorePattern(pattern string, originalPattern string) string {
	pattern = strings.TrimSuffix(pattern, "/")
	pattern += "(/.*)?$"

	if strings.HasPrefix(originalPattern, "/") {
		return "^" + strings.TrimPrefix(pattern, "/")
	}
	return "^(|.*/)" + pattern
}
