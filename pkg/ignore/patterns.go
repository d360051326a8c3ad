package ignore

import (
	"regexp"
	"strings"
)

// Precompiled regular expressions used in pattern parsing.
var (
	doubleStarMiddlePattern   = regexp.MustCompile(`/\*\*/`)
	doubleStarTrailingPattern = regexp.MustCompile(`/\*\*$`)
	doubleStarLeadingPattern  = regexp.MustCompile(`^\*\*/`)
	singleStarPattern         = regexp.MustCompile(`\*`)
)

// Placeholders for already-expanded '**' fragments, so the single-star
// conversion pass cannot touch them.
const (
	anySpanToken    = "\x00" // becomes `.*`
	anySegmentToken = "\x01" // becomes `.+`
)

var restoreTokens = strings.NewReplacer(anySpanToken, `.*`, anySegmentToken, `.+`)

// escapeSpecialChars escapes regex special characters except for '*', '?', and '/'.
func escapeSpecialChars(pattern string) string {
	specialChars := `.+()|^$[]{}`
	for _, char := range specialChars {
		pattern = strings.ReplaceAll(pattern, string(char), `\`+string(char))
	}
	return pattern
}

// handleDoubleStarPatterns replaces '**' patterns with cross-segment regex
// fragments: '**/' at the start, '/**/' in the middle, '/**' at the end.
func handleDoubleStarPatterns(pattern string) string {
	if pattern == "**" {
		return anySpanToken
	}
	pattern = doubleStarMiddlePattern.ReplaceAllString(pattern, `(/|/`+anySegmentToken+`/)`)
	pattern = doubleStarTrailingPattern.ReplaceAllString(pattern, `(/`+anySpanToken+`)?`)
	pattern = doubleStarLeadingPattern.ReplaceAllString(pattern, `(`+anySpanToken+`/)?`)
	return pattern
}

// wildcardToRegex converts '*' and '?' wildcards to regex equivalents and
// restores the '**' fragments produced by handleDoubleStarPatterns.
func wildcardToRegex(pattern string) string {
	pattern = singleStarPattern.ReplaceAllString(pattern, `[^/]*`)
	pattern = strings.ReplaceAll(pattern, "?", ".")
	return restoreTokens.Replace(pattern)
}
