package prompt

import (
	"io/fs"
	"os"
	"path/filepath"

	"promptpack/pkg/ignore"

	"go.uber.org/zap"
)

// SelectFiles produces the ordered, deduplicated candidate list for a run.
// Each include pattern is expanded over the tree in the order given, the
// union is deduplicated keeping first occurrences, and survivors are filtered
// in a fixed order: binary extension, then exclude patterns, then ignore
// rules. Surviving paths are paired with their current on-disk size; a failed
// metadata lookup drops that path, never the run.
func SelectFiles(root string, rules Rules, logger *zap.Logger) ([]CandidateFile, error) {
	var ordered []string
	seen := make(map[string]bool)

	for _, inc := range rules.Includes {
		matches, err := expandPattern(root, inc, logger)
		if err != nil {
			return nil, err
		}
		for _, path := range matches {
			if !seen[path] {
				seen[path] = true
				ordered = append(ordered, path)
			}
		}
	}

	var candidates []CandidateFile
	for _, path := range ordered {
		if isBinaryPath(path) {
			logger.Debug("Excluding binary file", zap.String("file", path))
			continue
		}
		if matchesAny(path, rules.Excludes) {
			logger.Debug("File matches exclude pattern", zap.String("file", path))
			continue
		}
		if rules.Ignore != nil && rules.Ignore.MatchesPath(path) {
			logger.Debug("File matches ignore rule", zap.String("file", path))
			continue
		}

		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(path)))
		if err != nil {
			logger.Warn("Dropping file that cannot be stated",
				zap.String("file", path),
				zap.Error(&FileStatError{Path: path, Err: err}))
			continue
		}
		candidates = append(candidates, CandidateFile{Path: path, Size: info.Size()})
	}

	logger.Debug("Completed file selection",
		zap.Int("candidates", len(candidates)),
		zap.Int("matched", len(ordered)))
	return candidates, nil
}

// expandPattern walks the tree and collects the relative paths of regular
// files matching the glob, in lexical walk order.
func expandPattern(root string, g *ignore.Glob, logger *zap.Logger) ([]string, error) {
	var matches []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil // Skip paths that cause errors
		}
		if d.IsDir() {
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			logger.Warn("Unable to determine relative path", zap.String("path", path), zap.Error(relErr))
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if g.Match(relPath) {
			matches = append(matches, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// matchesAny tests a path against each pattern in order.
func matchesAny(path string, globs []*ignore.Glob) bool {
	for _, g := range globs {
		if g.Match(path) {
			return true
		}
	}
	return false
}
