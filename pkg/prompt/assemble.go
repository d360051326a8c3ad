package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// AssemblyState is the accumulator for a single budgeted assembly pass. It is
// created empty, mutated once per candidate, and handed to the formatter.
type AssemblyState struct {
	contents strings.Builder // Formatted file blocks, in inclusion order.
	used     int64           // Bytes consumed so far, preamble included.

	Included []string // Paths included, in order.
	Skipped  []string // Paths skipped, in order.
}

// Contents returns the accumulated file-content blocks, without the document
// header or structure sections.
func (s *AssemblyState) Contents() string {
	return s.contents.String()
}

// Assemble processes candidates strictly in order against the byte budget.
// The fixed document preamble counts as the starting budget consumption. A
// file whose formatted block would push the document over budget is skipped
// whole; partial files are never included. This is a greedy single pass: a
// skipped file is never revisited, even if a later skip leaves room for it.
func Assemble(root string, candidates []CandidateFile, budget int64, logger *zap.Logger) *AssemblyState {
	state := &AssemblyState{used: int64(preambleSize())}

	for _, candidate := range candidates {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(candidate.Path)))
		if err != nil {
			logger.Warn("Skipping unreadable file",
				zap.String("file", candidate.Path),
				zap.Error(&FileReadError{Path: candidate.Path, Err: err}))
			state.Skipped = append(state.Skipped, candidate.Path)
			continue
		}

		block := formatBlock(candidate.Path, string(data))
		if state.used+int64(len(block)) > budget {
			logger.Debug("Skipping file that exceeds remaining budget",
				zap.String("file", candidate.Path),
				zap.Int("blockBytes", len(block)),
				zap.Int64("usedBytes", state.used),
				zap.Int64("budgetBytes", budget))
			state.Skipped = append(state.Skipped, candidate.Path)
			continue
		}

		state.contents.WriteString(block)
		state.used += int64(len(block))
		state.Included = append(state.Included, candidate.Path)
	}

	logger.Debug("Completed assembly pass",
		zap.Int("included", len(state.Included)),
		zap.Int("skipped", len(state.Skipped)),
		zap.Int64("usedBytes", state.used))
	return state
}

// formatBlock renders one file as a header line and a fenced code region
// tagged with the file's extension.
func formatBlock(path, content string) string {
	tag := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return fmt.Sprintf("### %s\n```%s\n%s```\n\n", path, tag, content)
}
