// Package prompt implements the selection-and-budgeted-assembly pipeline:
// it selects project text files per include/exclude/gitignore rules and
// concatenates them into a single size-bounded document for LLM input.
package prompt

import (
	"fmt"
	"os"
	"time"

	"promptpack/pkg/ignore"

	"go.uber.org/zap"
)

// Execute orchestrates a prompt-generation run: parse the size budget, load
// ignore rules, select candidates, assemble within budget, format, and write.
func Execute(args Arguments, logger *zap.Logger) error {
	startTime := time.Now()
	logger.Info("Starting prompt generation", zap.String("root", args.Root))

	budget, err := ParseSize(args.MaxSize)
	if err != nil {
		return err
	}

	includes, err := ignore.CompileGlobs(args.Includes)
	if err != nil {
		return fmt.Errorf("failed to compile include patterns: %w", err)
	}
	excludes, err := ignore.CompileGlobs(args.Excludes)
	if err != nil {
		return fmt.Errorf("failed to compile exclude patterns: %w", err)
	}

	var gi *ignore.GitIgnore
	if !args.NoGitignore {
		gi, err = ignore.LoadProjectIgnore(args.Root, logger)
		if err != nil {
			return fmt.Errorf("failed to load ignore rules: %w", err)
		}
	}

	candidates, err := SelectFiles(args.Root, Rules{
		Includes: includes,
		Excludes: excludes,
		Ignore:   gi,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to select files: %w", err)
	}

	state := Assemble(args.Root, candidates, budget, logger)
	document := BuildDocument(state)

	if err := WriteDocument(document, args.Output, os.Stdout, logger); err != nil {
		return err
	}

	logger.Info("Prompt generation completed",
		zap.Int("includedFiles", len(state.Included)),
		zap.Int("skippedFiles", len(state.Skipped)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}
