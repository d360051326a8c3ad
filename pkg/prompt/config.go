package prompt

import "promptpack/pkg/ignore"

// Arguments holds the configuration options for a prompt-generation run.
type Arguments struct {
	Root        string   // Project directory to process.
	Includes    []string // Include glob patterns, in the order given.
	Excludes    []string // Exclude glob patterns, in the order given.
	Output      string   // Destination path for the document; empty means stdout.
	NoGitignore bool     // If true, .gitignore processing is disabled.
	MaxSize     string   // Size budget string, e.g. "1mb".
}

// Rules is the compiled, immutable selection configuration for a run.
type Rules struct {
	Includes []*ignore.Glob    // Compiled include patterns, in the order given.
	Excludes []*ignore.Glob    // Compiled exclude patterns, in the order given.
	Ignore   *ignore.GitIgnore // Ignore-rule set; nil when disabled.
}

// CandidateFile is a file that passed all selection filters and is eligible
// for inclusion, pending budget.
type CandidateFile struct {
	Path string // Slash-separated path relative to the project root.
	Size int64  // On-disk size in bytes.
}
