package prompt

import (
	"fmt"
	"strings"
)

const (
	documentTitle       = "# My Project code"
	documentDescription = "This document contains all the code files in the project."
	structureHeader     = "## Project Structure"
	contentsHeader      = "## File Contents"

	directoryGlyph = "📁"
	fileGlyph      = "📄"
)

// preambleSize is the byte length of the fixed document preamble (title line,
// description line, and the file-contents section header) that counts toward
// the budget before any file block is added.
func preambleSize() int {
	return len(documentTitle+"\n\n") + len(documentDescription+"\n\n") + len(contentsHeader+"\n\n")
}

// BuildDocument assembles the final document from the finished assembly
// state, as four ordered sections: title, summary, project structure, and
// file contents.
func BuildDocument(state *AssemblyState) string {
	var doc strings.Builder

	doc.WriteString(documentTitle + "\n\n")
	doc.WriteString(documentDescription + "\n\n")

	doc.WriteString(fmt.Sprintf("Total files included: %d\n", len(state.Included)))
	if len(state.Skipped) > 0 {
		doc.WriteString(fmt.Sprintf("Note: %d files were skipped due to size constraints.\n", len(state.Skipped)))
	}
	doc.WriteString("\n")

	doc.WriteString(structureHeader + "\n\n")
	doc.WriteString(buildStructure(state.Included))
	doc.WriteString("\n")

	doc.WriteString(contentsHeader + "\n\n")
	doc.WriteString(state.Contents())

	return doc.String()
}

// buildStructure renders the project structure section: every ancestor
// directory of every included file exactly once, in the order directories are
// discovered while iterating included files, then every included file. Depth
// is two spaces per containing-directory level.
func buildStructure(included []string) string {
	var out strings.Builder
	seenDirs := make(map[string]bool)

	for _, path := range included {
		parts := strings.Split(path, "/")
		prefix := ""
		for depth, part := range parts[:len(parts)-1] {
			if prefix == "" {
				prefix = part
			} else {
				prefix = prefix + "/" + part
			}
			if seenDirs[prefix] {
				continue
			}
			seenDirs[prefix] = true
			out.WriteString(strings.Repeat("  ", depth))
			out.WriteString(directoryGlyph + " " + prefix + "\n")
		}
	}

	for _, path := range included {
		depth := strings.Count(path, "/")
		out.WriteString(strings.Repeat("  ", depth))
		out.WriteString(fileGlyph + " " + path + "\n")
	}

	return out.String()
}
