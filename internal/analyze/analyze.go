// Package analyze implements the page completeness heuristic.
//
// A page counts as completed when it has substantial content (more than
// 100 words) backed by either a code block or visible structure (at
// least two sub-headers), or when it is very long outright (more than
// 300 words). The signals are computed over the raw markdown text, not
// a parsed AST, so the thresholds stay stable regardless of how a
// renderer would interpret the file.
package analyze

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// wordPattern matches maximal runs of letters, digits and
	// underscores, the same token class Python's \w matches.
	wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

	// headerPattern matches level 2-4 markdown headers anchored at a
	// true line start. Indented headers do not count as structure.
	headerPattern = regexp.MustCompile(`(?m)^#{2,4} `)
)

const codeFence = "```"

// Stats holds the raw signals the completeness verdict is derived from.
type Stats struct {
	WordCount   int
	HasCode     bool
	HeaderCount int
}

// Text extracts completion signals from raw page content.
func Text(content string) Stats {
	return Stats{
		WordCount:   len(wordPattern.FindAllStringIndex(content, -1)),
		HasCode:     strings.Contains(content, codeFence),
		HeaderCount: len(headerPattern.FindAllStringIndex(content, -1)),
	}
}

// Completed applies the heuristic to the extracted signals.
func (s Stats) Completed() bool {
	if s.WordCount > 300 {
		return true
	}
	return s.WordCount > 100 && (s.HasCode || s.HeaderCount >= 2)
}

// File classifies the page at path. A page that does not exist yet is
// simply not completed. Read failures and non-UTF-8 content degrade to
// not completed with a diagnostic on w; they never abort the caller's
// run.
func File(path string, w io.Writer) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false
		}
		fmt.Fprintf(w, "Error reading %s: %v\n", path, err)
		return false
	}
	if !utf8.Valid(data) {
		fmt.Fprintf(w, "Error reading %s: invalid UTF-8\n", path)
		return false
	}
	return Text(string(data)).Completed()
}
