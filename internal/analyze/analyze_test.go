package analyze

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// words builds text containing exactly n word tokens.
func words(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "word%d ", i)
	}
	return sb.String()
}

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Stats
	}{
		{"empty", "", Stats{}},
		{"plain words", "one two three", Stats{WordCount: 3}},
		{"apostrophe splits tokens", "don't", Stats{WordCount: 2}},
		{"unicode word", "café", Stats{WordCount: 1}},
		{"code fence", "```go\nx := 1\n```", Stats{WordCount: 3, HasCode: true}},
		{"single fence marker counts", "before ``` after", Stats{WordCount: 2, HasCode: true}},
		{"two sub-headers", "## One\n### Two\n", Stats{WordCount: 2, HeaderCount: 2}},
		{"top-level header does not count", "# Title\n", Stats{WordCount: 1}},
		{"level five header does not count", "##### Deep\n", Stats{WordCount: 1}},
		{"indented header does not count", "  ## Indented\n", Stats{WordCount: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Text(tt.input)
			if result != tt.expected {
				t.Errorf("Text(%q) = %+v, want %+v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCompleted(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		completed bool
	}{
		{"exactly 100 words", words(100), false},
		{"101 words without code or structure", words(101), false},
		{"101 words with a code fence", words(101) + "\n```\n", true},
		{"101 words with two sub-headers", "## alpha\n## beta\n" + words(99), true},
		{"101 words with one sub-header", "## alpha\n" + words(100), false},
		{"headers at levels three and four", "### alpha\n#### beta\n" + words(99), true},
		{"indented headers give no structure", "  ## alpha\n  ## beta\n" + words(99), false},
		{"exactly 300 words", words(300), false},
		{"301 words and nothing else", words(301), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.content).Completed(); got != tt.completed {
				t.Errorf("Completed() = %v, want %v", got, tt.completed)
			}
		})
	}
}

func TestFile(t *testing.T) {
	t.Run("missing file is pending without diagnostics", func(t *testing.T) {
		var buf bytes.Buffer
		if File(filepath.Join(t.TempDir(), "missing.md"), &buf) {
			t.Error("expected missing file to be pending")
		}
		if buf.Len() != 0 {
			t.Errorf("expected no diagnostics, got %q", buf.String())
		}
	})

	t.Run("completed page", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "page.md")
		if err := os.WriteFile(path, []byte(words(301)), 0o644); err != nil {
			t.Fatal(err)
		}
		if !File(path, io.Discard) {
			t.Error("expected 301-word page to be completed")
		}
	})

	t.Run("invalid utf8 degrades to pending", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "page.md")
		if err := os.WriteFile(path, []byte{0xff, 0xfe, 0xfd}, 0o644); err != nil {
			t.Fatal(err)
		}

		var buf bytes.Buffer
		if File(path, &buf) {
			t.Error("expected invalid utf8 page to be pending")
		}
		if !strings.Contains(buf.String(), "invalid UTF-8") {
			t.Errorf("expected utf8 diagnostic, got %q", buf.String())
		}
	})

	t.Run("read failure degrades to pending", func(t *testing.T) {
		// A directory exists but cannot be read as a file.
		var buf bytes.Buffer
		if File(t.TempDir(), &buf) {
			t.Error("expected unreadable path to be pending")
		}
		if !strings.Contains(buf.String(), "Error reading") {
			t.Errorf("expected read diagnostic, got %q", buf.String())
		}
	})
}
