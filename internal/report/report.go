// Package report produces the two authoring artifacts: the plain-text
// page selection list and the JSON status report.
package report

import (
	"encoding/json"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/itsmostafa/mkstat/internal/analyze"
	"github.com/itsmostafa/mkstat/internal/nav"
)

// Record is one page's entry in the status report.
type Record struct {
	ID        int    `json:"id"`
	Path      string `json:"path"`
	Completed bool   `json:"completed"`
	Status    string `json:"status"`
}

// Status values derived from the completed flag.
const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
)

// Slice returns the pages between two fractional offsets of the full
// list. Both ends are inclusive: a 100-page list with fractions 0.11
// and 0.15 yields indices 11 through 15. The end index is clamped to
// the last page so an end fraction at or above 1.0 stays in range.
func Slice(pages []nav.Page, startFrac, endFrac float64) []nav.Page {
	total := len(pages)
	if total == 0 {
		return nil
	}

	start := int(float64(total) * startFrac)
	end := int(float64(total) * endFrac)
	if end >= total {
		end = total - 1
	}
	if start < 0 {
		start = 0
	}
	if start > end {
		return nil
	}

	return pages[start : end+1]
}

// WritePageList writes one docs-root-prefixed page path per line.
func WritePageList(outPath, docsDir string, pages []nav.Page) error {
	var sb strings.Builder
	for _, p := range pages {
		sb.WriteString(path.Join(docsDir, p.Path))
		sb.WriteByte('\n')
	}
	return os.WriteFile(outPath, []byte(sb.String()), 0o644)
}

// Generate classifies every page and builds status records in flatten
// order, so record IDs form the contiguous range 0..N-1. Per-page read
// failures are reported on w and the page stays pending; they never
// abort the batch.
func Generate(pages []nav.Page, docsDir string, w io.Writer) []Record {
	records := make([]Record, 0, len(pages))
	for _, p := range pages {
		completed := analyze.File(filepath.Join(docsDir, p.Path), w)
		status := StatusPending
		if completed {
			status = StatusCompleted
		}
		records = append(records, Record{
			ID:        p.Index,
			Path:      p.Path,
			Completed: completed,
			Status:    status,
		})
	}
	return records
}

// WriteStatus writes the records as a 4-space-indented JSON array.
func WriteStatus(outPath string, records []Record) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}
