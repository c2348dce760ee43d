// Package output renders scan results as pretty text, plain text, an
// ASCII table, or JSON.
package output

import (
	"time"

	"github.com/extrise/devdust/internal/scan"
)

// Entry pairs a detected project with its measured artifact size.
type Entry struct {
	Project  scan.Project
	Size     int64
	Modified time.Time // zero when unknown
}

// Report is everything a scan produced, ready for rendering.
type Report struct {
	Entries    []Entry
	TotalBytes int64
	Warnings   []string
}

// Add appends an entry and grows the total.
func (r *Report) Add(e Entry) {
	r.Entries = append(r.Entries, e)
	r.TotalBytes += e.Size
}
