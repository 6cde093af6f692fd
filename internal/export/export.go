// Package export serializes project slices to the downloadable JSON
// artifact the dashboards offer. The sink is pluggable so the HTTP layer
// can stream the file while ops tooling writes to disk.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"callsheet/internal/model"
)

// Sink receives a finished export artifact.
type Sink interface {
	Export(filename string, content []byte) error
}

// FileSink writes artifacts into a directory.
type FileSink struct {
	Dir string
}

func (s FileSink) Export(filename string, content []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export dir: %w", err)
	}
	path := filepath.Join(s.Dir, filename)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// Filename builds the artifact name: <slugified-title>-<section>-<date>.json.
func Filename(title, section string, date time.Time) string {
	return fmt.Sprintf("%s-%s-%s.json", Slugify(title), section, date.Format("2006-01-02"))
}

// Slugify lowercases the title and collapses every run of
// non-alphanumeric characters into a single dash.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Section extracts the named slice of the project and renders it as
// pretty-printed JSON.
func Section(p *model.ProductionProject, section string) ([]byte, error) {
	var v any
	switch section {
	case "project":
		v = p
	case "budget":
		v = p.Budget
	case "schedule":
		v = p.Schedule
	case "milestones":
		v = p.Milestones
	case "team":
		v = p.Team
	case "equipment":
		v = p.Equipment
	case "legal":
		v = p.Legal
	case "distribution":
		v = p.Distribution
	case "documents":
		v = p.Documents
	default:
		return nil, fmt.Errorf("unknown export section %q", section)
	}
	return json.MarshalIndent(v, "", "  ")
}
