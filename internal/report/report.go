// Package report renders validated stackup and net list models for
// human consumption. Exporters exist for markdown, plain-text, CSV,
// TSV and JSON output; all of them are pure consumers of the domain
// types and never mutate them.
package report

import (
	"fmt"
	"io"
	"time"

	"zcalc/internal/domain"

	"github.com/google/uuid"
)

// Report bundles the validated models of one zcalc run together with
// an identifier and timestamp for traceability in output directories.
type Report struct {
	ID          string           `json:"id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Stackup     *domain.Stackup  `json:"stackup,omitempty"`
	Nets        []domain.NetSpec `json:"nets,omitempty"`
}

// New builds a report for the given models with a fresh run ID
func New(st *domain.Stackup, nets []domain.NetSpec) *Report {
	return &Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Stackup:     st,
		Nets:        nets,
	}
}

// Exporter renders a report to a writer in one output format
type Exporter interface {
	Export(rep *Report, w io.Writer) error
	Format() string
}

// ForFormat returns the exporter for a format identifier
func ForFormat(format string) (Exporter, error) {
	switch format {
	case "markdown":
		return NewMarkdownExporter(), nil
	case "simple":
		return NewSimpleExporter(), nil
	case "csv":
		return NewCSVExporter(), nil
	case "tsv":
		return NewTSVExporter(), nil
	case "json":
		return NewJSONExporter(), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// Formats lists the supported format identifiers
func Formats() []string {
	return []string{"markdown", "simple", "csv", "tsv", "json"}
}
