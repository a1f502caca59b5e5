package report

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVExporter renders the report as delimiter-separated tables, one
// section per table with a blank record between sections.
type CSVExporter struct {
	comma  rune
	format string
}

// NewCSVExporter creates a comma-separated exporter
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{comma: ',', format: "csv"}
}

// NewTSVExporter creates a tab-separated exporter
func NewTSVExporter() *CSVExporter {
	return &CSVExporter{comma: '\t', format: "tsv"}
}

// Format returns the exporter format identifier
func (e *CSVExporter) Format() string {
	return e.format
}

// Export writes the report's tables through encoding/csv
func (e *CSVExporter) Export(rep *Report, w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = e.comma

	first := true
	writeSection := func(header []string, rows [][]string) error {
		if !first {
			// Blank line between sections
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		first = false
		if err := cw.Write(header); err != nil {
			return err
		}
		if err := cw.WriteAll(rows); err != nil {
			return err
		}
		cw.Flush()
		return cw.Error()
	}

	if rep.Stackup != nil {
		if err := writeSection(stackupHeader(), stackupRows(rep.Stackup)); err != nil {
			return err
		}
		if err := writeSection(materialsHeader(), materialsRows(rep.Stackup)); err != nil {
			return err
		}
	}
	if rep.Nets != nil {
		if err := writeSection(netsHeader(), netsRows(rep.Nets)); err != nil {
			return err
		}
	}

	return nil
}
