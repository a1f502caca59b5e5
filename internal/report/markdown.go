package report

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownExporter renders the report as a markdown document
type MarkdownExporter struct{}

// NewMarkdownExporter creates a new markdown exporter
func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{}
}

// Format returns the exporter format identifier
func (e *MarkdownExporter) Format() string {
	return "markdown"
}

// Export writes the report as markdown tables
func (e *MarkdownExporter) Export(rep *Report, w io.Writer) error {
	if rep.Stackup != nil {
		if _, err := fmt.Fprintf(w, "## Stackup: %s\n\n", rep.Stackup.Name); err != nil {
			return err
		}
		if err := writeMarkdownTable(w, stackupHeader(), stackupRows(rep.Stackup)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\nTotal thickness: %s um\n\n## Materials\n\n",
			formatFloat(rep.Stackup.TotalThicknessUm())); err != nil {
			return err
		}
		if err := writeMarkdownTable(w, materialsHeader(), materialsRows(rep.Stackup)); err != nil {
			return err
		}
	}

	if rep.Nets != nil {
		if _, err := fmt.Fprint(w, "\n## Nets\n\n"); err != nil {
			return err
		}
		if err := writeMarkdownTable(w, netsHeader(), netsRows(rep.Nets)); err != nil {
			return err
		}
	}

	return nil
}

func writeMarkdownTable(w io.Writer, header []string, rows [][]string) error {
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(header, " | ")); err != nil {
		return err
	}
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(row, " | ")); err != nil {
			return err
		}
	}
	return nil
}

// SimpleExporter renders the report as plain aligned-column text
type SimpleExporter struct{}

// NewSimpleExporter creates a new plain-text exporter
func NewSimpleExporter() *SimpleExporter {
	return &SimpleExporter{}
}

// Format returns the exporter format identifier
func (e *SimpleExporter) Format() string {
	return "simple"
}

// Export writes the report as aligned text tables
func (e *SimpleExporter) Export(rep *Report, w io.Writer) error {
	if rep.Stackup != nil {
		if _, err := fmt.Fprintf(w, "Stackup: %s\n\n", rep.Stackup.Name); err != nil {
			return err
		}
		if err := writeAlignedTable(w, stackupHeader(), stackupRows(rep.Stackup)); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, "\nMaterials\n\n"); err != nil {
			return err
		}
		if err := writeAlignedTable(w, materialsHeader(), materialsRows(rep.Stackup)); err != nil {
			return err
		}
	}

	if rep.Nets != nil {
		if _, err := fmt.Fprint(w, "\nNets\n\n"); err != nil {
			return err
		}
		if err := writeAlignedTable(w, netsHeader(), netsRows(rep.Nets)); err != nil {
			return err
		}
	}

	return nil
}

func writeAlignedTable(w io.Writer, header []string, rows [][]string) error {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) error {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = cell + strings.Repeat(" ", widths[i]-len(cell))
		}
		_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
		return err
	}

	if err := writeRow(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(row); err != nil {
			return err
		}
	}
	return nil
}
