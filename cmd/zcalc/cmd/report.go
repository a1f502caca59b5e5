package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"zcalc/internal/report"

	"github.com/spf13/cobra"
)

var (
	reportStackupPath string
	reportNetsPath    string
	reportOutDir      string
	reportFormat      string
	reportStrict      bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Validate the inputs and write a report file",
	Long: `Load and validate both input documents, create the output directory
if needed, and write the rendered report into it.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportStackupPath, "stackup", "",
		"YAML file describing the physical PCB stackup")
	reportCmd.Flags().StringVar(&reportNetsPath, "nets", "",
		"YAML file describing per-net electrical and layout requirements")
	reportCmd.Flags().StringVar(&reportOutDir, "out", "",
		"output directory (default from config)")
	reportCmd.Flags().StringVar(&reportFormat, "format", "",
		"report format: markdown, simple, csv, tsv, json (default from config)")
	reportCmd.Flags().BoolVar(&reportStrict, "strict", false,
		"resolve net-to-layer references and reject duplicate net names")
	reportCmd.MarkFlagRequired("stackup")
	reportCmd.MarkFlagRequired("nets")
}

// reportExtensions maps format identifiers to file extensions
var reportExtensions = map[string]string{
	"markdown": "md",
	"simple":   "txt",
	"csv":      "csv",
	"tsv":      "tsv",
	"json":     "json",
}

func runReport(cmd *cobra.Command, args []string) error {
	st, nets, err := loadInputs(reportStackupPath, reportNetsPath, reportStrict)
	if err != nil {
		return err
	}

	format := reportFormat
	if format == "" {
		format = cfg.Output.TableFormat
	}
	exporter, err := report.ForFormat(format)
	if err != nil {
		return err
	}

	outDir := reportOutDir
	if outDir == "" {
		outDir = cfg.Output.Dir
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	rep := report.New(st, nets)
	path := filepath.Join(outDir, fmt.Sprintf("%s-report.%s", st.Name, reportExtensions[format]))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := exporter.Export(rep, f); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	fmt.Printf("report %s written to %s\n", rep.ID, path)
	return nil
}
