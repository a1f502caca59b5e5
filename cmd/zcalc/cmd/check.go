package cmd

import (
	"log"
	"os"

	"zcalc/internal/domain"
	"zcalc/internal/loader"
	"zcalc/internal/report"

	"github.com/spf13/cobra"
)

var (
	checkStackupPath string
	checkNetsPath    string
	checkStrict      bool
	checkTableFormat string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a stackup and net list and print them as tables",
	Long: `Load and validate both input documents, then print the stackup and
net list as tables on stdout. Exits non-zero when either document
fails validation.

With --strict, net-to-layer references are resolved against the
stackup and duplicate net names are rejected.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkStackupPath, "stackup", "",
		"YAML file describing the physical PCB stackup")
	checkCmd.Flags().StringVar(&checkNetsPath, "nets", "",
		"YAML file describing per-net electrical and layout requirements")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false,
		"resolve net-to-layer references and reject duplicate net names")
	checkCmd.Flags().StringVar(&checkTableFormat, "table-format", "",
		"table format for stdout summary: markdown, simple, csv, tsv, json (default from config)")
	checkCmd.MarkFlagRequired("stackup")
	checkCmd.MarkFlagRequired("nets")
}

func runCheck(cmd *cobra.Command, args []string) error {
	st, nets, err := loadInputs(checkStackupPath, checkNetsPath, checkStrict)
	if err != nil {
		return err
	}

	format := checkTableFormat
	if format == "" {
		format = cfg.Output.TableFormat
	}
	exporter, err := report.ForFormat(format)
	if err != nil {
		return err
	}

	return exporter.Export(report.New(st, nets), os.Stdout)
}

// loadInputs loads and validates both documents, applies the config's
// fabrication fallback, and optionally runs the strict cross-check.
func loadInputs(stackupPath, netsPath string, strict bool) (*domain.Stackup, []domain.NetSpec, error) {
	st, err := loader.LoadStackup(stackupPath)
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		log.Printf("stackup %q: %d layers, %d materials", st.Name, len(st.Layers), len(st.Materials))
	}

	// Documents without a fabrication section fall back to the config's
	// limits rather than the built-in ones.
	if st.Fabrication == domain.DefaultFabrication() {
		st.Fabrication = cfg.EffectiveFabrication()
	}

	nets, err := loader.LoadNets(netsPath)
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		log.Printf("net list: %d nets", len(nets))
	}

	if strict {
		if err := loader.CrossCheck(st, nets); err != nil {
			return nil, nil, err
		}
	}

	return st, nets, nil
}
