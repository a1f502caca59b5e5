package cmd

import (
	"fmt"
	"log"
	"os"

	"zcalc/internal/config"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded before any subcommand runs
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "zcalc",
	Short: "PCB trace width / impedance / current calculator",
	Long: `zcalc validates PCB stackup and net list definitions and renders them
as tables and reports. The stackup file describes the physical board
cross-section (copper, cores, prepregs, mask); the net list describes
per-net electrical and layout requirements.

Examples:
  zcalc check --stackup board.yaml --nets nets.yaml
  zcalc report --stackup board.yaml --nets nets.yaml --out ./out --format csv
  zcalc materials import --stackup board.yaml`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var (
			path string
			err  error
		)
		if configPath != "" {
			cfg, path, err = config.LoadFromPath(configPath)
		} else {
			cfg, path, err = config.Load()
		}
		if err != nil {
			return err
		}
		if verbose && path != "" {
			log.Printf("config loaded from %s", path)
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	log.SetFlags(0)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "explicit config file path")
}
