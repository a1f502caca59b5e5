package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"zcalc/internal/report"
	"zcalc/internal/watcher"

	"github.com/spf13/cobra"
)

var (
	watchStackupPath string
	watchNetsPath    string
	watchStrict      bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Revalidate the inputs whenever they change on disk",
	Long: `Validate both documents, then keep watching them and revalidate on
every save. Validation errors are printed but do not stop the watch;
interrupt with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchStackupPath, "stackup", "",
		"YAML file describing the physical PCB stackup")
	watchCmd.Flags().StringVar(&watchNetsPath, "nets", "",
		"YAML file describing per-net electrical and layout requirements")
	watchCmd.Flags().BoolVar(&watchStrict, "strict", false,
		"resolve net-to-layer references and reject duplicate net names")
	watchCmd.MarkFlagRequired("stackup")
	watchCmd.MarkFlagRequired("nets")
}

func runWatch(cmd *cobra.Command, args []string) error {
	revalidate := func() {
		st, nets, err := loadInputs(watchStackupPath, watchNetsPath, watchStrict)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return
		}
		exporter, err := report.ForFormat(cfg.Output.TableFormat)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return
		}
		if err := exporter.Export(report.New(st, nets), os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}

	revalidate()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := watcher.New([]string{watchStackupPath, watchNetsPath}, func(path string) {
		log.Printf("%s changed, revalidating", path)
		revalidate()
	})

	if err := w.Watch(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
