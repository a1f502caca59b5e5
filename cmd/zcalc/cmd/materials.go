package cmd

import (
	"fmt"

	"zcalc/internal/library"
	"zcalc/internal/loader"

	"github.com/spf13/cobra"
)

var (
	materialsDBPath     string
	materialsImportPath string
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "Manage the reusable materials library",
}

var materialsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cataloged materials",
	RunE:  runMaterialsList,
}

var materialsImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a stackup's materials into the library",
	RunE:  runMaterialsImport,
}

func init() {
	rootCmd.AddCommand(materialsCmd)
	materialsCmd.AddCommand(materialsListCmd)
	materialsCmd.AddCommand(materialsImportCmd)

	materialsCmd.PersistentFlags().StringVar(&materialsDBPath, "db", "",
		"materials library path (default from config)")
	materialsImportCmd.Flags().StringVar(&materialsImportPath, "stackup", "",
		"stackup file whose materials should be imported")
	materialsImportCmd.MarkFlagRequired("stackup")
}

func openLibrary() (*library.Library, error) {
	path := materialsDBPath
	if path == "" {
		path = cfg.Library.Path
	}
	return library.Open(path)
}

func runMaterialsList(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	materials, err := lib.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(materials) == 0 {
		fmt.Println("library is empty")
		return nil
	}

	fmt.Printf("%-24s %-12s %8s %14s\n", "NAME", "KIND", "ER", "COND (S/m)")
	for _, m := range materials {
		er, cond := "-", "-"
		if m.Er != nil {
			er = fmt.Sprintf("%g", *m.Er)
		}
		if m.Conductivity != nil {
			cond = fmt.Sprintf("%g", *m.Conductivity)
		}
		fmt.Printf("%-24s %-12s %8s %14s\n", m.Name, m.Kind, er, cond)
	}
	return nil
}

func runMaterialsImport(cmd *cobra.Command, args []string) error {
	st, err := loader.LoadStackup(materialsImportPath)
	if err != nil {
		return err
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	if err := lib.ImportStackup(cmd.Context(), st); err != nil {
		return err
	}

	fmt.Printf("imported %d materials from %q\n", len(st.Materials), st.Name)
	return nil
}
