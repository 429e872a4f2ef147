package cli

import (
	"github.com/spf13/cobra"
)

var catalogJSON bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Animation catalog commands",
	Long:  `Commands for the catalog of default animations used when none is given.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog animations",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

func init() {
	catalogListCmd.Flags().BoolVar(&catalogJSON, "json", false, "output as JSON")
	catalogCmd.AddCommand(catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	model, err := requireModel()
	if err != nil {
		return err
	}

	sources := model.Catalog()
	if catalogJSON {
		return printJSON(cmd, sources)
	}

	if len(sources) == 0 {
		cmd.Println("Catalog is empty.")
		return nil
	}
	for i, s := range sources {
		cmd.Printf("  [%d] %s\n", i, s.Name)
		cmd.Printf("      %s\n", s.URI)
	}
	return nil
}
