package gamepedia

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dasdy/gamepedia/catalog"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect a game catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the games of the catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadCatalog(catalogFile)
		if err != nil {
			return err
		}

		return printCatalog(cmd.OutOrStdout(), c)
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a catalog file for duplicate ids and missing fields",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if catalogFile == "" {
			return fmt.Errorf("--catalog-file is required")
		}

		c, err := loadCatalog(catalogFile)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d games, ok\n", catalogFile, c.Len())

		return err
	},
}

func printCatalog(w io.Writer, c *catalog.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tGENRE\tLABEL\tIMAGE")

	for _, item := range c.Items() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", item.ID, item.Genre, item.Label, item.ImageRef)
	}

	return tw.Flush()
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)

	catalogCmd.PersistentFlags().StringVar(
		&catalogFile,
		"catalog-file",
		"",
		"Path to a TOML catalog; the built-in catalog is used when empty")
}
