package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aks-labs/website/internal/export"
)

var exportFlags struct {
	out string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the site to static files",
	Long: `Export renders every page into a directory laid out for static
hosting: each route becomes <route>/index.html, the crawler files land
at the top and the embedded assets are copied under static/.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlags.out, "out", "o", "public", "Output directory")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	log := newLogger()

	svc, s, _, err := loadContent(log)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	res, err := export.New(log, s, svc).Run(cmd.Context(), exportFlags.out)
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d pages and %d assets to %s\n", res.Pages, res.Assets, exportFlags.out)
	return nil
}
