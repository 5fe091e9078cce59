package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"livestock-registry/internal/domain/registrations"
	"livestock-registry/internal/router"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exporta todos los registros a CSV",
	Long: `Exporta los registros del store configurado a CSV (una fila por animal).

Examples:
  livestock-registry export > registrations.csv
  livestock-registry export --out registrations.csv
  STORAGE_BACKEND=sqlite livestock-registry export`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		repo, closeRepo, err := router.OpenRepository(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer func() { _ = closeRepo() }()

		var w io.Writer = cmd.OutOrStdout()
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create %s: %w", exportOut, err)
			}
			defer f.Close()
			w = f
		}
		return registrations.NewService(repo).Export(cmd.Context(), w)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
}
