package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"livestock-registry/internal/platform/config"
	"livestock-registry/internal/platform/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "livestock-registry",
	Short: "Registro de ganado con identificación de raza por IA",
	Long: `Servicio HTTP para registrar bovinos y búfalos: wizard de alta/edición,
identificación de raza con Gemini, certificados y exportación CSV.

Sin subcomando arranca el servidor (igual que "serve").`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (yaml); env vars override it (PORT, DB_DSN, GEMINI_API_KEY, ...)")

	rootCmd.AddCommand(serveCmd, exportCmd, tokenCmd)
}

func loadConfig() (config.Config, error) {
	return config.Load(viper.New(), cfgFile)
}

func newLogger(cfg config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})
}

func syncLogger(log logger.Logger) {
	if s, ok := log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}
