package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aberthier/kinerecon/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "kinerecon",
	Short: "Physiotherapy billing log vs facility report comparator",
	Long:  "Compares a practitioner's personal billing log against the facility-issued treatment report and exports the differences as an Excel workbook.",
}

func init() {
	// Load a .env before the env-backed flag defaults below read it.
	_ = godotenv.Load()

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.LogFormat, "log-format", envOr("KINERECON_LOG_FORMAT", "text"), "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", envOr("KINERECON_LOG_LEVEL", "info"), "Log level: trace, debug, info, warn, or error")
	pf.StringVar(&cfg.Password, "password", os.Getenv("KINERECON_PASSWORD"), "Password for protected workbooks (or set KINERECON_PASSWORD)")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
