package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aberthier/kinerecon/internal/exitcode"
	"github.com/aberthier/kinerecon/internal/logging"
	"github.com/aberthier/kinerecon/internal/sheetread"
)

var sheetsFile string

var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "List the sheet names in a workbook",
	RunE:  runSheets,
}

func init() {
	sheetsCmd.Flags().StringVar(&sheetsFile, "file", "", "Path to workbook (required)")
	_ = sheetsCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(sheetsCmd)
}

func runSheets(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	names, err := sheetread.SheetNames(sheetsFile, cfg.Password)
	if err != nil {
		log.Error().Err(err).Str("file", sheetsFile).Msg("failed to read workbook")
		os.Exit(exitcode.DecodeError)
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
