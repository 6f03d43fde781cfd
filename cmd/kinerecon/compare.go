package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aberthier/kinerecon/internal/errlog"
	"github.com/aberthier/kinerecon/internal/exitcode"
	"github.com/aberthier/kinerecon/internal/logging"
	"github.com/aberthier/kinerecon/internal/pipeline"
)

var configPath string

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare a personal billing log against a facility report",
	RunE:  runCompare,
}

func init() {
	f := compareCmd.Flags()
	f.StringVar(&cfg.PersonalPath, "personal", "", "Path to the personal billing log (required)")
	f.StringVar(&cfg.FacilityPath, "facility", "", "Path to the facility report (required)")
	f.StringVar(&cfg.PersonalSheet, "personal-sheet", "", "Sheet name in the personal log (default: first sheet)")
	f.StringVar(&cfg.FacilitySheet, "facility-sheet", "", "Sheet name in the facility report (default: first sheet)")
	f.StringVar(&cfg.OutputPath, "out", "", "Output workbook path (default: comparaison_<sheet>_<timestamp>.xlsx)")
	f.StringVar(&cfg.ArchivePath, "archive", "", "Optional Parquet archive of all extracted records")
	f.StringVar(&cfg.ErrorLogDir, "error-log-dir", errlog.DefaultDir, "Directory for failure reports")
	f.StringVar(&configPath, "config", "", "Optional YAML config file (billing code subset)")
	_ = compareCmd.MarkFlagRequired("personal")
	_ = compareCmd.MarkFlagRequired("facility")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if configPath != "" {
		if err := cfg.LoadFromFile(configPath); err != nil {
			log.Error().Err(err).Msg("config load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.ValidationError)
	}

	summary, err := pipeline.Run(log, &cfg)
	if err != nil {
		reportFailure(log, err)
		var pe *pipeline.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("comparison failed")
			switch pe.Phase {
			case "read-personal", "read-facility":
				os.Exit(exitcode.DecodeError)
			default:
				os.Exit(exitcode.ExportError)
			}
		}
		log.Error().Err(err).Msg("comparison failed")
		os.Exit(exitcode.ExportError)
	}

	fmt.Printf("Compare complete: %d matched, %d missing in facility report, %d missing in personal log (%.1fs)\n",
		summary.Matched, summary.PersonalOnly, summary.FacilityOnly, summary.DurationTotal.Seconds())
	fmt.Printf("Artifact: %s\n", summary.OutputPath)
	return nil
}

// reportFailure persists the failure for the practitioner to send along.
// Losing the report is never fatal.
func reportFailure(log zerolog.Logger, runErr error) {
	runID := ""
	var pe *pipeline.PipelineError
	if errors.As(runErr, &pe) {
		runID = pe.RunID
	}
	path, err := errlog.Write(cfg.ErrorLogDir, runID, runErr)
	if err != nil {
		log.Warn().Err(err).Msg("could not write failure report")
		return
	}
	log.Info().Str("file", path).Msg("failure report written")
}
