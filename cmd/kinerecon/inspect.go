package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/aberthier/kinerecon/internal/exitcode"
	"github.com/aberthier/kinerecon/internal/extract"
	"github.com/aberthier/kinerecon/internal/logging"
	"github.com/aberthier/kinerecon/internal/model"
	"github.com/aberthier/kinerecon/internal/normalize"
	"github.com/aberthier/kinerecon/internal/sheetread"
	"github.com/aberthier/kinerecon/internal/table"
)

var (
	inspectFile  string
	inspectKind  string
	inspectSheet string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Dry-run extraction and stats (no writes)",
	RunE:  runInspect,
}

func init() {
	f := inspectCmd.Flags()
	f.StringVar(&inspectFile, "file", "", "Path to workbook (required)")
	f.StringVar(&inspectKind, "kind", "", "Input kind: personal or facility (required)")
	f.StringVar(&inspectSheet, "sheet", "", "Sheet name (default: first sheet)")
	_ = inspectCmd.MarkFlagRequired("file")
	_ = inspectCmd.MarkFlagRequired("kind")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	var extractor func(table.Table) []model.BillingRecord
	switch inspectKind {
	case "personal":
		extractor = extract.PersonalLog
	case "facility":
		extractor = extract.FacilityReport
	default:
		log.Error().Str("kind", inspectKind).Msg("kind must be personal or facility")
		os.Exit(exitcode.UsageError)
	}

	sha, err := normalize.FileHash(inspectFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash file")
		os.Exit(exitcode.ValidationError)
	}
	stat, err := os.Stat(inspectFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to stat file")
		os.Exit(exitcode.ValidationError)
	}

	tbl, err := sheetread.ReadTable(inspectFile, inspectSheet, cfg.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to read workbook")
		os.Exit(exitcode.DecodeError)
	}
	records := extractor(tbl)

	patients := make(map[string]struct{})
	minDay, maxDay := 0, 0
	for _, r := range records {
		patients[r.FileNumber] = struct{}{}
		if minDay == 0 || r.Day < minDay {
			minDay = r.Day
		}
		if r.Day > maxDay {
			maxDay = r.Day
		}
	}

	fmt.Println("=== kinerecon inspect ===")
	fmt.Printf("File:     %s\n", inspectFile)
	fmt.Printf("SHA-256:  %s\n", sha)
	fmt.Printf("Size:     %d bytes\n", stat.Size())
	fmt.Printf("Kind:     %s\n", inspectKind)
	fmt.Printf("Rows:     %d\n", tbl.NumRows())
	fmt.Printf("Records:  %d\n", len(records))
	fmt.Printf("Patients: %d\n", len(patients))
	if len(records) > 0 {
		fmt.Printf("Days:     %d-%d\n", minDay, maxDay)
	}
	fmt.Println()
	fmt.Println("Code distribution:")
	for _, cc := range codeDistribution(records) {
		fmt.Printf("  %-8s %d\n", cc.code, cc.count)
	}
	return nil
}

type codeCount struct {
	code  string
	count int
}

// codeDistribution tallies the codes actually observed in the records,
// sorted by code name. Facility reports can carry codes outside the known
// vocabulary; those must show up here too.
func codeDistribution(records []model.BillingRecord) []codeCount {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Code]++
	}
	dist := make([]codeCount, 0, len(counts))
	for code, n := range counts {
		dist = append(dist, codeCount{code: code, count: n})
	}
	sort.Slice(dist, func(i, j int) bool { return dist[i].code < dist[j].code })
	return dist
}
