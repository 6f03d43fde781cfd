package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aberthier/kinerecon/internal/config"
	"github.com/aberthier/kinerecon/internal/export"
	"github.com/aberthier/kinerecon/internal/extract"
	"github.com/aberthier/kinerecon/internal/model"
	"github.com/aberthier/kinerecon/internal/normalize"
	"github.com/aberthier/kinerecon/internal/reconcile"
	"github.com/aberthier/kinerecon/internal/sheetread"
	"github.com/aberthier/kinerecon/internal/table"
)

// PipelineError wraps an error with the phase and run where it occurred.
type PipelineError struct {
	Phase string
	RunID string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// side holds one decoded and extracted input.
type side struct {
	records []model.BillingRecord
	rows    int64
	sha256  string
}

// Run executes the full comparison pipeline: read-personal → read-facility →
// compare → export → archive. The caller is expected to have validated cfg.
func Run(log zerolog.Logger, cfg *config.Config) (*model.CompareSummary, error) {
	totalStart := time.Now()
	runID := uuid.New().String()
	log = log.With().Str("run_id", runID).Logger()

	allowed := cfg.AllowedCodes()

	// Phase 1: read and extract the personal log
	readStart := time.Now()
	log.Info().Str("file", cfg.PersonalPath).Msg("reading personal log")
	personal, err := readSide(cfg.PersonalPath, cfg.PersonalSheet, cfg.Password, extract.PersonalLog, allowed)
	if err != nil {
		return nil, &PipelineError{Phase: "read-personal", RunID: runID, Err: err}
	}

	// Phase 2: read and extract the facility report
	log.Info().Str("file", cfg.FacilityPath).Msg("reading facility report")
	facility, err := readSide(cfg.FacilityPath, cfg.FacilitySheet, cfg.Password, extract.FacilityReport, allowed)
	if err != nil {
		return nil, &PipelineError{Phase: "read-facility", RunID: runID, Err: err}
	}
	readDur := time.Since(readStart)

	// An empty side is legal (wrong sheet, empty month) but worth flagging.
	if len(personal.records) == 0 {
		log.Warn().Str("file", cfg.PersonalPath).Msg("no billing records extracted from personal log")
	}
	if len(facility.records) == 0 {
		log.Warn().Str("file", cfg.FacilityPath).Msg("no billing records extracted from facility report")
	}

	log.Info().
		Int("personal_records", len(personal.records)).
		Int("facility_records", len(facility.records)).
		Str("duration", readDur.String()).
		Msg("extraction complete")

	// Phase 3: compare
	compareStart := time.Now()
	res := reconcile.Compare(personal.records, facility.records)
	compareDur := time.Since(compareStart)
	log.Info().
		Int("matched", len(res.Matched)).
		Int("personal_only", len(res.PersonalOnly)).
		Int("facility_only", len(res.FacilityOnly)).
		Str("duration", compareDur.String()).
		Msg("comparison complete")

	// Phase 4: export the artifact
	exportStart := time.Now()
	outPath := cfg.OutputPath
	if outPath == "" {
		sheet := cfg.PersonalSheet
		if sheet == "" {
			sheet = "export"
		}
		outPath = export.DefaultOutputName(sheet, time.Now())
	}
	if err := export.Workbook(outPath, res, personal.records, facility.records); err != nil {
		return nil, &PipelineError{Phase: "export", RunID: runID, Err: err}
	}
	log.Info().Str("file", outPath).Msg("artifact written")

	// Phase 5: optional records archive
	if cfg.ArchivePath != "" {
		all := make([]model.BillingRecord, 0, len(personal.records)+len(facility.records))
		all = append(all, personal.records...)
		all = append(all, facility.records...)
		if err := export.Archive(cfg.ArchivePath, all); err != nil {
			return nil, &PipelineError{Phase: "archive", RunID: runID, Err: err}
		}
		log.Info().Str("file", cfg.ArchivePath).Int("records", len(all)).Msg("archive written")
	}
	exportDur := time.Since(exportStart)

	byCode := make(map[string]int64)
	for _, r := range personal.records {
		byCode[r.Code]++
	}
	for _, r := range facility.records {
		byCode[r.Code]++
	}

	summary := &model.CompareSummary{
		RunID:           runID,
		PersonalPath:    cfg.PersonalPath,
		PersonalSHA256:  personal.sha256,
		FacilityPath:    cfg.FacilityPath,
		FacilitySHA256:  facility.sha256,
		RowsPersonal:    personal.rows,
		RowsFacility:    facility.rows,
		RecordsPersonal: int64(len(personal.records)),
		RecordsFacility: int64(len(facility.records)),
		RecordsByCode:   byCode,
		Matched:         int64(len(res.Matched)),
		PersonalOnly:    int64(len(res.PersonalOnly)),
		FacilityOnly:    int64(len(res.FacilityOnly)),
		OutputPath:      outPath,
		ArchivePath:     cfg.ArchivePath,
		DurationRead:    readDur,
		DurationCompare: compareDur,
		DurationExport:  exportDur,
		DurationTotal:   time.Since(totalStart),
	}

	log.Info().
		Int64("matched", summary.Matched).
		Int64("personal_only", summary.PersonalOnly).
		Int64("facility_only", summary.FacilityOnly).
		Str("artifact", summary.OutputPath).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("comparison pipeline complete")

	return summary, nil
}

// readSide hashes and decodes one input file and runs its extractor. A
// non-nil allowed set keeps only records whose code it contains; nil keeps
// everything.
func readSide(path, sheet, password string, extractor func(table.Table) []model.BillingRecord, allowed map[string]struct{}) (*side, error) {
	sha, err := normalize.FileHash(path)
	if err != nil {
		return nil, err
	}
	tbl, err := sheetread.ReadTable(path, sheet, password)
	if err != nil {
		return nil, err
	}

	records := extractor(tbl)
	if allowed != nil {
		var kept []model.BillingRecord
		for _, r := range records {
			if _, ok := allowed[r.Code]; ok {
				kept = append(kept, r)
			}
		}
		records = kept
	}
	return &side{records: records, rows: int64(tbl.NumRows()), sha256: sha}, nil
}
