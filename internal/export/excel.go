package export

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/aberthier/kinerecon/internal/model"
	"github.com/aberthier/kinerecon/internal/reconcile"
)

// Sheet and status labels stay in French: practitioners built habits around
// the artifacts of the tool this one replaces.
const (
	SheetDifferences = "Differences"
	SheetPersonal    = "Ma_Facturation"
	SheetFacility    = "Rapport_Hopital"

	StatusMissingFacility = "Manquant dans rapport hôpital"
	StatusMissingPersonal = "Manquant dans ma facturation"

	allClearMessage = "Bravo tout est en ordre !"
)

// Workbook writes the comparison artifact: a Differences sheet plus one
// full record sheet per source. Rows sort by day then file number so each
// sheet reads chronologically; with no differences at all, the Differences
// sheet carries a single all-clear message.
func Workbook(path string, res *reconcile.Result, personal, facility []model.BillingRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	diffIdx, err := f.NewSheet(SheetDifferences)
	if err != nil {
		return fmt.Errorf("create sheet %s: %w", SheetDifferences, err)
	}
	if err := writeDifferences(f, res); err != nil {
		return err
	}

	if len(personal) > 0 {
		if err := writeRecords(f, SheetPersonal, personal); err != nil {
			return err
		}
	}
	if len(facility) > 0 {
		if err := writeRecords(f, SheetFacility, facility); err != nil {
			return err
		}
	}

	f.SetActiveSheet(diffIdx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write workbook %s: %w", path, err)
	}
	return nil
}

type diffRow struct {
	rec    model.BillingRecord
	status string
}

func writeDifferences(f *excelize.File, res *reconcile.Result) error {
	rows := make([]diffRow, 0, len(res.PersonalOnly)+len(res.FacilityOnly))
	for _, r := range res.PersonalOnly {
		rows = append(rows, diffRow{rec: r, status: StatusMissingFacility})
	}
	for _, r := range res.FacilityOnly {
		rows = append(rows, diffRow{rec: r, status: StatusMissingPersonal})
	}

	if len(rows) == 0 {
		if err := f.SetSheetRow(SheetDifferences, "A1", &[]any{"Message"}); err != nil {
			return fmt.Errorf("write %s: %w", SheetDifferences, err)
		}
		if err := f.SetSheetRow(SheetDifferences, "A2", &[]any{allClearMessage}); err != nil {
			return fmt.Errorf("write %s: %w", SheetDifferences, err)
		}
		return nil
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.rec.Day != b.rec.Day {
			return a.rec.Day < b.rec.Day
		}
		if a.rec.FileNumber != b.rec.FileNumber {
			return a.rec.FileNumber < b.rec.FileNumber
		}
		return a.status < b.status
	})

	header := []any{"date", "dossier", "nom", "code", "source", "statut"}
	if err := f.SetSheetRow(SheetDifferences, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", SheetDifferences, err)
	}
	for i, dr := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row address %d: %w", i+2, err)
		}
		vals := []any{dr.rec.Day, dr.rec.FileNumber, dr.rec.PatientName, dr.rec.Code, string(dr.rec.Origin), dr.status}
		if err := f.SetSheetRow(SheetDifferences, cell, &vals); err != nil {
			return fmt.Errorf("write %s row %d: %w", SheetDifferences, i+2, err)
		}
	}
	return nil
}

func writeRecords(f *excelize.File, sheet string, records []model.BillingRecord) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	sorted := make([]model.BillingRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Day != sorted[j].Day {
			return sorted[i].Day < sorted[j].Day
		}
		return sorted[i].FileNumber < sorted[j].FileNumber
	})

	header := []any{"date", "dossier", "nom", "code", "source"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}
	for i, r := range sorted {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row address %d: %w", i+2, err)
		}
		vals := []any{r.Day, r.FileNumber, r.PatientName, r.Code, string(r.Origin)}
		if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
