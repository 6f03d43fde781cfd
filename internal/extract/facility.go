package extract

import (
	"strings"

	"github.com/aberthier/kinerecon/internal/model"
	"github.com/aberthier/kinerecon/internal/normalize"
	"github.com/aberthier/kinerecon/internal/table"
)

// Facility-report column layout: identity columns on the left, then one
// column per day of month starting at column 6 (day = column - 5).
const (
	facilityColName     = 0
	facilityColFile     = 1
	facilityColCode     = 2
	facilityFirstDayCol = 6
	facilityLastDayCol  = 36
)

// Header labels seen across facility export variants, uppercased.
var (
	nameHeaders = map[string]struct{}{
		"PATIENT": {}, "NOM": {}, "NOM PATIENT": {},
	}
	fileHeaders = map[string]struct{}{
		"DOSSIER": {}, "N° DOSSIER": {}, "NUMERO DOSSIER": {}, "N°DOSSIER": {},
	}
	codeHeaders = map[string]struct{}{
		"CODE": {}, "CODE INTERNE": {}, "CODES": {},
	}
)

// FacilityReport extracts billing records from a facility-issued report
// sheet. The row that opens a patient block carries the name and file
// number; both carry forward over the block's remaining rows. A non-blank
// cell in a day column marks one billed session of that row's code on that
// day. Repeated header rows are skipped without touching carry-forward
// state.
func FacilityReport(tbl table.Table) []model.BillingRecord {
	var records []model.BillingRecord
	var currentName, currentFile string

	for row := 0; row < tbl.NumRows(); row++ {
		if isHeaderRow(tbl, row) {
			continue
		}

		nameCell := tbl.At(row, facilityColName)
		if !nameCell.IsBlank() {
			currentName = normalize.NormalizeName(nameCell.Text())
			// A block that opens without its own file number must not
			// inherit the previous block's.
			currentFile = normalize.FileNumber(tbl.At(row, facilityColFile))
		}

		codeCell := tbl.At(row, facilityColCode)
		if currentFile == "" || currentName == "" || codeCell.IsBlank() {
			continue
		}
		code := normalize.NormalizeCode(codeCell.Text())

		for col := facilityFirstDayCol; col <= facilityLastDayCol; col++ {
			if tbl.At(row, col).IsBlank() {
				continue
			}
			records = append(records, model.BillingRecord{
				Day:         col - facilityFirstDayCol + 1,
				FileNumber:  currentFile,
				PatientName: currentName,
				Code:        code,
				Origin:      model.OriginFacilityReport,
			})
		}
	}
	return records
}

// isHeaderRow reports whether the row repeats the report's column headers.
// Facility exports restate them above every patient group.
func isHeaderRow(tbl table.Table, row int) bool {
	if _, ok := nameHeaders[headerKey(tbl.At(row, facilityColName))]; ok {
		return true
	}
	if _, ok := fileHeaders[headerKey(tbl.At(row, facilityColFile))]; ok {
		return true
	}
	if _, ok := codeHeaders[headerKey(tbl.At(row, facilityColCode))]; ok {
		return true
	}
	return false
}

func headerKey(c table.Cell) string {
	return strings.ToUpper(strings.TrimSpace(c.Text()))
}
