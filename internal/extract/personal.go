package extract

import (
	"github.com/aberthier/kinerecon/internal/model"
	"github.com/aberthier/kinerecon/internal/normalize"
	"github.com/aberthier/kinerecon/internal/table"
)

// Personal-log column layout.
const (
	personalColDay  = 0
	personalColFile = 1
	personalColName = 2
	personalColCode = 3
)

// PersonalLog extracts billing records from a practitioner's log sheet.
//
// Column 0 carries sparse date markers: a matching cell sets the current day
// for every following row until the next marker. A row whose file-number,
// name, and code cells are all present emits one record per atomic code
// found in the code cell. Incomplete rows and rows before the first marker
// contribute nothing; gaps are expected, never errors.
func PersonalLog(tbl table.Table) []model.BillingRecord {
	var records []model.BillingRecord
	currentDay := 0

	for row := 0; row < tbl.NumRows(); row++ {
		if day, ok := normalize.DayOfMonth(tbl.At(row, personalColDay)); ok {
			currentDay = day
		}

		fileCell := tbl.At(row, personalColFile)
		nameCell := tbl.At(row, personalColName)
		codeCell := tbl.At(row, personalColCode)
		if currentDay == 0 || fileCell.IsBlank() || nameCell.IsBlank() || codeCell.IsBlank() {
			continue
		}

		fileNumber := normalize.FileNumber(fileCell)
		name := normalize.NormalizeName(nameCell.Text())
		if fileNumber == "" || name == "" {
			continue
		}

		for _, code := range normalize.Decompose(codeCell.Text()) {
			records = append(records, model.BillingRecord{
				Day:         currentDay,
				FileNumber:  fileNumber,
				PatientName: name,
				Code:        code,
				Origin:      model.OriginPersonalLog,
			})
		}
	}
	return records
}
