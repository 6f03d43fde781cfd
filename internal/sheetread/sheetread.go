package sheetread

import (
	"path/filepath"
	"strings"

	"github.com/aberthier/kinerecon/internal/table"
)

// CSVSheetName is the pseudo sheet name reported for CSV inputs.
const CSVSheetName = "CSV"

// ReadTable decodes one sheet of the file at path into a Table of typed
// cells. sheet "" selects the first sheet; password applies to protected
// workbooks. CSV files parse as a single all-text-and-number sheet. A file
// with a spreadsheet extension that fails to open as a workbook is retried
// as CSV, since facility exports are sometimes CSV data behind an .xls
// name; the retry only happens when no sheet was requested, because CSV has
// none to select.
func ReadTable(path, sheet, password string) (table.Table, error) {
	if isCSVPath(path) {
		return readCSV(path)
	}
	tbl, err := readExcel(path, sheet, password)
	if err == nil {
		return tbl, nil
	}
	if sheet == "" {
		if csvTbl, csvErr := readCSV(path); csvErr == nil {
			return csvTbl, nil
		}
	}
	return table.Table{}, err
}

func isCSVPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}
