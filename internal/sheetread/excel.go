package sheetread

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aberthier/kinerecon/internal/table"
)

// SheetNames lists the sheet names in the workbook at path, in workbook
// order. CSV files report the single pseudo sheet.
func SheetNames(path, password string) ([]string, error) {
	if isCSVPath(path) {
		return []string{CSVSheetName}, nil
	}
	f, err := excelize.OpenFile(path, excelize.Options{Password: password})
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

// readExcel decodes one workbook sheet into typed cells. Values are read
// raw and re-typed here: string-typed cells stay text even when they look
// numeric, numeric cells styled with a date number format become date
// cells, other numerics stay numbers.
func readExcel(path, sheet, password string) (table.Table, error) {
	f, err := excelize.OpenFile(path, excelize.Options{Password: password})
	if err != nil {
		return table.Table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet, err = resolveSheet(f, sheet)
	if err != nil {
		return table.Table{}, err
	}

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return table.Table{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	tbl := table.Table{Rows: make([][]table.Cell, len(raw))}
	for r, rawRow := range raw {
		row := make([]table.Cell, len(rawRow))
		for c, val := range rawRow {
			row[c] = decodeCell(f, sheet, r, c, val)
		}
		tbl.Rows[r] = row
	}
	return tbl, nil
}

func resolveSheet(f *excelize.File, sheet string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	if sheet == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == sheet {
			return s, nil
		}
	}
	return "", fmt.Errorf("sheet %q not found (workbook has: %s)", sheet, strings.Join(sheets, ", "))
}

func decodeCell(f *excelize.File, sheet string, row, col int, raw string) table.Cell {
	if strings.TrimSpace(raw) == "" {
		return table.Blank()
	}
	if isStringTyped(f, sheet, row, col) {
		return table.Text(raw)
	}
	num, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return table.Text(raw)
	}
	if isDateStyled(f, sheet, row, col) {
		if t, convErr := excelize.ExcelDateToTime(num, false); convErr == nil {
			return table.Date(t)
		}
	}
	return table.Number(num)
}

// isStringTyped reports whether the cell is stored as a string: shared,
// inline, or a formula's string result. A text cell holding "102.0" must
// stay text; only genuinely numeric cells get re-typed.
func isStringTyped(f *excelize.File, sheet string, row, col int) bool {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return false
	}
	cellType, err := f.GetCellType(sheet, cell)
	if err != nil {
		return false
	}
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return true
	}
	return false
}

// Builtin number format IDs that render a serial number as a calendar date.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true,
	32: true, 33: true, 34: true, 35: true, 36: true,
	50: true, 51: true, 52: true, 53: true, 54: true,
	55: true, 56: true, 57: true, 58: true,
}

// isDateStyled reports whether the cell's number format renders dates.
func isDateStyled(f *excelize.File, sheet string, row, col int) bool {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return false
	}
	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if builtinDateFormats[style.NumFmt] {
		return true
	}
	if style.CustomNumFmt != nil {
		return customFormatHasDate(*style.CustomNumFmt)
	}
	return false
}

// customFormatHasDate reports whether a custom number format contains
// day/month/year tokens, ignoring quoted literals and bracket sections.
func customFormatHasDate(format string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for _, r := range format {
		switch {
		case inQuote:
			if r == '"' {
				inQuote = false
			}
		case inBracket:
			if r == ']' {
				inBracket = false
			}
		case r == '"':
			inQuote = true
		case r == '[':
			inBracket = true
		default:
			b.WriteRune(r)
		}
	}
	return strings.ContainsAny(strings.ToLower(b.String()), "dmy")
}
