// mkfixture writes a matching personal-log / facility-report workbook pair
// with planted differences, for demos and tests.
// Usage: go run ./cmd/mkfixture --dir testdata
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	personalSheet = "Facturation"
	facilitySheet = "Rapport"
)

func main() {
	dir := flag.String("dir", "testdata", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "create dir: %v\n", err)
		os.Exit(1)
	}

	personalPath := filepath.Join(*dir, "personal.xlsx")
	if err := writePersonal(personalPath); err != nil {
		fmt.Fprintf(os.Stderr, "write personal: %v\n", err)
		os.Exit(1)
	}
	facilityPath := filepath.Join(*dir, "facility.xlsx")
	if err := writeFacility(facilityPath); err != nil {
		fmt.Fprintf(os.Stderr, "write facility: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (6 records)\n", personalPath)
	fmt.Printf("Wrote %s (6 records)\n", facilityPath)
	fmt.Println("Expected comparison: 5 matched, 1 missing in facility report, 1 missing in personal log")
}

// writePersonal lays out a practitioner log: sparse date markers in column
// A (one real date cell, one text date), file number, name, and a free-text
// code cell per row. The K3/4 row has no facility counterpart.
func writePersonal(path string) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", personalSheet); err != nil {
		return err
	}

	rows := [][]any{
		{nil, 12001, "DUPONT JEAN", "M24"},
		{nil, 12002, "MARTIN, CLAIRE", "M6 + K15"},
		{"5/3/2025", 12003, "(A) BERNARD LUC", "K-1 + RECOND"},
		{nil, 12001, "DUPONT JEAN", "K3/4"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(personalSheet, cell, &row); err != nil {
			return err
		}
	}

	// The first marker is a genuine date cell so the date-decode path gets
	// exercised; the second stays text.
	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	if err != nil {
		return err
	}
	if err := f.SetCellValue(personalSheet, "A1", time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)); err != nil {
		return err
	}
	if err := f.SetCellStyle(personalSheet, "A1", "A1", dateStyle); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// writeFacility lays out a facility report: repeated header row, patient
// blocks with carried-forward names, one code per row, day-of-month grid
// from column G. The K 20 row has no personal counterpart.
func writeFacility(path string) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", facilitySheet); err != nil {
		return err
	}

	header := make([]any, 37)
	header[0], header[1], header[2] = "NOM", "DOSSIER", "CODE"
	for d := 1; d <= 31; d++ {
		header[6+d-1] = d
	}
	if err := f.SetSheetRow(facilitySheet, "A1", &header); err != nil {
		return err
	}

	type gridRow struct {
		name string
		file any
		code string
		days []int
	}
	rows := []gridRow{
		{name: "DUPONT JEAN", file: 12001, code: "M 24", days: []int{3}},
		{name: "MARTIN CLAIRE", file: 12002, code: "M 6", days: []int{3}},
		{code: "K 15", days: []int{3}},
		{name: "BERNARD LUC", file: 12003, code: "K-1", days: []int{5}},
		{code: "RECOND", days: []int{5}},
		{code: "K 20", days: []int{10}},
	}
	for i, gr := range rows {
		row := make([]any, 37)
		if gr.name != "" {
			row[0] = gr.name
			row[1] = gr.file
		}
		row[2] = gr.code
		for _, d := range gr.days {
			row[6+d-1] = "X"
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(facilitySheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
