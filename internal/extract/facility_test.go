package extract

import (
	"testing"

	"github.com/aberthier/kinerecon/internal/model"
	"github.com/aberthier/kinerecon/internal/table"
)

// ---------- helpers ----------

// gridRow builds a full-width facility row: identity cells, then an "X"
// mark in each given day's column.
func gridRow(name, file, code table.Cell, days ...int) []table.Cell {
	row := make([]table.Cell, facilityLastDayCol+1)
	row[facilityColName] = name
	row[facilityColFile] = file
	row[facilityColCode] = code
	for _, d := range days {
		row[facilityFirstDayCol+d-1] = table.Text("X")
	}
	return row
}

func headerRow() []table.Cell {
	return gridRow(txt("NOM"), txt("DOSSIER"), txt("CODE"))
}

// ---------- facility report ----------

func TestFacilityReport_CarryForwardBlock(t *testing.T) {
	tbl := table.Table{Rows: [][]table.Cell{
		headerRow(),
		gridRow(txt("DUPONT JEAN"), num(12001), txt("M 24"), 3),
		gridRow(table.Blank(), table.Blank(), txt("K 15"), 3, 5),
		gridRow(table.Blank(), table.Blank(), txt("RECOND"), 10),
	}}

	records := FacilityReport(tbl)
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}
	for i, r := range records {
		if r.FileNumber != "12001" || r.PatientName != "DUPONT JEAN" {
			t.Errorf("record %d: expected carried-forward identity, got %+v", i, r)
		}
		if r.Origin != model.OriginFacilityReport {
			t.Errorf("record %d: expected origin %q, got %q", i, model.OriginFacilityReport, r.Origin)
		}
	}
	wantCodes := []string{"M 24", "K 15", "K 15", "RECOND"}
	wantDays := []int{3, 3, 5, 10}
	for i, r := range records {
		if r.Code != wantCodes[i] || r.Day != wantDays[i] {
			t.Errorf("record %d: expected (%s, day %d), got (%s, day %d)",
				i, wantCodes[i], wantDays[i], r.Code, r.Day)
		}
	}
}

func TestFacilityReport_HeaderRowsSkippedMidTable(t *testing.T) {
	// Facility exports restate the header above every patient group. A
	// restated header must not disturb the surrounding block's carry state.
	tbl := table.Table{Rows: [][]table.Cell{
		headerRow(),
		gridRow(txt("DUPONT JEAN"), num(12001), txt("M 24"), 3),
		gridRow(txt(" nom patient "), txt("N° DOSSIER"), txt("CODE INTERNE")),
		gridRow(table.Blank(), table.Blank(), txt("K 15"), 5),
	}}

	records := FacilityReport(tbl)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[1].FileNumber != "12001" || records[1].PatientName != "DUPONT JEAN" {
		t.Errorf("expected header row to leave carry state intact, got %+v", records[1])
	}
}

func TestFacilityReport_DayColumnMapping(t *testing.T) {
	tbl := table.Table{Rows: [][]table.Cell{
		gridRow(txt("DUPONT JEAN"), num(12001), txt("M 24"), 1, 31),
	}}

	records := FacilityReport(tbl)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Day != 1 {
		t.Errorf("expected first day column to map to day 1, got %d", records[0].Day)
	}
	if records[1].Day != 31 {
		t.Errorf("expected last day column to map to day 31, got %d", records[1].Day)
	}
}

func TestFacilityReport_WhitespaceDayCellsSkipped(t *testing.T) {
	row := gridRow(txt("DUPONT JEAN"), num(12001), txt("M 24"), 3)
	row[facilityFirstDayCol+7-1] = txt("   ")
	tbl := table.Table{Rows: [][]table.Cell{row}}

	records := FacilityReport(tbl)
	if len(records) != 1 {
		t.Fatalf("expected whitespace-only day cell to be skipped, got %d records", len(records))
	}
	if records[0].Day != 3 {
		t.Errorf("expected day 3, got %d", records[0].Day)
	}
}

func TestFacilityReport_BlockWithoutFileNumberEmitsNothing(t *testing.T) {
	tbl := table.Table{Rows: [][]table.Cell{
		gridRow(txt("DUPONT JEAN"), num(12001), txt("M 24"), 3),
		gridRow(txt("MARTIN CLAIRE"), table.Blank(), txt("M 6"), 3),
		gridRow(table.Blank(), table.Blank(), txt("K 15"), 5),
	}}

	records := FacilityReport(tbl)
	if len(records) != 1 {
		t.Fatalf("expected only the first block to emit, got %d records", len(records))
	}
	if records[0].FileNumber != "12001" {
		t.Errorf("expected file number 12001, got %q", records[0].FileNumber)
	}
}

func TestFacilityReport_RowsBeforeFirstBlockSkipped(t *testing.T) {
	tbl := table.Table{Rows: [][]table.Cell{
		gridRow(table.Blank(), table.Blank(), txt("M 24"), 3),
		headerRow(),
		gridRow(txt("DUPONT JEAN"), num(12001), txt("K-1"), 5),
	}}

	records := FacilityReport(tbl)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Code != "K-1" {
		t.Errorf("expected code K-1, got %q", records[0].Code)
	}
}

func TestFacilityReport_FieldNormalization(t *testing.T) {
	tbl := table.Table{Rows: [][]table.Cell{
		gridRow(txt("(A) martin, claire"), txt(" 12002 "), txt("  k 15 "), 3),
	}}

	records := FacilityReport(tbl)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.PatientName != "MARTIN CLAIRE" {
		t.Errorf("expected normalized name %q, got %q", "MARTIN CLAIRE", r.PatientName)
	}
	if r.FileNumber != "12002" {
		t.Errorf("expected trimmed file number %q, got %q", "12002", r.FileNumber)
	}
	if r.Code != "K 15" {
		t.Errorf("expected normalized code %q, got %q", "K 15", r.Code)
	}
}

func TestFacilityReport_EmptyTable(t *testing.T) {
	if records := FacilityReport(table.Table{}); len(records) != 0 {
		t.Errorf("expected no records from an empty table, got %d", len(records))
	}
}
