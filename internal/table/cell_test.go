package table

import (
	"testing"
	"time"
)

func TestCellKind(t *testing.T) {
	cases := []struct {
		name string
		cell Cell
		want CellKind
	}{
		{"blank", Blank(), KindBlank},
		{"zero_value", Cell{}, KindBlank},
		{"text", Text("DUPONT"), KindText},
		{"number", Number(12001), KindNumber},
		{"date", Date(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)), KindDate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.cell.Kind(); got != c.want {
				t.Errorf("expected kind %d, got %d", c.want, got)
			}
		})
	}
}

func TestCellIsBlank(t *testing.T) {
	cases := []struct {
		name string
		cell Cell
		want bool
	}{
		{"blank", Blank(), true},
		{"whitespace_text", Text("   \t"), true},
		{"empty_text", Text(""), true},
		{"text", Text("X"), false},
		{"zero_number", Number(0), false},
		{"date", Date(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.cell.IsBlank(); got != c.want {
				t.Errorf("expected IsBlank %v, got %v", c.want, got)
			}
		})
	}
}

func TestCellText(t *testing.T) {
	cases := []struct {
		name string
		cell Cell
		want string
	}{
		{"text_verbatim", Text("  MARTIN, CLAIRE "), "  MARTIN, CLAIRE "},
		{"integral_number", Number(12001), "12001"},
		{"fractional_number", Number(12001.5), "12001.5"},
		{"date_formats_dd_mm_yyyy", Date(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)), "05/03/2026"},
		{"blank", Blank(), ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.cell.Text(); got != c.want {
				t.Errorf("expected %q, got %q", c.want, got)
			}
		})
	}
}

func TestCellAccessors(t *testing.T) {
	t.Run("number_on_number_cell", func(t *testing.T) {
		v, ok := Number(102.0).Number()
		if !ok || v != 102.0 {
			t.Errorf("expected (102, true), got (%v, %v)", v, ok)
		}
	})
	t.Run("number_on_text_cell", func(t *testing.T) {
		if _, ok := Text("102").Number(); ok {
			t.Error("expected no numeric value on a text cell")
		}
	})
	t.Run("date_on_date_cell", func(t *testing.T) {
		want := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
		got, ok := Date(want).Date()
		if !ok || !got.Equal(want) {
			t.Errorf("expected (%v, true), got (%v, %v)", want, got, ok)
		}
	})
	t.Run("date_on_blank_cell", func(t *testing.T) {
		if _, ok := Blank().Date(); ok {
			t.Error("expected no date value on a blank cell")
		}
	})
}

func TestTableAt(t *testing.T) {
	tbl := Table{Rows: [][]Cell{
		{Text("A"), Number(1)},
		{Text("B")},
	}}

	t.Run("in_range", func(t *testing.T) {
		if got := tbl.At(0, 1).Text(); got != "1" {
			t.Errorf("expected %q, got %q", "1", got)
		}
	})
	t.Run("ragged_row_reads_blank", func(t *testing.T) {
		if !tbl.At(1, 1).IsBlank() {
			t.Error("expected blank cell past the end of a short row")
		}
	})
	t.Run("row_out_of_range", func(t *testing.T) {
		if !tbl.At(5, 0).IsBlank() {
			t.Error("expected blank cell for out-of-range row")
		}
	})
	t.Run("negative_indexes", func(t *testing.T) {
		if !tbl.At(-1, -1).IsBlank() {
			t.Error("expected blank cell for negative indexes")
		}
	})
	t.Run("num_rows", func(t *testing.T) {
		if got := tbl.NumRows(); got != 2 {
			t.Errorf("expected 2 rows, got %d", got)
		}
	})
}
