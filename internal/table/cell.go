package table

import (
	"strconv"
	"strings"
	"time"
)

// CellKind discriminates the value held by a Cell.
type CellKind uint8

const (
	KindBlank CellKind = iota
	KindText
	KindNumber
	KindDate
)

// Cell is one spreadsheet cell as a tagged variant: blank, text, number, or
// date. Extractors read cells only through the accessors below, so the
// coercion quirks of any particular file format stay in the decode layer.
type Cell struct {
	kind   CellKind
	text   string
	number float64
	date   time.Time
}

// Blank returns the blank cell.
func Blank() Cell { return Cell{} }

// Text returns a text cell holding s verbatim.
func Text(s string) Cell { return Cell{kind: KindText, text: s} }

// Number returns a numeric cell.
func Number(v float64) Cell { return Cell{kind: KindNumber, number: v} }

// Date returns a date cell.
func Date(t time.Time) Cell { return Cell{kind: KindDate, date: t} }

// Kind reports which variant the cell holds.
func (c Cell) Kind() CellKind { return c.kind }

// IsBlank reports whether the cell is blank or holds only whitespace text.
func (c Cell) IsBlank() bool {
	switch c.kind {
	case KindBlank:
		return true
	case KindText:
		return strings.TrimSpace(c.text) == ""
	}
	return false
}

// Text returns the cell's textual content. Text cells return their content
// verbatim, numbers render in their shortest decimal form, dates as
// DD/MM/YYYY, blanks as "".
func (c Cell) Text() string {
	switch c.kind {
	case KindText:
		return c.text
	case KindNumber:
		return strconv.FormatFloat(c.number, 'f', -1, 64)
	case KindDate:
		return c.date.Format("02/01/2006")
	}
	return ""
}

// Number returns the numeric value and whether the cell holds one.
func (c Cell) Number() (float64, bool) {
	if c.kind != KindNumber {
		return 0, false
	}
	return c.number, true
}

// Date returns the date value and whether the cell holds one.
func (c Cell) Date() (time.Time, bool) {
	if c.kind != KindDate {
		return time.Time{}, false
	}
	return c.date, true
}
