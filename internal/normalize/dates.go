package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aberthier/kinerecon/internal/table"
)

// Leading day-first date marker, e.g. "5/3/2026" or "05-03-2026". Only the
// day component matters; input files never span months.
var dayMarker = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})`)

// DayOfMonth extracts the day of month from a date-marker cell. Date cells
// yield their day component; text cells must start with a D/M/YYYY or
// D-M-YYYY date. Anything else, including days outside 1-31, is not a
// marker (ok=false).
func DayOfMonth(c table.Cell) (int, bool) {
	if t, ok := c.Date(); ok {
		return t.Day(), true
	}
	if c.Kind() != table.KindText {
		return 0, false
	}
	m := dayMarker.FindStringSubmatch(strings.TrimSpace(c.Text()))
	if m == nil {
		return 0, false
	}
	day, err := strconv.Atoi(m[1])
	if err != nil || day < 1 || day > 31 {
		return 0, false
	}
	return day, true
}
