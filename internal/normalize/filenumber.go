package normalize

import (
	"strconv"
	"strings"

	"github.com/aberthier/kinerecon/internal/table"
)

// FileNumber canonicalizes a patient file-number cell. Numeric cells render
// in their integral decimal form (spreadsheets store file numbers as floats,
// "12345.0"); text cells are trimmed verbatim. Blank and date cells carry
// no file number, so the result is "".
func FileNumber(c table.Cell) string {
	if v, ok := c.Number(); ok {
		return strconv.FormatInt(int64(v), 10)
	}
	if c.Kind() != table.KindText {
		return ""
	}
	return strings.TrimSpace(c.Text())
}
