package export

import (
	"fmt"
	"regexp"
	"time"
)

// Characters that are unsafe in file names on at least one platform.
var unsafeChars = regexp.MustCompile(`[\\/*?:"<>|]`)

// DefaultOutputName builds the artifact file name from the compared sheet
// name and the run timestamp: comparaison_<sheet>_<ddmmyyyy_HHMM>.xlsx.
// Unsafe characters in the sheet name become underscores.
func DefaultOutputName(sheet string, now time.Time) string {
	safe := unsafeChars.ReplaceAllString(sheet, "_")
	if safe == "" {
		safe = "export"
	}
	return fmt.Sprintf("comparaison_%s_%s.xlsx", safe, now.Format("02012006_1504"))
}
