package errlog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultDir is where comparison failures are persisted.
const DefaultDir = "error_logs"

// Write persists a failure report and returns its path. The directory is
// created on first use; each failure gets its own timestamped file so a
// practitioner can attach it to a support request.
func Write(dir, runID string, runErr error) (string, error) {
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create error log dir: %w", err)
	}

	now := time.Now()
	path := filepath.Join(dir, fmt.Sprintf("error_%s.txt", now.Format("20060102_150405")))
	body := fmt.Sprintf("=== %s ===\nrun_id: %s\nerror: %v\n", now.Format(time.RFC3339), runID, runErr)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return "", fmt.Errorf("write error log: %w", err)
	}
	return path, nil
}
