package errlog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	path, err := Write(dir, "run-123", errors.New("read-personal: open workbook: boom"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	t.Run("file_in_requested_dir", func(t *testing.T) {
		if filepath.Dir(path) != dir {
			t.Errorf("expected report under %s, got %s", dir, path)
		}
		base := filepath.Base(path)
		if !strings.HasPrefix(base, "error_") || !strings.HasSuffix(base, ".txt") {
			t.Errorf("unexpected report file name %q", base)
		}
	})

	t.Run("body_carries_run_and_error", func(t *testing.T) {
		body, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read report: %v", err)
		}
		text := string(body)
		if !strings.Contains(text, "run_id: run-123") {
			t.Errorf("expected run id in report, got:\n%s", text)
		}
		if !strings.Contains(text, "read-personal: open workbook: boom") {
			t.Errorf("expected error text in report, got:\n%s", text)
		}
	})
}

func TestWrite_UnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	// A plain file where the directory should be makes MkdirAll fail.
	if _, err := Write(filepath.Join(file, "logs"), "run-123", errors.New("boom")); err == nil {
		t.Error("expected error when the log dir cannot be created")
	}
}

func TestDefaultDir(t *testing.T) {
	if DefaultDir != "error_logs" {
		t.Errorf("unexpected default dir %q", DefaultDir)
	}
}
