package export

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/aberthier/kinerecon/internal/model"
)

// Archive writes every extracted record to a Parquet file, both origins in
// one flat table, for analysis outside this tool.
func Archive(path string, records []model.BillingRecord) error {
	rows := make([]model.ArchiveRow, len(records))
	for i, r := range records {
		rows[i] = model.NewArchiveRow(r)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create archive %s: %w", path, err)
	}
	defer f.Close()

	w := parquet.NewGenericWriter[model.ArchiveRow](f)
	if _, err := w.Write(rows); err != nil {
		return fmt.Errorf("write archive rows: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}
	return nil
}
