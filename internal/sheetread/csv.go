package sheetread

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aberthier/kinerecon/internal/table"
)

// readCSV parses a CSV file as a single sheet. Fields that parse as numbers
// become numeric cells so file-number canonicalization behaves the same as
// for workbooks; everything else stays text. Handles a UTF-8 BOM and ragged
// quoting, both of which show up in facility exports.
func readCSV(path string) (table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return table.Table{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	br := bufio.NewReaderSize(f, 64*1024)
	if bom, _ := br.Peek(3); len(bom) == 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		_, _ = br.Discard(3)
	}

	r := csv.NewReader(br)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	var tbl table.Table
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return table.Table{}, fmt.Errorf("parse csv: %w", err)
		}
		row := make([]table.Cell, len(record))
		for i, field := range record {
			row[i] = decodeCSVField(field)
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl, nil
}

func decodeCSVField(field string) table.Cell {
	if strings.TrimSpace(field) == "" {
		return table.Blank()
	}
	if num, err := strconv.ParseFloat(field, 64); err == nil {
		return table.Number(num)
	}
	return table.Text(field)
}
