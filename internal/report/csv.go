package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/EigenChen/akshare-financial-analysis/internal/analysis"
)

// utf8BOM keeps Excel on Windows from mangling the Chinese headers.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVFilename builds the per-table CSV name:
// {公司名}_{起始年}-{结束年}_{表名}_{时间戳}.csv.
func CSVFilename(companyName, tableName string, startYear, endYear int, ts time.Time) string {
	return fmt.Sprintf("%s_%d-%d_%s_%s.csv", companyName, startYear, endYear, tableName, ts.Format("20060102150405"))
}

// WriteCSV writes one table to path as UTF-8 with BOM. Missing cells render
// as "-", matching the tabular display.
func WriteCSV(path string, tbl *analysis.Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(utf8BOM); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}

	w := csv.NewWriter(file)
	if err := w.Write(tbl.Columns()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for r, label := range tbl.RowLabels {
		record := make([]string, 0, 1+len(tbl.Cells[r]))
		record = append(record, label)
		for _, v := range tbl.Cells[r] {
			record = append(record, v.Display())
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row %s: %w", label, err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteAllCSV writes every table to its own file under dir and returns the
// paths in table order.
func WriteAllCSV(dir, companyName string, startYear, endYear int, ts time.Time, tables []*analysis.Table) ([]string, error) {
	paths := make([]string, 0, len(tables))
	for _, tbl := range tables {
		path := filepath.Join(dir, CSVFilename(companyName, tbl.Name, startYear, endYear, ts))
		if err := WriteCSV(path, tbl); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
