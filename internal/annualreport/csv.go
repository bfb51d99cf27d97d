package annualreport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

var employeeCSVBOM = []byte{0xEF, 0xBB, 0xBF}

// LoadEmployeeCSV reads a per-year headcount file with 年份 and 员工数量
// columns. UTF-8 with or without BOM is read as-is; anything else falls back
// to GB18030, which covers GBK and GB2312 exports from Excel.
func LoadEmployeeCSV(path string) (map[int]int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimPrefix(raw, employeeCSVBOM)

	if !utf8.Valid(raw) {
		decoded, err := simplifiedchinese.GB18030.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode employee CSV %s: %w", path, err)
		}
		raw = decoded
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse employee CSV %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("employee CSV %s is empty", path)
	}

	yearCol, countCol := -1, -1
	for i, col := range records[0] {
		switch strings.TrimSpace(col) {
		case "年份":
			yearCol = i
		case "员工数量":
			countCol = i
		}
	}
	if yearCol < 0 || countCol < 0 {
		return nil, fmt.Errorf("employee CSV %s must have 年份 and 员工数量 columns", path)
	}

	out := make(map[int]int)
	for _, row := range records[1:] {
		if len(row) <= yearCol || len(row) <= countCol {
			continue
		}
		year, err := strconv.Atoi(strings.TrimSpace(row[yearCol]))
		if err != nil {
			continue
		}
		count, err := strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(row[countCol], ",", "")))
		if err != nil || count <= 0 {
			continue
		}
		out[year] = count
	}
	return out, nil
}

// WriteEmployeeCSV saves per-year headcounts as a UTF-8 BOM prefixed CSV so
// Excel opens the Chinese headers correctly.
func WriteEmployeeCSV(path string, counts map[int]int) error {
	years := make([]int, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Ints(years)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(employeeCSVBOM); err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write([]string{"年份", "员工数量"}); err != nil {
		return err
	}
	for _, year := range years {
		if err := w.Write([]string{strconv.Itoa(year), strconv.Itoa(counts[year])}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
