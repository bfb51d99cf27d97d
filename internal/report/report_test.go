package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/EigenChen/akshare-financial-analysis/internal/analysis"
	"github.com/EigenChen/akshare-financial-analysis/internal/statement"
)

func sampleTables() []*analysis.Table {
	income := &statement.Statement{
		Sheet: statement.SheetIncome,
		Periods: []statement.Period{
			{ReportDate: "2022-12-31 00:00:00", Fields: map[string]float64{
				"OPERATE_INCOME": 80e8, "PARENT_NETPROFIT": 16e8,
			}},
			{ReportDate: "2023-12-31 00:00:00", Fields: map[string]float64{
				"OPERATE_INCOME": 100e8, "PARENT_NETPROFIT": 20e8,
			}},
		},
	}
	balance := &statement.Statement{Sheet: statement.SheetBalance, Periods: []statement.Period{
		{ReportDate: "2023-12-31 00:00:00", Fields: map[string]float64{
			"TOTAL_ASSETS": 200e8, "TOTAL_PARENT_EQUITY": 100e8, "TOTAL_LIABILITIES": 90e8,
		}},
	}}
	cashFlow := &statement.Statement{Sheet: statement.SheetCashFlow, Periods: []statement.Period{
		{ReportDate: "2023-12-31 00:00:00", Fields: map[string]float64{
			"NETCASH_OPERATE": 22e8, "CONSTRUCT_LONG_ASSET": 6e8,
		}},
	}}
	return analysis.Tables(analysis.Inputs{
		Symbol: "600000", StartYear: 2022, EndYear: 2023,
		Income: income, Balance: balance, CashFlow: cashFlow,
	})
}

func TestExcelFilename(t *testing.T) {
	ts := time.Date(2025, 3, 1, 10, 30, 0, 0, time.Local)
	assert.Equal(t, "贵州茅台_2015-2024_财务分析_20250301103000.xlsx", ExcelFilename("贵州茅台", 2015, 2024, ts))
}

func TestWriteExcel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.xlsx")

	require.NoError(t, WriteExcel(path, sampleTables()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Equal(t, []string{
		"营收基本数据", "费用构成", "增长", "资产负债", "WC分析",
		"固定资产投入分析", "收益率和杜邦分析", "资产周转", "人均数据",
	}, sheets)

	// header of the first sheet
	v, err := f.GetCellValue("营收基本数据", "A1")
	require.NoError(t, err)
	assert.Equal(t, "科目", v)
	v, err = f.GetCellValue("营收基本数据", "C1")
	require.NoError(t, err)
	assert.Equal(t, "2023", v)

	// revenue cell for 2023
	v, err = f.GetCellValue("营收基本数据", "C2")
	require.NoError(t, err)
	assert.Equal(t, "100", v)

	// missing values render as "-"
	v, err = f.GetCellValue("营收基本数据", "B5")
	require.NoError(t, err)
	assert.Equal(t, "-", v)

	// the growth sheet carries the compound growth columns
	v, err = f.GetCellValue("增长", "D1")
	require.NoError(t, err)
	assert.Equal(t, "最近5年", v)

	// formula notes sit below the data block
	rows, err := f.GetRows("营收基本数据")
	require.NoError(t, err)
	var foundNotes bool
	for _, row := range rows {
		if len(row) > 0 && row[0] == "公式说明" {
			foundNotes = true
		}
	}
	assert.True(t, foundNotes)
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	tables := sampleTables()
	path := filepath.Join(dir, "revenue.csv")

	require.NoError(t, WriteCSV(path, tables[0]))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "\xEF\xBB\xBF"))

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(string(raw), "\xEF\xBB\xBF")), "\n")
	require.GreaterOrEqual(t, len(lines), 14)
	assert.Equal(t, "科目,2022,2023", strings.TrimSpace(lines[0]))
	assert.Equal(t, "收入（亿元）,-,100", strings.TrimSpace(lines[1]))
}

func TestWriteAllCSV(t *testing.T) {
	dir := t.TempDir()
	ts := time.Now()
	paths, err := WriteAllCSV(dir, "测试公司", 2022, 2023, ts, sampleTables())
	require.NoError(t, err)
	require.Len(t, paths, 9)
	for _, p := range paths {
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}
}
