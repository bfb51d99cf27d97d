// Package analysis derives the financial metric tables from annual
// statements: revenue quality, expense structure, growth, balance sheet
// composition, working capital, fixed asset intensity, returns, turnover
// and per-capita figures. Monetary inputs arrive in 元 and every monetary
// cell is reported in 亿元 rounded to two decimals; a missing input shows
// as "-" and propagates into any ratio built on it.
package analysis

import (
	"strconv"

	"github.com/EigenChen/akshare-financial-analysis/internal/statement"
)

// Inputs bundles the three annual statements for a security plus the
// optional employee headcount by year used by the per-capita table.
type Inputs struct {
	Symbol    string
	Name      string
	StartYear int
	EndYear   int
	Balance   *statement.Statement
	Income    *statement.Statement
	CashFlow  *statement.Statement
	Employees map[int]int
}

// Table is one derived metric table: fixed 科目 rows against year columns,
// plus optional trailing columns such as the compound growth ones.
type Table struct {
	Name      string   `json:"name"`
	RowLabels []string `json:"row_labels"`
	Years     []int    `json:"years"`
	ExtraCols []string `json:"extra_cols,omitempty"`
	// Cells is row-major: one slice per 科目, year cells first, extra
	// column cells after.
	Cells [][]statement.Value `json:"cells"`
}

func newTable(name string, labels []string, startYear, endYear int, extra ...string) *Table {
	years := make([]int, 0, endYear-startYear+1)
	for y := startYear; y <= endYear; y++ {
		years = append(years, y)
	}
	cells := make([][]statement.Value, len(labels))
	for i := range cells {
		cells[i] = make([]statement.Value, len(years)+len(extra))
	}
	return &Table{Name: name, RowLabels: labels, Years: years, ExtraCols: extra, Cells: cells}
}

// yearCol maps a year to its column index.
func (t *Table) yearCol(year int) int {
	return year - t.Years[0]
}

func (t *Table) set(row, year int, v statement.Value) {
	t.Cells[row][t.yearCol(year)] = v
}

func (t *Table) setExtra(row, extraIdx int, v statement.Value) {
	t.Cells[row][len(t.Years)+extraIdx] = v
}

// Columns returns the header row: 科目, one column per year, then extras.
func (t *Table) Columns() []string {
	cols := make([]string, 0, 1+len(t.Years)+len(t.ExtraCols))
	cols = append(cols, "科目")
	for _, y := range t.Years {
		cols = append(cols, strconv.Itoa(y))
	}
	cols = append(cols, t.ExtraCols...)
	return cols
}

// Tables computes all metric tables in their fixed presentation order.
func Tables(in Inputs) []*Table {
	return []*Table{
		RevenueTable(in),
		ExpenseTable(in),
		GrowthTable(in),
		BalanceTable(in),
		WorkingCapitalTable(in),
		FixedAssetTable(in),
		ROITable(in),
		TurnoverTable(in),
		PerCapitaTable(in),
	}
}

// ratio returns a/b*100 rounded to two decimals when both legs are present
// and b is nonzero.
func ratio(a, b statement.Value) statement.Value {
	if !a.Valid || !b.Valid || b.Num == 0 {
		return statement.Missing()
	}
	return statement.Of(statement.Round2(a.Num / b.Num * 100))
}

// sum2 adds values treating a missing leg as zero.
func sum2(vs ...statement.Value) statement.Value {
	total := 0.0
	for _, v := range vs {
		total += v.Or(0)
	}
	return statement.Of(statement.Round2(total))
}
