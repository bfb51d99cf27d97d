package analysis

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EigenChen/akshare-financial-analysis/internal/statement"
)

func yi(n float64) float64 { return n * 1e8 }

func buildStatement(sheet statement.SheetType, byYear map[int]map[string]float64) *statement.Statement {
	st := &statement.Statement{Symbol: "600000", Market: statement.MarketAShare, Sheet: sheet}
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	for i := 0; i < len(years); i++ {
		for j := i + 1; j < len(years); j++ {
			if years[j] < years[i] {
				years[i], years[j] = years[j], years[i]
			}
		}
	}
	for _, y := range years {
		st.Periods = append(st.Periods, statement.Period{
			ReportDate: strconv.Itoa(y) + "-12-31 00:00:00",
			Fields:     byYear[y],
		})
	}
	return st
}

func testInputs() Inputs {
	income := buildStatement(statement.SheetIncome, map[int]map[string]float64{
		2022: {
			"OPERATE_INCOME":   yi(80),
			"PARENT_NETPROFIT": yi(16),
		},
		2023: {
			"OPERATE_INCOME":          yi(100),
			"PARENT_NETPROFIT":        yi(20),
			"DEDUCT_PARENT_NETPROFIT": yi(18),
			"OPERATE_COST":            yi(40),
			"SALE_EXPENSE":            yi(5),
			"MANAGE_EXPENSE":          yi(4),
			"RESEARCH_EXPENSE":        yi(3),
			"FINANCE_EXPENSE":         yi(-1),
			"FAIRVALUE_CHANGE_INCOME": yi(1),
			"INVEST_INCOME":           yi(2),
			"OPERATE_PROFIT":          yi(25),
			"FE_INTEREST_EXPENSE":     yi(0.5),
		},
	})
	balance := buildStatement(statement.SheetBalance, map[int]map[string]float64{
		2022: {
			"TOTAL_ASSETS":         yi(180),
			"TOTAL_CURRENT_ASSETS": yi(100),
			"INVENTORY":            yi(20),
			"TOTAL_PARENT_EQUITY":  yi(90),
			"ACCOUNTS_RECE":        yi(16),
			"PREPAYMENT":           yi(2),
			"ACCOUNTS_PAYABLE":     yi(8),
			"ADVANCE_RECEIVABLES":  yi(2),
			"CONTRACT_LIAB":        yi(2),
			"STAFF_SALARY_PAYABLE": yi(1),
			"FIXED_ASSET":          yi(35),
			"CIP":                  yi(4),
		},
		2023: {
			"TOTAL_ASSETS":            yi(200),
			"TOTAL_CURRENT_ASSETS":    yi(120),
			"TOTAL_NONCURRENT_ASSETS": yi(80),
			"MONETARYFUNDS":           yi(50),
			"INVENTORY":               yi(30),
			"TOTAL_PARENT_EQUITY":     yi(100),
			"TOTAL_LIABILITIES":       yi(90),
			"ACCOUNTS_PAYABLE":        yi(10),
			"ADVANCE_RECEIVABLES":     yi(2),
			"CONTRACT_LIAB":           yi(3),
			"NOTE_PAYABLE":            yi(1),
			"SHORT_LOAN":              yi(5),
			"LONG_LOAN":               yi(10),
			"ACCOUNTS_RECE":           yi(20),
			"PREPAYMENT":              yi(4),
			"CONTRACT_ASSET":          yi(1),
			"FIXED_ASSET":             yi(40),
			"CIP":                     yi(5),
			"STAFF_SALARY_PAYABLE":    yi(2),
			"INTANGIBLE_ASSET":        yi(6),
			"GOODWILL":                yi(2),
		},
	})
	cashFlow := buildStatement(statement.SheetCashFlow, map[int]map[string]float64{
		2022: {
			"NETCASH_OPERATE":      yi(18),
			"CONSTRUCT_LONG_ASSET": yi(5),
			"PAY_STAFF_CASH":       yi(8),
		},
		2023: {
			"NETCASH_OPERATE":      yi(22),
			"CONSTRUCT_LONG_ASSET": yi(6),
			"PAY_STAFF_CASH":       yi(10),
			"FA_IR_DEPR":           yi(2),
		},
	})
	return Inputs{
		Symbol:    "600000",
		StartYear: 2022,
		EndYear:   2023,
		Income:    income,
		Balance:   balance,
		CashFlow:  cashFlow,
		Employees: map[int]int{2023: 10000},
	}
}

func cell(t *Table, row, year int) statement.Value {
	return t.Cells[row][t.yearCol(year)]
}

func TestRevenueTable(t *testing.T) {
	tbl := RevenueTable(testInputs())

	assert.Equal(t, 100.0, cell(tbl, 0, 2023).Or(-1))
	assert.Equal(t, 20.0, cell(tbl, 1, 2023).Or(-1))
	assert.Equal(t, 20.0, cell(tbl, 2, 2023).Or(-1))
	assert.Equal(t, 18.0, cell(tbl, 3, 2023).Or(-1))
	assert.Equal(t, 22.0, cell(tbl, 4, 2023).Or(-1))
	assert.Equal(t, 6.0, cell(tbl, 5, 2023).Or(-1))
	// free cash flow = OCF - CAPEX
	assert.Equal(t, 16.0, cell(tbl, 6, 2023).Or(-1))
	assert.Equal(t, 90.0, cell(tbl, 7, 2023).Or(-1))
	assert.Equal(t, 110.0, cell(tbl, 8, 2023).Or(-1))
	// 金融利润 = 公允价值变动收益 + 投资收益
	assert.Equal(t, 3.0, cell(tbl, 9, 2023).Or(-1))
	assert.Equal(t, 17.0, cell(tbl, 10, 2023).Or(-1))
	assert.Equal(t, 85.0, cell(tbl, 11, 2023).Or(-1))
	assert.Equal(t, 15.0, cell(tbl, 12, 2023).Or(-1))

	// 2022 has no 扣非 figure, the cell stays missing
	assert.False(t, cell(tbl, 3, 2022).Valid)
}

func TestExpenseTable(t *testing.T) {
	tbl := ExpenseTable(testInputs())

	assert.Equal(t, 60.0, cell(tbl, 0, 2023).Or(-1))
	assert.Equal(t, 20.0, cell(tbl, 1, 2023).Or(-1))
	assert.Equal(t, 7.0, cell(tbl, 4, 2023).Or(-1))
	assert.Equal(t, 11.0, cell(tbl, 7, 2023).Or(-1))
	assert.Equal(t, 5.0, cell(tbl, 8, 2023).Or(-1))
	assert.Equal(t, 11.0, cell(tbl, 12, 2023).Or(-1))
	assert.Equal(t, 40.0, cell(tbl, 13, 2023).Or(-1))

	// 2022 has no cost data: gross margin missing, net margin present
	assert.False(t, cell(tbl, 0, 2022).Valid)
	assert.Equal(t, 20.0, cell(tbl, 1, 2022).Or(-1))
}

func TestGrowthTable(t *testing.T) {
	tbl := GrowthTable(testInputs())

	// baseline year carries no growth figure
	assert.False(t, cell(tbl, 0, 2022).Valid)
	assert.Equal(t, 25.0, cell(tbl, 0, 2023).Or(-1))
	assert.Equal(t, 25.0, cell(tbl, 1, 2023).Or(-1))

	// not enough history for compound growth
	assert.False(t, tbl.Cells[0][len(tbl.Years)].Valid)
	assert.False(t, tbl.Cells[0][len(tbl.Years)+1].Valid)
}

func TestGrowthTableCAGR(t *testing.T) {
	income := buildStatement(statement.SheetIncome, map[int]map[string]float64{
		2018: {"OPERATE_INCOME": yi(50), "PARENT_NETPROFIT": yi(10)},
		2020: {"OPERATE_INCOME": yi(60), "PARENT_NETPROFIT": yi(12)},
		2023: {"OPERATE_INCOME": yi(100), "PARENT_NETPROFIT": yi(20)},
	})
	tbl := GrowthTable(Inputs{StartYear: 2018, EndYear: 2023, Income: income})

	require.Equal(t, []string{"最近5年", "最近3年"}, tbl.ExtraCols)
	// (100/50)^(1/5)-1 = 14.87%
	assert.Equal(t, 14.87, tbl.Cells[0][len(tbl.Years)].Or(-1))
	// (100/60)^(1/3)-1 = 18.56%
	assert.Equal(t, 18.56, tbl.Cells[0][len(tbl.Years)+1].Or(-1))
}

func TestBalanceTable(t *testing.T) {
	tbl := BalanceTable(testInputs())

	assert.Equal(t, 120.0, cell(tbl, 0, 2023).Or(-1))
	assert.Equal(t, 50.0, cell(tbl, 1, 2023).Or(-1))
	// 狭义 = 应付 + 预收 + 合同负债
	assert.Equal(t, 15.0, cell(tbl, 6, 2023).Or(-1))
	// 广义 adds 应付票据
	assert.Equal(t, 16.0, cell(tbl, 7, 2023).Or(-1))
	// 有息 = 短期借款 + 长期借款 + 应付债券
	assert.Equal(t, 15.0, cell(tbl, 8, 2023).Or(-1))
	assert.Equal(t, 15.0, cell(tbl, 9, 2023).Or(-1))
	assert.Equal(t, 7.5, cell(tbl, 10, 2023).Or(-1))
	assert.Equal(t, 45.0, cell(tbl, 14, 2023).Or(-1))
}

func TestWorkingCapitalTable(t *testing.T) {
	tbl := WorkingCapitalTable(testInputs())

	// WC = (20+4+30+1) - (10+2+3) = 40
	assert.Equal(t, 40.0, cell(tbl, 1, 2023).Or(-1))
	assert.Equal(t, 0.4, cell(tbl, 0, 2023).Or(-1))
	assert.Equal(t, 20.0, cell(tbl, 9, 2023).Or(-1))
	// 2022 WC = (16+2+20) - (8+2+2) = 26, 新增WC = 40 - 26
	assert.Equal(t, 26.0, cell(tbl, 1, 2022).Or(-1))
	assert.Equal(t, 14.0, cell(tbl, 15, 2023).Or(-1))
	assert.False(t, cell(tbl, 15, 2022).Valid)
}

func TestFixedAssetTable(t *testing.T) {
	tbl := FixedAssetTable(testInputs())

	// 固定资产 + 在建工程
	assert.Equal(t, 45.0, cell(tbl, 2, 2023).Or(-1))
	// plus 无形资产 and 商誉
	assert.Equal(t, 53.0, cell(tbl, 3, 2023).Or(-1))
	assert.Equal(t, 0.45, cell(tbl, 0, 2023).Or(-1))
	assert.Equal(t, 0.53, cell(tbl, 1, 2023).Or(-1))
	// depreciation read from the FA_IR_DEPR variant
	assert.Equal(t, 2.0, cell(tbl, 4, 2023).Or(-1))
	assert.Equal(t, 2.0, cell(tbl, 5, 2023).Or(-1))
}

func TestROITable(t *testing.T) {
	tbl := ROITable(testInputs())

	assert.Equal(t, 20.0, cell(tbl, 0, 2023).Or(-1))
	assert.Equal(t, 10.0, cell(tbl, 1, 2023).Or(-1))
	// EBIT 25.5 over invested capital 185
	assert.Equal(t, 13.78, cell(tbl, 2, 2023).Or(-1))
	assert.Equal(t, 20.0, cell(tbl, 3, 2023).Or(-1))
	assert.Equal(t, 0.5, cell(tbl, 4, 2023).Or(-1))
	assert.Equal(t, 2.0, cell(tbl, 5, 2023).Or(-1))
}

func TestTurnoverTable(t *testing.T) {
	tbl := TurnoverTable(testInputs())

	assert.Equal(t, 200.0, cell(tbl, 0, 2023).Or(-1))
	assert.Equal(t, 190.0, cell(tbl, 1, 2023).Or(-1))
	assert.Equal(t, 110.0, cell(tbl, 2, 2023).Or(-1))
	assert.Equal(t, 25.0, cell(tbl, 3, 2023).Or(-1))
	assert.Equal(t, 95.0, cell(tbl, 5, 2023).Or(-1))
	assert.Equal(t, 693.5, cell(tbl, 6, 2023).Or(-1))
	assert.Equal(t, 401.5, cell(tbl, 7, 2023).Or(-1))
	// avg WC 33 over revenue 100
	assert.Equal(t, 120.45, cell(tbl, 8, 2023).Or(-1))
	assert.Equal(t, 65.7, cell(tbl, 9, 2023).Or(-1))
	assert.Equal(t, 91.25, cell(tbl, 10, 2023).Or(-1))
	assert.Equal(t, 153.3, cell(tbl, 11, 2023).Or(-1))

	// first covered year has no prior year for averages
	assert.False(t, cell(tbl, 1, 2022).Valid)
}

func TestPerCapitaTable(t *testing.T) {
	tbl := PerCapitaTable(testInputs())

	assert.Equal(t, 10000.0, cell(tbl, 0, 2023).Or(-1))
	assert.Equal(t, 100.0, cell(tbl, 1, 2023).Or(-1))
	assert.Equal(t, 20.0, cell(tbl, 2, 2023).Or(-1))
	assert.Equal(t, 18.0, cell(tbl, 3, 2023).Or(-1))
	// payroll = 期末应付薪酬 2 - 期初 1 + 已付现金 10 = 11亿
	assert.Equal(t, 11.0, cell(tbl, 4, 2023).Or(-1))

	// no headcount for 2022
	assert.False(t, cell(tbl, 0, 2022).Valid)
	assert.False(t, cell(tbl, 1, 2022).Valid)
}

func TestTablesOrder(t *testing.T) {
	tables := Tables(testInputs())
	require.Len(t, tables, 9)
	names := make([]string, len(tables))
	for i, tbl := range tables {
		names[i] = tbl.Name
	}
	assert.Equal(t, []string{
		"营收基本数据", "费用构成", "增长", "资产负债", "WC分析",
		"固定资产投入分析", "收益率和杜邦分析", "资产周转", "人均数据",
	}, names)
}
