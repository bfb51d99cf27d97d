package analysis

import "github.com/EigenChen/akshare-financial-analysis/internal/statement"

var revenueLabels = []string{
	"收入（亿元）",
	"归母净利润（亿元）",
	"净利润率（%）",
	"扣非净利润（亿元）",
	"经营净现金流（亿元）",
	"CAPEX（亿元）",
	"自由现金流（亿元）",
	"扣非/净利润（%）",
	"经营现金流/净利润（%）",
	"金融利润（亿元）",
	"经营利润（亿元）",
	"经营利润/归母利润（%）",
	"金融利润/归母利润（%）",
}

// RevenueTable builds the 营收基本数据 table. Free cash flow is operating
// cash flow minus CAPEX; 金融利润 is fair-value gains plus investment income
// with missing legs read as zero, and 经营利润 is what remains of the parent
// net profit after it.
func RevenueTable(in Inputs) *Table {
	t := newTable("营收基本数据", revenueLabels, in.StartYear, in.EndYear)

	for _, year := range t.Years {
		income := in.Income.AnnualRow(year)
		cashFlow := in.CashFlow.AnnualRow(year)
		if income == nil || cashFlow == nil {
			continue
		}

		revenue := income.Yi("OPERATE_INCOME")
		if !revenue.Valid {
			continue
		}
		t.set(0, year, revenue)

		parentProfit := income.Yi("PARENT_NETPROFIT")
		if !parentProfit.Valid {
			continue
		}
		t.set(1, year, parentProfit)

		if revenue.Num != 0 {
			t.set(2, year, statement.Of(statement.Round2(parentProfit.Num/revenue.Num*100)))
		} else {
			t.set(2, year, statement.Of(0))
		}

		deduct := income.Yi("DEDUCT_PARENT_NETPROFIT")
		t.set(3, year, deduct)

		ocf := cashFlow.Yi("NETCASH_OPERATE")
		t.set(4, year, ocf)

		capex := cashFlow.Yi("CONSTRUCT_LONG_ASSET")
		t.set(5, year, capex)

		if ocf.Valid && capex.Valid {
			t.set(6, year, statement.Of(statement.Round2(ocf.Num-capex.Num)))
		}

		if deduct.Valid && parentProfit.Num != 0 {
			t.set(7, year, ratio(deduct, parentProfit))
		}
		if ocf.Valid && parentProfit.Num != 0 {
			t.set(8, year, ratio(ocf, parentProfit))
		}

		financialProfit := sum2(income.Yi("FAIRVALUE_CHANGE_INCOME"), income.Yi("INVEST_INCOME"))
		t.set(9, year, financialProfit)

		operatingProfit := statement.Of(statement.Round2(parentProfit.Num - financialProfit.Num))
		t.set(10, year, operatingProfit)

		if parentProfit.Num != 0 {
			t.set(11, year, ratio(operatingProfit, parentProfit))
			t.set(12, year, ratio(financialProfit, parentProfit))
		}
	}

	return t
}
