package analysis

import "github.com/EigenChen/akshare-financial-analysis/internal/statement"

var expenseLabels = []string{
	"毛利率（%）",
	"净利率（%）",
	"研发费用（亿元）",
	"管理费用（亿元）",
	"管理研发费用（亿元）",
	"销售费用（亿元）",
	"财务费用（亿元）",
	"期间费用合计（亿元）",
	"销售费用率（%）",
	"研发费用率（%）",
	"管理费用率（%）",
	"管理研发费用率（%）",
	"期间费用率（%）",
	"毛利率-净利润率（%）",
}

// ExpenseTable builds the 费用构成 table. 管理研发费用 falls back to
// whichever of the two legs is reported; 期间费用合计 sums the reported
// period expenses and skips missing ones.
func ExpenseTable(in Inputs) *Table {
	t := newTable("费用构成", expenseLabels, in.StartYear, in.EndYear)

	for _, year := range t.Years {
		income := in.Income.AnnualRow(year)
		if income == nil {
			continue
		}

		revenue := income.Yi("OPERATE_INCOME")
		if !revenue.Valid {
			continue
		}
		operateCost := income.Yi("OPERATE_COST")
		parentProfit := income.Yi("PARENT_NETPROFIT")
		if !parentProfit.Valid {
			continue
		}

		var grossMargin, netMargin statement.Value
		if operateCost.Valid && revenue.Num != 0 {
			grossMargin = statement.Of(statement.Round2((revenue.Num - operateCost.Num) / revenue.Num * 100))
		}
		t.set(0, year, grossMargin)

		if revenue.Num != 0 {
			netMargin = ratio(parentProfit, revenue)
		}
		t.set(1, year, netMargin)

		research := income.Yi("RESEARCH_EXPENSE")
		t.set(2, year, research)
		manage := income.Yi("MANAGE_EXPENSE")
		t.set(3, year, manage)

		var manageResearch statement.Value
		switch {
		case manage.Valid && research.Valid:
			manageResearch = statement.Of(statement.Round2(manage.Num + research.Num))
		case manage.Valid:
			manageResearch = manage
		case research.Valid:
			manageResearch = research
		}
		t.set(4, year, manageResearch)

		sale := income.Yi("SALE_EXPENSE")
		t.set(5, year, sale)
		finance := income.Yi("FINANCE_EXPENSE")
		t.set(6, year, finance)

		var periodTotal statement.Value
		anyValid := false
		total := 0.0
		for _, v := range []statement.Value{sale, research, manage, finance} {
			if v.Valid {
				anyValid = true
				total += v.Num
			}
		}
		if anyValid {
			periodTotal = statement.Of(statement.Round2(total))
		}
		t.set(7, year, periodTotal)

		t.set(8, year, ratio(sale, revenue))
		t.set(9, year, ratio(research, revenue))
		t.set(10, year, ratio(manage, revenue))
		t.set(11, year, ratio(manageResearch, revenue))
		t.set(12, year, ratio(periodTotal, revenue))

		if grossMargin.Valid && netMargin.Valid {
			t.set(13, year, statement.Of(statement.Round2(grossMargin.Num-netMargin.Num)))
		}
	}

	return t
}
