package analysis

import (
	"math"

	"github.com/EigenChen/akshare-financial-analysis/internal/statement"
)

var roiLabels = []string{
	"ROE(%)",
	"ROA(%)",
	"ROIC(%)",
	"销售净利率(%)",
	"资产周转率（次）",
	"权益乘数",
}

// ROITable builds the 收益率和杜邦分析 table. ROIC divides EBIT by invested
// capital, where EBIT is operating profit plus interest expense and invested
// capital is total assets minus the interest-free 狭义无息债务. When the
// vendor omits operating profit it is reconstructed as revenue minus cost
// minus the sale/manage/research expenses; when it omits the interest detail
// the absolute finance expense stands in.
func ROITable(in Inputs) *Table {
	t := newTable("收益率和杜邦分析", roiLabels, in.StartYear, in.EndYear)

	for _, year := range t.Years {
		balance := in.Balance.AnnualRow(year)
		income := in.Income.AnnualRow(year)
		if balance == nil || income == nil {
			continue
		}

		parentProfit := income.Yi("PARENT_NETPROFIT")
		revenue := income.Yi("OPERATE_INCOME")
		totalAssets := balance.Yi("TOTAL_ASSETS")
		parentEquity := balance.Yi("TOTAL_PARENT_EQUITY")
		if !parentProfit.Valid || !revenue.Valid || !totalAssets.Valid || !parentEquity.Valid {
			continue
		}

		t.set(0, year, ratio(parentProfit, parentEquity))
		t.set(1, year, ratio(parentProfit, totalAssets))

		operateProfit := income.Yi("OPERATE_PROFIT")
		if !operateProfit.Valid {
			periodExpenses := income.Yi("SALE_EXPENSE").Or(0) +
				income.Yi("MANAGE_EXPENSE").Or(0) +
				income.Yi("RESEARCH_EXPENSE").Or(0)
			operateProfit = statement.Of(statement.Round2(revenue.Num - income.Yi("OPERATE_COST").Or(0) - periodExpenses))
		}

		interest := income.Yi("FE_INTEREST_EXPENSE")
		if !interest.Valid {
			interest = statement.Of(math.Abs(income.Yi("FINANCE_EXPENSE").Or(0)))
		}
		ebit := statement.Of(statement.Round2(operateProfit.Num + interest.Num))

		narrowDebt := sum2(balance.Yi("ACCOUNTS_PAYABLE"), balance.Yi("ADVANCE_RECEIVABLES"), balance.Yi("CONTRACT_LIAB"))
		investedCapital := statement.Of(statement.Round2(totalAssets.Num - narrowDebt.Num))
		t.set(2, year, ratio(ebit, investedCapital))

		t.set(3, year, ratio(parentProfit, revenue))

		if totalAssets.Num != 0 {
			t.set(4, year, statement.Of(statement.Round2(revenue.Num/totalAssets.Num)))
		}
		if parentEquity.Num != 0 {
			t.set(5, year, statement.Of(statement.Round2(totalAssets.Num/parentEquity.Num)))
		}
	}

	return t
}
