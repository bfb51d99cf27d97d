package analysis

import "github.com/EigenChen/akshare-financial-analysis/internal/statement"

var balanceLabels = []string{
	"流动资产（亿元）",
	"现金（亿元）",
	"存货（亿元）",
	"非流动资产（亿元）",
	"总资产（亿元）",
	"归母净资产（亿元）",
	"狭义无息债务（亿元）",
	"广义无息债务（亿元）",
	"有息债务（亿元）",
	"狭义无息债务/收入（%）",
	"狭义无息债务/总资产（%）",
	"广义无息债务/收入（%）",
	"广义无息债务/总资产（%）",
	"有息债务/总资产（%）",
	"资产负债率（%）",
}

// BalanceTable builds the 资产负债 table. 狭义无息债务 is accounts payable
// plus advances plus contract liabilities; 广义 adds notes payable; 有息债务
// is short loans plus long loans plus bonds payable. Missing debt components
// count as zero.
func BalanceTable(in Inputs) *Table {
	t := newTable("资产负债", balanceLabels, in.StartYear, in.EndYear)

	for _, year := range t.Years {
		balance := in.Balance.AnnualRow(year)
		if balance == nil {
			continue
		}
		income := in.Income.AnnualRow(year)

		t.set(0, year, balance.Yi("TOTAL_CURRENT_ASSETS"))
		t.set(1, year, balance.Yi("MONETARYFUNDS"))
		t.set(2, year, balance.Yi("INVENTORY"))
		t.set(3, year, balance.Yi("TOTAL_NONCURRENT_ASSETS"))
		totalAssets := balance.Yi("TOTAL_ASSETS")
		t.set(4, year, totalAssets)
		t.set(5, year, balance.Yi("TOTAL_PARENT_EQUITY"))

		narrowDebt := sum2(balance.Yi("ACCOUNTS_PAYABLE"), balance.Yi("ADVANCE_RECEIVABLES"), balance.Yi("CONTRACT_LIAB"))
		t.set(6, year, narrowDebt)

		broadDebt := sum2(narrowDebt, balance.Yi("NOTE_PAYABLE"))
		t.set(7, year, broadDebt)

		interestDebt := sum2(balance.Yi("SHORT_LOAN"), balance.Yi("LONG_LOAN"), balance.Yi("BONDS_PAYABLE"))
		t.set(8, year, interestDebt)

		var revenue statement.Value
		if income != nil {
			revenue = income.Yi("OPERATE_INCOME")
		}
		t.set(9, year, ratio(narrowDebt, revenue))
		t.set(10, year, ratio(narrowDebt, totalAssets))
		t.set(11, year, ratio(broadDebt, revenue))
		t.set(12, year, ratio(broadDebt, totalAssets))
		t.set(13, year, ratio(interestDebt, totalAssets))
		t.set(14, year, ratio(balance.Yi("TOTAL_LIABILITIES"), totalAssets))
	}

	return t
}
