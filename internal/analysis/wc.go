package analysis

import "github.com/EigenChen/akshare-financial-analysis/internal/statement"

var wcLabels = []string{
	"1元收入需要的WC（元）",
	"WC（亿元）",
	"应收（亿元）",
	"预付（亿元）",
	"存货（亿元）",
	"合同资产（亿元）",
	"应付（亿元）",
	"预收（亿元）",
	"合同负债（亿元）",
	"应收占收入比重（%）",
	"预付占收入比重（%）",
	"存货占收入比重（%）",
	"应付占收入比重（%）",
	"预收占收入比重（%）",
	"合同负债占收入比重（%）",
	"新增WC（亿元）",
}

// WorkingCapitalTable builds the WC分析 table. Working capital is
// (应收+预付+存货+合同资产) minus (应付+预收+合同负债) with missing
// components read as zero, and 新增WC compares consecutive computed years.
func WorkingCapitalTable(in Inputs) *Table {
	t := newTable("WC分析", wcLabels, in.StartYear, in.EndYear)

	wcByYear := make(map[int]float64)

	for _, year := range t.Years {
		balance := in.Balance.AnnualRow(year)
		income := in.Income.AnnualRow(year)
		if balance == nil || income == nil {
			continue
		}

		revenue := income.Yi("OPERATE_INCOME")
		if !revenue.Valid {
			continue
		}

		receivable := balance.Yi("ACCOUNTS_RECE")
		t.set(2, year, receivable)
		prepayment := balance.Yi("PREPAYMENT")
		t.set(3, year, prepayment)
		inventory := balance.Yi("INVENTORY")
		t.set(4, year, inventory)
		contractAsset := balance.Yi("CONTRACT_ASSET")
		t.set(5, year, contractAsset)
		payable := balance.Yi("ACCOUNTS_PAYABLE")
		t.set(6, year, payable)
		advance := balance.Yi("ADVANCE_RECEIVABLES")
		t.set(7, year, advance)
		contractLiab := balance.Yi("CONTRACT_LIAB")
		t.set(8, year, contractLiab)

		wc := statement.Round2(
			(receivable.Or(0) + prepayment.Or(0) + inventory.Or(0) + contractAsset.Or(0)) -
				(payable.Or(0) + advance.Or(0) + contractLiab.Or(0)))
		t.set(1, year, statement.Of(wc))
		wcByYear[year] = wc

		if revenue.Num != 0 {
			t.set(0, year, statement.Of(statement.Round2(wc/revenue.Num)))
		}

		t.set(9, year, ratio(receivable, revenue))
		t.set(10, year, ratio(prepayment, revenue))
		t.set(11, year, ratio(inventory, revenue))
		t.set(12, year, ratio(payable, revenue))
		t.set(13, year, ratio(advance, revenue))
		t.set(14, year, ratio(contractLiab, revenue))

		if year > in.StartYear {
			if prevWC, ok := wcByYear[year-1]; ok {
				t.set(15, year, statement.Of(statement.Round2(wc-prevWC)))
			}
		}
	}

	return t
}
