package analysis

import "github.com/EigenChen/akshare-financial-analysis/internal/statement"

var turnoverLabels = []string{
	"总资产（亿元）",
	"平均总资产（亿元）",
	"平均流动资产（亿元）",
	"平均存货（亿元）",
	"归母净资产（亿元）",
	"平均归母净资产（亿元）",
	"总资产周转天数",
	"流动资产周转天数",
	"WC周转天数",
	"应收周转天数",
	"存货周转天数",
	"固定资产周转天数",
}

// turnoverBase carries the balance figures one year forward so two-point
// averages can be formed.
type turnoverBase struct {
	totalAssets   float64
	currentAssets float64
	inventory     float64
	parentEquity  float64
	wc            float64
	receivable    float64
	fixedAsset    float64
}

// TurnoverTable builds the 资产周转 table. Averages are two-point means of
// consecutive year-end figures, so they need the prior year processed as
// well; turnover days divide the average by revenue and scale by 365. A year
// with missing core figures breaks the chain and the following year shows no
// averages.
func TurnoverTable(in Inputs) *Table {
	t := newTable("资产周转", turnoverLabels, in.StartYear, in.EndYear)

	var prev *turnoverBase

	for _, year := range t.Years {
		balance := in.Balance.AnnualRow(year)
		income := in.Income.AnnualRow(year)
		if balance == nil || income == nil {
			prev = nil
			continue
		}

		revenue := income.Yi("OPERATE_INCOME")
		if !revenue.Valid {
			prev = nil
			continue
		}

		totalAssets := balance.Yi("TOTAL_ASSETS")
		if !totalAssets.Valid {
			prev = nil
			continue
		}
		t.set(0, year, totalAssets)

		parentEquity := balance.Yi("TOTAL_PARENT_EQUITY")
		if !parentEquity.Valid {
			prev = nil
			continue
		}
		t.set(4, year, parentEquity)

		currentAssets := balance.Yi("TOTAL_CURRENT_ASSETS").Or(0)
		inventory := balance.Yi("INVENTORY").Or(0)
		receivable := balance.Yi("ACCOUNTS_RECE").Or(0)

		wc := statement.Round2(
			(receivable + balance.Yi("PREPAYMENT").Or(0) + inventory + balance.Yi("CONTRACT_ASSET").Or(0)) -
				(balance.Yi("ACCOUNTS_PAYABLE").Or(0) + balance.Yi("ADVANCE_RECEIVABLES").Or(0) + balance.Yi("CONTRACT_LIAB").Or(0)))

		fixedAsset := fixedAssetBase(balance)

		if prev != nil {
			avgTotal := statement.Round2((prev.totalAssets + totalAssets.Num) / 2)
			t.set(1, year, statement.Of(avgTotal))
			avgCurrent := statement.Round2((prev.currentAssets + currentAssets) / 2)
			t.set(2, year, statement.Of(avgCurrent))
			avgInventory := statement.Round2((prev.inventory + inventory) / 2)
			t.set(3, year, statement.Of(avgInventory))
			t.set(5, year, statement.Of(statement.Round2((prev.parentEquity+parentEquity.Num)/2)))

			if revenue.Num != 0 {
				t.set(6, year, days(avgTotal, revenue.Num))
				t.set(7, year, days(avgCurrent, revenue.Num))
				t.set(8, year, days(statement.Round2((prev.wc+wc)/2), revenue.Num))
				t.set(9, year, days(statement.Round2((prev.receivable+receivable)/2), revenue.Num))
				t.set(10, year, days(avgInventory, revenue.Num))
				t.set(11, year, days(statement.Round2((prev.fixedAsset+fixedAsset)/2), revenue.Num))
			}
		}

		prev = &turnoverBase{
			totalAssets:   totalAssets.Num,
			currentAssets: currentAssets,
			inventory:     inventory,
			parentEquity:  parentEquity.Num,
			wc:            wc,
			receivable:    receivable,
			fixedAsset:    fixedAsset,
		}
	}

	return t
}

func days(avg, revenue float64) statement.Value {
	return statement.Of(statement.Round2(avg / revenue * 365))
}
