package analysis

import "github.com/EigenChen/akshare-financial-analysis/internal/statement"

var fixedAssetLabels = []string{
	"1元收入需要的固定资产（元）",
	"1元收入需要的长期资产（元）",
	"固定资产（亿元）",
	"长期资产（亿元）",
	"折旧（亿元）",
	"折旧/收入（%）",
}

// FixedAssetTable builds the 固定资产投入分析 table. The fixed asset base is
// 固定资产+在建工程+工程物资-固定资产清理; long-term assets add intangibles,
// development spend, right-of-use assets, goodwill and long prepaid expenses.
// Depreciation comes from the cash-flow supplement, trying the three field
// variants the vendor has used over the years.
func FixedAssetTable(in Inputs) *Table {
	t := newTable("固定资产投入分析", fixedAssetLabels, in.StartYear, in.EndYear)

	for _, year := range t.Years {
		balance := in.Balance.AnnualRow(year)
		income := in.Income.AnnualRow(year)
		cashFlow := in.CashFlow.AnnualRow(year)
		if balance == nil || income == nil || cashFlow == nil {
			continue
		}

		revenue := income.Yi("OPERATE_INCOME")
		if !revenue.Valid {
			continue
		}

		fixedAssets := fixedAssetBase(balance)
		t.set(2, year, statement.Of(fixedAssets))

		longTermAssets := statement.Round2(fixedAssets +
			balance.Yi("INTANGIBLE_ASSET").Or(0) +
			balance.Yi("DEVELOP_EXPENSE").Or(0) +
			balance.Yi("USERIGHT_ASSET").Or(0) +
			balance.Yi("GOODWILL").Or(0) +
			balance.Yi("LONG_PREPAID_EXPENSE").Or(0))
		t.set(3, year, statement.Of(longTermAssets))

		if revenue.Num != 0 {
			t.set(0, year, statement.Of(statement.Round2(fixedAssets/revenue.Num)))
			t.set(1, year, statement.Of(statement.Round2(longTermAssets/revenue.Num)))
		}

		depreciation := depreciationValue(cashFlow)
		t.set(4, year, depreciation)
		t.set(5, year, ratio(depreciation, revenue))
	}

	return t
}

func fixedAssetBase(balance *statement.Period) float64 {
	return statement.Round2(balance.Yi("FIXED_ASSET").Or(0) +
		balance.Yi("CIP").Or(0) +
		balance.Yi("PROJECT_MATERIAL").Or(0) -
		balance.Yi("FIXED_ASSET_DISPOSAL").Or(0))
}

func depreciationValue(cashFlow *statement.Period) statement.Value {
	for _, field := range []string{"FIXED_ASSET_DEPR", "FA_IR_DEPR", "FA_DEPR"} {
		if v := cashFlow.Yi(field); v.Valid {
			return v
		}
	}
	return statement.Missing()
}
