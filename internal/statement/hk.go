package statement

import "sort"

// hkIncomeMapping translates HK income-statement 科目 names into the A-share
// field codes the analysis layer works with.
var hkIncomeMapping = map[string]string{
	"营运收入":       "OPERATE_INCOME",
	"营业额":        "OPERATE_INCOME",
	"股东应占溢利":     "PARENT_NETPROFIT",
	"除税后溢利":      "NETPROFIT",
	"持续经营业务税后利润": "NETPROFIT",
	"毛利":         "GROSS_PROFIT",
	"营运支出":       "OPERATE_COST",
	"销售及分销费用":    "SALE_EXPENSE",
	"行政开支":       "MANAGE_EXPENSE",
	"研发费用":       "RESEARCH_EXPENSE",
	"融资成本":       "FINANCE_EXPENSE",
	"利息收入":       "INTEREST_INCOME",
	"利息支出":       "INTEREST_EXPENSE",
	"投资收益":       "INVEST_INCOME",
	"应占联营公司溢利":   "INVEST_INCOME",
	"公允价值变动收益":   "FAIRVALUE_CHANGE_INCOME",
	"经营溢利":       "OPERATE_PROFIT",
}

var hkBalanceMapping = map[string]string{
	"总资产":        "TOTAL_ASSETS",
	"流动资产合计":     "TOTAL_CURRENT_ASSETS",
	"非流动资产合计":    "TOTAL_NONCURRENT_ASSETS",
	"现金及等价物":     "MONETARYFUNDS",
	"存货":         "INVENTORY",
	"应收帐款":       "ACCOUNTS_RECE",
	"预付款项":       "PREPAYMENT",
	"预付款按金及其他应收款": "PREPAYMENT",
	"应付帐款":       "ACCOUNTS_PAYABLE",
	"应付票据":       "NOTE_PAYABLE",
	"预收账款":       "ADVANCE_RECEIVABLES",
	"递延收入(流动)":   "ADVANCE_RECEIVABLES",
	"总负债":        "TOTAL_LIABILITIES",
	"股东权益":       "TOTAL_PARENT_EQUITY",
	"净资产":        "TOTAL_PARENT_EQUITY",
	"物业厂房及设备":    "FIXED_ASSET",
	"固定资产":       "FIXED_ASSET",
	"在建工程":       "CIP",
	"无形资产":       "INTANGIBLE_ASSET",
	"商誉":         "GOODWILL",
	"短期借款":       "SHORT_LOAN",
	"长期借款":       "LONG_LOAN",
	"应付债券":       "BONDS_PAYABLE",
	"应付职工薪酬":     "STAFF_SALARY_PAYABLE",
	"合同资产":       "CONTRACT_ASSET",
	"合同负债":       "CONTRACT_LIAB",
}

var hkCashFlowMapping = map[string]string{
	"经营业务现金净额":         "NETCASH_OPERATE",
	"经营产生现金":           "NETCASH_OPERATE",
	"购建固定资产":           "CONSTRUCT_LONG_ASSET",
	"支付给职工以及为职工支付的现金":  "PAY_STAFF_CASH",
	"已付职工薪酬":           "PAY_STAFF_CASH",
	"固定资产折旧":           "FIXED_ASSET_DEPR",
	"折旧及摊销":            "FIXED_ASSET_DEPR",
}

// HKMapping returns the 科目-name to field-code mapping for a statement type.
func HKMapping(sheet SheetType) map[string]string {
	switch sheet {
	case SheetIncome:
		return hkIncomeMapping
	case SheetBalance:
		return hkBalanceMapping
	case SheetCashFlow:
		return hkCashFlowMapping
	}
	return nil
}

// HKItem is one row of Eastmoney's long-format HK statement feed: a single
// 科目 amount for one report date.
type HKItem struct {
	ReportDate string
	ItemName   string
	Amount     float64
	HasAmount  bool
}

// FromHKItems pivots long-format HK rows into the wide Statement shape used
// for A shares. Mapped 科目 land under their A-share field code; unmapped
// ones keep the HK Chinese name as the code so they still display. When two
// source 科目 map to the same code in a period, the first amount wins.
//
// The second return value records, per resulting field code, the original HK
// 科目 name, so reports can label HK-only fields.
func FromHKItems(symbol string, sheet SheetType, items []HKItem) (*Statement, map[string]string) {
	mapping := HKMapping(sheet)
	names := make(map[string]string)

	periodIdx := make(map[string]int)
	var periods []Period
	for _, it := range items {
		if !it.HasAmount || it.ReportDate == "" {
			continue
		}
		code, ok := mapping[it.ItemName]
		if !ok {
			code = it.ItemName
		}
		if _, seen := names[code]; !seen {
			names[code] = it.ItemName
		}
		i, ok := periodIdx[it.ReportDate]
		if !ok {
			i = len(periods)
			periodIdx[it.ReportDate] = i
			periods = append(periods, Period{ReportDate: it.ReportDate, Fields: make(map[string]float64)})
		}
		if _, dup := periods[i].Fields[code]; !dup {
			periods[i].Fields[code] = it.Amount
		}
	}

	sort.Slice(periods, func(a, b int) bool { return periods[a].ReportDate < periods[b].ReportDate })

	return &Statement{Symbol: symbol, Market: MarketHK, Sheet: sheet, Periods: periods}, names
}
