package statement

// FieldLabel pairs an Eastmoney field code with its Chinese 科目 label.
// The slices below keep the vendor's statement ordering so that reshaped
// one-metric-per-row output reads like the published statement.
type FieldLabel struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// BalanceFields lists the balance-sheet 科目 covered by the dictionary,
// general-enterprise items first, bank/insurance specials after.
var BalanceFields = []FieldLabel{
	{"MONETARYFUNDS", "货币资金"},
	{"SETTLE_EXCESS_RESERVE", "结算备付金"},
	{"LEND_FUND", "拆出资金"},
	{"TRADE_FINASSET", "交易性金融资产"},
	{"FVTPL_FINASSET", "以公允价值计量且其变动计入当期损益的金融资产"},
	{"APPOINT_FVTPL_FINASSET", "指定以公允价值计量且其变动计入当期损益的金融资产"},
	{"DERIVE_FINASSET", "衍生金融资产"},
	{"NOTE_RECE", "应收票据"},
	{"ACCOUNTS_RECE", "应收账款"},
	{"NOTE_ACCOUNTS_RECE", "应收票据及应收账款"},
	{"FINANCE_RECE", "应收款项融资"},
	{"PREPAYMENT", "预付款项"},
	{"PREMIUM_RECE", "应收保费"},
	{"REINSURE_RECE", "应收分保账款"},
	{"RC_RESERVE_RECE", "应收分保合同准备金"},
	{"INTEREST_RECE", "应收利息"},
	{"DIVIDEND_RECE", "应收股利"},
	{"OTHER_RECE", "其他应收款"},
	{"TOTAL_OTHER_RECE", "其他应收款合计"},
	{"EXPORT_REFUND_RECE", "应收出口退税"},
	{"INTERNAL_RECE", "内部应收款"},
	{"BUY_RESALE_FINASSET", "买入返售金融资产"},
	{"INVENTORY", "存货"},
	{"CONTRACT_ASSET", "合同资产"},
	{"CONSUMPTIVE_BIOLOGICAL_ASSET", "消耗性生物资产"},
	{"HOLDSALE_ASSET", "持有待售资产"},
	{"DIV_HOLDSALE_ASSET", "划分为持有待售的资产"},
	{"NONCURRENT_ASSET_1YEAR", "一年内到期的非流动资产"},
	{"OTHER_CURRENT_ASSET", "其他流动资产"},
	{"CURRENT_ASSET_OTHER", "流动资产其他"},
	{"CURRENT_ASSET_BALANCE", "流动资产合计"},
	{"TOTAL_CURRENT_ASSETS", "流动资产总计"},
	{"LOAN_ADVANCE", "发放贷款和垫款"},
	{"CREDITOR_INVEST", "债权投资"},
	{"OTHER_CREDITOR_INVEST", "其他债权投资"},
	{"OTHER_EQUITY_INVEST", "其他权益工具投资"},
	{"AVAILABLE_SALE_FINASSET", "可供出售金融资产"},
	{"HOLD_MATURITY_INVEST", "持有至到期投资"},
	{"AMORTIZE_COST_NCFINASSET", "以摊余成本计量的非流动金融资产"},
	{"FVTOCI_NCFINASSET", "以公允价值计量且其变动计入其他综合收益的非流动金融资产"},
	{"OTHER_NONCURRENT_FINASSET", "其他非流动金融资产"},
	{"LONG_RECE", "长期应收款"},
	{"LONG_EQUITY_INVEST", "长期股权投资"},
	{"INVEST_REALESTATE", "投资性房地产"},
	{"FIXED_ASSET", "固定资产"},
	{"CIP", "在建工程"},
	{"PROJECT_MATERIAL", "工程物资"},
	{"FIXED_ASSET_DISPOSAL", "固定资产清理"},
	{"PRODUCTIVE_BIOLOGY_ASSET", "生产性生物资产"},
	{"OIL_GAS_ASSET", "油气资产"},
	{"USERIGHT_ASSET", "使用权资产"},
	{"INTANGIBLE_ASSET", "无形资产"},
	{"DEVELOP_EXPENSE", "开发支出"},
	{"GOODWILL", "商誉"},
	{"LONG_PREPAID_EXPENSE", "长期待摊费用"},
	{"DEFER_TAX_ASSET", "递延所得税资产"},
	{"OTHER_NONCURRENT_ASSET", "其他非流动资产"},
	{"NONCURRENT_ASSET_OTHER", "非流动资产其他"},
	{"NONCURRENT_ASSET_BALANCE", "非流动资产合计"},
	{"TOTAL_NONCURRENT_ASSETS", "非流动资产总计"},
	{"OTHER_ASSET", "其他资产"},
	{"ASSET_OTHER", "资产其他"},
	{"ASSET_BALANCE", "资产合计"},
	{"TOTAL_ASSETS", "资产总计"},
	{"SHORT_LOAN", "短期借款"},
	{"SHORT_BOND_PAYABLE", "应付短期债券"},
	{"SHORT_FIN_PAYABLE", "短期金融负债"},
	{"BORROW_FUND", "拆入资金"},
	{"TRADE_FINLIAB", "交易性金融负债"},
	{"FVTPL_FINLIAB", "以公允价值计量且其变动计入当期损益的金融负债"},
	{"APPOINT_FVTPL_FINLIAB", "指定以公允价值计量且其变动计入当期损益的金融负债"},
	{"DERIVE_FINLIAB", "衍生金融负债"},
	{"NOTE_PAYABLE", "应付票据"},
	{"ACCOUNTS_PAYABLE", "应付账款"},
	{"NOTE_ACCOUNTS_PAYABLE", "应付票据及应付账款"},
	{"ADVANCE_RECEIVABLES", "预收款项"},
	{"CONTRACT_LIAB", "合同负债"},
	{"SELL_REPO_FINASSET", "卖出回购金融资产款"},
	{"FEE_COMMISSION_PAYABLE", "应付手续费及佣金"},
	{"STAFF_SALARY_PAYABLE", "应付职工薪酬"},
	{"TAX_PAYABLE", "应交税费"},
	{"INTEREST_PAYABLE", "应付利息"},
	{"DIVIDEND_PAYABLE", "应付股利"},
	{"OTHER_PAYABLE", "其他应付款"},
	{"TOTAL_OTHER_PAYABLE", "其他应付款合计"},
	{"REINSURE_PAYABLE", "应付分保账款"},
	{"INTERNAL_PAYABLE", "内部应付款"},
	{"ACCRUED_EXPENSE", "预提费用"},
	{"HOLDSALE_LIAB", "持有待售负债"},
	{"DIV_HOLDSALE_LIAB", "划分为持有待售的负债"},
	{"NONCURRENT_LIAB_1YEAR", "一年内到期的非流动负债"},
	{"DEFER_INCOME_1YEAR", "一年内到期的递延收益"},
	{"OTHER_CURRENT_LIAB", "其他流动负债"},
	{"PREDICT_CURRENT_LIAB", "预计流动负债"},
	{"CURRENT_LIAB_OTHER", "流动负债其他"},
	{"CURRENT_LIAB_BALANCE", "流动负债合计"},
	{"TOTAL_CURRENT_LIAB", "流动负债总计"},
	{"LONG_LOAN", "长期借款"},
	{"BOND_PAYABLE", "应付债券"},
	{"BONDS_PAYABLE", "应付债券"},
	{"PREFERRED_SHARES_PAYBALE", "应付优先股"},
	{"PERPETUAL_BOND_PAYBALE", "应付永续债"},
	{"LEASE_LIAB", "租赁负债"},
	{"LONG_PAYABLE", "长期应付款"},
	{"LONG_STAFFSALARY_PAYABLE", "长期应付职工薪酬"},
	{"SPECIAL_PAYABLE", "专项应付款"},
	{"PREDICT_LIAB", "预计负债"},
	{"DEFER_INCOME", "递延收益"},
	{"DEFER_TAX_LIAB", "递延所得税负债"},
	{"OTHER_NONCURRENT_LIAB", "其他非流动负债"},
	{"NONCURRENT_LIAB_OTHER", "非流动负债其他"},
	{"NONCURRENT_LIAB_BALANCE", "非流动负债合计"},
	{"TOTAL_NONCURRENT_LIAB", "非流动负债总计"},
	{"OTHER_LIAB", "其他负债"},
	{"LIAB_OTHER", "负债其他"},
	{"LIAB_BALANCE", "负债合计"},
	{"TOTAL_LIABILITIES", "负债总计"},
	{"SHARE_CAPITAL", "股本"},
	{"OTHER_EQUITY_TOOL", "其他权益工具"},
	{"PREFERRED_SHARES", "优先股"},
	{"PERPETUAL_BOND", "永续债"},
	{"CAPITAL_RESERVE", "资本公积"},
	{"TREASURY_SHARES", "库存股"},
	{"OTHER_COMPRE_INCOME", "其他综合收益"},
	{"SPECIAL_RESERVE", "专项储备"},
	{"SURPLUS_RESERVE", "盈余公积"},
	{"UNASSIGN_RPOFIT", "未分配利润"},
	{"TOTAL_PARENT_EQUITY", "归属于母公司所有者权益合计"},
	{"MINORITY_EQUITY", "少数股东权益"},
	{"EQUITY_OTHER", "所有者权益其他"},
	{"EQUITY_BALANCE", "所有者权益合计"},
	{"TOTAL_EQUITY", "所有者权益总计"},
	{"LIAB_EQUITY_OTHER", "负债和所有者权益其他"},
	{"LIAB_EQUITY_BALANCE", "负债和所有者权益合计"},
	{"TOTAL_LIAB_EQUITY", "负债和所有者权益总计"},
	{"CASH_DEPOSIT_PBC", "存放中央银行款项"},
	{"DEPOSIT_INTERBANK", "存放同业款项"},
	{"PRECIOUS_METAL", "贵金属"},
	{"LOAN_PBC", "向中央银行借款"},
	{"ACCEPT_DEPOSIT", "吸收存款"},
	{"ACCEPT_DEPOSIT_INTERBANK", "吸收存款及同业存放"},
	{"AGENT_TRADE_SECURITY", "代理买卖证券款"},
	{"AGENT_UNDERWRITE_SECURITY", "代理承销证券款"},
	{"AGENT_BUSINESS_ASSET", "代理业务资产"},
	{"AGENT_BUSINESS_LIAB", "代理业务负债"},
	{"INSURANCE_CONTRACT_RESERVE", "保险合同准备金"},
}

// IncomeFields lists the income-statement 科目.
var IncomeFields = []FieldLabel{
	{"TOTAL_OPERATE_INCOME", "营业总收入"},
	{"OPERATE_INCOME", "营业收入"},
	{"INTEREST_NI", "利息净收入"},
	{"INTEREST_INCOME", "利息收入"},
	{"INTEREST_EXPENSE", "利息支出"},
	{"EARNED_PREMIUM", "已赚保费"},
	{"FEE_COMMISSION_NI", "手续费及佣金净收入"},
	{"FEE_COMMISSION_INCOME", "手续费及佣金收入"},
	{"FEE_COMMISSION_EXPENSE", "手续费及佣金支出"},
	{"OTHER_BUSINESS_INCOME", "其他业务收入"},
	{"TOI_OTHER", "营业总收入其他"},
	{"TOTAL_OPERATE_COST", "营业总成本"},
	{"OPERATE_COST", "营业成本"},
	{"OPERATE_TAX_ADD", "税金及附加"},
	{"SALE_EXPENSE", "销售费用"},
	{"MANAGE_EXPENSE", "管理费用"},
	{"ME_RESEARCH_EXPENSE", "管理费用中的研发费用"},
	{"RESEARCH_EXPENSE", "研发费用"},
	{"FINANCE_EXPENSE", "财务费用"},
	{"FE_INTEREST_EXPENSE", "财务费用中的利息支出"},
	{"FE_INTEREST_INCOME", "财务费用中的利息收入"},
	{"BUSINESS_MANAGE_EXPENSE", "业务及管理费"},
	{"SURRENDER_VALUE", "退保金"},
	{"NET_COMPENSATE_EXPENSE", "赔付支出净额"},
	{"NET_CONTRACT_RESERVE", "提取保险合同准备金净额"},
	{"POLICY_BONUS_EXPENSE", "保单红利支出"},
	{"REINSURE_EXPENSE", "分保费用"},
	{"OTHER_BUSINESS_COST", "其他业务成本"},
	{"ASSET_IMPAIRMENT_LOSS", "资产减值损失"},
	{"CREDIT_IMPAIRMENT_LOSS", "信用减值损失"},
	{"TOC_OTHER", "营业总成本其他"},
	{"FAIRVALUE_CHANGE_INCOME", "公允价值变动收益"},
	{"INVEST_INCOME", "投资收益"},
	{"ASSET_DISPOSAL_INCOME", "资产处置收益"},
	{"OTHER_INCOME", "其他收益"},
	{"OPERATE_PROFIT_OTHER", "营业利润其他"},
	{"OPERATE_PROFIT_BALANCE", "营业利润合计"},
	{"OPERATE_PROFIT", "营业利润"},
	{"NONBUSINESS_INCOME", "非营业性收入"},
	{"NONCURRENT_DISPOSAL_INCOME", "非流动资产处置收益"},
	{"NONBUSINESS_EXPENSE", "非营业性支出"},
	{"NONCURRENT_DISPOSAL_LOSS", "非流动资产处置损失"},
	{"EFFECT_TP_OTHER", "利润总额影响其他"},
	{"TOTAL_PROFIT_BALANCE", "利润总额合计"},
	{"TOTAL_PROFIT", "利润总额"},
	{"INCOME_TAX", "所得税费用"},
	{"EFFECT_NETPROFIT_OTHER", "净利润影响其他"},
	{"UNCONFIRM_INVEST_LOSS", "未确认投资损失"},
	{"NETPROFIT", "净利润"},
	{"PRECOMBINE_PROFIT", "被合并方在合并前实现的净利润"},
	{"CONTINUED_NETPROFIT", "持续经营净利润"},
	{"DISCONTINUED_NETPROFIT", "终止经营净利润"},
	{"PARENT_NETPROFIT", "归属于母公司所有者的净利润"},
	{"MINORITY_INTEREST", "少数股东损益"},
	{"DEDUCT_PARENT_NETPROFIT", "扣除非经常性损益后的归属于母公司所有者的净利润"},
	{"NETPROFIT_OTHER", "净利润其他"},
	{"NETPROFIT_BALANCE", "净利润合计"},
	{"BASIC_EPS", "基本每股收益"},
	{"DILUTED_EPS", "稀释每股收益"},
	{"OTHER_COMPRE_INCOME", "其他综合收益"},
	{"PARENT_OCI", "归属于母公司所有者的其他综合收益"},
	{"MINORITY_OCI", "归属于少数股东的其他综合收益"},
	{"TOTAL_COMPRE_INCOME", "综合收益总额"},
	{"PARENT_TCI", "归属于母公司所有者的综合收益总额"},
	{"MINORITY_TCI", "归属于少数股东的综合收益总额"},
	{"CONVERT_DIFF", "外币报表折算差额"},
	{"CASHFLOW_HEDGE_VALID", "现金流量套期储备"},
}

// CashFlowFields lists the cash-flow-statement 科目, direct method first,
// then the indirect-method supplement.
var CashFlowFields = []FieldLabel{
	{"SALE_SERVICE", "销售商品、提供劳务收到的现金"},
	{"RECEIVE_TAX_REFUND", "收到的税费返还"},
	{"RECEIVE_OTHER_OPERATE", "收到其他与经营活动有关的现金"},
	{"OPERATE_INFLOW_OTHER", "经营活动现金流入小计"},
	{"OPERATE_INFLOW_BALANCE", "经营活动现金流入合计"},
	{"TOTAL_OPERATE_INFLOW", "经营活动现金流入总计"},
	{"BUY_SERVICE", "购买商品、接受劳务支付的现金"},
	{"PAY_STAFF_CASH", "支付给职工以及为职工支付的现金"},
	{"PAY_ALL_TAX", "支付的各项税费"},
	{"PAY_OTHER_OPERATE", "支付其他与经营活动有关的现金"},
	{"OPERATE_OUTFLOW_OTHER", "经营活动现金流出小计"},
	{"OPERATE_OUTFLOW_BALANCE", "经营活动现金流出合计"},
	{"TOTAL_OPERATE_OUTFLOW", "经营活动现金流出总计"},
	{"NETCASH_OPERATE", "经营活动产生的现金流量净额"},
	{"OPERATE_NET_CASH_FLOW", "经营活动产生的现金流量净额"},
	{"WITHDRAW_INVEST", "收回投资收到的现金"},
	{"RECEIVE_INVEST_INCOME", "取得投资收益收到的现金"},
	{"RECEIVE_DIVIDEND_PROFIT", "取得股利、利润收到的现金"},
	{"DISPOSAL_LONG_ASSET", "处置固定资产、无形资产和其他长期资产收回的现金净额"},
	{"DISPOSAL_SUBSIDIARY_OTHER", "处置子公司及其他营业单位收到的现金净额"},
	{"RECEIVE_OTHER_INVEST", "收到其他与投资活动有关的现金"},
	{"INVEST_INFLOW_BALANCE", "投资活动现金流入合计"},
	{"TOTAL_INVEST_INFLOW", "投资活动现金流入总计"},
	{"CONSTRUCT_LONG_ASSET", "购建固定资产、无形资产和其他长期资产支付的现金"},
	{"INVEST_PAY_CASH", "投资支付的现金"},
	{"OBTAIN_SUBSIDIARY_OTHER", "取得子公司及其他营业单位支付的现金净额"},
	{"PAY_OTHER_INVEST", "支付其他与投资活动有关的现金"},
	{"INVEST_OUTFLOW_BALANCE", "投资活动现金流出合计"},
	{"TOTAL_INVEST_OUTFLOW", "投资活动现金流出总计"},
	{"NETCASH_INVEST", "投资活动产生的现金流量净额"},
	{"INVEST_NET_CASH_FLOW", "投资活动产生的现金流量净额"},
	{"ACCEPT_INVEST_CASH", "吸收投资收到的现金"},
	{"SUBSIDIARY_ACCEPT_INVEST", "其中：子公司吸收少数股东投资收到的现金"},
	{"ACCEPT_LOAN_CASH", "取得借款收到的现金"},
	{"ISSUE_BOND", "发行债券收到的现金"},
	{"RECEIVE_OTHER_FINANCE", "收到其他与筹资活动有关的现金"},
	{"FINANCE_INFLOW_BALANCE", "筹资活动现金流入合计"},
	{"TOTAL_FINANCE_INFLOW", "筹资活动现金流入总计"},
	{"PAY_DEBT_CASH", "偿还债务支付的现金"},
	{"ASSIGN_DIVIDEND_PORFIT", "分配股利、利润或偿付利息支付的现金"},
	{"SUBSIDIARY_PAY_DIVIDEND", "其中：子公司支付给少数股东的股利、利润"},
	{"PAY_OTHER_FINANCE", "支付其他与筹资活动有关的现金"},
	{"FINANCE_OUTFLOW_BALANCE", "筹资活动现金流出合计"},
	{"TOTAL_FINANCE_OUTFLOW", "筹资活动现金流出总计"},
	{"NETCASH_FINANCE", "筹资活动产生的现金流量净额"},
	{"FINANCE_NET_CASH_FLOW", "筹资活动产生的现金流量净额"},
	{"RATE_CHANGE_EFFECT", "汇率变动对现金及现金等价物的影响"},
	{"CCE_ADD", "现金及现金等价物净增加额"},
	{"NET_CASH_INCREASE", "现金及现金等价物净增加额"},
	{"BEGIN_CCE", "期初现金及现金等价物余额"},
	{"END_CCE", "期末现金及现金等价物余额"},
	{"BEGIN_CASH", "期初现金及现金等价物余额"},
	{"END_CASH", "期末现金及现金等价物余额"},
	{"NETPROFIT", "净利润"},
	{"ASSET_IMPAIRMENT", "资产减值准备"},
	{"FA_IR_DEPR", "固定资产和投资性房地产折旧"},
	{"FIXED_ASSET_DEPR", "固定资产折旧"},
	{"FA_DEPR", "固定资产折旧"},
	{"OILGAS_BIOLOGY_DEPR", "油气资产和生物资产折旧"},
	{"USERIGHT_ASSET_AMORTIZE", "使用权资产摊销"},
	{"IA_LPE_AMORTIZE", "无形资产和长期待摊费用摊销"},
	{"IA_AMORTIZE", "无形资产摊销"},
	{"LPE_AMORTIZE", "长期待摊费用摊销"},
	{"DISPOSAL_LONGASSET_LOSS", "处置长期资产损失"},
	{"FA_SCRAP_LOSS", "固定资产报废损失"},
	{"FAIRVALUE_CHANGE_LOSS", "公允价值变动损失"},
	{"INVEST_LOSS", "投资损失"},
	{"EXCHANGE_LOSS", "汇兑损失"},
	{"DEFER_TAX", "递延所得税"},
	{"DT_ASSET_REDUCE", "递延所得税资产减少"},
	{"DT_LIAB_ADD", "递延所得税负债增加"},
	{"INVENTORY_REDUCE", "存货减少"},
	{"OPERATE_RECE_REDUCE", "经营性应收项目减少"},
	{"OPERATE_PAYABLE_ADD", "经营性应付项目增加"},
	{"FBNETCASH_OPERATE", "间接法经营活动产生的现金流量净额"},
	{"DEBT_TRANSFER_CAPITAL", "债务转为资本"},
	{"CONVERT_BOND_1YEAR", "一年内到期的可转换公司债券"},
	{"FINLEASE_OBTAIN_FA", "融资租入固定资产"},
	{"END_CASH_EQUIVALENTS", "期末现金等价物"},
	{"BEGIN_CASH_EQUIVALENTS", "期初现金等价物"},
}

var labelIndex map[string]string

func init() {
	labelIndex = make(map[string]string, len(BalanceFields)+len(IncomeFields)+len(CashFlowFields))
	for _, list := range [][]FieldLabel{BalanceFields, IncomeFields, CashFlowFields} {
		for _, fl := range list {
			if _, ok := labelIndex[fl.Code]; !ok {
				labelIndex[fl.Code] = fl.Label
			}
		}
	}
}

// Label translates a vendor field code into its Chinese label. Unknown codes
// come back unchanged so that new vendor fields still display.
func Label(code string) string {
	if label, ok := labelIndex[code]; ok {
		return label
	}
	return code
}

// SheetFields returns the ordered 科目 dictionary for a statement.
func SheetFields(sheet SheetType) []FieldLabel {
	switch sheet {
	case SheetBalance:
		return BalanceFields
	case SheetIncome:
		return IncomeFields
	case SheetCashFlow:
		return CashFlowFields
	}
	return nil
}
