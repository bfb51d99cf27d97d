package annualreport

// Keyword dictionaries for locating the employee headcount disclosure inside
// an annual report. High-priority keywords name an explicit total; total
// indicators raise confidence when they appear next to a medium-priority hit.

func highPriorityKeywords() []string {
	return []string{
		"在职员工数量合计", "员工数量合计", "员工总数合计", "雇员总数合计",
		"在职员工总数", "员工总数", "雇员总数", "员工人数合计",
		"在册员工总数", "全职员工总数", "从业人员合计", "员工合计",

		// traditional Chinese, common in HK filings
		"在職員工數量合計", "員工數量合計", "員工總數", "僱員總數",

		"Total number of employees", "Total employees", "Employee count total",
		"Total staff", "Total workforce", "Grand total employees",
	}
}

func mediumPriorityKeywords() []string {
	return []string{
		"员工人数", "雇员人数", "在职人员", "从业人员", "员工数",
		"Number of employees", "Staff number", "Employee count",
		"Full-time employees", "Active employees",
	}
}

func totalIndicators() []string {
	return []string{
		"合计", "总计", "总数", "汇总", "小计", "总和",
		"Total", "total", "Sum", "Grand total", "Subtotal",
	}
}

// financialIndicators mark lines whose numbers are money, not headcount.
func financialIndicators() []string {
	return []string{
		"薪酬", "支付给员工", "员工薪酬", "职工薪酬", "万元", "亿",
		"收入", "利润", "成本", "费用", "报酬", "工资", "奖金", "津贴",
	}
}

func employeeTerms() []string {
	return []string{"员工", "雇员", "人员", "职工", "employee", "staff"}
}
