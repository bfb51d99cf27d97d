package analysis

import "github.com/EigenChen/akshare-financial-analysis/internal/statement"

var perCapitaLabels = []string{
	"人数",
	"人均收入（万元）",
	"人均归母净利润（万元）",
	"人均扣非净利润（万元）",
	"人均薪酬（万元）",
}

// PerCapitaTable builds the 人均数据 table. Per-capita figures divide the
// 亿元 value by headcount and scale by 10000 to land in 万元. The yearly
// payroll is the staff salary payable movement plus the cash actually paid
// to employees: 期末应付职工薪酬 - 上年期末 + 支付给职工的现金.
func PerCapitaTable(in Inputs) *Table {
	t := newTable("人均数据", perCapitaLabels, in.StartYear, in.EndYear)

	for _, year := range t.Years {
		balance := in.Balance.AnnualRow(year)
		income := in.Income.AnnualRow(year)
		cashFlow := in.CashFlow.AnnualRow(year)
		if balance == nil || income == nil || cashFlow == nil {
			continue
		}

		count, hasCount := in.Employees[year]
		if hasCount {
			t.set(0, year, statement.Of(float64(count)))
		}

		revenue := income.Yi("OPERATE_INCOME")
		if !revenue.Valid {
			continue
		}

		usable := hasCount && count > 0

		if usable {
			t.set(1, year, perHead(revenue, count))
		}
		if parentProfit := income.Yi("PARENT_NETPROFIT"); usable && parentProfit.Valid {
			t.set(2, year, perHead(parentProfit, count))
		}
		if deduct := income.Yi("DEDUCT_PARENT_NETPROFIT"); usable && deduct.Valid {
			t.set(3, year, perHead(deduct, count))
		}

		salaryPayable := balance.Yi("STAFF_SALARY_PAYABLE").Or(0)
		prevPayable := 0.0
		if prevBalance := in.Balance.AnnualRow(year - 1); prevBalance != nil {
			prevPayable = prevBalance.Yi("STAFF_SALARY_PAYABLE").Or(0)
		}
		totalSalary := statement.Round2(salaryPayable - prevPayable + cashFlow.Yi("PAY_STAFF_CASH").Or(0))
		if usable {
			t.set(4, year, perHead(statement.Of(totalSalary), count))
		}
	}

	return t
}

// perHead converts a 亿元 figure into 万元 per employee.
func perHead(v statement.Value, count int) statement.Value {
	return statement.Of(statement.Round2(v.Num / float64(count) * 10000))
}
