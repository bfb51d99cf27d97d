package analysis

import (
	"math"

	"github.com/EigenChen/akshare-financial-analysis/internal/statement"
)

var growthLabels = []string{
	"收入增长率（%）",
	"归母净利润增长率（%）",
}

// GrowthTable builds the 增长 table: year-over-year growth of revenue and
// parent net profit, plus trailing compound growth columns. The compound
// rates need both endpoints positive; the first covered year is the baseline
// and shows no growth figure.
func GrowthTable(in Inputs) *Table {
	t := newTable("增长", growthLabels, in.StartYear, in.EndYear, "最近5年", "最近3年")

	revenues := make(map[int]float64)
	profits := make(map[int]float64)
	for _, year := range t.Years {
		income := in.Income.AnnualRow(year)
		if income == nil {
			continue
		}
		if v := income.Yi("OPERATE_INCOME"); v.Valid {
			revenues[year] = v.Num
		}
		if v := income.Yi("PARENT_NETPROFIT"); v.Valid {
			profits[year] = v.Num
		}
	}

	for _, year := range t.Years {
		if year == in.StartYear {
			continue
		}
		t.set(0, year, yoy(revenues, year))
		t.set(1, year, yoy(profits, year))
	}

	for i, span := range []int{5, 3} {
		t.setExtra(0, i, cagr(revenues, in.EndYear, span))
		t.setExtra(1, i, cagr(profits, in.EndYear, span))
	}

	return t
}

func yoy(values map[int]float64, year int) statement.Value {
	curr, okCurr := values[year]
	prev, okPrev := values[year-1]
	if !okCurr || !okPrev || prev == 0 {
		return statement.Missing()
	}
	return statement.Of(statement.Round2((curr - prev) / prev * 100))
}

// cagr computes the compound annual growth rate over span years ending at
// endYear: ((end/start)^(1/span) - 1) * 100.
func cagr(values map[int]float64, endYear, span int) statement.Value {
	end, okEnd := values[endYear]
	start, okStart := values[endYear-span]
	if !okEnd || !okStart || start <= 0 || end <= 0 {
		return statement.Missing()
	}
	rate := (math.Pow(end/start, 1/float64(span)) - 1) * 100
	return statement.Of(statement.Round2(rate))
}
