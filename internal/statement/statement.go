// Package statement models fetched financial statements and the field-code
// dictionaries that translate vendor field codes into Chinese labels.
package statement

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// SheetType identifies one of the three financial statements.
type SheetType string

const (
	SheetBalance  SheetType = "balance"
	SheetIncome   SheetType = "income"
	SheetCashFlow SheetType = "cashflow"
)

// ChineseName returns the statement name used in report output.
func (s SheetType) ChineseName() string {
	switch s {
	case SheetBalance:
		return "资产负债表"
	case SheetIncome:
		return "利润表"
	case SheetCashFlow:
		return "现金流量表"
	}
	return string(s)
}

// Market distinguishes A-share from Hong Kong listings.
type Market string

const (
	MarketAShare Market = "A"
	MarketHK     Market = "HK"
)

// Value is a statement figure in 亿元. Missing figures keep their own state
// rather than collapsing to zero, and render as "-".
type Value struct {
	Num   float64
	Valid bool
}

// Missing returns the absent-figure value.
func Missing() Value {
	return Value{}
}

// Of wraps a figure already expressed in 亿元.
func Of(v float64) Value {
	return Value{Num: v, Valid: true}
}

// Or returns the figure, or def when the figure is missing.
func (v Value) Or(def float64) float64 {
	if !v.Valid {
		return def
	}
	return v.Num
}

// Display renders the figure for tables: "-" when missing, otherwise the
// number with trailing zeros trimmed.
func (v Value) Display() string {
	if !v.Valid {
		return "-"
	}
	s := strconv.FormatFloat(v.Num, 'f', -1, 64)
	return s
}

// MarshalJSON emits the numeric figure, or "-" for missing values, matching
// the tabular output format.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return json.Marshal("-")
	}
	return json.Marshal(v.Num)
}

// Round2 rounds to two decimals, the precision used throughout the tables.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ToYi converts a raw statement figure in 元 to 亿元 with two decimals.
func ToYi(raw float64) float64 {
	return Round2(raw / 1e8)
}

// Period is a single reporting period of a statement: the 报告期 plus the
// vendor field-code → raw value map for that period.
type Period struct {
	ReportDate string             `json:"report_date"`
	Fields     map[string]float64 `json:"fields"`
}

// Yi returns the named field converted to 亿元, or a missing value when the
// vendor did not report the field for this period.
func (p *Period) Yi(field string) Value {
	if p == nil {
		return Missing()
	}
	raw, ok := p.Fields[field]
	if !ok {
		return Missing()
	}
	return Of(ToYi(raw))
}

// Raw returns the unscaled field value.
func (p *Period) Raw(field string) (float64, bool) {
	if p == nil {
		return 0, false
	}
	raw, ok := p.Fields[field]
	return raw, ok
}

// Statement is one financial statement for one security across all fetched
// reporting periods.
type Statement struct {
	Symbol  string    `json:"symbol"`
	Market  Market    `json:"market"`
	Sheet   SheetType `json:"sheet"`
	Periods []Period  `json:"periods"`
}

// AnnualRow selects the annual (12-31) reporting period of the given year.
// When the vendor returns multiple records for the same 报告期 the last one
// wins, matching the upstream ordering where the freshest record comes last.
func (s *Statement) AnnualRow(year int) *Period {
	if s == nil {
		return nil
	}
	prefix := strconv.Itoa(year) + "-12-31"
	var found *Period
	for i := range s.Periods {
		if strings.HasPrefix(s.Periods[i].ReportDate, prefix) {
			found = &s.Periods[i]
		}
	}
	return found
}

// Years lists the years for which an annual row exists, ascending.
func (s *Statement) Years() []int {
	if s == nil {
		return nil
	}
	seen := map[int]bool{}
	var years []int
	for _, p := range s.Periods {
		if !strings.Contains(p.ReportDate, "12-31") || len(p.ReportDate) < 4 {
			continue
		}
		year, err := strconv.Atoi(p.ReportDate[:4])
		if err != nil || seen[year] {
			continue
		}
		seen[year] = true
		years = append(years, year)
	}
	for i := 1; i < len(years); i++ {
		for j := i; j > 0 && years[j] < years[j-1]; j-- {
			years[j], years[j-1] = years[j-1], years[j]
		}
	}
	return years
}
