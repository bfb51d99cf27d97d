package statement

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToYi(t *testing.T) {
	assert.Equal(t, 17.53, ToYi(1752847392.11))
	assert.Equal(t, 0.0, ToYi(0))
	assert.Equal(t, -3.25, ToYi(-325000000))
}

func TestValueDisplay(t *testing.T) {
	assert.Equal(t, "-", Value{}.Display())
	assert.Equal(t, "12.5", Of(12.5).Display())
	assert.Equal(t, "0", Of(0).Display())
}

func TestValueMarshalJSON(t *testing.T) {
	b, err := json.Marshal(map[string]Value{"a": Of(1.5), "b": {}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1.5,"b":"-"}`, string(b))
}

func TestAnnualRow(t *testing.T) {
	s := &Statement{
		Sheet: SheetIncome,
		Periods: []Period{
			{ReportDate: "2023-09-30 00:00:00", Fields: map[string]float64{"OPERATE_INCOME": 1}},
			{ReportDate: "2023-12-31 00:00:00", Fields: map[string]float64{"OPERATE_INCOME": 2}},
			{ReportDate: "2024-12-31 00:00:00", Fields: map[string]float64{"OPERATE_INCOME": 3}},
		},
	}

	p := s.AnnualRow(2023)
	require.NotNil(t, p)
	assert.Equal(t, 2.0, p.Fields["OPERATE_INCOME"])

	assert.Nil(t, s.AnnualRow(2022))
	assert.Equal(t, []int{2023, 2024}, s.Years())
}

func TestAnnualRowMatchesYearComponentOnly(t *testing.T) {
	s := &Statement{
		Sheet: SheetIncome,
		Periods: []Period{
			// the queried year appears in the date but not as its year
			{ReportDate: "2020-12-31 00:00:00 2024", Fields: map[string]float64{"OPERATE_INCOME": 1}},
			{ReportDate: "2024-03-31 00:00:00", Fields: map[string]float64{"OPERATE_INCOME": 2}},
		},
	}
	assert.Nil(t, s.AnnualRow(2024))

	// bare HK-style dates still match
	s.Periods = append(s.Periods, Period{ReportDate: "2024-12-31", Fields: map[string]float64{"OPERATE_INCOME": 3}})
	p := s.AnnualRow(2024)
	require.NotNil(t, p)
	assert.Equal(t, 3.0, p.Fields["OPERATE_INCOME"])
}

func TestLabelFallsBackToCode(t *testing.T) {
	assert.Equal(t, "营业总收入", Label("TOTAL_OPERATE_INCOME"))
	assert.Equal(t, "应付账款", Label("ACCOUNTS_PAYABLE"))
	assert.Equal(t, "NO_SUCH_FIELD", Label("NO_SUCH_FIELD"))
}

func TestReshapeDropsZeroAndYOY(t *testing.T) {
	s := &Statement{
		Sheet: SheetBalance,
		Periods: []Period{{
			ReportDate: "2024-12-31 00:00:00",
			Fields: map[string]float64{
				"MONETARYFUNDS":     182500000000,
				"ACCOUNTS_RECE":     0,
				"MONETARYFUNDS_YOY": 12.3,
				"SOME_NEW_FIELD":    100000000,
			},
		}},
	}

	date, rows := s.Reshape("")
	assert.Equal(t, "2024-12-31 00:00:00", date)
	require.Len(t, rows, 2)
	assert.Equal(t, Row{Code: "MONETARYFUNDS", Label: "货币资金", Yi: 1825}, rows[0])
	assert.Equal(t, Row{Code: "SOME_NEW_FIELD", Label: "-", Yi: 1}, rows[1])
}

func TestFromHKItemsPivot(t *testing.T) {
	items := []HKItem{
		{ReportDate: "2023-12-31", ItemName: "营运收入", Amount: 100e8, HasAmount: true},
		{ReportDate: "2023-12-31", ItemName: "营业额", Amount: 90e8, HasAmount: true},
		{ReportDate: "2023-12-31", ItemName: "股东应占溢利", Amount: 20e8, HasAmount: true},
		{ReportDate: "2023-12-31", ItemName: "其他收入杂项", Amount: 1e8, HasAmount: true},
		{ReportDate: "2022-12-31", ItemName: "营运收入", Amount: 80e8, HasAmount: true},
		{ReportDate: "2022-12-31", ItemName: "无值科目", HasAmount: false},
	}

	s, names := FromHKItems("00700", SheetIncome, items)
	require.Len(t, s.Periods, 2)
	assert.Equal(t, "2022-12-31", s.Periods[0].ReportDate)

	p := s.Periods[1]
	// first amount wins when two 科目 map to the same code
	assert.Equal(t, 100e8, p.Fields["OPERATE_INCOME"])
	assert.Equal(t, 20e8, p.Fields["PARENT_NETPROFIT"])
	assert.Equal(t, 1e8, p.Fields["其他收入杂项"])

	assert.Equal(t, "营运收入", names["OPERATE_INCOME"])
	assert.Equal(t, "其他收入杂项", names["其他收入杂项"])
}
