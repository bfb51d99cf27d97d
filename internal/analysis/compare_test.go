package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableCell(t *testing.T) {
	tbl := RevenueTable(testInputs())

	assert.Equal(t, 100.0, tbl.Cell("收入（亿元）", 2023).Or(-1))
	assert.Equal(t, 20.0, tbl.Cell("归母净利润（亿元）", 2023).Or(-1))

	// unknown 科目 and out-of-window years are missing
	assert.False(t, tbl.Cell("没有的科目", 2023).Valid)
	assert.False(t, tbl.Cell("收入（亿元）", 2021).Valid)
	assert.False(t, tbl.Cell("收入（亿元）", 2024).Valid)
}

func TestCompare(t *testing.T) {
	first := testInputs()

	second := testInputs()
	second.Income = buildStatement(second.Income.Sheet, map[int]map[string]float64{
		2023: {
			"OPERATE_INCOME":   yi(50),
			"PARENT_NETPROFIT": yi(5),
		},
	})

	companies := []CompanyTables{
		{Name: "甲公司", Tables: Tables(first)},
		{Name: "乙公司", Tables: Tables(second)},
	}
	subjects := []Subject{
		{Table: "营收基本数据", Row: "收入（亿元）"},
		{Table: "营收基本数据", Row: "扣非净利润（亿元）"},
		{Table: "没有的表", Row: "收入（亿元）"},
	}

	cmps := Compare(2023, subjects, companies)
	require.Len(t, cmps, 3)

	assert.Equal(t, "营收基本数据 - 收入（亿元）", cmps[0].Subject)
	assert.Equal(t, []string{"甲公司", "乙公司"}, cmps[0].Companies)
	assert.Equal(t, 100.0, cmps[0].Values[0].Or(-1))
	assert.Equal(t, 50.0, cmps[0].Values[1].Or(-1))

	// 乙公司 lacks the 扣非 figure, the value stays missing
	assert.Equal(t, 18.0, cmps[1].Values[0].Or(-1))
	assert.False(t, cmps[1].Values[1].Valid)

	// an unknown table is missing for everyone
	assert.False(t, cmps[2].Values[0].Valid)
	assert.False(t, cmps[2].Values[1].Valid)
}
