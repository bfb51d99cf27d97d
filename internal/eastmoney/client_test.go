package eastmoney

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EigenChen/akshare-financial-analysis/internal/statement"
)

func TestSecuCode(t *testing.T) {
	cases := map[string]string{
		"600519": "600519.SH",
		"688981": "688981.SH",
		"000001": "000001.SZ",
		"300750": "300750.SZ",
		"001979": "001979.SZ",
		"920001": "920001.BJ",
		"00700":  "00700.HK",
		"700":    "00700.HK",
	}
	for in, want := range cases {
		got, err := SecuCode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := SecuCode("999999")
	assert.Error(t, err)
	_, err = SecuCode("ABC")
	assert.Error(t, err)
}

func TestDetectMarket(t *testing.T) {
	m, err := DetectMarket("600519")
	require.NoError(t, err)
	assert.Equal(t, statement.MarketAShare, m)

	m, err = DetectMarket("09988")
	require.NoError(t, err)
	assert.Equal(t, statement.MarketHK, m)
}

func TestNormalizeHKCode(t *testing.T) {
	assert.Equal(t, "00700", NormalizeHKCode("700"))
	assert.Equal(t, "09988", NormalizeHKCode("9988"))
	assert.Equal(t, "01024", NormalizeHKCode("01024"))
}

func TestFetchStatementAShare(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "RPT_DMSK_FN_INCOME", r.URL.Query().Get("reportName"))
		assert.Contains(t, r.URL.Query().Get("filter"), `600519.SH`)
		fmt.Fprint(w, `{
			"version":"1",
			"result":{"pages":1,"count":2,"data":[
				{"SECUCODE":"600519.SH","SECURITY_NAME_ABBR":"贵州茅台","REPORT_DATE":"2024-12-31 00:00:00","TOTAL_OPERATE_INCOME":174144000000.0,"PARENT_NETPROFIT":86228000000.0},
				{"SECUCODE":"600519.SH","SECURITY_NAME_ABBR":"贵州茅台","REPORT_DATE":"2023-12-31 00:00:00","TOTAL_OPERATE_INCOME":150560000000.0,"PARENT_NETPROFIT":74734000000.0}
			]},
			"success":true,"message":"ok","code":0}`)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, RequestsPerSecond: 1000})
	st, name, err := c.FetchStatement(context.Background(), "600519", statement.SheetIncome)
	require.NoError(t, err)
	assert.Equal(t, "贵州茅台", name)
	require.Len(t, st.Periods, 2)
	// ascending by report date
	assert.Equal(t, "2023-12-31 00:00:00", st.Periods[0].ReportDate)
	assert.Equal(t, 150560000000.0, st.Periods[0].Fields["TOTAL_OPERATE_INCOME"])

	p := st.AnnualRow(2024)
	require.NotNil(t, p)
	assert.Equal(t, 862.28, p.Yi("PARENT_NETPROFIT").Or(0))
}

func TestFetchStatementHK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "RPT_HKF10_FN_INCOME_PC", r.URL.Query().Get("reportName"))
		assert.Contains(t, r.URL.Query().Get("filter"), `00700.HK`)
		fmt.Fprint(w, `{
			"version":"1",
			"result":{"pages":1,"count":3,"data":[
				{"SECUCODE":"00700.HK","SECURITY_NAME_ABBR":"腾讯控股","REPORT_DATE":"2024-12-31","STD_ITEM_NAME":"营运收入","AMOUNT":660257000000.0},
				{"SECUCODE":"00700.HK","SECURITY_NAME_ABBR":"腾讯控股","REPORT_DATE":"2024-12-31","STD_ITEM_NAME":"股东应占溢利","AMOUNT":194073000000.0},
				{"SECUCODE":"00700.HK","SECURITY_NAME_ABBR":"腾讯控股","REPORT_DATE":"2024-12-31","STD_ITEM_NAME":"无映射科目","AMOUNT":null}
			]},
			"success":true,"message":"ok","code":0}`)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, RequestsPerSecond: 1000})
	st, name, err := c.FetchStatement(context.Background(), "700", statement.SheetIncome)
	require.NoError(t, err)
	assert.Equal(t, "腾讯控股", name)
	assert.Equal(t, "00700", st.Symbol)
	assert.Equal(t, statement.MarketHK, st.Market)
	require.Len(t, st.Periods, 1)
	assert.Equal(t, 660257000000.0, st.Periods[0].Fields["OPERATE_INCOME"])
	assert.Equal(t, 194073000000.0, st.Periods[0].Fields["PARENT_NETPROFIT"])
}

func TestFetchStatementNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"version":"1","result":null,"success":false,"message":"未找到数据，没有相关记录","code":9201}`)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, RequestsPerSecond: 1000})
	st, _, err := c.FetchStatement(context.Background(), "600000", statement.SheetBalance)
	require.NoError(t, err)
	assert.Empty(t, st.Periods)
}

func TestFetchEmployeeNumber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "RPT_F10_BASIC_ORGINFO", r.URL.Query().Get("reportName"))
		assert.Contains(t, r.URL.Query().Get("filter"), `600519.SH`)
		assert.Empty(t, r.URL.Query().Get("sortColumns"))
		fmt.Fprint(w, `{
			"version":"1",
			"result":{"pages":1,"count":1,"data":[
				{"SECUCODE":"600519.SH","ORG_NAME":"贵州茅台酒股份有限公司","EMP_NUM":33691.0}
			]},
			"success":true,"message":"ok","code":0}`)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, RequestsPerSecond: 1000})
	n, err := c.FetchEmployeeNumber(context.Background(), "600519")
	require.NoError(t, err)
	assert.Equal(t, 33691, n)

	_, err = c.FetchEmployeeNumber(context.Background(), "00700")
	assert.Error(t, err)
}

func TestFetchEmployeeNumberNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"version":"1","result":null,"success":false,"message":"未找到数据，没有相关记录","code":9201}`)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, RequestsPerSecond: 1000})
	n, err := c.FetchEmployeeNumber(context.Background(), "600519")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFetchStatementPaging(t *testing.T) {
	pagesSeen := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pagesSeen++
		page := r.URL.Query().Get("pageNumber")
		fmt.Fprintf(w, `{
			"version":"1",
			"result":{"pages":2,"count":2,"data":[
				{"SECUCODE":"000001.SZ","SECURITY_NAME_ABBR":"平安银行","REPORT_DATE":"202%s-12-31 00:00:00","TOTAL_ASSETS":1.0}
			]},
			"success":true,"message":"ok","code":0}`, page)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, RequestsPerSecond: 1000})
	st, _, err := c.FetchStatement(context.Background(), "000001", statement.SheetBalance)
	require.NoError(t, err)
	assert.Equal(t, 2, pagesSeen)
	assert.Len(t, st.Periods, 2)
}
