// Package eastmoney fetches financial statements from Eastmoney's datacenter
// web API, the same feed AKShare wraps. A-share statements arrive as wide
// rows (one period per row, one field per column); HK statements arrive as
// long rows (one 科目 amount per row) and get pivoted by the statement
// package.
package eastmoney

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/EigenChen/akshare-financial-analysis/internal/statement"
)

const defaultBaseURL = "https://datacenter-web.eastmoney.com/api/data/v1/get"

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Config controls endpoint and throttling behavior.
type Config struct {
	BaseURL           string
	RequestsPerSecond float64
	Timeout           time.Duration
	PageSize          int
	MaxRetries        int
}

// Client talks to the datacenter API.
type Client struct {
	http       *RLHTTPClient
	baseURL    string
	pageSize   int
	maxRetries int
}

// NewClient builds a Client, filling unset config fields with defaults that
// stay under Eastmoney's throttling threshold.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 2
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 500
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	return &Client{
		http:       NewRLClient(cfg.RequestsPerSecond, cfg.Timeout),
		baseURL:    cfg.BaseURL,
		pageSize:   cfg.PageSize,
		maxRetries: cfg.MaxRetries,
	}
}

// envelope is the datacenter API response wrapper.
type envelope struct {
	Version string `json:"version"`
	Result  struct {
		Pages int               `json:"pages"`
		Data  []json.RawMessage `json:"data"`
		Count int               `json:"count"`
	} `json:"result"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

var aShareReports = map[statement.SheetType]string{
	statement.SheetBalance:  "RPT_DMSK_FN_BALANCE",
	statement.SheetIncome:   "RPT_DMSK_FN_INCOME",
	statement.SheetCashFlow: "RPT_DMSK_FN_CASHFLOW",
}

var hkReports = map[statement.SheetType]string{
	statement.SheetBalance:  "RPT_HKF10_FN_BALANCE_PC",
	statement.SheetIncome:   "RPT_HKF10_FN_INCOME_PC",
	statement.SheetCashFlow: "RPT_HKF10_FN_CASHFLOW_PC",
}

// FetchStatement retrieves one statement for a bare stock code, routing to
// the A-share or HK endpoint by code shape. Periods come back sorted by
// report date ascending. The company's short name, when the feed carries
// one, is the second return value.
func (c *Client) FetchStatement(ctx context.Context, symbol string, sheet statement.SheetType) (*statement.Statement, string, error) {
	market, err := DetectMarket(symbol)
	if err != nil {
		return nil, "", err
	}
	if market == statement.MarketHK {
		return c.fetchHK(ctx, symbol, sheet)
	}
	return c.fetchAShare(ctx, symbol, sheet)
}

func (c *Client) fetchAShare(ctx context.Context, symbol string, sheet statement.SheetType) (*statement.Statement, string, error) {
	secuCode, err := SecuCode(symbol)
	if err != nil {
		return nil, "", err
	}
	report, ok := aShareReports[sheet]
	if !ok {
		return nil, "", fmt.Errorf("unknown statement type %q", sheet)
	}

	rows, err := c.fetchAllPages(ctx, report, fmt.Sprintf(`(SECUCODE="%s")`, secuCode))
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s for %s: %w", report, secuCode, err)
	}

	var name string
	st := &statement.Statement{Symbol: symbol, Market: statement.MarketAShare, Sheet: sheet}
	for _, raw := range rows {
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, "", fmt.Errorf("decode %s row: %w", report, err)
		}
		date, _ := m["REPORT_DATE"].(string)
		if date == "" {
			continue
		}
		if name == "" {
			name, _ = m["SECURITY_NAME_ABBR"].(string)
		}
		p := statement.Period{ReportDate: date, Fields: make(map[string]float64)}
		for k, v := range m {
			if n, ok := v.(float64); ok {
				p.Fields[k] = n
			}
		}
		st.Periods = append(st.Periods, p)
	}
	sortPeriods(st)
	return st, name, nil
}

// hkRow is one long-format HK statement row.
type hkRow struct {
	SecurityNameAbbr string   `json:"SECURITY_NAME_ABBR"`
	ReportDate       string   `json:"REPORT_DATE"`
	StdItemName      string   `json:"STD_ITEM_NAME"`
	Amount           *float64 `json:"AMOUNT"`
}

func (c *Client) fetchHK(ctx context.Context, symbol string, sheet statement.SheetType) (*statement.Statement, string, error) {
	code := NormalizeHKCode(symbol)
	report, ok := hkReports[sheet]
	if !ok {
		return nil, "", fmt.Errorf("unknown statement type %q", sheet)
	}

	filter := fmt.Sprintf(`(SECUCODE="%s.HK")(REPORT_TYPE="年报")`, code)
	rows, err := c.fetchAllPages(ctx, report, filter)
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s for %s.HK: %w", report, code, err)
	}

	var name string
	items := make([]statement.HKItem, 0, len(rows))
	for _, raw := range rows {
		var r hkRow
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, "", fmt.Errorf("decode %s row: %w", report, err)
		}
		if name == "" {
			name = r.SecurityNameAbbr
		}
		it := statement.HKItem{ReportDate: r.ReportDate, ItemName: strings.TrimSpace(r.StdItemName)}
		if r.Amount != nil {
			it.Amount = *r.Amount
			it.HasAmount = true
		}
		items = append(items, it)
	}

	st, _ := statement.FromHKItems(code, sheet, items)
	return st, name, nil
}

func (c *Client) fetchAllPages(ctx context.Context, reportName, filter string) ([]json.RawMessage, error) {
	var rows []json.RawMessage
	page := 1
	totalPages := 1
	for page <= totalPages {
		env, err := c.getPage(ctx, reportName, filter, page, "REPORT_DATE")
		if err != nil {
			return nil, err
		}
		if !env.Success {
			// the API signals "no data" as a failure
			if strings.Contains(env.Message, "没有") || env.Result.Count == 0 {
				return rows, nil
			}
			return nil, fmt.Errorf("api error %d: %s", env.Code, env.Message)
		}
		rows = append(rows, env.Result.Data...)
		if page == 1 {
			totalPages = env.Result.Pages
		}
		page++
	}
	return rows, nil
}

// FetchEmployeeNumber returns the current staff count from the company
// profile feed (RPT_F10_BASIC_ORGINFO). The profile carries a single
// figure, not a history. Only A-share symbols are covered; a zero count
// with a nil error means the feed has no figure for the company.
func (c *Client) FetchEmployeeNumber(ctx context.Context, symbol string) (int, error) {
	market, err := DetectMarket(symbol)
	if err != nil {
		return 0, err
	}
	if market != statement.MarketAShare {
		return 0, fmt.Errorf("employee number lookup covers A-share symbols only: %s", symbol)
	}
	secuCode, err := SecuCode(symbol)
	if err != nil {
		return 0, err
	}

	// The profile report rejects the statement sort column, so fetch unsorted.
	env, err := c.getPage(ctx, "RPT_F10_BASIC_ORGINFO", fmt.Sprintf(`(SECUCODE="%s")`, secuCode), 1, "")
	if err != nil {
		return 0, err
	}
	if !env.Success {
		if strings.Contains(env.Message, "没有") || env.Result.Count == 0 {
			return 0, nil
		}
		return 0, fmt.Errorf("api error %d: %s", env.Code, env.Message)
	}
	if len(env.Result.Data) == 0 {
		return 0, nil
	}

	var row struct {
		EmpNum *float64 `json:"EMP_NUM"`
	}
	if err := json.Unmarshal(env.Result.Data[0], &row); err != nil {
		return 0, fmt.Errorf("failed to decode profile row: %w", err)
	}
	if row.EmpNum == nil || *row.EmpNum <= 0 {
		return 0, nil
	}
	return int(*row.EmpNum), nil
}

func (c *Client) getPage(ctx context.Context, reportName, filter string, page int, sortColumn string) (*envelope, error) {
	q := url.Values{}
	q.Set("reportName", reportName)
	q.Set("columns", "ALL")
	q.Set("filter", filter)
	q.Set("pageNumber", fmt.Sprintf("%d", page))
	q.Set("pageSize", fmt.Sprintf("%d", c.pageSize))
	if sortColumn != "" {
		q.Set("sortColumns", sortColumn)
		q.Set("sortTypes", "-1")
	}
	reqURL := c.baseURL + "?" + q.Encode()

	var resp *http.Response
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", browserUserAgent)
		req.Header.Set("Accept", "application/json, text/plain, */*")
		req.Header.Set("Referer", "https://data.eastmoney.com/")

		resp, err = c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch page: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			backoff := time.Duration(attempt+1) * 5 * time.Second
			select {
			case <-time.After(backoff):
				continue
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		break
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("datacenter returned status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &env, nil
}

func sortPeriods(st *statement.Statement) {
	sort.Slice(st.Periods, func(a, b int) bool {
		return st.Periods[a].ReportDate < st.Periods[b].ReportDate
	})
}
