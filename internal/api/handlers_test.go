package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EigenChen/akshare-financial-analysis/pkg/config"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return &Server{
		config: &config.Config{
			Export: config.ExportConfig{Dir: t.TempDir()},
		},
	}
}

func TestHandleHealth(t *testing.T) {
	s := testServer(t)

	r := gin.New()
	r.GET("/health", s.handleHealth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestAnalyzeRequestDefaultYears(t *testing.T) {
	req := AnalyzeRequest{Symbol: "600519"}
	req.defaultYears()

	lastFullYear := time.Now().Year() - 1
	assert.Equal(t, lastFullYear, req.EndYear)
	assert.Equal(t, lastFullYear-9, req.StartYear)

	// explicit years are left alone
	req = AnalyzeRequest{Symbol: "600519", StartYear: 2015, EndYear: 2024}
	req.defaultYears()
	assert.Equal(t, 2015, req.StartYear)
	assert.Equal(t, 2024, req.EndYear)
}

func TestHandleExportDownload(t *testing.T) {
	s := testServer(t)

	name := "贵州茅台_2015-2024_财务分析_20250301103000.xlsx"
	require.NoError(t, os.WriteFile(filepath.Join(s.config.Export.Dir, name), []byte("data"), 0o644))

	r := gin.New()
	r.GET("/download", s.handleExportDownload)

	cases := []struct {
		query string
		code  int
	}{
		{"file=" + name, http.StatusOK},
		{"file=missing.xlsx", http.StatusNotFound},
		{"file=..%2Fsecret.txt", http.StatusBadRequest},
		{"", http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/download?"+tc.query, nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, tc.code, w.Code, "query %q", tc.query)
	}
}

func TestParseCompareQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(query string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/compare?"+query, nil)
		return c
	}

	q := "symbols=600519,%20000858&year=2023" +
		"&subject=" + url.QueryEscape("营收基本数据:收入（亿元）") +
		"&subject=" + url.QueryEscape("收益率和杜邦分析:ROE（%）")
	symbols, year, subjects, err := parseCompareQuery(newCtx(q))
	require.NoError(t, err)
	assert.Equal(t, []string{"600519", "000858"}, symbols)
	assert.Equal(t, 2023, year)
	require.Len(t, subjects, 2)
	assert.Equal(t, "营收基本数据", subjects[0].Table)
	assert.Equal(t, "收入（亿元）", subjects[0].Row)

	// one symbol is not a comparison
	_, _, _, err = parseCompareQuery(newCtx("symbols=600519&year=2023&subject=a:b"))
	assert.Error(t, err)

	// year and at least one well-formed subject are required
	_, _, _, err = parseCompareQuery(newCtx("symbols=600519,000858&subject=a:b"))
	assert.Error(t, err)
	_, _, _, err = parseCompareQuery(newCtx("symbols=600519,000858&year=2023"))
	assert.Error(t, err)
	_, _, _, err = parseCompareQuery(newCtx("symbols=600519,000858&year=2023&subject=nodelimiter"))
	assert.Error(t, err)
}

func uploadContext(t *testing.T, content string) (*gin.Context, *multipart.FileHeader) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "员工数量.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/upload", &buf)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	fh, err := c.FormFile("file")
	require.NoError(t, err)
	return c, fh
}

func TestSaveUploadUniquePaths(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// same client filename twice must not share a temp path
	c1, fh1 := uploadContext(t, "first")
	p1, err := saveUpload(c1, fh1, "employees-*.csv")
	require.NoError(t, err)
	defer os.Remove(p1)

	c2, fh2 := uploadContext(t, "second")
	p2, err := saveUpload(c2, fh2, "employees-*.csv")
	require.NoError(t, err)
	defer os.Remove(p2)

	assert.NotEqual(t, p1, p2)

	b1, err := os.ReadFile(p1)
	require.NoError(t, err)
	b2, err := os.ReadFile(p2)
	require.NoError(t, err)
	assert.Equal(t, "first", string(b1))
	assert.Equal(t, "second", string(b2))
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(corsMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
