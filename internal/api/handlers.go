package api

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EigenChen/akshare-financial-analysis/internal/analysis"
	"github.com/EigenChen/akshare-financial-analysis/internal/statement"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// handleHealth handles the health check endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// AnalyzeRequest represents a company analysis request.
type AnalyzeRequest struct {
	Symbol    string `json:"symbol" binding:"required"`
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year"`
}

// defaultYears fills an empty year range with the last ten full fiscal years.
func (r *AnalyzeRequest) defaultYears() {
	if r.EndYear == 0 {
		r.EndYear = time.Now().Year() - 1
	}
	if r.StartYear == 0 {
		r.StartYear = r.EndYear - 9
	}
}

// handleAnalyze handles company analysis requests.
func (s *Server) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol is required"})
		return
	}
	req.defaultYears()

	result, err := s.engine.AnalyzeCompany(c.Request.Context(), req.Symbol, req.StartYear, req.EndYear)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"company": result.Company,
		"run":     result.Run,
		"tables":  result.Tables,
	})
}

// handleListCompanies handles listing companies.
func (s *Server) handleListCompanies(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	if limit > 200 {
		limit = 200
	}

	companies, err := s.repo.ListCompanies(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"companies": companies,
		"count":     len(companies),
	})
}

// handleGetCompany handles getting a single company.
func (s *Server) handleGetCompany(c *gin.Context) {
	symbol := c.Param("symbol")

	company, err := s.repo.GetCompanyBySymbol(c.Request.Context(), symbol)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if company == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
		return
	}

	employees, _ := s.repo.ListEmployeeCounts(c.Request.Context(), company.ID)
	runs, _ := s.repo.ListRuns(c.Request.Context(), company.ID, 10)

	c.JSON(http.StatusOK, gin.H{
		"company":         company,
		"employee_counts": employees,
		"runs":            runs,
	})
}

// handleGetStatement returns one reshaped statement period for display.
func (s *Server) handleGetStatement(c *gin.Context) {
	symbol := c.Param("symbol")

	sheet := statement.SheetType(c.DefaultQuery("sheet", string(statement.SheetBalance)))
	switch sheet {
	case statement.SheetBalance, statement.SheetIncome, statement.SheetCashFlow:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "sheet must be balance, income or cashflow"})
		return
	}

	stmt, err := s.engine.FetchStatement(c.Request.Context(), symbol, sheet)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	reportDate := ""
	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		period := stmt.AnnualRow(year)
		if period == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no annual report period for that year"})
			return
		}
		reportDate = period.ReportDate
	}

	date, rows := stmt.Reshape(reportDate)
	if len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no statement data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"symbol":      symbol,
		"sheet":       sheet,
		"sheet_name":  sheet.ChineseName(),
		"report_date": date,
		"rows":        rows,
	})
}

// ExportRequest represents an export request.
type ExportRequest struct {
	Symbol    string `json:"symbol" binding:"required"`
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year"`
	Format    string `json:"format"` // excel (default) or csv
}

// handleExport runs a full analysis and writes the workbook or CSV files.
func (s *Server) handleExport(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol is required"})
		return
	}
	analyzeReq := AnalyzeRequest{Symbol: req.Symbol, StartYear: req.StartYear, EndYear: req.EndYear}
	analyzeReq.defaultYears()

	result, err := s.engine.AnalyzeCompany(c.Request.Context(), req.Symbol, analyzeReq.StartYear, analyzeReq.EndYear)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if req.Format == "csv" {
		paths, err := s.engine.ExportCSV(result)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		files := make([]string, len(paths))
		for i, p := range paths {
			files[i] = filepath.Base(p)
		}
		c.JSON(http.StatusOK, gin.H{"run_id": result.Run.ID, "files": files})
		return
	}

	path, err := s.engine.ExportExcel(c.Request.Context(), result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run_id": result.Run.ID,
		"file":   filepath.Base(path),
	})
}

// handleExportDownload serves a previously exported file.
func (s *Server) handleExportDownload(c *gin.Context) {
	file := c.Query("file")
	if file == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	// exports are served flat, so a bare filename is all we accept
	name := filepath.Base(file)
	if name != file || name == "." || name == ".." {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file name"})
		return
	}

	path := filepath.Join(s.config.Export.Dir, name)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	c.FileAttachment(path, name)
}

// parseCompareQuery pulls the symbol list, year and subjects out of a
// comparison request. Subjects arrive as repeated subject={表名}:{科目}
// parameters.
func parseCompareQuery(c *gin.Context) ([]string, int, []analysis.Subject, error) {
	var symbols []string
	for _, s := range strings.Split(c.Query("symbols"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			symbols = append(symbols, s)
		}
	}
	if len(symbols) < 2 {
		return nil, 0, nil, fmt.Errorf("at least two symbols are required")
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return nil, 0, nil, fmt.Errorf("year is required")
	}

	var subjects []analysis.Subject
	for _, raw := range c.QueryArray("subject") {
		table, row, ok := strings.Cut(raw, ":")
		if !ok || table == "" || row == "" {
			return nil, 0, nil, fmt.Errorf("invalid subject %q, expected 表名:科目", raw)
		}
		subjects = append(subjects, analysis.Subject{Table: table, Row: row})
	}
	if len(subjects) == 0 {
		return nil, 0, nil, fmt.Errorf("at least one subject is required")
	}
	return symbols, year, subjects, nil
}

// handleCompare lines up chosen 科目 values across companies for one year.
func (s *Server) handleCompare(c *gin.Context) {
	symbols, year, subjects, err := parseCompareQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comparisons, err := s.engine.CompareCompanies(c.Request.Context(), symbols, year, subjects)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":        year,
		"comparisons": comparisons,
	})
}

// handleListEmployees lists stored headcounts for a company.
func (s *Server) handleListEmployees(c *gin.Context) {
	symbol := c.Param("symbol")

	company, err := s.repo.GetCompanyBySymbol(c.Request.Context(), symbol)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if company == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
		return
	}

	counts, err := s.repo.ListEmployeeCounts(c.Request.Context(), company.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"symbol":          company.Symbol,
		"employee_counts": counts,
	})
}

// saveUpload writes an uploaded file to a unique temp path so concurrent
// uploads with the same client filename cannot clobber each other.
func saveUpload(c *gin.Context, file *multipart.FileHeader, pattern string) (string, error) {
	tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	tmp.Close()
	if err := c.SaveUploadedFile(file, tmp.Name()); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

// handleEmployeeCSVUpload bulk-loads headcounts from an uploaded CSV file.
func (s *Server) handleEmployeeCSVUpload(c *gin.Context) {
	symbol := c.PostForm("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol is required"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	tmp, err := saveUpload(c, file, "employees-*.csv")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save upload"})
		return
	}
	defer os.Remove(tmp)

	imported, err := s.engine.ImportEmployeeCSV(c.Request.Context(), symbol, tmp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "CSV processed successfully",
		"years_imported": imported,
	})
}

// handleEmployeePDFUpload extracts the headcount from an uploaded annual
// report PDF and stores it.
func (s *Server) handleEmployeePDFUpload(c *gin.Context) {
	symbol := c.PostForm("symbol")
	year, err := strconv.Atoi(c.PostForm("year"))
	if symbol == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol and year are required"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	tmp, err := saveUpload(c, file, "report-*.pdf")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save upload"})
		return
	}
	defer os.Remove(tmp)

	result, err := s.engine.ExtractEmployeesFromPDF(c.Request.Context(), symbol, year, tmp)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result == nil {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"found": true, "result": result})
}

// EmployeeExtractRequest represents a download-and-extract request.
type EmployeeExtractRequest struct {
	Symbol string `json:"symbol" binding:"required"`
	Year   int    `json:"year" binding:"required"`
}

// handleEmployeeExtract downloads the annual report for a year and mines it
// for the headcount.
func (s *Server) handleEmployeeExtract(c *gin.Context) {
	var req EmployeeExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol and year are required"})
		return
	}

	result, err := s.engine.ExtractEmployeesFromReport(c.Request.Context(), req.Symbol, req.Year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result == nil {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"found": true, "result": result})
}

// Web page handlers

// handleDashboard renders the main dashboard.
func (s *Server) handleDashboard(c *gin.Context) {
	runs, _ := s.repo.ListRuns(c.Request.Context(), 0, 20)
	companies, _ := s.repo.ListCompanies(c.Request.Context(), 50, 0)

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"title":     "财务分析",
		"runs":      runs,
		"companies": companies,
	})
}

// handleCompanyPage renders the company detail page.
func (s *Server) handleCompanyPage(c *gin.Context) {
	symbol := c.Param("symbol")

	company, err := s.repo.GetCompanyBySymbol(c.Request.Context(), symbol)
	if err != nil || company == nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Company not found"})
		return
	}

	employees, _ := s.repo.ListEmployeeCounts(c.Request.Context(), company.ID)
	runs, _ := s.repo.ListRuns(c.Request.Context(), company.ID, 10)

	c.HTML(http.StatusOK, "company.html", gin.H{
		"title":     company.Name + " - 财务分析",
		"company":   company,
		"employees": employees,
		"runs":      runs,
	})
}

// handleUploadPage renders the employee data upload page.
func (s *Server) handleUploadPage(c *gin.Context) {
	c.HTML(http.StatusOK, "upload.html", gin.H{
		"title": "上传员工数量数据",
	})
}

// handleComparePage renders the cross-company comparison page.
func (s *Server) handleComparePage(c *gin.Context) {
	c.HTML(http.StatusOK, "compare.html", gin.H{
		"title": "企业财务对比",
	})
}
