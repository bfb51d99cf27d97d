// Package analyzer provides the core financial analysis engine.
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/EigenChen/akshare-financial-analysis/internal/analysis"
	"github.com/EigenChen/akshare-financial-analysis/internal/annualreport"
	"github.com/EigenChen/akshare-financial-analysis/internal/eastmoney"
	"github.com/EigenChen/akshare-financial-analysis/internal/report"
	"github.com/EigenChen/akshare-financial-analysis/internal/statement"
	"github.com/EigenChen/akshare-financial-analysis/internal/storage"
	"github.com/EigenChen/akshare-financial-analysis/pkg/config"
)

// Engine orchestrates statement fetching, metric derivation and export.
type Engine struct {
	repo       *storage.Repository
	client     *eastmoney.Client
	downloader *annualreport.Downloader
	config     *config.Config
}

// NewEngine creates a new analysis engine.
func NewEngine(repo *storage.Repository, cfg *config.Config) *Engine {
	return &Engine{
		repo: repo,
		client: eastmoney.NewClient(eastmoney.Config{
			BaseURL:           cfg.Eastmoney.BaseURL,
			RequestsPerSecond: cfg.Eastmoney.RequestsPerSecond,
			Timeout:           cfg.Eastmoney.Timeout,
			PageSize:          cfg.Eastmoney.PageSize,
			MaxRetries:        cfg.Eastmoney.MaxRetries,
		}),
		downloader: annualreport.NewDownloader(cfg.Reports.Dir),
		config:     cfg,
	}
}

// AnalysisResult represents the complete analysis of one company.
type AnalysisResult struct {
	Company *storage.Company     `json:"company"`
	Run     *storage.AnalysisRun `json:"run,omitempty"`
	Tables  []*analysis.Table    `json:"tables"`
}

// AnalyzeCompany fetches the three statements for a symbol, derives all metric
// tables for the year range and records the run.
func (e *Engine) AnalyzeCompany(ctx context.Context, symbol string, startYear, endYear int) (*AnalysisResult, error) {
	symbol = strings.TrimSpace(symbol)
	market, err := eastmoney.DetectMarket(symbol)
	if err != nil {
		return nil, err
	}
	if endYear < startYear {
		return nil, fmt.Errorf("invalid year range %d-%d", startYear, endYear)
	}

	// income first: it carries the company name used everywhere downstream
	income, name, err := e.fetchStatement(ctx, symbol, statement.SheetIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch income statement: %w", err)
	}

	company, err := e.repo.GetOrCreateCompany(ctx, symbol, name, string(market))
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if company.Name != "" {
		name = company.Name
	}

	run := &storage.AnalysisRun{
		CompanyID: company.ID,
		StartYear: startYear,
		EndYear:   endYear,
		Status:    storage.RunRunning,
	}
	if err := e.repo.CreateRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	balance, _, err := e.fetchStatement(ctx, symbol, statement.SheetBalance)
	if err != nil {
		return nil, e.failRun(ctx, run, fmt.Errorf("failed to fetch balance sheet: %w", err))
	}
	cashFlow, _, err := e.fetchStatement(ctx, symbol, statement.SheetCashFlow)
	if err != nil {
		return nil, e.failRun(ctx, run, fmt.Errorf("failed to fetch cash flow statement: %w", err))
	}

	employees, err := e.repo.EmployeeCountsByYear(ctx, company.ID)
	if err != nil {
		return nil, e.failRun(ctx, run, fmt.Errorf("failed to load employee counts: %w", err))
	}
	if len(employees) == 0 && market == statement.MarketAShare {
		// Last resort: the company profile carries a single current
		// headcount. Apply it across the window so the per-capita rows
		// are populated rather than blank.
		if n, err := e.client.FetchEmployeeNumber(ctx, symbol); err != nil {
			fmt.Printf("warning: employee number lookup failed for %s: %v\n", symbol, err)
		} else if n > 0 {
			employees = make(map[int]int, endYear-startYear+1)
			for y := startYear; y <= endYear; y++ {
				employees[y] = n
			}
		}
	}

	tables := analysis.Tables(analysis.Inputs{
		Symbol:    symbol,
		Name:      name,
		StartYear: startYear,
		EndYear:   endYear,
		Balance:   balance,
		Income:    income,
		CashFlow:  cashFlow,
		Employees: employees,
	})

	run.Status = storage.RunCompleted
	if err := e.repo.UpdateRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to update run: %w", err)
	}

	return &AnalysisResult{Company: company, Run: run, Tables: tables}, nil
}

// CompareCompanies derives one year's metric tables for each symbol and
// lines up the chosen subjects side by side.
func (e *Engine) CompareCompanies(ctx context.Context, symbols []string, year int, subjects []analysis.Subject) ([]analysis.Comparison, error) {
	if len(symbols) < 2 {
		return nil, fmt.Errorf("comparison needs at least two symbols")
	}
	companies := make([]analysis.CompanyTables, 0, len(symbols))
	for _, sym := range symbols {
		result, err := e.AnalyzeCompany(ctx, sym, year, year)
		if err != nil {
			return nil, fmt.Errorf("failed to analyze %s: %w", sym, err)
		}
		name := result.Company.Name
		if name == "" {
			name = result.Company.Symbol
		}
		companies = append(companies, analysis.CompanyTables{Name: name, Tables: result.Tables})
	}
	return analysis.Compare(year, subjects, companies), nil
}

// ExportExcel writes the analysis workbook and records the path on the run.
func (e *Engine) ExportExcel(ctx context.Context, result *AnalysisResult) (string, error) {
	run := result.Run
	filename := report.ExcelFilename(result.Company.Name, run.StartYear, run.EndYear, time.Now())
	path := filepath.Join(e.config.Export.Dir, filename)
	if err := report.WriteExcel(path, result.Tables); err != nil {
		return "", fmt.Errorf("failed to write Excel workbook: %w", err)
	}

	run.ExcelPath = path
	if err := e.repo.UpdateRun(ctx, run); err != nil {
		return "", fmt.Errorf("failed to record export path: %w", err)
	}
	return path, nil
}

// ExportCSV writes one CSV per metric table and returns the file paths.
func (e *Engine) ExportCSV(result *AnalysisResult) ([]string, error) {
	run := result.Run
	return report.WriteAllCSV(e.config.Export.Dir, result.Company.Name, run.StartYear, run.EndYear, time.Now(), result.Tables)
}

// FetchStatement returns one statement for a symbol, through the cache.
func (e *Engine) FetchStatement(ctx context.Context, symbol string, sheet statement.SheetType) (*statement.Statement, error) {
	stmt, _, err := e.fetchStatement(ctx, strings.TrimSpace(symbol), sheet)
	return stmt, err
}

// ImportEmployeeCSV loads per-year headcounts from a CSV file and stores them
// for the symbol. It returns the number of years imported.
func (e *Engine) ImportEmployeeCSV(ctx context.Context, symbol, path string) (int, error) {
	market, err := eastmoney.DetectMarket(symbol)
	if err != nil {
		return 0, err
	}
	counts, err := annualreport.LoadEmployeeCSV(path)
	if err != nil {
		return 0, err
	}

	company, err := e.repo.GetOrCreateCompany(ctx, symbol, "", string(market))
	if err != nil {
		return 0, err
	}
	for year, count := range counts {
		ec := &storage.EmployeeCount{
			CompanyID: company.ID,
			Year:      year,
			Count:     count,
			Source:    storage.EmployeeSourceCSV,
		}
		if err := e.repo.UpsertEmployeeCount(ctx, ec); err != nil {
			return 0, fmt.Errorf("failed to save headcount for %d: %w", year, err)
		}
	}
	return len(counts), nil
}

// ExtractEmployeesFromReport downloads the annual report PDF for a fiscal year
// and mines it for the headcount. Extraction is best effort; a nil result with
// nil error means the report had no recognizable figure.
func (e *Engine) ExtractEmployeesFromReport(ctx context.Context, symbol string, year int) (*annualreport.Result, error) {
	pdfPath, err := e.downloader.DownloadReport(ctx, symbol, year)
	if err != nil {
		return nil, fmt.Errorf("failed to download annual report: %w", err)
	}
	return e.ExtractEmployeesFromPDF(ctx, symbol, year, pdfPath)
}

// ExtractEmployeesFromPDF mines an already-downloaded annual report PDF for
// the headcount and stores the result.
func (e *Engine) ExtractEmployeesFromPDF(ctx context.Context, symbol string, year int, pdfPath string) (*annualreport.Result, error) {
	market, err := eastmoney.DetectMarket(symbol)
	if err != nil {
		return nil, err
	}

	result, err := annualreport.ExtractEmployeeCount(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to extract employee count: %w", err)
	}
	if result == nil {
		return nil, nil
	}
	// Low-confidence figures are returned to the caller but never stored.
	if result.Confidence < e.config.Reports.MinConfidence {
		return result, nil
	}

	company, err := e.repo.GetOrCreateCompany(ctx, symbol, "", string(market))
	if err != nil {
		return nil, err
	}
	ec := &storage.EmployeeCount{
		CompanyID:  company.ID,
		Year:       year,
		Count:      result.Count,
		Source:     storage.EmployeeSourcePDF,
		Confidence: result.Confidence,
		ReportPath: pdfPath,
	}
	if err := e.repo.UpsertEmployeeCount(ctx, ec); err != nil {
		return nil, fmt.Errorf("failed to save extracted headcount: %w", err)
	}
	return result, nil
}

// fetchStatement goes through the statement cache when it is fresh enough,
// falling back to the vendor API.
func (e *Engine) fetchStatement(ctx context.Context, symbol string, sheet statement.SheetType) (*statement.Statement, string, error) {
	company, err := e.repo.GetCompanyBySymbol(ctx, symbol)
	if err != nil {
		return nil, "", err
	}

	if company != nil {
		cached, err := e.repo.GetLatestStatement(ctx, company.ID, string(sheet))
		if err != nil {
			return nil, "", err
		}
		if cached != nil && time.Since(cached.FetchedAt) < e.config.Eastmoney.CacheTTL {
			var stmt statement.Statement
			if err := json.Unmarshal([]byte(cached.Payload), &stmt); err == nil {
				return &stmt, company.Name, nil
			}
			// fall through to a fresh fetch on a corrupt payload
		}
	}

	stmt, name, err := e.client.FetchStatement(ctx, symbol, sheet)
	if err != nil {
		return nil, "", err
	}

	if company == nil {
		market, err := eastmoney.DetectMarket(symbol)
		if err != nil {
			return nil, "", err
		}
		company, err = e.repo.GetOrCreateCompany(ctx, symbol, name, string(market))
		if err != nil {
			return nil, "", err
		}
	}

	payload, err := json.Marshal(stmt)
	if err == nil {
		cacheErr := e.repo.SaveStatement(ctx, &storage.StatementCache{
			CompanyID: company.ID,
			Sheet:     string(sheet),
			Payload:   string(payload),
			FetchedAt: time.Now(),
		})
		if cacheErr != nil {
			fmt.Printf("Warning: failed to cache %s statement for %s: %v\n", sheet, symbol, cacheErr)
		}
	}
	return stmt, name, nil
}

func (e *Engine) failRun(ctx context.Context, run *storage.AnalysisRun, cause error) error {
	run.Status = storage.RunFailed
	run.ErrorMessage = cause.Error()
	if err := e.repo.UpdateRun(ctx, run); err != nil {
		fmt.Printf("Warning: failed to mark run %d failed: %v\n", run.ID, err)
	}
	return cause
}
