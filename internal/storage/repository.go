package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Repository provides database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository with the given DSN.
func NewRepository(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&Company{},
		&StatementCache{},
		&EmployeeCount{},
		&AnalysisRun{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{db: db}, nil
}

// DB returns the underlying GORM database instance.
func (r *Repository) DB() *gorm.DB {
	return r.db
}

// Close closes the database connection.
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Company operations

// CreateCompany creates a new company.
func (r *Repository) CreateCompany(ctx context.Context, company *Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

// GetCompanyBySymbol retrieves a company by its symbol.
func (r *Repository) GetCompanyBySymbol(ctx context.Context, symbol string) (*Company, error) {
	var company Company
	err := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &company, err
}

// GetCompanyByID retrieves a company by its ID.
func (r *Repository) GetCompanyByID(ctx context.Context, id uint) (*Company, error) {
	var company Company
	err := r.db.WithContext(ctx).First(&company, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &company, err
}

// GetOrCreateCompany gets or creates a company by symbol.
func (r *Repository) GetOrCreateCompany(ctx context.Context, symbol, name, market string) (*Company, error) {
	company, err := r.GetCompanyBySymbol(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if company != nil {
		// the vendor name can arrive after the first placeholder insert
		if name != "" && company.Name != name {
			company.Name = name
			if err := r.UpdateCompany(ctx, company); err != nil {
				return nil, err
			}
		}
		return company, nil
	}

	company = &Company{
		Symbol: symbol,
		Name:   name,
		Market: market,
	}
	if err := r.CreateCompany(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// ListCompanies lists all companies with optional paging.
func (r *Repository) ListCompanies(ctx context.Context, limit, offset int) ([]Company, error) {
	var companies []Company
	query := r.db.WithContext(ctx)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	err := query.Order("symbol ASC").Find(&companies).Error
	return companies, err
}

// UpdateCompany updates a company.
func (r *Repository) UpdateCompany(ctx context.Context, company *Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

// StatementCache operations

// SaveStatement stores a fetched statement payload.
func (r *Repository) SaveStatement(ctx context.Context, cache *StatementCache) error {
	return r.db.WithContext(ctx).Create(cache).Error
}

// GetLatestStatement retrieves the most recently fetched statement of a sheet
// type for a company, or nil when nothing is cached.
func (r *Repository) GetLatestStatement(ctx context.Context, companyID uint, sheet string) (*StatementCache, error) {
	var cache StatementCache
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND sheet = ?", companyID, sheet).
		Order("fetched_at DESC").
		First(&cache).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cache, err
}

// PruneStatements deletes cached statements older than the given duration.
func (r *Repository) PruneStatements(ctx context.Context, olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)
	return r.db.WithContext(ctx).
		Where("fetched_at < ?", cutoff).
		Delete(&StatementCache{}).Error
}

// EmployeeCount operations

// UpsertEmployeeCount creates or replaces the headcount for a company year.
func (r *Repository) UpsertEmployeeCount(ctx context.Context, ec *EmployeeCount) error {
	var existing EmployeeCount
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND year = ?", ec.CompanyID, ec.Year).
		First(&existing).Error
	if err == nil {
		ec.ID = existing.ID
		ec.CreatedAt = existing.CreatedAt
		return r.db.WithContext(ctx).Save(ec).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.WithContext(ctx).Create(ec).Error
}

// ListEmployeeCounts lists headcounts for a company ordered by year.
func (r *Repository) ListEmployeeCounts(ctx context.Context, companyID uint) ([]EmployeeCount, error) {
	var counts []EmployeeCount
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("year ASC").
		Find(&counts).Error
	return counts, err
}

// EmployeeCountsByYear returns a company's headcounts keyed by year.
func (r *Repository) EmployeeCountsByYear(ctx context.Context, companyID uint) (map[int]int, error) {
	counts, err := r.ListEmployeeCounts(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make(map[int]int, len(counts))
	for _, ec := range counts {
		out[ec.Year] = ec.Count
	}
	return out, nil
}

// AnalysisRun operations

// CreateRun creates a new analysis run.
func (r *Repository) CreateRun(ctx context.Context, run *AnalysisRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

// GetRunByID retrieves an analysis run by ID.
func (r *Repository) GetRunByID(ctx context.Context, id uint) (*AnalysisRun, error) {
	var run AnalysisRun
	err := r.db.WithContext(ctx).Preload("Company").First(&run, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &run, err
}

// ListRuns lists analysis runs, optionally scoped to one company.
func (r *Repository) ListRuns(ctx context.Context, companyID uint, limit int) ([]AnalysisRun, error) {
	var runs []AnalysisRun
	query := r.db.WithContext(ctx).Preload("Company")
	if companyID > 0 {
		query = query.Where("company_id = ?", companyID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Order("created_at DESC").Find(&runs).Error
	return runs, err
}

// UpdateRun updates an analysis run.
func (r *Repository) UpdateRun(ctx context.Context, run *AnalysisRun) error {
	return r.db.WithContext(ctx).Save(run).Error
}
