// Package storage provides database models and repository functions.
package storage

import (
	"time"

	"gorm.io/gorm"
)

// RunStatus represents the lifecycle state of an analysis run.
type RunStatus string

const (
	RunPending   RunStatus = "pending"
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

// EmployeeSource records how a headcount figure was obtained.
type EmployeeSource string

const (
	EmployeeSourceCSV EmployeeSource = "csv_upload"
	EmployeeSourcePDF EmployeeSource = "pdf_extract"
)

// Company represents a listed company under analysis.
type Company struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Symbol    string         `gorm:"uniqueIndex;size:20;not null" json:"symbol"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Market    string         `gorm:"size:10;not null" json:"market"` // A or HK
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Statements     []StatementCache `gorm:"foreignKey:CompanyID" json:"statements,omitempty"`
	EmployeeCounts []EmployeeCount  `gorm:"foreignKey:CompanyID" json:"employee_counts,omitempty"`
	Runs           []AnalysisRun    `gorm:"foreignKey:CompanyID" json:"runs,omitempty"`
}

// StatementCache holds one fetched financial statement as JSON so repeat
// analyses don't hit the vendor API again.
type StatementCache struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CompanyID uint           `gorm:"index;not null" json:"company_id"`
	Sheet     string         `gorm:"size:20;not null;index" json:"sheet"` // balance, income, cashflow
	Payload   string         `gorm:"type:text" json:"payload"`
	FetchedAt time.Time      `gorm:"index" json:"fetched_at"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// EmployeeCount is a per-year headcount figure for a company.
type EmployeeCount struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	CompanyID  uint           `gorm:"uniqueIndex:idx_company_year;not null" json:"company_id"`
	Year       int            `gorm:"uniqueIndex:idx_company_year;not null" json:"year"`
	Count      int            `gorm:"not null" json:"count"`
	Source     EmployeeSource `gorm:"size:20" json:"source"`
	Confidence float64        `json:"confidence"` // 0 to 1, only for pdf_extract
	ReportPath string         `gorm:"size:500" json:"report_path,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// AnalysisRun tracks one end-to-end analysis with its export artifacts.
type AnalysisRun struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CompanyID    uint           `gorm:"index;not null" json:"company_id"`
	StartYear    int            `json:"start_year"`
	EndYear      int            `json:"end_year"`
	Status       RunStatus      `gorm:"size:20;not null" json:"status"`
	ErrorMessage string         `gorm:"type:text" json:"error_message,omitempty"`
	ExcelPath    string         `gorm:"size:500" json:"excel_path,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Company Company `gorm:"foreignKey:CompanyID" json:"company"`
}
