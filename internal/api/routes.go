// Package api provides the REST API server and the thin web UI.
package api

import (
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/EigenChen/akshare-financial-analysis/internal/analyzer"
	"github.com/EigenChen/akshare-financial-analysis/internal/storage"
	"github.com/EigenChen/akshare-financial-analysis/pkg/config"
)

// Server represents the API server.
type Server struct {
	router *gin.Engine
	engine *analyzer.Engine
	repo   *storage.Repository
	config *config.Config
}

// NewServer creates a new API server.
func NewServer(engine *analyzer.Engine, repo *storage.Repository, cfg *config.Config) *Server {
	s := &Server{
		engine: engine,
		repo:   repo,
		config: cfg,
	}

	s.setupRouter()
	return s
}

// setupRouter sets up the Gin router with all routes.
func (s *Server) setupRouter() {
	if s.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// Enable CORS
	r.Use(corsMiddleware())

	// Serve static files
	r.Static("/static", "./web/static")

	// Set custom template functions
	r.SetFuncMap(template.FuncMap{
		"base": filepath.Base,
	})

	// Load HTML templates
	r.LoadHTMLGlob("web/templates/*")

	// Web routes
	r.GET("/", s.handleDashboard)
	r.GET("/company/:symbol", s.handleCompanyPage)
	r.GET("/upload", s.handleUploadPage)
	r.GET("/compare", s.handleComparePage)

	// API v1 routes
	api := r.Group("/api/v1")
	{
		// Health check
		api.GET("/health", s.handleHealth)

		// Analysis
		api.POST("/analyze", s.handleAnalyze)
		api.GET("/compare", s.handleCompare)

		// Companies
		api.GET("/companies", s.handleListCompanies)
		api.GET("/companies/:symbol", s.handleGetCompany)

		// Raw statements (reshaped for display)
		api.GET("/statements/:symbol", s.handleGetStatement)

		// Export
		api.POST("/export", s.handleExport)
		api.GET("/export/download", s.handleExportDownload)

		// Employee headcounts
		api.GET("/employees/:symbol", s.handleListEmployees)
		api.POST("/employees/csv", s.handleEmployeeCSVUpload)
		api.POST("/employees/upload", s.handleEmployeePDFUpload)
		api.POST("/employees/extract", s.handleEmployeeExtract)
	}

	s.router = r
}

// Router returns the Gin router.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// corsMiddleware adds CORS headers.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
