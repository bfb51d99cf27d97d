// Package main is the entry point for the financial analysis service.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/EigenChen/akshare-financial-analysis/internal/analyzer"
	"github.com/EigenChen/akshare-financial-analysis/internal/api"
	"github.com/EigenChen/akshare-financial-analysis/internal/storage"
	"github.com/EigenChen/akshare-financial-analysis/pkg/config"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	fmt.Println("╔═══════════════════════════════════════════════════════════╗")
	fmt.Println("║                  财务分析 Financial Analysis              ║")
	fmt.Println("║        A-share / HK statement analysis and export         ║")
	fmt.Println("╚═══════════════════════════════════════════════════════════╝")
	fmt.Println()

	// Initialize database
	fmt.Println("→ Connecting to database...")
	repo, err := storage.NewRepository(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()
	fmt.Println("  ✓ Database connected")

	// Initialize analysis engine
	fmt.Println("→ Initializing analysis engine...")
	engine := analyzer.NewEngine(repo, cfg)
	fmt.Println("  ✓ Analysis engine ready")

	// Initialize API server
	fmt.Println("→ Starting API server...")
	server := api.NewServer(engine, repo, cfg)

	// Handle graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		fmt.Println("\n→ Shutting down gracefully...")
		os.Exit(0)
	}()

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("  ✓ Server running at http://localhost%s\n", addr)
	fmt.Println()
	fmt.Println("Press Ctrl+C to stop")
	fmt.Println()

	if err := server.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
