package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"IcebergScore/config"
	"IcebergScore/internal/models"
	"IcebergScore/internal/operations/backtest"
	"IcebergScore/internal/operations/price"
	"IcebergScore/internal/repositories"
	"IcebergScore/internal/services/scoring"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: iceberg TICKER [MONTHS]")
		fmt.Println("  TICKER  stock symbol to score (e.g. AAPL)")
		fmt.Println("  MONTHS  backtest window in months (default 6)")
		os.Exit(1)
	}

	ticker := strings.ToUpper(os.Args[1])
	months := 6
	if len(os.Args) >= 3 {
		m, err := strconv.Atoi(os.Args[2])
		if err != nil || m < 1 {
			log.Fatal("MONTHS must be a positive integer")
		}
		months = m
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Setup database
	db := setupDatabase(cfg.Database)

	// Initialize repository
	priceRepo := repositories.NewPriceRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// Refresh price history when an API key is configured; otherwise score
	// whatever the store already holds.
	if cfg.MarketData.APIKey != "" {
		fetcher := price.NewFetcher(cfg.MarketData)
		recorder := price.NewRecorder(fetcher, priceRepo, withTicker(cfg.Watchlist, ticker))
		if err := recorder.Refresh(ctx, 365+90); err != nil {
			log.Printf("Price refresh incomplete: %v", err)
		}
	} else {
		log.Println("FINNHUB_API_KEY not set, using stored prices only")
	}

	printCurrentScores(priceRepo, ticker)
	runBacktest(priceRepo, ticker, months)
}

func printCurrentScores(priceRepo *repositories.PriceRepository, ticker string) {
	closes, err := priceRepo.GetClosingPrices(ticker, 365)
	if err != nil {
		log.Fatal("Failed to load closing prices:", err)
	}
	if len(closes) == 0 {
		log.Fatalf("No price history for %s", ticker)
	}

	scorer := scoring.NewScorer()
	trade, investment := scorer.Score(closes)

	tradeScore := trade.DisplayScore()
	investScore := investment.DisplayScore()

	fmt.Println("=====================================")
	fmt.Printf("ICEBERG SCORE: %s\n", ticker)
	fmt.Printf("Close: %.2f (%d days of history)\n", closes[len(closes)-1], len(closes))
	if prev, ok, err := priceRepo.GetPreviousClose(ticker); err == nil && ok && prev != 0 {
		change := (closes[len(closes)-1] - prev) / prev * 100
		fmt.Printf("Change: %+.2f%%\n", change)
	}
	fmt.Println("=====================================")

	fmt.Printf("\nTrade      %3d  %s  %s\n",
		tradeScore, scoring.ScoreBar(tradeScore, 20), scoring.RatingLabel(tradeScore, true))
	fmt.Printf("Investment %3d  %s  %s\n",
		investScore, scoring.ScoreBar(investScore, 20), scoring.RatingLabel(investScore, false))

	if trade.TurnaroundActive || investment.TurnaroundActive {
		fmt.Println("\nTurnaround setup active: capitulation detected below the 50-day average.")
		fmt.Printf("Business-as-usual scores: trade %d, investment %d\n",
			trade.BAUScore, investment.BAUScore)
	}
}

func runBacktest(priceRepo *repositories.PriceRepository, ticker string, months int) {
	backtestConfig := backtest.NewConfig()
	backtestConfig.EndDate = time.Now().Truncate(24 * time.Hour)
	backtestConfig.StartDate = backtestConfig.EndDate.AddDate(0, -months, 0)

	engine := backtest.NewEngine(priceRepo, backtestConfig)
	results, err := engine.Run(ticker)
	if err != nil {
		log.Fatal("Backtest failed:", err)
	}

	fmt.Println()
	backtest.PrintReport(ticker, results, backtestConfig.StartDate, backtestConfig.EndDate)
}

// withTicker keeps the configured watchlist fresh alongside the
// requested symbol.
func withTicker(watchlist []string, ticker string) []string {
	for _, t := range watchlist {
		if strings.ToUpper(strings.TrimSpace(t)) == ticker {
			return watchlist
		}
	}
	return append([]string{ticker}, watchlist...)
}

func setupDatabase(dbConfig config.DatabaseConfig) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		dbConfig.Host,
		dbConfig.Port,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto migrate database schemas
	if err := db.AutoMigrate(&models.DailyPrice{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	return db
}
