package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultMarketDataURL = "https://finnhub.io/api/v1"

func Load() (*config, error) {
	// A missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	return &config{
		MarketData: MarketDataConfig{
			APIKey:  os.Getenv("FINNHUB_API_KEY"),
			BaseURL: getBaseURL(),
		},
		Database: DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     EnvtoInt(os.Getenv("DB_PORT")),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   os.Getenv("DB_NAME"),
		},
		Watchlist: getWatchlist(),
	}, nil
}

// helper env(string) to int
func EnvtoInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

// helper to get watchlist tickers
func getWatchlist() []string {
	tickers := os.Getenv("WATCHLIST")
	if tickers == "" {
		return []string{"AAPL", "MSFT", "NVDA"} // Default tickers if none specified
	}
	return strings.Split(tickers, ",")
}

func getBaseURL() string {
	url := os.Getenv("FINNHUB_BASE_URL")
	if url == "" {
		return defaultMarketDataURL
	}
	return url
}
