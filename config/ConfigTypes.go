package config

type config struct {
	MarketData MarketDataConfig
	Database   DatabaseConfig
	Watchlist  []string
}

type MarketDataConfig struct {
	APIKey  string
	BaseURL string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}
