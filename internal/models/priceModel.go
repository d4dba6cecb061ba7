package models

import (
	"time"
)

// DailyPrice is one end-of-day OHLCV row for a ticker.
type DailyPrice struct {
	ID        uint      `gorm:"primaryKey"`
	Ticker    string    `gorm:"uniqueIndex:idx_ticker_date;not null"`
	TradeDate time.Time `gorm:"uniqueIndex:idx_ticker_date;not null"`
	Open      float64   `gorm:"type:decimal(20,4)"`
	High      float64   `gorm:"type:decimal(20,4)"`
	Low       float64   `gorm:"type:decimal(20,4)"`
	Close     float64   `gorm:"type:decimal(20,4)"`
	AdjClose  *float64  `gorm:"type:decimal(20,4)"`
	Volume    int64
	Currency  string `gorm:"default:USD"`
	Source    string
	FetchedAt time.Time
}

// TableName sets the table name for DailyPrice model
func (DailyPrice) TableName() string {
	return "prices_daily"
}
