package repositories

import (
	"IcebergScore/internal/models"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PriceRepository struct {
	db *gorm.DB
}

// NewPriceRepository creates a new instance of PriceRepository
func NewPriceRepository(db *gorm.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

// GetDailyPrices fetches the last N days of price data for a ticker,
// ordered oldest to newest.
func (r *PriceRepository) GetDailyPrices(ticker string, days int) ([]models.DailyPrice, error) {
	if ticker == "" {
		return nil, errors.New("invalid ticker")
	}

	var prices []models.DailyPrice
	err := r.db.Where("ticker = ?", ticker).
		Order("trade_date DESC").
		Limit(days).
		Find(&prices).Error
	if err != nil {
		return nil, err
	}

	reverse(prices)
	return prices, nil
}

// GetClosingPrices returns closing prices for technical analysis,
// oldest to newest.
func (r *PriceRepository) GetClosingPrices(ticker string, days int) ([]float64, error) {
	prices, err := r.GetDailyPrices(ticker, days)
	if err != nil {
		return nil, err
	}

	closes := make([]float64, len(prices))
	for i, p := range prices {
		closes[i] = p.Close
	}
	return closes, nil
}

// GetLatestPrice gets the most recent price row for a ticker
func (r *PriceRepository) GetLatestPrice(ticker string) (*models.DailyPrice, error) {
	if ticker == "" {
		return nil, errors.New("invalid ticker")
	}

	var price models.DailyPrice
	err := r.db.Where("ticker = ?", ticker).
		Order("trade_date DESC").
		First(&price).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &price, err
}

// GetPreviousClose gets the close before the latest one (for % change display)
func (r *PriceRepository) GetPreviousClose(ticker string) (float64, bool, error) {
	var price models.DailyPrice
	err := r.db.Where("ticker = ?", ticker).
		Order("trade_date DESC").
		Offset(1).
		First(&price).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return price.Close, true, nil
}

// ClosingPricesBefore returns up to limit closes strictly before asOf,
// oldest to newest. The strict inequality is what keeps back-test samples
// free of look-ahead.
func (r *PriceRepository) ClosingPricesBefore(ticker string, asOf time.Time, limit int) ([]float64, error) {
	if ticker == "" {
		return nil, errors.New("invalid ticker")
	}

	var prices []models.DailyPrice
	err := r.db.Where("ticker = ? AND trade_date < ?", ticker, asOf).
		Order("trade_date DESC").
		Limit(limit).
		Find(&prices).Error
	if err != nil {
		return nil, err
	}

	reverse(prices)
	closes := make([]float64, len(prices))
	for i, p := range prices {
		closes[i] = p.Close
	}
	return closes, nil
}

// PriceOnOrBefore returns the close on the given date, or the nearest prior
// trading day (handles weekends and holidays).
func (r *PriceRepository) PriceOnOrBefore(ticker string, date time.Time) (float64, bool, error) {
	var price models.DailyPrice
	err := r.db.Where("ticker = ? AND trade_date <= ?", ticker, date).
		Order("trade_date DESC").
		First(&price).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return price.Close, true, nil
}

// UpsertDailyPrice inserts or updates a price row, keeping a single entry
// per ticker+date.
func (r *PriceRepository) UpsertDailyPrice(price *models.DailyPrice) error {
	if price == nil {
		return errors.New("price cannot be nil")
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ticker"}, {Name: "trade_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"open", "high", "low", "close", "adj_close", "volume", "source", "fetched_at",
		}),
	}).Create(price).Error
}

func reverse(prices []models.DailyPrice) {
	for i, j := 0, len(prices)-1; i < j; i, j = i+1, j-1 {
		prices[i], prices[j] = prices[j], prices[i]
	}
}
