package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Game is a persisted game row. Genre is only populated by queries that
// join the genres table.
type Game struct {
	ID          int64
	Name        string
	GenreID     int64
	Genre       *Genre
	Price       decimal.Decimal
	ReleaseDate time.Time
}
