package dto

import (
	"GameStore/internal/model"

	"github.com/shopspring/decimal"
)

type CreateGameDto struct {
	Name        string `json:"name" validate:"required,notblank,max=50"`
	GenreID     int64  `json:"genreId" validate:"required,gt=0"`
	Price       Price  `json:"price" validate:"gte=1,lte=100,decimals=2"`
	ReleaseDate string `json:"releaseDate" validate:"required,datetime=2006-01-02"`
}

type UpdateGameDto struct {
	Name        string `json:"name" validate:"required,notblank,max=50"`
	GenreID     int64  `json:"genreId" validate:"required,gt=0"`
	Price       Price  `json:"price" validate:"gte=1,lte=100,decimals=2"`
	ReleaseDate string `json:"releaseDate" validate:"required,datetime=2006-01-02"`
}

type GameSummaryDto struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Genre       string          `json:"genre"`
	Price       decimal.Decimal `json:"price"`
	ReleaseDate string          `json:"releaseDate"`
}

type GameDetailsDto struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	GenreID     int64           `json:"genreId"`
	Price       decimal.Decimal `json:"price"`
	ReleaseDate string          `json:"releaseDate"`
}

// ToEntity builds a new game. The id is left zero for storage to assign.
func (d CreateGameDto) ToEntity() (*model.Game, error) {
	rd, err := parseDate(d.ReleaseDate)
	if err != nil {
		return nil, err
	}
	return &model.Game{
		Name:        d.Name,
		GenreID:     d.GenreID,
		Price:       d.Price.Decimal,
		ReleaseDate: rd,
	}, nil
}

// ToEntity builds the full replacement record for game id.
func (d UpdateGameDto) ToEntity(id int64) (*model.Game, error) {
	rd, err := parseDate(d.ReleaseDate)
	if err != nil {
		return nil, err
	}
	return &model.Game{
		ID:          id,
		Name:        d.Name,
		GenreID:     d.GenreID,
		Price:       d.Price.Decimal,
		ReleaseDate: rd,
	}, nil
}

// ToGameSummaryDto expects g.Genre to be loaded; a missing genre maps to "".
func ToGameSummaryDto(g model.Game) GameSummaryDto {
	genre := ""
	if g.Genre != nil {
		genre = g.Genre.Name
	}
	return GameSummaryDto{
		ID:          g.ID,
		Name:        g.Name,
		Genre:       genre,
		Price:       g.Price,
		ReleaseDate: formatDate(g.ReleaseDate),
	}
}

func ToGameDetailsDto(g model.Game) GameDetailsDto {
	return GameDetailsDto{
		ID:          g.ID,
		Name:        g.Name,
		GenreID:     g.GenreID,
		Price:       g.Price,
		ReleaseDate: formatDate(g.ReleaseDate),
	}
}
