package repository

import (
	"context"
	"errors"
	"fmt"

	"GameStore/internal/model"

	"github.com/jackc/pgx/v5"
)

type GameRepository struct {
	DB DBTX
}

func NewGameRepository(db DBTX) *GameRepository {
	return &GameRepository{DB: db}
}

// List returns every game joined with its genre, ordered by id.
func (r *GameRepository) List(ctx context.Context) ([]model.Game, error) {
	query := `
		SELECT g.id, g.name, g.genre_id, ge.name, g.price, g.release_date
		FROM games g
		JOIN genres ge ON ge.id = g.genre_id
		ORDER BY g.id
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	list := []model.Game{}
	for rows.Next() {
		g := model.Game{Genre: &model.Genre{}}
		if err := rows.Scan(&g.ID, &g.Name, &g.GenreID, &g.Genre.Name, &g.Price, &g.ReleaseDate); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		g.Genre.ID = g.GenreID
		list = append(list, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return list, nil
}

func (r *GameRepository) GetByID(ctx context.Context, id int64) (*model.Game, error) {
	var g model.Game
	query := `SELECT id, name, genre_id, price, release_date FROM games WHERE id=$1`
	if err := r.DB.
		QueryRow(ctx, query, id).
		Scan(&g.ID, &g.Name, &g.GenreID, &g.Price, &g.ReleaseDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get game %d: %w", id, err)
	}
	return &g, nil
}

// CreateGame inserts g and returns the id assigned by storage.
func (r *GameRepository) CreateGame(ctx context.Context, g *model.Game) (int64, error) {
	var id int64
	query := `INSERT INTO games (name, genre_id, price, release_date) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.DB.QueryRow(ctx, query, g.Name, g.GenreID, g.Price, g.ReleaseDate).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert game: %w", err)
	}
	return id, nil
}

// UpdateGame overwrites every column of the row with g's values.
func (r *GameRepository) UpdateGame(ctx context.Context, g *model.Game) error {
	query := `UPDATE games SET name=$1, genre_id=$2, price=$3, release_date=$4 WHERE id=$5`
	tag, err := r.DB.Exec(ctx, query, g.Name, g.GenreID, g.Price, g.ReleaseDate, g.ID)
	if err != nil {
		return fmt.Errorf("update game %d: %w", g.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteGame removes any row with the id and reports how many went away.
func (r *GameRepository) DeleteGame(ctx context.Context, id int64) (int64, error) {
	tag, err := r.DB.Exec(ctx, `DELETE FROM games WHERE id=$1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete game %d: %w", id, err)
	}
	return tag.RowsAffected(), nil
}
