package repository

import (
	"context"
	"errors"
	"fmt"

	"GameStore/internal/model"

	"github.com/jackc/pgx/v5"
)

type GenreRepository struct {
	DB DBTX
}

func NewGenreRepository(db DBTX) *GenreRepository {
	return &GenreRepository{DB: db}
}

func (r *GenreRepository) List(ctx context.Context) ([]model.Genre, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, name FROM genres ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	defer rows.Close()

	out := []model.Genre{}
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return out, nil
}

func (r *GenreRepository) GetByID(ctx context.Context, id int64) (*model.Genre, error) {
	var g model.Genre
	query := `SELECT id, name FROM genres WHERE id=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&g.ID, &g.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get genre %d: %w", id, err)
	}
	return &g, nil
}

func (r *GenreRepository) Create(ctx context.Context, g *model.Genre) (int64, error) {
	var id int64
	query := `INSERT INTO genres (name) VALUES ($1) RETURNING id`
	if err := r.DB.QueryRow(ctx, query, g.Name).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert genre: %w", err)
	}
	return id, nil
}

func (r *GenreRepository) Update(ctx context.Context, g *model.Genre) error {
	tag, err := r.DB.Exec(ctx, `UPDATE genres SET name=$1 WHERE id=$2`, g.Name, g.ID)
	if err != nil {
		return fmt.Errorf("update genre %d: %w", g.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete fails with a foreign key violation while games still reference
// the genre.
func (r *GenreRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.DB.Exec(ctx, `DELETE FROM genres WHERE id=$1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete genre %d: %w", id, err)
	}
	return tag.RowsAffected(), nil
}
