package services

import (
	"context"

	"GameStore/internal/model"
	"GameStore/internal/repository"

	"github.com/sirupsen/logrus"
)

// ErrNotFound is reported when the addressed game or genre does not exist.
var ErrNotFound = repository.ErrNotFound

type GenreStore interface {
	List(ctx context.Context) ([]model.Genre, error)
	GetByID(ctx context.Context, id int64) (*model.Genre, error)
	Create(ctx context.Context, g *model.Genre) (int64, error)
	Update(ctx context.Context, g *model.Genre) error
	Delete(ctx context.Context, id int64) (int64, error)
}

type GenreService struct {
	Repo GenreStore
	Log  logrus.FieldLogger
}

func NewGenreService(r GenreStore, log logrus.FieldLogger) *GenreService {
	return &GenreService{Repo: r, Log: log}
}

func (s *GenreService) List(ctx context.Context) ([]model.Genre, error) {
	return s.Repo.List(ctx)
}

func (s *GenreService) Get(ctx context.Context, id int64) (*model.Genre, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *GenreService) Create(ctx context.Context, g *model.Genre) (*model.Genre, error) {
	id, err := s.Repo.Create(ctx, g)
	if err != nil {
		return nil, err
	}
	g.ID = id
	s.Log.WithField("genre_id", id).Info("genre created")
	return g, nil
}

func (s *GenreService) Update(ctx context.Context, g *model.Genre) error {
	if err := s.Repo.Update(ctx, g); err != nil {
		return err
	}
	s.Log.WithField("genre_id", g.ID).Info("genre updated")
	return nil
}

func (s *GenreService) Delete(ctx context.Context, id int64) error {
	n, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.Log.WithFields(logrus.Fields{"genre_id": id, "rows": n}).Info("genre deleted")
	return nil
}
