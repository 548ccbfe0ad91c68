package services

import (
	"context"

	"GameStore/internal/model"

	"github.com/sirupsen/logrus"
)

// GameStore is the persistence contract GameService depends on.
type GameStore interface {
	List(ctx context.Context) ([]model.Game, error)
	GetByID(ctx context.Context, id int64) (*model.Game, error)
	CreateGame(ctx context.Context, g *model.Game) (int64, error)
	UpdateGame(ctx context.Context, g *model.Game) error
	DeleteGame(ctx context.Context, id int64) (int64, error)
}

type GameService struct {
	Repo GameStore
	Log  logrus.FieldLogger
}

func NewGameService(r GameStore, log logrus.FieldLogger) *GameService {
	return &GameService{Repo: r, Log: log}
}

// ListGames returns every game with its genre loaded.
func (s *GameService) ListGames(ctx context.Context) ([]model.Game, error) {
	return s.Repo.List(ctx)
}

func (s *GameService) GetGame(ctx context.Context, id int64) (*model.Game, error) {
	return s.Repo.GetByID(ctx, id)
}

// CreateGame persists g and stores the assigned id back on it.
func (s *GameService) CreateGame(ctx context.Context, g *model.Game) (*model.Game, error) {
	id, err := s.Repo.CreateGame(ctx, g)
	if err != nil {
		return nil, err
	}
	g.ID = id
	s.Log.WithFields(logrus.Fields{"game_id": id, "genre_id": g.GenreID}).Info("game created")
	return g, nil
}

// UpdateGame replaces every field of the stored game. It returns ErrNotFound
// when no row has g.ID and never inserts.
func (s *GameService) UpdateGame(ctx context.Context, g *model.Game) error {
	if err := s.Repo.UpdateGame(ctx, g); err != nil {
		return err
	}
	s.Log.WithField("game_id", g.ID).Info("game updated")
	return nil
}

// DeleteGame succeeds whether or not the game exists.
func (s *GameService) DeleteGame(ctx context.Context, id int64) error {
	n, err := s.Repo.DeleteGame(ctx, id)
	if err != nil {
		return err
	}
	s.Log.WithFields(logrus.Fields{"game_id": id, "rows": n}).Info("game deleted")
	return nil
}
