package main

import (
	"context"
	"sort"
	"sync"

	"GameStore/internal/model"
	"GameStore/internal/repository"
)

// memStore backs both stores with maps so the handlers can be exercised
// end to end without PostgreSQL.
type memStore struct {
	mu          sync.Mutex
	games       map[int64]model.Game
	genres      map[int64]model.Genre
	nextGameID  int64
	nextGenreID int64
}

func newMemStore(genres ...string) *memStore {
	s := &memStore{games: map[int64]model.Game{}, genres: map[int64]model.Genre{}}
	for _, name := range genres {
		s.nextGenreID++
		s.genres[s.nextGenreID] = model.Genre{ID: s.nextGenreID, Name: name}
	}
	return s
}

type memGames struct{ *memStore }

type memGenres struct{ *memStore }

func (s memGames) List(_ context.Context) ([]model.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Game{}
	for _, g := range s.games {
		genre, ok := s.genres[g.GenreID]
		if !ok {
			continue
		}
		g.Genre = &genre
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s memGames) GetByID(_ context.Context, id int64) (*model.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &g, nil
}

func (s memGames) CreateGame(_ context.Context, g *model.Game) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextGameID++
	row := *g
	row.ID = s.nextGameID
	row.Genre = nil
	s.games[row.ID] = row
	return row.ID, nil
}

func (s memGames) UpdateGame(_ context.Context, g *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[g.ID]; !ok {
		return repository.ErrNotFound
	}
	row := *g
	row.Genre = nil
	s.games[g.ID] = row
	return nil
}

func (s memGames) DeleteGame(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return 0, nil
	}
	delete(s.games, id)
	return 1, nil
}

func (s memGenres) List(_ context.Context) ([]model.Genre, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Genre{}
	for _, g := range s.genres {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s memGenres) GetByID(_ context.Context, id int64) (*model.Genre, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.genres[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &g, nil
}

func (s memGenres) Create(_ context.Context, g *model.Genre) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextGenreID++
	s.genres[s.nextGenreID] = model.Genre{ID: s.nextGenreID, Name: g.Name}
	return s.nextGenreID, nil
}

func (s memGenres) Update(_ context.Context, g *model.Genre) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.genres[g.ID]; !ok {
		return repository.ErrNotFound
	}
	s.genres[g.ID] = *g
	return nil
}

func (s memGenres) Delete(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.genres[id]; !ok {
		return 0, nil
	}
	delete(s.genres, id)
	return 1, nil
}

type okPinger struct{ err error }

func (p okPinger) Ping(context.Context) error { return p.err }
