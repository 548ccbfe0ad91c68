package services

import (
	"context"
	"errors"
	"testing"

	"GameStore/internal/model"
	"GameStore/internal/services/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenreServiceCreate(t *testing.T) {
	store := mocks.NewGenreStore(t)
	svc := NewGenreService(store, quietLogger())
	store.On("Create", mock.Anything, &model.Genre{Name: "Puzzle"}).Return(int64(6), nil)

	g, err := svc.Create(context.Background(), &model.Genre{Name: "Puzzle"})
	require.NoError(t, err)
	assert.Equal(t, &model.Genre{ID: 6, Name: "Puzzle"}, g)
}

func TestGenreServiceUpdateNotFound(t *testing.T) {
	store := mocks.NewGenreStore(t)
	svc := NewGenreService(store, quietLogger())
	store.On("Update", mock.Anything, mock.Anything).Return(ErrNotFound)

	assert.ErrorIs(t, svc.Update(context.Background(), &model.Genre{ID: 8, Name: "x"}), ErrNotFound)
}

func TestGenreServiceDeletePropagatesError(t *testing.T) {
	store := mocks.NewGenreStore(t)
	svc := NewGenreService(store, quietLogger())
	fk := errors.New("foreign key violation")
	store.On("Delete", mock.Anything, int64(1)).Return(int64(0), fk)

	assert.ErrorIs(t, svc.Delete(context.Background(), 1), fk)
}
