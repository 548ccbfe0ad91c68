package mocks

import (
	"context"

	"GameStore/internal/model"

	"github.com/stretchr/testify/mock"
)

// GenreStore is a testify mock of services.GenreStore.
type GenreStore struct {
	mock.Mock
}

func (_m *GenreStore) List(ctx context.Context) ([]model.Genre, error) {
	ret := _m.Called(ctx)
	var r0 []model.Genre
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Genre)
	}
	return r0, ret.Error(1)
}

func (_m *GenreStore) GetByID(ctx context.Context, id int64) (*model.Genre, error) {
	ret := _m.Called(ctx, id)
	var r0 *model.Genre
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Genre)
	}
	return r0, ret.Error(1)
}

func (_m *GenreStore) Create(ctx context.Context, g *model.Genre) (int64, error) {
	ret := _m.Called(ctx, g)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *GenreStore) Update(ctx context.Context, g *model.Genre) error {
	ret := _m.Called(ctx, g)
	return ret.Error(0)
}

func (_m *GenreStore) Delete(ctx context.Context, id int64) (int64, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

func NewGenreStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *GenreStore {
	m := &GenreStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
