package mocks

import (
	"context"

	"GameStore/internal/model"

	"github.com/stretchr/testify/mock"
)

// GameStore is a testify mock of services.GameStore.
type GameStore struct {
	mock.Mock
}

func (_m *GameStore) List(ctx context.Context) ([]model.Game, error) {
	ret := _m.Called(ctx)
	var r0 []model.Game
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Game)
	}
	return r0, ret.Error(1)
}

func (_m *GameStore) GetByID(ctx context.Context, id int64) (*model.Game, error) {
	ret := _m.Called(ctx, id)
	var r0 *model.Game
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Game)
	}
	return r0, ret.Error(1)
}

func (_m *GameStore) CreateGame(ctx context.Context, g *model.Game) (int64, error) {
	ret := _m.Called(ctx, g)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *GameStore) UpdateGame(ctx context.Context, g *model.Game) error {
	ret := _m.Called(ctx, g)
	return ret.Error(0)
}

func (_m *GameStore) DeleteGame(ctx context.Context, id int64) (int64, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

// NewGameStore registers a cleanup that asserts the mock's expectations.
func NewGameStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *GameStore {
	m := &GameStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
