package dto

import (
	"testing"

	"GameStore/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestGenreMapping(t *testing.T) {
	assert.Equal(t, &model.Genre{Name: " Racing "}, CreateGenreDto{Name: " Racing "}.ToEntity())
	assert.Equal(t, &model.Genre{ID: 4, Name: "Racing"}, UpdateGenreDto{Name: "Racing"}.ToEntity(4))
	assert.Equal(t, GenreDto{ID: 4, Name: "Racing"}, ToGenreDto(model.Genre{ID: 4, Name: "Racing"}))
}
