package dto

import "GameStore/internal/model"

type CreateGenreDto struct {
	Name string `json:"name" validate:"required,notblank,max=50"`
}

type UpdateGenreDto struct {
	Name string `json:"name" validate:"required,notblank,max=50"`
}

type GenreDto struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (d CreateGenreDto) ToEntity() *model.Genre {
	return &model.Genre{Name: d.Name}
}

func (d UpdateGenreDto) ToEntity(id int64) *model.Genre {
	return &model.Genre{ID: id, Name: d.Name}
}

func ToGenreDto(g model.Genre) GenreDto {
	return GenreDto{ID: g.ID, Name: g.Name}
}
