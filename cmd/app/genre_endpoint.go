package main

import (
	"errors"
	"net/http"

	"GameStore/internal/dto"
	"GameStore/internal/middleware"
	"GameStore/internal/services"

	"github.com/labstack/echo/v4"
)

const getGenreRoute = "genres.get"

func registerGenreRoutes(e *echo.Echo, gs *services.GenreService) {
	g := e.Group("/genres")

	g.GET("", func(c echo.Context) error {
		list, err := gs.List(c.Request().Context())
		if err != nil {
			return err
		}
		resp := make([]dto.GenreDto, 0, len(list))
		for _, genre := range list {
			resp = append(resp, dto.ToGenreDto(genre))
		}
		return c.JSON(http.StatusOK, resp)
	})

	g.GET("/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		genre, err := gs.Get(c.Request().Context(), id)
		if errors.Is(err, services.ErrNotFound) {
			return c.JSON(http.StatusNotFound, middleware.ErrorResponse{Error: "genre not found"})
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, dto.ToGenreDto(*genre))
	}).Name = getGenreRoute

	g.POST("", func(c echo.Context) error {
		req := middleware.Payload[dto.CreateGenreDto](c)
		created, err := gs.Create(c.Request().Context(), req.ToEntity())
		if err != nil {
			return err
		}
		c.Response().Header().Set(echo.HeaderLocation, c.Echo().Reverse(getGenreRoute, created.ID))
		return c.JSON(http.StatusCreated, dto.ToGenreDto(*created))
	}, middleware.ValidateBody[dto.CreateGenreDto]())

	g.PUT("/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		req := middleware.Payload[dto.UpdateGenreDto](c)
		err = gs.Update(c.Request().Context(), req.ToEntity(id))
		if errors.Is(err, services.ErrNotFound) {
			return c.JSON(http.StatusNotFound, middleware.ErrorResponse{Error: "genre not found"})
		}
		if err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}, middleware.ValidateBody[dto.UpdateGenreDto]())

	// a genre still referenced by games fails at the foreign key
	g.DELETE("/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		if err := gs.Delete(c.Request().Context(), id); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
}
