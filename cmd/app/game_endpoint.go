package main

import (
	"errors"
	"net/http"

	"GameStore/internal/dto"
	"GameStore/internal/middleware"
	"GameStore/internal/services"

	"github.com/labstack/echo/v4"
)

const getGameRoute = "games.get"

// registerGameRoutes mounts game endpoints:
//
//	GET    /games      -> list summaries
//	GET    /games/:id  -> details
//	POST   /games      -> create
//	PUT    /games/:id  -> full replace
//	DELETE /games/:id  -> delete
func registerGameRoutes(e *echo.Echo, gs *services.GameService) {
	g := e.Group("/games")

	g.GET("", func(c echo.Context) error {
		list, err := gs.ListGames(c.Request().Context())
		if err != nil {
			return err
		}
		resp := make([]dto.GameSummaryDto, 0, len(list))
		for _, game := range list {
			resp = append(resp, dto.ToGameSummaryDto(game))
		}
		return c.JSON(http.StatusOK, resp)
	})

	g.GET("/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		game, err := gs.GetGame(c.Request().Context(), id)
		if errors.Is(err, services.ErrNotFound) {
			return c.JSON(http.StatusNotFound, middleware.ErrorResponse{Error: "game not found"})
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, dto.ToGameDetailsDto(*game))
	}).Name = getGameRoute

	g.POST("", func(c echo.Context) error {
		req := middleware.Payload[dto.CreateGameDto](c)
		game, err := req.ToEntity()
		// ValidateBody already checked the date; this only trips for
		// payloads that bypass it.
		if err != nil {
			return c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: err.Error()})
		}
		created, err := gs.CreateGame(c.Request().Context(), game)
		if err != nil {
			return err
		}
		c.Response().Header().Set(echo.HeaderLocation, c.Echo().Reverse(getGameRoute, created.ID))
		return c.JSON(http.StatusCreated, dto.ToGameDetailsDto(*created))
	}, middleware.ValidateBody[dto.CreateGameDto]())

	g.PUT("/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		req := middleware.Payload[dto.UpdateGameDto](c)
		game, err := req.ToEntity(id)
		// ValidateBody already checked the date; this only trips for
		// payloads that bypass it.
		if err != nil {
			return c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: err.Error()})
		}
		err = gs.UpdateGame(c.Request().Context(), game)
		if errors.Is(err, services.ErrNotFound) {
			return c.JSON(http.StatusNotFound, middleware.ErrorResponse{Error: "game not found"})
		}
		if err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}, middleware.ValidateBody[dto.UpdateGameDto]())

	g.DELETE("/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		if err := gs.DeleteGame(c.Request().Context(), id); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
}
