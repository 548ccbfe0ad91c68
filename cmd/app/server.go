package main

import (
	"GameStore/internal/logger"
	"GameStore/internal/middleware"
	"GameStore/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// newServer builds the echo instance with every route registered.
func newServer(log logrus.FieldLogger, gameSvc *services.GameService, genreSvc *services.GenreService, db pinger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = middleware.NewRequestValidator()
	e.HTTPErrorHandler = middleware.ErrorHandler(logger.Component(log, "http"))

	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(logger.Component(log, "access")))
	e.Use(echomw.Recover())

	registerGameRoutes(e, gameSvc)
	registerGenreRoutes(e, genreSvc)
	registerHealthRoutes(e, db)
	return e
}
