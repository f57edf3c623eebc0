package controller

import "github.com/labstack/echo/v4"

type RecommendationController interface {
	Recommend(c echo.Context) error
	History(c echo.Context) error
}
