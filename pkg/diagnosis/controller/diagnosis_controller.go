package controller

import "github.com/labstack/echo/v4"

type DiagnosisController interface {
	Diagnose(c echo.Context) error
}
