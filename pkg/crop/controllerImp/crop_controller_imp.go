package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"cropadvisor/entities"
	"cropadvisor/pkg/crop/controller"
	"cropadvisor/pkg/crop/service"
)

type cropCtrl struct{ s service.CropService }

func New(s service.CropService) controller.CropController { return &cropCtrl{s} }

func (h *cropCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.s.List())
}

func (h *cropCtrl) Get(c echo.Context) error {
	crop, err := h.s.Details(c.Param("name"))
	if errors.Is(err, entities.ErrCropNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "crop not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, crop)
}

func (h *cropCtrl) AnalyzeSoil(c echo.Context) error {
	var soil entities.SoilObservation
	if err := c.Bind(&soil); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	out, err := h.s.AnalyzeSoil(soil)
	if errors.Is(err, entities.ErrInvalidInput) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
