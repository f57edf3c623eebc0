package controllerImp

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"cropadvisor/entities"
	"cropadvisor/pkg/diagnosis/controller"
	"cropadvisor/pkg/diagnosis/service"
)

// MaxImageBytes bounds uploaded images.
const MaxImageBytes = 10 << 20

type diagnosisCtrl struct {
	s   service.DiagnosisService
	log *zap.Logger
}

func New(s service.DiagnosisService, log *zap.Logger) controller.DiagnosisController {
	return &diagnosisCtrl{s: s, log: log}
}

func (h *diagnosisCtrl) Diagnose(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "image file is required"})
	}
	if fh.Size > MaxImageBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{"error": "image too large"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "cannot read image"})
	}
	defer f.Close()
	img, err := io.ReadAll(io.LimitReader(f, MaxImageBytes+1))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "cannot read image"})
	}
	if len(img) > MaxImageBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{"error": "image too large"})
	}

	d, err := h.s.Diagnose(c.Request().Context(), img, fh.Header.Get("Content-Type"))
	if errors.Is(err, entities.ErrInvalidInput) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		h.log.Error("diagnose", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "diagnosis failed"})
	}
	return c.JSON(http.StatusOK, d)
}
