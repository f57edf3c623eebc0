package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"cropadvisor/entities"
	"cropadvisor/pkg/recommend/controller"
	"cropadvisor/pkg/recommend/service"
)

type recommendationCtrl struct {
	s   service.RecommendationService
	log *zap.Logger
}

func New(s service.RecommendationService, log *zap.Logger) controller.RecommendationController {
	return &recommendationCtrl{s: s, log: log}
}

type recommendReq struct {
	entities.FarmConditions
	Limit int `json:"limit"`
}

func (h *recommendationCtrl) Recommend(c echo.Context) error {
	var req recommendReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	uid, _ := c.Get("uid").(string)
	out, err := h.s.Recommend(c.Request().Context(), uid, req.FarmConditions, req.Limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *recommendationCtrl) History(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
		}
		limit = n
	}
	recs, err := h.s.History(c.Request().Context(), uid, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *recommendationCtrl) fail(c echo.Context, err error) error {
	if errors.Is(err, entities.ErrInvalidInput) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	h.log.Error("recommendation request", zap.String("path", c.Path()), zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
}
