package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"cropadvisor/entities"
	"cropadvisor/pkg/guide/controller"
	"cropadvisor/pkg/guide/service"
)

type GuideCtrl struct {
	s   service.GuideService
	log *zap.Logger
}

var _ controller.GuideController = (*GuideCtrl)(nil)

func New(s service.GuideService, log *zap.Logger) *GuideCtrl { return &GuideCtrl{s: s, log: log} }

func (h *GuideCtrl) IngestText(c echo.Context) error {
	var req service.IngestInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	g, err := h.s.Ingest(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, g)
}

func (h *GuideCtrl) IngestURL(c echo.Context) error {
	var body struct {
		URL   string `json:"url"`
		Crop  string `json:"crop"`
		Title string `json:"title"`
	}
	if err := c.Bind(&body); err != nil || body.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url required"})
	}
	g, err := h.s.IngestURL(c.Request().Context(), body.URL, body.Crop, body.Title)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, g)
}

func (h *GuideCtrl) Search(c echo.Context) error {
	k, _ := strconv.Atoi(c.QueryParam("k"))
	hits, err := h.s.Search(c.Request().Context(), c.QueryParam("q"), k)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, hits)
}

func (h *GuideCtrl) ForCrop(c echo.Context) error {
	gs, err := h.s.ForCrop(c.Request().Context(), c.Param("name"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, gs)
}

func (h *GuideCtrl) fail(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, entities.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, entities.ErrCropNotFound):
		status = http.StatusNotFound
	case errors.Is(err, entities.ErrDomainBlocked):
		status = http.StatusForbidden
	case errors.Is(err, entities.ErrUpstream):
		status = http.StatusBadGateway
	default:
		h.log.Error("guide request", zap.String("path", c.Path()), zap.Error(err))
		return c.JSON(status, map[string]string{"error": "internal error"})
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}
