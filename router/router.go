package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	authCtrl "cropadvisor/pkg/auth/controller"
	cropCtrl "cropadvisor/pkg/crop/controller"
	diagCtrl "cropadvisor/pkg/diagnosis/controller"
	guideCtrl "cropadvisor/pkg/guide/controller"
	"cropadvisor/pkg/middleware"
	recCtrl "cropadvisor/pkg/recommend/controller"
)

type Controllers struct {
	Auth           authCtrl.AuthController
	Recommendation recCtrl.RecommendationController
	Crop           cropCtrl.CropController
	Diagnosis      diagCtrl.DiagnosisController
	Guide          guideCtrl.GuideController
	Health         interface{ Health(echo.Context) error }
}

func New(e *echo.Echo, log *zap.Logger, h Controllers) *echo.Echo {
	e.Use(middleware.RequestID())
	e.Use(middleware.Identity())
	e.Use(middleware.RequestLogger(log))

	e.GET("/health", h.Health.Health)
	e.GET("/whoami", h.Auth.WhoAmI)
	e.GET("/devlogin", h.Auth.DevLogin)

	e.POST("/recommendations", h.Recommendation.Recommend)
	e.GET("/recommendations/history", h.Recommendation.History, middleware.RequireIdentity())

	e.GET("/crops", h.Crop.List)
	e.GET("/crops/:name", h.Crop.Get)
	e.GET("/crops/:name/guides", h.Guide.ForCrop)
	e.POST("/soil/analyze", h.Crop.AnalyzeSoil)

	e.POST("/diagnose", h.Diagnosis.Diagnose)

	e.POST("/guides", h.Guide.IngestText)
	e.POST("/guides/url", h.Guide.IngestURL)
	e.GET("/guides/search", h.Guide.Search)
	return e
}
