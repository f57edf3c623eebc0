package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"cropadvisor/config"
	"cropadvisor/database"
	"cropadvisor/pkg/catalog"
	"cropadvisor/pkg/logging"
	"cropadvisor/pkg/retention"
	"cropadvisor/router"

	// Auth
	authCtrlImp "cropadvisor/pkg/auth/controllerImp"

	// Recommendations
	recCtrlImp "cropadvisor/pkg/recommend/controllerImp"
	recRepoImp "cropadvisor/pkg/recommend/repositoryImp"
	recSvcImp "cropadvisor/pkg/recommend/serviceImp"

	// Crops + soil
	cropCtrlImp "cropadvisor/pkg/crop/controllerImp"
	cropSvcImp "cropadvisor/pkg/crop/serviceImp"

	// Diagnosis
	diagClient "cropadvisor/pkg/diagnosis/client"
	diagCtrlImp "cropadvisor/pkg/diagnosis/controllerImp"
	diagSvcImp "cropadvisor/pkg/diagnosis/serviceImp"

	// Guides
	guideCtrlImp "cropadvisor/pkg/guide/controllerImp"
	guideFetcher "cropadvisor/pkg/guide/fetcher"
	guideRepoImp "cropadvisor/pkg/guide/repositoryImp"
	guideSvcImp "cropadvisor/pkg/guide/serviceImp"

	// Health
	healthCtrlImp "cropadvisor/pkg/health/controllerImp"
)

func main() {
	// 1) Config + logger
	cfg := config.Load()
	log, err := logging.New(cfg.Development(), cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	if !cfg.EnvFile {
		log.Debug("no .env file, using environment only")
	}

	// 2) Crop catalog
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		if cat, err = catalog.Load(cfg.CatalogPath); err != nil {
			log.Fatal("load crop catalog", zap.String("path", cfg.CatalogPath), zap.Error(err))
		}
	}
	log.Info("crop catalog ready", zap.Int("crops", cat.Len()))

	// 3) DB (sqlite) + migrations
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("database", zap.String("path", cfg.DBPath), zap.Error(err))
	}

	// 4) Services
	recSvc := recSvcImp.NewRecommendationService(cat, recRepoImp.New(db), log, cfg.HistoryMaxLimit)

	var classifier diagClient.Classifier
	if cfg.DiagnosisEndpoint != "" {
		classifier = diagClient.NewHosted(cfg.DiagnosisEndpoint, cfg.DiagnosisAPIKey, cfg.DiagnosisTimeout)
	} else {
		log.Info("DIAGNOSIS_ENDPOINT not set, diagnoses use the mock classifier")
	}
	diagSvc := diagSvcImp.NewDiagnosisService(classifier, log)

	guideAllow := guideFetcher.NewAllowList(cfg.GuideAllowedDomains)
	guideSvc := guideSvcImp.New(
		guideRepoImp.New(db),
		cat,
		guideFetcher.New(cfg.GuideMaxBytes, 20*time.Second, guideAllow),
		guideAllow,
	)

	// 5) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	r := router.New(e, log, router.Controllers{
		Auth:           authCtrlImp.NewAuthController(),
		Recommendation: recCtrlImp.New(recSvc, log),
		Crop:           cropCtrlImp.New(cropSvcImp.NewCropService(cat)),
		Diagnosis:      diagCtrlImp.New(diagSvc, log),
		Guide:          guideCtrlImp.New(guideSvc, log),
		Health:         healthCtrlImp.NewHealthCtrl(db, cat),
	})

	// 6) History retention
	var job *retention.Job
	if cfg.HistoryRetentionDays > 0 {
		maxAge := time.Duration(cfg.HistoryRetentionDays) * 24 * time.Hour
		if job, err = retention.New(cfg.HistoryPruneSchedule, maxAge, recSvc, log); err != nil {
			log.Fatal("history retention", zap.Error(err))
		}
		job.Start()
	}

	// 7) Start
	go func() {
		log.Info("listening", zap.String("port", cfg.Port))
		if err := r.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if job != nil {
		job.Stop(ctx)
	}
	if err := r.Shutdown(ctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}
