package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"mkulima/config"
	"mkulima/database"
	"mkulima/router"

	analyticsCtrlImp "mkulima/pkg/analytics/controllerImp"
	analyticsSvcImp "mkulima/pkg/analytics/serviceImp"
	authCtrlImp "mkulima/pkg/auth/controllerImp"
	detectionRepoImp "mkulima/pkg/detection/repositoryImp"
	healthCtrlImp "mkulima/pkg/health/controllerImp"
	kbCtrlImp "mkulima/pkg/kb/controllerImp"
	kbRepoImp "mkulima/pkg/kb/repositoryImp"
	kbSvcImp "mkulima/pkg/kb/serviceImp"
	"mkulima/pkg/middleware"
	plantRepoImp "mkulima/pkg/plant/repositoryImp"
	predictionCtrlImp "mkulima/pkg/prediction/controllerImp"
	"mkulima/pkg/predictor"
	userCtrlImp "mkulima/pkg/user/controllerImp"
	userRepoImp "mkulima/pkg/user/repositoryImp"
)

func main() {
	cfg := config.Load()

	db := database.OpenSQLite(cfg.DBPath)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// repositories
	users := userRepoImp.New(db)
	detections := detectionRepoImp.New(db)
	plants := plantRepoImp.New(db)
	kbRepo := kbRepoImp.New(db)

	// prediction is a deterministic stub until a model runtime lands
	pred := predictor.NewMock()

	// services
	analyticsSvc := analyticsSvcImp.New(detections)
	kbSvc := kbSvcImp.New(kbRepo)

	// controllers
	healthCtrl := healthCtrlImp.New(db, cfg.Environment)
	predictionCtrl := predictionCtrlImp.New(pred, detections, users, plants)
	userCtrl := userCtrlImp.New(users, detections)
	analyticsCtrl := analyticsCtrlImp.New(analyticsSvc)
	authCtrl := authCtrlImp.New(cfg.JWTSecret, users)
	kbCtrl := kbCtrlImp.New(kbSvc, cfg.KBDomains)

	requireToken := middleware.RequireToken(cfg.JWTSecret, users)
	requireAdmin := middleware.RequireAdmin(cfg.JWTSecret, users)

	r := router.New(
		e,
		healthCtrl,
		predictionCtrl,
		userCtrl,
		analyticsCtrl,
		authCtrl,
		kbCtrl,
		requireToken,
		requireAdmin,
	)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
