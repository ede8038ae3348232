package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	healthCtrl interface {
		Root(echo.Context) error
		Health(echo.Context) error
	},
	predictionCtrl interface {
		Predict(echo.Context) error
		Plants(echo.Context) error
		GetDetection(echo.Context) error
	},
	userCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		ListDetections(echo.Context) error
		Stats(echo.Context) error
		Delete(echo.Context) error
	},
	analyticsCtrl interface {
		Overview(echo.Context) error
		DiseaseTrends(echo.Context) error
		RegionalInsights(echo.Context) error
		Platform(echo.Context) error
		Export(echo.Context) error
	},
	authCtrl interface {
		IssueToken(echo.Context) error
		WhoAmI(echo.Context) error
	},
	kbCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
	},
	requireToken echo.MiddlewareFunc,
	requireAdmin echo.MiddlewareFunc,
) *echo.Echo {
	e.GET("/", healthCtrl.Root)

	api := e.Group("/api/v1")
	api.GET("/health", healthCtrl.Health)

	api.POST("/predict", predictionCtrl.Predict)
	api.GET("/plants", predictionCtrl.Plants)
	api.GET("/detections/:detection_id", predictionCtrl.GetDetection)

	api.POST("/users", userCtrl.Create)
	api.GET("/users/:user_id", userCtrl.Get)
	api.GET("/users/:user_id/detections", userCtrl.ListDetections)
	api.GET("/users/:user_id/stats", userCtrl.Stats)
	api.DELETE("/users/:user_id", userCtrl.Delete, requireAdmin)

	api.GET("/analytics/overview", analyticsCtrl.Overview)
	api.GET("/analytics/disease-trends", analyticsCtrl.DiseaseTrends)
	api.GET("/analytics/regional-insights", analyticsCtrl.RegionalInsights)
	api.GET("/analytics/platform", analyticsCtrl.Platform)
	api.GET("/analytics/export", analyticsCtrl.Export, requireAdmin)

	api.POST("/auth/token", authCtrl.IssueToken)
	api.GET("/auth/whoami", authCtrl.WhoAmI, requireToken)

	api.POST("/kb/ingest", kbCtrl.IngestText, requireAdmin)
	api.POST("/kb/ingest/url", kbCtrl.IngestURL, requireAdmin)
	api.GET("/kb/search", kbCtrl.Search)

	return e
}
