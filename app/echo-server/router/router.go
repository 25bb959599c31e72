package router

import (
	"tneaCompass/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendHandler) {
	reco := api.Group("/recommendations")

	reco.POST("", handler.Recommend)
}

func SetupCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler) {
	api.GET("/options", handler.Options)
	api.GET("/weights/default", handler.DefaultWeights)
	api.GET("/health", handler.Health)
}
