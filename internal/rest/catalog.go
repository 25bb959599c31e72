package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"

	"tneaCompass/domain"
	"tneaCompass/pkg/logger"
)

type CatalogService interface {
	Options(ctx context.Context) (domain.CatalogOptions, error)
	OfferingCount(ctx context.Context) (int, error)
}

// AppInfo is the build identity reported by the health endpoint.
type AppInfo struct {
	Name        string
	Version     string
	Environment string
}

type CatalogHandler struct {
	catalogService CatalogService
	app            AppInfo
	timeout        time.Duration
}

func NewCatalogHandler(catalogService CatalogService, app AppInfo) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		app:            app,
		timeout:        10 * time.Second,
	}
}

func (h *CatalogHandler) Options(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	options, err := h.catalogService.Options(ctx)
	if err != nil {
		logger.Error("Failed to build catalog options", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(options))
}

func (h *CatalogHandler) DefaultWeights(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(domain.DefaultWeights()))
}

func (h *CatalogHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	count, err := h.catalogService.OfferingCount(ctx)
	if err != nil {
		logger.Error("Failed to count offerings", err)
		return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"service":     h.app.Name,
		"version":     h.app.Version,
		"environment": h.app.Environment,
		"offerings":   count,
	})
}
