package handler

import (
	"log/slog"
	"net/http"

	"belleza/internal/delivery/http/response"
	"belleza/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StatsHandler holds dependencies for the admin statistics handler.
type StatsHandler struct {
	uc     usecase.StatsUsecase
	logger *slog.Logger
}

// NewStatsHandler is the constructor for StatsHandler, injected by Fx.
func NewStatsHandler(uc usecase.StatsUsecase, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		uc:     uc,
		logger: logger,
	}
}

// AdminStats handles GET /admin-stats. Admin-gated at the route.
func (h *StatsHandler) AdminStats(c echo.Context) error {
	stats, err := h.uc.AdminStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"users":          stats.Users,
		"serviceData":    stats.ServiceData,
		"orders":         stats.Orders,
		"revenue":        stats.Revenue,
		"paymentHistory": stats.PaymentHistory,
	}, "Stats retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
