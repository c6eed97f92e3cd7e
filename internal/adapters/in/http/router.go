package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const (
	paramOrderStateID       = "orderStateId"
	paramOrderReturnStateID = "orderReturnStateId"

	routeListing                = "/order-states"
	routeFilter                 = "/order-states/filter"
	routeOrderStateCreate       = "/order-states/new"
	routeOrderStateEdit         = "/order-states/:" + paramOrderStateID + "/edit"
	routeToggleDelivery         = "/order-states/:" + paramOrderStateID + "/toggle-delivery"
	routeToggleInvoice          = "/order-states/:" + paramOrderStateID + "/toggle-invoice"
	routeToggleSendEmail        = "/order-states/:" + paramOrderStateID + "/toggle-send-email"
	routeOrderReturnStateCreate = "/order-return-states/new"
	routeOrderReturnStateEdit   = "/order-return-states/:" + paramOrderReturnStateID + "/edit"
)

func listingURL(query string) string {
	if query == "" {
		return routeListing
	}
	return routeListing + "?" + query
}

func orderStateEditURL(id string) string {
	return "/order-states/" + id + "/edit"
}

func orderStateToggleURL(id, action string) string {
	return "/order-states/" + id + "/" + action
}

func orderReturnStateEditURL(id string) string {
	return "/order-return-states/" + id + "/edit"
}

// NewEcho builds the echo instance serving s: middleware, renderer and every route.
func NewEcho(s *Server, renderer echo.Renderer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.Renderer = renderer
	e.HTTPErrorHandler = s.errorHandler(e)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			s.Logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	e.Use(s.Metrics.Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(s.Metrics.Handler()))

	g := e.Group("", identify(s.Languages.Default.IsoCode(), s.Languages.All))

	g.GET(routeListing, s.Index, require(CapRead))
	g.POST(routeFilter, s.SearchGrid, require(CapRead))

	g.Match([]string{http.MethodGet, http.MethodPost}, routeOrderStateCreate, s.CreateOrderState, require(CapCreate))
	g.Match([]string{http.MethodGet, http.MethodPost}, routeOrderStateEdit, s.EditOrderState, require(CapUpdate))
	g.Match([]string{http.MethodGet, http.MethodPost}, routeOrderReturnStateCreate, s.CreateOrderReturnState, require(CapCreate))
	g.Match([]string{http.MethodGet, http.MethodPost}, routeOrderReturnStateEdit, s.EditOrderReturnState, require(CapUpdate))

	g.POST(routeToggleDelivery, s.ToggleDelivery, s.requireOrRedirect(CapUpdate))
	g.POST(routeToggleInvoice, s.ToggleInvoice, s.requireOrRedirect(CapUpdate))
	g.POST(routeToggleSendEmail, s.ToggleSendEmail, s.requireOrRedirect(CapUpdate))

	return e
}
