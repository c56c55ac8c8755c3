// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/lightbnb/internal/handler"
	"github.com/deppfellow/lightbnb/internal/middleware"
)

// New builds the Echo instance: global error handler, middleware chain in
// order, then routes.
//
// Middleware ordering matters: New Relic must run first so a transaction
// exists in context, RequestID before the context enhancer so the logger
// gets the correlation id, and the enhancer before anything that logs.
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	r.Use(m.Tracing.NewRelicMiddleware())
	r.Use(middleware.RequestID())
	r.Use(m.ContextEnhancer.EnhanceContext())
	r.Use(m.Tracing.EnhanceTracing())
	r.Use(m.Global.CORS())
	r.Use(m.Global.Secure())
	r.Use(m.Global.RequestLogger())
	r.Use(m.Global.Recover())

	registerSystemRoutes(r, h)
	registerAPIRoutes(r, h)

	return r
}

// registerAPIRoutes maps the business endpoints under /api.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	api := r.Group("/api")

	// Accounts.
	api.POST("/users", handler.Handle(h.Users.Handler, h.Users.Create, http.StatusCreated))
	api.GET("/users/:id", handler.Handle(h.Users.Handler, h.Users.GetByID, http.StatusOK))

	// Listings.
	api.GET("/properties", handler.Handle(h.Properties.Handler, h.Properties.Search, http.StatusOK))
	api.POST("/properties", handler.Handle(h.Properties.Handler, h.Properties.Create, http.StatusCreated))

	// Reservation history.
	api.GET("/reservations/:guest_id", handler.Handle(h.Reservations.Handler, h.Reservations.ListPast, http.StatusOK))
}
