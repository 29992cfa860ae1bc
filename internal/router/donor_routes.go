package router

import (
	"github.com/labstack/echo/v4"

	"github.com/bloodlink/blood-donation-api/internal/handler"
	"github.com/bloodlink/blood-donation-api/internal/middleware"
	"github.com/bloodlink/blood-donation-api/internal/model"
)

// RegisterDonor registers donor-scoped endpoints under /v1.  All routes
// require a valid JWT and the DONOR role.  Donors browse requests
// matching their blood type and city and accept them.
func RegisterDonor(e *echo.Echo, h *handler.DonorHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleDonor),
	)
	g.GET("/requests/matching", h.ListMatching)
	g.POST("/requests/:id/accept", h.Accept)
}
