package router

import (
	"github.com/labstack/echo/v4"

	"github.com/bloodlink/blood-donation-api/internal/handler"
	"github.com/bloodlink/blood-donation-api/internal/middleware"
	"github.com/bloodlink/blood-donation-api/internal/model"
)

// RegisterRecipient registers recipient-scoped endpoints under /v1.
// All routes require a valid JWT and the RECIPIENT role.  Recipients
// post blood requests, list their own requests and review the donors
// who responded.
func RegisterRecipient(e *echo.Echo, h *handler.RecipientHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleRecipient),
	)
	g.POST("/requests", h.Create)
	g.GET("/my-requests", h.ListMine)
	g.GET("/requests/:id/acceptances", h.ListAcceptances)
}
