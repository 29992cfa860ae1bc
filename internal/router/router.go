package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/bloodlink/blood-donation-api/internal/handler"
	"github.com/bloodlink/blood-donation-api/internal/middleware"
	"github.com/bloodlink/blood-donation-api/internal/model"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance: the health check and the localization
// tables.  The cache middleware is applied to the i18n endpoint because
// string tables are identical for every caller; authenticated endpoints
// return per-user data and must not share a response cache.
func RegisterRoutes(e *echo.Echo, cache echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)
	e.GET("/v1/i18n/:lang", handler.I18nTable, cache)
}

// RegisterAuth registers the authentication endpoints and the shared
// /v1/me endpoint.  Unauthenticated operations live under /v1/auth and
// are rate limited to slow down credential guessing; /v1/me requires a
// valid access token with either role.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, limit echo.MiddlewareFunc) {
	g := e.Group("/v1/auth", limit)
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleDonor, model.RoleRecipient),
	)
	auth.GET("/me", a.Me)
}

// RegisterProfile registers the role profile endpoints.  Saving a
// profile is restricted to the matching role; reading works for both.
func RegisterProfile(e *echo.Echo, p *handler.ProfileHandler, jwtSecret string) {
	g := e.Group("/v1", middleware.JWTAuth(jwtSecret))

	g.PUT("/profile/donor", p.PutDonor, middleware.RequireRole(model.RoleDonor))
	g.PUT("/profile/recipient", p.PutRecipient, middleware.RequireRole(model.RoleRecipient))
	g.GET("/profile", p.Get, middleware.RequireRole(model.RoleDonor, model.RoleRecipient))
}
