package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloodlink/blood-donation-api/internal/i18n"
)

// I18nTable serves the full UI string table for a language so the
// front-end does not ship its own copy. Unknown languages are 404.
func I18nTable(c echo.Context) error {
	lang := c.Param("lang")
	if !i18n.Supported(lang) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown language"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"lang":    lang,
		"strings": i18n.Table(lang),
	})
}
