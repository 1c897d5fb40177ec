package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/alwaha/restaurant-backend/internal/logging"
	"github.com/alwaha/restaurant-backend/internal/mykafka"
	"github.com/alwaha/restaurant-backend/internal/validate"
)

// Every endpoint answers with the same envelope:
// {"success": bool, "data"?, "message"?, "errors"?}.

func respondData(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, echo.Map{"success": true, "data": data})
}

func respondMessage(c echo.Context, code int, data interface{}, message string) error {
	return c.JSON(code, echo.Map{"success": true, "data": data, "message": message})
}

func respondError(c echo.Context, code int, message string) error {
	return c.JSON(code, echo.Map{"success": false, "message": message})
}

func respondValidation(c echo.Context, errs validate.Errors) error {
	return c.JSON(http.StatusUnprocessableEntity, echo.Map{"success": false, "errors": errs})
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, err
	}
	return uint(id), nil
}

func itemKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

// requestLang resolves the response language per request, never from
// ambient state: ?lang= wins, then the Accept-Language header.
func requestLang(c echo.Context) string {
	switch c.QueryParam("lang") {
	case "ar":
		return "ar"
	case "en":
		return "en"
	}
	if strings.HasPrefix(c.Request().Header.Get("Accept-Language"), "ar") {
		return "ar"
	}
	return "en"
}

// publish sends a domain event, fire and forget. A nil producer (tests,
// broker disabled) is a no-op.
func publish(c echo.Context, p *mykafka.Producer, topic, key string, event map[string]interface{}) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("kafka_publish_failed", "topic", topic, "error", err)
	}
}
