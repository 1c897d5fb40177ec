package handlers

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/alwaha/restaurant-backend/internal/service/search"
	"github.com/alwaha/restaurant-backend/internal/util"
)

type SearchHandler struct {
	ES    *elasticsearch.Client
	Index string
}

func (h *SearchHandler) SearchMenu(c echo.Context) error {
	if h.ES == nil {
		return respondError(c, http.StatusServiceUnavailable, "search is unavailable")
	}

	q := c.QueryParam("q")
	if q == "" {
		return respondError(c, http.StatusBadRequest, "the q parameter is required")
	}

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), 10)
	from, size := util.Calculate(page, size)

	total, items, err := search.Search(c.Request().Context(), h.ES, h.Index, q, from, size)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "internal error")
	}

	return respondData(c, http.StatusOK, echo.Map{
		"total": total,
		"items": localizeAll(items, requestLang(c)),
	})
}
