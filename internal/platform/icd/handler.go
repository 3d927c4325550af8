package icd

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

type Handler struct {
	search Searcher
}

func NewHandler(search Searcher) *Handler {
	return &Handler{search: search}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/icd/search", h.Search)
}

func (h *Handler) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if utf8.RuneCountInString(q) < 2 {
		return echo.NewHTTPError(http.StatusBadRequest, "query must have at least 2 characters")
	}

	limit := defaultLimit
	if s := c.QueryParam("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = n
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	codes, err := h.search.Search(c.Request().Context(), q, limit)
	switch {
	case errors.Is(err, ErrNotConfigured):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "icd lookup not configured")
	case err != nil:
		return echo.NewHTTPError(http.StatusBadGateway, "icd lookup failed")
	}
	return c.JSON(http.StatusOK, codes)
}
