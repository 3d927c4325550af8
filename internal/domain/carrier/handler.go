package carrier

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dabform/dabform/internal/platform/auth"
	"github.com/dabform/dabform/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/carriers", auth.RequireRole(auth.RoleArzt))
	g.GET("", h.ListCarriers)
	g.GET("/:id", h.GetCarrier)
	g.POST("", h.CreateCarrier)
	g.PUT("/:id", h.UpdateCarrier)
	g.DELETE("/:id", h.DeleteCarrier)
}

func (h *Handler) CreateCarrier(c echo.Context) error {
	var cr Carrier
	if err := c.Bind(&cr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateCarrier(c.Request().Context(), &cr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, cr)
}

func (h *Handler) GetCarrier(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	cr, err := h.svc.GetCarrier(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "carrier not found")
	}
	return c.JSON(http.StatusOK, cr)
}

func (h *Handler) ListCarriers(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListCarriers(c.Request().Context(), c.QueryParam("search"), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateCarrier(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var cr Carrier
	if err := c.Bind(&cr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	cr.ID = id
	err = h.svc.UpdateCarrier(c.Request().Context(), &cr)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "carrier not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, cr)
}

func (h *Handler) DeleteCarrier(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if _, err := h.svc.GetCarrier(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "carrier not found")
	}
	if err := h.svc.DeleteCarrier(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
