package f1000

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dabform/dabform/internal/domain/report"
	"github.com/dabform/dabform/internal/platform/auth"
)

// PDFStamper records that a report was downloaded as PDF.
type PDFStamper interface {
	MarkPDFGenerated(ctx context.Context, id uuid.UUID) error
}

type Handler struct {
	fetch  BundleFetcher
	stamp  PDFStamper
	logger zerolog.Logger
}

func NewHandler(fetch BundleFetcher, stamp PDFStamper, logger zerolog.Logger) *Handler {
	return &Handler{fetch: fetch, stamp: stamp, logger: logger}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/reports", auth.RequireRole(auth.RoleArzt))
	g.GET("/:id/pdf", h.Download)
	g.GET("/:id/pdf/preview", h.Preview)
}

// Download serves the PDF as an attachment and stamps pdf_generiert_am.
func (h *Handler) Download(c echo.Context) error {
	return h.serve(c, "attachment")
}

// Preview serves the PDF inline for display in the browser.
func (h *Handler) Preview(c echo.Context) error {
	return h.serve(c, "inline")
}

func (h *Handler) serve(c echo.Context, disposition string) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	v, err := ParseVariant(c.QueryParam("typ"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	b, err := h.fetch.Fetch(ctx, id)
	switch {
	case errors.Is(err, report.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, report.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case err != nil:
		h.logger.Error().Err(err).Str("report_id", id.String()).Msg("failed to load report for pdf")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load report")
	}

	doc, err := Render(b, v)
	if err != nil {
		h.logger.Error().Err(err).Str("report_id", id.String()).Stringer("variant", v).Msg("pdf rendering failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to render report")
	}

	if disposition == "attachment" && h.stamp != nil {
		if err := h.stamp.MarkPDFGenerated(ctx, id); err != nil {
			h.logger.Warn().Err(err).Str("report_id", id.String()).Msg("failed to stamp pdf_generiert_am")
		}
	}

	name := Filename(b.Patient.Text("nachname"), b.Patient.Text("vorname"), v)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("%s; filename=%q", disposition, name))
	return c.Stream(http.StatusOK, "application/pdf", doc)
}

var filenameReplacer = strings.NewReplacer(
	" ", "_",
	"ä", "ae", "ö", "oe", "ü", "ue",
	"Ä", "Ae", "Ö", "Oe", "Ü", "Ue",
	"ß", "ss",
)

// Filename builds the download name <surname>-<firstname>-dabform[-kk].pdf
// with umlauts transliterated and spaces replaced.
func Filename(surname, firstname string, v Variant) string {
	base := fmt.Sprintf("%s-%s-dabform%s.pdf", strings.TrimSpace(surname), strings.TrimSpace(firstname), v.FilenameSuffix())
	return filenameReplacer.Replace(base)
}
