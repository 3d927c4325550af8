package f1000

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dabform/dabform/internal/domain/report"
)

type stubFetcher struct {
	bundle Bundle
	err    error
}

func (s *stubFetcher) Fetch(_ context.Context, _ uuid.UUID) (Bundle, error) {
	return s.bundle, s.err
}

type stubStamper struct {
	stamped []uuid.UUID
}

func (s *stubStamper) MarkPDFGenerated(_ context.Context, id uuid.UUID) error {
	s.stamped = append(s.stamped, id)
	return nil
}

func pdfRequest(h *Handler, call func(*Handler) echo.HandlerFunc, id, query string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return rec, call(h)(c)
}

func download(h *Handler) echo.HandlerFunc { return h.Download }
func preview(h *Handler) echo.HandlerFunc  { return h.Preview }

func TestDownload(t *testing.T) {
	stamp := &stubStamper{}
	h := NewHandler(&stubFetcher{bundle: muellerBundle()}, stamp, zerolog.Nop())
	id := uuid.New()

	rec, err := pdfRequest(h, download, id.String(), "?typ=kk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	cd := rec.Header().Get(echo.HeaderContentDisposition)
	if !strings.HasPrefix(cd, "attachment") || !strings.Contains(cd, "Mueller-Anna-dabform-kk.pdf") {
		t.Errorf("content disposition = %q", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a pdf")
	}
	if len(stamp.stamped) != 1 || stamp.stamped[0] != id {
		t.Errorf("expected download to be stamped, got %v", stamp.stamped)
	}
}

func TestPreview_InlineNotStamped(t *testing.T) {
	stamp := &stubStamper{}
	h := NewHandler(&stubFetcher{bundle: muellerBundle()}, stamp, zerolog.Nop())

	rec, err := pdfRequest(h, preview, uuid.NewString(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cd := rec.Header().Get(echo.HeaderContentDisposition)
	if !strings.HasPrefix(cd, "inline") || !strings.Contains(cd, "Mueller-Anna-dabform.pdf") {
		t.Errorf("content disposition = %q", cd)
	}
	if len(stamp.stamped) != 0 {
		t.Error("preview must not stamp pdf_generiert_am")
	}
}

func TestDownload_Errors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		id    string
		query string
		want  int
	}{
		{"not found", report.ErrNotFound, uuid.NewString(), "", http.StatusNotFound},
		{"forbidden", report.ErrForbidden, uuid.NewString(), "", http.StatusForbidden},
		{"load failure", errors.New("db down"), uuid.NewString(), "", http.StatusInternalServerError},
		{"bad id", nil, "nope", "", http.StatusBadRequest},
		{"bad variant", nil, uuid.NewString(), "?typ=xy", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubFetcher{bundle: muellerBundle(), err: tt.err}, nil, zerolog.Nop())
			_, err := pdfRequest(h, download, tt.id, tt.query)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected echo.HTTPError, got %T (%v)", err, err)
			}
			if httpErr.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, httpErr.Code)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		surname, firstname string
		v                  Variant
		want               string
	}{
		{"Müller", "Anna", Full, "Mueller-Anna-dabform.pdf"},
		{"Müller", "Anna", Reduced, "Mueller-Anna-dabform-kk.pdf"},
		{"Öztürk Weiß", "Jürgen", Full, "Oeztuerk_Weiss-Juergen-dabform.pdf"},
		{"ÄÜ", "Ölaf", Reduced, "AeUe-Oelaf-dabform-kk.pdf"},
		{"", "", Full, "--dabform.pdf"},
	}
	for _, tt := range tests {
		if got := Filename(tt.surname, tt.firstname, tt.v); got != tt.want {
			t.Errorf("Filename(%q, %q) = %q, want %q", tt.surname, tt.firstname, got, tt.want)
		}
	}
}
