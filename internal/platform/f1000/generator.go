package f1000

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// Layout builds the draw instructions of both pages without touching a
// PDF backend.
func Layout(b Bundle, v Variant) []Page {
	l := layout{b: b, v: v, st: DefaultStyles()}
	return []Page{l.page1(), l.page2()}
}

// Render lays out the bundle and writes it as a two-page A4 PDF. The
// reader is positioned at the start of the document. Output is
// deterministic for a given bundle and variant.
func Render(b Bundle, v Variant) (*bytes.Reader, error) {
	backend := newPDFBackend(documentDate(b.Report), clinicianName(b.Clinician))
	backend.draw(Layout(b, v))
	if err := backend.pdf.Error(); err != nil {
		return nil, fmt.Errorf("rendering F1000 (%s): %w", v, err)
	}
	return backend.output()
}

// GenerateFull renders the accident insurance carrier copy.
func GenerateFull(b Bundle) (*bytes.Reader, error) {
	return Render(b, Full)
}

// GenerateReduced renders the health insurer copy.
func GenerateReduced(b Bundle) (*bytes.Reader, error) {
	return Render(b, Reduced)
}

// documentDate is stamped as the PDF creation date so identical input
// yields identical bytes. It reads erstellt_am the same way the signature
// date box does.
func documentDate(report Record) time.Time {
	if t, ok := parseISODate(report.Text("erstellt_am")); ok {
		return t
	}
	return time.Unix(0, 0).UTC()
}

func clinicianName(c Record) string {
	if c == nil {
		return ""
	}
	return strings.TrimSpace(strings.Join([]string{c.Text("titel"), c.Text("vorname"), c.Text("nachname")}, " "))
}
