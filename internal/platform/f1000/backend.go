package f1000

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

const fontFamily = "Helvetica"

// boxScale sizes a vector checkbox relative to the font size.
const boxScale = 0.7

// pdfBackend replays page instructions onto a gofpdf document. One
// backend serves exactly one render call.
type pdfBackend struct {
	pdf *gofpdf.Fpdf
	enc *encoding.Encoder
}

func newPDFBackend(created time.Time, author string) *pdfBackend {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(MarginLeft, MarginTop, MarginRight)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(created)
	pdf.SetCatalogSort(true)
	pdf.SetTitle("Durchgangsarztbericht", true)
	pdf.SetCreator("dabform", true)
	if author != "" {
		pdf.SetAuthor(author, true)
	}
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetTextColor(0, 0, 0)
	return &pdfBackend{
		pdf: pdf,
		enc: encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()),
	}
}

func (b *pdfBackend) draw(pages []Page) {
	for _, page := range pages {
		b.pdf.AddPage()
		b.pdf.SetLineWidth(strokeWidth)
		for _, op := range page.Ops {
			switch op.Kind {
			case OpRect:
				b.pdf.Rect(op.X, op.Y, op.W, op.H, "D")
			case OpLine:
				b.pdf.Line(op.X, op.Y, op.X+op.W, op.Y+op.H)
			case OpText:
				b.text(op.X, op.Y, op.Style, op.Text)
			case OpCenteredText:
				b.text(op.X-b.measure(op.Style, op.Text)/2, op.Y, op.Style, op.Text)
			}
		}
	}
}

// run is a stretch of text or a single checkbox glyph.
type run struct {
	text    string
	box     bool
	checked bool
}

func splitRuns(s string) []run {
	var (
		out []run
		buf []rune
	)
	flush := func() {
		if len(buf) > 0 {
			out = append(out, run{text: string(buf)})
			buf = buf[:0]
		}
	}
	for _, r := range s {
		switch string(r) {
		case CheckedBox:
			flush()
			out = append(out, run{box: true, checked: true})
		case UncheckedBox:
			flush()
			out = append(out, run{box: true})
		default:
			buf = append(buf, r)
		}
	}
	flush()
	return out
}

func (b *pdfBackend) setFont(st Style) {
	style := ""
	if st.Bold {
		style = "B"
	}
	b.pdf.SetFont(fontFamily, style, st.Size)
}

func (b *pdfBackend) encode(s string) string {
	out, err := b.enc.String(s)
	if err != nil {
		return s
	}
	return out
}

func boxSide(st Style) float64 {
	return ptToMM(st.Size * boxScale)
}

// measure returns the drawn width of s including vector checkboxes.
func (b *pdfBackend) measure(st Style, s string) float64 {
	b.setFont(st)
	w := 0.0
	for _, r := range splitRuns(s) {
		if r.box {
			w += boxSide(st)
			continue
		}
		w += b.pdf.GetStringWidth(b.encode(r.text))
	}
	return w
}

func (b *pdfBackend) text(x, y float64, st Style, s string) {
	if s == "" {
		return
	}
	b.setFont(st)
	for _, r := range splitRuns(s) {
		if r.box {
			b.checkbox(x, y, boxSide(st), r.checked)
			x += boxSide(st)
			continue
		}
		enc := b.encode(r.text)
		b.pdf.Text(x, y, enc)
		x += b.pdf.GetStringWidth(enc)
	}
}

// checkbox draws a square of side n resting on baseline y, crossed when
// checked.
func (b *pdfBackend) checkbox(x, y, n float64, checked bool) {
	top := y - n
	b.pdf.Rect(x, top, n, n, "D")
	if checked {
		b.pdf.Line(x, top, x+n, y)
		b.pdf.Line(x, y, x+n, top)
	}
}

func (b *pdfBackend) output() (*bytes.Reader, error) {
	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return bytes.NewReader(buf.Bytes()), nil
}
