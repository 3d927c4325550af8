package f1000

// OpKind selects how the backend draws an Op.
type OpKind int

const (
	OpText OpKind = iota
	OpCenteredText
	OpRect
	OpLine
)

func (k OpKind) String() string {
	switch k {
	case OpText:
		return "text"
	case OpCenteredText:
		return "centered"
	case OpRect:
		return "rect"
	case OpLine:
		return "line"
	default:
		return "unknown"
	}
}

// Op is one absolutely positioned draw instruction. Coordinates are in
// millimetres from the top-left page corner.
//
//   - text: (X, Y) is the start of the baseline
//   - centered: X is the horizontal centre of the baseline
//   - rect: (X, Y) is the top-left corner, W×H the size
//   - line: from (X, Y) to (X+W, Y+H)
type Op struct {
	Kind OpKind
	// Section is the form block the op belongs to: "header", "patient",
	// "1" … "16", "aside" (hand/supplement/ISS block), "signature",
	// "continuation", "notice", "distribution".
	Section string
	// Region names the data a value op is bound to, e.g.
	// "patient.nachname". Empty for captions and rules.
	Region string
	X, Y   float64
	W, H   float64
	Style  Style
	Text   string
}

// Page is the ordered instruction list of one page.
type Page struct {
	Number int
	Ops    []Op
}

// Value returns the text bound to region and whether the region was
// emitted on the page.
func (p Page) Value(region string) (string, bool) {
	for _, op := range p.Ops {
		if op.Region == region {
			return op.Text, true
		}
	}
	return "", false
}

// Values returns every text bound to region, in drawing order. Wrapped
// free text yields one entry per rendered line.
func (p Page) Values(region string) []string {
	var out []string
	for _, op := range p.Ops {
		if op.Region == region {
			out = append(out, op.Text)
		}
	}
	return out
}

// HasSection reports whether any instruction belongs to section.
func (p Page) HasSection(section string) bool {
	for _, op := range p.Ops {
		if op.Section == section {
			return true
		}
	}
	return false
}

// Texts returns the text of every text instruction in drawing order.
func (p Page) Texts() []string {
	var out []string
	for _, op := range p.Ops {
		if op.Kind == OpText || op.Kind == OpCenteredText {
			out = append(out, op.Text)
		}
	}
	return out
}

// sheet accumulates instructions for one page. The section cursor tags
// every op appended until it is changed.
type sheet struct {
	st      Styles
	section string
	ops     []Op
}

func newSheet(st Styles) *sheet {
	return &sheet{st: st}
}

func (s *sheet) in(section string) *sheet {
	s.section = section
	return s
}

func (s *sheet) text(x, y float64, style Style, text string) {
	s.ops = append(s.ops, Op{Kind: OpText, Section: s.section, X: x, Y: y, Style: style, Text: text})
}

// value appends a text op bound to a data region. Empty values are still
// emitted so every region of the form has a fixed slot.
func (s *sheet) value(region string, x, y float64, style Style, text string) {
	s.ops = append(s.ops, Op{Kind: OpText, Section: s.section, Region: region, X: x, Y: y, Style: style, Text: text})
}

func (s *sheet) centered(x, y float64, style Style, text string) {
	s.ops = append(s.ops, Op{Kind: OpCenteredText, Section: s.section, X: x, Y: y, Style: style, Text: text})
}

func (s *sheet) rect(x, y, w, h float64) {
	s.ops = append(s.ops, Op{Kind: OpRect, Section: s.section, X: x, Y: y, W: w, H: h})
}

func (s *sheet) line(x1, y1, x2, y2 float64) {
	s.ops = append(s.ops, Op{Kind: OpLine, Section: s.section, X: x1, Y: y1, W: x2 - x1, H: y2 - y1})
}

// number draws a bold section number at the left margin.
func (s *sheet) number(y float64, n string) {
	s.text(MarginLeft, y, s.st.Section, n)
}

// field is a bordered box with a caption near its top edge and a value
// line near its bottom edge.
type field struct {
	region string
	label  string
	value  string
	x, w   float64
	style  Style // value style; zero means Styles.Value
}

// box draws f as a full-height box at row top y with height h.
func (s *sheet) box(y, h float64, f field) {
	style := f.style
	if style.Size == 0 {
		style = s.st.Value
	}
	x := MarginLeft + f.x
	s.rect(x, y, f.w, h)
	s.text(x+1, y+3, s.st.Label, f.label)
	s.value(f.region, x+1, y+h-2, style, f.value)
}

// wrapped draws at most limit wrapped lines of text starting at baseline y
// with a fixed 4mm leading.
func (s *sheet) wrapped(region string, x, y, width float64, style Style, text string, limit int) {
	for i, ln := range clip(Wrap(text, width, style.Size), limit) {
		s.value(region, x, y+float64(i)*4, style, ln)
	}
}

func (s *sheet) page(n int) Page {
	return Page{Number: n, Ops: s.ops}
}
