package f1000

// Page geometry in millimetres. ISO A4 portrait.
const (
	PageWidth    = 210.0
	PageHeight   = 297.0
	MarginLeft   = 15.0
	MarginRight  = 15.0
	MarginTop    = 12.0
	MarginBottom = 12.0
	ContentWidth = PageWidth - MarginLeft - MarginRight

	// strokeWidth is the border width of every box, 0.5pt.
	strokeWidth = 0.5 * mmPerPoint

	mmPerPoint = 25.4 / 72
)

// FormID is printed at the top of both pages and in the page-2 footer.
const FormID = "F 1000 0718 Durchgangsarztbericht"

// Style is a font selection. All text uses Helvetica.
type Style struct {
	Bold bool
	Size float64 // points
}

// Styles is the fixed set of text styles used by the form layout. Layouts
// hold it by value and never write to it.
type Styles struct {
	Label    Style // 6pt box captions
	Value    Style // 9pt box contents
	Compact  Style // 8pt toggles and wrapped free text
	Small    Style // 7pt form id, signature captions
	Title    Style
	Section  Style // bold section numbers
	Heading  Style // bold 10pt page-2 headings
	Marker   Style // page marker and carrier heading
	Notice   Style // bold 8pt page-2 captions
	RunNoBig Style // running number on page 1
}

var defaultStyles = Styles{
	Label:    Style{Size: 6},
	Value:    Style{Size: 9},
	Compact:  Style{Size: 8},
	Small:    Style{Size: 7},
	Title:    Style{Bold: true, Size: 12},
	Section:  Style{Bold: true, Size: 8},
	Heading:  Style{Bold: true, Size: 10},
	Marker:   Style{Size: 10},
	Notice:   Style{Bold: true, Size: 8},
	RunNoBig: Style{Bold: true, Size: 10},
}

// DefaultStyles returns a copy of the form's text styles.
func DefaultStyles() Styles {
	return defaultStyles
}

// ptToMM converts a length in points to millimetres.
func ptToMM(pt float64) float64 {
	return pt * mmPerPoint
}
