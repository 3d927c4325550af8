package f1000

import (
	"fmt"
	"strings"
)

// Variant selects the audience of a rendered report.
type Variant int

const (
	// Full is the complete report sent to the accident insurance carrier.
	Full Variant = iota
	// Reduced is the health-insurer copy. It omits sections 3-6, 8 and 9
	// and the distribution list.
	Reduced
)

func (v Variant) String() string {
	switch v {
	case Full:
		return "full"
	case Reduced:
		return "reduced"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant maps the query values "uv"/"full" and "kk"/"reduced". An
// empty string selects Full.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "uv", "full":
		return Full, nil
	case "kk", "reduced":
		return Reduced, nil
	default:
		return Full, fmt.Errorf("unknown report variant %q", s)
	}
}

// Title is the page-1 heading.
func (v Variant) Title() string {
	if v == Reduced {
		return "Durchgangsarztbericht - Für die Krankenkasse -"
	}
	return "Durchgangsarztbericht"
}

// CarrierHeading is printed next to the title on the carrier copy only.
func (v Variant) CarrierHeading() string {
	if v == Reduced {
		return ""
	}
	return "UV-Träger"
}

// PageMarker is the page-2 number. The health-insurer copy continues the
// numbering of a four-page bundle.
func (v Variant) PageMarker() string {
	if v == Reduced {
		return "- 4 -"
	}
	return "- 2 -"
}

// CarrierSections reports whether sections 3-6, 8 and 9 are drawn.
func (v Variant) CarrierSections() bool {
	return v != Reduced
}

// Distribution reports whether the page-2 distribution list is drawn.
func (v Variant) Distribution() bool {
	return v != Reduced
}

// FilenameSuffix is appended to download filenames.
func (v Variant) FilenameSuffix() string {
	if v == Reduced {
		return "-kk"
	}
	return ""
}
