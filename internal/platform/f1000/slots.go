package f1000

// The hand-injury indicator, the four supplementary-report checkboxes and
// the polytrauma/ISS field appear in both variants. On the carrier copy
// they sit beside 5.1 and 5.2; on the health-insurer copy, where sections
// 3-6 are dropped, they move up beside section 2. Both coordinate sets are
// taken from the paper forms and deliberately differ.

// anchor is a page-1 row whose top the aside slots are measured from.
type anchor int

const (
	anchorComplaints anchor = iota // top of 5.1
	anchorFindings                 // top of 5.2
	anchorAfterNarrative           // cursor after section 2
)

// slot places one aside instruction: dx from the left margin, dy from the
// anchor row.
type slot struct {
	anchor anchor
	dx, dy float64
	style  func(Styles) Style
	region string
	text   func(report Record) string
}

func labelStyle(st Styles) Style   { return st.Label }
func compactStyle(st Styles) Style { return st.Compact }
func smallStyle(st Styles) Style   { return st.Small }
func valueStyle(st Styles) Style   { return st.Value }

func fixed(s string) func(Record) string {
	return func(Record) string { return s }
}

func dominantHand(r Record) string {
	hand := r.Text("gebrauchshand")
	return CheckboxGlyph(hand == "rechts") + " Rechts  " + CheckboxGlyph(hand == "links") + " Links"
}

func supplement(key, label string) func(Record) string {
	return func(r Record) string {
		return CheckboxGlyph(r.Flag(key)) + " " + label
	}
}

func issScore(r Record) string {
	if !r.Flag("polytrauma") {
		return ""
	}
	return r.Text("iss_score")
}

var fullAside = []slot{
	{anchorComplaints, 130, 0, labelStyle, "", fixed("Bei Handverletzung")},
	{anchorComplaints, 130, 3, labelStyle, "", fixed("Gebrauchshand")},
	{anchorComplaints, 130, 7, compactStyle, "report.gebrauchshand", dominantHand},

	{anchorFindings, 130, 0, labelStyle, "", fixed("Ergänzungsbericht")},
	{anchorFindings, 130, 3, labelStyle, "", fixed("beigefügt wegen")},
	{anchorFindings, 130, 6, smallStyle, "report.ergaenzung_kopfverletzung", supplement("ergaenzung_kopfverletzung", "Kopfverletzung")},
	{anchorFindings, 130, 9, smallStyle, "report.ergaenzung_knieverletzung", supplement("ergaenzung_knieverletzung", "Knieverletzung")},
	{anchorFindings, 155, 6, smallStyle, "report.ergaenzung_schulterverletzung", supplement("ergaenzung_schulterverletzung", "Schulterverletzung")},
	{anchorFindings, 155, 9, smallStyle, "report.ergaenzung_verbrennung", supplement("ergaenzung_verbrennung", "Verbrennung")},

	{anchorFindings, 130, 12, labelStyle, "", fixed("Bei Polytrauma/weiteren")},
	{anchorFindings, 130, 15, labelStyle, "", fixed("schweren Verletzungen")},
	{anchorFindings, 160, 12, labelStyle, "", fixed("ISS")},
	{anchorFindings, 170, 12, valueStyle, "report.iss_score", issScore},
}

var reducedAside = []slot{
	{anchorAfterNarrative, 130, -15, labelStyle, "", fixed("Bei Handverletzung")},
	{anchorAfterNarrative, 130, -11, labelStyle, "", fixed("Gebrauchshand")},
	{anchorAfterNarrative, 130, -7, compactStyle, "report.gebrauchshand", dominantHand},

	{anchorAfterNarrative, 155, -15, labelStyle, "", fixed("Ergänzungsbericht")},
	{anchorAfterNarrative, 155, -12, labelStyle, "", fixed("beigefügt wegen")},
	{anchorAfterNarrative, 155, -8, smallStyle, "report.ergaenzung_kopfverletzung", supplement("ergaenzung_kopfverletzung", "Kopfverletzung")},
	{anchorAfterNarrative, 155, -5, smallStyle, "report.ergaenzung_knieverletzung", supplement("ergaenzung_knieverletzung", "Knieverletzung")},
	{anchorAfterNarrative, 155, -2, smallStyle, "report.ergaenzung_schulterverletzung", supplement("ergaenzung_schulterverletzung", "Schulterverletzung")},
	{anchorAfterNarrative, 155, 1, smallStyle, "report.ergaenzung_verbrennung", supplement("ergaenzung_verbrennung", "Verbrennung")},

	{anchorAfterNarrative, 130, -2, labelStyle, "", fixed("Bei Polytrauma ISS")},
	{anchorAfterNarrative, 145, -2, valueStyle, "report.iss_score", issScore},
}

func asideSlots(v Variant) []slot {
	if v == Reduced {
		return reducedAside
	}
	return fullAside
}

// placeAside emits the aside block for v. anchors holds the row tops
// recorded while laying out the page.
func placeAside(s *sheet, v Variant, anchors map[anchor]float64, report Record) {
	s.in("aside")
	for _, sl := range asideSlots(v) {
		top, ok := anchors[sl.anchor]
		if !ok {
			continue
		}
		x, y := MarginLeft+sl.dx, top+sl.dy
		if sl.region == "" {
			s.text(x, y, sl.style(s.st), sl.text(report))
			continue
		}
		s.value(sl.region, x, y, sl.style(s.st), sl.text(report))
	}
}
