package f1000

import (
	"strings"
	"testing"
)

func muellerBundle() Bundle {
	return Bundle{
		Report: Record{
			"lfd_nr":    "2024-0001",
			"unfalltag": "2024-06-01",
			"status":    "entwurf",
		},
		Patient: Record{
			"nachname":     "Müller",
			"vorname":      "Anna",
			"geburtsdatum": "1990-01-01",
			"geschlecht":   "w",
		},
		Clinician: Record{"titel": "Dr.", "vorname": "Jan", "nachname": "Berg"},
	}
}

func value(t *testing.T, p Page, region string) string {
	t.Helper()
	v, ok := p.Value(region)
	if !ok {
		t.Fatalf("region %q not emitted on page %d", region, p.Number)
	}
	return v
}

var carrierOnlySections = []string{"3", "4", "5", "6", "8", "9"}

func TestLayout_FullScenario(t *testing.T) {
	pages := Layout(muellerBundle(), Full)
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	p1 := pages[0]

	for region, want := range map[string]string{
		"patient.nachname":          "Müller",
		"patient.vorname":           "Anna",
		"patient.geburtsdatum":      "01.01.1990",
		"patient.geschlecht":        "weiblich",
		"employer":                  "",
		"carrier.name":              "",
		"insurer.name":              "",
		"report.lfd_nr":             "2024-0001",
		"report.unfalltag":          "01.06.2024",
		"report.beschwerden_klagen": "",
		"report.art_da_versorgung":  "",
		"report.vorerkrankungen":    "",
	} {
		if got := value(t, p1, region); got != want {
			t.Errorf("%s = %q, want %q", region, got, want)
		}
	}
	for _, s := range carrierOnlySections {
		if !p1.HasSection(s) {
			t.Errorf("full variant should draw section %s", s)
		}
	}
	if texts := strings.Join(p1.Texts(), "\n"); !strings.Contains(texts, "UV-Träger") {
		t.Error("full variant should carry the carrier heading")
	}
	if got := value(t, pages[1], "patient.name"); got != "Müller, Anna" {
		t.Errorf("page 2 name = %q", got)
	}
	if !pages[1].HasSection("distribution") {
		t.Error("full variant should draw the distribution list")
	}
	if !contains(pages[1].Texts(), "- 2 -") {
		t.Error("full variant page marker should be - 2 -")
	}
}

func TestLayout_ReducedScenario(t *testing.T) {
	pages := Layout(muellerBundle(), Reduced)
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	p1, p2 := pages[0], pages[1]

	for _, s := range carrierOnlySections {
		if p1.HasSection(s) {
			t.Errorf("reduced variant must not draw section %s", s)
		}
	}
	for _, txt := range p1.Texts() {
		if txt == "4.1" || txt == "5.1" || txt == "5.2" {
			t.Errorf("reduced variant shows carrier-only label %q", txt)
		}
	}
	if !contains(p1.Texts(), "Durchgangsarztbericht - Für die Krankenkasse -") {
		t.Error("missing reduced title")
	}
	if contains(p1.Texts(), "UV-Träger") {
		t.Error("reduced variant must not carry the carrier heading")
	}
	for _, region := range []string{"report.gebrauchshand", "report.iss_score", "report.ergaenzung_kopfverletzung", "report.ergaenzung_verbrennung"} {
		if _, ok := p1.Value(region); !ok {
			t.Errorf("aside region %q missing in reduced variant", region)
		}
	}
	if p2.HasSection("distribution") {
		t.Error("reduced variant must not draw the distribution list")
	}
	if !contains(p2.Texts(), "- 4 -") {
		t.Error("reduced variant page marker should be - 4 -")
	}
	if got := value(t, p1, "patient.geschlecht"); got != "weiblich" {
		t.Errorf("sex = %q", got)
	}
}

func TestLayout_AsidePositionsDiffer(t *testing.T) {
	b := muellerBundle()
	full := regionOp(Layout(b, Full)[0], "report.gebrauchshand")
	reduced := regionOp(Layout(b, Reduced)[0], "report.gebrauchshand")
	if full.Y == reduced.Y {
		t.Errorf("aside block should move up on the reduced copy, both at y=%v", full.Y)
	}
}

func TestLayout_ConditionalSubFields(t *testing.T) {
	tests := []struct {
		name     string
		region   string
		set      func(b Bundle, on bool)
		want     string
		fullOnly bool
	}{
		{
			name:   "doubt justification",
			region: "report.zweifel_begruendung",
			set: func(b Bundle, on bool) {
				b.Report["zweifel_arbeitsunfall"] = on
				b.Report["zweifel_begruendung"] = "Sturz in der Pause"
			},
			want: "Sturz in der Pause",
		},
		{
			name:   "other physician",
			region: "report.anderer_arzt",
			set: func(b Bundle, on bool) {
				if on {
					b.Report["weiterbehandlung_durch"] = "andere_arzt"
				} else {
					b.Report["weiterbehandlung_durch"] = "durch_mich"
				}
				b.Report["anderer_arzt_name"] = "Dr. Weber"
				b.Report["anderer_arzt_adresse"] = "Hauptstr. 1, 10115 Berlin"
			},
			want: "Dr. Weber, Hauptstr. 1, 10115 Berlin",
		},
		{
			name:   "no treatment reason",
			region: "report.keine_heilbehandlung_grund",
			set: func(b Bundle, on bool) {
				if on {
					b.Report["heilbehandlung_art"] = "keine"
				} else {
					b.Report["heilbehandlung_art"] = "ambulant"
				}
				b.Report["keine_heilbehandlung_grund"] = "Bagatellverletzung"
			},
			want: "Bagatellverletzung",
		},
		{
			name:   "family insured name",
			region: "patient.familienversichert_name",
			set: func(b Bundle, on bool) {
				b.Patient["familienversichert"] = on
				b.Patient["familienversichert_name"] = "Peter Müller"
			},
			want: "Peter Müller",
		},
		{
			name:   "care insurer",
			region: "patient.pflegekasse",
			set: func(b Bundle, on bool) {
				b.Report["ist_pflegeunfall"] = on
				b.Patient["pflegekasse"] = "AOK Pflegekasse"
			},
			want: "AOK Pflegekasse",
		},
		{
			name:   "intoxication signs",
			region: "report.alkohol_drogen_anzeichen",
			set: func(b Bundle, on bool) {
				b.Report["verdacht_alkohol_drogen"] = on
				b.Report["alkohol_drogen_anzeichen"] = "Foetor"
			},
			want:     "Foetor",
			fullOnly: true,
		},
		{
			name:   "further physicians",
			region: "report.weitere_aerzte_namen",
			set: func(b Bundle, on bool) {
				b.Report["weitere_aerzte_noetig"] = on
				b.Report["weitere_aerzte_namen"] = "Dr. Roth (Neurologie)"
			},
			want: "Dr. Roth (Neurologie)",
		},
		{
			name:   "iss score",
			region: "report.iss_score",
			set: func(b Bundle, on bool) {
				b.Report["polytrauma"] = on
				b.Report["iss_score"] = "17"
			},
			want: "17",
		},
	}
	for _, tt := range tests {
		for _, v := range []Variant{Full, Reduced} {
			if tt.fullOnly && v == Reduced {
				continue
			}
			for _, on := range []bool{false, true} {
				b := muellerBundle()
				tt.set(b, on)
				got := value(t, Layout(b, v)[0], tt.region)
				want := ""
				if on {
					want = tt.want
				}
				if got != want {
					t.Errorf("%s (%s, flag=%v): got %q, want %q", tt.name, v, on, got, want)
				}
			}
		}
	}
}

func TestLayout_WorkCapacityTriState(t *testing.T) {
	tests := []struct {
		name      string
		verdict   any
		capable   bool
		incapable bool
	}{
		{"unset", nil, false, false},
		{"fit", true, true, false},
		{"unfit", false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := muellerBundle()
			if tt.verdict != nil {
				b.Report["arbeitsfaehig"] = tt.verdict
			}
			p1 := Layout(b, Full)[0]
			fit := value(t, p1, "report.arbeitsfaehig")
			unfit := value(t, p1, "report.arbeitsunfaehig_ab")
			if strings.HasPrefix(fit, CheckedBox) != tt.capable {
				t.Errorf("arbeitsfaehig box = %q", fit)
			}
			if strings.HasPrefix(unfit, CheckedBox) != tt.incapable {
				t.Errorf("arbeitsunfaehig box = %q", unfit)
			}
		})
	}
}

func TestLayout_NarrativeCapped(t *testing.T) {
	b := muellerBundle()
	b.Report["unfallhergang"] = strings.Repeat("Der Versicherte stürzte von der Leiter. ", 40)
	b.Report["weitere_ausfuehrungen"] = strings.Repeat("Verlauf unauffällig. ", 2000)
	pages := Layout(b, Full)
	if n := len(pages[0].Values("report.unfallhergang")); n != 3 {
		t.Errorf("expected narrative capped at 3 lines, got %d", n)
	}
	for _, op := range pages[1].Ops {
		if op.Region == "report.weitere_ausfuehrungen" && op.Y > PageHeight-MarginBottom {
			t.Fatalf("continuation text overflows the page at y=%v", op.Y)
		}
	}
}

// completeBundle fills every report field, so page 1 reaches its
// largest extent.
func completeBundle() Bundle {
	b := muellerBundle()
	long := strings.Repeat("Prellung und Schürfwunde am rechten Unterarm. ", 20)
	for _, key := range []string{
		"unfallort", "unfallhergang", "taetigkeit_bei_unfall", "verhalten_nach_unfall",
		"art_erstversorgung", "erstbehandlung_durch", "alkohol_drogen_anzeichen",
		"beschwerden_klagen", "klinische_befunde", "bildgebende_diagnostik",
		"erstdiagnose_freitext", "art_da_versorgung", "vorerkrankungen",
		"zweifel_begruendung", "anderer_arzt_name", "anderer_arzt_adresse",
		"weitere_aerzte_namen", "bemerkungen", "weitere_ausfuehrungen",
	} {
		b.Report[key] = long
	}
	for _, key := range []string{
		"kopie_an_kasse", "ist_pflegeunfall", "verdacht_alkohol_drogen", "blutentnahme_durchgefuehrt",
		"handverletzung", "polytrauma", "zweifel_arbeitsunfall", "verletzung_vav", "verletzung_sav",
		"au_laenger_3_monate", "weitere_aerzte_noetig", "wiedervorstellung_mitgeteilt",
		"ergaenzung_kopfverletzung", "ergaenzung_knieverletzung", "ergaenzung_schulterverletzung", "ergaenzung_verbrennung",
	} {
		b.Report[key] = true
	}
	b.Report["arbeitsfaehig"] = false
	b.Report["iss_score"] = "34"
	b.Report["weiterbehandlung_durch"] = "andere_arzt"
	b.Report["wiedervorstellung_datum"] = "2024-06-10"
	b.Report["erstellt_am"] = "2024-06-02"
	b.Patient["familienversichert"] = true
	b.Clinician["praxis_name"] = "Praxis am Markt"
	b.Employer = Record{"name": "Spedition Krause", "strasse": "Hafenweg 3", "plz": "20457", "ort": "Hamburg"}
	return b
}

// opBottom is the lowest y an op reaches. Text is measured at its baseline.
func opBottom(op Op) float64 {
	if op.Kind == OpRect || op.Kind == OpLine {
		return op.Y + op.H
	}
	return op.Y
}

func TestLayout_FrontPageWithinMargins(t *testing.T) {
	limit := PageHeight - MarginBottom
	for _, v := range []Variant{Full, Reduced} {
		t.Run(v.String(), func(t *testing.T) {
			p1 := Layout(completeBundle(), v)[0]
			for _, op := range p1.Ops {
				if op.Y < 0 || opBottom(op) > limit {
					t.Errorf("section %q region %q %q at y=%.1fmm outside 0..%.0fmm",
						op.Section, op.Region, op.Text, opBottom(op), limit)
				}
			}
			for _, section := range []string{"14", "15", "16", "signature"} {
				if !p1.HasSection(section) {
					t.Errorf("section %s missing", section)
				}
			}
		})
	}
}

func TestLayout_SignatureClosesFrontPage(t *testing.T) {
	for _, v := range []Variant{Full, Reduced} {
		p1 := Layout(completeBundle(), v)[0]
		sig := regionOp(p1, "clinician.name")
		if sig.Text != "Dr. Jan Berg" {
			t.Fatalf("%s: clinician name = %q", v, sig.Text)
		}
		for _, op := range p1.Ops {
			if op.Section != "signature" && op.Section != "aside" && opBottom(op) > sig.Y {
				t.Errorf("%s: section %q reaches y=%.1fmm below the signature at %.1fmm", v, op.Section, opBottom(op), sig.Y)
			}
		}
	}
}

func TestLayout_EmployerLine(t *testing.T) {
	b := muellerBundle()
	b.Employer = Record{"name": "Spedition Krause", "strasse": "Hafenweg 3", "plz": "20457", "ort": "Hamburg", "telefon": "040 123"}
	want := "Spedition Krause, Hafenweg 3, 20457 Hamburg, Tel.: 040 123"
	if got := value(t, Layout(b, Full)[0], "employer"); got != want {
		t.Errorf("employer = %q, want %q", got, want)
	}
}

func TestLayout_Signature(t *testing.T) {
	b := muellerBundle()
	b.Report["erstellt_am"] = "2024-06-02"
	b.Clinician["praxis_name"] = "Praxis am Markt"
	p1 := Layout(b, Full)[0]
	if got := value(t, p1, "clinician.name"); got != "Dr. Jan Berg" {
		t.Errorf("clinician = %q", got)
	}
	if got := value(t, p1, "report.erstellt_am"); got != "02.06.2024" {
		t.Errorf("date = %q", got)
	}
}

func regionOp(p Page, region string) Op {
	for _, op := range p.Ops {
		if op.Region == region {
			return op
		}
	}
	return Op{}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
