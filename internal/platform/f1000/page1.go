package f1000

import (
	"fmt"
	"strings"
)

// layout turns one bundle into page instructions for a variant.
type layout struct {
	b  Bundle
	v  Variant
	st Styles
}

var sexLabels = map[string]string{
	"m": "männlich",
	"w": "weiblich",
	"d": "divers",
}

// sexLabel expands the stored sex code; unknown codes pass through.
func sexLabel(code string) string {
	if l, ok := sexLabels[code]; ok {
		return l
	}
	return code
}

// toggle renders a "Nein / Ja" pair. sep separates the two options.
func toggle(yes bool, sep, yesLabel string) string {
	return CheckboxGlyph(!yes) + " Nein" + sep + CheckboxGlyph(yes) + " " + yesLabel
}

// address renders "street, zip city", or "" when all parts are empty.
func address(street, zip, city string) string {
	if street == "" && zip == "" && city == "" {
		return ""
	}
	return fmt.Sprintf("%s, %s %s", street, zip, city)
}

func employerLine(e Record) string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s, %s, %s %s, Tel.: %s",
		e.Text("name"), e.Text("strasse"), e.Text("plz"), e.Text("ort"), e.Text("telefon"))
}

// workTime renders a shift boundary as "HH:MM Uhr".
func workTime(r Record, key string) string {
	if t := r.Time(key); t != "" {
		return t + " Uhr"
	}
	return ""
}

// page1 lays out the front page. Row pitches are sized so the carrier copy,
// which adds sections 3 to 9, still closes with the signature above the
// bottom margin.
func (l layout) page1() Page {
	s := newSheet(l.st)
	st := l.st
	r, p := l.b.Report, l.b.Patient
	x := MarginLeft
	anchors := make(map[anchor]float64, 3)

	s.in("header")
	s.text(x, 10, st.Small, FormID)
	y := MarginTop
	s.text(x, y, st.Title, l.v.Title())
	if h := l.v.CarrierHeading(); h != "" {
		s.text(x+120, y, st.Marker, h)
	}
	y += 8

	s.text(PageWidth-50, y-5, st.Small, "Lfd. Nr.")
	s.value("report.lfd_nr", PageWidth-50, y+2, st.RunNoBig, r.Text("lfd_nr"))
	y += 5

	s.box(y, 10, field{region: "carrier.name", label: "Unfallversicherungsträger", value: l.b.Carrier.Text("name"), x: 0, w: 90})
	s.box(y, 10, field{region: "report.eingetroffen_datum", label: "Eingetroffen am", value: r.Date("eingetroffen_datum"), x: 90, w: 35})
	s.box(y, 10, field{region: "report.eingetroffen_uhrzeit", label: "Uhrzeit", value: r.Time("eingetroffen_uhrzeit"), x: 125, w: 25})
	y += 11

	s.in("patient")
	s.box(y, 10, field{region: "patient.nachname", label: "Name der versicherten Person", value: p.Text("nachname"), x: 0, w: 50})
	s.box(y, 10, field{region: "patient.vorname", label: "Vorname", value: p.Text("vorname"), x: 50, w: 35})
	s.box(y, 10, field{region: "patient.geburtsdatum", label: "Geburtsdatum", value: p.Date("geburtsdatum"), x: 85, w: 30})
	s.box(y, 10, field{region: "insurer.name", label: "Krankenkasse", value: l.b.Insurer.Text("name"), x: 115, w: 35})

	fam := p.Flag("familienversichert")
	s.rect(x+150, y, 30, 10)
	s.text(x+151, y+3, st.Label, "Familienversichert")
	s.value("patient.familienversichert", x+151, y+6, st.Compact, toggle(fam, "  ", "Ja:"))
	famName := ""
	if fam {
		famName = p.Text("familienversichert_name")
	}
	s.value("patient.familienversichert_name", x+151, y+9, st.Small, famName)
	y += 11

	s.value("report.kopie_an_kasse", PageWidth-35, y-8, st.Small, "Kopie an Kasse  "+CheckboxGlyph(r.Flag("kopie_an_kasse")))

	careInsurer := ""
	if r.Flag("ist_pflegeunfall") {
		careInsurer = p.Text("pflegekasse")
	}
	s.box(y, 10, field{region: "patient.anschrift", label: "Vollständige Anschrift", value: address(p.Text("strasse"), p.Text("plz"), p.Text("ort")), x: 0, w: 100})
	s.box(y, 10, field{region: "patient.pflegekasse", label: "Bei Pflegeunfall Pflegekasse der pflegebedürftigen Person", value: careInsurer, x: 100, w: 80})
	y += 11

	for _, f := range []field{
		{region: "patient.beschaeftigt_als", label: "Beschäftigt als", value: p.Text("beschaeftigt_als"), x: 0, w: 45},
		{region: "patient.beschaeftigt_seit", label: "Seit", value: p.Date("beschaeftigt_seit"), x: 45, w: 25},
		{region: "patient.telefon", label: "Telefon-Nr.", value: p.Text("telefon"), x: 70, w: 35},
		{region: "patient.staatsangehoerigkeit", label: "Staatsangehörigkeit", value: p.Text("staatsangehoerigkeit"), x: 105, w: 40},
		{region: "patient.geschlecht", label: "Geschlecht", value: sexLabel(p.Text("geschlecht")), x: 145, w: 35},
	} {
		f.style = st.Compact
		s.box(y, 9, f)
	}
	y += 10

	s.in("employer")
	s.box(y, 10, field{
		region: "employer",
		label:  "Unfallbetrieb (Name, Anschrift und Telefon-Nr. des Arbeitgebers, der Kita, der (Hoch-)Schule, der pflegebedürftigen Person)",
		value:  employerLine(l.b.Employer),
		x:      0,
		w:      ContentWidth,
	})
	y += 12

	s.in("1")
	s.number(y, "1")
	for _, f := range []field{
		{region: "report.unfalltag", label: "Unfalltag", value: r.Date("unfalltag"), x: 5, w: 25},
		{region: "report.unfallzeit", label: "Uhrzeit", value: r.Time("unfallzeit"), x: 30, w: 20},
		{region: "report.unfallort", label: "Unfallort", value: r.Text("unfallort"), x: 50, w: 55},
		{region: "report.arbeitszeit_beginn", label: "Beginn der Arbeitszeit", value: workTime(r, "arbeitszeit_beginn"), x: 105, w: 25},
		{region: "report.arbeitszeit_ende", label: "Ende der Arbeitszeit", value: workTime(r, "arbeitszeit_ende"), x: 130, w: 25},
	} {
		s.rect(x+f.x, y, f.w, 7)
		s.text(x+f.x+1, y+1, st.Label, f.label)
		s.value(f.region, x+f.x+1, y+5, st.Value, f.value)
	}
	y += 10

	s.in("2")
	s.number(y, "2")
	s.text(x+5, y, st.Label, "Angaben der versicherten Person zum Unfallhergang und zur Tätigkeit, bei der der Unfall eingetreten ist")
	s.rect(x+5, y+2, ContentWidth-5, 13)
	s.wrapped("report.unfallhergang", x+6, y+5, 170, st.Compact, r.Text("unfallhergang"), 3)
	y += 17
	anchors[anchorAfterNarrative] = y

	if l.v.CarrierSections() {
		y = l.findings(s, y, anchors)
	}
	placeAside(s, l.v, anchors, r)

	s.in("7")
	s.number(y, "7")
	s.text(x+5, y, st.Label, "Erstdiagnose - Freitext -")
	s.text(x+5, y+3, st.Label, "(Änderungen/Konkretisierungen unverzüglich nachmelden, bei Frakturen zwingend AO-Klassifikation angeben.)")
	s.rect(x+5, y+5, ContentWidth-50, 8)
	s.wrapped("report.erstdiagnose_freitext", x+6, y+7, 120, st.Compact, r.Text("erstdiagnose_freitext"), 2)
	s.text(x+135, y+3, st.Label, "AO-Klassifikation")
	s.rect(x+135, y+3, 40, 7)
	s.value("report.erstdiagnose_ao", x+136, y+9, st.Value, r.Text("erstdiagnose_ao"))
	s.text(x+135, y+12, st.Label, "ICD 10")
	s.rect(x+135, y+6, 40, 7)
	s.value("report.erstdiagnose_icd10", x+136, y+11, st.Value, r.Text("erstdiagnose_icd10"))
	y += 15

	if l.v.CarrierSections() {
		y = s.note(y, "8", "Art der durchgangsärztlichen Versorgung", "report.art_da_versorgung", r.Text("art_da_versorgung"))
		y = s.note(y, "9", "Vom Unfall unabhängige gesundheitliche Beeinträchtigungen, die für die Beurteilung des Arbeitsunfalls von Bedeutung sein können", "report.vorerkrankungen", r.Text("vorerkrankungen"))
	}

	y = l.treatment(s, y)
	l.signature(s, y)
	return s.page(1)
}

// note draws a numbered single-line free-text section and returns the next
// row top.
func (s *sheet) note(y float64, num, label, region, value string) float64 {
	x := MarginLeft
	s.in(num)
	s.number(y, num)
	s.text(x+5, y, s.st.Label, label)
	s.rect(x+5, y+2, ContentWidth-5, 6)
	s.value(region, x+6, y+6.5, s.st.Compact, value)
	return y + 9
}

// findings draws sections 3 to 6, carrier copy only.
func (l layout) findings(s *sheet, y float64, anchors map[anchor]float64) float64 {
	st, r, x := l.st, l.b.Report, MarginLeft

	y = s.note(y, "3", "Verhalten der versicherten Person nach dem Unfall", "report.verhalten_nach_unfall", r.Text("verhalten_nach_unfall"))

	s.in("4")
	s.text(x, y, st.Section, "4.1")
	s.text(x+8, y, st.Label, "Art der ersten (nicht durchgangsärztlichen) Versorgung")
	s.rect(x+8, y+2, 90, 5)
	s.value("report.art_erstversorgung", x+9, y+5, st.Compact, r.Text("art_erstversorgung"))
	s.text(x+100, y, st.Section, "4.2")
	s.text(x+108, y, st.Label, "Erstmalig ärztlich behandelt am")
	s.rect(x+108, y+2, 25, 5)
	s.value("report.erstbehandlung_datum", x+109, y+5, st.Compact, r.Date("erstbehandlung_datum"))
	s.text(x+135, y, st.Label, "durch")
	s.rect(x+135, y+2, 45, 5)
	s.value("report.erstbehandlung_durch", x+136, y+5, st.Compact, r.Text("erstbehandlung_durch"))
	y += 9

	s.in("5")
	s.number(y, "5")
	s.text(x+5, y, st.Label, "Befund")
	suspicion := r.Flag("verdacht_alkohol_drogen")
	s.text(x+25, y, st.Label, "Verdacht auf Alkohol-, Drogen-, Medikamenteneinfluss?")
	s.value("report.verdacht_alkohol_drogen", x+95, y, st.Compact, toggle(suspicion, "  ", "Ja"))
	signs := ""
	if suspicion {
		s.text(x+120, y, st.Label, "Welche Anzeichen?")
		signs = r.Text("alkohol_drogen_anzeichen")
	}
	s.value("report.alkohol_drogen_anzeichen", x+145, y, st.Compact, signs)
	s.text(x+160, y, st.Label, "Blutentnahme")
	s.value("report.blutentnahme_durchgefuehrt", x+160, y+4, st.Compact, toggle(r.Flag("blutentnahme_durchgefuehrt"), " ", "Ja"))
	y += 6

	anchors[anchorComplaints] = y
	s.text(x, y, st.Section, "5.1")
	s.text(x+8, y, st.Label, "Beschwerden/Klagen")
	s.rect(x+8, y+2, ContentWidth-60, 6)
	s.value("report.beschwerden_klagen", x+9, y+6.5, st.Compact, r.Text("beschwerden_klagen"))
	y += 9

	anchors[anchorFindings] = y
	s.text(x, y, st.Section, "5.2")
	s.text(x+8, y, st.Label, "Klinische Untersuchungsbefunde")
	s.rect(x+8, y+2, ContentWidth-60, 11)
	s.wrapped("report.klinische_befunde", x+9, y+5, 100, st.Compact, r.Text("klinische_befunde"), 2)
	y += 16

	return s.note(y, "6", "Ergebnis bildgebender Diagnostik", "report.bildgebende_diagnostik", r.Text("bildgebende_diagnostik"))
}

// treatment draws sections 10 to 16, shared by both variants.
func (l layout) treatment(s *sheet, y float64) float64 {
	st, r, x := l.st, l.b.Report, MarginLeft

	s.in("10")
	s.number(y, "10")
	s.text(x+7, y, st.Label, "Ergeben sich aus Hergang und Befund Zweifel an einem Arbeitsunfall? Wenn ja, ist eine Kopie des Durchgangsarztberichts auszuhändigen.")
	doubt := r.Flag("zweifel_arbeitsunfall")
	s.value("report.zweifel_arbeitsunfall", x+7, y+5, st.Compact, toggle(doubt, "  ", "Ja, weil"))
	reason := ""
	if doubt {
		s.rect(x+45, y+2, ContentWidth-45, 5)
		reason = r.Text("zweifel_begruendung")
	}
	s.value("report.zweifel_begruendung", x+46, y+5, st.Compact, reason)
	y += 9

	s.in("11")
	s.number(y, "11")
	s.text(x+7, y, st.Label, "Art der Heilbehandlung")
	kind := r.Text("heilbehandlung_art")
	s.text(x+7, y+4, st.Compact, CheckboxGlyph(kind == "ambulant")+" Ambulant")
	s.text(x+7, y+7.5, st.Compact, "  "+CheckboxGlyph(kind == "allgemein")+" Allgemeine Heilbehandlung")
	s.text(x+7, y+11, st.Compact, "  "+CheckboxGlyph(kind == "besondere")+" Besondere Heilbehandlung")
	s.text(x+7, y+14.5, st.Compact, CheckboxGlyph(kind == "stationaer")+" Stationär (besondere Heilbehandlung)")

	vav, sav := r.Flag("verletzung_vav"), r.Flag("verletzung_sav")
	s.text(x+85, y, st.Label, "Liegt eine Verletzung nach dem")
	s.text(x+85, y+3, st.Label, "Verletzungsartenverzeichnis vor?")
	s.text(x+85, y+6.5, st.Compact, CheckboxGlyph(!vav && !sav)+" Nein")
	s.text(x+85, y+10, st.Compact, CheckboxGlyph(vav || sav)+" Ja")
	s.value("report.verletzung_vav", x+100, y+10, st.Compact, CheckboxGlyph(vav)+" VAV nach Ziffer "+r.Text("verletzung_vav_ziffer"))
	s.value("report.verletzung_sav", x+100, y+13.5, st.Compact, CheckboxGlyph(sav)+" SAV nach Ziffer "+r.Text("verletzung_sav_ziffer"))

	none := kind == "keine"
	s.text(x+140, y+4, st.Compact, CheckboxGlyph(none)+" Es wird keine Heilbehandlung zu Lasten der UV")
	s.text(x+145, y+7.5, st.Compact, "durchgeführt, weil")
	noneReason := ""
	if none {
		noneReason = r.Text("keine_heilbehandlung_grund")
	}
	s.value("report.keine_heilbehandlung_grund", x+145, y+11, st.Small, noneReason)
	y += 16.5

	s.in("12")
	s.number(y, "12")
	s.text(x+7, y, st.Label, "Weiterbehandlung erfolgt")
	by := r.Text("weiterbehandlung_durch")
	s.text(x+7, y+5, st.Compact, CheckboxGlyph(by == "durch_mich")+" durch mich")
	s.text(x+7, y+9, st.Compact, CheckboxGlyph(by == "andere_arzt")+" durch andere Ärztin/anderen Arzt (auch Verlegung/Vorstellung), bitte Name und Anschrift angeben")
	other := ""
	if by == "andere_arzt" {
		s.rect(x+95, y+2, 85, 7)
		other = r.Text("anderer_arzt_name") + ", " + r.Text("anderer_arzt_adresse")
	}
	s.value("report.anderer_arzt", x+96, y+7, st.Compact, other)
	y += 11

	s.in("13")
	s.number(y, "13")
	s.text(x+7, y, st.Label, "Beurteilung der")
	s.text(x+7, y+3, st.Label, "Arbeitsfähigkeit")
	decided := r.Has("arbeitsfaehig")
	capable := decided && r.Flag("arbeitsfaehig")
	incapable := decided && !r.Flag("arbeitsfaehig")
	s.value("report.arbeitsfaehig", x+35, y, st.Compact, CheckboxGlyph(capable)+" Arbeitsfähig")
	s.value("report.arbeitsunfaehig_ab", x+35, y+3.5, st.Compact, CheckboxGlyph(incapable)+" Arbeitsunfähig ab "+r.Date("arbeitsunfaehig_ab"))
	s.value("report.arbeitsfaehig_ab", x+35, y+7, st.Compact, CheckboxGlyph(incapable)+" Voraussichtlich wieder arbeitsfähig ab "+r.Date("arbeitsfaehig_ab"))
	s.value("report.au_laenger_3_monate", x+35, y+10.5, st.Compact, CheckboxGlyph(r.Flag("au_laenger_3_monate"))+" Voraussichtlich länger als 3 Monate arbeitsunfähig")
	y += 13

	s.in("14")
	s.number(y, "14")
	s.text(x+7, y, st.Label, "Ist die Zuziehung weiterer Ärztinnen/Ärzte zur Klärung")
	s.text(x+7, y+3, st.Label, "der Diagnose und/oder Mitbehandlung erforderlich?")
	further := r.Flag("weitere_aerzte_noetig")
	s.value("report.weitere_aerzte_noetig", x+75, y, st.Compact, toggle(further, "  ", "Ja, zugezogen wird"))
	names := ""
	if further {
		names = r.Text("weitere_aerzte_namen")
	}
	s.value("report.weitere_aerzte_namen", x+130, y, st.Compact, names)
	y += 7

	s.in("15")
	s.number(y, "15")
	s.value("report.wiedervorstellung_datum", x+7, y, st.Label,
		"Wiedervorstellung ist erforderlich, sofern dann noch AU oder Behandlungsbedürftigkeit vorliegen sollte, am "+
			r.Date("wiedervorstellung_datum")+"; bei Verschlimmerung sofort.")
	s.text(x+7, y+4, st.Label, "Der Termin wurde der versicherten Person bekannt gegeben.")
	s.value("report.wiedervorstellung_mitgeteilt", x+85, y+4, st.Compact, CheckboxGlyph(r.Flag("wiedervorstellung_mitgeteilt")))
	y += 8

	s.in("16")
	s.number(y, "16")
	s.text(x+7, y, st.Label, "Bemerkungen (z. B. Beratungsbedarf durch Reha-Management des UV-Trägers, Kontextfaktoren, besondere Umstände)")
	s.rect(x+7, y+2, ContentWidth-7, 8)
	s.wrapped("report.bemerkungen", x+8, y+5, 160, st.Compact, r.Text("bemerkungen"), 2)
	return y + 18
}

func (l layout) signature(s *sheet, y float64) {
	st, x := l.st, MarginLeft
	c := l.b.Clinician

	s.in("signature")
	s.text(x, y, st.Small, "Datum")
	s.line(x+15, y, x+45, y)
	s.value("report.erstellt_am", x+16, y-2, st.Value, l.b.Report.Date("erstellt_am"))

	s.text(x+50, y, st.Small, "Name und Anschrift der Durchgangsärztin/des Durchgangsarztes")
	s.line(x+50, y, PageWidth-MarginRight, y)
	if c == nil {
		return
	}
	name := strings.TrimSpace(fmt.Sprintf("%s %s %s", c.Text("titel"), c.Text("vorname"), c.Text("nachname")))
	s.value("clinician.name", x+51, y-2, st.Value, name)
	if c.Text("praxis_name") != "" {
		practice := fmt.Sprintf("%s, %s, %s %s", c.Text("praxis_name"), c.Text("praxis_strasse"), c.Text("praxis_plz"), c.Text("praxis_ort"))
		s.value("clinician.praxis", x+51, y-5.5, st.Compact, practice)
	}
}
