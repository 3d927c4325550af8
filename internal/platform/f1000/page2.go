package f1000

// continuationHeight is the height of the free-text box on page 2.
const continuationHeight = 160.0

func (l layout) page2() Page {
	s := newSheet(l.st)
	st := l.st
	r, p := l.b.Report, l.b.Patient
	x := MarginLeft

	s.in("header")
	y := MarginTop
	s.centered(PageWidth/2, y, st.Marker, l.v.PageMarker())
	y += 8
	s.text(x, 10, st.Small, FormID)

	for _, f := range []field{
		{region: "patient.name", label: "Name, Vorname:", value: p.Text("nachname") + ", " + p.Text("vorname"), x: 0, w: 80},
		{region: "patient.geburtsdatum", label: "Geburtsdatum:", value: p.Date("geburtsdatum"), x: 80, w: 35},
		{region: "report.unfalltag", label: "Unfalltag:", value: r.Date("unfalltag"), x: 115, w: 35},
		{region: "report.lfd_nr", label: "Lfd. Nr.", value: r.Text("lfd_nr"), x: 150, w: 30},
	} {
		s.box(y, 10, f)
	}
	y += 15

	s.in("continuation")
	s.text(x, y, st.Heading, "W e i t e r e   A u s f ü h r u n g e n")
	y += 5
	s.rect(x, y, ContentWidth, continuationHeight)
	bottom := y + continuationHeight - 5
	lineY := y + 5
	for _, ln := range Wrap(r.Text("weitere_ausfuehrungen"), ContentWidth-10, st.Value.Size) {
		if lineY > bottom {
			break
		}
		s.value("report.weitere_ausfuehrungen", x+2, lineY, st.Value, ln)
		lineY += 4
	}
	y += continuationHeight + 5

	s.in("notice")
	s.text(x, y, st.Notice, "Ergänzungsberichte nicht vergessen!")
	y += 4
	s.text(x, y, st.Compact, "F 1002 Kopfverletzung")
	s.text(x+70, y, st.Compact, "F 1006 Schulterverletzung")
	y += 4
	s.text(x, y, st.Compact, "F 1004 Knieverletzung")
	s.text(x+70, y, st.Compact, "F 1008 Schwere Verbrennung")
	y += 6

	s.text(x, y, st.Notice, "Datenschutz:")
	s.value("report.datenschutz_hinweis_gegeben", x+25, y, st.Compact,
		CheckboxGlyph(r.Flag("datenschutz_hinweis_gegeben"))+" Ich habe die Hinweise nach § 201 SGB VII gegeben.")
	y += 8

	s.rect(x, y, ContentWidth, 20)
	s.text(x+2, y+4, st.Notice, "Mitteilung an die behandelnde Ärztin/den behandelnden Arzt")
	s.text(x+2, y+10, st.Compact, "Sie erhalten meinen Bericht. Bitte stellen Sie die Patientin/den Patienten spätestens zum vorgesehenen Nachschautermin (siehe Nr. 15)")
	s.text(x+2, y+14, st.Compact, "wieder bei mir vor, wenn sie/er bis dahin nicht wieder arbeitsfähig oder noch behandlungsbedürftig ist.")
	y += 25

	if l.v.Distribution() {
		s.in("distribution")
		s.text(x, y, st.Notice, "Verteiler")
		for _, recipient := range []string{"Unfallversicherungsträger", "Behandelnde Ärztin/Behandelnder Arzt", "Eigenbedarf"} {
			y += 4
			s.text(x, y, st.Compact, recipient)
		}
	}

	s.in("signature")
	y += 10
	s.text(x, y, st.Small, ",")
	s.line(x, y+1, x+80, y+1)

	s.in("footer")
	s.text(x, PageHeight-10, st.Small, FormID)
	return s.page(2)
}
