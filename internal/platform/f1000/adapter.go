package f1000

import (
	"strconv"
	"time"

	"github.com/dabform/dabform/internal/domain/carrier"
	"github.com/dabform/dabform/internal/domain/employer"
	"github.com/dabform/dabform/internal/domain/insurer"
	"github.com/dabform/dabform/internal/domain/patient"
	"github.com/dabform/dabform/internal/domain/report"
	"github.com/dabform/dabform/internal/domain/user"
)

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// AdaptReport flattens a report. Dates and times stay in ISO text form;
// arbeitsfaehig is only present when a verdict was recorded. The creation
// date is taken in loc, or UTC when loc is nil.
func AdaptReport(r *report.Report, loc *time.Location) Record {
	if r == nil {
		return nil
	}
	rec := Record{
		"lfd_nr":               r.LfdNr,
		"status":               r.Status,
		"eingetroffen_datum":   str(r.ArrivalDate),
		"eingetroffen_uhrzeit": str(r.ArrivalTime),
		"kopie_an_kasse":       r.CopyToInsurer,
		"ist_pflegeunfall":     r.CareAccident,

		"unfalltag":             r.AccidentDate,
		"unfallzeit":            str(r.AccidentTime),
		"unfallort":             str(r.AccidentPlace),
		"arbeitszeit_beginn":    str(r.WorkStart),
		"arbeitszeit_ende":      str(r.WorkEnd),
		"unfallhergang":         str(r.AccidentCourse),
		"taetigkeit_bei_unfall": str(r.ActivityAtTime),
		"verhalten_nach_unfall": str(r.BehaviourAfter),
		"art_erstversorgung":    str(r.FirstAidKind),
		"erstbehandlung_datum":  str(r.FirstTreatedOn),
		"erstbehandlung_durch":  str(r.FirstTreatedBy),

		"verdacht_alkohol_drogen":    r.SuspectedIntoxication,
		"alkohol_drogen_anzeichen":   str(r.IntoxicationSigns),
		"blutentnahme_durchgefuehrt": r.BloodSampleTaken,
		"beschwerden_klagen":         str(r.Complaints),
		"handverletzung":             r.HandInjury,
		"gebrauchshand":              str(r.DominantHand),
		"klinische_befunde":          str(r.ClinicalFindings),
		"polytrauma":                 r.Polytrauma,
		"iss_score":                  "",
		"bildgebende_diagnostik":     str(r.Imaging),

		"erstdiagnose_freitext": str(r.DiagnosisText),
		"erstdiagnose_icd10":    str(r.DiagnosisICD10),
		"erstdiagnose_ao":       str(r.DiagnosisAO),

		"art_da_versorgung":     str(r.CareKind),
		"vorerkrankungen":       str(r.PriorConditions),
		"zweifel_arbeitsunfall": r.DoubtsWorkAccident,
		"zweifel_begruendung":   str(r.DoubtsReason),

		"heilbehandlung_art":         str(r.TreatmentKind),
		"keine_heilbehandlung_grund": str(r.NoTreatmentReason),
		"verletzung_vav":             r.InjuryVAV,
		"verletzung_vav_ziffer":      str(r.InjuryVAVNumber),
		"verletzung_sav":             r.InjurySAV,
		"verletzung_sav_ziffer":      str(r.InjurySAVNumber),
		"weiterbehandlung_durch":     str(r.FurtherTreatmentBy),
		"anderer_arzt_name":          str(r.OtherDoctorName),
		"anderer_arzt_adresse":       str(r.OtherDoctorAddress),

		"arbeitsunfaehig_ab":  str(r.UnfitFrom),
		"arbeitsfaehig_ab":    str(r.FitFrom),
		"au_laenger_3_monate": r.UnfitOver3Months,

		"weitere_aerzte_noetig":        r.MoreDoctorsNeeded,
		"weitere_aerzte_namen":         str(r.MoreDoctorsNames),
		"wiedervorstellung_datum":      str(r.FollowUpDate),
		"wiedervorstellung_mitgeteilt": r.FollowUpCommunicated,
		"bemerkungen":                  str(r.Remarks),
		"weitere_ausfuehrungen":        str(r.FurtherExplanations),

		"datenschutz_hinweis_gegeben":        r.PrivacyNoticeGiven,
		"mitteilung_behandelnder_arzt":       str(r.TreatingDoctorNote),
		"datum_mitteilung_behandelnder_arzt": str(r.TreatingDoctorNoteOn),

		"ergaenzung_kopfverletzung":     r.SupplementHead,
		"ergaenzung_knieverletzung":     r.SupplementKnee,
		"ergaenzung_schulterverletzung": r.SupplementShoulder,
		"ergaenzung_verbrennung":        r.SupplementBurn,
	}
	if r.ISSScore != nil {
		rec["iss_score"] = strconv.Itoa(*r.ISSScore)
	}
	if r.FitForWork != nil {
		rec["arbeitsfaehig"] = *r.FitForWork
	}
	if !r.CreatedAt.IsZero() {
		if loc == nil {
			loc = time.UTC
		}
		rec["erstellt_am"] = r.CreatedAt.In(loc).Format(isoDate)
	}
	return rec
}

func AdaptPatient(p *patient.Patient) Record {
	if p == nil {
		return nil
	}
	return Record{
		"nachname":                p.LastName,
		"vorname":                 p.FirstName,
		"geburtsdatum":            p.BirthDate,
		"geschlecht":              str(p.Sex),
		"telefon":                 str(p.Phone),
		"staatsangehoerigkeit":    str(p.Nationality),
		"strasse":                 str(p.Street),
		"plz":                     str(p.Zip),
		"ort":                     str(p.City),
		"familienversichert":      p.FamilyInsured,
		"familienversichert_name": str(p.FamilyInsuredName),
		"pflegekasse":             str(p.CareInsurer),
		"beschaeftigt_als":        str(p.EmployedAs),
		"beschaeftigt_seit":       str(p.EmployedSince),
	}
}

// AdaptClinician flattens the report's author for the signature block.
func AdaptClinician(u *user.User) Record {
	if u == nil {
		return nil
	}
	return Record{
		"titel":             str(u.Title),
		"vorname":           u.FirstName,
		"nachname":          u.LastName,
		"durchgangsarzt_nr": str(u.DArztNumber),
		"praxis_name":       str(u.PracticeName),
		"praxis_strasse":    str(u.PracticeStreet),
		"praxis_plz":        str(u.PracticeZip),
		"praxis_ort":        str(u.PracticeCity),
		"praxis_telefon":    str(u.PracticePhone),
	}
}

func AdaptEmployer(e *employer.Employer) Record {
	if e == nil {
		return nil
	}
	return Record{
		"name":    e.Name,
		"strasse": str(e.Street),
		"plz":     str(e.Zip),
		"ort":     str(e.City),
		"telefon": str(e.Phone),
		"branche": str(e.Industry),
	}
}

func AdaptCarrier(cr *carrier.Carrier) Record {
	if cr == nil {
		return nil
	}
	return Record{
		"name":    cr.Name,
		"kuerzel": str(cr.ShortCode),
		"adresse": str(cr.Address),
		"telefon": str(cr.Phone),
		"email":   str(cr.Email),
	}
}

func AdaptInsurer(i *insurer.Insurer) Record {
	if i == nil {
		return nil
	}
	return Record{
		"name":      i.Name,
		"kuerzel":   str(i.ShortCode),
		"ik_nummer": str(i.IKNumber),
	}
}
