package report

import (
	"time"

	"github.com/google/uuid"
)

// Report statuses. A report starts as a draft and is finalized once.
const (
	StatusDraft     = "entwurf"
	StatusFinalized = "abgeschlossen"
)

// Report is one Durchgangsarztbericht. Date fields hold YYYY-MM-DD text and
// time fields HH:MM[:SS] text; the database stores them as DATE and TIME.
type Report struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	LfdNr      string     `db:"lfd_nr" json:"lfd_nr"`
	Status     string     `db:"status" json:"status"`
	PatientID  uuid.UUID  `db:"patient_id" json:"patient_id"`
	UserID     uuid.UUID  `db:"user_id" json:"user_id"`
	EmployerID *uuid.UUID `db:"employer_id" json:"employer_id"`
	CarrierID  *uuid.UUID `db:"carrier_id" json:"carrier_id"`

	ArrivalDate   *string `db:"eingetroffen_datum" json:"eingetroffen_datum"`
	ArrivalTime   *string `db:"eingetroffen_uhrzeit" json:"eingetroffen_uhrzeit"`
	CopyToInsurer bool    `db:"kopie_an_kasse" json:"kopie_an_kasse"`
	CareAccident  bool    `db:"ist_pflegeunfall" json:"ist_pflegeunfall"`

	AccidentDate   string  `db:"unfalltag" json:"unfalltag"`
	AccidentTime   *string `db:"unfallzeit" json:"unfallzeit"`
	AccidentPlace  *string `db:"unfallort" json:"unfallort"`
	WorkStart      *string `db:"arbeitszeit_beginn" json:"arbeitszeit_beginn"`
	WorkEnd        *string `db:"arbeitszeit_ende" json:"arbeitszeit_ende"`
	AccidentCourse *string `db:"unfallhergang" json:"unfallhergang"`
	ActivityAtTime *string `db:"taetigkeit_bei_unfall" json:"taetigkeit_bei_unfall"`
	BehaviourAfter *string `db:"verhalten_nach_unfall" json:"verhalten_nach_unfall"`
	FirstAidKind   *string `db:"art_erstversorgung" json:"art_erstversorgung"`
	FirstTreatedOn *string `db:"erstbehandlung_datum" json:"erstbehandlung_datum"`
	FirstTreatedBy *string `db:"erstbehandlung_durch" json:"erstbehandlung_durch"`

	SuspectedIntoxication bool    `db:"verdacht_alkohol_drogen" json:"verdacht_alkohol_drogen"`
	IntoxicationSigns     *string `db:"alkohol_drogen_anzeichen" json:"alkohol_drogen_anzeichen"`
	BloodSampleTaken      bool    `db:"blutentnahme_durchgefuehrt" json:"blutentnahme_durchgefuehrt"`
	Complaints            *string `db:"beschwerden_klagen" json:"beschwerden_klagen"`
	HandInjury            bool    `db:"handverletzung" json:"handverletzung"`
	DominantHand          *string `db:"gebrauchshand" json:"gebrauchshand"`
	ClinicalFindings      *string `db:"klinische_befunde" json:"klinische_befunde"`
	Polytrauma            bool    `db:"polytrauma" json:"polytrauma"`
	ISSScore              *int    `db:"iss_score" json:"iss_score"`
	Imaging               *string `db:"bildgebende_diagnostik" json:"bildgebende_diagnostik"`

	DiagnosisText  *string `db:"erstdiagnose_freitext" json:"erstdiagnose_freitext"`
	DiagnosisICD10 *string `db:"erstdiagnose_icd10" json:"erstdiagnose_icd10"`
	DiagnosisAO    *string `db:"erstdiagnose_ao" json:"erstdiagnose_ao"`

	CareKind           *string `db:"art_da_versorgung" json:"art_da_versorgung"`
	PriorConditions    *string `db:"vorerkrankungen" json:"vorerkrankungen"`
	DoubtsWorkAccident bool    `db:"zweifel_arbeitsunfall" json:"zweifel_arbeitsunfall"`
	DoubtsReason       *string `db:"zweifel_begruendung" json:"zweifel_begruendung"`

	TreatmentKind      *string `db:"heilbehandlung_art" json:"heilbehandlung_art"`
	NoTreatmentReason  *string `db:"keine_heilbehandlung_grund" json:"keine_heilbehandlung_grund"`
	InjuryVAV          bool    `db:"verletzung_vav" json:"verletzung_vav"`
	InjuryVAVNumber    *string `db:"verletzung_vav_ziffer" json:"verletzung_vav_ziffer"`
	InjurySAV          bool    `db:"verletzung_sav" json:"verletzung_sav"`
	InjurySAVNumber    *string `db:"verletzung_sav_ziffer" json:"verletzung_sav_ziffer"`
	FurtherTreatmentBy *string `db:"weiterbehandlung_durch" json:"weiterbehandlung_durch"`
	OtherDoctorName    *string `db:"anderer_arzt_name" json:"anderer_arzt_name"`
	OtherDoctorAddress *string `db:"anderer_arzt_adresse" json:"anderer_arzt_adresse"`

	// FitForWork is tri-state: nil means no verdict was recorded.
	FitForWork       *bool   `db:"arbeitsfaehig" json:"arbeitsfaehig"`
	UnfitFrom        *string `db:"arbeitsunfaehig_ab" json:"arbeitsunfaehig_ab"`
	FitFrom          *string `db:"arbeitsfaehig_ab" json:"arbeitsfaehig_ab"`
	UnfitOver3Months bool    `db:"au_laenger_3_monate" json:"au_laenger_3_monate"`

	MoreDoctorsNeeded    bool    `db:"weitere_aerzte_noetig" json:"weitere_aerzte_noetig"`
	MoreDoctorsNames     *string `db:"weitere_aerzte_namen" json:"weitere_aerzte_namen"`
	FollowUpDate         *string `db:"wiedervorstellung_datum" json:"wiedervorstellung_datum"`
	FollowUpCommunicated bool    `db:"wiedervorstellung_mitgeteilt" json:"wiedervorstellung_mitgeteilt"`
	Remarks              *string `db:"bemerkungen" json:"bemerkungen"`
	FurtherExplanations  *string `db:"weitere_ausfuehrungen" json:"weitere_ausfuehrungen"`

	PrivacyNoticeGiven   bool    `db:"datenschutz_hinweis_gegeben" json:"datenschutz_hinweis_gegeben"`
	TreatingDoctorNote   *string `db:"mitteilung_behandelnder_arzt" json:"mitteilung_behandelnder_arzt"`
	TreatingDoctorNoteOn *string `db:"datum_mitteilung_behandelnder_arzt" json:"datum_mitteilung_behandelnder_arzt"`

	SupplementHead     bool `db:"ergaenzung_kopfverletzung" json:"ergaenzung_kopfverletzung"`
	SupplementKnee     bool `db:"ergaenzung_knieverletzung" json:"ergaenzung_knieverletzung"`
	SupplementShoulder bool `db:"ergaenzung_schulterverletzung" json:"ergaenzung_schulterverletzung"`
	SupplementBurn     bool `db:"ergaenzung_verbrennung" json:"ergaenzung_verbrennung"`

	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
	FinalizedAt    *time.Time `db:"abgeschlossen_am" json:"abgeschlossen_am"`
	PDFGeneratedAt *time.Time `db:"pdf_generiert_am" json:"pdf_generiert_am"`
}

// NewDraft returns an empty report with the column defaults applied.
func NewDraft() Report {
	return Report{Status: StatusDraft, PrivacyNoticeGiven: true}
}

// IsDraft reports whether the report may still be deleted.
func (r *Report) IsDraft() bool {
	return r.Status != StatusFinalized
}

// ListFilter narrows a report listing. Nil fields do not filter.
type ListFilter struct {
	UserID    *uuid.UUID
	PatientID *uuid.UUID
}
