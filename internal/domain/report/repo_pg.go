package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type reportRepoPG struct{ db queryable }

func NewReportRepoPG(pool *pgxpool.Pool) ReportRepository {
	return &reportRepoPG{db: pool}
}

// column is one editable report column. cast names the SQL type for DATE and
// TIME columns, which travel as text.
type column struct {
	name string
	cast string
}

var contentColumns = []column{
	{"lfd_nr", ""}, {"patient_id", ""}, {"employer_id", ""}, {"carrier_id", ""},
	{"eingetroffen_datum", "date"}, {"eingetroffen_uhrzeit", "time"}, {"kopie_an_kasse", ""}, {"ist_pflegeunfall", ""},
	{"unfalltag", "date"}, {"unfallzeit", "time"}, {"unfallort", ""},
	{"arbeitszeit_beginn", "time"}, {"arbeitszeit_ende", "time"},
	{"unfallhergang", ""}, {"taetigkeit_bei_unfall", ""}, {"verhalten_nach_unfall", ""},
	{"art_erstversorgung", ""}, {"erstbehandlung_datum", "date"}, {"erstbehandlung_durch", ""},
	{"verdacht_alkohol_drogen", ""}, {"alkohol_drogen_anzeichen", ""}, {"blutentnahme_durchgefuehrt", ""},
	{"beschwerden_klagen", ""}, {"handverletzung", ""}, {"gebrauchshand", ""}, {"klinische_befunde", ""},
	{"polytrauma", ""}, {"iss_score", ""}, {"bildgebende_diagnostik", ""},
	{"erstdiagnose_freitext", ""}, {"erstdiagnose_icd10", ""}, {"erstdiagnose_ao", ""},
	{"art_da_versorgung", ""}, {"vorerkrankungen", ""}, {"zweifel_arbeitsunfall", ""}, {"zweifel_begruendung", ""},
	{"heilbehandlung_art", ""}, {"keine_heilbehandlung_grund", ""},
	{"verletzung_vav", ""}, {"verletzung_vav_ziffer", ""}, {"verletzung_sav", ""}, {"verletzung_sav_ziffer", ""},
	{"weiterbehandlung_durch", ""}, {"anderer_arzt_name", ""}, {"anderer_arzt_adresse", ""},
	{"arbeitsfaehig", ""}, {"arbeitsunfaehig_ab", "date"}, {"arbeitsfaehig_ab", "date"}, {"au_laenger_3_monate", ""},
	{"weitere_aerzte_noetig", ""}, {"weitere_aerzte_namen", ""},
	{"wiedervorstellung_datum", "date"}, {"wiedervorstellung_mitgeteilt", ""},
	{"bemerkungen", ""}, {"weitere_ausfuehrungen", ""},
	{"datenschutz_hinweis_gegeben", ""}, {"mitteilung_behandelnder_arzt", ""}, {"datum_mitteilung_behandelnder_arzt", "date"},
	{"ergaenzung_kopfverletzung", ""}, {"ergaenzung_knieverletzung", ""}, {"ergaenzung_schulterverletzung", ""}, {"ergaenzung_verbrennung", ""},
}

// contentArgs must follow the order of contentColumns.
func contentArgs(r *Report) []interface{} {
	return []interface{}{
		r.LfdNr, r.PatientID, r.EmployerID, r.CarrierID,
		r.ArrivalDate, r.ArrivalTime, r.CopyToInsurer, r.CareAccident,
		r.AccidentDate, r.AccidentTime, r.AccidentPlace,
		r.WorkStart, r.WorkEnd,
		r.AccidentCourse, r.ActivityAtTime, r.BehaviourAfter,
		r.FirstAidKind, r.FirstTreatedOn, r.FirstTreatedBy,
		r.SuspectedIntoxication, r.IntoxicationSigns, r.BloodSampleTaken,
		r.Complaints, r.HandInjury, r.DominantHand, r.ClinicalFindings,
		r.Polytrauma, r.ISSScore, r.Imaging,
		r.DiagnosisText, r.DiagnosisICD10, r.DiagnosisAO,
		r.CareKind, r.PriorConditions, r.DoubtsWorkAccident, r.DoubtsReason,
		r.TreatmentKind, r.NoTreatmentReason,
		r.InjuryVAV, r.InjuryVAVNumber, r.InjurySAV, r.InjurySAVNumber,
		r.FurtherTreatmentBy, r.OtherDoctorName, r.OtherDoctorAddress,
		r.FitForWork, r.UnfitFrom, r.FitFrom, r.UnfitOver3Months,
		r.MoreDoctorsNeeded, r.MoreDoctorsNames,
		r.FollowUpDate, r.FollowUpCommunicated,
		r.Remarks, r.FurtherExplanations,
		r.PrivacyNoticeGiven, r.TreatingDoctorNote, r.TreatingDoctorNoteOn,
		r.SupplementHead, r.SupplementKnee, r.SupplementShoulder, r.SupplementBurn,
	}
}

func placeholder(n int, c column) string {
	if c.cast == "" {
		return fmt.Sprintf("$%d", n)
	}
	return fmt.Sprintf("$%d::text::%s", n, c.cast)
}

var (
	reportCols   string
	insertReport string
	updateReport string
)

func init() {
	sel := []string{"id", "status", "user_id", "created_at", "updated_at", "abgeschlossen_am", "pdf_generiert_am"}
	names := make([]string, len(contentColumns))
	values := make([]string, len(contentColumns))
	sets := make([]string, len(contentColumns))
	for i, c := range contentColumns {
		if c.cast == "" {
			sel = append(sel, c.name)
		} else {
			sel = append(sel, c.name+"::text AS "+c.name)
		}
		names[i] = c.name
		values[i] = placeholder(i+4, c)
		sets[i] = c.name + "=" + placeholder(i+2, c)
	}
	reportCols = strings.Join(sel, ", ")
	insertReport = `INSERT INTO reports (id, status, user_id, ` + strings.Join(names, ", ") + `)
		VALUES ($1, $2, $3, ` + strings.Join(values, ", ") + `)
		RETURNING created_at, updated_at`
	updateReport = `UPDATE reports SET ` + strings.Join(sets, ", ") + `, updated_at=NOW() WHERE id = $1`
}

func mapWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrConflict
	}
	return err
}

func (r *reportRepoPG) scanRows(rows pgx.Rows) ([]*Report, error) {
	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[Report])
}

func (r *reportRepoPG) Create(ctx context.Context, rep *Report) error {
	rep.ID = uuid.New()
	args := append([]interface{}{rep.ID, rep.Status, rep.UserID}, contentArgs(rep)...)
	err := r.db.QueryRow(ctx, insertReport, args...).Scan(&rep.CreatedAt, &rep.UpdatedAt)
	return mapWriteErr(err)
}

func (r *reportRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Report, error) {
	rows, err := r.db.Query(ctx, `SELECT `+reportCols+` FROM reports WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	rep, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[Report])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rep, err
}

func (r *reportRepoPG) Update(ctx context.Context, rep *Report) error {
	args := append([]interface{}{rep.ID}, contentArgs(rep)...)
	tag, err := r.db.Exec(ctx, updateReport, args...)
	if err != nil {
		return mapWriteErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *reportRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	return err
}

const reportFilter = `($1::uuid IS NULL OR user_id = $1) AND ($2::uuid IS NULL OR patient_id = $2)`

func (r *reportRepoPG) List(ctx context.Context, f ListFilter, limit, offset int) ([]*Report, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reports WHERE `+reportFilter, f.UserID, f.PatientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.db.Query(ctx, `SELECT `+reportCols+` FROM reports WHERE `+reportFilter+`
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`, f.UserID, f.PatientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	items, err := r.scanRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *reportRepoPG) Finalize(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE reports SET status=$2, abgeschlossen_am=$3, updated_at=NOW() WHERE id = $1`,
		id, StatusFinalized, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *reportRepoPG) MarkPDFGenerated(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE reports SET pdf_generiert_am=$2 WHERE id = $1`, id, at)
	return err
}
