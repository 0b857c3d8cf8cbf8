package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	"github.com/medbridge360/backend/internal/domain/entities"
	"github.com/medbridge360/backend/internal/domain/repositories"
	"github.com/medbridge360/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/medbridge360/backend/pkg/errors"
)

var hospitalColumns = []interface{}{
	"id", "name", "city", "state", "country", "rating",
	"latitude", "longitude", "specializations", "international_patients",
	"image_url", "description", "created_at", "updated_at",
}

var treatmentColumns = []interface{}{
	"id", "hospital_id", "name", "base_cost", "surgery_cost",
	"medication_cost", "stay_cost", "duration_days", "created_at", "updated_at",
}

// HospitalAdapter implements the hospital repository over PostgreSQL.
type HospitalAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

var _ repositories.HospitalWriteRepository = (*HospitalAdapter)(nil)

// NewHospitalAdapter creates a new hospital adapter
func NewHospitalAdapter(client *postgres.Client) *HospitalAdapter {
	return &HospitalAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a hospital and its owned treatments.
func (a *HospitalAdapter) Create(ctx context.Context, hospital *entities.Hospital) error {
	record := goqu.Record{
		"id":                     hospital.ID,
		"name":                   hospital.Name,
		"city":                   hospital.City,
		"state":                  sql.NullString{String: hospital.State, Valid: hospital.State != ""},
		"country":                hospital.Country,
		"rating":                 hospital.Rating,
		"specializations":        pq.Array(hospital.Specializations),
		"international_patients": hospital.InternationalPatients,
		"image_url":              hospital.ImageURL,
		"description":            hospital.Description,
		"created_at":             hospital.CreatedAt,
		"updated_at":             hospital.UpdatedAt,
	}
	if hospital.Location != nil {
		record["latitude"] = hospital.Location.Latitude
		record["longitude"] = hospital.Location.Longitude
	} else {
		record["latitude"] = nil
		record["longitude"] = nil
	}

	query, args, err := a.db.Insert("hospitals").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}
	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError(fmt.Sprintf("hospital with id %s already exists", hospital.ID))
		}
		return apperrors.NewInternalError("failed to create hospital", err)
	}

	for i := range hospital.Treatments {
		t := &hospital.Treatments[i]
		t.HospitalID = hospital.ID
		if err := a.createTreatment(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}

func (a *HospitalAdapter) createTreatment(ctx context.Context, t *entities.Treatment) error {
	query, args, err := a.db.Insert("treatments").Rows(goqu.Record{
		"id":              t.ID,
		"hospital_id":     t.HospitalID,
		"name":            t.Name,
		"base_cost":       t.BaseCost,
		"surgery_cost":    t.SurgeryCost,
		"medication_cost": t.MedicationCost,
		"stay_cost":       t.StayCost,
		"duration_days":   t.DurationDays,
		"created_at":      t.CreatedAt,
		"updated_at":      t.UpdatedAt,
	}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build treatment insert", err)
	}
	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create treatment", err)
	}
	return nil
}

// GetByID retrieves a hospital with its treatments.
func (a *HospitalAdapter) GetByID(ctx context.Context, id string) (*entities.Hospital, error) {
	query, args, err := a.db.Select(hospitalColumns...).
		From("hospitals").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	row := a.client.DB().QueryRowContext(ctx, query, args...)
	hospital, err := scanHospital(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("hospital with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get hospital", err)
	}

	if err := a.loadTreatments(ctx, []*entities.Hospital{hospital}); err != nil {
		return nil, err
	}
	return hospital, nil
}

// GetByIDs retrieves multiple hospitals, preserving input order and
// skipping unknown IDs.
func (a *HospitalAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.Hospital, error) {
	if len(ids) == 0 {
		return []*entities.Hospital{}, nil
	}

	query, args, err := a.db.Select(hospitalColumns...).
		From("hospitals").
		Where(goqu.Ex{"id": ids}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get hospitals by ids", err)
	}
	defer rows.Close()

	byID := make(map[string]*entities.Hospital, len(ids))
	var fetched []*entities.Hospital
	for rows.Next() {
		h, err := scanHospital(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan hospital", err)
		}
		byID[h.ID] = h
		fetched = append(fetched, h)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating hospitals", err)
	}

	if err := a.loadTreatments(ctx, fetched); err != nil {
		return nil, err
	}

	ordered := make([]*entities.Hospital, 0, len(ids))
	for _, id := range ids {
		if h, ok := byID[id]; ok {
			ordered = append(ordered, h)
		}
	}
	return ordered, nil
}

// List retrieves the full catalog in stable catalog order.
func (a *HospitalAdapter) List(ctx context.Context) ([]*entities.Hospital, error) {
	query, args, err := a.db.Select(hospitalColumns...).
		From("hospitals").
		Order(goqu.C("created_at").Asc(), goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list hospitals", err)
	}
	defer rows.Close()

	var hospitals []*entities.Hospital
	for rows.Next() {
		h, err := scanHospital(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan hospital", err)
		}
		hospitals = append(hospitals, h)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating hospitals", err)
	}

	if err := a.loadTreatments(ctx, hospitals); err != nil {
		return nil, err
	}
	return hospitals, nil
}

// loadTreatments attaches owned treatments to the given hospitals in one
// query, preserving per-hospital insertion order.
func (a *HospitalAdapter) loadTreatments(ctx context.Context, hospitals []*entities.Hospital) error {
	if len(hospitals) == 0 {
		return nil
	}

	ids := make([]string, len(hospitals))
	byID := make(map[string]*entities.Hospital, len(hospitals))
	for i, h := range hospitals {
		ids[i] = h.ID
		byID[h.ID] = h
		h.Treatments = nil
	}

	query, args, err := a.db.Select(treatmentColumns...).
		From("treatments").
		Where(goqu.Ex{"hospital_id": ids}).
		Order(goqu.C("created_at").Asc(), goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build treatments query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to load treatments", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t entities.Treatment
		if err := rows.Scan(
			&t.ID, &t.HospitalID, &t.Name, &t.BaseCost, &t.SurgeryCost,
			&t.MedicationCost, &t.StayCost, &t.DurationDays, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return apperrors.NewInternalError("failed to scan treatment", err)
		}
		if h, ok := byID[t.HospitalID]; ok {
			h.Treatments = append(h.Treatments, t)
		}
	}
	if err := rows.Err(); err != nil {
		return apperrors.NewInternalError("error iterating treatments", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHospital(row rowScanner) (*entities.Hospital, error) {
	h := &entities.Hospital{}
	var state sql.NullString
	var lat, lon sql.NullFloat64
	var specs pq.StringArray

	err := row.Scan(
		&h.ID, &h.Name, &h.City, &state, &h.Country, &h.Rating,
		&lat, &lon, &specs, &h.InternationalPatients,
		&h.ImageURL, &h.Description, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	h.State = state.String
	h.Specializations = specs
	if lat.Valid && lon.Valid {
		h.Location = &entities.Location{Latitude: lat.Float64, Longitude: lon.Float64}
	}
	return h, nil
}
