package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/logger"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/store"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/validators"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/models"
)

// DefaultListLimit is the page size used when a list request does not name
// one. It matches the search result cap.
const DefaultListLimit = 50

// bmiNotAvailable is the marker the stroke dataset uses for unknown BMI.
const bmiNotAvailable = "N/A"

// patientService is the concrete implementation of PatientService. It
// validates in full before any write reaches the repository and stamps the
// record timestamps; identifier allocation stays inside the repository.
type patientService struct {
	patientRepository store.PatientRepository

	validator validators.Validator

	// now is the clock used for record timestamps. Injected for tests.
	now func() time.Time

	logger *logger.Logger
}

// NewPatientService constructs a PatientService wired to the given
// PatientRepository.
func NewPatientService(patientRepository store.PatientRepository, logger *logger.Logger) PatientService {
	return &patientService{
		patientRepository: patientRepository,
		validator:         validators.NewPatientValidator(),
		now:               time.Now,
		logger:            logger,
	}
}

// Add validates the candidate record, stamps created_at and persists it.
// The assigned identifier is set on the returned copy; any identifier the
// caller put on the candidate is ignored.
func (p *patientService) Add(ctx context.Context, patient models.Patient) (models.Patient, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, patient); err != nil {
		return models.Patient{}, err
	}

	patient.ID = 0
	patient.CreatedAt = p.now().UTC()
	patient.UpdatedAt = nil

	id, err := p.patientRepository.Add(ctx, patient)
	if err != nil {
		log.Err(err).Msg("error: adding patient record")
		return models.Patient{}, err
	}

	patient.ID = id
	return patient, nil
}

func (p *patientService) GetByID(ctx context.Context, id int64) (models.Patient, error) {
	return p.patientRepository.GetByID(ctx, id)
}

// List returns a page of records in ascending identifier order. Negative
// paging values are a validation error; a zero limit means DefaultListLimit.
func (p *patientService) List(ctx context.Context, skip, limit int64) ([]models.Patient, error) {
	verr := &validators.ValidationError{}
	if skip < 0 {
		verr.Add("skip", "must not be negative")
	}
	if limit < 0 {
		verr.Add("limit", "must not be negative")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	if limit == 0 {
		limit = DefaultListLimit
	}

	return p.patientRepository.List(ctx, skip, limit)
}

// Update applies the partial update to the stored record, re-validates the
// whole result and stamps updated_at. The identifier and created_at never
// change.
func (p *patientService) Update(ctx context.Context, id int64, update models.PatientUpdate) (models.Patient, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, update); err != nil {
		return models.Patient{}, err
	}

	patient, err := p.patientRepository.GetByID(ctx, id)
	if err != nil {
		return models.Patient{}, err
	}

	update.ApplyTo(&patient)

	if err := p.validator.Validate(ctx, patient); err != nil {
		return models.Patient{}, err
	}

	updatedAt := p.now().UTC()
	patient.UpdatedAt = &updatedAt

	if err := p.patientRepository.Update(ctx, patient); err != nil {
		log.Err(err).Int64("id", id).Msg("error: updating patient record")
		return models.Patient{}, err
	}

	return patient, nil
}

// Delete removes the record. A missing identifier is reported as
// store.ErrPatientNotFound so a second delete of the same id reads as 404,
// not success.
func (p *patientService) Delete(ctx context.Context, id int64) error {
	removed, err := p.patientRepository.Delete(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("error: deleting patient record")
		return err
	}

	if !removed {
		return store.ErrPatientNotFound
	}

	return nil
}

// Search matches the trimmed query case-insensitively against the
// identifier as text, gender, work type and smoking status. An empty query
// returns an empty result without touching the store.
func (p *patientService) Search(ctx context.Context, query string) ([]models.Patient, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Patient{}, nil
	}

	return p.patientRepository.Search(ctx, query)
}

func (p *patientService) Statistics(ctx context.Context) (models.PatientStatistics, error) {
	return p.patientRepository.Statistics(ctx)
}

// LoadDataset replaces the whole collection with the given CSV rows.
//
// Every row is parsed and validated up front, including identifier
// uniqueness within the upload; only then does the destructive replace run.
// A bad row aborts the load with a DatasetRowError naming the 1-based data
// row, leaving the existing records untouched.
func (p *patientService) LoadDataset(ctx context.Context, rows []map[string]string) (int, error) {
	log := logger.FromContext(ctx)

	loadedAt := p.now().UTC()
	patients := make([]models.Patient, 0, len(rows))
	seenIDs := make(map[int64]int, len(rows))

	for i, row := range rows {
		rowNumber := i + 1

		patient, err := parseDatasetRow(row)
		if err != nil {
			return 0, &DatasetRowError{Row: rowNumber, Err: err}
		}

		if err := p.validator.Validate(ctx, patient); err != nil {
			return 0, &DatasetRowError{Row: rowNumber, Err: err}
		}

		if firstRow, ok := seenIDs[patient.ID]; ok {
			return 0, &DatasetRowError{Row: rowNumber, Err: fmt.Errorf("duplicate id %d, first used in row %d", patient.ID, firstRow)}
		}
		seenIDs[patient.ID] = rowNumber

		patient.CreatedAt = loadedAt
		patients = append(patients, patient)
	}

	count, err := p.patientRepository.ReplaceAll(ctx, patients)
	if err != nil {
		log.Err(err).Int("rows", len(patients)).Msg("error: replacing patient collection")
		return 0, err
	}

	log.Info().Int("rows", count).Msg("dataset loaded")
	return count, nil
}

// parseDatasetRow converts one CSV field-map into a patient record. Header
// names are matched case-insensitively because the stroke dataset spells
// "Residence_type" with a capital letter while every other column is
// lowercase.
func parseDatasetRow(row map[string]string) (models.Patient, error) {
	fields := make(map[string]string, len(row))
	for key, value := range row {
		fields[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}

	id, err := parseRowInt64(fields, "id")
	if err != nil {
		return models.Patient{}, err
	}
	if id < 1 {
		return models.Patient{}, fmt.Errorf("field %q: must be a positive integer, got %d", "id", id)
	}

	age, err := parseRowFloat(fields, "age")
	if err != nil {
		return models.Patient{}, err
	}

	hypertension, err := parseRowInt(fields, "hypertension")
	if err != nil {
		return models.Patient{}, err
	}

	heartDisease, err := parseRowInt(fields, "heart_disease")
	if err != nil {
		return models.Patient{}, err
	}

	glucose, err := parseRowFloat(fields, "avg_glucose_level")
	if err != nil {
		return models.Patient{}, err
	}

	stroke, err := parseRowInt(fields, "stroke")
	if err != nil {
		return models.Patient{}, err
	}

	var bmi *float64
	if raw := fields["bmi"]; raw != "" && raw != bmiNotAvailable {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.Patient{}, fmt.Errorf("field %q: %w", "bmi", err)
		}
		bmi = &value
	}

	return models.Patient{
		ID:              id,
		Gender:          fields["gender"],
		Age:             age,
		Hypertension:    hypertension,
		HeartDisease:    heartDisease,
		EverMarried:     fields["ever_married"],
		WorkType:        fields["work_type"],
		ResidenceType:   fields["residence_type"],
		AvgGlucoseLevel: glucose,
		BMI:             bmi,
		SmokingStatus:   fields["smoking_status"],
		Stroke:          stroke,
	}, nil
}

func parseRowInt64(fields map[string]string, name string) (int64, error) {
	value, err := strconv.ParseInt(fields[name], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", name, err)
	}

	return value, nil
}

func parseRowInt(fields map[string]string, name string) (int, error) {
	value, err := strconv.Atoi(fields[name])
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", name, err)
	}

	return value, nil
}

func parseRowFloat(fields map[string]string, name string) (float64, error) {
	value, err := strconv.ParseFloat(fields[name], 64)
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", name, err)
	}

	return value, nil
}
