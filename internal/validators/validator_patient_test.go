package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptrStr(s string) *string    { return &s }
func ptrFloat(f float64) *float64 { return &f }
func ptrInt(i int) *int          { return &i }

func validPatient() models.Patient {
	bmi := 28.1
	return models.Patient{
		Gender:          models.GenderFemale,
		Age:             61,
		Hypertension:    0,
		HeartDisease:    1,
		EverMarried:     models.EverMarriedYes,
		WorkType:        models.WorkTypeSelfEmployed,
		ResidenceType:   models.ResidenceRural,
		AvgGlucoseLevel: 202.21,
		BMI:             &bmi,
		SmokingStatus:   models.SmokingNever,
		Stroke:          1,
	}
}

func violatedFields(t *testing.T, err error) []string {
	t.Helper()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	fields := make([]string, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}

// ---------------------------------------------------------------------------
// TestNewPatientValidator
// ---------------------------------------------------------------------------

func TestNewPatientValidator(t *testing.T) {
	v := NewPatientValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestPatientValidator_Dispatch
// ---------------------------------------------------------------------------

func TestPatientValidator_Dispatch(t *testing.T) {
	v := NewPatientValidator()
	ctx := context.Background()

	p := validPatient()
	assert.NoError(t, v.Validate(ctx, p))
	assert.NoError(t, v.Validate(ctx, &p))

	u := models.PatientUpdate{Age: ptrFloat(50)}
	assert.NoError(t, v.Validate(ctx, u))
	assert.NoError(t, v.Validate(ctx, &u))

	err := v.Validate(ctx, "not a patient")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// TestPatientValidator_Patient
// ---------------------------------------------------------------------------

func TestPatientValidator_ValidPatient(t *testing.T) {
	v := NewPatientValidator()

	err := v.Validate(context.Background(), validPatient())
	assert.NoError(t, err)
}

func TestPatientValidator_NilBMIIsValid(t *testing.T) {
	v := NewPatientValidator()

	p := validPatient()
	p.BMI = nil

	assert.NoError(t, v.Validate(context.Background(), p))
}

func TestPatientValidator_SingleFieldViolations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Patient)
		field   string
	}{
		{"unknown gender", func(p *models.Patient) { p.Gender = "male" }, FieldGender},
		{"negative age", func(p *models.Patient) { p.Age = -1 }, FieldAge},
		{"age above bound", func(p *models.Patient) { p.Age = 121 }, FieldAge},
		{"hypertension flag", func(p *models.Patient) { p.Hypertension = 2 }, FieldHypertension},
		{"heart disease flag", func(p *models.Patient) { p.HeartDisease = -1 }, FieldHeartDisease},
		{"marital status", func(p *models.Patient) { p.EverMarried = "yes" }, FieldEverMarried},
		{"work type case", func(p *models.Patient) { p.WorkType = "govt_job" }, FieldWorkType},
		{"residence type", func(p *models.Patient) { p.ResidenceType = "Suburban" }, FieldResidenceType},
		{"glucose above bound", func(p *models.Patient) { p.AvgGlucoseLevel = 500.01 }, FieldAvgGlucoseLevel},
		{"bmi above bound", func(p *models.Patient) { p.BMI = ptrFloat(100.5) }, FieldBMI},
		{"smoking status", func(p *models.Patient) { p.SmokingStatus = "Formerly Smoked" }, FieldSmokingStatus},
		{"stroke flag", func(p *models.Patient) { p.Stroke = 3 }, FieldStroke},
	}

	v := NewPatientValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPatient()
			tt.mutate(&p)

			err := v.Validate(context.Background(), p)
			require.Error(t, err)
			assert.Equal(t, []string{tt.field}, violatedFields(t, err))
		})
	}
}

func TestPatientValidator_CollectsAllViolations(t *testing.T) {
	v := NewPatientValidator()

	p := validPatient()
	p.Gender = "unknown"
	p.Age = 200
	p.Stroke = 5

	err := v.Validate(context.Background(), p)
	require.Error(t, err)
	assert.ElementsMatch(t, []string{FieldGender, FieldAge, FieldStroke}, violatedFields(t, err))
}

func TestPatientValidator_BoundaryValuesAccepted(t *testing.T) {
	v := NewPatientValidator()

	p := validPatient()
	p.Age = 0
	p.AvgGlucoseLevel = 500
	p.BMI = ptrFloat(100)

	assert.NoError(t, v.Validate(context.Background(), p))

	p.Age = 120
	p.AvgGlucoseLevel = 0
	p.BMI = ptrFloat(0)

	assert.NoError(t, v.Validate(context.Background(), p))
}

// ---------------------------------------------------------------------------
// TestPatientValidator_PatientUpdate
// ---------------------------------------------------------------------------

func TestPatientValidator_UpdateSkipsAbsentFields(t *testing.T) {
	v := NewPatientValidator()

	// an empty update carries no values to reject
	assert.NoError(t, v.Validate(context.Background(), models.PatientUpdate{}))
}

func TestPatientValidator_UpdateChecksProvidedFields(t *testing.T) {
	v := NewPatientValidator()

	u := models.PatientUpdate{
		Gender: ptrStr("Alien"),
		Age:    ptrFloat(-2),
		Stroke: ptrInt(1),
	}

	err := v.Validate(context.Background(), u)
	require.Error(t, err)
	assert.ElementsMatch(t, []string{FieldGender, FieldAge}, violatedFields(t, err))
}

func TestPatientValidator_UpdateBMIClearIsValid(t *testing.T) {
	v := NewPatientValidator()

	// BMIProvided with a nil pointer means "clear the value"
	u := models.PatientUpdate{BMIProvided: true}
	assert.NoError(t, v.Validate(context.Background(), u))

	u = models.PatientUpdate{BMIProvided: true, BMI: ptrFloat(250)}
	err := v.Validate(context.Background(), u)
	require.Error(t, err)
	assert.Equal(t, []string{FieldBMI}, violatedFields(t, err))
}

// ---------------------------------------------------------------------------
// TestValidationError
// ---------------------------------------------------------------------------

func TestValidationError_ErrOrNil(t *testing.T) {
	verr := &ValidationError{}
	assert.NoError(t, verr.ErrOrNil())

	verr.Add(FieldAge, "must be between 0 and 120")
	err := verr.ErrOrNil()
	require.Error(t, err)

	var target *ValidationError
	assert.True(t, errors.As(err, &target))
	assert.Contains(t, err.Error(), "age: must be between 0 and 120")
}
