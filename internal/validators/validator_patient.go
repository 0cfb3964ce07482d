package validators

import (
	"context"
	"fmt"

	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/models"
)

const (
	FieldGender          = "gender"
	FieldAge             = "age"
	FieldHypertension    = "hypertension"
	FieldHeartDisease    = "heart_disease"
	FieldEverMarried     = "ever_married"
	FieldWorkType        = "work_type"
	FieldResidenceType   = "residence_type"
	FieldAvgGlucoseLevel = "avg_glucose_level"
	FieldBMI             = "bmi"
	FieldSmokingStatus   = "smoking_status"
	FieldStroke          = "stroke"
)

// Value bounds for the numeric patient fields.
const (
	MaxAge          = 120.0
	MaxGlucoseLevel = 500.0
	MaxBMI          = 100.0
)

var (
	allowedGenders = []string{
		models.GenderMale,
		models.GenderFemale,
		models.GenderOther,
	}
	allowedMaritalStatuses = []string{
		models.EverMarriedYes,
		models.EverMarriedNo,
	}
	allowedWorkTypes = []string{
		models.WorkTypePrivate,
		models.WorkTypeSelfEmployed,
		models.WorkTypeGovtJob,
		models.WorkTypeChildren,
		models.WorkTypeNeverWorked,
	}
	allowedResidenceTypes = []string{
		models.ResidenceUrban,
		models.ResidenceRural,
	}
	allowedSmokingStatuses = []string{
		models.SmokingFormerly,
		models.SmokingNever,
		models.SmokingSmokes,
		models.SmokingUnknown,
	}
)

// PatientValidator checks patient records and partial updates against the
// stroke dataset domain: enum spellings are exact and case-sensitive,
// numeric fields are range-bound, and the binary flags accept 0 or 1 only.
type PatientValidator struct {
}

func NewPatientValidator() Validator {
	return &PatientValidator{}
}

func (v *PatientValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.Patient:
		return v.validatePatient(value)
	case *models.Patient:
		return v.validatePatient(*value)

	case models.PatientUpdate:
		return v.validatePatientUpdate(value)
	case *models.PatientUpdate:
		return v.validatePatientUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

// validatePatient checks every field of a full record and reports all
// violations at once.
func (v *PatientValidator) validatePatient(p models.Patient) error {
	verr := &ValidationError{}

	checkOneOf(verr, FieldGender, p.Gender, allowedGenders)
	checkRange(verr, FieldAge, p.Age, 0, MaxAge)
	checkBinaryFlag(verr, FieldHypertension, p.Hypertension)
	checkBinaryFlag(verr, FieldHeartDisease, p.HeartDisease)
	checkOneOf(verr, FieldEverMarried, p.EverMarried, allowedMaritalStatuses)
	checkOneOf(verr, FieldWorkType, p.WorkType, allowedWorkTypes)
	checkOneOf(verr, FieldResidenceType, p.ResidenceType, allowedResidenceTypes)
	checkRange(verr, FieldAvgGlucoseLevel, p.AvgGlucoseLevel, 0, MaxGlucoseLevel)
	if p.BMI != nil {
		checkRange(verr, FieldBMI, *p.BMI, 0, MaxBMI)
	}
	checkOneOf(verr, FieldSmokingStatus, p.SmokingStatus, allowedSmokingStatuses)
	checkBinaryFlag(verr, FieldStroke, p.Stroke)

	return verr.ErrOrNil()
}

// validatePatientUpdate checks only the fields the update provides.
func (v *PatientValidator) validatePatientUpdate(u models.PatientUpdate) error {
	verr := &ValidationError{}

	if u.Gender != nil {
		checkOneOf(verr, FieldGender, *u.Gender, allowedGenders)
	}
	if u.Age != nil {
		checkRange(verr, FieldAge, *u.Age, 0, MaxAge)
	}
	if u.Hypertension != nil {
		checkBinaryFlag(verr, FieldHypertension, *u.Hypertension)
	}
	if u.HeartDisease != nil {
		checkBinaryFlag(verr, FieldHeartDisease, *u.HeartDisease)
	}
	if u.EverMarried != nil {
		checkOneOf(verr, FieldEverMarried, *u.EverMarried, allowedMaritalStatuses)
	}
	if u.WorkType != nil {
		checkOneOf(verr, FieldWorkType, *u.WorkType, allowedWorkTypes)
	}
	if u.ResidenceType != nil {
		checkOneOf(verr, FieldResidenceType, *u.ResidenceType, allowedResidenceTypes)
	}
	if u.AvgGlucoseLevel != nil {
		checkRange(verr, FieldAvgGlucoseLevel, *u.AvgGlucoseLevel, 0, MaxGlucoseLevel)
	}
	if u.BMIProvided && u.BMI != nil {
		checkRange(verr, FieldBMI, *u.BMI, 0, MaxBMI)
	}
	if u.SmokingStatus != nil {
		checkOneOf(verr, FieldSmokingStatus, *u.SmokingStatus, allowedSmokingStatuses)
	}
	if u.Stroke != nil {
		checkBinaryFlag(verr, FieldStroke, *u.Stroke)
	}

	return verr.ErrOrNil()
}

func checkOneOf(verr *ValidationError, field, value string, allowed []string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}

	verr.Add(field, fmt.Sprintf("must be one of %v, got %q", allowed, value))
}

func checkRange(verr *ValidationError, field string, value, min, max float64) {
	if value < min || value > max {
		verr.Add(field, fmt.Sprintf("must be between %g and %g, got %g", min, max, value))
	}
}

func checkBinaryFlag(verr *ValidationError, field string, value int) {
	if value != 0 && value != 1 {
		verr.Add(field, fmt.Sprintf("must be 0 or 1, got %d", value))
	}
}
