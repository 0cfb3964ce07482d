package models

import "time"

// Allowed values for the patient enum fields. The spellings follow the
// stroke dataset exactly, including case ("Govt_job", "Unknown").
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"

	EverMarriedYes = "Yes"
	EverMarriedNo  = "No"

	WorkTypeChildren     = "children"
	WorkTypeGovtJob      = "Govt_job"
	WorkTypeNeverWorked  = "Never_worked"
	WorkTypePrivate      = "Private"
	WorkTypeSelfEmployed = "Self-employed"

	ResidenceRural = "Rural"
	ResidenceUrban = "Urban"

	SmokingFormerly = "formerly smoked"
	SmokingNever    = "never smoked"
	SmokingSmokes   = "smokes"
	SmokingUnknown  = "Unknown"
)

// Patient is a single health record from the stroke dataset.
//
// The numeric ID is assigned by the record store (one greater than the
// current maximum, starting at 1) and is never reused or changed. BMI is a
// pointer because the dataset marks it "N/A" for some rows; nil means the
// value is unknown.
type Patient struct {
	ID              int64      `json:"id" bson:"id"`
	Gender          string     `json:"gender" bson:"gender"`
	Age             float64    `json:"age" bson:"age"`
	Hypertension    int        `json:"hypertension" bson:"hypertension"`
	HeartDisease    int        `json:"heart_disease" bson:"heart_disease"`
	EverMarried     string     `json:"ever_married" bson:"ever_married"`
	WorkType        string     `json:"work_type" bson:"work_type"`
	ResidenceType   string     `json:"residence_type" bson:"residence_type"`
	AvgGlucoseLevel float64    `json:"avg_glucose_level" bson:"avg_glucose_level"`
	BMI             *float64   `json:"bmi" bson:"bmi"`
	SmokingStatus   string     `json:"smoking_status" bson:"smoking_status"`
	Stroke          int        `json:"stroke" bson:"stroke"`
	CreatedAt       time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// PatientUpdate describes a partial change to an existing patient record.
// Nil fields are left untouched; ID and CreatedAt are immutable and
// therefore absent. BMIProvided distinguishes "clear the BMI" from
// "do not touch the BMI", since both arrive as a nil pointer.
type PatientUpdate struct {
	Gender          *string  `json:"gender"`
	Age             *float64 `json:"age"`
	Hypertension    *int     `json:"hypertension"`
	HeartDisease    *int     `json:"heart_disease"`
	EverMarried     *string  `json:"ever_married"`
	WorkType        *string  `json:"work_type"`
	ResidenceType   *string  `json:"residence_type"`
	AvgGlucoseLevel *float64 `json:"avg_glucose_level"`
	BMI             *float64 `json:"bmi"`
	BMIProvided     bool     `json:"-"`
	SmokingStatus   *string  `json:"smoking_status"`
	Stroke          *int     `json:"stroke"`
}

// ApplyTo copies every provided field of the update onto p.
// ID, CreatedAt and UpdatedAt are deliberately not touched here;
// timestamp stamping is the service's concern.
func (u PatientUpdate) ApplyTo(p *Patient) {
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Hypertension != nil {
		p.Hypertension = *u.Hypertension
	}
	if u.HeartDisease != nil {
		p.HeartDisease = *u.HeartDisease
	}
	if u.EverMarried != nil {
		p.EverMarried = *u.EverMarried
	}
	if u.WorkType != nil {
		p.WorkType = *u.WorkType
	}
	if u.ResidenceType != nil {
		p.ResidenceType = *u.ResidenceType
	}
	if u.AvgGlucoseLevel != nil {
		p.AvgGlucoseLevel = *u.AvgGlucoseLevel
	}
	if u.BMIProvided {
		p.BMI = u.BMI
	}
	if u.SmokingStatus != nil {
		p.SmokingStatus = *u.SmokingStatus
	}
	if u.Stroke != nil {
		p.Stroke = *u.Stroke
	}
}

// PatientStatistics is the aggregate view served on the dashboard.
type PatientStatistics struct {
	TotalPatients     int64 `json:"total_patients"`
	StrokePatients    int64 `json:"stroke_patients"`
	NonStrokePatients int64 `json:"non_stroke_patients"`

	// StrokePercentage is rounded to two decimal places and defined
	// as 0 when the store is empty.
	StrokePercentage float64 `json:"stroke_percentage"`
}
