package parameter

import (
	"time"

	"github.com/google/uuid"
)

// Record maps to the parameters table. There is at most one record per
// session, enforced by a unique index on session_id; all writes go through
// field-scoped upserts.
//
// The profile fields (glucose level, ECG status, gender, height, weight,
// age) are owned by the mobile client and only read here.
type Record struct {
	ID           uuid.UUID  `db:"id" json:"-"`
	SessionID    string     `db:"session_id" json:"sessionId"`
	Systolic     *int       `db:"systolic" json:"-"`
	Diastolic    *int       `db:"diastolic" json:"-"`
	BPRecordedAt *time.Time `db:"bp_recorded_at" json:"-"`
	HeartRate    *int       `db:"heart_rate" json:"heartRate,omitempty"`
	OxygenLevel  *int       `db:"oxygen_level" json:"oxygenLevel,omitempty"`
	Temperature  *float64   `db:"temperature" json:"temperature,omitempty"`
	GlucoseLevel *float64   `db:"glucose_level" json:"glucoseLevel,omitempty"`
	ECGStatus    *string    `db:"ecg_status" json:"ecgStatus,omitempty"`
	Gender       *string    `db:"gender" json:"gender,omitempty"`
	Height       *float64   `db:"height" json:"height,omitempty"`
	Weight       *float64   `db:"weight" json:"weight,omitempty"`
	Age          *int       `db:"age" json:"age,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"-"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
}

// BloodPressure groups the blood-pressure fields in API responses the way
// the mobile client expects them.
type BloodPressure struct {
	Systolic   *int       `json:"systolic"`
	Diastolic  *int       `json:"diastolic"`
	RecordedAt *time.Time `json:"createdAt,omitempty"`
}

// View is the wire shape of a Record.
type View struct {
	Record
	BloodPressure *BloodPressure `json:"bloodPressure,omitempty"`
}

// ToView nests the blood-pressure columns under a bloodPressure object.
func (r *Record) ToView() View {
	v := View{Record: *r}
	if r.Systolic != nil || r.Diastolic != nil {
		v.BloodPressure = &BloodPressure{
			Systolic:   r.Systolic,
			Diastolic:  r.Diastolic,
			RecordedAt: r.BPRecordedAt,
		}
	}
	return v
}

// VitalsUpdate carries the fields written by the blood-pressure
// finalization path. Temperature is deliberately absent: the temperature
// upsert is a separate, field-disjoint operation.
type VitalsUpdate struct {
	Systolic    int
	Diastolic   int
	HeartRate   *int
	OxygenLevel *int
}
