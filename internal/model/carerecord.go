package model

import "time"

// Medication is a prescribed medication tracked for the care recipient.
type Medication struct {
	ID        string
	UserID    string
	Name      string
	Dosage    string   // e.g. "5 mg"
	Times     []string // intake times as "HH:MM", local time
	Notes     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VitalType identifies the kind of vital-sign reading.
type VitalType string

const (
	VitalBloodPressure VitalType = "blood_pressure"
	VitalHeartRate     VitalType = "heart_rate"
	VitalGlucose       VitalType = "glucose"
	VitalOxygen        VitalType = "oxygen_saturation"
	VitalWeight        VitalType = "weight"
	VitalTemperature   VitalType = "temperature"
)

// VitalReading is a single logged vital-sign measurement.
type VitalReading struct {
	ID         string
	UserID     string
	Type       VitalType
	Value      float64
	Secondary  float64 // diastolic for blood pressure, 0 otherwise
	Unit       string
	Notes      string
	RecordedAt time.Time
}

// Appointment is a scheduled medical appointment.
type Appointment struct {
	ID            string
	UserID        string
	Title         string
	Location      string
	Doctor        string
	Notes         string
	StartsAt      time.Time
	ReminderID    string // reminder scheduled for this appointment, may be empty
	CalendarEvent string // Google Calendar event ID when synced, may be empty
	CreatedAt     time.Time
}
