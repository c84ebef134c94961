package http

import (
	"time"

	"care-companion/internal/carerecord"
	"care-companion/internal/model"
	"care-companion/pkg/response"
)

// --- Request DTOs ---

type saveProfileReq struct {
	Name       string   `json:"name" binding:"required"`
	Age        int      `json:"age"`
	Conditions []string `json:"conditions"`
	Allergies  []string `json:"allergies"`
	AIMode     string   `json:"ai_mode"`
}

func (r saveProfileReq) toInput() carerecord.SaveProfileInput {
	return carerecord.SaveProfileInput{
		Name:       r.Name,
		Age:        r.Age,
		Conditions: r.Conditions,
		Allergies:  r.Allergies,
		AIMode:     model.AIMode(r.AIMode),
	}
}

type createMedicationReq struct {
	Name   string   `json:"name" binding:"required"`
	Dosage string   `json:"dosage"`
	Times  []string `json:"times"`
	Notes  string   `json:"notes"`
}

func (r createMedicationReq) toInput() carerecord.CreateMedicationInput {
	return carerecord.CreateMedicationInput{
		Name:   r.Name,
		Dosage: r.Dosage,
		Times:  r.Times,
		Notes:  r.Notes,
	}
}

type logVitalReq struct {
	Type       string     `json:"type" binding:"required"`
	Value      float64    `json:"value"`
	Secondary  float64    `json:"secondary"`
	Unit       string     `json:"unit"`
	Notes      string     `json:"notes"`
	RecordedAt *time.Time `json:"recorded_at"`
}

func (r logVitalReq) toInput() carerecord.LogVitalInput {
	input := carerecord.LogVitalInput{
		Type:      model.VitalType(r.Type),
		Value:     r.Value,
		Secondary: r.Secondary,
		Unit:      r.Unit,
		Notes:     r.Notes,
	}
	if r.RecordedAt != nil {
		input.RecordedAt = *r.RecordedAt
	}
	return input
}

type createAppointmentReq struct {
	Title         string    `json:"title" binding:"required"`
	Location      string    `json:"location"`
	Doctor        string    `json:"doctor"`
	Notes         string    `json:"notes"`
	StartsAt      time.Time `json:"starts_at" binding:"required"`
	RemindBeforeM int       `json:"remind_before_minutes"`
	SyncCalendar  bool      `json:"sync_calendar"`
}

func (r createAppointmentReq) toInput() carerecord.CreateAppointmentInput {
	return carerecord.CreateAppointmentInput{
		Title:        r.Title,
		Location:     r.Location,
		Doctor:       r.Doctor,
		Notes:        r.Notes,
		StartsAt:     r.StartsAt,
		RemindBefore: time.Duration(r.RemindBeforeM) * time.Minute,
		SyncCalendar: r.SyncCalendar,
	}
}

// --- Response DTOs ---

type profileResp struct {
	UserID     string   `json:"user_id"`
	Name       string   `json:"name"`
	Age        int      `json:"age"`
	Conditions []string `json:"conditions"`
	Allergies  []string `json:"allergies"`
	AIMode     string   `json:"ai_mode"`
}

func newProfileResp(p model.CareProfile) profileResp {
	return profileResp{
		UserID:     p.UserID,
		Name:       p.Name,
		Age:        p.Age,
		Conditions: p.Conditions,
		Allergies:  p.Allergies,
		AIMode:     string(p.AIMode),
	}
}

type medicationResp struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Dosage    string            `json:"dosage"`
	Times     []string          `json:"times"`
	Notes     string            `json:"notes,omitempty"`
	Active    bool              `json:"active"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newMedicationResp(m model.Medication) medicationResp {
	return medicationResp{
		ID:        m.ID,
		Name:      m.Name,
		Dosage:    m.Dosage,
		Times:     m.Times,
		Notes:     m.Notes,
		Active:    m.Active,
		CreatedAt: response.DateTime(m.CreatedAt),
	}
}

func newMedicationListResp(meds []model.Medication) []medicationResp {
	out := make([]medicationResp, 0, len(meds))
	for _, m := range meds {
		out = append(out, newMedicationResp(m))
	}
	return out
}

type vitalResp struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Value      float64           `json:"value"`
	Secondary  float64           `json:"secondary,omitempty"`
	Unit       string            `json:"unit"`
	Notes      string            `json:"notes,omitempty"`
	RecordedAt response.DateTime `json:"recorded_at"`
}

func newVitalResp(v model.VitalReading) vitalResp {
	return vitalResp{
		ID:         v.ID,
		Type:       string(v.Type),
		Value:      v.Value,
		Secondary:  v.Secondary,
		Unit:       v.Unit,
		Notes:      v.Notes,
		RecordedAt: response.DateTime(v.RecordedAt),
	}
}

func newVitalListResp(vitals []model.VitalReading) []vitalResp {
	out := make([]vitalResp, 0, len(vitals))
	for _, v := range vitals {
		out = append(out, newVitalResp(v))
	}
	return out
}

type appointmentResp struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Location      string            `json:"location,omitempty"`
	Doctor        string            `json:"doctor,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	StartsAt      response.DateTime `json:"starts_at"`
	ReminderID    string            `json:"reminder_id,omitempty"`
	CalendarEvent string            `json:"calendar_event,omitempty"`
}

func newAppointmentResp(a model.Appointment) appointmentResp {
	return appointmentResp{
		ID:            a.ID,
		Title:         a.Title,
		Location:      a.Location,
		Doctor:        a.Doctor,
		Notes:         a.Notes,
		StartsAt:      response.DateTime(a.StartsAt),
		ReminderID:    a.ReminderID,
		CalendarEvent: a.CalendarEvent,
	}
}

func newAppointmentListResp(appts []model.Appointment) []appointmentResp {
	out := make([]appointmentResp, 0, len(appts))
	for _, a := range appts {
		out = append(out, newAppointmentResp(a))
	}
	return out
}
