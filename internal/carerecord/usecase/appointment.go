package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"care-companion/internal/carerecord"
	"care-companion/internal/carerecord/repository"
	"care-companion/internal/model"
	"care-companion/internal/reminder"
	"care-companion/pkg/gcalendar"
)

const defaultAppointmentLength = 30 * time.Minute

// CreateAppointment stores an appointment, optionally schedules a
// reminder before it and syncs it to the shared Google Calendar.
// Calendar sync is best-effort: a sync failure is logged, the
// appointment is still saved.
func (uc *implUseCase) CreateAppointment(ctx context.Context, sc model.Scope, input carerecord.CreateAppointmentInput) (model.Appointment, error) {
	if sc.UserID == "" {
		return model.Appointment{}, carerecord.ErrMissingUserID
	}
	if input.Title == "" {
		return model.Appointment{}, carerecord.ErrMissingName
	}
	if !input.StartsAt.After(time.Now()) {
		return model.Appointment{}, carerecord.ErrPastAppointment
	}

	a := model.Appointment{
		ID:        uuid.NewString(),
		UserID:    sc.UserID,
		Title:     input.Title,
		Location:  input.Location,
		Doctor:    input.Doctor,
		Notes:     input.Notes,
		StartsAt:  input.StartsAt,
		CreatedAt: time.Now(),
	}

	if input.RemindBefore > 0 {
		at := input.StartsAt.Add(-input.RemindBefore)
		id, err := uc.reminders.Schedule(ctx, reminder.Reminder{
			UserID:  sc.UserID,
			Kind:    reminder.KindAppointment,
			RefID:   a.ID,
			Message: fmt.Sprintf("Upcoming appointment: %s", a.Title),
			At:      at,
		})
		if err != nil {
			uc.l.Warnf(ctx, "carerecord.CreateAppointment: reminder scheduling failed for %s: %v", a.ID, err)
		} else {
			a.ReminderID = id
		}
	}

	if input.SyncCalendar && uc.calendar != nil {
		event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.calendarID,
			Summary:     a.Title,
			Description: appointmentDescription(a),
			Location:    a.Location,
			StartTime:   a.StartsAt,
			EndTime:     a.StartsAt.Add(defaultAppointmentLength),
			Timezone:    uc.timezone,
		})
		if err != nil {
			uc.l.Warnf(ctx, "carerecord.CreateAppointment: calendar sync failed for %s: %v", a.ID, err)
		} else {
			a.CalendarEvent = event.ID
		}
	}

	if err := uc.repo.CreateAppointment(ctx, a); err != nil {
		// Roll back the side effects: a reminder or calendar event for an
		// appointment that was never saved must not outlive this call.
		if a.ReminderID != "" {
			if cerr := uc.reminders.Cancel(ctx, a.ReminderID); cerr != nil {
				uc.l.Warnf(ctx, "carerecord.CreateAppointment: reminder rollback failed for %s: %v", a.ReminderID, cerr)
			}
		}
		if a.CalendarEvent != "" && uc.calendar != nil {
			if derr := uc.calendar.DeleteEvent(ctx, uc.calendarID, a.CalendarEvent); derr != nil {
				uc.l.Warnf(ctx, "carerecord.CreateAppointment: calendar rollback failed for %s: %v", a.CalendarEvent, derr)
			}
		}
		return model.Appointment{}, fmt.Errorf("failed to create appointment: %w", err)
	}

	uc.l.Infof(ctx, "carerecord.CreateAppointment: user=%s id=%s at=%s", sc.UserID, a.ID, a.StartsAt.Format(time.RFC3339))
	return a, nil
}

// ListAppointments returns the user's appointments soonest first.
func (uc *implUseCase) ListAppointments(ctx context.Context, sc model.Scope) ([]model.Appointment, error) {
	if sc.UserID == "" {
		return nil, carerecord.ErrMissingUserID
	}

	appts, err := uc.repo.ListAppointments(ctx, sc.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

// DeleteAppointment removes an appointment, cancels its pending
// reminder and deletes the synced calendar event when present.
func (uc *implUseCase) DeleteAppointment(ctx context.Context, sc model.Scope, id string) error {
	if sc.UserID == "" {
		return carerecord.ErrMissingUserID
	}

	a, err := uc.repo.GetAppointment(ctx, sc.UserID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return carerecord.ErrAppointmentNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get appointment: %w", err)
	}

	if a.ReminderID != "" {
		if err := uc.reminders.Cancel(ctx, a.ReminderID); err != nil && !errors.Is(err, reminder.ErrNotScheduled) {
			uc.l.Warnf(ctx, "carerecord.DeleteAppointment: reminder cancel failed for %s: %v", a.ReminderID, err)
		}
	}

	if a.CalendarEvent != "" && uc.calendar != nil {
		if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, a.CalendarEvent); err != nil {
			uc.l.Warnf(ctx, "carerecord.DeleteAppointment: calendar event delete failed for %s: %v", a.CalendarEvent, err)
		}
	}

	if err := uc.repo.DeleteAppointment(ctx, sc.UserID, id); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	uc.l.Infof(ctx, "carerecord.DeleteAppointment: user=%s id=%s", sc.UserID, id)
	return nil
}

func appointmentDescription(a model.Appointment) string {
	desc := a.Notes
	if a.Doctor != "" {
		if desc != "" {
			desc = fmt.Sprintf("Doctor: %s\n%s", a.Doctor, desc)
		} else {
			desc = fmt.Sprintf("Doctor: %s", a.Doctor)
		}
	}
	return desc
}
