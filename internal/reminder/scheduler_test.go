package reminder_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"care-companion/internal/reminder"
	pkgLog "care-companion/pkg/log"
)

func TestScheduler(t *testing.T) {
	ctx := context.Background()

	t.Run("Fires And Notifies", func(t *testing.T) {
		fired := make(chan reminder.Reminder, 1)
		s := reminder.New(pkgLog.NewNop(), func(r reminder.Reminder) { fired <- r })
		defer s.Close()

		id, err := s.Schedule(ctx, reminder.Reminder{
			UserID:  "user-1",
			Kind:    reminder.KindMedication,
			Message: "Time for Lisinopril",
			At:      time.Now().Add(20 * time.Millisecond),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id == "" {
			t.Fatalf("expected generated reminder id")
		}

		select {
		case r := <-fired:
			if r.Message != "Time for Lisinopril" {
				t.Errorf("got %+v", r)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("reminder never fired")
		}
	})

	t.Run("Rejects Past Reminders", func(t *testing.T) {
		s := reminder.New(pkgLog.NewNop(), nil)
		defer s.Close()

		_, err := s.Schedule(ctx, reminder.Reminder{At: time.Now().Add(-time.Minute)})
		if !errors.Is(err, reminder.ErrPastReminder) {
			t.Errorf("expected ErrPastReminder, got %v", err)
		}
	})

	t.Run("Cancel Prevents Firing", func(t *testing.T) {
		fired := make(chan reminder.Reminder, 1)
		s := reminder.New(pkgLog.NewNop(), func(r reminder.Reminder) { fired <- r })
		defer s.Close()

		id, err := s.Schedule(ctx, reminder.Reminder{
			Kind: reminder.KindAppointment,
			At:   time.Now().Add(50 * time.Millisecond),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := s.Cancel(ctx, id); err != nil {
			t.Fatalf("cancel failed: %v", err)
		}

		select {
		case <-fired:
			t.Errorf("cancelled reminder fired anyway")
		case <-time.After(200 * time.Millisecond):
		}
	})

	t.Run("Cancel Unknown ID", func(t *testing.T) {
		s := reminder.New(pkgLog.NewNop(), nil)
		defer s.Close()

		if err := s.Cancel(ctx, "nope"); !errors.Is(err, reminder.ErrNotScheduled) {
			t.Errorf("expected ErrNotScheduled, got %v", err)
		}
	})
}
