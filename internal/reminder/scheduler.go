// Package reminder schedules time-based notifications for medications
// and appointments. In-process only: reminders do not survive a restart,
// the caller reschedules from storage at boot.
package reminder

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	pkgLog "care-companion/pkg/log"
)

// Service is the scheduling interface consumed by the care-record domain.
type Service interface {
	Schedule(ctx context.Context, r Reminder) (string, error)
	Cancel(ctx context.Context, id string) error
}

var (
	ErrPastReminder = errors.New("reminder time is in the past")
	ErrNotScheduled = errors.New("reminder is not scheduled")
)

// Scheduler fires reminders with time.AfterFunc and a mutex-guarded
// registry of pending timers.
type Scheduler struct {
	l        pkgLog.Logger
	notifier Notifier

	mu     sync.Mutex
	timers map[string]*time.Timer
}

var _ Service = (*Scheduler)(nil)

// New creates a Scheduler. A nil notifier only logs due reminders.
func New(l pkgLog.Logger, notifier Notifier) *Scheduler {
	return &Scheduler{
		l:        l,
		notifier: notifier,
		timers:   make(map[string]*time.Timer),
	}
}

// Schedule registers a reminder and returns its ID. Reminders in the
// past are rejected rather than fired immediately.
func (s *Scheduler) Schedule(ctx context.Context, r Reminder) (string, error) {
	delay := time.Until(r.At)
	if delay <= 0 {
		return "", ErrPastReminder
	}

	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.timers[r.ID]; ok {
		old.Stop()
	}
	s.timers[r.ID] = time.AfterFunc(delay, func() { s.fire(r) })

	s.l.Infof(ctx, "reminder.Schedule: %s %s at %s", r.Kind, r.ID, r.At.Format(time.RFC3339))
	return r.ID, nil
}

// Cancel stops a pending reminder.
func (s *Scheduler) Cancel(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.timers[id]
	if !ok {
		return ErrNotScheduled
	}
	t.Stop()
	delete(s.timers, id)

	s.l.Infof(ctx, "reminder.Cancel: %s", id)
	return nil
}

// Close stops every pending timer.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

func (s *Scheduler) fire(r Reminder) {
	s.mu.Lock()
	delete(s.timers, r.ID)
	s.mu.Unlock()

	ctx := context.Background()
	s.l.Infof(ctx, "reminder.fire: %s for user=%s: %s", r.Kind, r.UserID, r.Message)

	if s.notifier != nil {
		s.notifier(r)
	}
}
