package reminder

import "time"

// Kind distinguishes what a reminder is for.
type Kind string

const (
	KindMedication  Kind = "medication"
	KindAppointment Kind = "appointment"
)

// Reminder is one scheduled notification.
type Reminder struct {
	ID      string
	UserID  string
	Kind    Kind
	RefID   string // medication or appointment ID
	Message string
	At      time.Time
}

// Notifier delivers a due reminder. The scheduler calls it from its own
// goroutine once per reminder.
type Notifier func(r Reminder)
