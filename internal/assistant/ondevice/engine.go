// Package ondevice is the local language capability: a template
// responder keyed on the intent classifier, a profile summarizer, and a
// greeting personalizer. Everything here is total — no call can fail.
package ondevice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"care-companion/internal/assistant"
	"care-companion/internal/assistant/classifier"
	"care-companion/internal/model"
)

// Engine answers queries locally from templates and the profile.
type Engine struct {
	now func() time.Time
}

var _ assistant.OnDeviceEngine = (*Engine)(nil)

// New creates the on-device engine.
func New() *Engine {
	return &Engine{now: time.Now}
}

// NewWithClock creates an engine with a fixed clock. Intended for tests.
func NewWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Process returns a canned reply for the query's intent category. The
// profile context, when present, is appended for health-analysis
// queries so the reply reflects what the device knows.
func (e *Engine) Process(ctx context.Context, query string, profileContext string) string {
	switch classifier.Classify(query) {
	case classifier.CategoryReminder:
		return ReplyReminder
	case classifier.CategoryMedicalAdvice:
		return ReplyMedicalAdvice
	case classifier.CategoryEmotionalSupport:
		return ReplyEmotionalSupport
	case classifier.CategoryHealthAnalysis:
		if profileContext != "" {
			return ReplyHealthAnalysis + " " + profileContext
		}
		return ReplyHealthAnalysis
	case classifier.CategoryComplex:
		return ReplyComplex
	default:
		return ReplySimple
	}
}

// BuildContext summarizes the profile into a short paragraph:
// conditions, allergies, and active medications. A nil profile yields
// the empty string.
func (e *Engine) BuildContext(profile *model.ProfileSnapshot) string {
	if profile == nil {
		return ""
	}

	var b strings.Builder

	if profile.Name != "" {
		fmt.Fprintf(&b, "%s, %d years old.", profile.Name, profile.Age)
	}

	if len(profile.Conditions) > 0 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "Medical conditions: %s.", strings.Join(profile.Conditions, ", "))
	}

	if len(profile.Allergies) > 0 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "Allergies: %s.", strings.Join(profile.Allergies, ", "))
	}

	if len(profile.Medications) > 0 {
		meds := make([]string, len(profile.Medications))
		for i, m := range profile.Medications {
			meds[i] = fmt.Sprintf("%s (%s)", m.Name, m.Dosage)
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "Active medications: %s.", strings.Join(meds, ", "))
	}

	return b.String()
}

// Personalize prepends a time-of-day greeting and the user's first name.
// With no profile (or no name) the greeting stays generic.
func (e *Engine) Personalize(text string, profile *model.ProfileSnapshot) string {
	greeting := e.greeting()

	if name := profile.FirstName(); name != "" {
		return fmt.Sprintf("%s, %s. %s", greeting, name, text)
	}
	return fmt.Sprintf("%s. %s", greeting, text)
}

func (e *Engine) greeting() string {
	switch hour := e.now().Hour(); {
	case hour < 12:
		return GreetingMorning
	case hour < 18:
		return GreetingAfternoon
	default:
		return GreetingEvening
	}
}
