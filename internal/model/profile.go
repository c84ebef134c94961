package model

// AIMode is the user's preferred assistant mode.
type AIMode string

const (
	AIModeOnDevice AIMode = "on_device"
	AIModeCloud    AIMode = "cloud"
	AIModeHybrid   AIMode = "hybrid"
)

// Valid reports whether the mode is one of the three known modes.
func (m AIMode) Valid() bool {
	switch m {
	case AIModeOnDevice, AIModeCloud, AIModeHybrid:
		return true
	}
	return false
}

// CareProfile is the stored profile of the care recipient.
type CareProfile struct {
	UserID     string
	Name       string
	Age        int
	Conditions []string // e.g. "hypertension", "type 2 diabetes"
	Allergies  []string
	AIMode     AIMode
}

// ActiveMedication is a medication entry as seen by the assistant:
// name plus dose, nothing else.
type ActiveMedication struct {
	Name   string
	Dosage string
}

// ProfileSnapshot is the read-only view handed to the assistant per query.
// The assistant never mutates it. A nil snapshot is valid everywhere and
// means "use defaults".
type ProfileSnapshot struct {
	Name        string
	Age         int
	Conditions  []string
	Allergies   []string
	Medications []ActiveMedication
	AIMode      AIMode
}

// FirstName returns the first whitespace-separated token of the profile
// name, or empty when unknown.
func (p *ProfileSnapshot) FirstName() string {
	if p == nil {
		return ""
	}
	for i := 0; i < len(p.Name); i++ {
		if p.Name[i] == ' ' {
			return p.Name[:i]
		}
	}
	return p.Name
}

// Mode returns the preferred AI mode, or empty when no profile or no
// explicit preference is present. Callers fall back to their own default.
func (p *ProfileSnapshot) Mode() AIMode {
	if p == nil {
		return ""
	}
	return p.AIMode
}
