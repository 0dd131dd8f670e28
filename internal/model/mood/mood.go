package mood

import (
	"math"
	"strings"
)

// Mood is the closed vocabulary shared by the classifiers, the static mapper
// and the catalogs.
type Mood string

const (
	Calm      Mood = "calm"
	Energized Mood = "energized"
	Anxious   Mood = "anxious"
	Happy     Mood = "happy"
	Tired     Mood = "tired"
	Bored     Mood = "bored"
	Stressed  Mood = "stressed"
	Romantic  Mood = "romantic"
	Confident Mood = "confident"
	Sad       Mood = "sad"
	Neutral   Mood = "neutral"
)

// Vocabulary lists every mood the service can emit, in prompt order.
var Vocabulary = []Mood{
	Calm, Energized, Anxious, Happy, Tired, Bored, Stressed, Romantic, Confident, Sad, Neutral,
}

// Parse normalises raw into a known mood.
func Parse(raw string) (Mood, bool) {
	normalized := Mood(strings.ToLower(strings.TrimSpace(raw)))
	for _, m := range Vocabulary {
		if m == normalized {
			return m, true
		}
	}
	return "", false
}

func (m Mood) String() string { return string(m) }

// Energy is the activation level attached to an assessment.
type Energy string

const (
	EnergyLow    Energy = "low"
	EnergyMedium Energy = "medium"
	EnergyHigh   Energy = "high"
)

// Valid reports whether e is one of the three tiers.
func (e Energy) Valid() bool {
	switch e {
	case EnergyLow, EnergyMedium, EnergyHigh:
		return true
	}
	return false
}

// Adjacent reports whether e and other are exactly one tier apart.
// low and high are not adjacent.
func (e Energy) Adjacent(other Energy) bool {
	switch e {
	case EnergyMedium:
		return other == EnergyLow || other == EnergyHigh
	case EnergyLow, EnergyHigh:
		return other == EnergyMedium
	}
	return false
}

// Intent describes what the user most likely wants out of the session.
type Intent string

const (
	IntentRelax    Intent = "relax"
	IntentDistract Intent = "distract"
	IntentFocus    Intent = "focus"
	IntentUplift   Intent = "uplift"
	IntentExpress  Intent = "express"
)

// Valid reports whether i is a known intent.
func (i Intent) Valid() bool {
	switch i {
	case IntentRelax, IntentDistract, IntentFocus, IntentUplift, IntentExpress:
		return true
	}
	return false
}

// Method is how the user checked in.
type Method string

const (
	MethodFace Method = "face"
	MethodSelf Method = "self"
)

// Valid reports whether m is face or self.
func (m Method) Valid() bool {
	return m == MethodFace || m == MethodSelf
}

// Assessment is the immutable output of a classification.
type Assessment struct {
	Mood       Mood    `json:"mood"`
	Energy     Energy  `json:"energy,omitempty"`
	Intent     Intent  `json:"intent,omitempty"`
	Confidence float64 `json:"confidence"`
}

// ClampConfidence bounds c to [0, 1].
func ClampConfidence(c float64) float64 {
	if math.IsNaN(c) || c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
