package mood

import "github.com/zhouzirui/mood-mirror/backend/internal/model/mood"

type profile struct {
	energy mood.Energy
	intent mood.Intent
}

// fallbackProfiles only covers the moods the heuristic classifier emits.
// TODO: decide energy/intent for bored, stressed, romantic, confident and sad
// once the remote classifier's distribution for them is known.
var fallbackProfiles = map[mood.Mood]profile{
	mood.Happy:     {energy: mood.EnergyHigh, intent: mood.IntentUplift},
	mood.Energized: {energy: mood.EnergyHigh, intent: mood.IntentFocus},
	mood.Tired:     {energy: mood.EnergyLow, intent: mood.IntentRelax},
	mood.Calm:      {energy: mood.EnergyLow, intent: mood.IntentFocus},
	mood.Anxious:   {energy: mood.EnergyMedium, intent: mood.IntentDistract},
}

// DefaultEnergy and DefaultIntent apply when nothing better is known.
const (
	DefaultEnergy = mood.EnergyMedium
	DefaultIntent = mood.IntentDistract
)

// Profile returns the energy and intent inferred for m on the fallback path.
func Profile(m mood.Mood) (mood.Energy, mood.Intent) {
	if p, ok := fallbackProfiles[m]; ok {
		return p.energy, p.intent
	}
	return DefaultEnergy, DefaultIntent
}
