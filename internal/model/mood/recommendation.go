package mood

import "strings"

// Recommendations is the lifestyle bundle attached to one assessment.
type Recommendations struct {
	Outfit       []string `json:"outfit"`
	Playlist     string   `json:"playlist"`
	Workout      string   `json:"workout"`
	Food         string   `json:"food"`
	Affirmation  string   `json:"affirmation"`
	Productivity string   `json:"productivity"`
}

// Complete reports whether every field of the bundle carries a value.
func (r Recommendations) Complete() bool {
	if len(r.Outfit) == 0 {
		return false
	}
	for _, o := range r.Outfit {
		if strings.TrimSpace(o) == "" {
			return false
		}
	}
	for _, field := range []string{r.Playlist, r.Workout, r.Food, r.Affirmation, r.Productivity} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}

// Clone returns a copy that does not share the outfit slice.
func (r Recommendations) Clone() Recommendations {
	r.Outfit = append([]string(nil), r.Outfit...)
	return r
}
