package catalog

import "github.com/zhouzirui/mood-mirror/backend/internal/model/mood"

// Game is an embeddable browser game.
type Game struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	URL         string      `json:"url"`
	Description string      `json:"description,omitempty"`
	Thumbnail   string      `json:"thumbnail,omitempty"`
	Energy      mood.Energy `json:"energy"`
	Moods       []string    `json:"moods"`
}

func (g Game) MoodTags() []string { return g.Moods }

// ScoreGame adds 5 for a mood tag match, 3 for an exact energy match or 1
// for an adjacent tier, plus jitter.
func ScoreGame(g Game, q Query, jitter float64) float64 {
	score := 0.0
	if HasTag(g, string(q.Mood)) {
		score += 5
	}
	switch {
	case g.Energy == q.Energy:
		score += 3
	case q.Energy.Adjacent(g.Energy):
		score += 1
	}
	return score + jitter
}

// SeedGames returns the curated game list.
func SeedGames() []Game {
	return []Game{
		{
			ID:          "2048",
			Title:       "2048",
			URL:         "https://play2048.co/",
			Description: "Join the numbers and get to the 2048 tile! A calming puzzle game.",
			Thumbnail:   "https://upload.wikimedia.org/wikipedia/commons/thumb/1/18/2048_logo.svg/1200px-2048_logo.svg.png",
			Energy:      mood.EnergyLow,
			Moods:       []string{"anxious", "tired", "bored", "calm"},
		},
		{
			ID:          "hextris",
			Title:       "Hextris",
			URL:         "https://hextris.io/",
			Description: "An addictive puzzle game inspired by Tetris.",
			Energy:      mood.EnergyMedium,
			Moods:       []string{"bored", "anxious", "focus"},
		},
		{
			ID:          "solitaire",
			Title:       "Solitaire",
			URL:         "https://www.google.com/logos/fnbx/solitaire/standalone.html",
			Description: "Classic Solitaire. Perfect for organizing your thoughts.",
			Energy:      mood.EnergyLow,
			Moods:       []string{"tired", "bored", "sad"},
		},
		{
			ID:          "crossy-road",
			Title:       "Crossy Road Web",
			URL:         "https://poki.com/en/g/crossy-road",
			Description: "Hop across the road without getting squashed!",
			Energy:      mood.EnergyHigh,
			Moods:       []string{"happy", "energized", "romance"},
		},
		{
			ID:          "dino-run",
			Title:       "Dino Run",
			URL:         "https://chromedino.com/",
			Description: "Run, Dino, Run! A simple reflex game.",
			Energy:      mood.EnergyMedium,
			Moods:       []string{"energized", "happy", "distract"},
		},
		{
			ID:          "sudoku",
			Title:       "Sudoku",
			URL:         "https://sudoku.com/expert/",
			Description: "Focus your mind with numbers.",
			Energy:      mood.EnergyMedium,
			Moods:       []string{"stressed", "focus", "anxious"},
		},
		{
			ID:          "quick-draw",
			Title:       "Quick, Draw!",
			URL:         "https://quickdraw.withgoogle.com/",
			Description: "Can a neural network recognize your doodling?",
			Energy:      mood.EnergyMedium,
			Moods:       []string{"happy", "creative", "bored"},
		},
		{
			ID:          "little-alchemy",
			Title:       "Little Alchemy 2",
			URL:         "https://littlealchemy2.com/",
			Description: "Mix elements to create the world.",
			Energy:      mood.EnergyLow,
			Moods:       []string{"calm", "curious", "bored"},
		},
		{
			ID:          "wordle-unlimited",
			Title:       "Wordle Unlimited",
			URL:         "https://wordleunlimited.org/",
			Description: "Guess the hidden word in 6 tries.",
			Energy:      mood.EnergyMedium,
			Moods:       []string{"focus", "calm", "smart"},
		},
		{
			ID:          "slither",
			Title:       "Slither.io",
			URL:         "https://slither.io/",
			Description: "Grow your snake and avoid others.",
			Energy:      mood.EnergyMedium,
			Moods:       []string{"bored", "anxious", "distract"},
		},
		{
			ID:          "cookie-clicker",
			Title:       "Cookie Clicker",
			URL:         "https://orteil.dashnet.org/cookieclicker/",
			Description: "Bake billions of cookies.",
			Energy:      mood.EnergyLow,
			Moods:       []string{"tired", "bored", "relax"},
		},
		{
			ID:          "space-waves",
			Title:       "Space Waves",
			URL:         "https://poki.com/en/g/space-waves",
			Description: "Control the wave and avoid obstacles.",
			Energy:      mood.EnergyHigh,
			Moods:       []string{"energized", "stressed", "focus"},
		},
	}
}
