package mood

import "github.com/zhouzirui/mood-mirror/backend/internal/model/mood"

var staticRecommendations = map[mood.Mood]mood.Recommendations{
	mood.Tired: {
		Outfit:       []string{"Comfy Hoodie", "Soft Joggers"},
		Playlist:     "37i9dQZF1DWZqd5JICZI0u", // Peaceful Piano
		Workout:      "Restorative Yoga",
		Food:         "Warm Tea & Soup",
		Affirmation:  "Rest is productive.",
		Productivity: "Low-focus tasks",
	},
	mood.Happy: {
		Outfit:       []string{"Bright Colors", "Casual Jeans"},
		Playlist:     "37i9dQZF1DXdPec7aLTmlC", // Happy Hits
		Workout:      "Dance Cardio",
		Food:         "Fresh Fruit Salad",
		Affirmation:  "Spread your joy.",
		Productivity: "Creative brainstorming",
	},
	mood.Anxious: {
		Outfit:       []string{"Loose Layers", "Neutral Tones"},
		Playlist:     "37i9dQZF1DWV90KC6S8e1n", // Lo-Fi Beats
		Workout:      "Walking Meditation",
		Food:         "Comforting Pasta",
		Affirmation:  "One step at a time.",
		Productivity: "Structured list-making",
	},
	mood.Energized: {
		Outfit:       []string{"Athleisure", "Statement Sneakers"},
		Playlist:     "37i9dQZF1DX76Wlfdnj7AP", // Beast Mode
		Workout:      "HIIT Session",
		Food:         "Protein Bowl",
		Affirmation:  "Conquer the day.",
		Productivity: "Deep work sprints",
	},
	mood.Calm: {
		Outfit:       []string{"Minimalist Basic", "Earth Tones"},
		Playlist:     "37i9dQZF1DWZqd5JICZI0u", // Peaceful Piano
		Workout:      "Pilates",
		Food:         "Balanced Grain Bowl",
		Affirmation:  "Peace comes from within.",
		Productivity: "Steady workflow",
	},
}

// Recommend returns the fixed bundle for m, or the calm bundle when m has no
// entry of its own.
func Recommend(m mood.Mood) mood.Recommendations {
	if rec, ok := staticRecommendations[m]; ok {
		return rec.Clone()
	}
	return staticRecommendations[mood.Calm].Clone()
}
