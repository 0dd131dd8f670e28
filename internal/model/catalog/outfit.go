package catalog

// Outfit is an outfit inspiration card.
type Outfit struct {
	ID          string   `json:"id"`
	ImageURL    string   `json:"imageUrl"`
	Style       string   `json:"style"`
	Description string   `json:"description"`
	Moods       []string `json:"moods"`
}

func (o Outfit) MoodTags() []string { return o.Moods }

// SeedOutfits returns the curated outfit list.
func SeedOutfits() []Outfit {
	return []Outfit{
		{
			ID:          "happy-bright",
			ImageURL:    "https://images.unsplash.com/photo-1523381210434-271e8be1f52b?w=800&auto=format&fit=crop&q=60",
			Style:       "Casual Chic",
			Description: "Bright colors and comfortable fabrics to match your radiant vibe.",
			Moods:       []string{"happy", "energized", "confident"},
		},
		{
			ID:          "happy-summer",
			ImageURL:    "https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?w=800&auto=format&fit=crop&q=60",
			Style:       "Summer Vibes",
			Description: "Light, airy, and full of sunshine.",
			Moods:       []string{"happy", "relax", "calm"},
		},
		{
			ID:          "cozy-sweats",
			ImageURL:    "https://images.unsplash.com/photo-1515966097209-ec48f3216298?w=800&auto=format&fit=crop&q=60",
			Style:       "Maximum Comfort",
			Description: "Soft textures and loose fits for when you need to recharge.",
			Moods:       []string{"tired", "bored", "calm", "sad"},
		},
		{
			ID:          "lounge-minimal",
			ImageURL:    "https://images.unsplash.com/photo-1434389677669-e08b4cac3105?w=800&auto=format&fit=crop&q=60",
			Style:       "Minimalist Lounge",
			Description: "Simple lines and neutral tones for a peaceful mind.",
			Moods:       []string{"tired", "calm", "anxious"},
		},
		{
			ID:          "sporty-active",
			ImageURL:    "https://images.unsplash.com/photo-1483721310020-03333e577078?w=800&auto=format&fit=crop&q=60",
			Style:       "Active Wear",
			Description: "Ready for action. Functional and stylish.",
			Moods:       []string{"energized", "focus", "happy"},
		},
		{
			ID:          "sharp-focus",
			ImageURL:    "https://images.unsplash.com/photo-1594938298603-c8148c4dae35?w=800&auto=format&fit=crop&q=60",
			Style:       "Sharp & Smart",
			Description: "Clean cuts that say 'I mean business'.",
			Moods:       []string{"focus", "confident", "stressed"},
		},
		{
			ID:          "grounded-earth",
			ImageURL:    "https://images.unsplash.com/photo-1485968579580-b6d095142e6e?w=800&auto=format&fit=crop&q=60",
			Style:       "Earthy & Grounded",
			Description: "Connect with nature through textures and tones.",
			Moods:       []string{"anxious", "calm", "stressed"},
		},
		{
			ID:          "oversized-comfort",
			ImageURL:    "https://images.unsplash.com/photo-1574655452496-e24dc5c90b6c?w=800&auto=format&fit=crop&q=60",
			Style:       "Safe Layers",
			Description: "Layers to help you feel secure and wrapped up.",
			Moods:       []string{"anxious", "sad", "tired"},
		},
	}
}
