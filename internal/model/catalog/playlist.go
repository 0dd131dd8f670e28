package catalog

// Playlist is a curated Spotify playlist.
type Playlist struct {
	ID          string   `json:"id"`
	SpotifyID   string   `json:"spotifyId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Moods       []string `json:"moods"`
}

func (p Playlist) MoodTags() []string { return p.Moods }

// DefaultPlaylistIDs are the broadly appealing playlists served when no
// playlist is tagged with the requested mood.
var DefaultPlaylistIDs = []string{"mood-booster", "peaceful-piano", "lofi-beats"}

// SeedPlaylists returns the curated playlist list.
func SeedPlaylists() []Playlist {
	return []Playlist{
		{
			ID:          "mood-booster",
			SpotifyID:   "37i9dQZF1DX3rxVfyb1Uw9",
			Title:       "Mood Booster",
			Description: "Get happy with today's dose of feel-good songs!",
			Moods:       []string{"happy", "energized", "uplift"},
		},
		{
			ID:          "confidence-boost",
			SpotifyID:   "37i9dQZF1DX4fpCWaHOned",
			Title:       "Confidence Boost",
			Description: "You're on top of the world.",
			Moods:       []string{"confident", "happy", "focus"},
		},
		{
			ID:          "peaceful-piano",
			SpotifyID:   "37i9dQZF1DWZqd5JICZI0u",
			Title:       "Peaceful Piano",
			Description: "Relax and indulge with beautiful piano pieces.",
			Moods:       []string{"tired", "calm", "relax", "sad", "anxious"},
		},
		{
			ID:          "sleep-lofi",
			SpotifyID:   "37i9dQZF1DWWQRwui0ExPn",
			Title:       "Lo-Fi Sleep",
			Description: "Beats to relax and fall asleep to.",
			Moods:       []string{"tired", "relax", "bored"},
		},
		{
			ID:          "beast-mode",
			SpotifyID:   "37i9dQZF1DX76Wlfdnj7AP",
			Title:       "Beast Mode",
			Description: "Get pumped and ready for action.",
			Moods:       []string{"energized", "focus", "stressed"},
		},
		{
			ID:          "deep-focus",
			SpotifyID:   "37i9dQZF1DWZeKCadgRdKQ",
			Title:       "Deep Focus",
			Description: "Keep calm and focus with this ambient music.",
			Moods:       []string{"focus", "calm", "creative"},
		},
		{
			ID:          "stress-relief",
			SpotifyID:   "37i9dQZF1DWXE37t2klde0",
			Title:       "Stress Relief",
			Description: "Calm your mind and soothe your soul.",
			Moods:       []string{"anxious", "stressed", "tired"},
		},
		{
			ID:          "lofi-beats",
			SpotifyID:   "37i9dQZF1DWV90KC6S8e1n",
			Title:       "Lofi Beats",
			Description: "Beats to relax/study to.",
			Moods:       []string{"anxious", "bored", "calm", "focus"},
		},
	}
}
