package catalog

import (
	"slices"

	"github.com/zhouzirui/mood-mirror/backend/internal/model/mood"
	"github.com/zhouzirui/mood-mirror/backend/internal/random"
)

const (
	maxGames          = 5
	maxOutfits        = 5
	maxPlaylists      = 4
	fallbackOutfitCnt = 3
)

// Query is the resolved assessment a lookup is ranked against. Intent does
// not contribute to any score.
type Query struct {
	Mood   mood.Mood
	Energy mood.Energy
	Intent mood.Intent
}

// Recommender exposes the three curated catalogs for HTTP handlers and the
// mood orchestrator. It never mutates catalog data.
type Recommender struct {
	games     *Catalog[Game]
	outfits   *Catalog[Outfit]
	playlists *Catalog[Playlist]
	rnd       random.Source
}

// NewRecommender returns a Recommender over the supplied items.
func NewRecommender(games []Game, outfits []Outfit, playlists []Playlist, rnd random.Source) *Recommender {
	return &Recommender{
		games:     New(games),
		outfits:   New(outfits),
		playlists: New(playlists),
		rnd:       rnd,
	}
}

// NewSeededRecommender returns a Recommender over the curated seed data.
func NewSeededRecommender(rnd random.Source) *Recommender {
	return NewRecommender(SeedGames(), SeedOutfits(), SeedPlaylists(), rnd)
}

// Games returns the top five games for q.
func (r *Recommender) Games(q Query) []Game {
	return r.games.Rank(q, ScoreGame, r.rnd, maxGames)
}

// Outfits returns up to five outfits tagged with m, or three random ones.
func (r *Recommender) Outfits(m mood.Mood) []Outfit {
	return r.outfits.Pick(string(m), r.rnd, maxOutfits, func() []Outfit {
		return r.outfits.Sample(r.rnd, fallbackOutfitCnt)
	})
}

// Playlists returns up to four playlists tagged with m, or the default set.
func (r *Recommender) Playlists(m mood.Mood) []Playlist {
	return r.playlists.Pick(string(m), r.rnd, maxPlaylists, r.defaultPlaylists)
}

func (r *Recommender) defaultPlaylists() []Playlist {
	out := make([]Playlist, 0, len(DefaultPlaylistIDs))
	for _, p := range r.playlists.List() {
		if slices.Contains(DefaultPlaylistIDs, p.ID) {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return r.playlists.Sample(r.rnd, len(DefaultPlaylistIDs))
	}
	return out
}

// ListGames returns the full game catalog.
func (r *Recommender) ListGames() []Game { return r.games.List() }

// ListOutfits returns the full outfit catalog.
func (r *Recommender) ListOutfits() []Outfit { return r.outfits.List() }

// ListPlaylists returns the full playlist catalog.
func (r *Recommender) ListPlaylists() []Playlist { return r.playlists.List() }
