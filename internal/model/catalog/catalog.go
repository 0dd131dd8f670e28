package catalog

import (
	"slices"
	"sort"
	"strings"

	"github.com/zhouzirui/mood-mirror/backend/internal/random"
)

// Tagged is implemented by every catalog item.
type Tagged interface {
	MoodTags() []string
}

// Catalog is an immutable list of curated items of one kind.
type Catalog[T Tagged] struct {
	items []T
}

// New returns a Catalog holding a private copy of items.
func New[T Tagged](items []T) *Catalog[T] {
	return &Catalog[T]{items: slices.Clone(items)}
}

// List returns a copy of every item in catalog order.
func (c *Catalog[T]) List() []T {
	return slices.Clone(c.items)
}

// Len returns the number of items.
func (c *Catalog[T]) Len() int {
	return len(c.items)
}

// FilterByMood returns, in catalog order, the items tagged with mood.
func (c *Catalog[T]) FilterByMood(mood string) []T {
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if HasTag(item, mood) {
			out = append(out, item)
		}
	}
	return out
}

// Scorer ranks a single item for a query. jitter is uniform in [0, 1).
type Scorer[T Tagged] func(item T, q Query, jitter float64) float64

// Rank scores every item, sorts descending and keeps the first limit.
func (c *Catalog[T]) Rank(q Query, score Scorer[T], rnd random.Source, limit int) []T {
	type scored struct {
		item  T
		score float64
	}

	ranked := make([]scored, len(c.items))
	for i, item := range c.items {
		ranked[i] = scored{item: item, score: score(item, q, rnd.Float64())}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit > len(ranked) {
		limit = len(ranked)
	}
	out := make([]T, 0, limit)
	for _, r := range ranked[:limit] {
		out = append(out, r.item)
	}
	return out
}

// Pick filters by mood, shuffles the matches and keeps up to limit. When
// nothing matches, fallback decides what to return.
func (c *Catalog[T]) Pick(mood string, rnd random.Source, limit int, fallback func() []T) []T {
	matched := c.FilterByMood(mood)
	if len(matched) == 0 {
		return fallback()
	}
	rnd.Shuffle(len(matched), func(i, j int) {
		matched[i], matched[j] = matched[j], matched[i]
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// Sample returns n distinct random items.
func (c *Catalog[T]) Sample(rnd random.Source, n int) []T {
	all := c.List()
	rnd.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}

// HasTag reports whether item is tagged with mood, ignoring case.
func HasTag[T Tagged](item T, mood string) bool {
	mood = strings.TrimSpace(mood)
	if mood == "" {
		return false
	}
	for _, tag := range item.MoodTags() {
		if strings.EqualFold(tag, mood) {
			return true
		}
	}
	return false
}
