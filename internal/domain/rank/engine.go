// Package rank implements the ranking strategies over a candidate
// list: recommended, similar, popular, trending, popular-in-area and
// the personalized feed. Every strategy is a pure function of its
// arguments; the only piece of ambient state is the clock, which is
// injectable so the trending window can be pinned in tests.
package rank

import (
	"sort"
	"time"

	"github.com/awaisio/rabtah/internal/domain/model"
)

// Default result limits per strategy.
const (
	defaultRecommendLimit = 10
	defaultSimilarLimit   = 5
	defaultPopularLimit   = 10
	defaultTrendingLimit  = 10
	defaultFeedLimit      = 20

	// feedSliceLimit bounds the popular and trending slices mixed into
	// the personalized feed.
	feedSliceLimit = 5

	// trendingWindow is how far back a submission may lie to count as
	// trending, bounds inclusive.
	trendingWindow = 7 * 24 * time.Hour
)

// Engine evaluates ranking strategies. The zero-cost construction is
// deliberate: an Engine holds no mutable state and any number of
// concurrent calls are safe.
type Engine struct {
	now func() time.Time
}

// New creates an Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// limitOr falls back to def when the caller left the limit unset.
func limitOr(limit, def int) int {
	if limit > 0 {
		return limit
	}
	return def
}

// sortByScore orders projects descending by the given score function,
// keeping input order among ties.
func sortByScore(projects []model.Project, score func(model.Project) float64) []model.Project {
	out := make([]model.Project, len(projects))
	copy(out, projects)
	sort.SliceStable(out, func(i, j int) bool {
		return score(out[i]) > score(out[j])
	})
	return out
}

// sortScored orders recommendation results descending by score,
// keeping input order among ties.
func sortScored(scored []model.RecommendationScore) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
}

func truncate(projects []model.Project, limit int) []model.Project {
	if len(projects) > limit {
		return projects[:limit]
	}
	return projects
}

// skillOverlap counts entries of a that loosely match at least one
// entry of b.
func skillOverlap(a, b []string) int {
	count := 0
	for _, skill := range a {
		if model.MatchesAny(skill, b) {
			count++
		}
	}
	return count
}
