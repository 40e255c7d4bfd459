package rank

import (
	"math"

	"github.com/awaisio/rabtah/internal/domain/feed"
	"github.com/awaisio/rabtah/internal/domain/match"
	"github.com/awaisio/rabtah/internal/domain/model"
)

// Similarity factor caps.
const (
	similarCategoryPoints = 40.0
	similarLocationPoints = 30.0
	similarSkillPoints    = 30.0
)

// Popularity and trend formula weights.
const (
	popularityParticipantWeight = 2.0
	popularityImpactDivisor     = 100.0
	trendParticipantWeight      = 3.0
	trendExpectedWeight         = 1.5
)

// Recommend scores every candidate against the profile snapshot, drops
// projects with no overlap at all, and returns the best matches in
// descending score order.
func (e *Engine) Recommend(projects []model.Project, opts match.Options) []model.RecommendationScore {
	scored := make([]model.RecommendationScore, 0, len(projects))
	for _, p := range projects {
		s := match.Score(p, opts)
		if s <= 0 {
			continue
		}
		scored = append(scored, model.RecommendationScore{
			Project: p,
			Score:   s,
			Reasons: match.Reasons(p, opts),
		})
	}
	sortScored(scored)
	limit := limitOr(opts.Limit, defaultRecommendLimit)
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// Similar ranks candidates by their similarity to a reference project:
// shared category, shared location and skill overlap. The reference
// itself is excluded.
func (e *Engine) Similar(reference model.Project, candidates []model.Project, limit int) []model.Project {
	limit = limitOr(limit, defaultSimilarLimit)
	refSkills := reference.SkillUnion()

	pool := make([]model.Project, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == reference.ID {
			continue
		}
		pool = append(pool, c)
	}

	ranked := sortByScore(pool, func(c model.Project) float64 {
		return similarity(c, reference, refSkills)
	})
	return truncate(ranked, limit)
}

// Popular ranks by raw engagement. No recency filter.
func (e *Engine) Popular(projects []model.Project, limit int) []model.Project {
	limit = limitOr(limit, defaultPopularLimit)
	return truncate(sortByScore(projects, popularity), limit)
}

// Trending keeps projects submitted within the trending window and
// ranks them by engagement velocity. A submission date that cannot be
// resolved excludes the project.
func (e *Engine) Trending(projects []model.Project, limit int) []model.Project {
	limit = limitOr(limit, defaultTrendingLimit)
	cutoff := e.now().Add(-trendingWindow)

	recent := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		submitted, ok := p.SubmittedAt.Resolve()
		if !ok || submitted.Before(cutoff) {
			continue
		}
		recent = append(recent, p)
	}
	return truncate(sortByScore(recent, trend), limit)
}

// PopularInArea applies the popularity ranking to projects whose
// location loosely matches the given one.
func (e *Engine) PopularInArea(projects []model.Project, location string, limit int) []model.Project {
	limit = limitOr(limit, defaultPopularLimit)

	local := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if model.SameText(p.Location, location) || model.Matches(p.Location, location) {
			local = append(local, p)
		}
	}
	return truncate(sortByScore(local, popularity), limit)
}

// PersonalizedFeed merges the recommended, popular(-in-area) and
// trending slices in that priority order, deduplicated by project id
// with the first occurrence winning.
func (e *Engine) PersonalizedFeed(projects []model.Project, opts match.Options) []model.Project {
	limit := limitOr(opts.Limit, defaultFeedLimit)

	recommended := e.Recommend(projects, opts)
	best := make([]model.Project, len(recommended))
	for i, r := range recommended {
		best[i] = r.Project
	}

	var popular []model.Project
	if location := opts.EffectiveLocation(); location != "" {
		popular = e.PopularInArea(projects, location, feedSliceLimit)
	} else {
		popular = e.Popular(projects, feedSliceLimit)
	}

	trending := e.Trending(projects, feedSliceLimit)

	return feed.Merge(limit, best, popular, trending)
}

func similarity(candidate, reference model.Project, refSkills []string) float64 {
	score := 0.0
	if model.SameText(candidate.Category, reference.Category) {
		score += similarCategoryPoints
	}
	if model.SameText(candidate.Location, reference.Location) {
		score += similarLocationPoints
	}
	candidateSkills := candidate.SkillUnion()
	if len(candidateSkills) > 0 && len(refSkills) > 0 {
		overlap := skillOverlap(candidateSkills, refSkills)
		denom := math.Max(float64(len(candidateSkills)), float64(len(refSkills)))
		score += float64(overlap) / denom * similarSkillPoints
	}
	return score
}

func popularity(p model.Project) float64 {
	return float64(p.Participants())*popularityParticipantWeight +
		float64(p.ExpectedVolunteers) +
		float64(p.PeopleImpacted)/popularityImpactDivisor
}

func trend(p model.Project) float64 {
	return float64(p.Participants())*trendParticipantWeight +
		float64(p.ExpectedVolunteers)*trendExpectedWeight
}
