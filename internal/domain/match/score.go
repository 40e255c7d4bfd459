// Package match computes the 0-100 relevance score between a single
// project and a user profile snapshot, plus the human-readable reasons
// behind it. Everything here is a pure function: missing optional
// input degrades to a zero contribution, never to an error.
package match

import (
	"math"
	"time"

	"github.com/awaisio/rabtah/internal/domain/model"
)

// Factor caps. The factors are additive and independent; their maximum
// sum is already the score ceiling, the final clamp is only a guard.
const (
	locationExactPoints   = 30.0
	locationPartialPoints = 15.0
	skillPoints           = 40.0
	interestPoints        = 20.0
	availabilityPoints    = 10.0
	maxScore              = 100.0
)

// Options bundles the profile snapshot handed to the engine. Explicit
// fields win over the embedded profile; any field left empty simply
// contributes nothing to the score.
type Options struct {
	Profile   *model.UserProfile
	Location  string
	Skills    []string
	Interests []string

	// Bookmarks is accepted but not evaluated yet; reserved for a
	// bookmark-aware boost.
	Bookmarks []string

	// Limit caps strategy output sizes; zero means the strategy default.
	Limit int
}

// EffectiveLocation resolves the location to match against: the
// explicit option first, then the profile's location, then its city.
func (o Options) EffectiveLocation() string {
	if o.Location != "" {
		return o.Location
	}
	if o.Profile != nil {
		return o.Profile.HomeLocation()
	}
	return ""
}

// EffectiveSkills resolves the skill list: explicit option, else the
// profile's skills.
func (o Options) EffectiveSkills() []string {
	if len(o.Skills) > 0 {
		return o.Skills
	}
	if o.Profile != nil {
		return o.Profile.Skills
	}
	return nil
}

// EffectiveInterests resolves the interest list: explicit option, else
// the profile's interests.
func (o Options) EffectiveInterests() []string {
	if len(o.Interests) > 0 {
		return o.Interests
	}
	if o.Profile != nil {
		return o.Profile.Interests
	}
	return nil
}

// availabilityWindow returns the profile's availability window when
// both ends resolve to concrete dates.
func (o Options) availabilityWindow() (start, end time.Time, ok bool) {
	if o.Profile == nil || o.Profile.Availability == nil {
		return time.Time{}, time.Time{}, false
	}
	start, okStart := o.Profile.Availability.StartDate.Resolve()
	end, okEnd := o.Profile.Availability.EndDate.Resolve()
	if !okStart || !okEnd {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// Score computes the relevance of p for the given options. The result
// is deterministic, side-effect free, and always within [0, 100].
func Score(p model.Project, opts Options) float64 {
	score := locationScore(p, opts) +
		skillScore(p, opts) +
		interestScore(p, opts) +
		availabilityScore(p, opts)
	return math.Min(maxScore, score)
}

func locationScore(p model.Project, opts Options) float64 {
	loc := opts.EffectiveLocation()
	switch {
	case model.SameText(loc, p.Location):
		return locationExactPoints
	case model.Matches(loc, p.Location):
		return locationPartialPoints
	default:
		return 0
	}
}

func skillScore(p model.Project, opts Options) float64 {
	projectSkills := p.SkillUnion()
	userSkills := opts.EffectiveSkills()
	if len(projectSkills) == 0 || len(userSkills) == 0 {
		return 0
	}
	matched := matchedSkillCount(projectSkills, userSkills)
	return math.Min(skillPoints, float64(matched)/float64(len(projectSkills))*skillPoints)
}

func interestScore(p model.Project, opts Options) float64 {
	if model.MatchesAny(p.Category, opts.EffectiveInterests()) {
		return interestPoints
	}
	return 0
}

// availabilityScore awards points only when the project carries both
// dates and the profile carries a full window; the project range must
// lie inside the window, bounds inclusive.
func availabilityScore(p model.Project, opts Options) float64 {
	pStart, okStart := p.StartDate.Resolve()
	pEnd, okEnd := p.EndDate.Resolve()
	if !okStart || !okEnd {
		return 0
	}
	uStart, uEnd, ok := opts.availabilityWindow()
	if !ok {
		return 0
	}
	if !pStart.Before(uStart) && !pEnd.After(uEnd) {
		return availabilityPoints
	}
	return 0
}

// matchedSkillCount counts project skills that loosely match at least
// one user skill.
func matchedSkillCount(projectSkills, userSkills []string) int {
	count := 0
	for _, skill := range projectSkills {
		if model.MatchesAny(skill, userSkills) {
			count++
		}
	}
	return count
}
