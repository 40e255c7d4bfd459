package match

import (
	"fmt"

	"github.com/awaisio/rabtah/internal/domain/model"
)

// fallbackReason is surfaced when no specific factor matched but the
// caller still shows the entry.
const fallbackReason = "Recommended for you"

// Reasons produces the match explanations for p. Only the location,
// skill and interest factors are re-checked here; the availability
// factor contributes to the score but deliberately has no tag, so a
// project can score above its visible reasons.
func Reasons(p model.Project, opts Options) []string {
	reasons := make([]string, 0, 3)

	loc := opts.EffectiveLocation()
	switch {
	case model.SameText(loc, p.Location):
		reasons = append(reasons, "Same location")
	case model.Matches(loc, p.Location):
		reasons = append(reasons, "Near your location")
	}

	projectSkills := p.SkillUnion()
	userSkills := opts.EffectiveSkills()
	if len(projectSkills) > 0 && len(userSkills) > 0 {
		switch matched := matchedSkillCount(projectSkills, userSkills); {
		case matched == 1:
			reasons = append(reasons, "1 skill match")
		case matched > 1:
			reasons = append(reasons, fmt.Sprintf("%d skill matches", matched))
		}
	}

	if model.MatchesAny(p.Category, opts.EffectiveInterests()) {
		reasons = append(reasons, "Matches your interests")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, fallbackReason)
	}
	return reasons
}
