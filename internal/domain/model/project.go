// Package model contains domain models passed between layers.
package model

// Project represents a volunteer opportunity being ranked.
// Fields mirror the JSON schema for /projects. Every list field may be
// nil and is treated as empty; the engine never errors on missing
// optional data.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`

	RequiredSkills    []string `json:"requiredSkills,omitempty"`
	PreferredSkills   []string `json:"preferredSkills,omitempty"`
	SkillRequirements []string `json:"skillRequirements,omitempty"`

	StartDate   DateValue `json:"startDate,omitempty"`
	EndDate     DateValue `json:"endDate,omitempty"`
	SubmittedAt DateValue `json:"submittedAt,omitempty"`

	ParticipantIDs     []string `json:"participantIds,omitempty"`
	ExpectedVolunteers int      `json:"expectedVolunteers"`
	PeopleImpacted     int      `json:"peopleImpacted"`
}

// SkillUnion concatenates the three skill lists into one ordered list.
// Duplicates are kept; nil lists contribute nothing.
func (p Project) SkillUnion() []string {
	union := make([]string, 0, len(p.RequiredSkills)+len(p.PreferredSkills)+len(p.SkillRequirements))
	union = append(union, p.RequiredSkills...)
	union = append(union, p.PreferredSkills...)
	union = append(union, p.SkillRequirements...)
	return union
}

// Participants returns the number of recorded participants.
func (p Project) Participants() int {
	return len(p.ParticipantIDs)
}

// RecommendationScore pairs a project with its computed relevance and
// the human-readable reasons behind it. It is created per call and
// never persisted.
type RecommendationScore struct {
	Project Project  `json:"project"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}
