package model

// UserProfile is the read-only profile snapshot supplied by the
// auth/profile subsystem. All fields are optional.
type UserProfile struct {
	Location     string     `json:"location,omitempty"`
	City         string     `json:"city,omitempty"`
	Skills       []string   `json:"skills,omitempty"`
	Interests    []string   `json:"interests,omitempty"`
	Availability *DateRange `json:"availability,omitempty"`
}

// HomeLocation returns the first non-empty of Location and City.
func (u UserProfile) HomeLocation() string {
	if u.Location != "" {
		return u.Location
	}
	return u.City
}

// DateRange is an inclusive start/end window.
type DateRange struct {
	StartDate DateValue `json:"startDate,omitempty"`
	EndDate   DateValue `json:"endDate,omitempty"`
}
