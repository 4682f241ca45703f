package health

// Profile is the user's health record. Fields default to empty; Goals and Allergies are
// append-only and never deduplicated.
type Profile struct {
	Age           string   `json:"age,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	HealthStats   string   `json:"health_stats,omitempty"`
	ActivityLevel string   `json:"activity_level,omitempty"`
	Goals         []string `json:"goals"`
	Allergies     []string `json:"allergies"`
}

// NewProfile returns an empty profile with initialized lists.
func NewProfile() Profile {
	return Profile{Goals: []string{}, Allergies: []string{}}
}

// Configured reports whether any field has been set.
func (p Profile) Configured() bool {
	return p.Age != "" || p.Gender != "" || p.HealthStats != "" || p.ActivityLevel != "" ||
		len(p.Goals) > 0 || len(p.Allergies) > 0
}

// AddGoal appends a goal.
func (p *Profile) AddGoal(goal string) {
	p.Goals = append(p.Goals, goal)
}

// AddAllergy appends an allergy.
func (p *Profile) AddAllergy(allergy string) {
	p.Allergies = append(p.Allergies, allergy)
}

// Clone returns a deep copy.
func (p Profile) Clone() Profile {
	out := p
	out.Goals = append([]string{}, p.Goals...)
	out.Allergies = append([]string{}, p.Allergies...)
	return out
}
