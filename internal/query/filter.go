package query

// DefaultLimit is the number of ranked results returned when the
// request text does not ask for a specific count.
const DefaultLimit = 5

// Filter is the structured search criteria extracted from free text.
// Every field is optional: an empty string, nil slice or nil pointer
// means the request did not constrain that dimension.
type Filter struct {
	Role                   string   `json:"role,omitempty" mapstructure:"role"`
	Skills                 []string `json:"skills,omitempty" mapstructure:"skills"`
	Location               string   `json:"location,omitempty" mapstructure:"location"`
	MinExp                 *int     `json:"minExp,omitempty" mapstructure:"minExp"`
	MaxExp                 *int     `json:"maxExp,omitempty" mapstructure:"maxExp"`
	AvailabilityWindowDays *int     `json:"availabilityWindowDays,omitempty" mapstructure:"availabilityWindowDays"`
	Limit                  *int     `json:"limit,omitempty" mapstructure:"limit"`
}

// EffectiveLimit returns the result cap. A nil limit means the request
// did not constrain the count and falls back to DefaultLimit. An
// explicit zero is a valid cap and yields no results.
func (f Filter) EffectiveLimit() int {
	if f.Limit == nil {
		return DefaultLimit
	}
	if *f.Limit < 0 {
		return 0
	}
	return *f.Limit
}
