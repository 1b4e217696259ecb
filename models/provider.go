package models

// WorkingHours is the daily availability window of a provider.
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Provider is a service vendor listed in the marketplace.
type Provider struct {
	ID              int          `json:"id"`
	Name            string       `json:"name"`
	Service         string       `json:"service"`
	Rating          float64      `json:"rating"`
	Reviews         int          `json:"reviews"`
	Lat             float64      `json:"lat"`
	Lng             float64      `json:"lng"`
	Price           string       `json:"price"`
	Phone           string       `json:"phone"`
	Email           string       `json:"email"`
	Services        []string     `json:"services"`
	WorkingHours    WorkingHours `json:"working_hours"`
	Availability    string       `json:"availability"`
	ProfileImage    string       `json:"profile_image"`
	Description     string       `json:"description"`
	Certifications  []string     `json:"certifications"`
	CompletedJobs   int          `json:"completed_jobs"`
	ResponseTime    string       `json:"response_time"`
	Bio             string       `json:"bio"`
	Address         string       `json:"address"`
	YearsExperience int          `json:"years_experience"`
	Languages       []string     `json:"languages"`
	Gallery         []string     `json:"gallery"`
}

// SearchResult is a provider augmented with its distance from the query point.
type SearchResult struct {
	Provider
	Distance float64 `json:"distance"`
}

// ProviderDetail is a provider plus its most recent reviews.
type ProviderDetail struct {
	Provider
	RecentReviews []BookingRequest `json:"recent_reviews"`
}

// ProviderUpdate carries the fields a provider may change on their profile.
// Nil fields are left untouched.
type ProviderUpdate struct {
	Name            *string  `json:"name"`
	Phone           *string  `json:"phone"`
	Email           *string  `json:"email"`
	Description     *string  `json:"description"`
	Price           *string  `json:"price"`
	Services        []string `json:"services"`
	Bio             *string  `json:"bio"`
	Address         *string  `json:"address"`
	YearsExperience *int     `json:"years_experience"`
}

// Schedule is a provider's configurable working window.
type Schedule struct {
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Holidays  []string `json:"holidays"`
}
