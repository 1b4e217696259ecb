package models

// ChatMessage is a single chat line attached to a booking request.
// Messages are append-only; there is no thread entity, just this flat record
// filtered by request id at read time.
type ChatMessage struct {
	ID        int    `json:"id"`
	RequestID int    `json:"request_id"`
	Sender    string `json:"sender"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// EarningsRecord is one earned amount on a given day.
type EarningsRecord struct {
	Date     string `json:"date"`
	Amount   int    `json:"amount"`
	Service  string `json:"service"`
	Customer string `json:"customer"`
}

// EarningsBucket is one point in the earnings time series.
type EarningsBucket struct {
	Date   string `json:"date"`
	Amount int    `json:"amount"`
}

// EarningsReport is the aggregated earnings view for a period.
type EarningsReport struct {
	Data        []EarningsBucket `json:"data"`
	TotalToday  int              `json:"total_today"`
	TotalPeriod int              `json:"total_period"`
	Period      string           `json:"period"`
}

// ProviderStats summarizes a provider's track record.
type ProviderStats struct {
	TotalJobs        int            `json:"total_jobs"`
	TotalEarnings    int            `json:"total_earnings"`
	AverageRating    float64        `json:"average_rating"`
	TotalReviews     int            `json:"total_reviews"`
	ServiceBreakdown map[string]int `json:"service_breakdown"`
	ResponseTime     string         `json:"response_time"`
}
