package models

// Booking request status values. job_status is deliberately left open:
// providers report free-text stages, only "completed" carries extra meaning.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"

	JobStatusCompleted = "completed"

	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

// BookingRequest is a consumer's request for a provider's service, tracked
// through the status/job_status/payment_status triple.
type BookingRequest struct {
	ID            int     `json:"id"`
	CustomerName  string  `json:"customer_name"`
	CustomerID    string  `json:"customer_id"`
	ProviderID    int     `json:"provider_id"`
	ProviderName  string  `json:"provider_name"`
	ServiceType   string  `json:"service_type"`
	Service       string  `json:"service"`
	Distance      float64 `json:"distance"`
	Budget        string  `json:"budget"`
	Details       string  `json:"details"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerLat   float64 `json:"customer_lat"`
	CustomerLng   float64 `json:"customer_lng"`
	Timestamp     string  `json:"timestamp"`
	TimeAgo       string  `json:"time_ago"`

	Status        string  `json:"status"`
	JobStatus     *string `json:"job_status"`
	PaymentStatus string  `json:"payment_status"`

	Rating *int    `json:"rating"`
	Review *string `json:"review"`

	CanCancel     bool `json:"can_cancel"`
	CanReschedule bool `json:"can_reschedule"`

	AcceptedAt      string         `json:"accepted_at,omitempty"`
	ProviderDetails map[string]any `json:"provider_details,omitempty"`
	CompletedAt     string         `json:"completed_at,omitempty"`

	RescheduledDate string `json:"rescheduled_date,omitempty"`
	RescheduledTime string `json:"rescheduled_time,omitempty"`
	RescheduledAt   string `json:"rescheduled_at,omitempty"`

	CancellationReason string `json:"cancellation_reason,omitempty"`
	CancelledAt        string `json:"cancelled_at,omitempty"`

	PaymentAmount int    `json:"payment_amount,omitempty"`
	PaymentAt     string `json:"payment_at,omitempty"`
	ReceiptID     string `json:"receipt_id,omitempty"`

	RatedAt string `json:"rated_at,omitempty"`
}

// BookingInput is the payload for creating a booking request.
type BookingInput struct {
	CustomerName  string  `json:"customer_name"`
	CustomerID    string  `json:"customer_id"`
	ProviderID    int     `json:"provider_id"`
	ProviderName  string  `json:"provider_name"`
	ServiceType   string  `json:"service_type"`
	Service       string  `json:"service"`
	Distance      float64 `json:"distance"`
	Budget        string  `json:"budget"`
	Details       string  `json:"details"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerLat   float64 `json:"customer_lat"`
	CustomerLng   float64 `json:"customer_lng"`
}

// Receipt is the JSON form of a payment receipt.
type Receipt struct {
	ReceiptID    string `json:"receipt_id"`
	Date         string `json:"date"`
	CustomerName string `json:"customer_name"`
	ProviderName string `json:"provider_name"`
	Service      string `json:"service"`
	Amount       int    `json:"amount"`
	Status       string `json:"status"`
}
