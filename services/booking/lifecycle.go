package booking

import (
	"fmt"
	"math"

	"localserve/models"
)

// StatusView is the consumer-facing poll result for a booking request.
type StatusView struct {
	Status          string         `json:"status"`
	JobStatus       *string        `json:"job_status"`
	ProviderDetails map[string]any `json:"provider_details"`
}

// Create registers a new booking request in the active collection and
// notifies the provider's room.
func (s *Store) Create(input models.BookingInput) models.BookingRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	req := &models.BookingRequest{
		ID:            s.nextID,
		CustomerName:  orDefault(input.CustomerName, "Anonymous Customer"),
		CustomerID:    orDefault(input.CustomerID, "consumer_1"),
		ProviderID:    input.ProviderID,
		ProviderName:  input.ProviderName,
		ServiceType:   input.ServiceType,
		Service:       input.Service,
		Distance:      input.Distance,
		Budget:        input.Budget,
		Details:       orDefault(input.Details, "Service requested"),
		CustomerPhone: orDefault(input.CustomerPhone, "+91 99999 99999"),
		CustomerLat:   input.CustomerLat,
		CustomerLng:   input.CustomerLng,
		Timestamp:     s.timestamp(),
		TimeAgo:       "Just now",
		Status:        models.StatusPending,
		JobStatus:     nil,
		PaymentStatus: models.PaymentUnpaid,
		CanCancel:     true,
		CanReschedule: false,
	}
	s.nextID++
	s.active = append(s.active, req)

	s.notifier.NotifyProvider(req.ProviderID, "new_request", *req)
	return *req
}

// Accept marks a request accepted and opens the reschedule window. There is
// deliberately no prior-status guard: the first id match wins, and an unknown
// id is a silent no-op, mirroring the original behavior.
func (s *Store) Accept(requestID int, providerData map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, req := range s.active {
		if req.ID != requestID {
			continue
		}
		accepted := models.StatusAccepted
		req.Status = models.StatusAccepted
		req.JobStatus = &accepted
		req.AcceptedAt = s.timestamp()
		req.ProviderDetails = providerData
		req.CanCancel = false
		req.CanReschedule = true

		s.notifier.NotifyConsumer(req.CustomerID, "request_accepted", map[string]any{
			"request_id":       requestID,
			"provider_details": providerData,
		})
		return
	}
}

// Reject marks a request rejected. Like Accept, unguarded and silent on a
// missing id. Rejected requests stay in the active collection.
func (s *Store) Reject(requestID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, req := range s.active {
		if req.ID != requestID {
			continue
		}
		req.Status = models.StatusRejected

		s.notifier.NotifyConsumer(req.CustomerID, "request_rejected", map[string]any{
			"request_id": requestID,
		})
		return
	}
}

// StatusOf reports the current state of an active request.
func (s *Store) StatusOf(requestID int) (StatusView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, req := range s.active {
		if req.ID == requestID {
			details := req.ProviderDetails
			if details == nil {
				details = map[string]any{}
			}
			return StatusView{
				Status:          req.Status,
				JobStatus:       req.JobStatus,
				ProviderDetails: details,
			}, true
		}
	}
	return StatusView{}, false
}

// UpdateJobStatus applies a provider-reported job stage. The value is free
// text; "completed" additionally stamps the completion time.
func (s *Store) UpdateJobStatus(requestID int, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, req := range s.active {
		if req.ID != requestID {
			continue
		}
		req.JobStatus = &status
		if status == models.JobStatusCompleted {
			req.CompletedAt = s.timestamp()
		}

		s.notifier.NotifyConsumer(req.CustomerID, "job_status_update", map[string]any{
			"request_id": requestID,
			"status":     status,
		})
		return true
	}
	return false
}

// Reschedule stores a new requested date and time. Allowed only while the
// reschedule window is open; the slot is not validated against the provider's
// working hours or existing schedule.
func (s *Store) Reschedule(requestID int, newDate, newTime string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, req := range s.active {
		if req.ID != requestID || !req.CanReschedule {
			continue
		}
		req.RescheduledDate = newDate
		req.RescheduledTime = newTime
		req.RescheduledAt = s.timestamp()

		s.notifier.NotifyProvider(req.ProviderID, "booking_rescheduled", map[string]any{
			"request_id": requestID,
			"new_date":   newDate,
			"new_time":   newTime,
		})
		return true
	}
	return false
}

// Cancel marks a request cancelled with a reason. Allowed only while the
// cancel window is open. Cancelled requests stay in the active collection.
func (s *Store) Cancel(requestID int, reason string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if reason == "" {
		reason = "No reason provided"
	}
	for _, req := range s.active {
		if req.ID != requestID || !req.CanCancel {
			continue
		}
		req.Status = models.StatusCancelled
		req.CancellationReason = reason
		req.CancelledAt = s.timestamp()

		s.notifier.NotifyProvider(req.ProviderID, "booking_cancelled", map[string]any{
			"request_id": requestID,
			"reason":     reason,
		})
		return true
	}
	return false
}

// Pay marks the request paid, issues a receipt id and appends an earnings
// record. The caller is responsible for only paying completed jobs; the state
// machine does not enforce it.
func (s *Store) Pay(requestID int, amount int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, req := range s.active {
		if req.ID != requestID {
			continue
		}
		now := s.now()
		req.PaymentStatus = models.PaymentPaid
		req.PaymentAmount = amount
		req.PaymentAt = now.Format(timestampLayout)
		req.ReceiptID = fmt.Sprintf("RCP%d%s", requestID, now.Format("200601021504"))

		s.earnings = append(s.earnings, models.EarningsRecord{
			Date:     now.Format(dateLayout),
			Amount:   amount,
			Service:  req.ServiceType,
			Customer: req.CustomerName,
		})

		s.notifier.NotifyProvider(req.ProviderID, "payment_received", map[string]any{
			"request_id": requestID,
			"amount":     amount,
		})
		return req.ReceiptID, true
	}
	return "", false
}

// Rate attaches a rating and review, archives the request into history and
// folds the rating into the provider's running average. This is the only
// transition that removes a request from the active collection.
func (s *Store) Rate(requestID int, rating int, review string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, req := range s.active {
		if req.ID != requestID {
			continue
		}
		req.Rating = &rating
		req.Review = &review
		req.RatedAt = s.timestamp()

		s.history = append(s.history, req)
		s.active = append(s.active[:i], s.active[i+1:]...)

		for j := range s.providers {
			p := &s.providers[j]
			if p.ID != req.ProviderID {
				continue
			}
			newRating := (p.Rating*float64(p.Reviews) + float64(rating)) / float64(p.Reviews+1)
			p.Rating = math.Round(newRating*10) / 10
			p.Reviews++
			break
		}
		return true
	}
	return false
}

// PendingRequests returns the provider inbox: active requests still pending.
func (s *Store) PendingRequests() []models.BookingRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := []models.BookingRequest{}
	for _, req := range s.active {
		if req.Status == models.StatusPending {
			pending = append(pending, *req)
		}
	}
	return pending
}

// ConsumerBookings returns every booking, active first then history.
func (s *Store) ConsumerBookings() []models.BookingRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.BookingRequest, 0, len(s.active)+len(s.history))
	for _, req := range s.active {
		out = append(out, *req)
	}
	for _, req := range s.history {
		out = append(out, *req)
	}
	return out
}

// Receipt returns the receipt for a paid request, searching both collections.
func (s *Store) Receipt(requestID int) (models.Receipt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, req := range s.allRequests() {
		if req.ID == requestID && req.PaymentStatus == models.PaymentPaid {
			return models.Receipt{
				ReceiptID:    req.ReceiptID,
				Date:         req.PaymentAt,
				CustomerName: req.CustomerName,
				ProviderName: req.ProviderName,
				Service:      req.ServiceType,
				Amount:       req.PaymentAmount,
				Status:       "Paid",
			}, true
		}
	}
	return models.Receipt{}, false
}

// allRequests returns active then history. Callers must hold the lock.
func (s *Store) allRequests() []*models.BookingRequest {
	all := make([]*models.BookingRequest, 0, len(s.active)+len(s.history))
	all = append(all, s.active...)
	all = append(all, s.history...)
	return all
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
