package booking

import (
	"fmt"
	"math"
	"testing"
	"time"

	"localserve/models"
)

type recordedEvent struct {
	room  string
	event string
}

// fakeNotifier records emitted events in order.
type fakeNotifier struct {
	events []recordedEvent
}

func (f *fakeNotifier) NotifyProvider(providerID int, event string, payload any) {
	f.events = append(f.events, recordedEvent{fmt.Sprintf("provider_%d", providerID), event})
}

func (f *fakeNotifier) NotifyConsumer(consumerID string, event string, payload any) {
	f.events = append(f.events, recordedEvent{fmt.Sprintf("consumer_%s", consumerID), event})
}

func (f *fakeNotifier) NotifyChat(requestID int, event string, payload any) {
	f.events = append(f.events, recordedEvent{fmt.Sprintf("chat_%d", requestID), event})
}

func (f *fakeNotifier) last() recordedEvent {
	if len(f.events) == 0 {
		return recordedEvent{}
	}
	return f.events[len(f.events)-1]
}

var testTime = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *fakeNotifier) {
	t.Helper()
	notifier := &fakeNotifier{}
	store := NewStore(
		WithNotifier(notifier),
		WithClock(func() time.Time { return testTime }),
		WithoutSeedEarnings(),
	)
	return store, notifier
}

func sampleInput() models.BookingInput {
	return models.BookingInput{
		CustomerName: "Asha",
		CustomerID:   "consumer_7",
		ProviderID:   2,
		ProviderName: "QuickFix Plumbing",
		ServiceType:  "Repair",
		Service:      "Plumber",
		Budget:       "600",
	}
}

func TestCreate_InitialState(t *testing.T) {
	store, notifier := newTestStore(t)

	req := store.Create(sampleInput())

	if req.ID != 1 {
		t.Fatalf("expected first request id 1, got %d", req.ID)
	}
	if req.Status != models.StatusPending {
		t.Fatalf("expected status pending, got %q", req.Status)
	}
	if req.JobStatus != nil {
		t.Fatalf("expected nil job_status, got %q", *req.JobStatus)
	}
	if req.PaymentStatus != models.PaymentUnpaid {
		t.Fatalf("expected unpaid, got %q", req.PaymentStatus)
	}
	if !req.CanCancel || req.CanReschedule {
		t.Fatalf("expected can_cancel=true can_reschedule=false, got %v %v", req.CanCancel, req.CanReschedule)
	}
	if got := notifier.last(); got.room != "provider_2" || got.event != "new_request" {
		t.Fatalf("expected new_request on provider_2, got %+v", got)
	}

	second := store.Create(sampleInput())
	if second.ID != 2 {
		t.Fatalf("expected monotonic ids, got %d", second.ID)
	}
}

func TestCreate_Defaults(t *testing.T) {
	store, _ := newTestStore(t)

	req := store.Create(models.BookingInput{ProviderID: 1})
	if req.CustomerName != "Anonymous Customer" {
		t.Fatalf("expected default customer name, got %q", req.CustomerName)
	}
	if req.CustomerID != "consumer_1" {
		t.Fatalf("expected default customer id, got %q", req.CustomerID)
	}
	if req.Details != "Service requested" {
		t.Fatalf("expected default details, got %q", req.Details)
	}
}

func TestAccept(t *testing.T) {
	store, notifier := newTestStore(t)
	req := store.Create(sampleInput())

	store.Accept(req.ID, map[string]any{"phone": "+91 98765 43211"})

	view, ok := store.StatusOf(req.ID)
	if !ok {
		t.Fatalf("request disappeared after accept")
	}
	if view.Status != models.StatusAccepted {
		t.Fatalf("expected accepted, got %q", view.Status)
	}
	if view.JobStatus == nil || *view.JobStatus != "accepted" {
		t.Fatalf("expected job_status accepted, got %v", view.JobStatus)
	}
	if got := notifier.last(); got.room != "consumer_consumer_7" || got.event != "request_accepted" {
		t.Fatalf("expected request_accepted on consumer room, got %+v", got)
	}

	// After accept the cancel window closes and the reschedule window opens.
	if store.Cancel(req.ID, "changed my mind") {
		t.Fatalf("cancel should be refused after accept")
	}
	if !store.Reschedule(req.ID, "2024-03-20", "10:00") {
		t.Fatalf("reschedule should be allowed after accept")
	}
}

func TestAccept_UnknownIDIsSilentNoop(t *testing.T) {
	store, notifier := newTestStore(t)

	store.Accept(99, nil)
	if len(notifier.events) != 0 {
		t.Fatalf("expected no events for unknown id, got %+v", notifier.events)
	}
}

func TestReject(t *testing.T) {
	store, notifier := newTestStore(t)
	req := store.Create(sampleInput())

	store.Reject(req.ID)

	view, _ := store.StatusOf(req.ID)
	if view.Status != models.StatusRejected {
		t.Fatalf("expected rejected, got %q", view.Status)
	}
	if got := notifier.last(); got.event != "request_rejected" {
		t.Fatalf("expected request_rejected, got %+v", got)
	}

	// Rejected requests stay in the active collection.
	if len(store.ConsumerBookings()) != 1 {
		t.Fatalf("rejected request should remain visible")
	}
}

func TestCancel_WhilePending(t *testing.T) {
	store, notifier := newTestStore(t)
	req := store.Create(sampleInput())

	if !store.Cancel(req.ID, "found someone else") {
		t.Fatalf("cancel should succeed while pending")
	}
	view, _ := store.StatusOf(req.ID)
	if view.Status != models.StatusCancelled {
		t.Fatalf("expected cancelled, got %q", view.Status)
	}
	if got := notifier.last(); got.room != "provider_2" || got.event != "booking_cancelled" {
		t.Fatalf("expected booking_cancelled on provider room, got %+v", got)
	}
}

func TestReschedule_RefusedWhilePending(t *testing.T) {
	store, _ := newTestStore(t)
	req := store.Create(sampleInput())

	if store.Reschedule(req.ID, "2024-03-20", "10:00") {
		t.Fatalf("reschedule should be refused before accept")
	}
}

func TestUpdateJobStatus(t *testing.T) {
	store, notifier := newTestStore(t)
	req := store.Create(sampleInput())
	store.Accept(req.ID, nil)

	if !store.UpdateJobStatus(req.ID, "in_progress") {
		t.Fatalf("job status update failed")
	}
	view, _ := store.StatusOf(req.ID)
	if view.JobStatus == nil || *view.JobStatus != "in_progress" {
		t.Fatalf("expected in_progress, got %v", view.JobStatus)
	}
	if got := notifier.last(); got.event != "job_status_update" {
		t.Fatalf("expected job_status_update, got %+v", got)
	}

	if store.UpdateJobStatus(99, "completed") {
		t.Fatalf("expected failure for unknown id")
	}
}

func TestPay(t *testing.T) {
	store, notifier := newTestStore(t)
	req := store.Create(sampleInput())

	receiptID, ok := store.Pay(req.ID, 500)
	if !ok {
		t.Fatalf("payment failed")
	}
	want := fmt.Sprintf("RCP%d%s", req.ID, testTime.Format("200601021504"))
	if receiptID != want {
		t.Fatalf("expected receipt id %q, got %q", want, receiptID)
	}
	if got := notifier.last(); got.room != "provider_2" || got.event != "payment_received" {
		t.Fatalf("expected payment_received on provider room, got %+v", got)
	}

	records := store.EarningsHistory()
	if len(records) != 1 || records[0].Amount != 500 || records[0].Customer != "Asha" {
		t.Fatalf("expected one earnings record for the payment, got %+v", records)
	}

	receipt, ok := store.Receipt(req.ID)
	if !ok {
		t.Fatalf("receipt lookup failed")
	}
	if receipt.Status != "Paid" || receipt.Amount != 500 {
		t.Fatalf("unexpected receipt %+v", receipt)
	}

	if _, ok := store.Pay(99, 100); ok {
		t.Fatalf("expected payment failure for unknown id")
	}
}

func TestRate_ArchivesAndUpdatesProvider(t *testing.T) {
	store, _ := newTestStore(t)
	req := store.Create(sampleInput())

	var before models.Provider
	for _, p := range store.Providers() {
		if p.ID == 2 {
			before = p
		}
	}

	if !store.Rate(req.ID, 5, "great work") {
		t.Fatalf("rating failed")
	}

	// Gone from active, present in history.
	if _, ok := store.StatusOf(req.ID); ok {
		t.Fatalf("rated request should leave the active collection")
	}
	bookings := store.ConsumerBookings()
	if len(bookings) != 1 || bookings[0].Rating == nil || *bookings[0].Rating != 5 {
		t.Fatalf("expected rated request in history, got %+v", bookings)
	}

	var after models.Provider
	for _, p := range store.Providers() {
		if p.ID == 2 {
			after = p
		}
	}
	wantRating := math.Round((before.Rating*float64(before.Reviews)+5)/float64(before.Reviews+1)*10) / 10
	if after.Rating != wantRating {
		t.Fatalf("expected rating %v, got %v", wantRating, after.Rating)
	}
	if after.Reviews != before.Reviews+1 {
		t.Fatalf("expected review count %d, got %d", before.Reviews+1, after.Reviews)
	}
}

func TestPendingRequests_ExcludesHandled(t *testing.T) {
	store, _ := newTestStore(t)
	first := store.Create(sampleInput())
	store.Create(sampleInput())

	store.Accept(first.ID, nil)

	pending := store.PendingRequests()
	if len(pending) != 1 || pending[0].ID == first.ID {
		t.Fatalf("expected only the unhandled request, got %+v", pending)
	}
}

// Full lifecycle: create, accept, complete, pay, rate.
func TestLifecycle_EndToEnd(t *testing.T) {
	store, _ := newTestStore(t)
	req := store.Create(sampleInput())

	store.Accept(req.ID, map[string]any{"name": "QuickFix Plumbing"})
	if !store.UpdateJobStatus(req.ID, "completed") {
		t.Fatalf("completing job failed")
	}
	if _, ok := store.Pay(req.ID, 500); !ok {
		t.Fatalf("payment failed")
	}
	if !store.Rate(req.ID, 5, "on time") {
		t.Fatalf("rating failed")
	}

	bookings := store.ConsumerBookings()
	if len(bookings) != 1 {
		t.Fatalf("expected one archived booking, got %d", len(bookings))
	}
	final := bookings[0]
	if final.PaymentStatus != models.PaymentPaid {
		t.Fatalf("expected paid, got %q", final.PaymentStatus)
	}
	if final.Rating == nil || *final.Rating != 5 {
		t.Fatalf("expected rating 5, got %v", final.Rating)
	}
	if final.CompletedAt == "" {
		t.Fatalf("expected completed_at stamp")
	}
}

func TestCheckStatus_NotFound(t *testing.T) {
	store, _ := newTestStore(t)
	if _, ok := store.StatusOf(42); ok {
		t.Fatalf("expected not found for unknown id")
	}
}
