package booking

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"localserve/models"
)

const timestampLayout = "2006-01-02 15:04:05"
const dateLayout = "2006-01-02"

// Notifier publishes named events to topic-scoped rooms. Delivery is best
// effort; every state change is also observable through polling endpoints.
type Notifier interface {
	NotifyProvider(providerID int, event string, payload any)
	NotifyConsumer(consumerID string, event string, payload any)
	NotifyChat(requestID int, event string, payload any)
}

// noopNotifier is used when no realtime hub is attached.
type noopNotifier struct{}

func (noopNotifier) NotifyProvider(int, string, any)    {}
func (noopNotifier) NotifyConsumer(string, string, any) {}
func (noopNotifier) NotifyChat(int, string, any)        {}

// Store owns all marketplace state: the provider registry, the active and
// history booking collections, chat messages, earnings records and provider
// schedules. The original system kept these in unsynchronized module-level
// lists behind a single-threaded event loop; here a mutex provides the same
// one-writer-at-a-time discipline.
type Store struct {
	mu sync.Mutex

	providers []models.Provider
	schedules map[int]models.Schedule
	profiles  map[int]models.Provider

	active   []*models.BookingRequest
	history  []*models.BookingRequest
	nextID   int
	messages []models.ChatMessage
	earnings []models.EarningsRecord

	notifier Notifier
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithNotifier attaches a realtime notifier.
func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithoutSeedEarnings skips the synthetic earnings history.
func WithoutSeedEarnings() Option {
	return func(s *Store) { s.earnings = []models.EarningsRecord{} }
}

// NewStore creates a store seeded with the canonical provider registry and a
// synthetic 30-day earnings history.
func NewStore(opts ...Option) *Store {
	s := &Store{
		providers: seedProviders(),
		schedules: make(map[int]models.Schedule),
		nextID:    1,
		notifier:  noopNotifier{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.profiles = make(map[int]models.Provider, len(s.providers))
	for _, p := range s.providers {
		s.profiles[p.ID] = p
	}
	if s.earnings == nil {
		s.earnings = seedEarnings(s.now())
	}
	return s
}

func (s *Store) timestamp() string {
	return s.now().Format(timestampLayout)
}

// seedProviders returns the fixed provider registry. Providers are seeded at
// startup and never deleted.
func seedProviders() []models.Provider {
	return []models.Provider{
		{
			ID:           1,
			Name:         "John's Electricals",
			Service:      "Electrician",
			Rating:       4.8,
			Reviews:      127,
			Lat:          12.9716,
			Lng:          77.5946,
			Price:        "₹500-800",
			Phone:        "+91 98765 43210",
			Email:        "john@electricals.com",
			Services:     []string{"Installation", "Repair", "Products", "Wiring", "Appliance Repair"},
			WorkingHours: models.WorkingHours{Start: "09:00", End: "18:00"},
			Availability: "available",
			ProfileImage: "https://via.placeholder.com/150",
			Description:  "Professional electrician with 10+ years experience",
			Certifications: []string{
				"Licensed Electrician", "Safety Certified",
			},
			CompletedJobs:   156,
			ResponseTime:    "15 mins",
			Bio:             "Expert in residential and commercial electrical work",
			Address:         "Indiranagar, Bangalore",
			YearsExperience: 10,
			Languages:       []string{"English", "Hindi", "Kannada"},
			Gallery: []string{
				"https://via.placeholder.com/400x300",
				"https://via.placeholder.com/400x300",
				"https://via.placeholder.com/400x300",
			},
		},
		{
			ID:           2,
			Name:         "QuickFix Plumbing",
			Service:      "Plumber",
			Rating:       4.6,
			Reviews:      89,
			Lat:          12.9750,
			Lng:          77.5980,
			Price:        "₹400-700",
			Phone:        "+91 98765 43211",
			Email:        "quickfix@plumbing.com",
			Services:     []string{"Repair", "Installation", "Pipe Fitting", "Tank Cleaning"},
			WorkingHours: models.WorkingHours{Start: "08:00", End: "20:00"},
			Availability: "available",
			ProfileImage: "https://via.placeholder.com/150",
			Description:  "Fast and reliable plumbing services",
			Certifications: []string{
				"Certified Plumber",
			},
			CompletedJobs:   89,
			ResponseTime:    "20 mins",
			Bio:             "24/7 emergency plumbing services",
			Address:         "Koramangala, Bangalore",
			YearsExperience: 8,
			Languages:       []string{"English", "Hindi"},
			Gallery: []string{
				"https://via.placeholder.com/400x300",
				"https://via.placeholder.com/400x300",
			},
		},
		{
			ID:           3,
			Name:         "SparkPro Electric",
			Service:      "Electrician",
			Rating:       4.9,
			Reviews:      203,
			Lat:          12.9700,
			Lng:          77.5900,
			Price:        "₹600-1000",
			Phone:        "+91 98765 43212",
			Email:        "spark@pro.com",
			Services:     []string{"Installation", "Repair", "Products", "Industrial Wiring"},
			WorkingHours: models.WorkingHours{Start: "07:00", End: "19:00"},
			Availability: "available",
			ProfileImage: "https://via.placeholder.com/150",
			Description:  "Premium electrical services and installations",
			Certifications: []string{
				"Master Electrician", "Industrial Certified",
			},
			CompletedJobs:   203,
			ResponseTime:    "10 mins",
			Bio:             "Specialized in industrial and commercial installations",
			Address:         "Whitefield, Bangalore",
			YearsExperience: 12,
			Languages:       []string{"English", "Hindi", "Kannada", "Tamil"},
			Gallery: []string{
				"https://via.placeholder.com/400x300",
				"https://via.placeholder.com/400x300",
				"https://via.placeholder.com/400x300",
				"https://via.placeholder.com/400x300",
			},
		},
	}
}

// seedEarnings generates roughly a month of synthetic earnings history.
func seedEarnings(today time.Time) []models.EarningsRecord {
	services := []string{"Installation", "Repair", "Products"}
	var records []models.EarningsRecord
	for i := 0; i < 30; i++ {
		if rand.Float64() <= 0.3 {
			continue
		}
		date := today.AddDate(0, 0, -i)
		records = append(records, models.EarningsRecord{
			Date:     date.Format(dateLayout),
			Amount:   500 + rand.Intn(2501),
			Service:  services[rand.Intn(len(services))],
			Customer: fmt.Sprintf("Customer %d", 1+rand.Intn(100)),
		})
	}
	return records
}
