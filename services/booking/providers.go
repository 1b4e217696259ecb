package booking

import "localserve/models"

// Providers returns the full registry.
func (s *Store) Providers() []models.Provider {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Provider, len(s.providers))
	copy(out, s.providers)
	return out
}

// ProviderDetail returns a provider together with up to five most recent
// reviewed bookings from history.
func (s *Store) ProviderDetail(providerID int) (models.ProviderDetail, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.providers {
		if p.ID != providerID {
			continue
		}
		reviews := []models.BookingRequest{}
		for _, req := range s.history {
			if req.ProviderID == providerID && req.Review != nil {
				reviews = append(reviews, *req)
			}
		}
		if len(reviews) > 5 {
			reviews = reviews[len(reviews)-5:]
		}
		return models.ProviderDetail{Provider: p, RecentReviews: reviews}, true
	}
	return models.ProviderDetail{}, false
}

// UpdateProviderProfile applies a partial profile update. Unknown ids are a
// silent no-op, matching the rest of the registry surface.
func (s *Store) UpdateProviderProfile(providerID int, update models.ProviderUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.providers {
		p := &s.providers[i]
		if p.ID != providerID {
			continue
		}
		applyString(&p.Name, update.Name)
		applyString(&p.Phone, update.Phone)
		applyString(&p.Email, update.Email)
		applyString(&p.Description, update.Description)
		applyString(&p.Price, update.Price)
		if update.Services != nil {
			p.Services = update.Services
		}
		applyString(&p.Bio, update.Bio)
		applyString(&p.Address, update.Address)
		if update.YearsExperience != nil {
			p.YearsExperience = *update.YearsExperience
		}
		s.profiles[providerID] = *p
		return
	}
}

// ProviderProfile returns the stored profile snapshot for a provider.
func (s *Store) ProviderProfile(providerID int) (models.Provider, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[providerID]
	return p, ok
}

// Schedule returns the provider's schedule, defaulting to a 09:00-18:00 day.
func (s *Store) Schedule(providerID int) models.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sched, ok := s.schedules[providerID]; ok {
		return sched
	}
	return models.Schedule{StartTime: "09:00", EndTime: "18:00", Holidays: []string{}}
}

// SetSchedule stores the provider's schedule and mirrors the window onto the
// provider's working hours.
func (s *Store) SetSchedule(providerID int, sched models.Schedule) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.schedules[providerID] = sched
	for i := range s.providers {
		if s.providers[i].ID == providerID {
			s.providers[i].WorkingHours = models.WorkingHours{
				Start: sched.StartTime,
				End:   sched.EndTime,
			}
			break
		}
	}
}

// Stats summarizes a provider's track record from the registry, earnings
// history and archived bookings.
func (s *Store) Stats(providerID int) models.ProviderStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	provider := s.providers[0]
	for _, p := range s.providers {
		if p.ID == providerID {
			provider = p
			break
		}
	}

	totalEarnings := 0
	for _, e := range s.earnings {
		totalEarnings += e.Amount
	}

	breakdown := map[string]int{}
	for _, req := range s.history {
		if req.ProviderID != providerID {
			continue
		}
		service := req.ServiceType
		if service == "" {
			service = "Other"
		}
		breakdown[service]++
	}

	return models.ProviderStats{
		TotalJobs:        provider.CompletedJobs,
		TotalEarnings:    totalEarnings,
		AverageRating:    provider.Rating,
		TotalReviews:     provider.Reviews,
		ServiceBreakdown: breakdown,
		ResponseTime:     provider.ResponseTime,
	}
}

// EarningsHistory returns a copy of all earnings records.
func (s *Store) EarningsHistory() []models.EarningsRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.EarningsRecord, len(s.earnings))
	copy(out, s.earnings)
	return out
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
