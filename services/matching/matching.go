package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"localserve/models"

	"github.com/go-redis/redis/v8"
)

const earthRadiusKm = 6371

// Query describes a provider search around a point.
type Query struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Radius  float64 `json:"radius"`
	Service string  `json:"service"`
}

// MatchingService defines methods to find providers near a point.
type MatchingService interface {
	Search(q Query, providers []models.Provider) []models.SearchResult
}

// DefaultMatchingService filters providers by great-circle distance and
// caches results keyed by the query. A nil CacheClient disables caching.
type DefaultMatchingService struct {
	CacheClient *redis.Client
	CacheTTL    time.Duration
}

// Search returns providers within q.Radius kilometers of the query point,
// augmented with their distance and sorted nearest first. The service filter
// is a case-insensitive exact match.
func (s *DefaultMatchingService) Search(q Query, providers []models.Provider) []models.SearchResult {
	if cached, ok := s.fromCache(q); ok {
		return cached
	}

	results := []models.SearchResult{}
	for _, p := range providers {
		if q.Service != "" && !strings.EqualFold(p.Service, q.Service) {
			continue
		}
		distance := Distance(q.Lat, q.Lng, p.Lat, p.Lng)
		if distance <= q.Radius {
			results = append(results, models.SearchResult{Provider: p, Distance: distance})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	s.toCache(q, results)
	return results
}

// Distance computes the haversine great-circle distance between two
// coordinates in kilometers, rounded to 2 decimal places.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dlat := radians(lat2 - lat1)
	dlon := radians(lon2 - lon1)
	a := math.Pow(math.Sin(dlat/2), 2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return math.Round(earthRadiusKm*c*100) / 100
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func (s *DefaultMatchingService) cacheKey(q Query) string {
	qBytes, _ := json.Marshal(q)
	return fmt.Sprintf("search:%x", qBytes)
}

func (s *DefaultMatchingService) fromCache(q Query) ([]models.SearchResult, bool) {
	if s.CacheClient == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cached, err := s.CacheClient.Get(ctx, s.cacheKey(q)).Result()
	if err != nil || cached == "" {
		return nil, false
	}
	var results []models.SearchResult
	if err := json.Unmarshal([]byte(cached), &results); err != nil {
		// Stale or corrupt entry, recompute.
		return nil, false
	}
	return results, true
}

func (s *DefaultMatchingService) toCache(q Query, results []models.SearchResult) {
	if s.CacheClient == nil {
		return
	}
	data, err := json.Marshal(results)
	if err != nil {
		return
	}
	ttl := s.CacheTTL
	if ttl == 0 {
		ttl = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	// Best effort, a cache write failure never fails the search.
	s.CacheClient.Set(ctx, s.cacheKey(q), data, ttl)
}
