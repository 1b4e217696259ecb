package matching

import (
	"math"
	"testing"

	"localserve/models"
)

func testProviders() []models.Provider {
	return []models.Provider{
		{ID: 1, Name: "John's Electricals", Service: "Electrician", Lat: 12.9716, Lng: 77.5946},
		{ID: 2, Name: "QuickFix Plumbing", Service: "Plumber", Lat: 12.9750, Lng: 77.5980},
		{ID: 3, Name: "SparkPro Electric", Service: "Electrician", Lat: 12.9700, Lng: 77.5900},
	}
}

func TestDistance_SamePoint(t *testing.T) {
	if d := Distance(12.9716, 77.5946, 12.9716, 77.5946); d != 0.0 {
		t.Fatalf("expected 0.0 for identical points, got %v", d)
	}
}

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][4]float64{
		{12.9716, 77.5946, 12.9750, 77.5980},
		{0, 0, 10, 10},
		{-33.8688, 151.2093, 51.5074, -0.1278},
	}
	for _, p := range pairs {
		d1 := Distance(p[0], p[1], p[2], p[3])
		d2 := Distance(p[2], p[3], p[0], p[1])
		if d1 != d2 {
			t.Fatalf("distance not symmetric: %v vs %v", d1, d2)
		}
	}
}

func TestDistance_RoundedToTwoDecimals(t *testing.T) {
	d := Distance(12.9716, 77.5946, 12.9750, 77.5980)
	if math.Abs(d*100-math.Round(d*100)) > 1e-9 {
		t.Fatalf("distance %v not rounded to 2 decimals", d)
	}
	if d != 0.53 {
		t.Fatalf("expected 0.53 km between the two Bangalore points, got %v", d)
	}
}

func TestSearch_RadiusFilter(t *testing.T) {
	svc := &DefaultMatchingService{}

	results := svc.Search(Query{Lat: 12.9716, Lng: 77.5946, Radius: 1.0}, testProviders())
	for _, r := range results {
		if r.Distance > 1.0 {
			t.Fatalf("provider %d at distance %v exceeds radius", r.ID, r.Distance)
		}
	}
	// The query point sits on provider 1, so at least that one matches.
	if len(results) == 0 || results[0].ID != 1 || results[0].Distance != 0.0 {
		t.Fatalf("expected provider 1 at distance 0.0 first, got %+v", results)
	}
}

func TestSearch_ZeroRadius(t *testing.T) {
	svc := &DefaultMatchingService{}

	results := svc.Search(Query{Lat: 12.9716, Lng: 77.5946, Radius: 0}, testProviders())
	if len(results) != 1 || results[0].ID != 1 {
		t.Fatalf("expected only the co-located provider for radius 0, got %+v", results)
	}
}

func TestSearch_ServiceFilterCaseInsensitive(t *testing.T) {
	svc := &DefaultMatchingService{}

	results := svc.Search(Query{Lat: 12.9716, Lng: 77.5946, Radius: 50, Service: "electrician"}, testProviders())
	if len(results) != 2 {
		t.Fatalf("expected 2 electricians, got %d", len(results))
	}
	for _, r := range results {
		if r.Service != "Electrician" {
			t.Fatalf("unexpected service %q in filtered results", r.Service)
		}
	}
}

func TestSearch_SortedAscending(t *testing.T) {
	svc := &DefaultMatchingService{}

	results := svc.Search(Query{Lat: 12.9716, Lng: 77.5946, Radius: 50}, testProviders())
	if len(results) != 3 {
		t.Fatalf("expected all 3 providers within 50km, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Distance < results[i-1].Distance {
			t.Fatalf("results not sorted by distance: %+v", results)
		}
	}
}
