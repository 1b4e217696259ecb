package handlers

import (
	"net/http"
	"strconv"

	"localserve/services/booking"
	"localserve/services/matching"

	"github.com/gin-gonic/gin"
)

// SearchHandler serves provider search by location, service and radius.
type SearchHandler struct {
	Matching matching.MatchingService
	Store    *booking.Store
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc matching.MatchingService, store *booking.Store) *SearchHandler {
	return &SearchHandler{Matching: svc, Store: store}
}

// Search handles GET /api/search.
func (h *SearchHandler) Search(c *gin.Context) {
	query := matching.Query{
		Service: c.Query("service"),
		Lat:     floatQuery(c, "lat", 12.9716),
		Lng:     floatQuery(c, "lng", 77.5946),
		Radius:  floatQuery(c, "radius", 1.0),
	}

	results := h.Matching.Search(query, h.Store.Providers())
	c.JSON(http.StatusOK, gin.H{
		"providers":   results,
		"radius_used": query.Radius,
		"count":       len(results),
	})
}

func floatQuery(c *gin.Context, key string, def float64) float64 {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}
