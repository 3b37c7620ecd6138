package service

import (
	"math/rand/v2"
)

// RevenueService produces the myBillBook revenue figures. The real billing
// integration is out of scope, so Lookup returns synthetic data; it is kept
// behind its own service so a real client can replace it without touching the
// HTTP layer.
type RevenueService struct {
	locations []string
}

// NewRevenueService creates a new revenue service.
func NewRevenueService(locations []string) *RevenueService {
	return &RevenueService{locations: locations}
}

// Lookup returns a synthetic revenue figure for the location, defaulting to
// the first configured location when none is given.
func (s *RevenueService) Lookup(location string) (string, int) {
	if location == "" && len(s.locations) > 0 {
		location = s.locations[0]
	}
	base := len(location) * 200
	return location, base + rand.IntN(15000)
}
