package service

import (
	"fmt"

	"rentacar/internal/booking"
)

// PricingService quotes a rental at the vehicle's day rate. The quote is
// captured once at booking creation as the price snapshot and never
// recomputed afterwards.
type PricingService struct {
	catalog VehicleCatalog
}

func NewPricingService(catalog VehicleCatalog) *PricingService {
	return &PricingService{catalog: catalog}
}

// Quote prices the interval inclusive of both endpoint days.
func (p *PricingService) Quote(vehicleID string, iv booking.Interval) (int, error) {
	rate, err := p.catalog.DayRateCents(vehicleID)
	if err != nil {
		return 0, fmt.Errorf("quoting vehicle %s: %w", vehicleID, err)
	}
	return rate * iv.Days(), nil
}
