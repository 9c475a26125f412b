package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/padeltour/academia-api/internal/models"
)

// tour prices are display text such as "от 1900" ("from 1900")
const pricePrefix = "от "

// ParseTourPrice extracts the numeric base price from a tour's display price.
func ParseTourPrice(price string) (float64, error) {
	s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(price), pricePrefix))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedPrice, price)
	}
	return v, nil
}

type TourLookup interface {
	GetByID(ctx context.Context, id string) (*models.Tour, error)
}

// PriceCalculator prices a booking from the referenced tour.
type PriceCalculator struct {
	tours TourLookup
}

func NewPriceCalculator(tours TourLookup) *PriceCalculator {
	return &PriceCalculator{tours: tours}
}

// Total is base_price(tour) × participants. A missing tour yields a
// *ReferenceNotFoundError.
func (p *PriceCalculator) Total(ctx context.Context, tourID string, participants int) (float64, error) {
	tour, err := p.tours.GetByID(ctx, tourID)
	if err != nil {
		return 0, err
	}
	if tour == nil {
		return 0, &ReferenceNotFoundError{Resource: "Tour", ID: tourID}
	}
	base, err := ParseTourPrice(tour.Price)
	if err != nil {
		return 0, fmt.Errorf("tour %q: %w", tourID, err)
	}
	return base * float64(participants), nil
}
