package hotel

import (
	"fmt"
	"math"

	"github.com/username/hotel-reservations/internal/booking"
)

// Rate is a nightly price split by day type
type Rate struct {
	Weekday uint32
	Weekend uint32
}

// For returns the price of a night falling on day
func (r Rate) For(day booking.Weekday) uint32 {
	if day.IsWeekend() {
		return r.Weekend
	}
	return r.Weekday
}

// RatePerCustomer holds one Rate table per customer kind
type RatePerCustomer struct {
	Regular Rate
	Rewards Rate
}

// For returns the rate table that applies to kind
func (r RatePerCustomer) For(kind booking.CustomerKind) Rate {
	if kind == booking.Rewards {
		return r.Rewards
	}
	return r.Regular
}

// Hotel is one entry of the reference database
type Hotel struct {
	Name   string
	Rating uint32
	Rates  RatePerCustomer
}

// Rate returns the total price of a stay for the given customer kind
func (h *Hotel) Rate(kind booking.CustomerKind, dates []booking.Date) (uint32, error) {
	table := h.Rates.For(kind)

	var total uint32
	for _, date := range dates {
		price := table.For(date.Weekday)
		if price > math.MaxUint32-total {
			return 0, fmt.Errorf("hotel '%s': %w", h.Name, ErrPriceOverflow)
		}
		total += price
	}

	return total, nil
}

// DB is the ordered, read-only hotel database
type DB []Hotel
