package booking

import (
	"strings"

	"github.com/username/hotel-reservations/pkg/suggest"
)

const (
	customerTypeLen = 9
	dateSeparator   = ", "
)

var customerPrefixes = map[string]CustomerKind{
	"Rewards: ": Rewards,
	"Regular: ": Regular,
}

var customerPrefixNames = []string{"Rewards: ", "Regular: "}

// Booking is one parsed input line
type Booking struct {
	Customer CustomerKind
	Dates    []Date
}

// ParseBooking parses a line like "Regular: 16Mar2009(mon), 17Mar2009(tues)".
// Dates keep input order. The first bad date fails the whole line.
func ParseBooking(line string) (Booking, error) {
	booking, err := parseBooking(line)
	if err != nil {
		return Booking{}, wrapParseError(ErrInvalidBooking, line, err)
	}

	return booking, nil
}

func parseBooking(line string) (Booking, error) {
	customer, err := ParseCustomerKind(line)
	if err != nil {
		return Booking{}, err
	}

	tokens := strings.Split(line[customerTypeLen:], dateSeparator)
	dates := make([]Date, 0, len(tokens))

	for _, token := range tokens {
		date, err := ParseDate(token)
		if err != nil {
			return Booking{}, err
		}
		dates = append(dates, date)
	}

	return Booking{
		Customer: customer,
		Dates:    dates,
	}, nil
}

// ParseCustomerKind reads the fixed-width "Rewards: " / "Regular: " prefix of
// a booking line
func ParseCustomerKind(line string) (CustomerKind, error) {
	if len(line) < customerTypeLen {
		return 0, newParseError(ErrMissingCustomerType, line)
	}

	prefix := line[:customerTypeLen]
	if kind, ok := customerPrefixes[prefix]; ok {
		return kind, nil
	}

	parseErr := newParseError(ErrInvalidCustomerType, prefix)
	if hint, ok := suggest.Closest(prefix, customerPrefixNames, suggest.DefaultMaxDistance); ok {
		parseErr.Suggestion = hint
	}

	return 0, parseErr
}
