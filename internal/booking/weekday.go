package booking

import (
	"github.com/username/hotel-reservations/pkg/suggest"
)

// Weekday is the day of the week a booked night falls on
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayTokens = map[string]Weekday{
	"mon":  Monday,
	"tues": Tuesday,
	"wed":  Wednesday,
	"thur": Thursday,
	"fri":  Friday,
	"sat":  Saturday,
	"sun":  Sunday,
}

// Ordered for suggestions; map iteration order is random.
var weekdayNames = []string{"mon", "tues", "wed", "thur", "fri", "sat", "sun"}

// ParseWeekday converts a lowercase abbreviation (mon, tues, wed, thur, fri,
// sat, sun) into a Weekday
func ParseWeekday(s string) (Weekday, error) {
	if day, ok := weekdayTokens[s]; ok {
		return day, nil
	}

	parseErr := newParseError(ErrInvalidWeekday, s)
	if hint, ok := suggest.Closest(s, weekdayNames, suggest.DefaultMaxDistance); ok {
		parseErr.Suggestion = hint
	}

	return 0, parseErr
}

// IsWeekend returns true for Saturday and Sunday
func (d Weekday) IsWeekend() bool {
	return d == Saturday || d == Sunday
}

func (d Weekday) String() string {
	switch d {
	case Monday:
		return "Monday"
	case Tuesday:
		return "Tuesday"
	case Wednesday:
		return "Wednesday"
	case Thursday:
		return "Thursday"
	case Friday:
		return "Friday"
	case Saturday:
		return "Saturday"
	case Sunday:
		return "Sunday"
	default:
		return "Unknown"
	}
}
