package booking

import (
	"strconv"
	"strings"

	"github.com/username/hotel-reservations/pkg/suggest"
)

const (
	dayLen    = 2
	monthLen  = 3
	yearLen   = 4
	monthEnd  = dayLen + monthLen
	yearEnd   = monthEnd + yearLen
	minDateLen = yearEnd + 3 // room for "(x)"
)

var monthTokens = map[string]uint8{
	"Jan": 1,
	"Feb": 2,
	"Mar": 3,
	"Apr": 4,
	"May": 5,
	"Jun": 6,
	"Jul": 7,
	"Aug": 8,
	"Sep": 9,
	"Oct": 10,
	"Nov": 11,
	"Dec": 12,
}

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Date is one booked night. Day, Month and Year are kept as written and are
// not checked against the calendar; only Weekday affects pricing.
type Date struct {
	Day     uint8
	Month   uint8
	Year    uint16
	Weekday Weekday
}

// ParseDate parses a token like "16Mar2009(mon)"
func ParseDate(s string) (Date, error) {
	date, err := parseDate(s)
	if err != nil {
		return Date{}, wrapParseError(ErrInvalidDate, s, err)
	}

	return date, nil
}

func parseDate(s string) (Date, error) {
	if len(s) < minDateLen {
		return Date{}, newParseError(ErrInvalidLength, s)
	}

	day, err := parseDigits(s[:dayLen], 8)
	if err != nil {
		return Date{}, newParseError(ErrInvalidDay, s[:dayLen])
	}

	month, err := parseMonth(s[dayLen:monthEnd])
	if err != nil {
		return Date{}, err
	}

	year, err := parseDigits(s[monthEnd:yearEnd], 16)
	if err != nil {
		return Date{}, newParseError(ErrInvalidYear, s[monthEnd:yearEnd])
	}

	if s[yearEnd] != '(' {
		return Date{}, newParseError(ErrMissingBracket, s[yearEnd:])
	}

	closing := strings.IndexByte(s[yearEnd+1:], ')')
	if closing < 0 {
		return Date{}, newParseError(ErrMissingBracket, s[yearEnd:])
	}

	weekday, err := ParseWeekday(s[yearEnd+1 : yearEnd+1+closing])
	if err != nil {
		return Date{}, err
	}

	return Date{
		Day:     uint8(day),
		Month:   month,
		Year:    uint16(year),
		Weekday: weekday,
	}, nil
}

// parseDigits accepts plain decimal digits only, no sign
func parseDigits(s string, bitSize int) (uint64, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}

	return strconv.ParseUint(s, 10, bitSize)
}

func parseMonth(s string) (uint8, error) {
	if month, ok := monthTokens[s]; ok {
		return month, nil
	}

	parseErr := newParseError(ErrInvalidMonth, s)
	if hint, ok := suggest.Closest(s, monthNames, suggest.DefaultMaxDistance); ok {
		parseErr.Suggestion = hint
	}

	return 0, parseErr
}
