package booking

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidWeekday      = errors.New("invalid weekday token")
	ErrInvalidLength       = errors.New("invalid date length")
	ErrInvalidDay          = errors.New("invalid day")
	ErrInvalidMonth        = errors.New("unknown month")
	ErrInvalidYear         = errors.New("invalid year")
	ErrMissingBracket      = errors.New("missing bracket around weekday")
	ErrInvalidDate         = errors.New("invalid date")
	ErrMissingCustomerType = errors.New("input does not even contain the customer type")
	ErrInvalidCustomerType = errors.New("unknown customer type")
	ErrInvalidBooking      = errors.New("invalid booking")
)

// ParseError describes a piece of booking input that could not be understood.
// Input always holds the raw substring that failed, Err the nested failure.
type ParseError struct {
	Reason     error
	Input      string
	Suggestion string
	Err        error
}

func newParseError(reason error, input string) *ParseError {
	return &ParseError{
		Reason: reason,
		Input:  input,
	}
}

func wrapParseError(reason error, input string, err error) *ParseError {
	return &ParseError{
		Reason: reason,
		Input:  input,
		Err:    err,
	}
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%v '%s'", e.Reason, e.Input)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean '%s'?)", e.Suggestion)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Reason}
	}

	return []error{e.Reason, e.Err}
}

// AsParseError returns the outermost ParseError in err's chain, or nil
func AsParseError(err error) *ParseError {
	if err == nil {
		return nil
	}

	var parseErr *ParseError

	if errors.As(err, &parseErr) {
		return parseErr
	}

	return nil
}
