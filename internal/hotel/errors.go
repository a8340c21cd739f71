package hotel

import (
	"errors"
	"fmt"
)

var (
	ErrNoHotels      = errors.New("no hotels to choose from")
	ErrPriceOverflow = errors.New("total price overflows")
)

// SelectionError is returned when no hotel can be picked for a booking line
type SelectionError struct {
	Line string
	Err  error
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("cannot select a hotel for booking '%s': %v", e.Line, e.Err)
}

func (e *SelectionError) Unwrap() error {
	return e.Err
}

// AsSelectionError returns the SelectionError in err's chain, or nil
func AsSelectionError(err error) *SelectionError {
	if err == nil {
		return nil
	}

	var selectionErr *SelectionError

	if errors.As(err, &selectionErr) {
		return selectionErr
	}

	return nil
}
