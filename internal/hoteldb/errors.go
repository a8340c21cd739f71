package hoteldb

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported database format")
	ErrInvalidDatabase   = errors.New("invalid hotel database")
)
