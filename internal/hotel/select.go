package hotel

import (
	"math"

	"github.com/username/hotel-reservations/internal/booking"
)

type selectionKey struct {
	price          uint32
	invertedRating uint32
}

func (k selectionKey) less(other selectionKey) bool {
	if k.price != other.price {
		return k.price < other.price
	}
	return k.invertedRating < other.invertedRating
}

// Select returns the cheapest hotel for the stay. Equal prices go to the
// higher rating, and fully equal hotels to the one listed first in db.
// line is only used to describe failures.
func Select(db DB, kind booking.CustomerKind, dates []booking.Date, line string) (*Hotel, error) {
	if len(db) == 0 {
		return nil, &SelectionError{Line: line, Err: ErrNoHotels}
	}

	var (
		best    *Hotel
		bestKey selectionKey
	)

	for i := range db {
		price, err := db[i].Rate(kind, dates)
		if err != nil {
			return nil, &SelectionError{Line: line, Err: err}
		}

		key := selectionKey{
			price:          price,
			invertedRating: math.MaxUint32 - db[i].Rating,
		}

		if best == nil || key.less(bestKey) {
			best = &db[i]
			bestKey = key
		}
	}

	return best, nil
}
