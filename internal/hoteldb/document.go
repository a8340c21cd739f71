package hoteldb

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/username/hotel-reservations/internal/hotel"
	"go.uber.org/multierr"
)

// Pointers distinguish a missing price from a price of zero.
type rateDocument struct {
	Weekday *uint32 `yaml:"weekday" json:"weekday" validate:"required"`
	Weekend *uint32 `yaml:"weekend" json:"weekend" validate:"required"`
}

type ratesDocument struct {
	Regular *rateDocument `yaml:"regular" json:"regular" validate:"required"`
	Rewards *rateDocument `yaml:"rewards" json:"rewards" validate:"required"`
}

type hotelDocument struct {
	Name   string         `yaml:"name" json:"name" validate:"required"`
	Rating *uint32        `yaml:"rating" json:"rating" validate:"required"`
	Rates  *ratesDocument `yaml:"rates" json:"rates" validate:"required"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their document keys
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// validateDocuments checks every hotel and reports all failures together
func validateDocuments(v *validator.Validate, docs []hotelDocument) error {
	var errs error

	for i := range docs {
		if err := v.Struct(&docs[i]); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("hotel #%d '%s': %w", i+1, docs[i].Name, err))
		}
	}

	return errs
}

func (r *rateDocument) toRate() hotel.Rate {
	return hotel.Rate{
		Weekday: *r.Weekday,
		Weekend: *r.Weekend,
	}
}

// toHotel must only be called on validated documents
func (d *hotelDocument) toHotel() hotel.Hotel {
	return hotel.Hotel{
		Name:   d.Name,
		Rating: *d.Rating,
		Rates: hotel.RatePerCustomer{
			Regular: d.Rates.Regular.toRate(),
			Rewards: d.Rates.Rewards.toRate(),
		},
	}
}
