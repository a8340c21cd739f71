package advisor

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/username/hotel-reservations/internal/booking"
	"github.com/username/hotel-reservations/internal/hotel"
	"go.uber.org/zap"
)

const maxLineSize = 1024 * 1024

var ErrReadInput = errors.New("could not read line with bookings")

// Advisor answers booking lines with the best hotel of its database
type Advisor struct {
	db     hotel.DB
	logger *zap.Logger
}

// New creates a new Advisor. db must not be modified afterwards.
func New(db hotel.DB, logger *zap.Logger) *Advisor {
	return &Advisor{
		db:     db,
		logger: logger,
	}
}

// Answer returns the name of the hotel to book for a single booking line
func (a *Advisor) Answer(line string) (string, error) {
	request, err := booking.ParseBooking(line)
	if err != nil {
		return "", err
	}

	best, err := hotel.Select(a.db, request.Customer, request.Dates, line)
	if err != nil {
		return "", err
	}

	return best.Name, nil
}

// Answers writes one hotel name per booking line of r to w, in order.
// It stops at the first failing line; answers for earlier lines are written,
// nothing is written for the failing one.
func (a *Advisor) Answers(r io.Reader, w io.Writer) (err error) {
	out := bufio.NewWriter(w)
	defer func() {
		if flushErr := out.Flush(); flushErr != nil && err == nil {
			err = fmt.Errorf("failed to write answers: %w", flushErr)
		}
	}()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		name, err := a.Answer(line)
		if err != nil {
			a.logger.Error("Booking failed",
				zap.Int("line", lineNo),
				zap.Error(err))
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		a.logger.Debug("Booking answered",
			zap.Int("line", lineNo),
			zap.String("hotel", name))

		if _, err := fmt.Fprintln(out, name); err != nil {
			return fmt.Errorf("failed to write answers: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w after line %d: %w", ErrReadInput, lineNo, err)
	}

	a.logger.Info("All bookings answered", zap.Int("lines", lineNo))

	return nil
}
