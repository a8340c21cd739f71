package advisor

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/username/hotel-reservations/internal/booking"
	"github.com/username/hotel-reservations/internal/hotel"
	"go.uber.org/zap"
)

var testDB = hotel.DB{
	{
		Name:   "Lakewood",
		Rating: 3,
		Rates: hotel.RatePerCustomer{
			Regular: hotel.Rate{Weekday: 110, Weekend: 90},
			Rewards: hotel.Rate{Weekday: 80, Weekend: 80},
		},
	},
	{
		Name:   "Bridgewood",
		Rating: 4,
		Rates: hotel.RatePerCustomer{
			Regular: hotel.Rate{Weekday: 160, Weekend: 60},
			Rewards: hotel.Rate{Weekday: 110, Weekend: 50},
		},
	},
	{
		Name:   "Ridgewood",
		Rating: 5,
		Rates: hotel.RatePerCustomer{
			Regular: hotel.Rate{Weekday: 220, Weekend: 150},
			Rewards: hotel.Rate{Weekday: 100, Weekend: 40},
		},
	},
}

func TestAdvisor_Answer(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	a := New(testDB, logger)

	tests := []struct {
		line string
		want string
	}{
		{"Regular: 16Mar2009(mon), 17Mar2009(tues), 18Mar2009(wed)", "Lakewood"},
		{"Regular: 20Mar2009(fri), 21Mar2009(sat), 22Mar2009(sun)", "Bridgewood"},
		{"Rewards: 26Mar2009(thur), 27Mar2009(fri), 28Mar2009(sat)", "Ridgewood"},
		{"Rewards: 16Mar2009(mon), 17Mar2009(tues)", "Lakewood"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := a.Answer(tt.line)
			if err != nil {
				t.Fatalf("Answer(%q) error = %v", tt.line, err)
			}

			if got != tt.want {
				t.Errorf("Answer(%q) = %s, want %s", tt.line, got, tt.want)
			}
		})
	}
}

func TestAdvisor_Answers(t *testing.T) {
	a := New(testDB, zap.NewNop())

	input := "Regular: 16Mar2009(mon), 17Mar2009(tues), 18Mar2009(wed)\r\n" +
		"Regular: 20Mar2009(fri), 21Mar2009(sat), 22Mar2009(sun)\n" +
		"Rewards: 26Mar2009(thur), 27Mar2009(fri), 28Mar2009(sat)\n"

	var out bytes.Buffer
	if err := a.Answers(strings.NewReader(input), &out); err != nil {
		t.Fatalf("Answers() error = %v", err)
	}

	want := "Lakewood\nBridgewood\nRidgewood\n"
	if out.String() != want {
		t.Errorf("Answers() wrote %q, want %q", out.String(), want)
	}
}

func TestAdvisor_Answers_EmptyInput(t *testing.T) {
	a := New(testDB, zap.NewNop())

	var out bytes.Buffer
	if err := a.Answers(strings.NewReader(""), &out); err != nil {
		t.Fatalf("Answers() error = %v", err)
	}

	if out.Len() != 0 {
		t.Errorf("Answers() wrote %q, want nothing", out.String())
	}
}

func TestAdvisor_Answers_StopsAtFirstError(t *testing.T) {
	a := New(testDB, zap.NewNop())

	input := "Regular: 16Mar2009(mon)\n" +
		"Silver: 16Mar2009(mon)\n" +
		"Rewards: 21Mar2009(sat)\n"

	var out bytes.Buffer
	err := a.Answers(strings.NewReader(input), &out)
	if err == nil {
		t.Fatal("Answers() expected error, got nil")
	}

	if !errors.Is(err, booking.ErrInvalidCustomerType) {
		t.Errorf("Answers() error = %v, want ErrInvalidCustomerType", err)
	}

	if !strings.HasPrefix(err.Error(), "line 2: ") {
		t.Errorf("Answers() error = %q, want line number prefix", err.Error())
	}

	if out.String() != "Lakewood\n" {
		t.Errorf("Answers() wrote %q, want only the first answer", out.String())
	}
}

func TestAdvisor_Answers_BlankLineFails(t *testing.T) {
	a := New(testDB, zap.NewNop())

	var out bytes.Buffer
	err := a.Answers(strings.NewReader("Regular: 16Mar2009(mon)\n\nRegular: 16Mar2009(mon)\n"), &out)
	if !errors.Is(err, booking.ErrMissingCustomerType) {
		t.Errorf("Answers() error = %v, want ErrMissingCustomerType", err)
	}
}

func TestAdvisor_Answers_EmptyDatabase(t *testing.T) {
	a := New(nil, zap.NewNop())

	line := "Rewards: 16Mar2009(mon)"

	var out bytes.Buffer
	err := a.Answers(strings.NewReader(line+"\n"), &out)
	if !errors.Is(err, hotel.ErrNoHotels) {
		t.Fatalf("Answers() error = %v, want ErrNoHotels", err)
	}

	if selectionErr := hotel.AsSelectionError(err); selectionErr == nil || selectionErr.Line != line {
		t.Errorf("Answers() error = %v, want SelectionError for %q", err, line)
	}

	if out.Len() != 0 {
		t.Errorf("Answers() wrote %q, want nothing", out.String())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestAdvisor_Answers_ReadError(t *testing.T) {
	a := New(testDB, zap.NewNop())

	var out bytes.Buffer
	err := a.Answers(failingReader{}, &out)
	if !errors.Is(err, ErrReadInput) {
		t.Errorf("Answers() error = %v, want ErrReadInput", err)
	}
}
