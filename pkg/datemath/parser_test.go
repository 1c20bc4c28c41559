package datemath_test

import (
	"errors"
	"testing"
	"time"

	"todo-weather/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Africa/Johannesburg")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParseDue(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	endOfBase := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "Today", input: "today", want: endOfBase},
		{name: "Tomorrow", input: " Tomorrow ", want: endOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", input: "yesterday", want: endOfBase.AddDate(0, 0, -1)},
		{name: "In 3 days", input: "in 3 days", want: endOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", input: "in 2 weeks", want: endOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", input: "in 1 month", want: endOfBase.AddDate(0, 1, 0)},
		{name: "Next Monday (from Wed)", input: "next monday", want: endOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", input: "next wednesday", want: endOfBase.AddDate(0, 0, 7)},
		{name: "RFC3339", input: "2024-06-02T08:00:00Z", want: time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC)},
		{name: "Date and time", input: "2024-06-02 08:15", want: time.Date(2024, 6, 2, 8, 15, 0, 0, time.UTC)},
		{name: "Date only", input: "2024-06-02", want: time.Date(2024, 6, 2, 23, 59, 59, 0, time.UTC)},
		{name: "In 3650 days", input: "in 3650 days", want: endOfBase.AddDate(0, 0, 3650)},
		{name: "In 120 months", input: "in 120 months", want: endOfBase.AddDate(0, 120, 0)},
		{name: "Days overflow int", input: "in 99999999999999999999 days", wantErr: true},
		{name: "Days past limit", input: "in 3651 days", wantErr: true},
		{name: "Weeks past limit", input: "in 600 weeks", wantErr: true},
		{name: "Months past limit", input: "in 121 months", wantErr: true},
		{name: "Invalid duration pattern", input: "in a few days", wantErr: true},
		{name: "Invalid next weekday", input: "next funday", wantErr: true},
		{name: "Unknown phrase", input: "some random day", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseDue(tt.input, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDue() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDue() got = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("Out Of Range Is Typed", func(t *testing.T) {
		_, err := parser.ParseDue("in 99999999999999999999 days", baseTime)
		if !errors.Is(err, datemath.ErrOutOfRange) {
			t.Errorf("expected ErrOutOfRange, got %v", err)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := parser.ParseDue("  ", baseTime)
		if !errors.Is(err, datemath.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})
}

func TestDayMath(t *testing.T) {
	parser, _ := datemath.NewParser("Africa/Johannesburg") // UTC+2, no DST
	loc := parser.Location()

	t.Run("SameDay Uses Parser Timezone", func(t *testing.T) {
		// 23:30 UTC on May 1 is 01:30 on May 2 in Johannesburg.
		a := time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC)
		b := time.Date(2024, 5, 2, 9, 0, 0, 0, loc)
		if !parser.SameDay(a, b) {
			t.Errorf("expected %v and %v to be the same local day", a, b)
		}
		if parser.SameDay(a, b.AddDate(0, 0, 1)) {
			t.Errorf("expected different days")
		}
	})

	t.Run("DayBounds", func(t *testing.T) {
		start, end := parser.DayBounds(time.Date(2024, 5, 2, 9, 0, 0, 0, loc))
		if !start.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, loc)) {
			t.Errorf("unexpected start %v", start)
		}
		if !end.Equal(time.Date(2024, 5, 3, 0, 0, 0, 0, loc)) {
			t.Errorf("unexpected end %v", end)
		}
	})

	t.Run("EndOfDay", func(t *testing.T) {
		got := parser.EndOfDay(time.Date(2024, 5, 2, 9, 0, 0, 0, loc))
		want := time.Date(2024, 5, 2, 23, 59, 59, 0, loc)
		if !got.Equal(want) {
			t.Errorf("EndOfDay() got = %v, want %v", got, want)
		}
	})
}
