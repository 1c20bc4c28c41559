package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrEmptyInput = errors.New("date input is empty")
	ErrOutOfRange = errors.New("relative date is too far ahead")
)

// MaxRelativeDays bounds "in N days|weeks|months" phrases (about ten years).
const MaxRelativeDays = 3650

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser does calendar-day math and due-date parsing in one timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Africa/Johannesburg"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDue converts user input into an absolute due time.
//
// Accepted forms: RFC3339, "2006-01-02 15:04", "2006-01-02", and the relative
// phrases today, tomorrow, yesterday, "in N days|weeks|months", "next <weekday>".
// Inputs naming only a day resolve to the end of that day.
func (p *Parser) ParseDue(input string, baseTime time.Time) (time.Time, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return time.Time{}, ErrEmptyInput
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", raw, p.location); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", raw, p.location); err == nil {
		return p.EndOfDay(t), nil
	}

	day, err := p.parseRelativeDay(strings.ToLower(raw), baseTime)
	if err != nil {
		return time.Time{}, err
	}
	return p.EndOfDay(day), nil
}

// parseRelativeDay returns the start of the day named by a relative phrase.
func (p *Parser) parseRelativeDay(relative string, baseTime time.Time) (time.Time, error) {
	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrOutOfRange, relative)
	}
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		if amount > MaxRelativeDays {
			return time.Time{}, fmt.Errorf("%w: %q", ErrOutOfRange, relative)
		}
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		if amount > MaxRelativeDays/7 {
			return time.Time{}, fmt.Errorf("%w: %q", ErrOutOfRange, relative)
		}
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		if amount > MaxRelativeDays/30 {
			return time.Time{}, fmt.Errorf("%w: %q", ErrOutOfRange, relative)
		}
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles "next monday" etc. The same weekday means a week ahead.
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(targetWeekday - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.StartOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight at the start of t's day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 of t's day in the parser's timezone.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	start := p.StartOfDay(t)
	return time.Date(start.Year(), start.Month(), start.Day(), 23, 59, 59, 0, p.location)
}

// DayBounds returns [start, next start) of t's calendar day.
func (p *Parser) DayBounds(t time.Time) (time.Time, time.Time) {
	start := p.StartOfDay(t)
	return start, start.AddDate(0, 0, 1)
}

// SameDay reports whether a and b fall on the same calendar day.
func (p *Parser) SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(p.location).Date()
	by, bm, bd := b.In(p.location).Date()
	return ay == by && am == bm && ad == bd
}
