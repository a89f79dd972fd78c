package config

import (
	"fmt"
	"time"
)

// Schedule is the standard working day. Start and End are "HH:MM" clock times
// in the configured timezone.
type Schedule struct {
	Start        string `yaml:"start"`
	End          string `yaml:"end"`
	GraceMinutes int    `yaml:"grace_minutes"`

	startMin int
	endMin   int
	loc      *time.Location
}

func (s *Schedule) resolve(timezone string) error {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", timezone, err)
	}

	start, err := parseClock(s.Start)
	if err != nil {
		return fmt.Errorf("schedule start: %w", err)
	}
	end, err := parseClock(s.End)
	if err != nil {
		return fmt.Errorf("schedule end: %w", err)
	}
	if end <= start {
		return fmt.Errorf("schedule end %s must be after start %s", s.End, s.Start)
	}
	if s.GraceMinutes < 0 {
		return fmt.Errorf("grace minutes must not be negative")
	}

	s.startMin, s.endMin, s.loc = start, end, loc
	return nil
}

func parseClock(v string) (int, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", v)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func (s Schedule) Location() *time.Location {
	if s.loc == nil {
		return time.UTC
	}
	return s.loc
}

// DateOf returns midnight of t's calendar day in the schedule timezone.
func (s Schedule) DateOf(t time.Time) time.Time {
	t = t.In(s.Location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.Location())
}

func (s Schedule) StartOn(day time.Time) time.Time {
	return s.clockOn(day, s.startMin)
}

func (s Schedule) EndOn(day time.Time) time.Time {
	return s.clockOn(day, s.endMin)
}

func (s Schedule) clockOn(day time.Time, minutes int) time.Time {
	d := day.In(s.Location())
	return time.Date(d.Year(), d.Month(), d.Day(), minutes/60, minutes%60, 0, 0, s.Location())
}

func (s Schedule) Grace() time.Duration {
	return time.Duration(s.GraceMinutes) * time.Minute
}
