package booking

import (
	"time"

	"github.com/heartmarshall/fieldforms-backend/internal/domain"
)

const clockLayout = "15:04"

// Slots lists the bookable HH:MM times on date (YYYY-MM-DD) as seen at now.
// Weekends and past dates have none; on the current day slots that already
// started are dropped.
func (s *Service) Slots(date string, now time.Time) ([]string, error) {
	day, err := time.ParseInLocation(time.DateOnly, date, s.loc)
	if err != nil {
		return nil, domain.NewValidationError("date", "must be a date (YYYY-MM-DD)")
	}
	return s.slotsOn(day, now.In(s.loc)), nil
}

// IsSlot reports whether hhmm is currently bookable on date.
func (s *Service) IsSlot(date, hhmm string) bool {
	slots, err := s.Slots(date, s.now())
	if err != nil {
		return false
	}
	for _, slot := range slots {
		if slot == hhmm {
			return true
		}
	}
	return false
}

func (s *Service) slotsOn(day, now time.Time) []string {
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return []string{}
	}
	today := startOfDay(now)
	if day.Before(today) {
		return []string{}
	}

	y, m, d := day.Date()
	slots := []string{}
	for _, w := range s.windows {
		start := time.Date(y, m, d, 0, w.Start, 0, 0, s.loc)
		end := time.Date(y, m, d, 0, w.End, 0, 0, s.loc)
		for t := start; t.Before(end); t = t.Add(s.step) {
			if t.Before(now) {
				continue
			}
			slots = append(slots, t.Format(clockLayout))
		}
	}
	return slots
}

// startsAt converts a local date and HH:MM into an instant.
func (s *Service) startsAt(date, hhmm string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly+" "+clockLayout, date+" "+hhmm, s.loc)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
