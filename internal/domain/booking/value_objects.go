package booking

import "time"

type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time, now time.Time, rule DateRule) (Period, error) {
	if start.IsZero() || end.IsZero() {
		return Period{}, ErrMissingDates
	}
	if !end.After(start) {
		return Period{}, ErrEndNotAfterStart
	}
	if rule == DateRuleStrict {
		if start.Before(now) {
			return Period{}, ErrStartInPast
		}
		if end.Before(now) {
			return Period{}, ErrEndInPast
		}
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

// HasEndedAt is true once the period end lies strictly before t
func (p Period) HasEndedAt(t time.Time) bool {
	return p.end.Before(t)
}
