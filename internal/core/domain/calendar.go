package domain

import "time"

// BlockedPeriod is a calendar-defined date range during which no leave may be
// requested. Bounds are inclusive.
type BlockedPeriod struct {
	PeriodID string    `json:"periodID"`
	Year     int       `json:"year"`
	Name     string    `json:"name"`
	FromDate time.Time `json:"fromDate"`
	ToDate   time.Time `json:"toDate"`
	AuditFields
}

// Covers reports whether [from, to] intersects the blocked period.
func (p *BlockedPeriod) Covers(from, to time.Time) bool {
	return !from.After(p.ToDate) && !to.Before(p.FromDate)
}
