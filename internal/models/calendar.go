package models

import "time"

// BlockedPeriod maps to the blocked_periods table. Bounds are inclusive dates.
type BlockedPeriod struct {
	PeriodID string    `json:"periodID"`
	Year     int       `json:"year"`
	Name     string    `json:"name"`
	FromDate time.Time `json:"fromDate"`
	ToDate   time.Time `json:"toDate"`
	AuditFields
}
