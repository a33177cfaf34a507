package domain

import "time"

// MemberID is the unique integer identifier of a member record. IDs are
// unique across the roster and define the natural member ordering.
type MemberID int64

// Member is one roster record. Members are immutable once loaded: queries
// copy them out, nothing updates them in place.
type Member struct {
	ID     MemberID
	Name   string
	House  House
	Title  Title
	Salary float64
	// DOB is a UTC midnight date; only its ordering is meaningful.
	DOB time.Time
}

// NaturalLess is the explicit natural-order comparator for members
// (ascending id). Sorting code uses this rather than any implicit
// ordering baked into the type.
func NaturalLess(a, b Member) bool {
	return a.ID < b.ID
}

// Date builds the UTC midnight date used for DOB fields.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
