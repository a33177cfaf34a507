package membersource

import (
	"fmt"
	"time"

	"github.com/trinity-got/member-query-api/internal/domain"
)

// memberRow mirrors the members table: house and title are stored as their
// canonical text names and go through the domain parsers on the way out.
type memberRow struct {
	ID     int64
	Name   string
	House  string
	Title  string
	Salary float64
	DOB    time.Time
}

func (r memberRow) toDomain() (domain.Member, error) {
	house, err := domain.ParseHouse(r.House)
	if err != nil {
		return domain.Member{}, fmt.Errorf("member %d: %w", r.ID, err)
	}
	title, err := domain.ParseTitle(r.Title)
	if err != nil {
		return domain.Member{}, fmt.Errorf("member %d: %w", r.ID, err)
	}
	if r.Salary < 0 {
		return domain.Member{}, fmt.Errorf("member %d: negative salary %v", r.ID, r.Salary)
	}

	// DATE columns come back at midnight in the session zone; pin to the
	// domain's UTC-midnight convention.
	dob := domain.Date(r.DOB.Year(), r.DOB.Month(), r.DOB.Day())

	return domain.Member{
		ID:     domain.MemberID(r.ID),
		Name:   r.Name,
		House:  house,
		Title:  title,
		Salary: r.Salary,
		DOB:    dob,
	}, nil
}
