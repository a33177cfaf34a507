package httpapi

import (
	"github.com/trinity-got/member-query-api/internal/app/memberquery"
	"github.com/trinity-got/member-query-api/internal/domain"
)

const dobLayout = "2006-01-02"

type memberJSON struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	House  string  `json:"house"`
	Title  string  `json:"title"`
	Salary float64 `json:"salary"`
	DOB    string  `json:"dob"`
}

type salaryStatsJSON struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Sum     float64 `json:"sum"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

func memberToJSON(m domain.Member) memberJSON {
	return memberJSON{
		ID:     int64(m.ID),
		Name:   m.Name,
		House:  m.House.String(),
		Title:  m.Title.String(),
		Salary: m.Salary,
		DOB:    m.DOB.Format(dobLayout),
	}
}

func membersToJSON(ms []domain.Member) []memberJSON {
	out := make([]memberJSON, 0, len(ms))
	for _, m := range ms {
		out = append(out, memberToJSON(m))
	}
	return out
}

func statsToJSON(st memberquery.SalaryStats) salaryStatsJSON {
	return salaryStatsJSON{
		Min:     st.Min,
		Max:     st.Max,
		Sum:     st.Sum,
		Average: st.Average,
		Count:   st.Count,
	}
}
