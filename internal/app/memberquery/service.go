package memberquery

import (
	"sort"
	"strings"

	"github.com/trinity-got/member-query-api/internal/domain"
)

// Service answers read-only queries over a fixed member roster. It owns a
// private copy of the roster taken at construction time; every method is a
// pure function over that copy, so a single Service is safe for any number
// of concurrent callers.
//
// "Collection order" below means the order members were passed to
// NewService (ascending id for both roster sources). It is the tie-break
// basis for every stable sort and every "first match" rule.
type Service struct {
	members []domain.Member
}

// NewService builds a query service over the given roster. The slice is
// copied; later mutation of the caller's slice does not affect the service.
func NewService(members []domain.Member) *Service {
	ms := make([]domain.Member, len(members))
	copy(ms, members)
	return &Service{members: ms}
}

// SalaryStats summarizes the salaries of one group of members.
type SalaryStats struct {
	Min     float64
	Max     float64
	Sum     float64
	Average float64
	Count   int
}

// FindByID returns the first member with the given id in collection order.
// Ids are unique, so "first" only matters if the invariant is violated.
func (s *Service) FindByID(id domain.MemberID) (domain.Member, bool) {
	for _, m := range s.members {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Member{}, false
}

// FindByName returns the first member with the given name in collection
// order. The match is exact and case-sensitive.
func (s *Service) FindByName(name string) (domain.Member, bool) {
	for _, m := range s.members {
		if m.Name == name {
			return m, true
		}
	}
	return domain.Member{}, false
}

// FindAllByHouse returns the members of a house in collection order.
func (s *Service) FindAllByHouse(house domain.House) []domain.Member {
	out := make([]domain.Member, 0)
	for _, m := range s.members {
		if m.House == house {
			out = append(out, m)
		}
	}
	return out
}

// All returns the full roster in collection order.
func (s *Service) All() []domain.Member {
	out := make([]domain.Member, len(s.members))
	copy(out, s.members)
	return out
}

// StartingWithSSortedByID returns every member whose name starts with an
// upper-case "S", in natural (ascending id) order.
func (s *Service) StartingWithSSortedByID() []domain.Member {
	out := make([]domain.Member, 0)
	for _, m := range s.members {
		if strings.HasPrefix(m.Name, "S") {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return domain.NaturalLess(out[i], out[j])
	})
	return out
}

// LannistersByName returns house Lannister sorted ascending by name.
func (s *Service) LannistersByName() []domain.Member {
	out := s.FindAllByHouse(domain.HouseLannister)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// SalaryLessThanSortedByHouse returns members earning strictly less than
// max, sorted by the canonical house order. Members of the same house keep
// collection order.
func (s *Service) SalaryLessThanSortedByHouse(max float64) []domain.Member {
	out := make([]domain.Member, 0)
	for _, m := range s.members {
		if m.Salary < max {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].House < out[j].House
	})
	return out
}

// SortedByHouseThenName sorts the roster by house, then re-sorts by name.
// Despite the name, the second sort supersedes the first: the result is
// effectively ordered by name alone, with house order surviving only as a
// tie-break between equal names. This matches the report ordering consumers
// already depend on, so it is preserved as-is (see DESIGN.md).
func (s *Service) SortedByHouseThenName() []domain.Member {
	out := s.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].House < out[j].House
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// HouseSortedByDOB returns the members of a house ordered oldest first.
// Members born the same day keep collection order.
func (s *Service) HouseSortedByDOB(house domain.House) []domain.Member {
	out := s.FindAllByHouse(house)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DOB.Before(out[j].DOB)
	})
	return out
}

// KingsByNameDesc returns every member titled KING, sorted descending by name.
func (s *Service) KingsByNameDesc() []domain.Member {
	out := make([]domain.Member, 0)
	for _, m := range s.members {
		if m.Title == domain.TitleKing {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name > out[j].Name
	})
	return out
}

// AverageSalary returns the arithmetic mean of all salaries, 0.0 for an
// empty roster.
func (s *Service) AverageSalary() float64 {
	if len(s.members) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, m := range s.members {
		sum += m.Salary
	}
	return sum / float64(len(s.members))
}

// NamesSortedByHouse returns the names (not members) of a house, sorted
// ascending lexicographically.
func (s *Service) NamesSortedByHouse(house domain.House) []string {
	out := make([]string, 0)
	for _, m := range s.members {
		if m.House == house {
			out = append(out, m.Name)
		}
	}
	sort.Strings(out)
	return out
}

// AnySalaryGreaterThan reports whether any member earns strictly more than max.
func (s *Service) AnySalaryGreaterThan(max float64) bool {
	for _, m := range s.members {
		if m.Salary > max {
			return true
		}
	}
	return false
}

// AnyMembersInHouse reports whether the house has at least one member.
func (s *Service) AnyMembersInHouse(house domain.House) bool {
	for _, m := range s.members {
		if m.House == house {
			return true
		}
	}
	return false
}

// CountInHouse returns how many members belong to the house.
func (s *Service) CountInHouse(house domain.House) int {
	n := 0
	for _, m := range s.members {
		if m.House == house {
			n++
		}
	}
	return n
}

// HouseMemberNamesJoined returns the names of a house joined with ", " in
// collection order, or "" when the house is empty.
func (s *Service) HouseMemberNamesJoined(house domain.House) string {
	names := make([]string, 0)
	for _, m := range s.members {
		if m.House == house {
			names = append(names, m.Name)
		}
	}
	return strings.Join(names, ", ")
}

// HighestSalaryMember returns the member with the maximum salary. On a tie,
// the first such member in collection order wins. The second return is
// false only for an empty roster.
func (s *Service) HighestSalaryMember() (domain.Member, bool) {
	if len(s.members) == 0 {
		return domain.Member{}, false
	}
	best := s.members[0]
	for _, m := range s.members[1:] {
		if m.Salary > best.Salary {
			best = m
		}
	}
	return best, true
}

// RoyaltyPartition splits the roster into royalty (kings and queens) and
// everyone else. Both slices keep collection order; every member lands in
// exactly one of the two.
func (s *Service) RoyaltyPartition() (royal, nonRoyal []domain.Member) {
	royal = make([]domain.Member, 0)
	nonRoyal = make([]domain.Member, 0)
	for _, m := range s.members {
		if m.Title.IsRoyal() {
			royal = append(royal, m)
		} else {
			nonRoyal = append(nonRoyal, m)
		}
	}
	return royal, nonRoyal
}

// MembersByHouse groups the roster by house, collection order preserved
// within each group. Houses with no members are absent from the map.
func (s *Service) MembersByHouse() map[domain.House][]domain.Member {
	out := make(map[domain.House][]domain.Member)
	for _, m := range s.members {
		out[m.House] = append(out[m.House], m)
	}
	return out
}

// CountByHouse returns the member count per house. Houses with no members
// are absent from the map.
func (s *Service) CountByHouse() map[domain.House]int {
	out := make(map[domain.House]int)
	for _, m := range s.members {
		out[m.House]++
	}
	return out
}

// HouseSalaryStats returns per-house salary summaries. Houses with no
// members are absent from the map.
func (s *Service) HouseSalaryStats() map[domain.House]SalaryStats {
	out := make(map[domain.House]SalaryStats)
	for _, m := range s.members {
		st, ok := out[m.House]
		if !ok {
			st = SalaryStats{Min: m.Salary, Max: m.Salary}
		}
		if m.Salary < st.Min {
			st.Min = m.Salary
		}
		if m.Salary > st.Max {
			st.Max = m.Salary
		}
		st.Sum += m.Salary
		st.Count++
		out[m.House] = st
	}
	for h, st := range out {
		st.Average = st.Sum / float64(st.Count)
		out[h] = st
	}
	return out
}

// TopEarners returns up to n members of a house sorted descending by
// salary. Equal salaries keep collection order. n <= 0 yields an empty
// result; a negative n is treated the same as zero.
func (s *Service) TopEarners(n int, house domain.House) []domain.Member {
	out := s.FindAllByHouse(house)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Salary > out[j].Salary
	})
	if n <= 0 {
		return []domain.Member{}
	}
	if len(out) > n {
		out = out[:n]
	}
	return out
}
