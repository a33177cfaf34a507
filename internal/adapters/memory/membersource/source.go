package membersource

import (
	"context"

	"github.com/trinity-got/member-query-api/internal/domain"
	"github.com/trinity-got/member-query-api/internal/ports/out/membersource"
)

// Source is the in-memory implementation of membersource.Source. It holds a
// fixed roster in collection order and hands out copies, so concurrent
// readers never share a mutable slice.
type Source struct {
	members []domain.Member
}

var _ membersource.Source = (*Source)(nil)

// NewSource returns a source over the canonical seeded roster.
func NewSource() *Source {
	return NewSourceWithMembers(seedMembers())
}

// NewSourceWithMembers returns a source over the given members, copying them.
// Members are expected in collection order (ascending id); the slice is used
// as-is apart from the copy.
func NewSourceWithMembers(ms []domain.Member) *Source {
	out := make([]domain.Member, len(ms))
	copy(out, ms)
	return &Source{members: out}
}

func (s *Source) GetAllMembers(ctx context.Context) ([]domain.Member, error) {
	_ = ctx
	out := make([]domain.Member, len(s.members))
	copy(out, s.members)
	return out, nil
}

func seedMembers() []domain.Member {
	return []domain.Member{
		{ID: 1, Name: "Eddard", House: domain.HouseStark, Title: domain.TitleLord, Salary: 100000, DOB: domain.Date(1959, 3, 17)},
		{ID: 2, Name: "Catelyn", House: domain.HouseStark, Title: domain.TitleLady, Salary: 82000, DOB: domain.Date(1964, 10, 7)},
		{ID: 3, Name: "Robb", House: domain.HouseStark, Title: domain.TitleLord, Salary: 71000, DOB: domain.Date(1983, 5, 4)},
		{ID: 4, Name: "Sansa", House: domain.HouseStark, Title: domain.TitleLady, Salary: 60000, DOB: domain.Date(1986, 11, 21)},
		{ID: 5, Name: "Arya", House: domain.HouseStark, Title: domain.TitleLady, Salary: 54000, DOB: domain.Date(1989, 6, 9)},
		{ID: 6, Name: "Jon", House: domain.HouseStark, Title: domain.TitleKing, Salary: 81000, DOB: domain.Date(1984, 12, 26)},
		{ID: 7, Name: "Tywin", House: domain.HouseLannister, Title: domain.TitleLord, Salary: 144000, DOB: domain.Date(1941, 9, 2)},
		{ID: 8, Name: "Cersei", House: domain.HouseLannister, Title: domain.TitleQueen, Salary: 120000, DOB: domain.Date(1966, 1, 30)},
		{ID: 9, Name: "Jaime", House: domain.HouseLannister, Title: domain.TitleSer, Salary: 111000, DOB: domain.Date(1966, 1, 30)},
		{ID: 10, Name: "Tyrion", House: domain.HouseLannister, Title: domain.TitleLord, Salary: 86000, DOB: domain.Date(1974, 7, 12)},
		{ID: 11, Name: "Daenerys", House: domain.HouseTargaryen, Title: domain.TitleQueen, Salary: 130000, DOB: domain.Date(1987, 4, 15)},
		{ID: 12, Name: "Viserys", House: domain.HouseTargaryen, Title: domain.TitleKing, Salary: 95000, DOB: domain.Date(1979, 8, 3)},
		{ID: 13, Name: "Robert", House: domain.HouseBaratheon, Title: domain.TitleKing, Salary: 175000, DOB: domain.Date(1956, 2, 11)},
		{ID: 14, Name: "Stannis", House: domain.HouseBaratheon, Title: domain.TitleKing, Salary: 92000, DOB: domain.Date(1960, 4, 19)},
		{ID: 15, Name: "Renly", House: domain.HouseBaratheon, Title: domain.TitleLord, Salary: 78000, DOB: domain.Date(1977, 3, 6)},
		{ID: 16, Name: "Balon", House: domain.HouseGreyjoy, Title: domain.TitleKing, Salary: 68000, DOB: domain.Date(1948, 12, 1)},
		{ID: 17, Name: "Theon", House: domain.HouseGreyjoy, Title: domain.TitleLord, Salary: 45000, DOB: domain.Date(1984, 2, 22)},
		{ID: 18, Name: "Oberyn", House: domain.HouseMartell, Title: domain.TitleSer, Salary: 88000, DOB: domain.Date(1958, 9, 27)},
		{ID: 19, Name: "Margaery", House: domain.HouseTyrell, Title: domain.TitleQueen, Salary: 76000, DOB: domain.Date(1983, 1, 17)},
		{ID: 20, Name: "Loras", House: domain.HouseTyrell, Title: domain.TitleSer, Salary: 59000, DOB: domain.Date(1985, 7, 30)},
		{ID: 21, Name: "Brynden", House: domain.HouseTully, Title: domain.TitleSer, Salary: 61000, DOB: domain.Date(1940, 5, 23)},
		{ID: 22, Name: "Edmure", House: domain.HouseTully, Title: domain.TitleLord, Salary: 57000, DOB: domain.Date(1971, 10, 10)},
	}
}
