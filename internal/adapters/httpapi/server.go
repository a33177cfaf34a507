package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/trinity-got/member-query-api/internal/app/memberquery"
	"github.com/trinity-got/member-query-api/internal/domain"
)

// Server is the HTTP adapter over the member query service.
type Server struct {
	Queries *memberquery.Service
}

func NewServer(queries *memberquery.Service) *Server {
	return &Server{Queries: queries}
}

// houseFromURL resolves the {house} path parameter. House names are matched
// case-insensitively against the canonical upper-case set; an unknown house
// writes a 404 envelope and reports !ok.
func (s *Server) houseFromURL(w http.ResponseWriter, r *http.Request) (domain.House, bool) {
	raw := chi.URLParam(r, "house")
	house, err := domain.ParseHouse(strings.ToUpper(raw))
	if err != nil {
		writeError(w, r, http.StatusNotFound, "UNKNOWN_HOUSE", "unknown house "+strconv.Quote(raw))
		return 0, false
	}
	return house, true
}

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("name"); name != "" {
		m, ok := s.Queries.FindByName(name)
		if !ok {
			writeError(w, r, http.StatusNotFound, "MEMBER_NOT_FOUND", "no member named "+strconv.Quote(name))
			return
		}
		writeJSON(w, http.StatusOK, struct {
			Member memberJSON `json:"member"`
		}{Member: memberToJSON(m)})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Members []memberJSON `json:"members"`
	}{Members: membersToJSON(s.Queries.All())})
}

func (s *Server) handleGetMember(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "member id must be an integer")
		return
	}
	m, ok := s.Queries.FindByID(domain.MemberID(id))
	if !ok {
		writeError(w, r, http.StatusNotFound, "MEMBER_NOT_FOUND", "no member with id "+raw)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Member memberJSON `json:"member"`
	}{Member: memberToJSON(m)})
}

func (s *Server) handleRoyaltyPartition(w http.ResponseWriter, r *http.Request) {
	royal, nonRoyal := s.Queries.RoyaltyPartition()
	writeJSON(w, http.StatusOK, struct {
		Royal    []memberJSON `json:"royal"`
		NonRoyal []memberJSON `json:"nonRoyal"`
	}{Royal: membersToJSON(royal), NonRoyal: membersToJSON(nonRoyal)})
}

func (s *Server) handleMembersByHouse(w http.ResponseWriter, r *http.Request) {
	groups := s.Queries.MembersByHouse()
	out := make(map[string][]memberJSON, len(groups))
	for h, ms := range groups {
		out[h.String()] = membersToJSON(ms)
	}
	writeJSON(w, http.StatusOK, struct {
		Houses map[string][]memberJSON `json:"houses"`
	}{Houses: out})
}

func (s *Server) handleCountByHouse(w http.ResponseWriter, r *http.Request) {
	counts := s.Queries.CountByHouse()
	out := make(map[string]int, len(counts))
	for h, n := range counts {
		out[h.String()] = n
	}
	writeJSON(w, http.StatusOK, struct {
		Counts map[string]int `json:"counts"`
	}{Counts: out})
}

func (s *Server) handleAverageSalary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		AverageSalary float64 `json:"averageSalary"`
	}{AverageSalary: s.Queries.AverageSalary()})
}

func (s *Server) handleHighestSalary(w http.ResponseWriter, r *http.Request) {
	m, ok := s.Queries.HighestSalaryMember()
	if !ok {
		writeError(w, r, http.StatusNotFound, "MEMBER_NOT_FOUND", "roster is empty")
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Member memberJSON `json:"member"`
	}{Member: memberToJSON(m)})
}

func (s *Server) handleHouseMembers(w http.ResponseWriter, r *http.Request) {
	house, ok := s.houseFromURL(w, r)
	if !ok {
		return
	}

	var ms []domain.Member
	switch sortBy := r.URL.Query().Get("sortBy"); sortBy {
	case "":
		ms = s.Queries.FindAllByHouse(house)
	case "dob":
		ms = s.Queries.HouseSortedByDOB(house)
	default:
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "sortBy must be: dob")
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Members []memberJSON `json:"members"`
	}{Members: membersToJSON(ms)})
}

func (s *Server) handleHouseNames(w http.ResponseWriter, r *http.Request) {
	house, ok := s.houseFromURL(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Names  []string `json:"names"`
		Joined string   `json:"joined"`
	}{
		Names:  s.Queries.NamesSortedByHouse(house),
		Joined: s.Queries.HouseMemberNamesJoined(house),
	})
}

func (s *Server) handleHouseCount(w http.ResponseWriter, r *http.Request) {
	house, ok := s.houseFromURL(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Count      int  `json:"count"`
		AnyMembers bool `json:"anyMembers"`
	}{
		Count:      s.Queries.CountInHouse(house),
		AnyMembers: s.Queries.AnyMembersInHouse(house),
	})
}

func (s *Server) handleHouseStats(w http.ResponseWriter, r *http.Request) {
	house, ok := s.houseFromURL(w, r)
	if !ok {
		return
	}
	stats, ok := s.Queries.HouseSalaryStats()[house]
	if !ok {
		writeError(w, r, http.StatusNotFound, "NO_MEMBERS_IN_HOUSE", "house "+house.String()+" has no members")
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Stats salaryStatsJSON `json:"stats"`
	}{Stats: statsToJSON(stats)})
}

func (s *Server) handleTopEarners(w http.ResponseWriter, r *http.Request) {
	house, ok := s.houseFromURL(w, r)
	if !ok {
		return
	}
	n := 0
	if raw := r.URL.Query().Get("n"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "n must be an integer")
			return
		}
		n = v
	}
	writeJSON(w, http.StatusOK, struct {
		Members []memberJSON `json:"members"`
	}{Members: membersToJSON(s.Queries.TopEarners(n, house))})
}

func (s *Server) handleLannisters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Members []memberJSON `json:"members"`
	}{Members: membersToJSON(s.Queries.LannistersByName())})
}

func (s *Server) handleStartingWithS(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Members []memberJSON `json:"members"`
	}{Members: membersToJSON(s.Queries.StartingWithSSortedByID())})
}

func (s *Server) handleKings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Members []memberJSON `json:"members"`
	}{Members: membersToJSON(s.Queries.KingsByNameDesc())})
}

func (s *Server) handleByHouseThenName(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Members []memberJSON `json:"members"`
	}{Members: membersToJSON(s.Queries.SortedByHouseThenName())})
}

func (s *Server) handleSalaryBelow(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("max")
	if raw == "" {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "max query parameter is required")
		return
	}
	max, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "max must be a number")
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Members []memberJSON `json:"members"`
		Any     bool         `json:"anySalaryAbove"`
	}{
		Members: membersToJSON(s.Queries.SalaryLessThanSortedByHouse(max)),
		Any:     s.Queries.AnySalaryGreaterThan(max),
	})
}
