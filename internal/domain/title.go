package domain

import "fmt"

// Title is a member's rank. The set is closed.
type Title int

const (
	TitleKing Title = iota
	TitleQueen
	TitleLord
	TitleLady
	TitleSer
	TitleMaester
)

var titleNames = [...]string{
	TitleKing:    "KING",
	TitleQueen:   "QUEEN",
	TitleLord:    "LORD",
	TitleLady:    "LADY",
	TitleSer:     "SER",
	TitleMaester: "MAESTER",
}

func (t Title) String() string {
	if t < 0 || int(t) >= len(titleNames) {
		return fmt.Sprintf("Title(%d)", int(t))
	}
	return titleNames[t]
}

// IsRoyal reports whether the title counts as royalty (kings and queens only).
func (t Title) IsRoyal() bool {
	return t == TitleKing || t == TitleQueen
}

// ParseTitle maps the canonical upper-case name back to a Title.
func ParseTitle(s string) (Title, error) {
	for i, name := range titleNames {
		if s == name {
			return Title(i), nil
		}
	}
	return 0, fmt.Errorf("unknown title %q", s)
}
