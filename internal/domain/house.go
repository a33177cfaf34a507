package domain

import "fmt"

// House is the faction a member belongs to. The set is closed; declaration
// order is the canonical house ordering used wherever results are sorted
// "by house".
type House int

const (
	HouseStark House = iota
	HouseLannister
	HouseTargaryen
	HouseBaratheon
	HouseGreyjoy
	HouseMartell
	HouseTyrell
	HouseTully
)

var houseNames = [...]string{
	HouseStark:     "STARK",
	HouseLannister: "LANNISTER",
	HouseTargaryen: "TARGARYEN",
	HouseBaratheon: "BARATHEON",
	HouseGreyjoy:   "GREYJOY",
	HouseMartell:   "MARTELL",
	HouseTyrell:    "TYRELL",
	HouseTully:     "TULLY",
}

// Houses returns every house in canonical order.
func Houses() []House {
	out := make([]House, len(houseNames))
	for i := range houseNames {
		out[i] = House(i)
	}
	return out
}

func (h House) String() string {
	if h < 0 || int(h) >= len(houseNames) {
		return fmt.Sprintf("House(%d)", int(h))
	}
	return houseNames[h]
}

// Valid reports whether h is one of the declared houses.
func (h House) Valid() bool {
	return h >= 0 && int(h) < len(houseNames)
}

// ParseHouse maps the canonical upper-case name (the storage and URL
// representation) back to a House.
func ParseHouse(s string) (House, error) {
	for i, name := range houseNames {
		if s == name {
			return House(i), nil
		}
	}
	return 0, fmt.Errorf("unknown house %q", s)
}
