package battleship

import "strings"

const DefaultGridSize int = 10

type ShipClass struct {
	Name   string `json:"name"`
	Length int    `json:"length"`
}

// Fleet is the ordered manifest of ships each player has to place.
type Fleet []ShipClass

var DefaultFleet = Fleet{
	{Name: "Carrier", Length: 5},
	{Name: "Battleship", Length: 4},
	{Name: "Submarine", Length: 3},
	{Name: "Cruiser", Length: 3},
	{Name: "Destroyer", Length: 2},
}

// Find looks a class up by name, ignoring case.
func (f Fleet) Find(name string) (ShipClass, bool) {
	for _, class := range f {
		if strings.EqualFold(class.Name, name) {
			return class, true
		}
	}
	return ShipClass{}, false
}

func (f Fleet) TotalCells() int {
	total := 0
	for _, class := range f {
		total += class.Length
	}
	return total
}
