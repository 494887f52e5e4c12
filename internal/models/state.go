package models

// StateCard represents one US state as it appears on a playing card
type StateCard struct {
	Name      string
	Nickname  string
	Capital   string
	Syllables int
	Neighbors []string
	Coastal   bool
	Region    string
	Latitude  float64
	Longitude float64
}

// Same reports whether two cards represent the same state. The name is
// the identity key; other fields are ignored.
func (s StateCard) Same(other StateCard) bool {
	return s.Name == other.Name
}

// Borders reports whether the named state is a direct neighbor
func (s StateCard) Borders(name string) bool {
	for _, n := range s.Neighbors {
		if n == name {
			return true
		}
	}
	return false
}
