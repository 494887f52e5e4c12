package models

import "fmt"

// GameMode identifies one of the four game modes. Persistence and
// badge lookups key on the stable ID, never on the display title.
type GameMode int

const (
	ModeEducational GameMode = iota // learn at your own pace
	ModeSpeed                       // race against the clock
	ModeDistance                    // geographic challenges
	ModeMatch                       // match capitals and nicknames
)

// ID returns the stable identifier used as a persistence key
func (m GameMode) ID() string {
	switch m {
	case ModeEducational:
		return "educational"
	case ModeSpeed:
		return "speed"
	case ModeDistance:
		return "distance"
	case ModeMatch:
		return "match"
	default:
		return "unknown"
	}
}

// Title returns the human-readable name of the game mode
func (m GameMode) Title() string {
	switch m {
	case ModeEducational:
		return "Educational Mode"
	case ModeSpeed:
		return "Speed Challenge"
	case ModeDistance:
		return "Go the Distance"
	case ModeMatch:
		return "Match a State"
	default:
		return "Unknown"
	}
}

// Description returns a brief description of the game mode
func (m GameMode) Description() string {
	switch m {
	case ModeEducational:
		return "Practice state facts at your own pace"
	case ModeSpeed:
		return "Race against time to find matches"
	case ModeDistance:
		return "Find the geographically closest state"
	case ModeMatch:
		return "Match state capitals and nicknames"
	default:
		return ""
	}
}

// AllGameModes lists every playable mode
func AllGameModes() []GameMode {
	return []GameMode{ModeEducational, ModeSpeed, ModeDistance, ModeMatch}
}

// ParseGameMode converts a mode ID back into a GameMode
func ParseGameMode(id string) (GameMode, error) {
	for _, m := range AllGameModes() {
		if m.ID() == id {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown game mode: %q", id)
}
