package models

import "fmt"

// BadgeTier is an achievement level earned by answer streaks. Tiers are
// strictly ordered; a profile's badge for a mode only ever moves forward.
type BadgeTier int

const (
	BadgeNone BadgeTier = iota
	BadgeBronze
	BadgeSilver
	BadgeGold
	BadgePlatinum
)

// String returns the display name of the tier
func (b BadgeTier) String() string {
	switch b {
	case BadgeBronze:
		return "Bronze"
	case BadgeSilver:
		return "Silver"
	case BadgeGold:
		return "Gold"
	case BadgePlatinum:
		return "Platinum"
	default:
		return "None"
	}
}

// ParseBadgeTier converts a stored tier name back into a BadgeTier
func ParseBadgeTier(s string) (BadgeTier, error) {
	switch s {
	case "None", "":
		return BadgeNone, nil
	case "Bronze":
		return BadgeBronze, nil
	case "Silver":
		return BadgeSilver, nil
	case "Gold":
		return BadgeGold, nil
	case "Platinum":
		return BadgePlatinum, nil
	}
	return BadgeNone, fmt.Errorf("unknown badge tier: %q", s)
}

// BadgeForStreak returns the tier awarded at the given streak milestone.
// Streaks between milestones award nothing.
func BadgeForStreak(streak int) (BadgeTier, bool) {
	switch streak {
	case 10:
		return BadgeBronze, true
	case 15:
		return BadgeSilver, true
	case 20:
		return BadgeGold, true
	case 25:
		return BadgePlatinum, true
	}
	return BadgeNone, false
}

// ModeBadges tracks the badge earned in each game mode
type ModeBadges map[GameMode]BadgeTier

// Badge returns the tier stored for a mode, BadgeNone when absent
func (mb ModeBadges) Badge(mode GameMode) BadgeTier {
	return mb[mode]
}

// Upgrade stores the new tier only if it is strictly higher than the
// current one, and reports whether an upgrade happened.
func (mb ModeBadges) Upgrade(mode GameMode, tier BadgeTier) bool {
	if tier > mb[mode] {
		mb[mode] = tier
		return true
	}
	return false
}
