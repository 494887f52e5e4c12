package models

import "testing"

func TestBadgeForStreak(t *testing.T) {
	tests := []struct {
		streak  int
		want    BadgeTier
		awarded bool
	}{
		{0, BadgeNone, false},
		{9, BadgeNone, false},
		{10, BadgeBronze, true},
		{11, BadgeNone, false},
		{15, BadgeSilver, true},
		{20, BadgeGold, true},
		{25, BadgePlatinum, true},
		{30, BadgeNone, false},
	}

	for _, tt := range tests {
		got, awarded := BadgeForStreak(tt.streak)
		if got != tt.want || awarded != tt.awarded {
			t.Errorf("BadgeForStreak(%d) = (%v, %v), want (%v, %v)",
				tt.streak, got, awarded, tt.want, tt.awarded)
		}
	}
}

func TestBadgeTierOrdering(t *testing.T) {
	tiers := []BadgeTier{BadgeNone, BadgeBronze, BadgeSilver, BadgeGold, BadgePlatinum}
	for i := 1; i < len(tiers); i++ {
		if tiers[i] <= tiers[i-1] {
			t.Errorf("%v should rank above %v", tiers[i], tiers[i-1])
		}
	}
}

func TestParseBadgeTierRoundTrip(t *testing.T) {
	for _, tier := range []BadgeTier{BadgeNone, BadgeBronze, BadgeSilver, BadgeGold, BadgePlatinum} {
		parsed, err := ParseBadgeTier(tier.String())
		if err != nil {
			t.Errorf("ParseBadgeTier(%q) error: %v", tier.String(), err)
		}
		if parsed != tier {
			t.Errorf("ParseBadgeTier(%q) = %v, want %v", tier.String(), parsed, tier)
		}
	}

	if tier, err := ParseBadgeTier(""); err != nil || tier != BadgeNone {
		t.Errorf("empty string should parse as BadgeNone, got (%v, %v)", tier, err)
	}
	if _, err := ParseBadgeTier("Diamond"); err == nil {
		t.Error("unknown tier should not parse")
	}
}

func TestModeBadgesUpgrade(t *testing.T) {
	badges := make(ModeBadges)

	if !badges.Upgrade(ModeSpeed, BadgeBronze) {
		t.Error("first badge should be an upgrade")
	}
	if !badges.Upgrade(ModeSpeed, BadgeGold) {
		t.Error("higher tier should be an upgrade")
	}
	if badges.Upgrade(ModeSpeed, BadgeSilver) {
		t.Error("lower tier should not downgrade")
	}
	if badges.Upgrade(ModeSpeed, BadgeGold) {
		t.Error("same tier should not upgrade")
	}

	if badges.Badge(ModeSpeed) != BadgeGold {
		t.Errorf("speed badge = %v, want Gold", badges.Badge(ModeSpeed))
	}
	if badges.Badge(ModeMatch) != BadgeNone {
		t.Errorf("unset mode should report BadgeNone, got %v", badges.Badge(ModeMatch))
	}
}

func TestParseGameMode(t *testing.T) {
	for _, mode := range AllGameModes() {
		parsed, err := ParseGameMode(mode.ID())
		if err != nil {
			t.Errorf("ParseGameMode(%q) error: %v", mode.ID(), err)
		}
		if parsed != mode {
			t.Errorf("ParseGameMode(%q) = %v, want %v", mode.ID(), parsed, mode)
		}
	}

	if _, err := ParseGameMode("marathon"); err == nil {
		t.Error("unknown mode should not parse")
	}
	if _, err := ParseGameMode("Educational Mode"); err == nil {
		t.Error("titles are not IDs and should not parse")
	}
}

func TestGameModeIDsAreDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, mode := range AllGameModes() {
		id := mode.ID()
		if seen[id] {
			t.Errorf("duplicate mode ID %q", id)
		}
		seen[id] = true
		if mode.Title() == "" || mode.Description() == "" {
			t.Errorf("mode %q missing title or description", id)
		}
	}
}
