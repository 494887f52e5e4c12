package game

import (
	"strings"
	"testing"

	"scrambledstates/internal/models"
	"scrambledstates/internal/states"
)

func mustFind(t *testing.T, name string) models.StateCard {
	t.Helper()
	s, ok := states.Find(name)
	if !ok {
		t.Fatalf("state %q not in catalog", name)
	}
	return s
}

func TestHasDoubleLetters(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Tennessee", true},
		{"Mississippi", true},
		{"Connecticut", true},
		{"Ohio", false},
		{"Texas", false},
		{"Utah", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Challenge{Kind: HasDoubleLetters}
			got := c.Matches(models.StateCard{Name: tt.name})
			if got != tt.want {
				t.Errorf("HasDoubleLetters(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"Mississippi", 4},
		{"Maine", 1},     // trailing silent 'e' collapses "ai"+"e" to one
		{"Topeka", 3},
		{"Austin", 2},
		{"Atlanta", 3},
		{"Denver", 2},
		{"Pierre", 1},    // "ie"+"e" minus the silent 'e'
		{"b", 1},         // floor at 1 even with no vowels
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got := CountSyllables(tt.word)
			if got != tt.want {
				t.Errorf("CountSyllables(%s) = %d, want %d", tt.word, got, tt.want)
			}
		})
	}
}

func TestStringChallengesAreCaseInsensitive(t *testing.T) {
	texas := mustFind(t, "Texas")

	tests := []struct {
		name string
		c    Challenge
		want bool
	}{
		{"starts lower", Challenge{Kind: StartsWithLetter, Arg: "t"}, true},
		{"starts upper", Challenge{Kind: StartsWithLetter, Arg: "T"}, true},
		{"starts wrong", Challenge{Kind: StartsWithLetter, Arg: "q"}, false},
		{"ends lower", Challenge{Kind: EndsWithLetter, Arg: "s"}, true},
		{"ends upper", Challenge{Kind: EndsWithLetter, Arg: "S"}, true},
		{"capital lower", Challenge{Kind: MatchCapital, Arg: "austin"}, true},
		{"capital wrong", Challenge{Kind: MatchCapital, Arg: "Dallas"}, false},
		{"nickname lower", Challenge{Kind: MatchNickname, Arg: "lone star state"}, true},
		{"nickname substring", Challenge{Kind: HasNickname, Arg: "LONE"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Matches(texas); got != tt.want {
				t.Errorf("Matches(Texas) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAttributeChallenges(t *testing.T) {
	tests := []struct {
		name  string
		c     Challenge
		state string
		want  bool
	}{
		{"borders yes", Challenge{Kind: BordersWith, Arg: "Oklahoma"}, "Texas", true},
		{"borders no", Challenge{Kind: BordersWith, Arg: "Maine"}, "Texas", false},
		{"syllables", Challenge{Kind: SyllableCount, Count: 2}, "Texas", true},
		{"syllables no", Challenge{Kind: SyllableCount, Count: 4}, "Texas", false},
		{"coastal", Challenge{Kind: IsCoastal}, "Texas", true},
		{"coastal no", Challenge{Kind: IsCoastal}, "Kansas", false},
		{"not coastal", Challenge{Kind: NotCoastal}, "Kansas", true},
		{"region", Challenge{Kind: InRegion, Arg: "South"}, "Texas", true},
		{"region no", Challenge{Kind: InRegion, Arg: "West"}, "Texas", false},
		{"capital syllables", Challenge{Kind: HasCapitalSyllables, Count: 3}, "Kansas", true}, // Topeka
		{"capital person name", Challenge{Kind: CapitalHasName}, "Missouri", true},            // Jefferson City
		{"capital no person name", Challenge{Kind: CapitalHasName}, "Idaho", false},           // Boise
		{"nickname nature", Challenge{Kind: NicknameHasNature}, "Georgia", true},              // Peach State
		{"nickname no nature", Challenge{Kind: NicknameHasNature}, "Delaware", false},         // First State
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustFind(t, tt.state)
			if got := tt.c.Matches(s); got != tt.want {
				t.Errorf("Matches(%s) = %v, want %v", tt.state, got, tt.want)
			}
		})
	}
}

func TestDirectionalChallengesUseLookupTables(t *testing.T) {
	ohio := mustFind(t, "Ohio")
	illinois := mustFind(t, "Illinois")

	if !(Challenge{Kind: EastOf, Arg: "Illinois"}).Matches(ohio) {
		t.Error("Ohio should be east of Illinois")
	}
	if (Challenge{Kind: WestOf, Arg: "Illinois"}).Matches(ohio) {
		t.Error("Ohio should not be west of Illinois")
	}
	if !(Challenge{Kind: WestOf, Arg: "Ohio"}).Matches(illinois) {
		t.Error("Illinois should be west of Ohio")
	}
	if !(Challenge{Kind: NorthOf, Arg: "Florida"}).Matches(ohio) {
		t.Error("Ohio should be north of Florida")
	}
	if (Challenge{Kind: SouthOf, Arg: "Florida"}).Matches(ohio) {
		t.Error("Ohio should not be south of Florida")
	}
}

func TestDirectionalChallengeUnknownStateNeverMatches(t *testing.T) {
	ohio := mustFind(t, "Ohio")

	for _, c := range []Challenge{
		{Kind: EastOf, Arg: "Atlantis"},
		{Kind: WestOf, Arg: "Atlantis"},
		{Kind: NorthOf, Arg: "Atlantis"},
		{Kind: SouthOf, Arg: "Atlantis"},
	} {
		if c.Matches(ohio) {
			t.Errorf("%s should never match against an unknown state", c.Description())
		}
	}

	unknown := models.StateCard{Name: "Atlantis"}
	if (Challenge{Kind: EastOf, Arg: "Ohio"}).Matches(unknown) {
		t.Error("a state missing from the lookup tables should never match")
	}
}

func TestRelativeChallengesRequireHandContext(t *testing.T) {
	texas := mustFind(t, "Texas")
	kansas := mustFind(t, "Kansas")

	relative := []Challenge{
		{Kind: ClosestTo, Ref: kansas},
		{Kind: FarthestFrom, Ref: kansas},
		{Kind: AllEastOf, Arg: "Kansas"},
		{Kind: MostNorthern},
		{Kind: MostSouthern},
		{Kind: MostEastern},
		{Kind: MostWestern},
	}

	for _, c := range relative {
		if c.Matches(texas) {
			t.Errorf("Matches must be false without hand context for %q", c.Description())
		}
		if !c.NeedsHand() {
			t.Errorf("NeedsHand should be true for %q", c.Description())
		}
	}
}

func TestMatchesInHandDelegatesForSimpleChallenges(t *testing.T) {
	texas := mustFind(t, "Texas")
	hand := []models.StateCard{texas}

	c := Challenge{Kind: IsCoastal}
	if !c.MatchesInHand(texas, hand) {
		t.Error("MatchesInHand should delegate to Matches for attribute challenges")
	}
}

func TestDescriptionsIncludeParameters(t *testing.T) {
	kansas := mustFind(t, "Kansas")

	tests := []struct {
		c    Challenge
		want string
	}{
		{Challenge{Kind: BordersWith, Arg: "Texas"}, "Texas"},
		{Challenge{Kind: SyllableCount, Count: 1}, "1 syllable"},
		{Challenge{Kind: SyllableCount, Count: 3}, "3 syllables"},
		{Challenge{Kind: StartsWithLetter, Arg: "K"}, "'K'"},
		{Challenge{Kind: InRegion, Arg: "Midwest"}, "Midwest"},
		{Challenge{Kind: MatchCapital, Arg: "Topeka"}, "Topeka"},
		{Challenge{Kind: ClosestTo, Ref: kansas}, "closest to Kansas"},
		{Challenge{Kind: AllEastOf, Arg: "Ohio"}, "all states that are east of Ohio"},
	}

	for _, tt := range tests {
		desc := tt.c.Description()
		if !strings.Contains(desc, tt.want) {
			t.Errorf("Description() = %q, want it to contain %q", desc, tt.want)
		}
	}
}

func TestMultiAnswer(t *testing.T) {
	if !(Challenge{Kind: AllEastOf, Arg: "Ohio"}).MultiAnswer() {
		t.Error("AllEastOf should be multi-answer")
	}
	if (Challenge{Kind: EastOf, Arg: "Ohio"}).MultiAnswer() {
		t.Error("EastOf should be single-answer")
	}
}
