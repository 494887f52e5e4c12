// Package game implements the challenge engine: challenge generation and
// evaluation, hand dealing, and the per-session match/scoring state machine.
package game

import (
	"fmt"
	"strings"

	"scrambledstates/internal/models"
	"scrambledstates/internal/states"
)

// ChallengeKind enumerates every challenge prompt the game can pose
type ChallengeKind int

const (
	BordersWith ChallengeKind = iota // find a state bordering Arg
	SyllableCount
	StartsWithLetter
	IsCoastal
	InRegion
	HasNickname
	EndsWithLetter
	HasDoubleLetters
	WestOf
	HasCapitalSyllables
	CapitalHasName
	NicknameHasNature
	NotCoastal

	// Exact capital/nickname matching
	MatchCapital
	MatchNickname

	// Geographic challenges
	ClosestTo
	FarthestFrom
	NorthOf
	SouthOf
	EastOf
	AllEastOf // multi-answer: find every matching card
	MostNorthern
	MostSouthern
	MostEastern
	MostWestern
)

// Challenge is one round's objective: a parameterized predicate over
// states plus a human-readable prompt. Challenges are values, created
// fresh each round and discarded when the round resolves.
type Challenge struct {
	Kind  ChallengeKind
	Arg   string            // state name, letter, region, word, capital or nickname
	Count int               // syllable challenges
	Ref   models.StateCard  // reference state for ClosestTo/FarthestFrom
}

// Description renders the prompt shown (and spoken) to the player
func (c Challenge) Description() string {
	switch c.Kind {
	case BordersWith:
		return fmt.Sprintf("Find a state that borders %s", c.Arg)
	case SyllableCount:
		return fmt.Sprintf("Find a state with %d syllable%s", c.Count, plural(c.Count))
	case StartsWithLetter:
		return fmt.Sprintf("Find a state starting with '%s'", c.Arg)
	case IsCoastal:
		return "Find a coastal state"
	case InRegion:
		return fmt.Sprintf("Find a state in the %s", c.Arg)
	case HasNickname:
		return fmt.Sprintf("Find '%s' state", c.Arg)
	case EndsWithLetter:
		return fmt.Sprintf("Find a state ending with '%s'", c.Arg)
	case HasDoubleLetters:
		return "Find a state with two of the same letters in a row"
	case WestOf:
		return fmt.Sprintf("Find a state west of %s", c.Arg)
	case HasCapitalSyllables:
		return fmt.Sprintf("Find a state with a %d-syllable capital", c.Count)
	case CapitalHasName:
		return "Find a capital with a person's first name in it"
	case NicknameHasNature:
		return "Find a state with a plant or animal in its nickname"
	case NotCoastal:
		return "Find a state that does not touch an ocean"
	case MatchCapital:
		return fmt.Sprintf("Find the state whose capital is %s", c.Arg)
	case MatchNickname:
		return fmt.Sprintf("Find '%s'", c.Arg)
	case ClosestTo:
		return fmt.Sprintf("Find the state closest to %s", c.Ref.Name)
	case FarthestFrom:
		return fmt.Sprintf("Find the state farthest from %s", c.Ref.Name)
	case NorthOf:
		return fmt.Sprintf("Find a state north of %s", c.Arg)
	case SouthOf:
		return fmt.Sprintf("Find a state south of %s", c.Arg)
	case EastOf:
		return fmt.Sprintf("Find a state east of %s", c.Arg)
	case AllEastOf:
		return fmt.Sprintf("Find all states that are east of %s", c.Arg)
	case MostNorthern:
		return "Find the northernmost state"
	case MostSouthern:
		return "Find the southernmost state"
	case MostEastern:
		return "Find the easternmost state"
	case MostWestern:
		return "Find the westernmost state"
	default:
		return ""
	}
}

// Matches reports whether a single state satisfies the challenge without
// any hand context. Challenges that compare cards against each other
// (closest/farthest, all-east-of, the superlatives) always return false
// here; they can only be resolved by MatchesInHand.
func (c Challenge) Matches(s models.StateCard) bool {
	switch c.Kind {
	case BordersWith:
		return s.Borders(c.Arg)
	case SyllableCount:
		return s.Syllables == c.Count
	case StartsWithLetter:
		return strings.HasPrefix(strings.ToLower(s.Name), strings.ToLower(c.Arg))
	case IsCoastal:
		return s.Coastal
	case InRegion:
		return s.Region == c.Arg
	case HasNickname:
		return strings.Contains(strings.ToLower(s.Nickname), strings.ToLower(c.Arg))
	case EndsWithLetter:
		return strings.HasSuffix(strings.ToLower(s.Name), strings.ToLower(c.Arg))
	case HasDoubleLetters:
		return hasDoubleLetters(s.Name)
	case WestOf:
		return isWestOf(s.Name, c.Arg)
	case EastOf:
		return isEastOf(s.Name, c.Arg)
	case NorthOf:
		return isNorthOf(s.Name, c.Arg)
	case SouthOf:
		return isSouthOf(s.Name, c.Arg)
	case HasCapitalSyllables:
		return CountSyllables(s.Capital) == c.Count
	case CapitalHasName:
		return capitalHasPersonName(s.Capital)
	case NicknameHasNature:
		return nicknameHasNature(s.Nickname)
	case NotCoastal:
		return !s.Coastal
	case MatchCapital:
		return strings.EqualFold(s.Capital, c.Arg)
	case MatchNickname:
		return strings.EqualFold(s.Nickname, c.Arg)
	case ClosestTo, FarthestFrom, AllEastOf,
		MostNorthern, MostSouthern, MostEastern, MostWestern:
		// Resolvable only against the full hand
		return false
	default:
		return false
	}
}

// MatchesInHand reports whether a state satisfies the challenge, using
// the dealt hand as the comparison universe for relative challenges.
func (c Challenge) MatchesInHand(s models.StateCard, hand []models.StateCard) bool {
	switch c.Kind {
	case ClosestTo:
		return isClosest(s, c.Ref, hand)
	case FarthestFrom:
		return isFarthest(s, c.Ref, hand)
	case AllEastOf:
		return isEastOf(s.Name, c.Arg)
	case MostNorthern:
		return isMostNorthern(s, hand)
	case MostSouthern:
		return isMostSouthern(s, hand)
	case MostEastern:
		return isMostEastern(s, hand)
	case MostWestern:
		return isMostWestern(s, hand)
	default:
		return c.Matches(s)
	}
}

// MultiAnswer reports whether the round only ends once every matching
// card in the hand has been found.
func (c Challenge) MultiAnswer() bool {
	return c.Kind == AllEastOf
}

// NeedsHand reports whether the challenge can only be evaluated with
// hand context.
func (c Challenge) NeedsHand() bool {
	switch c.Kind {
	case ClosestTo, FarthestFrom, AllEastOf,
		MostNorthern, MostSouthern, MostEastern, MostWestern:
		return true
	}
	return false
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

// hasDoubleLetters reports whether the name contains two identical
// adjacent letters (case-insensitive).
func hasDoubleLetters(name string) bool {
	lower := strings.ToLower(name)
	for i := 0; i+1 < len(lower); i++ {
		if lower[i] == lower[i+1] {
			return true
		}
	}
	return false
}

// CountSyllables estimates syllables by counting vowel-group transitions
// ('y' counts as a vowel), with a silent trailing 'e' adjustment. The
// result is floored at 1. State names carry a precomputed count in the
// catalog; capitals are counted on demand.
func CountSyllables(word string) int {
	const vowels = "aeiouy"
	lower := strings.ToLower(word)

	count := 0
	previousWasVowel := false
	for _, r := range lower {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !previousWasVowel {
			count++
		}
		previousWasVowel = isVowel
	}

	if strings.HasSuffix(lower, "e") && count > 1 {
		count--
	}

	if count < 1 {
		return 1
	}
	return count
}

// personNames are common first names found in state capitals
var personNames = []string{
	"frank", "jefferson", "james", "charles", "jackson", "lincoln",
	"madison", "john", "thomas", "george", "pierre", "austin", "santa",
}

func capitalHasPersonName(capital string) bool {
	lower := strings.ToLower(capital)
	for _, name := range personNames {
		if strings.Contains(lower, name) {
			return true
		}
	}
	return false
}

// natureWords are plants and animals found in state nicknames
var natureWords = []string{
	"peach", "beaver", "bear", "mountain", "pine", "magnolia",
	"sunshine", "golden", "granite", "garden", "palm", "cotton",
	"lone star", "evergreen", "badger", "buckeye", "pelican",
	"sunflower", "beehive", "hawkeye", "ocean", "prairie",
}

func nicknameHasNature(nickname string) bool {
	lower := strings.ToLower(nickname)
	for _, word := range natureWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// Directional checks read the curated lookup tables, not the cards'
// own coordinates. A state missing from the tables never matches.

func isWestOf(name, other string) bool {
	lon, ok := states.Longitude(name)
	otherLon, otherOK := states.Longitude(other)
	return ok && otherOK && lon < otherLon
}

func isEastOf(name, other string) bool {
	lon, ok := states.Longitude(name)
	otherLon, otherOK := states.Longitude(other)
	return ok && otherOK && lon > otherLon
}

func isNorthOf(name, other string) bool {
	lat, ok := states.Latitude(name)
	otherLat, otherOK := states.Latitude(other)
	return ok && otherOK && lat > otherLat
}

func isSouthOf(name, other string) bool {
	lat, ok := states.Latitude(name)
	otherLat, otherOK := states.Latitude(other)
	return ok && otherOK && lat < otherLat
}
