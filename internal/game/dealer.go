package game

import (
	"math/rand"
	"time"

	"scrambledstates/internal/models"
)

// maxDealAttempts bounds the retry loop when a generated challenge has
// no matching state in the catalog.
const maxDealAttempts = 20

// HandSize is the number of cards dealt every round
const HandSize = 5

// Round is one dealt round: a challenge plus the shuffled hand that is
// guaranteed to contain at least one matching card.
type Round struct {
	Challenge Challenge
	Hand      []models.StateCard
}

// Dealer picks challenges per game mode, verifies they are satisfiable
// against the catalog, and assembles hands. It never fails: if no
// satisfiable challenge is found after maxDealAttempts, it degrades to a
// trivial first-letter challenge over a random hand.
type Dealer struct {
	catalog []models.StateCard
	rng     *rand.Rand
}

// NewDealer creates a dealer over the given catalog. A nil rng gets a
// time-seeded source.
func NewDealer(catalog []models.StateCard, rng *rand.Rand) *Dealer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Dealer{catalog: catalog, rng: rng}
}

// Deal produces the next round for the given mode
func (d *Dealer) Deal(mode models.GameMode) Round {
	if mode == models.ModeDistance {
		return d.dealDistance()
	}
	return d.dealStandard(mode)
}

// dealStandard covers Educational, Speed and Match-a-State: generate a
// challenge, retry until it is satisfiable against the full catalog,
// then deal one guaranteed match plus four random fillers.
func (d *Dealer) dealStandard(mode models.GameMode) Round {
	challenge := d.generate(mode)
	matching := d.matchingStates(challenge)

	for attempts := 0; len(matching) == 0 && attempts < maxDealAttempts; attempts++ {
		challenge = d.generate(mode)
		matching = d.matchingStates(challenge)
	}

	if len(matching) == 0 {
		return d.fallbackRound()
	}

	seed := matching[d.rng.Intn(len(matching))]
	hand := append([]models.StateCard{seed}, d.randomStates(HandSize-1, seed.Name)...)
	d.rng.Shuffle(len(hand), func(i, j int) {
		hand[i], hand[j] = hand[j], hand[i]
	})

	return Round{Challenge: challenge, Hand: hand}
}

// dealDistance covers Go the Distance. Closest/farthest and the
// superlatives are satisfiable by any hand, so those deal random cards
// (the reference state never appears in the hand). Directional
// challenges seed one guaranteed match so the hand always has an answer.
func (d *Dealer) dealDistance() Round {
	challenge := d.generateDistance()

	for attempts := 0; attempts < maxDealAttempts; attempts++ {
		switch challenge.Kind {
		case ClosestTo, FarthestFrom:
			hand := d.randomStates(HandSize, challenge.Ref.Name)
			return Round{Challenge: challenge, Hand: hand}

		case MostNorthern, MostSouthern, MostEastern, MostWestern:
			hand := d.randomStates(HandSize, "")
			return Round{Challenge: challenge, Hand: hand}

		default:
			// NorthOf, SouthOf, EastOf, AllEastOf
			matching := d.matchingDirectional(challenge)
			if len(matching) == 0 {
				break
			}
			seed := matching[d.rng.Intn(len(matching))]
			hand := append([]models.StateCard{seed}, d.randomStates(HandSize-1, seed.Name)...)
			d.rng.Shuffle(len(hand), func(i, j int) {
				hand[i], hand[j] = hand[j], hand[i]
			})
			return Round{Challenge: challenge, Hand: hand}
		}
		challenge = d.generateDistance()
	}

	return d.fallbackRound()
}

// fallbackRound deals five random cards and a first-letter challenge the
// first card trivially satisfies. Deliberately much weaker than the
// normal selection rule; it only triggers after maxDealAttempts misses.
func (d *Dealer) fallbackRound() Round {
	hand := d.randomStates(HandSize, "")
	challenge := Challenge{
		Kind: StartsWithLetter,
		Arg:  hand[0].Name[:1],
	}
	return Round{Challenge: challenge, Hand: hand}
}

// matchingStates filters the catalog with the context-free matcher
func (d *Dealer) matchingStates(c Challenge) []models.StateCard {
	var matching []models.StateCard
	for _, s := range d.catalog {
		if c.Matches(s) {
			matching = append(matching, s)
		}
	}
	return matching
}

// matchingDirectional filters the catalog for directional challenges,
// including the multi-answer AllEastOf which the context-free matcher
// refuses to evaluate.
func (d *Dealer) matchingDirectional(c Challenge) []models.StateCard {
	var matching []models.StateCard
	for _, s := range d.catalog {
		var ok bool
		switch c.Kind {
		case NorthOf:
			ok = isNorthOf(s.Name, c.Arg)
		case SouthOf:
			ok = isSouthOf(s.Name, c.Arg)
		case EastOf, AllEastOf:
			ok = isEastOf(s.Name, c.Arg)
		}
		if ok {
			matching = append(matching, s)
		}
	}
	return matching
}

// randomStates returns n distinct random catalog states, skipping the
// excluded name when given.
func (d *Dealer) randomStates(n int, exclude string) []models.StateCard {
	pool := make([]models.StateCard, 0, len(d.catalog))
	for _, s := range d.catalog {
		if s.Name != exclude {
			pool = append(pool, s)
		}
	}
	d.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}

func (d *Dealer) generate(mode models.GameMode) Challenge {
	switch mode {
	case models.ModeSpeed:
		return d.generateSpeed()
	case models.ModeMatch:
		return d.generateMatch()
	default:
		return d.generateEducational()
	}
}

// Parameter source lists for the generators. Widely-known states make
// for better prompts than a uniform draw over the catalog.
var (
	educationalCommonStates = []string{
		"Texas", "California", "New York", "Florida", "Illinois",
		"Pennsylvania", "Ohio", "Georgia", "Michigan", "Virginia",
		"Tennessee", "Missouri", "Wisconsin", "Washington", "Colorado",
	}
	educationalDirectionStates = []string{
		"Kansas", "Mississippi", "Ohio", "Illinois", "Missouri",
		"Tennessee", "Virginia", "Iowa", "Colorado", "Texas",
		"Georgia", "Michigan", "Wisconsin", "Indiana", "Kentucky",
	}
	speedCommonStates = []string{
		"Texas", "California", "New York", "Florida", "Illinois",
		"Pennsylvania", "Ohio", "Georgia", "Michigan", "Virginia",
	}
	speedDirectionStates = []string{
		"Kansas", "Mississippi", "Ohio", "Illinois", "Missouri",
		"Tennessee", "Virginia", "Iowa", "Colorado", "Georgia",
	}
	speedReferenceStates = []string{
		"Kansas", "Nevada", "Tennessee", "Virginia", "Colorado",
		"Missouri", "Iowa", "Colorado", "Georgia", "Michigan",
	}
	distanceReferenceStates = []string{
		"California", "Texas", "Florida", "New York", "Maine",
		"Alaska", "Hawaii", "Washington", "Montana", "Louisiana",
	}
	distanceDirectionStates = []string{
		"Kansas", "Ohio", "Tennessee", "Virginia", "Illinois",
		"Missouri", "Iowa", "Colorado", "Georgia", "Michigan",
	}
)

// generateEducational draws from the attribute challenges only: no
// capital questions and no distance comparisons.
func (d *Dealer) generateEducational() Challenge {
	pool := []Challenge{
		{Kind: SyllableCount, Count: 2 + d.rng.Intn(4)},
		{Kind: StartsWithLetter, Arg: d.randomLetter("ABCDEFGHIJKLMNOPQRSTUVWXYZ")},
		{Kind: IsCoastal},
		{Kind: InRegion, Arg: d.pick([]string{"South", "West", "Northeast", "Midwest"})},
		{Kind: EndsWithLetter, Arg: d.randomLetter("AEIOU")},
		{Kind: BordersWith, Arg: d.pick(educationalCommonStates)},
		{Kind: HasDoubleLetters},
		{Kind: NicknameHasNature},
		{Kind: NotCoastal},
		{Kind: WestOf, Arg: d.pick(educationalDirectionStates)},
		{Kind: EastOf, Arg: d.pick(educationalDirectionStates)},
		{Kind: NorthOf, Arg: d.pick(educationalDirectionStates)},
		{Kind: SouthOf, Arg: d.pick(educationalDirectionStates)},
	}
	return pool[d.rng.Intn(len(pool))]
}

// generateSpeed extends the educational pool with the distance
// challenges from Go the Distance.
func (d *Dealer) generateSpeed() Challenge {
	ref, ok := d.findState(d.pick(speedReferenceStates))
	if !ok {
		return d.generateEducational()
	}

	pool := []Challenge{
		{Kind: SyllableCount, Count: 2 + d.rng.Intn(4)},
		{Kind: StartsWithLetter, Arg: d.randomLetter("ABCDEFGHIJKLMNOPQRSTUVWXYZ")},
		{Kind: IsCoastal},
		{Kind: InRegion, Arg: d.pick([]string{"South", "West", "Northeast", "Midwest"})},
		{Kind: EndsWithLetter, Arg: d.randomLetter("AEIOU")},
		{Kind: BordersWith, Arg: d.pick(speedCommonStates)},
		{Kind: HasDoubleLetters},
		{Kind: NicknameHasNature},
		{Kind: NotCoastal},
		{Kind: WestOf, Arg: d.pick(speedDirectionStates)},
		{Kind: EastOf, Arg: d.pick(speedDirectionStates)},
		{Kind: NorthOf, Arg: d.pick(speedDirectionStates)},
		{Kind: SouthOf, Arg: d.pick(speedDirectionStates)},
		{Kind: ClosestTo, Ref: ref},
		{Kind: FarthestFrom, Ref: ref},
		{Kind: MostNorthern},
		{Kind: MostSouthern},
		{Kind: MostEastern},
		{Kind: MostWestern},
	}
	return pool[d.rng.Intn(len(pool))]
}

// generateMatch asks for a uniformly random state's capital or nickname
func (d *Dealer) generateMatch() Challenge {
	s := d.catalog[d.rng.Intn(len(d.catalog))]
	if d.rng.Intn(2) == 0 {
		return Challenge{Kind: MatchCapital, Arg: s.Capital}
	}
	return Challenge{Kind: MatchNickname, Arg: s.Nickname}
}

// generateDistance draws a geographic challenge for Go the Distance
func (d *Dealer) generateDistance() Challenge {
	ref, ok := d.findState(d.pick(distanceReferenceStates))
	if !ok {
		return Challenge{Kind: MostNorthern}
	}

	pool := []Challenge{
		{Kind: ClosestTo, Ref: ref},
		{Kind: FarthestFrom, Ref: ref},
		{Kind: NorthOf, Arg: d.pick(distanceDirectionStates)},
		{Kind: SouthOf, Arg: d.pick(distanceDirectionStates)},
		{Kind: EastOf, Arg: d.pick(distanceDirectionStates)},
		{Kind: AllEastOf, Arg: d.pick(distanceDirectionStates)},
		{Kind: MostNorthern},
		{Kind: MostSouthern},
		{Kind: MostEastern},
		{Kind: MostWestern},
	}
	return pool[d.rng.Intn(len(pool))]
}

func (d *Dealer) findState(name string) (models.StateCard, bool) {
	for _, s := range d.catalog {
		if s.Name == name {
			return s, true
		}
	}
	return models.StateCard{}, false
}

func (d *Dealer) pick(options []string) string {
	return options[d.rng.Intn(len(options))]
}

func (d *Dealer) randomLetter(alphabet string) string {
	return string(alphabet[d.rng.Intn(len(alphabet))])
}
