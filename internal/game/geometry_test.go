package game

import (
	"math"
	"testing"

	"scrambledstates/internal/models"
)

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"California", "Maine"},
		{"Texas", "Alaska"},
		{"Florida", "Washington"},
		{"Kansas", "Hawaii"},
	}

	for _, pair := range pairs {
		a := mustFind(t, pair[0])
		b := mustFind(t, pair[1])
		if d1, d2 := distance(a, b), distance(b, a); d1 != d2 {
			t.Errorf("distance(%s, %s) = %v but distance(%s, %s) = %v",
				pair[0], pair[1], d1, pair[1], pair[0], d2)
		}
	}
}

func TestDistanceToSelfIsZero(t *testing.T) {
	kansas := mustFind(t, "Kansas")
	if d := distance(kansas, kansas); d != 0 {
		t.Errorf("distance(Kansas, Kansas) = %v, want 0", d)
	}
}

func TestDistanceIsPositiveAndBounded(t *testing.T) {
	a := mustFind(t, "Maine")
	b := mustFind(t, "Hawaii")
	d := distance(a, b)
	if d <= 0 || d > math.Pi {
		t.Errorf("distance(Maine, Hawaii) = %v, want in (0, pi]", d)
	}
}

func TestIsClosest(t *testing.T) {
	california := mustFind(t, "California")
	nevada := mustFind(t, "Nevada")
	florida := mustFind(t, "Florida")
	maine := mustFind(t, "Maine")
	texas := mustFind(t, "Texas")

	hand := []models.StateCard{nevada, florida, maine, texas}

	if !isClosest(nevada, california, hand) {
		t.Error("Nevada should be closest to California in this hand")
	}
	if isClosest(florida, california, hand) {
		t.Error("Florida should not be closest to California in this hand")
	}
}

func TestIsFarthest(t *testing.T) {
	california := mustFind(t, "California")
	nevada := mustFind(t, "Nevada")
	florida := mustFind(t, "Florida")
	maine := mustFind(t, "Maine")
	texas := mustFind(t, "Texas")

	hand := []models.StateCard{nevada, florida, maine, texas}

	if !isFarthest(maine, california, hand) {
		t.Error("Maine should be farthest from California in this hand")
	}
	if isFarthest(nevada, california, hand) {
		t.Error("Nevada should not be farthest from California in this hand")
	}
}

func TestClosestExcludesReferenceFromPool(t *testing.T) {
	california := mustFind(t, "California")
	nevada := mustFind(t, "Nevada")

	// The reference in the hand must not crowd out real candidates.
	hand := []models.StateCard{california, nevada}
	if !isClosest(nevada, california, hand) {
		t.Error("the reference state should be skipped when scanning the pool")
	}
	if isClosest(california, california, hand) {
		t.Error("the reference state itself should never win")
	}
}

func TestClosestWithEmptyPoolMatchesNothing(t *testing.T) {
	california := mustFind(t, "California")

	if isClosest(california, california, []models.StateCard{california}) {
		t.Error("a pool holding only the reference should match nothing")
	}
	if isFarthest(california, california, nil) {
		t.Error("an empty pool should match nothing")
	}
}

func TestSuperlativesWithinHand(t *testing.T) {
	minnesota := mustFind(t, "Minnesota")
	texas := mustFind(t, "Texas")
	maine := mustFind(t, "Maine")
	california := mustFind(t, "California")
	kansas := mustFind(t, "Kansas")

	hand := []models.StateCard{minnesota, texas, maine, california, kansas}

	tests := []struct {
		name  string
		check func(models.StateCard, []models.StateCard) bool
		want  models.StateCard
	}{
		{"northern", isMostNorthern, minnesota},
		{"southern", isMostSouthern, texas},
		{"eastern", isMostEastern, maine},
		{"western", isMostWestern, california},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.check(tt.want, hand) {
				t.Errorf("%s should win the %s superlative in this hand", tt.want.Name, tt.name)
			}
			if tt.check(kansas, hand) {
				t.Errorf("Kansas should not win the %s superlative in this hand", tt.name)
			}
		})
	}
}

func TestSuperlativesAreTieInclusive(t *testing.T) {
	a := models.StateCard{Name: "A", Latitude: 40, Longitude: -100}
	b := models.StateCard{Name: "B", Latitude: 40, Longitude: -90}
	c := models.StateCard{Name: "C", Latitude: 30, Longitude: -95}
	hand := []models.StateCard{a, b, c}

	if !isMostNorthern(a, hand) || !isMostNorthern(b, hand) {
		t.Error("both cards at the maximum latitude should count as northernmost")
	}
	if isMostNorthern(c, hand) {
		t.Error("a card below the maximum latitude should not count")
	}
}

func TestSuperlativesWithEmptyHandMatchNothing(t *testing.T) {
	kansas := mustFind(t, "Kansas")
	if isMostNorthern(kansas, nil) || isMostSouthern(kansas, nil) ||
		isMostEastern(kansas, nil) || isMostWestern(kansas, nil) {
		t.Error("superlatives over an empty hand should match nothing")
	}
}
