package game

import (
	"math"

	"scrambledstates/internal/models"
)

// distance returns the great-circle central angle between two states'
// coordinates, in radians. Only relative ordering is ever needed, so the
// result is never scaled to kilometers.
func distance(a, b models.StateCard) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// isClosest reports whether s is at the minimum distance from the
// reference among the given cards. The reference itself is excluded from
// the pool; ties at the minimum all count as closest. An empty pool
// matches nothing.
func isClosest(s, reference models.StateCard, cards []models.StateCard) bool {
	minDist := math.Inf(1)
	found := false
	for _, c := range cards {
		if c.Same(reference) {
			continue
		}
		found = true
		if d := distance(reference, c); d < minDist {
			minDist = d
		}
	}
	if !found {
		return false
	}
	return distance(reference, s) == minDist
}

// isFarthest mirrors isClosest with the maximum distance
func isFarthest(s, reference models.StateCard, cards []models.StateCard) bool {
	maxDist := math.Inf(-1)
	found := false
	for _, c := range cards {
		if c.Same(reference) {
			continue
		}
		found = true
		if d := distance(reference, c); d > maxDist {
			maxDist = d
		}
	}
	if !found {
		return false
	}
	return distance(reference, s) == maxDist
}

// The superlatives compare coordinates within the dealt hand only,
// tie-inclusive: every card sharing the extremum counts.

func isMostNorthern(s models.StateCard, cards []models.StateCard) bool {
	if len(cards) == 0 {
		return false
	}
	max := math.Inf(-1)
	for _, c := range cards {
		if c.Latitude > max {
			max = c.Latitude
		}
	}
	return s.Latitude == max
}

func isMostSouthern(s models.StateCard, cards []models.StateCard) bool {
	if len(cards) == 0 {
		return false
	}
	min := math.Inf(1)
	for _, c := range cards {
		if c.Latitude < min {
			min = c.Latitude
		}
	}
	return s.Latitude == min
}

func isMostEastern(s models.StateCard, cards []models.StateCard) bool {
	if len(cards) == 0 {
		return false
	}
	max := math.Inf(-1)
	for _, c := range cards {
		if c.Longitude > max {
			max = c.Longitude
		}
	}
	return s.Longitude == max
}

func isMostWestern(s models.StateCard, cards []models.StateCard) bool {
	if len(cards) == 0 {
		return false
	}
	min := math.Inf(1)
	for _, c := range cards {
		if c.Longitude < min {
			min = c.Longitude
		}
	}
	return s.Longitude == min
}
