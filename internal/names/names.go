// Package names generates friendly username suggestions for new player
// profiles.
package names

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var adjectives = []string{
	"happy", "sunny", "brave", "bright", "cool", "swift", "clever", "jolly",
	"mighty", "super", "star", "wild", "funny", "lucky", "magic", "bouncy",
	"cheerful", "daring", "eager", "flying", "gentle", "speedy", "jazzy", "kindly",
	"lively", "merry", "noble", "perky", "quick", "royal", "snappy", "turbo",
	"zippy", "awesome", "bold", "cosmic", "dynamic", "epic", "fantastic", "groovy",
}

// Nouns lean on American geography so the suggestions fit the game
var nouns = []string{
	"bison", "eagle", "gator", "moose", "mustang", "bobcat", "condor", "coyote",
	"canyon", "prairie", "mesa", "bayou", "glacier", "geyser", "redwood", "sequoia",
	"ranger", "pioneer", "explorer", "trailblazer", "mapper", "scout", "voyager", "wanderer",
	"summit", "river", "lakeside", "dune", "cascade", "badlands", "everglade", "yosemite",
}

// Suggest returns a random "adjective_noun" username. The output always
// passes profile username validation.
func Suggest() (string, error) {
	adjective, err := randomElement(adjectives)
	if err != nil {
		return "", err
	}

	noun, err := randomElement(nouns)
	if err != nil {
		return "", err
	}

	return adjective + "_" + noun, nil
}

// SuggestNumbered appends a random two-digit suffix, for when the plain
// suggestion is already taken.
func SuggestNumbered() (string, error) {
	base, err := Suggest()
	if err != nil {
		return "", err
	}

	n, err := rand.Int(rand.Reader, big.NewInt(90))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", base, n.Int64()+10), nil
}

func randomElement(slice []string) (string, error) {
	num, err := rand.Int(rand.Reader, big.NewInt(int64(len(slice))))
	if err != nil {
		return "", err
	}
	return slice[num.Int64()], nil
}
