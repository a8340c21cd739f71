package suggest

import (
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// DefaultMaxDistance is the largest edit distance still treated as a typo
const DefaultMaxDistance = 2

// Closest returns the candidate with the smallest edit distance to input.
// Returns false if no candidate is within maxDistance or input is empty.
// Ties keep the earliest candidate.
func Closest(input string, candidates []string, maxDistance int) (string, bool) {
	if input == "" || len(candidates) == 0 {
		return "", false
	}

	source := []rune(input)
	best := ""
	bestDistance := maxDistance + 1

	for _, candidate := range candidates {
		if candidate == input {
			return candidate, true
		}

		distance := levenshtein.DistanceForStrings(source, []rune(candidate), levenshtein.DefaultOptions)
		if distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}

	if bestDistance > maxDistance {
		return "", false
	}

	return best, true
}
