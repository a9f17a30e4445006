// internal/match/classify/classify.go
package classify

import (
	"strings"

	"skillmatch/internal/match/catalog"
)

// Classify maps free-text role/industry strings to a curated track by
// counting keyword-substring hits against the concatenated, lowercased text.
// The highest count wins; ties break toward the earlier declaration in the
// catalog. A score of 0 means no track matched at all and must be treated as
// "no confident classification", never as a selection of the first track.
func Classify(role, industry string) (catalog.Track, int) {
	text := strings.ToLower(role + " " + industry)

	best := catalog.Tracks[0].Track
	bestScore := 0
	for _, p := range catalog.Tracks {
		score := 0
		for _, kw := range p.Keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > bestScore {
			best = p.Track
			bestScore = score
		}
	}
	return best, bestScore
}
