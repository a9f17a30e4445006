// internal/match/scoring/seniority.go
package scoring

import (
	"math"
	"strings"

	"skillmatch/internal/match/catalog"
)

// Seniority is the evidence band inferred from a role title.
type Seniority string

const (
	SeniorityJunior Seniority = "junior"
	SeniorityMid    Seniority = "mid"
	SenioritySenior Seniority = "senior"
)

// InferSeniority counts keyword hits per band in the role string. Senior or
// junior wins only on a strict majority over both other bands; mid is the
// tie-break default.
func InferSeniority(role string) Seniority {
	words := strings.Fields(strings.ToLower(role))
	wordSet := make(map[string]struct{}, len(words))
	for _, w := range words {
		wordSet[strings.Trim(w, ".,()-/")] = struct{}{}
	}

	count := func(keywords []string) int {
		n := 0
		for _, kw := range keywords {
			if _, ok := wordSet[kw]; ok {
				n++
			}
		}
		return n
	}

	junior := count(catalog.JuniorKeywords)
	mid := count(catalog.MidKeywords)
	senior := count(catalog.SeniorKeywords)

	switch {
	case senior > junior && senior > mid:
		return SenioritySenior
	case junior > senior && junior > mid:
		return SeniorityJunior
	default:
		return SeniorityMid
	}
}

// Confidence baselines per seniority band. Senior roles require more
// evidence, so they start lower.
var confidenceBase = map[Seniority]int{
	SeniorityJunior: 56,
	SeniorityMid:    50,
	SenioritySenior: 44,
}

// Expected listed-skill counts per band, used by the sufficiency term.
var expectedSkills = map[Seniority]int{
	SeniorityJunior: 6,
	SeniorityMid:    10,
	SenioritySenior: 14,
}

const confidenceCap = 96

func confidenceScore(s Seniority, listed, criticalCoverage, consistency, missingCritical int) int {
	conf := float64(confidenceBase[s])

	expected := expectedSkills[s]
	sufficiency := float64(listed) / float64(expected) * 26
	if sufficiency > 26 {
		sufficiency = 26
	}
	conf += sufficiency

	conf += math.Min(24, float64(criticalCoverage)*0.24)

	adj := float64(consistency-50) / 50 * 8
	if adj > 8 {
		adj = 8
	} else if adj < -8 {
		adj = -8
	}
	conf += adj

	conf -= math.Min(10, float64(missingCritical)*4)

	out := int(math.Round(conf))
	if out < 0 {
		out = 0
	}
	if out > confidenceCap {
		out = confidenceCap
	}
	return out
}
