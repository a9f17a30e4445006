// internal/match/scoring/scoring.go
package scoring

import (
	"math"
	"sync"

	"skillmatch/internal/match/catalog"
	"skillmatch/internal/match/normalize"
	"skillmatch/internal/match/profile"
)

// Aggregate weights. They sum to 1.00.
const (
	weightCritical    = 0.40
	weightBlueprint   = 0.26
	weightKeyword     = 0.18
	weightProfile     = 0.10
	weightConsistency = 0.06
)

// Input carries everything the engine needs for one scoring pass.
type Input struct {
	Role           string
	Skills         []string // normalized, deduplicated
	ListedCount    int      // items as the candidate listed them
	DuplicateCount int
	Resolved       profile.Resolved
}

// Breakdown is the full scoring result. A fresh value per call; never
// mutated after construction.
type Breakdown struct {
	CriticalCoverage  int `json:"criticalCoverage"`
	BlueprintCoverage int `json:"blueprintCoverage"`
	KeywordOverlap    int `json:"keywordOverlap"`
	ProfileQuality    int `json:"profileQuality"`
	TrackConsistency  int `json:"trackConsistency"`

	Overall           int `json:"overall"`
	StrictnessPenalty int `json:"strictnessPenalty"`
	Confidence        int `json:"confidence"`
	PredictionLow     int `json:"predictionLow"`
	PredictionHigh    int `json:"predictionHigh"`

	Seniority       Seniority `json:"seniority"`
	MatchedCritical []string  `json:"matchedCritical"`
	MissingCritical []string  `json:"missingCritical"`
}

// Score runs the five sub-scores and the aggregation for one candidate.
// Pure and synchronous: no I/O, no shared state between calls.
func Score(in Input) Breakdown {
	skillSet := toSet(in.Skills)
	matched, missing := splitCritical(in.Resolved.Critical, skillSet)

	critical := criticalCoverage(len(matched), len(in.Resolved.Critical))
	blueprint := blueprintCoverage(in.Resolved.Blueprint, skillSet)
	keyword := keywordOverlap(in.Resolved, in.Skills, skillSet)
	quality := profileQuality(in)
	consistency := trackConsistency(in.Resolved, in.Skills, skillSet)

	raw := weightCritical*float64(critical) +
		weightBlueprint*float64(blueprint) +
		weightKeyword*float64(keyword) +
		weightProfile*float64(quality) +
		weightConsistency*float64(consistency)

	// Adaptive blueprints are self-referential and naturally easier to
	// satisfy, so they get the smaller penalty cap.
	penaltyCap := 18.0
	if in.Resolved.IsAdaptive {
		penaltyCap = 14.0
	}
	penalty := float64(len(missing))*6 + math.Max(0, 45-float64(consistency))*0.22
	if penalty > penaltyCap {
		penalty = penaltyCap
	}

	overall := clamp(int(math.Round(raw - penalty)))
	seniority := InferSeniority(in.Role)
	confidence := confidenceScore(seniority, in.ListedCount, critical, consistency, len(missing))

	uncertainty := int(math.Round(float64(100-confidence) * 0.18))
	if uncertainty < 6 {
		uncertainty = 6
	}

	return Breakdown{
		CriticalCoverage:  critical,
		BlueprintCoverage: blueprint,
		KeywordOverlap:    keyword,
		ProfileQuality:    quality,
		TrackConsistency:  consistency,
		Overall:           overall,
		StrictnessPenalty: int(math.Round(penalty)),
		Confidence:        confidence,
		PredictionLow:     clamp(overall - uncertainty),
		PredictionHigh:    clamp(overall + uncertainty),
		Seniority:         seniority,
		MatchedCritical:   matched,
		MissingCritical:   missing,
	}
}

func splitCritical(critical []string, skills map[string]struct{}) (matched, missing []string) {
	matched = []string{}
	missing = []string{}
	for _, c := range critical {
		if _, ok := skills[c]; ok {
			matched = append(matched, c)
		} else {
			missing = append(missing, c)
		}
	}
	return matched, missing
}

func criticalCoverage(matched, total int) int {
	if total == 0 {
		return 100
	}
	return clamp(int(math.Round(float64(matched) / float64(total) * 100)))
}

func blueprintCoverage(b catalog.Blueprint, skills map[string]struct{}) int {
	core := hitRatio(b.Core, skills)
	adjacent := hitRatio(b.Adjacent, skills)
	return clamp(int(math.Round(0.78*core*100 + 0.22*adjacent*100)))
}

// keywordOverlap blends exact-phrase matches (72%) with word-level overlap
// (28%) against the track's target phrases. Candidates listing five or more
// skills are floored at 32: exact-phrase matching is brittle against verbose
// but relevant profiles.
func keywordOverlap(res profile.Resolved, skills []string, skillSet map[string]struct{}) int {
	targets := targetPhrases(res)
	if len(targets) == 0 {
		return 0
	}

	exactHits := 0
	for _, t := range targets {
		if _, ok := skillSet[t]; ok {
			exactHits++
		}
	}
	exact := float64(exactHits) / float64(len(targets)) * 100

	candidateWords := make(map[string]struct{})
	for _, s := range skills {
		for _, w := range normalize.Tokenize(s) {
			candidateWords[w] = struct{}{}
		}
	}
	tokenSum := 0.0
	for _, t := range targets {
		words := normalize.Tokenize(t)
		if len(words) == 0 {
			continue
		}
		hits := 0
		for _, w := range words {
			if _, ok := candidateWords[w]; ok {
				hits++
			}
		}
		tokenSum += float64(hits) / float64(len(words))
	}
	token := tokenSum / float64(len(targets)) * 100

	score := int(math.Round(0.72*exact + 0.28*token))
	if len(skills) >= 5 && score < 32 {
		score = 32
	}
	return clamp(score)
}

// targetPhrases is the union of track keywords, critical, core, and the
// first six adjacent skills, deduplicated in that order.
func targetPhrases(res profile.Resolved) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(list []string) {
		for _, raw := range list {
			tok := normalize.Token(raw)
			if tok == "" {
				continue
			}
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			out = append(out, tok)
		}
	}
	if p, ok := catalog.Lookup(res.Track); ok {
		add(p.Keywords)
	}
	add(res.Critical)
	add(res.Blueprint.Core)
	adj := res.Blueprint.Adjacent
	if len(adj) > 6 {
		adj = adj[:6]
	}
	add(adj)
	return out
}

// profileQuality rewards a well-curated list: a volume score peaking at 5-14
// items, bonuses for uniqueness, named-technology specificity and breadth,
// minus a duplicate penalty.
func profileQuality(in Input) int {
	listed := in.ListedCount
	if listed == 0 {
		return 0
	}

	var volume float64
	switch {
	case listed < 5:
		volume = float64(listed) * 8
	case listed <= 14:
		volume = 40
	default:
		volume = math.Max(20, 40-float64(listed-14)*2)
	}

	unique := listed - in.DuplicateCount
	uniqueness := float64(unique) / float64(listed) * 24

	specificity := math.Min(24, float64(specificityHits(in.Skills))*6)

	words := make(map[string]struct{})
	for _, s := range in.Skills {
		for _, w := range normalize.Tokenize(s) {
			words[w] = struct{}{}
		}
	}
	breadth := math.Min(12, float64(len(words)))

	dupPenalty := math.Min(10, float64(in.DuplicateCount)*3)

	return clamp(int(math.Round(volume + uniqueness + specificity + breadth - dupPenalty)))
}

// trackConsistency measures how concentrated the candidate's skills are
// inside the resolved track's own skill index versus other tracks' indices.
func trackConsistency(res profile.Resolved, skills []string, skillSet map[string]struct{}) int {
	if len(skills) == 0 {
		return 20
	}

	target := targetIndex(res)
	targetHits, offHits, neutralHits := 0, 0, 0
	for _, s := range skills {
		if _, ok := target[s]; ok {
			targetHits++
			continue
		}
		if inOtherTrack(s, res.Track) {
			offHits++
		} else {
			neutralHits++
		}
	}

	n := float64(len(skills))
	offWeight := 40.0
	if res.IsAdaptive {
		offWeight = 24.0
	}

	score := float64(targetHits)/n*92 +
		math.Min(14, float64(specificityHits(skills))*3.5) -
		offWeight*float64(offHits)/n -
		math.Min(8, float64(neutralHits))

	if targetHits >= 3 && offHits == 0 {
		score += 6
	}
	if res.IsAdaptive && targetHits >= 2 {
		score += 5
	}

	return clamp(int(math.Round(score)))
}

func targetIndex(res profile.Resolved) map[string]struct{} {
	if !res.IsAdaptive {
		if idx, ok := trackIndexes()[res.Track]; ok {
			return idx
		}
	}
	idx := make(map[string]struct{})
	for _, group := range [][]string{res.Blueprint.Core, res.Blueprint.Adjacent, res.Critical} {
		for _, s := range group {
			idx[s] = struct{}{}
		}
	}
	return idx
}

func inOtherTrack(skill string, own catalog.Track) bool {
	for track, idx := range trackIndexes() {
		if track == own {
			continue
		}
		if _, ok := idx[skill]; ok {
			return true
		}
	}
	return false
}

var (
	trackIdxOnce sync.Once
	trackIdx     map[catalog.Track]map[string]struct{}
	specOnce     sync.Once
	specSet      map[string]struct{}
)

// trackIndexes caches each static track's skill index in canonical form.
func trackIndexes() map[catalog.Track]map[string]struct{} {
	trackIdxOnce.Do(func() {
		trackIdx = make(map[catalog.Track]map[string]struct{}, len(catalog.Tracks))
		for _, p := range catalog.Tracks {
			idx := make(map[string]struct{})
			for raw := range catalog.SkillIndex(p.Track) {
				if tok := normalize.Token(raw); tok != "" {
					idx[tok] = struct{}{}
				}
			}
			trackIdx[p.Track] = idx
		}
	})
	return trackIdx
}

func specificityHits(skills []string) int {
	specOnce.Do(func() {
		specSet = make(map[string]struct{}, len(catalog.SpecificityKeywords))
		for _, kw := range catalog.SpecificityKeywords {
			specSet[normalize.Token(kw)] = struct{}{}
		}
	})
	hits := 0
	for _, s := range skills {
		if _, ok := specSet[s]; ok {
			hits++
		}
	}
	return hits
}

func hitRatio(list []string, skills map[string]struct{}) float64 {
	if len(list) == 0 {
		return 0
	}
	hits := 0
	for _, s := range list {
		if _, ok := skills[s]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(list))
}

func toSet(in []string) map[string]struct{} {
	out := make(map[string]struct{}, len(in))
	for _, s := range in {
		out[s] = struct{}{}
	}
	return out
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
