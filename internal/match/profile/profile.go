// internal/match/profile/profile.go
package profile

import (
	"fmt"
	"sort"
	"strings"

	"skillmatch/internal/match/catalog"
	"skillmatch/internal/match/classify"
	"skillmatch/internal/match/normalize"
)

const (
	adaptiveCoreSize     = 10
	adaptiveAdjacentSize = 8
	adaptiveCriticalSize = 3
)

// Resolved is the outcome of role resolution: the track, its blueprint, the
// critical-skill list, and whether the blueprint was synthesized on the fly.
type Resolved struct {
	Track      catalog.Track
	Blueprint  catalog.Blueprint
	Critical   []string
	Confidence int
	IsAdaptive bool
}

// Resolve picks the static blueprint for a confidently classified role, or
// synthesizes an adaptive one. Long-tail roles still get a personalized
// blueprint instead of a generic zero-signal default.
func Resolve(role, industry string, skills []string) Resolved {
	track, score := classify.Classify(role, industry)
	if score > 0 {
		if p, ok := catalog.Lookup(track); ok {
			return Resolved{
				Track:      track,
				Blueprint:  canonicalBlueprint(p.Blueprint),
				Critical:   canonicalList(p.Blueprint.Critical),
				Confidence: score,
			}
		}
	}
	return synthesize(role, industry, skills)
}

// synthesize builds an adaptive blueprint from the candidate's own skills
// plus the generic fallback lists.
func synthesize(role, industry string, skills []string) Resolved {
	core := takeUnique(adaptiveCoreSize,
		head(skills, 10),
		canonicalList(catalog.FallbackBlueprint.Core),
	)

	adjacent := takeUnique(adaptiveAdjacentSize,
		roleTokens(role, industry),
		slice(skills, 10, 18),
		canonicalList(catalog.FallbackBlueprint.Adjacent),
	)

	critical := takeUnique(adaptiveCriticalSize,
		head(skills, 2),
		canonicalList(catalog.FallbackBlueprint.Critical),
	)

	displayRole := strings.TrimSpace(role)
	if displayRole == "" {
		displayRole = "your target role"
	}
	projects := []string{
		fmt.Sprintf("Document a real %s engagement end to end: goal, approach, measurable result", displayRole),
		fmt.Sprintf("Build a portfolio piece that shows the top three skills a %s is hired for", displayRole),
		fmt.Sprintf("Write a short case study of a problem you solved as a %s and publish it", displayRole),
	}

	return Resolved{
		Track: catalog.TrackCustom,
		Blueprint: catalog.Blueprint{
			Core:     core,
			Adjacent: adjacent,
			Critical: critical,
			Projects: projects,
		},
		Critical:   critical,
		IsAdaptive: true,
	}
}

// roleTokens mines the role/industry free text for signal words: generic
// role words and stopwords are dropped, and the two most common remaining
// tokens are skipped since they tend to be the role noun itself.
func roleTokens(role, industry string) []string {
	counts := make(map[string]int)
	var order []string
	for _, w := range normalize.Tokenize(role + " " + industry) {
		if _, generic := catalog.GenericRoleWords[w]; generic {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}
	if len(order) == 0 {
		return nil
	}

	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	skip := make(map[string]struct{}, 2)
	for i := 0; i < len(ranked) && i < 2; i++ {
		skip[ranked[i]] = struct{}{}
	}

	var out []string
	for _, w := range order {
		if _, skipped := skip[w]; skipped {
			continue
		}
		out = append(out, normalize.Token(w))
	}
	return out
}

func canonicalBlueprint(b catalog.Blueprint) catalog.Blueprint {
	return catalog.Blueprint{
		Core:     canonicalList(b.Core),
		Adjacent: canonicalList(b.Adjacent),
		Critical: canonicalList(b.Critical),
		Projects: append([]string(nil), b.Projects...),
	}
}

func canonicalList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if tok := normalize.Token(s); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

func head(in []string, n int) []string {
	if len(in) < n {
		n = len(in)
	}
	return in[:n]
}

func slice(in []string, from, to int) []string {
	if from >= len(in) {
		return nil
	}
	if to > len(in) {
		to = len(in)
	}
	return in[from:to]
}

func takeUnique(limit int, groups ...[]string) []string {
	seen := make(map[string]struct{}, limit)
	out := make([]string, 0, limit)
	for _, group := range groups {
		for _, s := range group {
			if s == "" {
				continue
			}
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
			if len(out) == limit {
				return out
			}
		}
	}
	return out
}
