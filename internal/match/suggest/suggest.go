// internal/match/suggest/suggest.go
package suggest

import (
	"fmt"
	"strings"

	"skillmatch/internal/match/profile"
	"skillmatch/internal/match/scoring"
)

// Gaps holds the skill set differences against the resolved blueprint, in
// blueprint order.
type Gaps struct {
	MissingCritical []string `json:"missingCritical"`
	MissingCore     []string `json:"missingCore"`
	MissingAdjacent []string `json:"missingAdjacent"`
}

// Area is one prioritized improvement category with exactly three guidance
// lines.
type Area struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Suggestions is the deterministic suggestion contract built from an
// analysis result.
type Suggestions struct {
	PriorityActions       []string `json:"priorityActions"`
	SuggestedSkills       []string `json:"suggestedSkills"`
	KeywordBank           []string `json:"keywordBank"`
	PortfolioProjectIdeas []string `json:"portfolioProjectIdeas"`
}

// ComputeGaps diffs the blueprint against the candidate's normalized skills,
// preserving blueprint order.
func ComputeGaps(res profile.Resolved, skills []string) Gaps {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[s] = struct{}{}
	}
	missing := func(list []string) []string {
		out := []string{}
		for _, s := range list {
			if _, ok := set[s]; !ok {
				out = append(out, s)
			}
		}
		return out
	}
	return Gaps{
		MissingCritical: missing(res.Critical),
		MissingCore:     missing(res.Blueprint.Core),
		MissingAdjacent: missing(res.Blueprint.Adjacent),
	}
}

// ImprovementAreas evaluates the trigger conditions in fixed priority order.
// Must-have gaps always surface before soft and competitive gaps, regardless
// of score magnitude. At least one category is always returned.
func ImprovementAreas(gaps Gaps, bd scoring.Breakdown, listed, duplicates int) []Area {
	var areas []Area

	if len(gaps.MissingCritical) > 0 {
		areas = append(areas, Area{
			Category: "Must-Have Skill Gaps",
			Items: []string{
				fmt.Sprintf("Close the shortlisting blockers first: %s", joinSkills(gaps.MissingCritical, 3)),
				"Add one concrete project or work example as evidence for each of these",
				"Name them verbatim in your skills section so screeners can match them",
			},
		})
	}
	if len(gaps.MissingCore) > 0 {
		areas = append(areas, Area{
			Category: "Core Skill Coverage",
			Items: []string{
				fmt.Sprintf("Core skills hiring managers expect and don't see yet: %s", joinSkills(gaps.MissingCore, 4)),
				"Pick the two you can learn fastest and schedule them this month",
				"Fold the ones you already half-know into existing bullet points",
			},
		})
	}
	if bd.TrackConsistency < 45 {
		areas = append(areas, Area{
			Category: "Role Alignment",
			Items: []string{
				"Your skills read as scattered across several role tracks",
				"Trim listings that belong to a different career direction",
				"Lead with the skills that match the role you are actually targeting",
			},
		})
	}
	if len(gaps.MissingAdjacent) >= 3 {
		areas = append(areas, Area{
			Category: "Competitive Edge",
			Items: []string{
				fmt.Sprintf("Adjacent skills that separate strong candidates: %s", joinSkills(gaps.MissingAdjacent, 4)),
				"One or two of these is enough; depth beats a longer list",
				"Mention them inside project descriptions rather than as bare keywords",
			},
		})
	}
	if listed < 6 {
		areas = append(areas, Area{
			Category: "Profile Depth",
			Items: []string{
				"Your skill list is short enough to undersell you",
				"Aim for eight to twelve specific, defensible skills",
				"Mine past projects for tools and methods you forgot to list",
			},
		})
	}
	if duplicates > 2 {
		areas = append(areas, Area{
			Category: "Listing Hygiene",
			Items: []string{
				"Several skills appear more than once under different spellings",
				"Keep one canonical name per skill and drop the rest",
				"Duplicates read as padding and dilute your strongest entries",
			},
		})
	}

	if len(areas) == 0 {
		areas = append(areas, Area{
			Category: "Positioning",
			Items: []string{
				"Your skills already cover this role's must-haves",
				"Differentiate with measurable outcomes next to your top skills",
				"Tailor the opening summary to this role's vocabulary",
			},
		})
	}
	return areas
}

// Build assembles the full suggestion payload deterministically from the
// analysis outputs.
func Build(res profile.Resolved, bd scoring.Breakdown, gaps Gaps, areas []Area) Suggestions {
	var actions []string
	for _, a := range areas {
		if len(a.Items) > 0 {
			actions = append(actions, fmt.Sprintf("%s: %s", a.Category, a.Items[0]))
		}
	}

	suggested := dedupe(append(append([]string{}, gaps.MissingCritical...), gaps.MissingCore...))
	if len(suggested) == 0 {
		suggested = dedupe(gaps.MissingAdjacent)
	}

	bank := dedupe(append(append(append([]string{}, res.Critical...), res.Blueprint.Core...), res.Blueprint.Adjacent...))

	return Suggestions{
		PriorityActions:       actions,
		SuggestedSkills:       suggested,
		KeywordBank:           bank,
		PortfolioProjectIdeas: append([]string(nil), res.Blueprint.Projects...),
	}
}

func joinSkills(skills []string, limit int) string {
	if len(skills) > limit {
		skills = skills[:limit]
	}
	return strings.Join(skills, ", ")
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := []string{}
	for _, s := range in {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
