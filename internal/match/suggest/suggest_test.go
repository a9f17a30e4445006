package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skillmatch/internal/match/profile"
	"skillmatch/internal/match/scoring"
)

func resolveBackend(t *testing.T, skills []string) profile.Resolved {
	t.Helper()
	res := profile.Resolve("Backend Engineer", "Technology", skills)
	assert.False(t, res.IsAdaptive)
	return res
}

func TestComputeGaps_PreservesBlueprintOrder(t *testing.T) {
	res := resolveBackend(t, nil)
	gaps := ComputeGaps(res, []string{"python", "docker"})

	assert.Equal(t, []string{"sql", "api design"}, gaps.MissingCritical)
	assert.NotContains(t, gaps.MissingCore, "python")
	assert.NotContains(t, gaps.MissingCore, "docker")
}

func TestComputeGaps_NothingMissing(t *testing.T) {
	res := resolveBackend(t, nil)
	all := append(append(append([]string{}, res.Critical...), res.Blueprint.Core...), res.Blueprint.Adjacent...)
	gaps := ComputeGaps(res, all)

	assert.Empty(t, gaps.MissingCritical)
	assert.Empty(t, gaps.MissingCore)
	assert.Empty(t, gaps.MissingAdjacent)
}

func TestImprovementAreas_MustHaveGapsComeFirst(t *testing.T) {
	gaps := Gaps{
		MissingCritical: []string{"sql"},
		MissingCore:     []string{"docker", "linux"},
		MissingAdjacent: []string{"kafka", "redis", "grpc"},
	}
	areas := ImprovementAreas(gaps, scoring.Breakdown{TrackConsistency: 30}, 3, 0)

	assert.Equal(t, "Must-Have Skill Gaps", areas[0].Category)
	for _, a := range areas {
		assert.Len(t, a.Items, 3, "category %s", a.Category)
	}
}

func TestImprovementAreas_AlwaysReturnsAtLeastOne(t *testing.T) {
	areas := ImprovementAreas(Gaps{}, scoring.Breakdown{TrackConsistency: 80}, 10, 0)

	assert.Len(t, areas, 1)
	assert.Equal(t, "Positioning", areas[0].Category)
	assert.Len(t, areas[0].Items, 3)
}

func TestImprovementAreas_Triggers(t *testing.T) {
	tests := []struct {
		name       string
		gaps       Gaps
		bd         scoring.Breakdown
		listed     int
		duplicates int
		category   string
	}{
		{"low consistency", Gaps{}, scoring.Breakdown{TrackConsistency: 30}, 10, 0, "Role Alignment"},
		{"short list", Gaps{}, scoring.Breakdown{TrackConsistency: 80}, 4, 0, "Profile Depth"},
		{"duplicates", Gaps{}, scoring.Breakdown{TrackConsistency: 80}, 10, 3, "Listing Hygiene"},
		{"adjacent gaps", Gaps{MissingAdjacent: []string{"a", "b", "c"}}, scoring.Breakdown{TrackConsistency: 80}, 10, 0, "Competitive Edge"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			areas := ImprovementAreas(tt.gaps, tt.bd, tt.listed, tt.duplicates)
			categories := make([]string, len(areas))
			for i, a := range areas {
				categories[i] = a.Category
			}
			assert.Contains(t, categories, tt.category)
		})
	}
}

func TestBuild(t *testing.T) {
	res := resolveBackend(t, nil)
	skills := []string{"python", "docker"}
	gaps := ComputeGaps(res, skills)
	bd := scoring.Score(scoring.Input{
		Role:        "Backend Engineer",
		Skills:      skills,
		ListedCount: len(skills),
		Resolved:    res,
	})
	areas := ImprovementAreas(gaps, bd, len(skills), 0)

	s := Build(res, bd, gaps, areas)

	assert.Equal(t, len(areas), len(s.PriorityActions))
	assert.Contains(t, s.SuggestedSkills, "sql")
	assert.Contains(t, s.SuggestedSkills, "api design")
	assert.NotEmpty(t, s.KeywordBank)
	assert.Len(t, s.PortfolioProjectIdeas, 3)

	// Keyword bank is deduplicated.
	seen := map[string]int{}
	for _, k := range s.KeywordBank {
		seen[k]++
	}
	for k, n := range seen {
		assert.Equal(t, 1, n, "duplicate %q in keyword bank", k)
	}
}
