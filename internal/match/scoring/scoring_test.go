package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skillmatch/internal/match/profile"
)

func backendInput(skills []string) Input {
	return Input{
		Role:        "Backend Engineer",
		Skills:      skills,
		ListedCount: len(skills),
		Resolved:    profile.Resolve("Backend Engineer", "Technology", skills),
	}
}

func TestScore_FullCriticalCoverage(t *testing.T) {
	bd := Score(backendInput([]string{"python", "sql", "api design", "docker", "postgresql"}))

	assert.Equal(t, 100, bd.CriticalCoverage)
	assert.Empty(t, bd.MissingCritical)
	assert.ElementsMatch(t, []string{"python", "sql", "api design"}, bd.MatchedCritical)
}

func TestScore_PartialCriticalCoverage(t *testing.T) {
	bd := Score(backendInput([]string{"python", "docker", "git"}))

	assert.Equal(t, 33, bd.CriticalCoverage)
	assert.Equal(t, []string{"python"}, bd.MatchedCritical)
	assert.Equal(t, []string{"sql", "api design"}, bd.MissingCritical)
}

func TestScore_AllScoresInRange(t *testing.T) {
	inputs := [][]string{
		nil,
		{"python"},
		{"python", "sql", "api design", "docker", "kubernetes", "redis", "git", "linux"},
		{"figma", "user research", "painting", "cooking"},
	}

	for _, skills := range inputs {
		bd := Score(backendInput(skills))

		for name, v := range map[string]int{
			"criticalCoverage":  bd.CriticalCoverage,
			"blueprintCoverage": bd.BlueprintCoverage,
			"keywordOverlap":    bd.KeywordOverlap,
			"profileQuality":    bd.ProfileQuality,
			"trackConsistency":  bd.TrackConsistency,
			"overall":           bd.Overall,
			"confidence":        bd.Confidence,
			"predictionLow":     bd.PredictionLow,
			"predictionHigh":    bd.PredictionHigh,
		} {
			assert.GreaterOrEqual(t, v, 0, "%s below range for %v", name, skills)
			assert.LessOrEqual(t, v, 100, "%s above range for %v", name, skills)
		}
		assert.LessOrEqual(t, bd.PredictionLow, bd.Overall)
		assert.LessOrEqual(t, bd.Overall, bd.PredictionHigh)
	}
}

func TestScore_EmptySkills(t *testing.T) {
	bd := Score(backendInput(nil))

	assert.Equal(t, 0, bd.CriticalCoverage)
	assert.Equal(t, 20, bd.TrackConsistency, "empty skill set settles at the floor")
	assert.Equal(t, 0, bd.ProfileQuality)
	assert.Len(t, bd.MissingCritical, 3)
}

func TestScore_AddingCriticalSkillNeverLowersOverall(t *testing.T) {
	before := Score(backendInput([]string{"python", "sql"}))
	after := Score(backendInput([]string{"python", "sql", "api design"}))

	assert.GreaterOrEqual(t, after.Overall, before.Overall)
	assert.GreaterOrEqual(t, after.CriticalCoverage, before.CriticalCoverage)
	assert.GreaterOrEqual(t, after.BlueprintCoverage, before.BlueprintCoverage)
}

func TestScore_ConfidenceNeverExceedsCap(t *testing.T) {
	skills := []string{
		"python", "sql", "api design", "rest apis", "postgresql", "docker",
		"git", "linux", "kubernetes", "redis", "kafka", "grpc", "caching", "system design",
	}
	in := backendInput(skills)
	in.Role = "Junior Backend Engineer"

	bd := Score(in)
	assert.LessOrEqual(t, bd.Confidence, 96)
}

func TestScore_PredictionBandWidth(t *testing.T) {
	bd := Score(backendInput([]string{"python", "sql", "api design", "docker", "git", "linux"}))

	width := bd.PredictionHigh - bd.PredictionLow
	assert.GreaterOrEqual(t, width, 0)
	// Band half-width is at least 6 unless clamped at the scale edges.
	if bd.Overall >= 12 && bd.Overall <= 88 {
		assert.GreaterOrEqual(t, width, 12)
	}
}

func TestScore_OffTrackSkillsLowerConsistency(t *testing.T) {
	onTrack := Score(backendInput([]string{"python", "sql", "docker", "postgresql"}))
	offTrack := Score(backendInput([]string{"python", "figma", "seo", "salesforce"}))

	assert.Greater(t, onTrack.TrackConsistency, offTrack.TrackConsistency)
}

func TestInferSeniority(t *testing.T) {
	tests := []struct {
		role     string
		expected Seniority
	}{
		{"Junior Backend Developer", SeniorityJunior},
		{"Graduate Software Engineer", SeniorityJunior},
		{"Senior Platform Engineer", SenioritySenior},
		{"Staff Engineer", SenioritySenior},
		{"Backend Engineer", SeniorityMid},
		{"", SeniorityMid},
		{"Senior Junior Whatever", SeniorityMid},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferSeniority(tt.role))
		})
	}
}

func TestScore_AdaptivePenaltyCapIsSmaller(t *testing.T) {
	adaptive := Input{
		Role:        "Astro Falconry Instructor",
		Skills:      nil,
		ListedCount: 0,
		Resolved:    profile.Resolve("Astro Falconry Instructor", "", nil),
	}
	bd := Score(adaptive)

	assert.True(t, bd.Seniority == SeniorityMid)
	assert.LessOrEqual(t, bd.StrictnessPenalty, 14)
}
