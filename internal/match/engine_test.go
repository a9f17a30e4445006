package match

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"skillmatch/internal/common/logger"
	"skillmatch/internal/match/catalog"
)

func TestEngine_Analyze(t *testing.T) {
	engine := NewEngine(logger.NewTestLogger(t), nil)

	a := engine.Analyze(context.Background(), "Technology", "Senior Backend Engineer", "Python, SQL, API design, Docker, Kubernetes")

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, catalog.TrackBackend, a.Track)
	assert.False(t, a.IsAdaptive)
	assert.Equal(t, 5, a.ListedCount)
	assert.Equal(t, 0, a.DuplicateCount)
	assert.Contains(t, a.Skills, "python")
	assert.Contains(t, a.Skills, "api design")
	assert.Empty(t, a.Gaps.MissingCritical)
	assert.GreaterOrEqual(t, a.Scores.Overall, 0)
	assert.LessOrEqual(t, a.Scores.Overall, 100)
	assert.NotEmpty(t, a.Improvements)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestEngine_Analyze_CountsDuplicates(t *testing.T) {
	engine := NewEngine(logger.NewTestLogger(t), nil)

	a := engine.Analyze(context.Background(), "", "Backend Engineer", "Python, python, JS, javascript")

	assert.Equal(t, 4, a.ListedCount)
	assert.Equal(t, 2, a.DuplicateCount)
}

func TestEngine_Analyze_BlankInputs(t *testing.T) {
	engine := NewEngine(logger.NewTestLogger(t), nil)

	a := engine.Analyze(context.Background(), "", "", "")

	assert.NotEmpty(t, a.ID)
	assert.True(t, a.IsAdaptive)
	assert.Equal(t, catalog.TrackCustom, a.Track)
	assert.Empty(t, a.Skills)
	assert.GreaterOrEqual(t, a.Scores.Overall, 0)
}

func TestEngine_Suggest(t *testing.T) {
	engine := NewEngine(logger.NewTestLogger(t), nil)

	a := engine.Analyze(context.Background(), "Technology", "Backend Engineer", "Python, Docker")
	s := engine.Suggest(a)

	assert.NotEmpty(t, s.PriorityActions)
	assert.Contains(t, s.SuggestedSkills, "sql")
	assert.NotEmpty(t, s.KeywordBank)
	assert.Len(t, s.PortfolioProjectIdeas, 3)
}
