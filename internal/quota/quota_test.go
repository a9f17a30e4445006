package quota

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillmatch/internal/common/config"
	apperrors "skillmatch/internal/common/errors"
	"skillmatch/internal/common/logger"
)

func testPlans() map[string]config.PlanConfig {
	return map[string]config.PlanConfig{
		"free":    {AnalyzeLimit: 3, SuggestLimit: 3, GenerateLimit: 0},
		"starter": {AnalyzeLimit: 25, SuggestLimit: 25, GenerateLimit: 5},
	}
}

func newTestGate(store Store) *Gate {
	g := NewGate(store, testPlans(), logger.NewNoOpLogger())
	g.now = func() time.Time { return time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC) }
	return g
}

func TestGate_Reserve_WithinLimit(t *testing.T) {
	gate := newTestGate(NewMemoryStore())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		status, err := gate.Reserve(ctx, "free", "session-1", ActionAnalyze)
		require.NoError(t, err)
		assert.Equal(t, i+1, status.Usage["analyze"])
	}
}

func TestGate_Reserve_LimitReached(t *testing.T) {
	gate := newTestGate(NewMemoryStore())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := gate.Reserve(ctx, "free", "session-1", ActionAnalyze)
		require.NoError(t, err)
	}

	_, err := gate.Reserve(ctx, "free", "session-1", ActionAnalyze)
	require.Error(t, err)

	qe, ok := apperrors.AsQuotaError(err)
	require.True(t, ok)
	assert.True(t, qe.LimitReached())
	assert.Equal(t, 3, qe.Limit)
	assert.Equal(t, "analyze", qe.Action)
}

func TestGate_Reserve_OtherSessionUnaffected(t *testing.T) {
	gate := newTestGate(NewMemoryStore())
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		gate.Reserve(ctx, "free", "session-1", ActionAnalyze)
	}

	_, err := gate.Reserve(ctx, "free", "session-2", ActionAnalyze)
	assert.NoError(t, err)
}

func TestGate_Reserve_FeatureNotInPlan(t *testing.T) {
	gate := newTestGate(NewMemoryStore())

	_, err := gate.Reserve(context.Background(), "free", "session-1", ActionGenerate)
	require.Error(t, err)

	qe, ok := apperrors.AsQuotaError(err)
	require.True(t, ok)
	assert.False(t, qe.LimitReached())
	assert.Equal(t, apperrors.ErrCodeFeatureNotInPlan, qe.Code)
}

func TestGate_Reserve_UnknownPlan(t *testing.T) {
	gate := newTestGate(NewMemoryStore())

	_, err := gate.Reserve(context.Background(), "platinum", "session-1", ActionAnalyze)
	assert.Error(t, err)
}

func TestGate_Reserve_ActionsTrackedSeparately(t *testing.T) {
	gate := newTestGate(NewMemoryStore())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := gate.Reserve(ctx, "free", "session-1", ActionAnalyze)
		require.NoError(t, err)
	}

	_, err := gate.Reserve(ctx, "free", "session-1", ActionSuggest)
	assert.NoError(t, err, "suggest budget is independent of analyze")
}

func TestGate_Snapshot(t *testing.T) {
	gate := newTestGate(NewMemoryStore())
	ctx := context.Background()

	gate.Reserve(ctx, "starter", "session-1", ActionAnalyze)
	gate.Reserve(ctx, "starter", "session-1", ActionGenerate)

	status, err := gate.Snapshot(ctx, "starter", "session-1")
	require.NoError(t, err)

	assert.Equal(t, "starter", status.Plan)
	assert.Equal(t, "2026-08-25", status.Day)
	assert.Equal(t, 1, status.Usage["analyze"])
	assert.Equal(t, 1, status.Usage["generate"])
	assert.Equal(t, 0, status.Usage["suggest"])
	assert.Equal(t, 25, status.Limits["analyze"])
	assert.Equal(t, 5, status.Limits["generate"])
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client)
	ctx := context.Background()

	count, err := store.Increment(ctx, "quota:test", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = store.Increment(ctx, "quota:test", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	got, err := store.Get(ctx, "quota:test")
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	missing, err := store.Get(ctx, "quota:absent")
	require.NoError(t, err)
	assert.Equal(t, 0, missing)

	assert.Positive(t, mr.TTL("quota:test"), "TTL set on first increment")
}

func TestGate_WithRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	gate := newTestGate(NewRedisStore(client))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := gate.Reserve(ctx, "free", "session-1", ActionAnalyze)
		require.NoError(t, err)
	}

	_, err := gate.Reserve(ctx, "free", "session-1", ActionAnalyze)
	require.Error(t, err)
	qe, ok := apperrors.AsQuotaError(err)
	require.True(t, ok)
	assert.True(t, qe.LimitReached())
}
