package history

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillmatch/internal/common/logger"
	"skillmatch/internal/match"
	"skillmatch/internal/match/catalog"
	"skillmatch/internal/match/scoring"
)

func testAnalysis() *match.Analysis {
	return &match.Analysis{
		ID:         "a-1",
		Industry:   "Technology",
		Role:       "Backend Engineer",
		Track:      catalog.TrackBackend,
		IsAdaptive: false,
		Skills:     []string{"python", "sql"},
		Scores:     scoring.Breakdown{Overall: 74, Confidence: 81},
		CreatedAt:  time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
	}
}

func TestPostgresStore_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	a := testAnalysis()
	mock.ExpectExec("INSERT INTO analysis_history").
		WillReturnResult(sqlmock.NewResult(1, 1))

	store := NewPostgresStore(db)
	err = store.Save(context.Background(), "session-1", a)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Save_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO analysis_history").
		WillReturnError(assert.AnError)

	store := NewPostgresStore(db)
	err = store.Save(context.Background(), "session-1", testAnalysis())

	assert.Error(t, err)
}

func TestPostgresStore_Recent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "session_id", "industry", "role", "track",
		"adaptive", "overall", "confidence", "skills", "created_at",
	}).AddRow("a-1", "session-1", "Technology", "Backend Engineer", "backend",
		false, 74, 81, "{python,sql}", created)

	mock.ExpectQuery("(?s)SELECT (.+) FROM analysis_history").
		WithArgs("session-1", 20).
		WillReturnRows(rows)

	store := NewPostgresStore(db)
	records, err := store.Recent(context.Background(), "session-1", 0)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a-1", records[0].ID)
	assert.Equal(t, "backend", records[0].Track)
	assert.Equal(t, []string{"python", "sql"}, records[0].Skills)
	assert.Equal(t, created, records[0].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Save_NilBackendsAreSafe(t *testing.T) {
	svc := NewService(nil, nil, logger.NewTestLogger(t))

	svc.Save(context.Background(), "session-1", testAnalysis())

	records, err := svc.Recent(context.Background(), "session-1", 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
