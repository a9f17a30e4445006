// internal/history/store.go
// Package history persists completed analyses for later retrieval and
// skill-based search. Persistence is best-effort: an unavailable store never
// blocks an analysis response.
package history

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"skillmatch/internal/common/errors"
	"skillmatch/internal/match"
)

// Record is one persisted analysis summary.
type Record struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"sessionId"`
	Industry   string    `json:"industry"`
	Role       string    `json:"role"`
	Track      string    `json:"track"`
	Adaptive   bool      `json:"adaptive"`
	Overall    int       `json:"overall"`
	Confidence int       `json:"confidence"`
	Skills     []string  `json:"skills"`
	CreatedAt  time.Time `json:"createdAt"`
}

// PostgresStore writes analysis records to the analysis_history table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const insertQuery = `
	INSERT INTO analysis_history
		(id, session_id, industry, role, track, adaptive, overall, confidence, skills, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (s *PostgresStore) Save(ctx context.Context, sessionID string, a *match.Analysis) error {
	_, err := s.db.ExecContext(ctx, insertQuery,
		a.ID,
		sessionID,
		a.Industry,
		a.Role,
		string(a.Track),
		a.IsAdaptive,
		a.Scores.Overall,
		a.Scores.Confidence,
		pq.Array(a.Skills),
		a.CreatedAt,
	)
	if err != nil {
		return errors.NewHistoryWriteFailedError(err)
	}
	return nil
}

const recentQuery = `
	SELECT id, session_id, industry, role, track, adaptive, overall, confidence, skills, created_at
	FROM analysis_history
	WHERE session_id = $1
	ORDER BY created_at DESC
	LIMIT $2`

// Recent returns the session's newest records first.
func (s *PostgresStore) Recent(ctx context.Context, sessionID string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, recentQuery, sessionID, limit)
	if err != nil {
		return nil, errors.NewHistorySearchFailedError(err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(
			&r.ID, &r.SessionID, &r.Industry, &r.Role, &r.Track,
			&r.Adaptive, &r.Overall, &r.Confidence, pq.Array(&r.Skills), &r.CreatedAt,
		); err != nil {
			return nil, errors.NewHistorySearchFailedError(err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewHistorySearchFailedError(err)
	}
	return records, nil
}
