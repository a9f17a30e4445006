// internal/history/service.go
package history

import (
	"context"

	"skillmatch/internal/common/logger"
	"skillmatch/internal/match"
)

// Service fans analysis records out to the configured backends. Either
// backend may be nil; a write failure is logged, never surfaced.
type Service struct {
	store   *PostgresStore
	indexer *Indexer
	logger  logger.Logger
}

func NewService(store *PostgresStore, indexer *Indexer, log logger.Logger) *Service {
	return &Service{
		store:   store,
		indexer: indexer,
		logger:  log.WithFields(map[string]interface{}{"component": "history"}),
	}
}

// Save records an analysis. Best-effort on both backends.
func (s *Service) Save(ctx context.Context, sessionID string, a *match.Analysis) {
	if s == nil {
		return
	}
	if s.store != nil {
		if err := s.store.Save(ctx, sessionID, a); err != nil {
			s.logger.Warn("history insert failed", map[string]interface{}{
				"analysisId": a.ID,
				"error":      err.Error(),
			})
		}
	}
	if s.indexer != nil {
		record := Record{
			ID:         a.ID,
			SessionID:  sessionID,
			Industry:   a.Industry,
			Role:       a.Role,
			Track:      string(a.Track),
			Adaptive:   a.IsAdaptive,
			Overall:    a.Scores.Overall,
			Confidence: a.Scores.Confidence,
			Skills:     a.Skills,
			CreatedAt:  a.CreatedAt,
		}
		if err := s.indexer.Index(ctx, record); err != nil {
			s.logger.Warn("history index failed", map[string]interface{}{
				"analysisId": a.ID,
				"error":      err.Error(),
			})
		}
	}
}

// Recent proxies to the Postgres store when present.
func (s *Service) Recent(ctx context.Context, sessionID string, limit int) ([]Record, error) {
	if s == nil || s.store == nil {
		return []Record{}, nil
	}
	return s.store.Recent(ctx, sessionID, limit)
}

// SearchBySkill proxies to the Elasticsearch indexer when present.
func (s *Service) SearchBySkill(ctx context.Context, skill string, size int) ([]Record, error) {
	if s == nil || s.indexer == nil {
		return []Record{}, nil
	}
	return s.indexer.SearchBySkill(ctx, skill, size)
}
