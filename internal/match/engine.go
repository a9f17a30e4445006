// internal/match/engine.go
package match

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"skillmatch/internal/common/logger"
	"skillmatch/internal/common/metrics"
	"skillmatch/internal/common/observability"
	"skillmatch/internal/match/catalog"
	"skillmatch/internal/match/normalize"
	"skillmatch/internal/match/profile"
	"skillmatch/internal/match/scoring"
	"skillmatch/internal/match/suggest"
)

// Analysis is the aggregate result of one analyze call: the resolved role,
// the score breakdown, and the gap analysis. Fresh per request; no
// cross-request state.
type Analysis struct {
	ID             string            `json:"id"`
	Industry       string            `json:"industry"`
	Role           string            `json:"role"`
	Track          catalog.Track     `json:"track"`
	IsAdaptive     bool              `json:"isAdaptive"`
	Skills         []string          `json:"skills"`
	ListedCount    int               `json:"listedCount"`
	DuplicateCount int               `json:"duplicateCount"`
	Blueprint      catalog.Blueprint `json:"blueprint"`
	Scores         scoring.Breakdown `json:"scores"`
	Gaps           suggest.Gaps      `json:"gaps"`
	Improvements   []suggest.Area    `json:"improvementAreas"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// Engine runs the forward pipeline: raw text -> normalized skills -> role
// resolution -> scores -> gaps. Stateless; safe for concurrent use.
type Engine struct {
	logger logger.Logger
	tracer trace.Tracer
	obs    *observability.Observability
}

func NewEngine(log logger.Logger, obs *observability.Observability) *Engine {
	return &Engine{
		logger: log.WithFields(map[string]interface{}{"component": "match-engine"}),
		tracer: otel.Tracer("skillmatch/match"),
		obs:    obs,
	}
}

// Analyze scores a candidate's skills against a target role. Blank inputs
// are not errors: normalization degrades to empty sets and the scores fall
// back to their documented floors.
func (e *Engine) Analyze(ctx context.Context, industry, role, skillsText string) *Analysis {
	start := time.Now()
	_, span := e.tracer.Start(ctx, "match.analyze")
	defer span.End()

	skills := normalize.ExtractSkills(skillsText)
	listed := normalize.ListedItems(skillsText)
	duplicates := countDuplicates(listed)

	resolved := profile.Resolve(role, industry, skills)

	breakdown := scoring.Score(scoring.Input{
		Role:           role,
		Skills:         skills,
		ListedCount:    len(listed),
		DuplicateCount: duplicates,
		Resolved:       resolved,
	})

	gaps := suggest.ComputeGaps(resolved, skills)
	areas := suggest.ImprovementAreas(gaps, breakdown, len(listed), duplicates)

	analysis := &Analysis{
		ID:             uuid.NewString(),
		Industry:       industry,
		Role:           role,
		Track:          resolved.Track,
		IsAdaptive:     resolved.IsAdaptive,
		Skills:         skills,
		ListedCount:    len(listed),
		DuplicateCount: duplicates,
		Blueprint:      resolved.Blueprint,
		Scores:         breakdown,
		Gaps:           gaps,
		Improvements:   areas,
		CreatedAt:      time.Now().UTC(),
	}

	span.SetAttributes(
		attribute.String("track", string(resolved.Track)),
		attribute.Bool("adaptive", resolved.IsAdaptive),
		attribute.Int("overall", breakdown.Overall),
	)
	metrics.AnalysesTotal.WithLabelValues(string(resolved.Track)).Inc()
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	metrics.OverallScore.Observe(float64(breakdown.Overall))
	if e.obs != nil {
		e.obs.RecordAnalysis(ctx, string(resolved.Track))
		e.obs.RecordAnalysisDuration(ctx, time.Since(start), string(resolved.Track))
	}

	e.logger.Info("analysis complete", map[string]interface{}{
		"analysisId": analysis.ID,
		"track":      resolved.Track,
		"adaptive":   resolved.IsAdaptive,
		"overall":    breakdown.Overall,
		"confidence": breakdown.Confidence,
		"skills":     len(skills),
	})

	return analysis
}

// Suggest builds the deterministic suggestion payload from an analysis.
func (e *Engine) Suggest(a *Analysis) suggest.Suggestions {
	resolved := profile.Resolved{
		Track:      a.Track,
		Blueprint:  a.Blueprint,
		Critical:   a.Blueprint.Critical,
		IsAdaptive: a.IsAdaptive,
	}
	return suggest.Build(resolved, a.Scores, a.Gaps, a.Improvements)
}

func countDuplicates(listed []string) int {
	seen := make(map[string]struct{}, len(listed))
	duplicates := 0
	for _, s := range listed {
		if _, dup := seen[s]; dup {
			duplicates++
			continue
		}
		seen[s] = struct{}{}
	}
	return duplicates
}
