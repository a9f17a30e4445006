// internal/quota/quota.go
// Package quota enforces per-plan, per-session, per-day action limits. The
// scoring core never touches it; the HTTP layer runs the gate as a
// precondition before invoking core operations.
package quota

import (
	"context"
	"fmt"
	"time"

	"skillmatch/internal/common/config"
	"skillmatch/internal/common/errors"
	"skillmatch/internal/common/logger"
)

// Action names a quota-gated operation.
type Action string

const (
	ActionAnalyze  Action = "analyze"
	ActionSuggest  Action = "suggest"
	ActionGenerate Action = "generate"
)

var allActions = []Action{ActionAnalyze, ActionSuggest, ActionGenerate}

// counterTTL keeps stale day-scoped counters from accumulating. Counters
// are keyed by day, so expiry only garbage-collects.
const counterTTL = 48 * time.Hour

// Store is the counter backend. Increment must be atomic.
type Store interface {
	Increment(ctx context.Context, key string, ttl time.Duration) (int, error)
	Get(ctx context.Context, key string) (int, error)
}

// Status is the structured quota snapshot returned with every gate decision.
type Status struct {
	Plan   string         `json:"plan"`
	Day    string         `json:"day"`
	Usage  map[string]int `json:"usage"`
	Limits map[string]int `json:"limits"`
}

// Gate makes quota decisions against a Store.
type Gate struct {
	store  Store
	plans  map[string]config.PlanConfig
	logger logger.Logger
	now    func() time.Time
}

func NewGate(store Store, plans map[string]config.PlanConfig, log logger.Logger) *Gate {
	return &Gate{
		store:  store,
		plans:  plans,
		logger: log.WithFields(map[string]interface{}{"component": "quota-gate"}),
		now:    time.Now,
	}
}

// Reserve consumes one unit of the action's daily budget. It fails with a
// structured QuotaError when the action is not in the plan (upgrade
// required) or when the daily limit is already spent (retry tomorrow).
func (g *Gate) Reserve(ctx context.Context, plan, sessionID string, action Action) (*Status, error) {
	planCfg, ok := g.plans[plan]
	if !ok {
		return nil, errors.NewInvalidRequestError(fmt.Sprintf("unknown plan %q", plan))
	}

	day := g.now().UTC().Format("2006-01-02")
	limit := limitFor(planCfg, action)

	if limit == 0 {
		status, _ := g.snapshot(ctx, plan, planCfg, sessionID, day)
		return nil, errors.NewFeatureNotInPlanError(plan, string(action), status.Usage)
	}

	count, err := g.store.Increment(ctx, key(day, plan, sessionID, action), counterTTL)
	if err != nil {
		return nil, errors.NewQuotaCheckFailedError(err)
	}

	status, _ := g.snapshot(ctx, plan, planCfg, sessionID, day)

	if count > limit {
		g.logger.Warn("quota limit reached", map[string]interface{}{
			"plan":    plan,
			"session": sessionID,
			"action":  action,
			"limit":   limit,
		})
		return status, errors.NewQuotaLimitReachedError(plan, string(action), limit, status.Usage)
	}

	return status, nil
}

// Snapshot returns the current usage for a plan+session without consuming
// anything.
func (g *Gate) Snapshot(ctx context.Context, plan, sessionID string) (*Status, error) {
	planCfg, ok := g.plans[plan]
	if !ok {
		return nil, errors.NewInvalidRequestError(fmt.Sprintf("unknown plan %q", plan))
	}
	day := g.now().UTC().Format("2006-01-02")
	return g.snapshot(ctx, plan, planCfg, sessionID, day)
}

func (g *Gate) snapshot(ctx context.Context, plan string, planCfg config.PlanConfig, sessionID, day string) (*Status, error) {
	usage := make(map[string]int, len(allActions))
	limits := make(map[string]int, len(allActions))
	for _, a := range allActions {
		count, err := g.store.Get(ctx, key(day, plan, sessionID, a))
		if err != nil {
			count = 0
		}
		usage[string(a)] = count
		limits[string(a)] = limitFor(planCfg, a)
	}
	return &Status{Plan: plan, Day: day, Usage: usage, Limits: limits}, nil
}

func limitFor(plan config.PlanConfig, action Action) int {
	switch action {
	case ActionAnalyze:
		return plan.AnalyzeLimit
	case ActionSuggest:
		return plan.SuggestLimit
	case ActionGenerate:
		return plan.GenerateLimit
	default:
		return 0
	}
}

func key(day, plan, sessionID string, action Action) string {
	return fmt.Sprintf("quota:%s:%s:%s:%s", day, plan, sessionID, action)
}
