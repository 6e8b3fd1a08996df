package service

import (
	"context"
	"fmt"
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"policyhub/internal/model"
	"policyhub/internal/repository"
)

// DefaultActivityLimit bounds recent-activity queries when the caller gives none.
const DefaultActivityLimit = 10

// Audit appends are best-effort; failures are swallowed so they never mask
// the registry mutation they describe. This counter makes them observable.
var activityAppendFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "registry_activity_append_failures_total",
	Help: "Audit trail appends that failed and were swallowed",
})

// ActivityService exposes the audit trail.
type ActivityService interface {
	// Log appends an audit line, fire-and-forget. Errors are counted and
	// logged, never returned.
	Log(ctx context.Context, text string)
	Recent(ctx context.Context, limit int) ([]model.Activity, error)
}

type activityService struct {
	repo repository.ActivityRepository
}

// NewActivityService creates a new activity service.
func NewActivityService(repo repository.ActivityRepository) ActivityService {
	return &activityService{repo: repo}
}

// Log appends an audit line best-effort.
func (s *activityService) Log(ctx context.Context, text string) {
	if err := s.repo.Append(ctx, &model.Activity{Activity: text}); err != nil {
		activityAppendFailures.Inc()
		log.Printf("activity append failed (swallowed): %v", err)
	}
}

// Recent lists the latest audit lines, newest first.
func (s *activityService) Recent(ctx context.Context, limit int) ([]model.Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	activities, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent activities: %w", err)
	}
	return activities, nil
}
