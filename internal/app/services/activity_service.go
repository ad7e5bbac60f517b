package services

import (
	"context"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/repositories"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

// ActivityService exposes the audit trail written by the mutating endpoints.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, limit int) ([]*models.ActivityLog, error)
}

type activityServiceImpl struct {
	logs *repositories.ActivityLogRepository
}

// NewActivityService creates a new ActivityService
func NewActivityService(logs *repositories.ActivityLogRepository) ActivityService {
	return &activityServiceImpl{logs: logs}
}

// GetRecentActivity returns the newest log entries, newest first.
func (s *activityServiceImpl) GetRecentActivity(ctx context.Context, limit int) ([]*models.ActivityLog, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	entries, err := s.logs.ListRecent(ctx, limit)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if entries == nil {
		entries = []*models.ActivityLog{}
	}
	return entries, nil
}
