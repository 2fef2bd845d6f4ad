package admin

import (
	"context"

	"urbanease/models"
	"urbanease/upstream"
	"urbanease/utils"

	"go.uber.org/zap"
)

// Overview is the admin dashboard payload. Analytics is nil when its fetch
// failed; that failure is logged only and never surfaces to the caller.
type Overview struct {
	Stats     *models.PlatformStats `json:"stats"`
	Users     []models.AdminUser    `json:"users"`
	Analytics *models.Analytics     `json:"analytics,omitempty"`
}

// AdminService covers the platform administration flows.
type AdminService interface {
	GetOverview(ctx context.Context, session models.UserSession) (*Overview, error)
	DeleteUser(ctx context.Context, session models.UserSession, userID string) error
}

// DefaultAdminService implements AdminService.
type DefaultAdminService struct {
	API *upstream.Client
}

func (s *DefaultAdminService) GetOverview(ctx context.Context, session models.UserSession) (*Overview, error) {
	stats, err := s.API.GetAdminStats(ctx, session.UpstreamToken)
	if err != nil {
		return nil, err
	}
	users, err := s.API.GetAdminUsers(ctx, session.UpstreamToken)
	if err != nil {
		return nil, err
	}

	overview := &Overview{Stats: stats, Users: users}

	// Analytics is best-effort: the dashboard renders without it.
	analytics, err := s.API.GetAdminAnalytics(ctx, session.UpstreamToken)
	if err != nil {
		utils.GetLogger().Warn("Admin analytics unavailable", zap.Error(err))
	} else {
		overview.Analytics = analytics
	}
	return overview, nil
}

// DeleteUser removes a platform account upstream. Callers drop the row from
// their local table only after this returns nil.
func (s *DefaultAdminService) DeleteUser(ctx context.Context, session models.UserSession, userID string) error {
	return s.API.DeleteAdminUser(ctx, session.UpstreamToken, userID)
}
