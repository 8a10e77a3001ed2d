package services

import (
	"context"
	"strings"

	"github.com/nwatkins/streamtracker/internal/domain/platform"
	"github.com/nwatkins/streamtracker/internal/pkg/errors"
	"github.com/nwatkins/streamtracker/internal/pkg/logger"
)

// PlatformService implements platform.Service
type PlatformService struct {
	repo platform.Repository
	log  *logger.Logger
}

// NewPlatformService creates a new platform service
func NewPlatformService(repo platform.Repository, log *logger.Logger) platform.Service {
	return &PlatformService{repo: repo, log: log}
}

// List retrieves the user's platforms ordered by name
func (s *PlatformService) List(ctx context.Context, userID int64) ([]*platform.Platform, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Create adds a new platform for the user. Platform names are unique
// per user, case-insensitively.
func (s *PlatformService) Create(ctx context.Context, userID int64, p *platform.Platform) (*platform.Platform, error) {
	p.UserID = userID
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return nil, errors.BadRequest("Platform name is required")
	}
	if p.MonthlyCost < 0 {
		return nil, errors.BadRequest("Monthly cost cannot be negative")
	}
	if p.Color == "" {
		p.Color = platform.DefaultColor
	}

	if err := s.ensureUniqueName(ctx, userID, p.Name, 0); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"user_id":     userID,
		"platform_id": p.ID,
	}).Info("platform created")

	return p, nil
}

// Update applies a partial update to a platform owned by the user
func (s *PlatformService) Update(ctx context.Context, userID, id int64, patch platform.Patch) (*platform.Platform, error) {
	p, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, errors.BadRequest("Platform name is required")
		}
		if !strings.EqualFold(name, p.Name) {
			if err := s.ensureUniqueName(ctx, userID, name, id); err != nil {
				return nil, err
			}
		}
		patch.Name = &name
	}
	if patch.MonthlyCost != nil && *patch.MonthlyCost < 0 {
		return nil, errors.BadRequest("Monthly cost cannot be negative")
	}

	p.Apply(patch)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Delete removes a platform owned by the user
func (s *PlatformService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.log.WithFields(map[string]interface{}{
		"user_id":     userID,
		"platform_id": id,
	}).Info("platform deleted")

	return nil
}

func (s *PlatformService) ensureUniqueName(ctx context.Context, userID int64, name string, excludeID int64) error {
	existing, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, p := range existing {
		if p.ID != excludeID && strings.EqualFold(p.Name, name) {
			return errors.Conflict("A platform with this name already exists")
		}
	}
	return nil
}
