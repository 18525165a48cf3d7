package pausereason

import (
	"context"

	"github.com/chronotrack/timeclock-backend-go/internal/domain/pausereason"
	"github.com/google/uuid"
)

type PauseReasonServiceImpl struct {
	pausereason.Repository
}

func NewPauseReasonService(repo pausereason.Repository) pausereason.Service {
	return &PauseReasonServiceImpl{Repository: repo}
}

// Create implements pausereason.Service.
func (s *PauseReasonServiceImpl) Create(ctx context.Context, req pausereason.CreatePauseReasonRequest) (pausereason.PauseReasonResponse, error) {
	if err := req.Validate(); err != nil {
		return pausereason.PauseReasonResponse{}, err
	}

	reason := pausereason.PauseReason{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
	}

	created, err := s.Repository.Create(ctx, reason)
	if err != nil {
		return pausereason.PauseReasonResponse{}, err
	}

	return reasonToResponse(created), nil
}

// List implements pausereason.Service.
func (s *PauseReasonServiceImpl) List(ctx context.Context) ([]pausereason.PauseReasonResponse, error) {
	reasons, err := s.Repository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]pausereason.PauseReasonResponse, 0, len(reasons))
	for _, reason := range reasons {
		responses = append(responses, reasonToResponse(reason))
	}
	return responses, nil
}

// Update implements pausereason.Service.
func (s *PauseReasonServiceImpl) Update(ctx context.Context, req pausereason.UpdatePauseReasonRequest) (pausereason.PauseReasonResponse, error) {
	if err := req.Validate(); err != nil {
		return pausereason.PauseReasonResponse{}, err
	}

	reason, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return pausereason.PauseReasonResponse{}, err
	}

	if req.Name != nil {
		reason.Name = *req.Name
	}
	if req.Description != nil {
		reason.Description = req.Description
	}

	updated, err := s.Repository.Update(ctx, reason)
	if err != nil {
		return pausereason.PauseReasonResponse{}, err
	}

	return reasonToResponse(updated), nil
}

// Delete implements pausereason.Service.
func (s *PauseReasonServiceImpl) Delete(ctx context.Context, id string) error {
	return s.Repository.Delete(ctx, id)
}

func reasonToResponse(reason pausereason.PauseReason) pausereason.PauseReasonResponse {
	return pausereason.PauseReasonResponse{
		ID:          reason.ID,
		Name:        reason.Name,
		Description: reason.Description,
	}
}
