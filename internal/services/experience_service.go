package services

import (
	"context"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
)

type ExperienceService interface {
	List(ctx context.Context) ([]models.Experience, error)
	Create(ctx context.Context, input *dto.ExperienceInput) (*models.Experience, error)
	Update(ctx context.Context, id string, input *dto.ExperienceInput) (*models.Experience, error)
	Delete(ctx context.Context, id string) error
}

type experienceService struct {
	repo repositories.ExperienceRepository
}

func NewExperienceService(repo repositories.ExperienceRepository) ExperienceService {
	return &experienceService{repo: repo}
}

func (s *experienceService) List(ctx context.Context) ([]models.Experience, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entries, nil
}

func (s *experienceService) Create(ctx context.Context, input *dto.ExperienceInput) (*models.Experience, error) {
	entry := &models.Experience{}
	applyExperienceInput(entry, input)

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entry, nil
}

func (s *experienceService) Update(ctx context.Context, id string, input *dto.ExperienceInput) (*models.Experience, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Experience not found")
		}
		return nil, apperrors.InternalError(err)
	}

	applyExperienceInput(entry, input)

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entry, nil
}

func (s *experienceService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func applyExperienceInput(entry *models.Experience, input *dto.ExperienceInput) {
	entry.Company = input.Company
	entry.Role = input.Role
	entry.Duration = input.Duration
	entry.Description = input.Description
	entry.Order = input.Order
}
