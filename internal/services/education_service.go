package services

import (
	"context"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
)

type EducationService interface {
	List(ctx context.Context) ([]models.Education, error)
	Create(ctx context.Context, input *dto.EducationInput) (*models.Education, error)
	Update(ctx context.Context, id string, input *dto.EducationInput) (*models.Education, error)
	Delete(ctx context.Context, id string) error
}

type educationService struct {
	repo repositories.EducationRepository
}

func NewEducationService(repo repositories.EducationRepository) EducationService {
	return &educationService{repo: repo}
}

func (s *educationService) List(ctx context.Context) ([]models.Education, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entries, nil
}

func (s *educationService) Create(ctx context.Context, input *dto.EducationInput) (*models.Education, error) {
	entry := &models.Education{}
	applyEducationInput(entry, input)

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entry, nil
}

func (s *educationService) Update(ctx context.Context, id string, input *dto.EducationInput) (*models.Education, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Education not found")
		}
		return nil, apperrors.InternalError(err)
	}

	applyEducationInput(entry, input)

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entry, nil
}

func (s *educationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func applyEducationInput(entry *models.Education, input *dto.EducationInput) {
	entry.Institution = input.Institution
	entry.Degree = input.Degree
	entry.Duration = input.Duration
	entry.Description = input.Description
	entry.Order = input.Order
}
