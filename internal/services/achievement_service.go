package services

import (
	"context"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
)

type AchievementService interface {
	List(ctx context.Context) ([]models.Achievement, error)
	Create(ctx context.Context, input *dto.AchievementInput) (*models.Achievement, error)
	Update(ctx context.Context, id string, input *dto.AchievementInput) (*models.Achievement, error)
	Delete(ctx context.Context, id string) error
}

type achievementService struct {
	repo repositories.AchievementRepository
}

func NewAchievementService(repo repositories.AchievementRepository) AchievementService {
	return &achievementService{repo: repo}
}

func (s *achievementService) List(ctx context.Context) ([]models.Achievement, error) {
	achievements, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return achievements, nil
}

func (s *achievementService) Create(ctx context.Context, input *dto.AchievementInput) (*models.Achievement, error) {
	achievement := &models.Achievement{}
	applyAchievementInput(achievement, input)

	if err := s.repo.Create(ctx, achievement); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return achievement, nil
}

func (s *achievementService) Update(ctx context.Context, id string, input *dto.AchievementInput) (*models.Achievement, error) {
	achievement, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Achievement not found")
		}
		return nil, apperrors.InternalError(err)
	}

	applyAchievementInput(achievement, input)

	if err := s.repo.Update(ctx, achievement); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return achievement, nil
}

func (s *achievementService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func applyAchievementInput(achievement *models.Achievement, input *dto.AchievementInput) {
	achievement.Title = input.Title
	achievement.Description = input.Description
	achievement.Date = input.Date
	achievement.Icon = input.Icon
}
