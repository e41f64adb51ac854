package services

import (
	"context"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
)

type ReviewService interface {
	List(ctx context.Context) ([]models.Review, error)
	Create(ctx context.Context, input *dto.ReviewInput) (*models.Review, error)
	Update(ctx context.Context, id string, input *dto.ReviewInput) (*models.Review, error)
	Delete(ctx context.Context, id string) error
}

type reviewService struct {
	repo repositories.ReviewRepository
}

func NewReviewService(repo repositories.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

func (s *reviewService) List(ctx context.Context) ([]models.Review, error) {
	reviews, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return reviews, nil
}

func (s *reviewService) Create(ctx context.Context, input *dto.ReviewInput) (*models.Review, error) {
	review := &models.Review{}
	applyReviewInput(review, input)

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return review, nil
}

func (s *reviewService) Update(ctx context.Context, id string, input *dto.ReviewInput) (*models.Review, error) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Review not found")
		}
		return nil, apperrors.InternalError(err)
	}

	applyReviewInput(review, input)

	if err := s.repo.Update(ctx, review); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func applyReviewInput(review *models.Review, input *dto.ReviewInput) {
	review.ClientName = input.ClientName
	review.Company = input.Company
	review.Review = input.Review
	review.Image = input.Image

	// A five star default matches what the public site renders for
	// reviews submitted without a rating.
	if input.Rating == 0 {
		review.Rating = 5
	} else {
		review.Rating = input.Rating
	}
}
