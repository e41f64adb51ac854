package repositories

import (
	"context"
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

type ExperienceRepository interface {
	List(ctx context.Context) ([]models.Experience, error)
	FindByID(ctx context.Context, id string) (*models.Experience, error)
	Create(ctx context.Context, experience *models.Experience) error
	Update(ctx context.Context, experience *models.Experience) error
	Delete(ctx context.Context, id string) error
}

type experienceRepository struct {
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

// List returns entries sorted by the manual order key.
func (r *experienceRepository) List(ctx context.Context) ([]models.Experience, error) {
	var entries []models.Experience
	err := r.db.WithContext(ctx).Order("sort_order ASC").Find(&entries).Error
	return entries, err
}

func (r *experienceRepository) FindByID(ctx context.Context, id string) (*models.Experience, error) {
	var entry models.Experience
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *experienceRepository) Create(ctx context.Context, experience *models.Experience) error {
	return r.db.WithContext(ctx).Create(experience).Error
}

func (r *experienceRepository) Update(ctx context.Context, experience *models.Experience) error {
	return r.db.WithContext(ctx).Save(experience).Error
}

func (r *experienceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Experience{}, "id = ?", id).Error
}
