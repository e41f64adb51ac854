package repositories

import (
	"context"
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

type EducationRepository interface {
	List(ctx context.Context) ([]models.Education, error)
	FindByID(ctx context.Context, id string) (*models.Education, error)
	Create(ctx context.Context, education *models.Education) error
	Update(ctx context.Context, education *models.Education) error
	Delete(ctx context.Context, id string) error
}

type educationRepository struct {
	db *gorm.DB
}

func NewEducationRepository(db *gorm.DB) EducationRepository {
	return &educationRepository{db: db}
}

func (r *educationRepository) List(ctx context.Context) ([]models.Education, error) {
	var entries []models.Education
	err := r.db.WithContext(ctx).Order("sort_order ASC").Find(&entries).Error
	return entries, err
}

func (r *educationRepository) FindByID(ctx context.Context, id string) (*models.Education, error) {
	var entry models.Education
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *educationRepository) Create(ctx context.Context, education *models.Education) error {
	return r.db.WithContext(ctx).Create(education).Error
}

func (r *educationRepository) Update(ctx context.Context, education *models.Education) error {
	return r.db.WithContext(ctx).Save(education).Error
}

func (r *educationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Education{}, "id = ?", id).Error
}
