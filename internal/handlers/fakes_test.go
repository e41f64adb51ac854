package handlers_test

import (
	"context"
	"sort"

	"portfolio_backend/internal/email"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory repositories backing real services, so handler tests run
// the full request path without a database.

type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*models.User{}}
}

func (r *memUserRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.Username] = user
	return nil
}

func (r *memUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (r *memUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (r *memUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type memProjectRepo struct {
	items map[string]*models.Project
	order []string
}

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{items: map[string]*models.Project{}}
}

func (r *memProjectRepo) List(ctx context.Context) ([]models.Project, error) {
	// Insertion order reversed, standing in for created_at DESC.
	var out []models.Project
	for i := len(r.order) - 1; i >= 0; i-- {
		if item, ok := r.items[r.order[i]]; ok {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *memProjectRepo) FindByID(ctx context.Context, id string) (*models.Project, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *memProjectRepo) Create(ctx context.Context, project *models.Project) error {
	project.ID = uuid.NewString()
	r.items[project.ID] = project
	r.order = append(r.order, project.ID)
	return nil
}

func (r *memProjectRepo) Update(ctx context.Context, project *models.Project) error {
	r.items[project.ID] = project
	return nil
}

func (r *memProjectRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type memExperienceRepo struct {
	items map[string]*models.Experience
}

func newMemExperienceRepo() *memExperienceRepo {
	return &memExperienceRepo{items: map[string]*models.Experience{}}
}

func (r *memExperienceRepo) List(ctx context.Context) ([]models.Experience, error) {
	var out []models.Experience
	for _, item := range r.items {
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *memExperienceRepo) FindByID(ctx context.Context, id string) (*models.Experience, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *memExperienceRepo) Create(ctx context.Context, experience *models.Experience) error {
	experience.ID = uuid.NewString()
	r.items[experience.ID] = experience
	return nil
}

func (r *memExperienceRepo) Update(ctx context.Context, experience *models.Experience) error {
	r.items[experience.ID] = experience
	return nil
}

func (r *memExperienceRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type memEducationRepo struct {
	items map[string]*models.Education
}

func newMemEducationRepo() *memEducationRepo {
	return &memEducationRepo{items: map[string]*models.Education{}}
}

func (r *memEducationRepo) List(ctx context.Context) ([]models.Education, error) {
	var out []models.Education
	for _, item := range r.items {
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *memEducationRepo) FindByID(ctx context.Context, id string) (*models.Education, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *memEducationRepo) Create(ctx context.Context, education *models.Education) error {
	education.ID = uuid.NewString()
	r.items[education.ID] = education
	return nil
}

func (r *memEducationRepo) Update(ctx context.Context, education *models.Education) error {
	r.items[education.ID] = education
	return nil
}

func (r *memEducationRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type memAchievementRepo struct {
	items map[string]*models.Achievement
}

func newMemAchievementRepo() *memAchievementRepo {
	return &memAchievementRepo{items: map[string]*models.Achievement{}}
}

func (r *memAchievementRepo) List(ctx context.Context) ([]models.Achievement, error) {
	var out []models.Achievement
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, nil
}

func (r *memAchievementRepo) FindByID(ctx context.Context, id string) (*models.Achievement, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *memAchievementRepo) Create(ctx context.Context, achievement *models.Achievement) error {
	achievement.ID = uuid.NewString()
	r.items[achievement.ID] = achievement
	return nil
}

func (r *memAchievementRepo) Update(ctx context.Context, achievement *models.Achievement) error {
	r.items[achievement.ID] = achievement
	return nil
}

func (r *memAchievementRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type memReviewRepo struct {
	items map[string]*models.Review
}

func newMemReviewRepo() *memReviewRepo {
	return &memReviewRepo{items: map[string]*models.Review{}}
}

func (r *memReviewRepo) List(ctx context.Context) ([]models.Review, error) {
	var out []models.Review
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, nil
}

func (r *memReviewRepo) FindByID(ctx context.Context, id string) (*models.Review, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *memReviewRepo) Create(ctx context.Context, review *models.Review) error {
	review.ID = uuid.NewString()
	r.items[review.ID] = review
	return nil
}

func (r *memReviewRepo) Update(ctx context.Context, review *models.Review) error {
	r.items[review.ID] = review
	return nil
}

func (r *memReviewRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type recordingMailer struct {
	sent []*email.Message
}

func (m *recordingMailer) Send(msg *email.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}
