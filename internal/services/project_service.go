package services

import (
	"context"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"

	"gorm.io/datatypes"
)

type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Create(ctx context.Context, input *dto.ProjectInput) (*models.Project, error)
	Update(ctx context.Context, id string, input *dto.ProjectInput) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	repo repositories.ProjectRepository
}

func NewProjectService(repo repositories.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

func (s *projectService) List(ctx context.Context) ([]models.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return projects, nil
}

func (s *projectService) Create(ctx context.Context, input *dto.ProjectInput) (*models.Project, error) {
	project := &models.Project{}
	applyProjectInput(project, input)

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

// Update replaces the mutable fields. Unknown ids are a 404, not a
// silent no-op.
func (s *projectService) Update(ctx context.Context, id string, input *dto.ProjectInput) (*models.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Project not found")
		}
		return nil, apperrors.InternalError(err)
	}

	applyProjectInput(project, input)

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func applyProjectInput(project *models.Project, input *dto.ProjectInput) {
	project.Title = input.Title
	project.Description = input.Description
	project.Image = input.Image
	project.Tags = datatypes.NewJSONSlice(input.Tags)
	project.LiveLink = input.LiveLink
	project.GithubFrontend = input.GithubFrontend
	project.GithubBackend = input.GithubBackend
	project.Featured = input.Featured
}
