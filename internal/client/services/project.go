package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blogfolio/internal/client/client"
	"github.com/dmitrijs2005/blogfolio/internal/client/models"
	"github.com/dmitrijs2005/blogfolio/internal/client/normalize"
	"github.com/dmitrijs2005/blogfolio/internal/logging"
)

// ProjectService passes project CRUD through to the backend. Projects are
// not cached and have no fallback content.
type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, slug string) (*models.Project, error)
	Create(ctx context.Context, p models.Project) (*models.Project, error)
	Update(ctx context.Context, slug string, p models.Project) (*models.Project, error)
	Delete(ctx context.Context, slug string) error
}

type projectService struct {
	client client.Client
	norm   *normalize.Normalizer
	log    logging.Logger
}

func NewProjectService(c client.Client, log logging.Logger) ProjectService {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &projectService{client: c, norm: normalize.New(log), log: log}
}

func (s *projectService) List(ctx context.Context) ([]models.Project, error) {
	v, err := s.client.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return s.norm.Projects(ctx, v), nil
}

func (s *projectService) Get(ctx context.Context, slug string) (*models.Project, error) {
	v, err := s.client.GetProject(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get project %q: %w", slug, err)
	}
	p, ok := s.norm.Project(ctx, v, slug)
	if !ok {
		return nil, fmt.Errorf("project %q: %w", slug, models.ErrNotFound)
	}
	return &p, nil
}

func (s *projectService) Create(ctx context.Context, p models.Project) (*models.Project, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	v, err := s.client.CreateProject(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return s.written(ctx, v, p), nil
}

func (s *projectService) Update(ctx context.Context, slug string, p models.Project) (*models.Project, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	v, err := s.client.UpdateProject(ctx, slug, p)
	if err != nil {
		return nil, fmt.Errorf("update project %q: %w", slug, err)
	}
	return s.written(ctx, v, p), nil
}

func (s *projectService) Delete(ctx context.Context, slug string) error {
	if err := s.client.DeleteProject(ctx, slug); err != nil {
		return fmt.Errorf("delete project %q: %w", slug, err)
	}
	return nil
}

func (s *projectService) written(ctx context.Context, v any, submitted models.Project) *models.Project {
	if p, ok := s.norm.Project(ctx, v, submitted.Slug); ok {
		return &p
	}
	out := submitted.Clone()
	return &out
}
