package services

import (
	"fmt"
	"strings"

	"github.com/saumyapn/folio/internal/models"
)

type ProjectStoreRepository interface {
	List(skillName string) ([]models.Project, error)
	Create(project *models.Project) error
	CreateWithLinks(project *models.Project, links []models.Link) error
	FindByIDWithRelations(projectID uint) (models.Project, error)
}

// ProjectService lists and creates portfolio projects.
type ProjectService struct {
	projects ProjectStoreRepository
}

func NewProjectService(projects ProjectStoreRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

// List returns every project with skills and links; a non-empty skillName
// narrows the set with a case-insensitive skill-name match.
func (service *ProjectService) List(skillName string) ([]models.Project, error) {
	projects, err := service.projects.List(skillName)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Create stores a new project. Title and profile id are required; work
// defaults to "Personal Project".
func (service *ProjectService) Create(title string, description string, work string, profileID uint) (models.Project, error) {
	if title == "" || profileID == 0 {
		return models.Project{}, ErrMissingFields
	}
	if work == "" {
		work = models.DefaultProjectWork
	}

	project := models.Project{
		Title:       title,
		Description: description,
		Work:        work,
		ProfileID:   profileID,
	}
	if err := service.projects.Create(&project); err != nil {
		return models.Project{}, fmt.Errorf("create project: %w", err)
	}

	created, err := service.projects.FindByIDWithRelations(project.ID)
	if err != nil {
		return models.Project{}, fmt.Errorf("reload project: %w", err)
	}
	return created, nil
}

// CreateFromGitHub derives a project from a repository URL: the title is the
// URL's last path segment (minus a trailing ".git"), the description is
// synthesized from owner/repo, and a github-typed link is attached.
func (service *ProjectService) CreateFromGitHub(githubURL string, profileID uint) (models.Project, error) {
	if githubURL == "" || profileID == 0 {
		return models.Project{}, ErrMissingFields
	}

	owner, repo := splitGitHubURL(githubURL)
	project := models.Project{
		Title:       repo,
		Description: fmt.Sprintf("GitHub project: %s/%s", owner, repo),
		Work:        models.OpenSourceWork,
		ProfileID:   profileID,
	}
	links := []models.Link{
		{Type: models.LinkTypeGitHub, URL: githubURL},
	}
	if err := service.projects.CreateWithLinks(&project, links); err != nil {
		return models.Project{}, fmt.Errorf("create github project: %w", err)
	}

	created, err := service.projects.FindByIDWithRelations(project.ID)
	if err != nil {
		return models.Project{}, fmt.Errorf("reload project: %w", err)
	}
	return created, nil
}

func splitGitHubURL(githubURL string) (owner string, repo string) {
	parts := strings.Split(strings.TrimSuffix(githubURL, "/"), "/")
	repo = strings.TrimSuffix(parts[len(parts)-1], ".git")
	if len(parts) > 1 {
		owner = parts[len(parts)-2]
	}
	return owner, repo
}
