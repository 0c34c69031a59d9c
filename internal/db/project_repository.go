package db

import (
	"github.com/saumyapn/folio/internal/models"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	database *gorm.DB
}

func NewProjectRepository(database *gorm.DB) *ProjectRepository {
	return &ProjectRepository{database: database}
}

// List returns all projects with their skills and links. When skillName is
// non-empty only projects carrying a skill with that name are returned; the
// match is case-insensitive, so "python" and "Python" select the same set.
func (repo *ProjectRepository) List(skillName string) ([]models.Project, error) {
	query := repo.database.
		Preload("Skills.Skill").
		Preload("Links")

	if skillName != "" {
		query = query.Where(
			`id IN (
				SELECT project_skills.project_id
				FROM project_skills
				JOIN skills ON skills.id = project_skills.skill_id
				WHERE lower(skills.name) = lower(?)
			)`, skillName)
	}

	projects := make([]models.Project, 0)
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (repo *ProjectRepository) Create(project *models.Project) error {
	return repo.database.Create(project).Error
}

// CreateWithLinks creates the project and its links in one transaction.
func (repo *ProjectRepository) CreateWithLinks(project *models.Project, links []models.Link) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		for index := range links {
			links[index].ProjectID = &project.ID
			if err := tx.Create(&links[index]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (repo *ProjectRepository) FindByIDWithRelations(projectID uint) (models.Project, error) {
	var project models.Project
	err := repo.database.
		Preload("Skills.Skill").
		Preload("Links").
		First(&project, projectID).Error
	if err != nil {
		return models.Project{}, err
	}
	return project, nil
}
