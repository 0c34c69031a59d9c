package db

import "gorm.io/gorm"

type Repositories struct {
	Profiles *ProfileRepository
	Projects *ProjectRepository
	Skills   *SkillRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Profiles: NewProfileRepository(database),
		Projects: NewProjectRepository(database),
		Skills:   NewSkillRepository(database),
	}
}
