package db

import (
	"github.com/saumyapn/folio/internal/models"
	"gorm.io/gorm"
)

type SkillRepository struct {
	database *gorm.DB
}

func NewSkillRepository(database *gorm.DB) *SkillRepository {
	return &SkillRepository{database: database}
}

func (repo *SkillRepository) List() ([]models.Skill, error) {
	skills := make([]models.Skill, 0)
	if err := repo.database.Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// TopByName groups skills by name with a descending occurrence count.
// Ties carry no guaranteed sub-order.
func (repo *SkillRepository) TopByName() ([]models.SkillCount, error) {
	counts := make([]models.SkillCount, 0)
	err := repo.database.Model(&models.Skill{}).
		Select("name, COUNT(*) AS count").
		Group("name").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
