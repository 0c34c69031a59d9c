package services

import (
	"fmt"

	"github.com/saumyapn/folio/internal/models"
)

type SkillStoreRepository interface {
	List() ([]models.Skill, error)
	TopByName() ([]models.SkillCount, error)
}

// SkillService lists skills and the grouped top-skills leaderboard.
type SkillService struct {
	skills SkillStoreRepository
}

func NewSkillService(skills SkillStoreRepository) *SkillService {
	return &SkillService{skills: skills}
}

func (service *SkillService) List() ([]models.Skill, error) {
	skills, err := service.skills.List()
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return skills, nil
}

// Top returns skill names with descending occurrence counts. The relative
// order of names with equal counts is unspecified.
func (service *SkillService) Top() ([]models.SkillCount, error) {
	counts, err := service.skills.TopByName()
	if err != nil {
		return nil, fmt.Errorf("top skills: %w", err)
	}
	return counts, nil
}
