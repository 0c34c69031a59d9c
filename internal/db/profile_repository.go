package db

import (
	"errors"

	"github.com/saumyapn/folio/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

// FindByEmail looks an account up by its exact email. Account lookup is
// deliberately exact-match even though project skill filtering elsewhere is
// case-insensitive.
func (repo *ProfileRepository) FindByEmail(email string) (models.Profile, error) {
	var profile models.Profile
	if err := repo.database.Where("email = ?", email).First(&profile).Error; err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (repo *ProfileRepository) ExistsByEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Profile{}).
		Where("email = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *ProfileRepository) Create(profile *models.Profile) error {
	return repo.database.Create(profile).Error
}

// FirstWithRelations returns the first profile with its education, skills,
// projects (including project skills and links) and profile links preloaded.
func (repo *ProfileRepository) FirstWithRelations() (models.Profile, error) {
	var profile models.Profile
	err := repo.database.
		Preload("Education").
		Preload("Skills").
		Preload("Projects.Skills.Skill").
		Preload("Projects.Links").
		Preload("Links").
		First(&profile).Error
	if err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// UpsertByEmail updates the profile stored under lookupEmail or creates a new
// one when no such row exists. The caller resolves an absent email to the
// default identity key before calling.
func (repo *ProfileRepository) UpsertByEmail(lookupEmail string, name string, email string) (models.Profile, error) {
	var profile models.Profile
	err := repo.database.Where("email = ?", lookupEmail).First(&profile).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		storedEmail := email
		if storedEmail == "" {
			storedEmail = lookupEmail
		}
		profile = models.Profile{Name: name, Email: storedEmail}
		if err := repo.database.Create(&profile).Error; err != nil {
			return models.Profile{}, err
		}
	case err != nil:
		return models.Profile{}, err
	default:
		updates := map[string]any{"name": name}
		if email != "" {
			updates["email"] = email
		}
		if err := repo.database.Model(&profile).Updates(updates).Error; err != nil {
			return models.Profile{}, err
		}
	}

	return repo.reloadWithRelations(profile.ID)
}

func (repo *ProfileRepository) reloadWithRelations(profileID uint) (models.Profile, error) {
	var profile models.Profile
	err := repo.database.
		Preload("Education").
		Preload("Skills").
		Preload("Projects.Skills.Skill").
		Preload("Projects.Links").
		Preload("Links").
		First(&profile, profileID).Error
	if err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}
