package services

import (
	"errors"
	"fmt"

	"github.com/saumyapn/folio/internal/models"
	"gorm.io/gorm"
)

// DefaultProfileKey is the identity the profile upsert falls back to when the
// request carries no email. It makes the single-portfolio special case
// explicit instead of hiding it in an inline string.
const DefaultProfileKey = "unique-default"

type ProfileStoreRepository interface {
	FirstWithRelations() (models.Profile, error)
	UpsertByEmail(lookupEmail string, name string, email string) (models.Profile, error)
}

// ProfileService reads and upserts the portfolio owner's profile.
type ProfileService struct {
	profiles ProfileStoreRepository
}

func NewProfileService(profiles ProfileStoreRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Get returns the first profile with all related collections, or nil when no
// profile exists yet. Absence is not an error.
func (service *ProfileService) Get() (*models.Profile, error) {
	profile, err := service.profiles.FirstWithRelations()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &profile, nil
}

// Upsert creates or updates the profile keyed by email; an absent email is
// resolved to DefaultProfileKey.
func (service *ProfileService) Upsert(name string, email string) (models.Profile, error) {
	lookupEmail := email
	if lookupEmail == "" {
		lookupEmail = DefaultProfileKey
	}

	profile, err := service.profiles.UpsertByEmail(lookupEmail, name, email)
	if err != nil {
		return models.Profile{}, fmt.Errorf("upsert profile: %w", err)
	}
	return profile, nil
}
