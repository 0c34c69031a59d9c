package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/saumyapn/folio/internal/auth"
	"github.com/saumyapn/folio/internal/logger"
	"github.com/saumyapn/folio/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthProfileRepository is the account persistence surface the authenticator
// needs. Lookups are exact-match on the stored email.
type AuthProfileRepository interface {
	ExistsByEmail(email string) (bool, error)
	FindByEmail(email string) (models.Profile, error)
	Create(profile *models.Profile) error
}

// AuthService validates signup/signin input, hashes and verifies passwords,
// and issues bearer tokens through the injected token manager.
type AuthService struct {
	profiles AuthProfileRepository
	tokens   *auth.TokenManager
	log      *logger.Logger
}

// AuthResult is what both signup and signin hand back: the issued token and
// the account's public fields. The password hash never leaves the service.
type AuthResult struct {
	Token   string
	Profile models.Profile
}

func NewAuthService(profiles AuthProfileRepository, tokens *auth.TokenManager, log *logger.Logger) *AuthService {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthService{profiles: profiles, tokens: tokens, log: log}
}

// SignUp creates an account and signs the caller in.
//
// The existence check before the insert is a best-effort optimization only;
// under concurrent signups the unique index on email is the final arbiter,
// and its violation also surfaces as ErrEmailTaken.
func (service *AuthService) SignUp(email string, password string, name string) (AuthResult, error) {
	if email == "" || password == "" {
		return AuthResult{}, ErrMissingCredentials
	}
	if len(password) < MinPasswordLength {
		return AuthResult{}, ErrPasswordTooShort
	}

	taken, err := service.profiles.ExistsByEmail(email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("check existing account: %w", err)
	}
	if taken {
		return AuthResult{}, ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	if name == "" {
		name = emailLocalPart(email)
	}

	hash := string(passwordHash)
	profile := models.Profile{
		Name:     name,
		Email:    email,
		Password: &hash,
	}
	if err := service.profiles.Create(&profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return AuthResult{}, ErrEmailTaken
		}
		return AuthResult{}, fmt.Errorf("create account: %w", err)
	}

	token, err := service.tokens.Issue(profile.ID, profile.Email)
	if err != nil {
		return AuthResult{}, err
	}

	service.log.Info().Uint("profileId", profile.ID).Msg("account created")
	return AuthResult{Token: token, Profile: profile}, nil
}

// SignIn verifies the credentials and issues a token identical in shape to
// signup's. Every failure path returns ErrInvalidCredentials.
func (service *AuthService) SignIn(email string, password string) (AuthResult, error) {
	if email == "" || password == "" {
		return AuthResult{}, ErrMissingCredentials
	}

	profile, err := service.profiles.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, fmt.Errorf("find account: %w", err)
	}

	if profile.Password == nil || *profile.Password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(*profile.Password), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := service.tokens.Issue(profile.ID, profile.Email)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{Token: token, Profile: profile}, nil
}

func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
