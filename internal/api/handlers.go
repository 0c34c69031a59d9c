package api

import (
	"github.com/saumyapn/folio/internal/auth"
	"github.com/saumyapn/folio/internal/logger"
	"github.com/saumyapn/folio/internal/services"
)

// Handler carries the services behind the HTTP surface. It holds no mutable
// request state; every field is read-only after construction.
type Handler struct {
	authService *services.AuthService
	profiles    *services.ProfileService
	projects    *services.ProjectService
	skills      *services.SkillService
	guard       auth.Authorizer
	log         *logger.Logger
}

func NewHandler(
	authService *services.AuthService,
	profiles *services.ProfileService,
	projects *services.ProjectService,
	skills *services.SkillService,
	guard auth.Authorizer,
	log *logger.Logger,
) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{
		authService: authService,
		profiles:    profiles,
		projects:    projects,
		skills:      skills,
		guard:       guard,
		log:         log,
	}
}
