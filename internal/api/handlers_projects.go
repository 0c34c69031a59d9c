package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/saumyapn/folio/internal/services"
)

func (handler *Handler) ListProjects(c *fiber.Ctx) error {
	projects, err := handler.projects.List(c.Query("skill"))
	if err != nil {
		handler.log.Error().Err(err).Msg("fetch projects failed")
		return resourceError(c, fiber.StatusInternalServerError, "Failed to fetch projects")
	}
	return c.JSON(projects)
}

func (handler *Handler) CreateProject(c *fiber.Ctx) error {
	input := projectInput{}
	if err := c.BodyParser(&input); err != nil {
		return resourceError(c, fiber.StatusBadRequest, "Title and profileId are required")
	}

	project, err := handler.projects.Create(input.Title, input.Description, input.Work, input.ProfileID)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			return resourceError(c, fiber.StatusBadRequest, "Title and profileId are required")
		}
		handler.log.Error().Err(err).Msg("create project failed")
		return resourceError(c, fiber.StatusInternalServerError, "Failed to create project")
	}
	return c.JSON(project)
}

func (handler *Handler) CreateProjectFromGitHub(c *fiber.Ctx) error {
	input := githubProjectInput{}
	if err := c.BodyParser(&input); err != nil {
		return resourceError(c, fiber.StatusBadRequest, "GitHub URL and profileId are required")
	}

	project, err := handler.projects.CreateFromGitHub(input.GitHubURL, input.ProfileID)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			return resourceError(c, fiber.StatusBadRequest, "GitHub URL and profileId are required")
		}
		handler.log.Error().Err(err).Msg("create project from github failed")
		return resourceError(c, fiber.StatusInternalServerError, "Failed to create project from GitHub")
	}
	return c.JSON(project)
}
