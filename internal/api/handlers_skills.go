package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListSkills(c *fiber.Ctx) error {
	skills, err := handler.skills.List()
	if err != nil {
		handler.log.Error().Err(err).Msg("fetch skills failed")
		return resourceError(c, fiber.StatusInternalServerError, "Failed to fetch skills")
	}
	return c.JSON(skills)
}

func (handler *Handler) TopSkills(c *fiber.Ctx) error {
	counts, err := handler.skills.Top()
	if err != nil {
		handler.log.Error().Err(err).Msg("fetch top skills failed")
		return resourceError(c, fiber.StatusInternalServerError, "Failed to fetch top skills")
	}
	return c.JSON(counts)
}
