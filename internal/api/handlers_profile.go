package api

import "github.com/gofiber/fiber/v2"

// GetProfile returns the first profile with its related collections, or JSON
// null when nothing has been created yet.
func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	profile, err := handler.profiles.Get()
	if err != nil {
		handler.log.Error().Err(err).Msg("fetch profile failed")
		return resourceError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}
	return c.JSON(profile)
}

func (handler *Handler) SaveProfile(c *fiber.Ctx) error {
	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return resourceError(c, fiber.StatusInternalServerError, "Failed to save profile")
	}

	profile, err := handler.profiles.Upsert(input.Name, input.Email)
	if err != nil {
		handler.log.Error().Err(err).Msg("save profile failed")
		return resourceError(c, fiber.StatusInternalServerError, "Failed to save profile")
	}
	return c.JSON(profile)
}
