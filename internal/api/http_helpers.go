package api

import "github.com/gofiber/fiber/v2"

// Auth endpoints respond with a {"message": ...} envelope, resource endpoints
// with {"error": ...}; both shapes match what the frontend consumes.

func messageError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

func resourceError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}
