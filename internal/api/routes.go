package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/health", handler.Health)

	authRoutes := app.Group("/auth")
	authRoutes.Post("/signup", handler.Signup)
	authRoutes.Post("/signin", handler.Signin)

	profile := app.Group("/profile")
	profile.Get("", handler.GetProfile)
	profile.Post("", handler.TokenRequired, handler.SaveProfile)

	projects := app.Group("/projects")
	projects.Get("", handler.ListProjects)
	projects.Post("", handler.TokenRequired, handler.CreateProject)
	projects.Post("/from-github", handler.TokenRequired, handler.CreateProjectFromGitHub)

	skills := app.Group("/skills")
	skills.Get("", handler.ListSkills)
	skills.Get("/top", handler.TopSkills)
}
