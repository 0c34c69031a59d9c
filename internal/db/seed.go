package db

import (
	"fmt"

	"github.com/saumyapn/folio/internal/models"
	"gorm.io/gorm"
)

type seedProject struct {
	Title       string
	Description string
	Work        string
	Links       []models.Link
	Skills      []string
}

var seedSkillNames = []string{
	"HTML", "CSS", "JavaScript", "React.js", "Next.js", "TypeScript",
	"Tailwind CSS", "WebRTC", "Node.js", "Express.js", "WebSockets", "Prisma",
	"Java", "Python", "MongoDB", "MySQL", "PostgreSQL", "Redis", "AWS",
	"Docker", "Docker Swarm", "Kubernetes", "Git", "GitHub", "Jest",
	"Mocha/Chai",
}

var seedProjects = []seedProject{
	{
		Title: "AI Interviewer",
		Description: "AI-powered interview simulation tool generating 500+ technical and behavioral questions. " +
			"Uses Gemini API to deliver personalized feedback improving interview readiness by 25%. " +
			"Implemented secure authentication and session handling with 30% reduced API latency through optimization and caching.",
		Work: models.DefaultProjectWork,
		Links: []models.Link{
			{Type: "demo", URL: "https://ai-interviewer-rig4xa96i-vineets-projects-ef673d72.vercel.app/"},
		},
		Skills: []string{"React.js", "Node.js", "TypeScript"},
	},
	{
		Title: "URL Shortener",
		Description: "Full-stack URL platform used by 20+ users generating 150+ short links. " +
			"Optimized redirection logic reducing response latency by 40%. " +
			"Achieved 95+ Lighthouse score with responsive UI design. " +
			"Implemented CI/CD on Vercel enabling zero-downtime deployments.",
		Work: models.DefaultProjectWork,
		Links: []models.Link{
			{Type: "demo", URL: "https://shorturl-ten-mocha.vercel.app/"},
		},
		Skills: []string{"Next.js", "TypeScript", "Prisma", "PostgreSQL", "Tailwind CSS"},
	},
	{
		Title: "Crop Rotation Detection using Remote Sensing",
		Description: "Machine learning-based system to analyze crop rotation patterns using multi-temporal satellite imagery. " +
			"Processed and analyzed 1,000+ satellite images using vegetation indices (NDVI and EVI). " +
			"Trained classification models achieving 85% accuracy in identifying crop rotation cycles. " +
			"Integrated GIS-based spatial analysis for visualizing crop transitions.",
		Work: models.DefaultProjectWork,
		Links: []models.Link{
			{Type: models.LinkTypeGitHub, URL: "https://github.com/saumya/crop-rotation"},
		},
		Skills: []string{"Python", "Machine Learning", "PostgreSQL"},
	},
}

// Seed loads the demo portfolio: one owner profile with profile links, an
// education record, the skill catalog, and sample projects wired to their
// skills. Seeding is skipped when any profile already exists, so rerunning
// the binary with -seed is safe.
func Seed(database *gorm.DB) error {
	var existing int64
	if err := database.Model(&models.Profile{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("count profiles: %w", err)
	}
	if existing > 0 {
		return nil
	}

	return database.Transaction(func(tx *gorm.DB) error {
		profile := models.Profile{
			Name:  "Saumya Prakash Narayan",
			Email: "saumyaprakashnarayan@gmail.com",
		}
		if err := tx.Create(&profile).Error; err != nil {
			return fmt.Errorf("create seed profile: %w", err)
		}

		profileLinks := []models.Link{
			{Type: models.LinkTypeGitHub, URL: "https://github.com/saumya"},
			{Type: "linkedin", URL: "https://www.linkedin.com/in/saumya-prakash-narayan/"},
			{Type: "portfolio", URL: "https://portfolio.dev/"},
		}
		for index := range profileLinks {
			profileLinks[index].ProfileID = &profile.ID
			if err := tx.Create(&profileLinks[index]).Error; err != nil {
				return fmt.Errorf("create profile link: %w", err)
			}
		}

		education := models.Education{
			Degree:      "B.Tech in Computer Science and Engineering",
			Institution: "National Institute of Technology (NIT), Delhi",
			StartYear:   2023,
			EndYear:     2027,
			ProfileID:   profile.ID,
		}
		if err := tx.Create(&education).Error; err != nil {
			return fmt.Errorf("create seed education: %w", err)
		}

		skillIDsByName := make(map[string]uint, len(seedSkillNames))
		for _, skillName := range seedSkillNames {
			skill := models.Skill{Name: skillName, ProfileID: profile.ID}
			if err := tx.Create(&skill).Error; err != nil {
				return fmt.Errorf("create seed skill %s: %w", skillName, err)
			}
			skillIDsByName[skillName] = skill.ID
		}

		for _, entry := range seedProjects {
			project := models.Project{
				Title:       entry.Title,
				Description: entry.Description,
				Work:        entry.Work,
				ProfileID:   profile.ID,
			}
			if err := tx.Create(&project).Error; err != nil {
				return fmt.Errorf("create seed project %s: %w", entry.Title, err)
			}

			for index := range entry.Links {
				link := entry.Links[index]
				link.ProjectID = &project.ID
				if err := tx.Create(&link).Error; err != nil {
					return fmt.Errorf("create link for %s: %w", entry.Title, err)
				}
			}

			for _, skillName := range entry.Skills {
				skillID, known := skillIDsByName[skillName]
				if !known {
					continue
				}
				projectSkill := models.ProjectSkill{ProjectID: project.ID, SkillID: skillID}
				if err := tx.Create(&projectSkill).Error; err != nil {
					return fmt.Errorf("wire skill %s to %s: %w", skillName, entry.Title, err)
				}
			}
		}

		return nil
	})
}
