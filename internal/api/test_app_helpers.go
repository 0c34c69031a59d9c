package api

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/saumyapn/folio/internal/auth"
	"github.com/saumyapn/folio/internal/db"
	"github.com/saumyapn/folio/internal/logger"
	"github.com/saumyapn/folio/internal/services"
	"gorm.io/gorm"
)

const testSecret = "test-secret-key"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *auth.TokenManager) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "folio-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	repositories := db.NewRepositories(database)
	tokenManager := auth.NewTokenManager(testSecret, 7*24*time.Hour)
	log := logger.Nop()

	handler := NewHandler(
		services.NewAuthService(repositories.Profiles, tokenManager, log),
		services.NewProfileService(repositories.Profiles),
		services.NewProjectService(repositories.Projects),
		services.NewSkillService(repositories.Skills),
		tokenManager,
		log,
	)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database, tokenManager
}
