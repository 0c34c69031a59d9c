package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saumyapn/folio/internal/models"
	"gorm.io/gorm"
)

func seedSkillOccurrences(t *testing.T, database *gorm.DB, occurrences map[string]int) {
	t.Helper()

	profile := models.Profile{Name: "Owner", Email: "skills@example.com"}
	if err := database.Create(&profile).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}
	for name, count := range occurrences {
		for i := 0; i < count; i++ {
			skill := models.Skill{Name: name, ProfileID: profile.ID}
			if err := database.Create(&skill).Error; err != nil {
				t.Fatalf("create skill %s: %v", name, err)
			}
		}
	}
}

func TestListSkillsReturnsAllRows(t *testing.T) {
	app, database, _ := newTestApp(t)
	seedSkillOccurrences(t, database, map[string]int{"Go": 1, "Python": 2})

	request := httptest.NewRequest(http.MethodGet, "/skills", nil)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("list skills failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	skills := make([]models.Skill, 0)
	decodeJSONBody(t, response.Body, &skills)
	if len(skills) != 3 {
		t.Fatalf("expected 3 skill rows, got %d", len(skills))
	}
}

func TestTopSkillsOrdersByDescendingCount(t *testing.T) {
	app, database, _ := newTestApp(t)
	seedSkillOccurrences(t, database, map[string]int{
		"Python":     3,
		"TypeScript": 2,
		"Go":         1,
	})

	request := httptest.NewRequest(http.MethodGet, "/skills/top", nil)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("top skills failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	counts := make([]models.SkillCount, 0)
	decodeJSONBody(t, response.Body, &counts)

	if len(counts) != 3 {
		t.Fatalf("expected 3 grouped rows, got %d", len(counts))
	}
	for index := 1; index < len(counts); index++ {
		if counts[index].Count > counts[index-1].Count {
			t.Fatalf("counts not descending: %+v", counts)
		}
	}
	if counts[0].Name != "Python" || counts[0].Count != 3 {
		t.Fatalf("expected Python on top with count 3, got %+v", counts[0])
	}
}

func TestHealthReportsOK(t *testing.T) {
	app, _, _ := newTestApp(t)

	request := httptest.NewRequest(http.MethodGet, "/health", nil)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	payload := map[string]string{}
	decodeJSONBody(t, response.Body, &payload)
	if payload["status"] != "OK" {
		t.Fatalf("expected status OK, got %q", payload["status"])
	}
}
