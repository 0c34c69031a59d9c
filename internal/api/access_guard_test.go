package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func postProfileWithAuthorization(t *testing.T, app *fiber.App, authorization string) *http.Response {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/profile", map[string]string{
		"name":  "Owner",
		"email": "owner@example.com",
	})
	if authorization != "" {
		request.Header.Set("Authorization", authorization)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("profile request failed: %v", err)
	}
	return response
}

func TestGuardRejectsMissingToken(t *testing.T) {
	app, _, _ := newTestApp(t)

	response := postProfileWithAuthorization(t, app, "")
	defer response.Body.Close()

	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", response.StatusCode)
	}
	if message := readMessage(t, response.Body); message != "Unauthorized" {
		t.Fatalf("expected Unauthorized message, got %q", message)
	}
}

func TestGuardRejectsGarbageToken(t *testing.T) {
	app, _, _ := newTestApp(t)

	response := postProfileWithAuthorization(t, app, "Bearer not-a-jwt")
	defer response.Body.Close()

	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", response.StatusCode)
	}
}

func TestGuardRejectsBearerWithoutToken(t *testing.T) {
	app, _, _ := newTestApp(t)

	response := postProfileWithAuthorization(t, app, "Bearer")
	defer response.Body.Close()

	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", response.StatusCode)
	}
}

func TestGuardAcceptsAnyValidToken(t *testing.T) {
	app, _, tokenManager := newTestApp(t)

	// The guard proves token validity only, not resource ownership, so a
	// token for an arbitrary account id authorizes the mutation.
	token, err := tokenManager.Issue(42, "someone@example.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	response := postProfileWithAuthorization(t, app, "Bearer "+token)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
}
