package api

import (
	"net/http"
	"testing"

	"github.com/saumyapn/folio/internal/models"
)

func TestSignupCreatesAccountAndReturnsToken(t *testing.T) {
	app, database, tokenManager := newTestApp(t)

	request := jsonRequest(t, http.MethodPost, "/auth/signup", map[string]string{
		"email":    "a@b.com",
		"password": "secret1",
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("signup request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	payload := struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
	}{}
	decodeJSONBody(t, response.Body, &payload)

	if payload.Token == "" {
		t.Fatal("expected a token in the signup response")
	}
	claims, err := tokenManager.Parse(payload.Token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.Email != "a@b.com" {
		t.Fatalf("expected token email a@b.com, got %q", claims.Email)
	}
	if claims.UserID != payload.User.ID {
		t.Fatalf("expected token userId %d, got %d", payload.User.ID, claims.UserID)
	}
	if payload.User.Name != "a" {
		t.Fatalf("expected name to default to the email local-part, got %q", payload.User.Name)
	}

	var profile models.Profile
	if err := database.Where("email = ?", "a@b.com").First(&profile).Error; err != nil {
		t.Fatalf("load created profile: %v", err)
	}
	if profile.Password == nil || *profile.Password == "" {
		t.Fatal("expected a stored password hash")
	}
	if *profile.Password == "secret1" {
		t.Fatal("password must not be stored in clear text")
	}
}

func TestSignupRejectsShortPassword(t *testing.T) {
	app, database, _ := newTestApp(t)

	request := jsonRequest(t, http.MethodPost, "/auth/signup", map[string]string{
		"email":    "short@example.com",
		"password": "12345",
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("signup request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
	if message := readMessage(t, response.Body); message != "Password must be at least 6 characters" {
		t.Fatalf("unexpected validation message %q", message)
	}

	var count int64
	if err := database.Model(&models.Profile{}).Count(&count).Error; err != nil {
		t.Fatalf("count profiles: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no profile rows, found %d", count)
	}
}

func TestSignupRejectsMissingCredentials(t *testing.T) {
	app, _, _ := newTestApp(t)

	request := jsonRequest(t, http.MethodPost, "/auth/signup", map[string]string{
		"email": "only-email@example.com",
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("signup request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
	if message := readMessage(t, response.Body); message != "Email and password are required" {
		t.Fatalf("unexpected validation message %q", message)
	}
}

func TestSignupConflictsOnDuplicateEmail(t *testing.T) {
	app, _, _ := newTestApp(t)

	first := jsonRequest(t, http.MethodPost, "/auth/signup", map[string]string{
		"email":    "dup@example.com",
		"password": "secret1",
	})
	firstResponse, err := app.Test(first, -1)
	if err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	firstResponse.Body.Close()
	if firstResponse.StatusCode != http.StatusCreated {
		t.Fatalf("expected first signup 201, got %d", firstResponse.StatusCode)
	}

	second := jsonRequest(t, http.MethodPost, "/auth/signup", map[string]string{
		"email":    "dup@example.com",
		"password": "another1",
	})
	secondResponse, err := app.Test(second, -1)
	if err != nil {
		t.Fatalf("second signup failed: %v", err)
	}
	defer secondResponse.Body.Close()

	if secondResponse.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", secondResponse.StatusCode)
	}
	if message := readMessage(t, secondResponse.Body); message != "User with this email already exists" {
		t.Fatalf("unexpected conflict message %q", message)
	}
}

func TestSigninAfterSignupSucceeds(t *testing.T) {
	app, _, _ := newTestApp(t)

	signup := jsonRequest(t, http.MethodPost, "/auth/signup", map[string]string{
		"email":    "roundtrip@example.com",
		"password": "secret1",
		"name":     "Round Trip",
	})
	signupResponse, err := app.Test(signup, -1)
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	signupResponse.Body.Close()

	signin := jsonRequest(t, http.MethodPost, "/auth/signin", map[string]string{
		"email":    "roundtrip@example.com",
		"password": "secret1",
	})
	response, err := app.Test(signin, -1)
	if err != nil {
		t.Fatalf("signin failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	payload := struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			Name string `json:"name"`
		} `json:"user"`
	}{}
	decodeJSONBody(t, response.Body, &payload)
	if payload.Token == "" {
		t.Fatal("expected a token in the signin response")
	}
	if payload.User.Name != "Round Trip" {
		t.Fatalf("expected submitted name to be kept, got %q", payload.User.Name)
	}
}

func TestSigninFailuresAreNotEnumerable(t *testing.T) {
	app, _, _ := newTestApp(t)

	signup := jsonRequest(t, http.MethodPost, "/auth/signup", map[string]string{
		"email":    "known@example.com",
		"password": "secret1",
	})
	signupResponse, err := app.Test(signup, -1)
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	signupResponse.Body.Close()

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "known@example.com", password: "wrong-1"},
		{name: "unknown email", email: "nobody@example.com", password: "secret1"},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			request := jsonRequest(t, http.MethodPost, "/auth/signin", map[string]string{
				"email":    testCase.email,
				"password": testCase.password,
			})
			response, err := app.Test(request, -1)
			if err != nil {
				t.Fatalf("signin failed: %v", err)
			}
			defer response.Body.Close()

			if response.StatusCode != http.StatusUnauthorized {
				t.Fatalf("expected status 401, got %d", response.StatusCode)
			}
			if message := readMessage(t, response.Body); message != "Invalid email or password" {
				t.Fatalf("expected the generic credentials message, got %q", message)
			}
		})
	}
}
