package v1

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/certibot/certibot/internal/adapter/llm"
	"github.com/certibot/certibot/internal/domain"
)

func TestRegisterLoginCurrentUserRoundTrip(t *testing.T) {
	e, _ := newTestServer(t, llm.NewMockClient())

	rec := doRequest(e, http.MethodPost, "/api/auth/register", `{"username":"alice","email":"alice@example.com","password":"secret123","firstName":"Alice"}`, "")
	assert.Equal(t, http.StatusCreated, rec.Code)

	var registered domain.AuthResponse
	decodeBody(t, rec, &registered)
	assert.Equal(t, "User registered successfully", registered.Message)
	assert.NotEmpty(t, registered.Token)
	if assert.NotNil(t, registered.User) {
		assert.Equal(t, "alice", registered.User.Username)
		assert.Equal(t, domain.RoleUser, registered.User.Role)
	}
	// The password hash must never leak through the API.
	assert.NotContains(t, rec.Body.String(), "password")

	rec = doRequest(e, http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"secret123"}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var loggedIn domain.AuthResponse
	decodeBody(t, rec, &loggedIn)
	assert.NotEmpty(t, loggedIn.Token)

	rec = doRequest(e, http.MethodGet, "/api/auth/user", "", loggedIn.Token)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]*domain.User
	decodeBody(t, rec, &body)
	if assert.NotNil(t, body["user"]) {
		assert.Equal(t, "alice@example.com", body["user"].Email)
	}
}

func TestRegisterValidation(t *testing.T) {
	e, _ := newTestServer(t, llm.NewMockClient())

	cases := []struct {
		name string
		body string
	}{
		{"missing username", `{"email":"a@example.com","password":"secret123"}`},
		{"bad email", `{"username":"alice","email":"not-an-email","password":"secret123"}`},
		{"short password", `{"username":"alice","email":"a@example.com","password":"abc"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodPost, "/api/auth/register", tc.body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRegisterDuplicateEmailEndpoint(t *testing.T) {
	e, _ := newTestServer(t, llm.NewMockClient())

	body := `{"username":"alice","email":"alice@example.com","password":"secret123"}`
	rec := doRequest(e, http.MethodPost, "/api/auth/register", body, "")
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/auth/register", body, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, "User already exists with this email", resp["message"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	e, _ := newTestServer(t, llm.NewMockClient())

	rec := doRequest(e, http.MethodPost, "/api/auth/login", `{"email":"nobody@example.com","password":"whatever"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCurrentUserRequiresToken(t *testing.T) {
	e, _ := newTestServer(t, llm.NewMockClient())

	rec := doRequest(e, http.MethodGet, "/api/auth/user", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/auth/user", "", "garbage-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminUsersEndpoint(t *testing.T) {
	e, svc := newTestServer(t, llm.NewMockClient())
	if err := svc.EnsureDefaultAccounts(context.Background()); err != nil {
		t.Fatalf("EnsureDefaultAccounts failed: %v", err)
	}

	_, adminToken, err := svc.Login(context.Background(), "admin@certibot.com", "admin123")
	if err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
	_, userToken, err := svc.Login(context.Background(), "user@certibot.com", "user123")
	if err != nil {
		t.Fatalf("user login failed: %v", err)
	}

	rec := doRequest(e, http.MethodGet, "/api/admin/users", "", adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string][]domain.User
	decodeBody(t, rec, &body)
	assert.Len(t, body["users"], 2)

	rec = doRequest(e, http.MethodGet, "/api/admin/users", "", userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/admin/users", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
