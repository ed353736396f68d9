//go:build e2e

package helper

import (
	"net/http"
	"testing"

	reqdto "gearshare/internal/handler/dto/request"
	resdto "gearshare/internal/handler/dto/response"
	"gearshare/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const TestPassword = "password123"

// Account is a registered user plus its bearer token.
type Account struct {
	ID    uuid.UUID
	Email string
	Token string
}

// RegisterAccount creates a user through the public registration endpoint and
// returns the issued token, so tests exercise the same path real clients do.
func RegisterAccount(t *testing.T, router *gin.Engine, email, name string) Account {
	t.Helper()

	reqBody := reqdto.RegisterRequest{
		Email:    email,
		Name:     name,
		Password: TestPassword,
	}

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/register", reqBody, "")
	require.Equal(t, http.StatusCreated, w.Code, "registration failed: %s", w.Body.String())

	var res resdto.AuthResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	require.NotEqual(t, uuid.Nil, res.UserID)
	require.NotEmpty(t, res.Token)

	return Account{ID: res.UserID, Email: email, Token: res.Token}
}

// Login authenticates an existing account and returns a fresh token.
func Login(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	reqBody := reqdto.LoginRequest{Email: email, Password: password}

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", reqBody, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var res resdto.AuthResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res.Token
}

// CreateGearRequest posts a gear request for the given account and returns
// its id.
func CreateGearRequest(t *testing.T, router *gin.Engine, requester Account, description string) uuid.UUID {
	t.Helper()

	reqBody := reqdto.CreateGearRequestRequest{Description: description}

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/requests", reqBody, requester.Token)
	require.Equal(t, http.StatusCreated, w.Code, "request creation failed: %s", w.Body.String())

	var res resdto.CreatedResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res.ID
}

// CreateItem lists an item for the given account and returns its id.
func CreateItem(t *testing.T, router *gin.Engine, owner Account, name, description string, available bool) uuid.UUID {
	t.Helper()

	reqBody := reqdto.CreateItemRequest{
		Name:        name,
		Description: description,
		Available:   &available,
	}

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/items", reqBody, owner.Token)
	require.Equal(t, http.StatusCreated, w.Code, "item creation failed: %s", w.Body.String())

	var res resdto.CreatedResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res.ID
}
