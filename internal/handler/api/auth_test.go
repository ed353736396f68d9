//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"gearshare/internal/handler/api"
	reqdto "gearshare/internal/handler/dto/request"
	resdto "gearshare/internal/handler/dto/response"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"
	"gearshare/tests/common/httptest"
	"gearshare/tests/common/testutil"
	commandsmock "gearshare/tests/mock/commands"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	authedUserID uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)
	s.authedUserID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.authedUserID)
		c.Next()
	}

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.GET("/auth/me", authMiddleware, s.handler.Me)
	s.router.PATCH("/auth/me", authMiddleware, s.handler.UpdateMe)
	s.router.DELETE("/auth/me", authMiddleware, s.handler.DeleteMe)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"

	reqBody := reqdto.RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "correct horse",
	}
	result := &commands.AuthResult{UserID: uuid.New(), Token: "signed-token"}

	s.Run("success: returns 201 Created with token", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(result.UserID, response.UserID)
		s.Equal(result.Token, response.Token)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-address")},
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "missing password", mutate: testutil.Field("password", nil)},
			{name: "short password", mutate: testutil.Field("password", "short")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 Conflict on duplicate email", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDuplicateEmail).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already registered")
	})

	s.Run("error: 500 Internal Server Error on unexpected failure", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := reqdto.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	}
	result := &commands.AuthResult{UserID: uuid.New(), Token: "signed-token"}

	s.Run("success: returns 200 OK with token", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(result.Token, response.Token)
	})

	s.Run("error: 401 Unauthorized on bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 400 Bad Request on missing password", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("password", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the authenticated account", func() {
		view := &queries.UserView{
			ID:        s.authedUserID,
			Email:     "alice@example.com",
			Name:      "Alice",
			CreatedAt: time.Now().UTC().Truncate(time.Second),
		}

		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.authedUserID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.authedUserID, response.ID)
		s.Equal(view.Email, response.Email)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 Not Found for a deleted account", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.authedUserID).
			Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}

func (s *AuthHandlerTestSuite) TestUpdateMe() {
	url := "/auth/me"

	newName := "Alice B"
	reqBody := reqdto.UpdateProfileRequest{Name: &newName}

	s.Run("success: applies the patch and returns the account", func() {
		view := &queries.UserView{
			ID:    s.authedUserID,
			Email: "alice@example.com",
			Name:  newName,
		}

		s.mockCommands.EXPECT().
			UpdateProfile(gomock.Any(), s.authedUserID, commands.UpdateProfileInput{Name: &newName}).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.authedUserID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(newName, response.Name)
	})

	s.Run("error: 400 Bad Request on malformed email", func() {
		requestMap := map[string]any{"email": "not-an-address"}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 409 Conflict when the email is taken", func() {
		email := "bob@example.com"

		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), s.authedUserID, gomock.Any()).
			Return(commands.ErrDuplicateEmail).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			reqdto.UpdateProfileRequest{Email: &email}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already registered")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *AuthHandlerTestSuite) TestDeleteMe() {
	url := "/auth/me"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteAccount(gomock.Any(), s.authedUserID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict while the account holds items or bookings", func() {
		s.mockCommands.EXPECT().DeleteAccount(gomock.Any(), s.authedUserID).
			Return(commands.ErrUserInUse).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "still holds")
	})

	s.Run("error: 404 Not Found for an already deleted account", func() {
		s.mockCommands.EXPECT().DeleteAccount(gomock.Any(), s.authedUserID).
			Return(commands.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
