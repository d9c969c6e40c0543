package users_controllers

import (
	"net/http"
	"testing"
	"time"

	users_dto "trackdesk/internal/features/users/dto"
	users_middleware "trackdesk/internal/features/users/middleware"
	users_services "trackdesk/internal/features/users/services"
	users_testing "trackdesk/internal/features/users/testing"
	test_utils "trackdesk/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func Test_SignUpUser_WithValidData_UserCreated(t *testing.T) {
	router := createUserTestRouter()

	request := users_dto.SignUpRequestDTO{
		Username:    "signup-" + uuid.NewString()[:8],
		Email:       "signup" + uuid.NewString() + "@example.com",
		Password:    "testpassword123",
		DateOfBirth: "1990-05-20",
	}

	var response users_dto.UserProfileResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/signup",
		"",
		request,
		http.StatusCreated,
		&response,
	)

	assert.NotZero(t, response.ID)
	assert.Equal(t, request.Username, response.Username)
	assert.Equal(t, request.Email, response.Email)
}

func Test_SignUpUser_WithInvalidJSON_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "POST",
		URL:            "/api/v1/users/signup",
		Body:           "invalid json",
		ExpectedStatus: http.StatusBadRequest,
	})

	assert.Contains(t, string(resp.Body), "Invalid request format")
}

func Test_SignUpUser_WithDuplicateUsername_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	request := users_dto.SignUpRequestDTO{
		Username:    "duplicate-" + uuid.NewString()[:8],
		Email:       "duplicate" + uuid.NewString() + "@example.com",
		Password:    "testpassword123",
		DateOfBirth: "1990-05-20",
	}

	// First signup
	test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", request, http.StatusCreated)

	// Second signup with same username
	resp := test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", request, http.StatusBadRequest)
	assert.Contains(t, string(resp.Body), "already exists")
}

func Test_SignUpUser_WithValidationErrors_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	testCases := []struct {
		name    string
		request users_dto.SignUpRequestDTO
	}{
		{
			name: "missing username",
			request: users_dto.SignUpRequestDTO{
				Email:       "test@example.com",
				Password:    "testpassword123",
				DateOfBirth: "1990-05-20",
			},
		},
		{
			name: "invalid email",
			request: users_dto.SignUpRequestDTO{
				Username:    "user-" + uuid.NewString()[:8],
				Email:       "not-an-email",
				Password:    "testpassword123",
				DateOfBirth: "1990-05-20",
			},
		},
		{
			name: "short password",
			request: users_dto.SignUpRequestDTO{
				Username:    "user-" + uuid.NewString()[:8],
				Email:       "test@example.com",
				Password:    "short",
				DateOfBirth: "1990-05-20",
			},
		},
		{
			name: "malformed date of birth",
			request: users_dto.SignUpRequestDTO{
				Username:    "user-" + uuid.NewString()[:8],
				Email:       "test@example.com",
				Password:    "testpassword123",
				DateOfBirth: "20/05/1990",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", tc.request, http.StatusBadRequest)
		})
	}
}

func Test_SignUpUser_WhenFifteenOrYounger_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	// Exactly 15 years old today, which is not strictly older than 15
	dateOfBirth := time.Now().UTC().AddDate(-15, 0, 0).Format("2006-01-02")

	request := users_dto.SignUpRequestDTO{
		Username:    "minor-" + uuid.NewString()[:8],
		Email:       "minor" + uuid.NewString() + "@example.com",
		Password:    "testpassword123",
		DateOfBirth: dateOfBirth,
	}

	resp := test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", request, http.StatusBadRequest)
	assert.Contains(t, string(resp.Body), "older than 15 years")
}

func Test_SignUpUser_WhenOlderThanFifteen_UserCreated(t *testing.T) {
	router := createUserTestRouter()

	dateOfBirth := time.Now().UTC().AddDate(-16, 0, -1).Format("2006-01-02")

	request := users_dto.SignUpRequestDTO{
		Username:    "teen-" + uuid.NewString()[:8],
		Email:       "teen" + uuid.NewString() + "@example.com",
		Password:    "testpassword123",
		DateOfBirth: dateOfBirth,
	}

	test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", request, http.StatusCreated)
}

func Test_SignInUser_WithValidCredentials_ReturnsToken(t *testing.T) {
	router := createUserTestRouter()
	username := "signin-" + uuid.NewString()[:8]
	password := "testpassword123"

	signupRequest := users_dto.SignUpRequestDTO{
		Username:    username,
		Email:       "signin" + uuid.NewString() + "@example.com",
		Password:    password,
		DateOfBirth: "1990-05-20",
	}
	test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", signupRequest, http.StatusCreated)

	signinRequest := users_dto.SignInRequestDTO{
		Username: username,
		Password: password,
	}

	var response users_dto.SignInResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/signin",
		"",
		signinRequest,
		http.StatusOK,
		&response,
	)

	assert.NotEmpty(t, response.Token)
	assert.NotZero(t, response.UserID)
	assert.Equal(t, username, response.Username)
}

func Test_SignInUser_WithWrongPassword_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()
	username := "signin2-" + uuid.NewString()[:8]

	signupRequest := users_dto.SignUpRequestDTO{
		Username:    username,
		Email:       "signin2" + uuid.NewString() + "@example.com",
		Password:    "testpassword123",
		DateOfBirth: "1990-05-20",
	}
	test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", signupRequest, http.StatusCreated)

	signinRequest := users_dto.SignInRequestDTO{
		Username: username,
		Password: "wrongpassword",
	}

	test_utils.MakePostRequest(t, router, "/api/v1/users/signin", "", signinRequest, http.StatusUnauthorized)
}

func Test_SignInUser_WithNonExistentUser_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	signinRequest := users_dto.SignInRequestDTO{
		Username: "nonexistent-" + uuid.NewString()[:8],
		Password: "testpassword123",
	}

	test_utils.MakePostRequest(t, router, "/api/v1/users/signin", "", signinRequest, http.StatusUnauthorized)
}

func Test_SignInUser_WithInvalidJSON_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "POST",
		URL:            "/api/v1/users/signin",
		Body:           "invalid json",
		ExpectedStatus: http.StatusBadRequest,
	})

	assert.Contains(t, string(resp.Body), "Invalid request format")
}

func Test_SignOutUser_WithValidToken_TokenDenylisted(t *testing.T) {
	router := createUserTestRouter()
	testUser := users_testing.CreateTestUser()

	// Token works before signout
	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", "Bearer "+testUser.Token, http.StatusOK)

	test_utils.MakePostRequest(t, router, "/api/v1/users/signout", "Bearer "+testUser.Token, nil, http.StatusOK)

	// The same token is rejected afterwards
	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", "Bearer "+testUser.Token, http.StatusUnauthorized)
}

func Test_SignOutUser_WithoutAuth_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	test_utils.MakePostRequest(t, router, "/api/v1/users/signout", "", nil, http.StatusUnauthorized)
}

func Test_GetCurrentUser_WithValidToken_ReturnsProfile(t *testing.T) {
	router := createUserTestRouter()
	testUser := users_testing.CreateTestUser()

	var response users_dto.UserProfileResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/me",
		"Bearer "+testUser.Token,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, testUser.UserID, response.ID)
	assert.Equal(t, testUser.Username, response.Username)
}

func Test_GetCurrentUser_WithoutAuth_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", "", http.StatusUnauthorized)
}

func Test_UpdateProfile_WithValidData_ProfileUpdated(t *testing.T) {
	router := createUserTestRouter()
	testUser := users_testing.CreateTestUser()

	newEmail := "updated" + uuid.NewString() + "@example.com"
	canBeContacted := false
	request := users_dto.UpdateProfileRequestDTO{
		Email:          &newEmail,
		CanBeContacted: &canBeContacted,
	}

	var response users_dto.UserProfileResponseDTO
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/me",
		"Bearer "+testUser.Token,
		request,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, newEmail, response.Email)
	assert.False(t, response.CanBeContacted)

	// The username is immutable and stays untouched
	assert.Equal(t, testUser.Username, response.Username)
}

func Test_UpdateProfile_WithUnderageDateOfBirth_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()
	testUser := users_testing.CreateTestUser()

	dateOfBirth := time.Now().UTC().AddDate(-10, 0, 0).Format("2006-01-02")
	request := users_dto.UpdateProfileRequestDTO{
		DateOfBirth: &dateOfBirth,
	}

	resp := test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/users/me",
		"Bearer "+testUser.Token,
		request,
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "older than 15 years")
}

func Test_UpdateProfile_WithInvalidJSON_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()
	testUser := users_testing.CreateTestUser()

	resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "PUT",
		URL:            "/api/v1/users/me",
		Body:           "invalid json",
		AuthToken:      "Bearer " + testUser.Token,
		ExpectedStatus: http.StatusBadRequest,
	})

	assert.Contains(t, string(resp.Body), "Invalid request format")
}

func Test_DeleteAccount_WithValidToken_AccountDeleted(t *testing.T) {
	router := createUserTestRouter()
	testUser := users_testing.CreateTestUser()

	test_utils.MakeDeleteRequest(t, router, "/api/v1/users/me", "Bearer "+testUser.Token, http.StatusOK)

	// The token no longer resolves to a user
	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", "Bearer "+testUser.Token, http.StatusUnauthorized)
}

// Test router creation helpers
func createUserTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")

	// Register public routes
	GetUserController().RegisterRoutes(v1)

	// Register protected routes with auth middleware
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))
	GetUserController().RegisterProtectedRoutes(protected.(*gin.RouterGroup))
	GetUserController().SetSignInLimiter(rate.NewLimiter(rate.Limit(100), 100))

	// Setup audit log service
	users_services.GetUserService().SetAuditLogWriter(&AuditLogWriterStub{})

	return router
}

type AuditLogWriterStub struct{}

func (a *AuditLogWriterStub) WriteAuditLog(message string, userID *uint, projectID *uint) {
	// do nothing
}
