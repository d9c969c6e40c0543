package projects_testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"trackdesk/internal/features/audit_logs"
	projects_dto "trackdesk/internal/features/projects/dto"
	projects_enums "trackdesk/internal/features/projects/enums"
	projects_models "trackdesk/internal/features/projects/models"
	users_dto "trackdesk/internal/features/users/dto"
	users_middleware "trackdesk/internal/features/users/middleware"
	users_services "trackdesk/internal/features/users/services"
)

func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		if routerGroup, ok := protected.(*gin.RouterGroup); ok {
			controller.RegisterRoutes(routerGroup)
		}
	}

	audit_logs.SetupDependencies()

	return router
}

func CreateTestProject(
	title string,
	author *users_dto.SignInResponseDTO,
	router *gin.Engine,
) *projects_models.Project {
	request := projects_dto.CreateProjectRequestDTO{
		Title:       title,
		Description: "test project",
		Type:        projects_enums.ProjectTypeBackEnd,
	}

	w := MakeAPIRequest(router, "POST", "/api/v1/projects", "Bearer "+author.Token, request)

	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("Failed to create project. Status: %d, Body: %s", w.Code, w.Body.String()))
	}

	var response projects_dto.ProjectResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return &projects_models.Project{
		ID:          response.ID,
		Title:       response.Title,
		Description: response.Description,
		Type:        response.Type,
		CreatedAt:   response.CreatedAt,
	}
}

func AddContributorToProject(
	project *projects_models.Project,
	userID uint,
	authorToken string,
	router *gin.Engine,
) {
	w := MakeAPIRequest(
		router,
		"POST",
		fmt.Sprintf("/api/v1/projects/%d/contributors/%d", project.ID, userID),
		"Bearer "+authorToken,
		nil,
	)

	if w.Code != http.StatusCreated {
		panic("Failed to add contributor via API: " + w.Body.String())
	}
}

func RemoveContributorFromProject(
	project *projects_models.Project,
	userID uint,
	removerToken string,
	router *gin.Engine,
) *httptest.ResponseRecorder {
	return MakeAPIRequest(
		router,
		"DELETE",
		fmt.Sprintf("/api/v1/projects/%d/contributors/%d", project.ID, userID),
		"Bearer "+removerToken,
		nil,
	)
}

func GetProjectContributors(
	project *projects_models.Project,
	requesterToken string,
	router *gin.Engine,
) *projects_dto.GetContributorsResponseDTO {
	w := MakeAPIRequest(
		router,
		"GET",
		fmt.Sprintf("/api/v1/projects/%d/contributors", project.ID),
		"Bearer "+requesterToken,
		nil,
	)

	if w.Code != http.StatusOK {
		panic("Failed to get project contributors via API: " + w.Body.String())
	}

	var response projects_dto.GetContributorsResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return &response
}

func MakeAPIRequest(router *gin.Engine, method, url, authToken string, body any) *httptest.ResponseRecorder {
	var requestBody *bytes.Buffer
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		requestBody = bytes.NewBuffer(bodyJSON)
	} else {
		requestBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, requestBody)
	if err != nil {
		panic(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
