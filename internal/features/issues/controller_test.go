package issues

import (
	"fmt"
	"net/http"
	"testing"

	issues_models "trackdesk/internal/features/issues/models"
	projects_controllers "trackdesk/internal/features/projects/controllers"
	projects_models "trackdesk/internal/features/projects/models"
	projects_testing "trackdesk/internal/features/projects/testing"
	users_dto "trackdesk/internal/features/users/dto"
	users_testing "trackdesk/internal/features/users/testing"
	test_utils "trackdesk/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createIssueTestRouter() *gin.Engine {
	return projects_testing.CreateTestRouter(
		projects_controllers.GetProjectController(),
		projects_controllers.GetContributorController(),
		GetIssueController(),
	)
}

func createTestIssue(
	t *testing.T,
	router *gin.Engine,
	project *projects_models.Project,
	author *users_dto.SignInResponseDTO,
	request CreateIssueRequestDTO,
) *IssueResponseDTO {
	t.Helper()

	var response IssueResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%d/issues", project.ID),
		"Bearer "+author.Token,
		request,
		http.StatusCreated,
		&response,
	)

	return &response
}

func Test_CreateIssue_AsProjectAuthor_IssueCreated(t *testing.T) {
	router := createIssueTestRouter()
	author := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Issues "+uuid.NewString()[:8], author, router)

	issue := createTestIssue(t, router, project, author, CreateIssueRequestDTO{
		Title:       "Crash on startup",
		Description: "the app crashes when the config file is missing",
		Tag:         issues_models.IssueTagBug,
		Priority:    issues_models.IssuePriorityHigh,
	})

	assert.NotZero(t, issue.ID)
	assert.Equal(t, project.ID, issue.ProjectID)
	assert.Equal(t, issues_models.IssueTagBug, issue.Tag)
	assert.Equal(t, issues_models.IssuePriorityHigh, issue.Priority)
	assert.Equal(t, author.UserID, issue.AuthorUserID)

	// Status defaults to TODO, assignment defaults to the creator
	assert.Equal(t, issues_models.IssueStatusTodo, issue.Status)
	assert.Equal(t, author.UserID, issue.AssignedUserID)
}

func Test_CreateIssue_AssignedToContributor_IssueCreated(t *testing.T) {
	router := createIssueTestRouter()
	author := users_testing.CreateTestUser()
	contributor := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Assigned "+uuid.NewString()[:8], author, router)
	projects_testing.AddContributorToProject(project, contributor.UserID, author.Token, router)

	issue := createTestIssue(t, router, project, author, CreateIssueRequestDTO{
		Title:          "Implement settings page",
		Tag:            issues_models.IssueTagFeature,
		Priority:       issues_models.IssuePriorityMedium,
		AssignedUserID: &contributor.UserID,
	})

	assert.Equal(t, contributor.UserID, issue.AssignedUserID)
	assert.Equal(t, author.UserID, issue.AuthorUserID)
}

func Test_CreateIssue_AsContributor_ReturnsForbidden(t *testing.T) {
	router := createIssueTestRouter()
	author := users_testing.CreateTestUser()
	contributor := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("AuthorOnly "+uuid.NewString()[:8], author, router)
	projects_testing.AddContributorToProject(project, contributor.UserID, author.Token, router)

	request := CreateIssueRequestDTO{
		Title:    "Not allowed",
		Tag:      issues_models.IssueTagTask,
		Priority: issues_models.IssuePriorityLow,
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%d/issues", project.ID),
		"Bearer "+contributor.Token,
		request,
		http.StatusForbidden,
	)
	assert.Contains(t, string(resp.Body), "insufficient permissions")
}

func Test_CreateIssue_AssignedToNonContributor_ReturnsBadRequest(t *testing.T) {
	router := createIssueTestRouter()
	author := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Strict "+uuid.NewString()[:8], author, router)

	request := CreateIssueRequestDTO{
		Title:          "Misassigned",
		Tag:            issues_models.IssueTagTask,
		Priority:       issues_models.IssuePriorityLow,
		AssignedUserID: &outsider.UserID,
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%d/issues", project.ID),
		"Bearer "+author.Token,
		request,
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "assigned user is not a contributor")
}

func Test_CreateIssue_WithInvalidTag_ReturnsBadRequest(t *testing.T) {
	router := createIssueTestRouter()
	author := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Tags "+uuid.NewString()[:8], author, router)

	request := CreateIssueRequestDTO{
		Title:    "Bad tag",
		Tag:      issues_models.IssueTag("EPIC"),
		Priority: issues_models.IssuePriorityLow,
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%d/issues", project.ID),
		"Bearer "+author.Token,
		request,
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "invalid issue tag")
}

func Test_CreateIssue_WhenProjectDoesNotExist_ReturnsNotFound(t *testing.T) {
	router := createIssueTestRouter()
	author := users_testing.CreateTestUser()

	request := CreateIssueRequestDTO{
		Title:    "Nowhere",
		Tag:      issues_models.IssueTagBug,
		Priority: issues_models.IssuePriorityLow,
	}

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/projects/999999/issues",
		"Bearer "+author.Token,
		request,
		http.StatusNotFound,
	)
}

func Test_GetIssues_AsContributor_ReturnsProjectIssues(t *testing.T) {
	router := createIssueTestRouter()
	author := users_testing.CreateTestUser()
	contributor := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Listing "+uuid.NewString()[:8], author, router)
	projects_testing.AddContributorToProject(project, contributor.UserID, author.Token, router)

	createTestIssue(t, router, project, author, CreateIssueRequestDTO{
		Title:    "First",
		Tag:      issues_models.IssueTagBug,
		Priority: issues_models.IssuePriorityLow,
	})
	createTestIssue(t, router, project, author, CreateIssueRequestDTO{
		Title:    "Second",
		Tag:      issues_models.IssueTagTask,
		Priority: issues_models.IssuePriorityHigh,
	})

	var response GetIssuesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%d/issues", project.ID),
		"Bearer "+contributor.Token,
		http.StatusOK,
		&response,
	)

	require.Len(t, response.Issues, 2)
}

func Test_GetIssues_AsNonContributor_ReturnsForbidden(t *testing.T) {
	router := createIssueTestRouter()
	author := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("NoPeek "+uuid.NewString()[:8], author, router)

	test_utils.MakeGetRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%d/issues", project.ID),
		"Bearer "+outsider.Token,
		http.StatusForbidden,
	)
}

func Test_GetIssue_UnderDifferentProject_ReturnsNotFound(t *testing.T) {
	router := createIssueTestRouter()
	author := users_testing.CreateTestUser()

	firstProject := projects_testing.CreateTestProject("First "+uuid.NewString()[:8], author, router)
	secondProject := projects_testing.CreateTestProject("Second "+uuid.NewString()[:8], author, router)

	issue := createTestIssue(t, router, firstProject, author, CreateIssueRequestDTO{
		Title:    "Misplaced",
		Tag:      issues_models.IssueTagBug,
		Priority: issues_models.IssuePriorityLow,
	})

	// The issue exists but not under this project
	test_utils.MakeGetRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%d/issues/%d", secondProject.ID, issue.ID),
		"Bearer "+author.Token,
		http.StatusNotFound,
	)
}

func Test_UpdateIssue_AsIssueAuthor_IssueUpdated(t *testing.T) {
	router := createIssueTestRouter()
	author := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Updatable "+uuid.NewString()[:8], author, router)

	issue := createTestIssue(t, router, project, author, CreateIssueRequestDTO{
		Title:    "Before",
		Tag:      issues_models.IssueTagBug,
		Priority: issues_models.IssuePriorityLow,
	})

	newTitle := "After"
	newStatus := issues_models.IssueStatusInProgress
	request := UpdateIssueRequestDTO{
		Title:  &newTitle,
		Status: &newStatus,
	}

	var response IssueResponseDTO
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%d/issues/%d", project.ID, issue.ID),
		"Bearer "+author.Token,
		request,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, "After", response.Title)
	assert.Equal(t, issues_models.IssueStatusInProgress, response.Status)
	assert.Equal(t, issues_models.IssueTagBug, response.Tag)
}

func Test_UpdateIssue_AsAssignedContributor_ReturnsForbidden(t *testing.T) {
	router := createIssueTestRouter()
	author := users_testing.CreateTestUser()
	contributor := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Owned "+uuid.NewString()[:8], author, router)
	projects_testing.AddContributorToProject(project, contributor.UserID, author.Token, router)

	issue := createTestIssue(t, router, project, author, CreateIssueRequestDTO{
		Title:          "Assigned work",
		Tag:            issues_models.IssueTagTask,
		Priority:       issues_models.IssuePriorityMedium,
		AssignedUserID: &contributor.UserID,
	})

	newStatus := issues_models.IssueStatusFinished
	request := UpdateIssueRequestDTO{Status: &newStatus}

	resp := test_utils.MakePutRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%d/issues/%d", project.ID, issue.ID),
		"Bearer "+contributor.Token,
		request,
		http.StatusForbidden,
	)
	assert.Contains(t, string(resp.Body), "only the issue author")
}

func Test_UpdateIssue_StatusMovesFreely_BetweenAllStates(t *testing.T) {
	router := createIssueTestRouter()
	author := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Workflow "+uuid.NewString()[:8], author, router)

	issue := createTestIssue(t, router, project, author, CreateIssueRequestDTO{
		Title:    "Flip-flop",
		Tag:      issues_models.IssueTagTask,
		Priority: issues_models.IssuePriorityLow,
	})

	// No transition order is enforced, FINISHED can go straight back to TODO
	statuses := []issues_models.IssueStatus{
		issues_models.IssueStatusFinished,
		issues_models.IssueStatusTodo,
		issues_models.IssueStatusInProgress,
	}

	for _, status := range statuses {
		request := UpdateIssueRequestDTO{Status: &status}

		var response IssueResponseDTO
		test_utils.MakePutRequestAndUnmarshal(
			t,
			router,
			fmt.Sprintf("/api/v1/projects/%d/issues/%d", project.ID, issue.ID),
			"Bearer "+author.Token,
			request,
			http.StatusOK,
			&response,
		)
		assert.Equal(t, status, response.Status)
	}
}

func Test_UpdateIssue_ReassignToNonContributor_ReturnsBadRequest(t *testing.T) {
	router := createIssueTestRouter()
	author := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Guarded "+uuid.NewString()[:8], author, router)

	issue := createTestIssue(t, router, project, author, CreateIssueRequestDTO{
		Title:    "Stays here",
		Tag:      issues_models.IssueTagBug,
		Priority: issues_models.IssuePriorityHigh,
	})

	request := UpdateIssueRequestDTO{AssignedUserID: &outsider.UserID}

	resp := test_utils.MakePutRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%d/issues/%d", project.ID, issue.ID),
		"Bearer "+author.Token,
		request,
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "assigned user is not a contributor")
}

func Test_DeleteIssue_AsAssignedContributor_ReturnsForbidden(t *testing.T) {
	router := createIssueTestRouter()
	author := users_testing.CreateTestUser()
	contributor := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Sticky "+uuid.NewString()[:8], author, router)
	projects_testing.AddContributorToProject(project, contributor.UserID, author.Token, router)

	issue := createTestIssue(t, router, project, author, CreateIssueRequestDTO{
		Title:          "Cannot drop",
		Tag:            issues_models.IssueTagTask,
		Priority:       issues_models.IssuePriorityLow,
		AssignedUserID: &contributor.UserID,
	})

	test_utils.MakeDeleteRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%d/issues/%d", project.ID, issue.ID),
		"Bearer "+contributor.Token,
		http.StatusForbidden,
	)
}

func Test_DeleteIssue_AsIssueAuthor_IssueDeleted(t *testing.T) {
	router := createIssueTestRouter()
	author := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Removable "+uuid.NewString()[:8], author, router)

	issue := createTestIssue(t, router, project, author, CreateIssueRequestDTO{
		Title:    "Short-lived",
		Tag:      issues_models.IssueTagBug,
		Priority: issues_models.IssuePriorityLow,
	})

	test_utils.MakeDeleteRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%d/issues/%d", project.ID, issue.ID),
		"Bearer "+author.Token,
		http.StatusOK,
	)

	test_utils.MakeGetRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%d/issues/%d", project.ID, issue.ID),
		"Bearer "+author.Token,
		http.StatusNotFound,
	)
}

func Test_DeleteProject_RemovesItsIssues(t *testing.T) {
	router := createIssueTestRouter()
	author := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Doomed "+uuid.NewString()[:8], author, router)

	issue := createTestIssue(t, router, project, author, CreateIssueRequestDTO{
		Title:    "Goes down with the ship",
		Tag:      issues_models.IssueTagTask,
		Priority: issues_models.IssuePriorityMedium,
	})

	test_utils.MakeDeleteRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%d", project.ID),
		"Bearer "+author.Token,
		http.StatusOK,
	)

	stored, err := issueRepository.GetIssueByID(issue.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
