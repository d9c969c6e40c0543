package issues

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trackdesk/internal/features/access"
	users_middleware "trackdesk/internal/features/users/middleware"
)

type IssueController struct {
	issueService *IssueService
}

func (c *IssueController) RegisterRoutes(router *gin.RouterGroup) {
	issueRoutes := router.Group("/projects/:id/issues")

	issueRoutes.POST("", c.CreateIssue)
	issueRoutes.GET("", c.GetIssues)
	issueRoutes.GET("/:issueId", c.GetIssue)
	issueRoutes.PUT("/:issueId", c.UpdateIssue)
	issueRoutes.DELETE("/:issueId", c.DeleteIssue)
}

// CreateIssue
// @Summary Create an issue
// @Description File an issue against a project, only the project author may do this
// @Tags issues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param request body CreateIssueRequestDTO true "Issue data"
// @Success 201 {object} IssueResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/issues [post]
func (c *IssueController) CreateIssue(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	var request CreateIssueRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.issueService.CreateIssue(projectID, &request, user)
	if err != nil {
		access.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// GetIssues
// @Summary List project issues
// @Description Get the issues of a project, contributors only
// @Tags issues
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} GetIssuesResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/issues [get]
func (c *IssueController) GetIssues(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	response, err := c.issueService.GetIssues(projectID, user)
	if err != nil {
		access.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetIssue
// @Summary Get issue details
// @Description Get a single issue of a project, contributors only
// @Tags issues
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param issueId path int true "Issue ID"
// @Success 200 {object} IssueResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/issues/{issueId} [get]
func (c *IssueController) GetIssue(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	issueID, ok := parseUintParam(ctx, "issueId")
	if !ok {
		return
	}

	response, err := c.issueService.GetIssue(projectID, issueID, user)
	if err != nil {
		access.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateIssue
// @Summary Update an issue
// @Description Update issue fields, only the issue author may do this
// @Tags issues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param issueId path int true "Issue ID"
// @Param request body UpdateIssueRequestDTO true "Issue fields to update"
// @Success 200 {object} IssueResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/issues/{issueId} [put]
func (c *IssueController) UpdateIssue(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	issueID, ok := parseUintParam(ctx, "issueId")
	if !ok {
		return
	}

	var request UpdateIssueRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.issueService.UpdateIssue(projectID, issueID, &request, user)
	if err != nil {
		access.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteIssue
// @Summary Delete an issue
// @Description Delete the issue and its comments, only the issue author may do this
// @Tags issues
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param issueId path int true "Issue ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/issues/{issueId} [delete]
func (c *IssueController) DeleteIssue(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	issueID, ok := parseUintParam(ctx, "issueId")
	if !ok {
		return
	}

	if err := c.issueService.DeleteIssue(projectID, issueID, user); err != nil {
		access.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Issue deleted successfully"})
}

func parseUintParam(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " parameter"})
		return 0, false
	}

	return uint(value), true
}
