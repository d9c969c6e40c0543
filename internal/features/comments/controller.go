package comments

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"trackdesk/internal/features/access"
	users_middleware "trackdesk/internal/features/users/middleware"
)

type CommentController struct {
	commentService *CommentService
}

func (c *CommentController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/projects/:id/comments", c.GetProjectComments)

	commentRoutes := router.Group("/projects/:id/issues/:issueId/comments")

	commentRoutes.POST("", c.CreateComment)
	commentRoutes.GET("", c.GetComments)
	commentRoutes.GET("/:commentId", c.GetComment)
	commentRoutes.PUT("/:commentId", c.UpdateComment)
	commentRoutes.DELETE("/:commentId", c.DeleteComment)
}

// CreateComment
// @Summary Comment on an issue
// @Description Add a comment to an issue, contributors only
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param issueId path int true "Issue ID"
// @Param request body CreateCommentRequestDTO true "Comment data"
// @Success 201 {object} CommentResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/issues/{issueId}/comments [post]
func (c *CommentController) CreateComment(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, issueID, ok := parsePathIDs(ctx)
	if !ok {
		return
	}

	var request CreateCommentRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.commentService.CreateComment(projectID, issueID, &request, user)
	if err != nil {
		access.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// GetComments
// @Summary List issue comments
// @Description Get the comments of an issue, contributors only
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param issueId path int true "Issue ID"
// @Success 200 {object} GetCommentsResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/issues/{issueId}/comments [get]
func (c *CommentController) GetComments(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, issueID, ok := parsePathIDs(ctx)
	if !ok {
		return
	}

	response, err := c.commentService.GetComments(projectID, issueID, user)
	if err != nil {
		access.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetProjectComments
// @Summary List all project comments
// @Description Get the comments across every issue of a project, contributors only
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} GetCommentsResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/comments [get]
func (c *CommentController) GetProjectComments(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, ok := parseProjectID(ctx)
	if !ok {
		return
	}

	response, err := c.commentService.GetProjectComments(projectID, user)
	if err != nil {
		access.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetComment
// @Summary Get a comment
// @Description Get a single comment of an issue, contributors only
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param issueId path int true "Issue ID"
// @Param commentId path string true "Comment ID"
// @Success 200 {object} CommentResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/issues/{issueId}/comments/{commentId} [get]
func (c *CommentController) GetComment(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, issueID, ok := parsePathIDs(ctx)
	if !ok {
		return
	}

	commentID, ok := parseCommentID(ctx)
	if !ok {
		return
	}

	response, err := c.commentService.GetComment(projectID, issueID, commentID, user)
	if err != nil {
		access.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateComment
// @Summary Update a comment
// @Description Update a comment, only its author may do this
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param issueId path int true "Issue ID"
// @Param commentId path string true "Comment ID"
// @Param request body UpdateCommentRequestDTO true "Comment data"
// @Success 200 {object} CommentResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/issues/{issueId}/comments/{commentId} [put]
func (c *CommentController) UpdateComment(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, issueID, ok := parsePathIDs(ctx)
	if !ok {
		return
	}

	commentID, ok := parseCommentID(ctx)
	if !ok {
		return
	}

	var request UpdateCommentRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.commentService.UpdateComment(projectID, issueID, commentID, &request, user)
	if err != nil {
		access.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteComment
// @Summary Delete a comment
// @Description Delete a comment, only its author may do this
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param issueId path int true "Issue ID"
// @Param commentId path string true "Comment ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/issues/{issueId}/comments/{commentId} [delete]
func (c *CommentController) DeleteComment(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, issueID, ok := parsePathIDs(ctx)
	if !ok {
		return
	}

	commentID, ok := parseCommentID(ctx)
	if !ok {
		return
	}

	if err := c.commentService.DeleteComment(projectID, issueID, commentID, user); err != nil {
		access.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

func parseProjectID(ctx *gin.Context) (uint, bool) {
	projectID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id parameter"})
		return 0, false
	}

	return uint(projectID), true
}

func parsePathIDs(ctx *gin.Context) (uint, uint, bool) {
	projectID, ok := parseProjectID(ctx)
	if !ok {
		return 0, 0, false
	}

	issueID, err := strconv.ParseUint(ctx.Param("issueId"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issueId parameter"})
		return 0, 0, false
	}

	return projectID, uint(issueID), true
}

func parseCommentID(ctx *gin.Context) (uuid.UUID, bool) {
	commentID, err := uuid.Parse(ctx.Param("commentId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid commentId parameter"})
		return uuid.Nil, false
	}

	return commentID, true
}
