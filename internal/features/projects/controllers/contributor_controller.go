package projects_controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trackdesk/internal/features/access"
	projects_dto "trackdesk/internal/features/projects/dto"
	projects_services "trackdesk/internal/features/projects/services"
	users_middleware "trackdesk/internal/features/users/middleware"
)

type ContributorController struct {
	membershipService *projects_services.MembershipService
}

func (c *ContributorController) RegisterRoutes(router *gin.RouterGroup) {
	contributorRoutes := router.Group("/projects/:id/contributors")

	contributorRoutes.GET("", c.GetContributors)
	contributorRoutes.POST("/:userId", c.AddContributor)
	contributorRoutes.DELETE("/:userId", c.RemoveContributor)
}

// GetContributors
// @Summary List project contributors
// @Description Get the contributors of a project, contributors only
// @Tags contributors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} projects_dto.GetContributorsResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/contributors [get]
func (c *ContributorController) GetContributors(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	response, err := c.membershipService.GetContributors(projectID, user)
	if err != nil {
		access.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// AddContributor
// @Summary Add a contributor to a project
// @Description Add a user as project contributor, only the author may do this
// @Tags contributors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param userId path int true "User ID"
// @Param request body projects_dto.AddContributorRequestDTO false "Contributor role, defaults to CONTRIBUTOR"
// @Success 201 {object} projects_dto.ContributorResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /projects/{id}/contributors/{userId} [post]
func (c *ContributorController) AddContributor(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	targetUserID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	request := projects_dto.AddContributorRequestDTO{}
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	response, err := c.membershipService.AddContributor(projectID, targetUserID, &request, user)
	if err != nil {
		access.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// RemoveContributor
// @Summary Remove a contributor from a project
// @Description Remove a contributor, only the author may do this and the author cannot be removed
// @Tags contributors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/contributors/{userId} [delete]
func (c *ContributorController) RemoveContributor(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	targetUserID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	if err := c.membershipService.RemoveContributor(projectID, targetUserID, user); err != nil {
		access.RespondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Contributor removed successfully"})
}
