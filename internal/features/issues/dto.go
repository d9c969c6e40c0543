package issues

import (
	"time"

	issues_models "trackdesk/internal/features/issues/models"
)

type CreateIssueRequestDTO struct {
	Title       string                      `json:"title"       binding:"required,min=1,max=255"`
	Description string                      `json:"description" binding:"max=8192"`
	Tag         issues_models.IssueTag      `json:"tag"         binding:"required"`
	Priority    issues_models.IssuePriority `json:"priority"    binding:"required"`
	Status      *issues_models.IssueStatus  `json:"status"`

	// Defaults to the issue author when omitted
	AssignedUserID *uint `json:"assignedUserId"`
}

type UpdateIssueRequestDTO struct {
	Title          *string                      `json:"title"       binding:"omitempty,min=1,max=255"`
	Description    *string                      `json:"description" binding:"omitempty,max=8192"`
	Tag            *issues_models.IssueTag      `json:"tag"`
	Priority       *issues_models.IssuePriority `json:"priority"`
	Status         *issues_models.IssueStatus   `json:"status"`
	AssignedUserID *uint                        `json:"assignedUserId"`
}

type IssueResponseDTO struct {
	ID             uint                        `json:"id"`
	ProjectID      uint                        `json:"projectId"`
	Title          string                      `json:"title"`
	Description    string                      `json:"description"`
	Tag            issues_models.IssueTag      `json:"tag"`
	Status         issues_models.IssueStatus   `json:"status"`
	Priority       issues_models.IssuePriority `json:"priority"`
	AuthorUserID   uint                        `json:"authorUserId"`
	AssignedUserID uint                        `json:"assignedUserId"`
	CreatedAt      time.Time                   `json:"createdTime"`
}

type GetIssuesResponseDTO struct {
	Issues []IssueResponseDTO `json:"issues"`
}
