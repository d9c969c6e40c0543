package projects_dto

import (
	"time"

	projects_enums "trackdesk/internal/features/projects/enums"
)

// Project DTOs
type CreateProjectRequestDTO struct {
	Title       string                     `json:"title"       binding:"required,min=1,max=255"`
	Description string                     `json:"description" binding:"max=8192"`
	Type        projects_enums.ProjectType `json:"type"        binding:"required"`
}

type UpdateProjectRequestDTO struct {
	Title       *string                     `json:"title"       binding:"omitempty,min=1,max=255"`
	Description *string                     `json:"description" binding:"omitempty,max=8192"`
	Type        *projects_enums.ProjectType `json:"type"`
}

type ProjectResponseDTO struct {
	ID          uint                       `json:"id"          gorm:"column:id"`
	Title       string                     `json:"title"       gorm:"column:title"`
	Description string                     `json:"description" gorm:"column:description"`
	Type        projects_enums.ProjectType `json:"type"        gorm:"column:type"`
	CreatedAt   time.Time                  `json:"createdTime" gorm:"column:created_time"`

	// Caller's role in this project (populated when fetching for a specific user)
	UserRole *projects_enums.ContributorRole `json:"userRole,omitempty" gorm:"column:user_role"`
}

type ListProjectsResponseDTO struct {
	Projects []ProjectResponseDTO `json:"projects"`
}

// Contributor DTOs
type AddContributorRequestDTO struct {
	Role *projects_enums.ContributorRole `json:"role"`
}

type ContributorResponseDTO struct {
	ID        uint                           `json:"id"          gorm:"column:id"`
	UserID    uint                           `json:"userId"      gorm:"column:user_id"`
	Username  string                         `json:"username"    gorm:"column:username"`
	Role      projects_enums.ContributorRole `json:"role"        gorm:"column:role"`
	CreatedAt time.Time                      `json:"createdTime" gorm:"column:created_time"`
}

type GetContributorsResponseDTO struct {
	Contributors []ContributorResponseDTO `json:"contributors"`
}
