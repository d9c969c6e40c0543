package projects_models

import (
	"time"

	projects_enums "trackdesk/internal/features/projects/enums"
)

// Contributor links a user to a project with a role. The unique index closes
// the race between two concurrent requests adding the same user.
type Contributor struct {
	ID        uint                           `json:"id"        gorm:"column:id;primaryKey"`
	UserID    uint                           `json:"userId"    gorm:"column:user_id;uniqueIndex:idx_contributors_user_project"`
	ProjectID uint                           `json:"projectId" gorm:"column:project_id;uniqueIndex:idx_contributors_user_project"`
	Role      projects_enums.ContributorRole `json:"role"      gorm:"column:role"`
	CreatedAt time.Time                      `json:"createdTime" gorm:"column:created_time"`
}

func (Contributor) TableName() string {
	return "contributors"
}
