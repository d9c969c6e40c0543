package issues_models

import "time"

type Issue struct {
	ID             uint          `json:"id"             gorm:"column:id;primaryKey"`
	ProjectID      uint          `json:"projectId"      gorm:"column:project_id;index"`
	Title          string        `json:"title"          gorm:"column:title"`
	Description    string        `json:"description"    gorm:"column:description"`
	Tag            IssueTag      `json:"tag"            gorm:"column:tag"`
	Status         IssueStatus   `json:"status"         gorm:"column:status"`
	Priority       IssuePriority `json:"priority"       gorm:"column:priority"`
	AuthorUserID   uint          `json:"authorUserId"   gorm:"column:author_user_id"`
	AssignedUserID uint          `json:"assignedUserId" gorm:"column:assigned_user_id"`
	CreatedAt      time.Time     `json:"createdTime"    gorm:"column:created_time"`
}

func (Issue) TableName() string {
	return "issues"
}
