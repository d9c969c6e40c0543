package comments_models

import (
	"time"

	"github.com/google/uuid"
)

// Comment identifiers are random 128-bit values, never sequential and never
// reused.
type Comment struct {
	ID           uuid.UUID `json:"id"           gorm:"column:id;primaryKey"`
	IssueID      uint      `json:"issueId"      gorm:"column:issue_id;index"`
	Description  string    `json:"description"  gorm:"column:description"`
	AuthorUserID uint      `json:"authorUserId" gorm:"column:author_user_id"`
	CreatedAt    time.Time `json:"createdTime"  gorm:"column:created_time"`
}

func (Comment) TableName() string {
	return "comments"
}
