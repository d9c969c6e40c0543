package comments

import (
	"time"

	"github.com/google/uuid"
)

type CreateCommentRequestDTO struct {
	Description string `json:"description" binding:"required,min=1,max=8192"`
}

type UpdateCommentRequestDTO struct {
	Description string `json:"description" binding:"required,min=1,max=8192"`
}

type CommentResponseDTO struct {
	ID           uuid.UUID `json:"id"`
	IssueID      uint      `json:"issueId"`
	Description  string    `json:"description"`
	AuthorUserID uint      `json:"authorUserId"`
	CreatedAt    time.Time `json:"createdTime"`
}

type GetCommentsResponseDTO struct {
	Comments []CommentResponseDTO `json:"comments"`
}
