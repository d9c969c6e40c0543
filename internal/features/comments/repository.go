package comments

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	comments_models "trackdesk/internal/features/comments/models"
	"trackdesk/internal/storage"
)

type CommentRepository struct{}

func (r *CommentRepository) CreateComment(comment *comments_models.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}

	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(comment).Error
}

func (r *CommentRepository) GetCommentByID(commentID uuid.UUID) (*comments_models.Comment, error) {
	var comment comments_models.Comment

	if err := storage.GetDb().Where("id = ?", commentID).First(&comment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &comment, nil
}

func (r *CommentRepository) GetCommentsByIssueID(issueID uint) ([]*comments_models.Comment, error) {
	var commentsList []*comments_models.Comment

	err := storage.GetDb().
		Where("issue_id = ?", issueID).
		Order("created_time ASC").
		Find(&commentsList).Error

	return commentsList, err
}

func (r *CommentRepository) GetCommentsByProjectID(projectID uint) ([]*comments_models.Comment, error) {
	var commentsList []*comments_models.Comment

	err := storage.GetDb().
		Joins("JOIN issues ON issues.id = comments.issue_id").
		Where("issues.project_id = ?", projectID).
		Order("comments.created_time ASC").
		Find(&commentsList).Error

	return commentsList, err
}

func (r *CommentRepository) UpdateComment(comment *comments_models.Comment) error {
	return storage.GetDb().Save(comment).Error
}

func (r *CommentRepository) DeleteComment(commentID uuid.UUID) error {
	return storage.GetDb().
		Where("id = ?", commentID).
		Delete(&comments_models.Comment{}).Error
}
