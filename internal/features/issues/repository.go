package issues

import (
	"time"

	"gorm.io/gorm"

	comments_models "trackdesk/internal/features/comments/models"
	issues_models "trackdesk/internal/features/issues/models"
	"trackdesk/internal/storage"
)

type IssueRepository struct{}

func (r *IssueRepository) CreateIssue(issue *issues_models.Issue) error {
	if issue.CreatedAt.IsZero() {
		issue.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(issue).Error
}

func (r *IssueRepository) GetIssueByID(issueID uint) (*issues_models.Issue, error) {
	var issue issues_models.Issue

	if err := storage.GetDb().Where("id = ?", issueID).First(&issue).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &issue, nil
}

func (r *IssueRepository) GetIssuesByProjectID(projectID uint) ([]*issues_models.Issue, error) {
	var issues []*issues_models.Issue

	err := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("created_time DESC").
		Find(&issues).Error

	return issues, err
}

func (r *IssueRepository) UpdateIssue(issue *issues_models.Issue) error {
	return storage.GetDb().Save(issue).Error
}

// DeleteIssue removes the issue and its comments in one transaction.
func (r *IssueRepository) DeleteIssue(issueID uint) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("issue_id = ?", issueID).
			Delete(&comments_models.Comment{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", issueID).Delete(&issues_models.Issue{}).Error
	})
}
