package users_repositories

import (
	"gorm.io/gorm"

	comments_models "trackdesk/internal/features/comments/models"
	issues_models "trackdesk/internal/features/issues/models"
	projects_enums "trackdesk/internal/features/projects/enums"
	projects_models "trackdesk/internal/features/projects/models"
	users_models "trackdesk/internal/features/users/models"
	"trackdesk/internal/storage"
)

type UserRepository struct{}

func (r *UserRepository) CreateUser(user *users_models.User) error {
	return storage.GetDb().Create(user).Error
}

func (r *UserRepository) GetUserByUsername(username string) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("username = ?", username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUserByID(userID uint) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("id = ?", userID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) UpdateUser(user *users_models.User) error {
	return storage.GetDb().Save(user).Error
}

// DeleteUser removes the user together with everything they authored.
// Projects they authored disappear with their issues and comments, their
// comments elsewhere are removed, and issues assigned to them in projects
// that survive are reassigned to the project author.
func (r *UserRepository) DeleteUser(userID uint) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		var authoredProjectIDs []uint
		if err := tx.Model(&projects_models.Contributor{}).
			Where("user_id = ? AND role = ?", userID, projects_enums.ContributorRoleAuthor).
			Pluck("project_id", &authoredProjectIDs).Error; err != nil {
			return err
		}

		if len(authoredProjectIDs) > 0 {
			var issueIDs []uint
			if err := tx.Model(&issues_models.Issue{}).
				Where("project_id IN ?", authoredProjectIDs).
				Pluck("id", &issueIDs).Error; err != nil {
				return err
			}

			if len(issueIDs) > 0 {
				if err := tx.Where("issue_id IN ?", issueIDs).
					Delete(&comments_models.Comment{}).Error; err != nil {
					return err
				}
			}

			if err := tx.Where("project_id IN ?", authoredProjectIDs).
				Delete(&issues_models.Issue{}).Error; err != nil {
				return err
			}

			if err := tx.Where("project_id IN ?", authoredProjectIDs).
				Delete(&projects_models.Contributor{}).Error; err != nil {
				return err
			}

			if err := tx.Where("id IN ?", authoredProjectIDs).
				Delete(&projects_models.Project{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("author_user_id = ?", userID).
			Delete(&comments_models.Comment{}).Error; err != nil {
			return err
		}

		var authoredIssueIDs []uint
		if err := tx.Model(&issues_models.Issue{}).
			Where("author_user_id = ?", userID).
			Pluck("id", &authoredIssueIDs).Error; err != nil {
			return err
		}

		if len(authoredIssueIDs) > 0 {
			if err := tx.Where("issue_id IN ?", authoredIssueIDs).
				Delete(&comments_models.Comment{}).Error; err != nil {
				return err
			}

			if err := tx.Where("id IN ?", authoredIssueIDs).
				Delete(&issues_models.Issue{}).Error; err != nil {
				return err
			}
		}

		var assignedIssues []*issues_models.Issue
		if err := tx.Where("assigned_user_id = ?", userID).
			Find(&assignedIssues).Error; err != nil {
			return err
		}

		for _, issue := range assignedIssues {
			var author projects_models.Contributor
			if err := tx.Where("project_id = ? AND role = ?", issue.ProjectID, projects_enums.ContributorRoleAuthor).
				First(&author).Error; err != nil {
				return err
			}

			if err := tx.Model(&issues_models.Issue{}).
				Where("id = ?", issue.ID).
				Update("assigned_user_id", author.UserID).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", userID).
			Delete(&projects_models.Contributor{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", userID).Delete(&users_models.User{}).Error
	})
}
