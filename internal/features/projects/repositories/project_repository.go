package projects_repositories

import (
	"time"

	"gorm.io/gorm"

	comments_models "trackdesk/internal/features/comments/models"
	issues_models "trackdesk/internal/features/issues/models"
	projects_enums "trackdesk/internal/features/projects/enums"
	projects_models "trackdesk/internal/features/projects/models"
	"trackdesk/internal/storage"
)

type ProjectRepository struct{}

// CreateProject persists the project together with its author contributor so
// a project never exists without an author.
func (r *ProjectRepository) CreateProject(project *projects_models.Project, authorUserID uint) error {
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		contributor := &projects_models.Contributor{
			UserID:    authorUserID,
			ProjectID: project.ID,
			Role:      projects_enums.ContributorRoleAuthor,
			CreatedAt: time.Now().UTC(),
		}

		return tx.Create(contributor).Error
	})
}

func (r *ProjectRepository) GetProjectByID(projectID uint) (*projects_models.Project, error) {
	var project projects_models.Project

	if err := storage.GetDb().Where("id = ?", projectID).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) UpdateProject(project *projects_models.Project) error {
	return storage.GetDb().Save(project).Error
}

// DeleteProject removes the project with its contributors, issues and
// comments in one transaction so no orphans remain.
func (r *ProjectRepository) DeleteProject(projectID uint) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		var issueIDs []uint
		if err := tx.Model(&issues_models.Issue{}).
			Where("project_id = ?", projectID).
			Pluck("id", &issueIDs).Error; err != nil {
			return err
		}

		if len(issueIDs) > 0 {
			if err := tx.Where("issue_id IN ?", issueIDs).
				Delete(&comments_models.Comment{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("project_id = ?", projectID).
			Delete(&issues_models.Issue{}).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", projectID).
			Delete(&projects_models.Contributor{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", projectID).Delete(&projects_models.Project{}).Error
	})
}
