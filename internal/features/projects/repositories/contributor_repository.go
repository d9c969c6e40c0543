package projects_repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	projects_dto "trackdesk/internal/features/projects/dto"
	projects_enums "trackdesk/internal/features/projects/enums"
	projects_models "trackdesk/internal/features/projects/models"
	"trackdesk/internal/storage"
)

type ContributorRepository struct{}

func (r *ContributorRepository) CreateContributor(contributor *projects_models.Contributor) error {
	if contributor.CreatedAt.IsZero() {
		contributor.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(contributor).Error
}

func (r *ContributorRepository) GetContributorByUserAndProject(
	userID, projectID uint,
) (*projects_models.Contributor, error) {
	var contributor projects_models.Contributor

	err := storage.GetDb().
		Where("user_id = ? AND project_id = ?", userID, projectID).
		First(&contributor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &contributor, nil
}

func (r *ContributorRepository) GetProjectContributors(
	projectID uint,
) ([]*projects_dto.ContributorResponseDTO, error) {
	var contributors []*projects_dto.ContributorResponseDTO

	err := storage.GetDb().
		Table("contributors c").
		Select("c.id, c.user_id, u.username, c.role, c.created_time").
		Joins("JOIN users u ON c.user_id = u.id").
		Where("c.project_id = ?", projectID).
		Order("c.created_time ASC").
		Scan(&contributors).Error

	return contributors, err
}

func (r *ContributorRepository) GetProjectAuthor(projectID uint) (*projects_models.Contributor, error) {
	var contributor projects_models.Contributor

	err := storage.GetDb().
		Where("project_id = ? AND role = ?", projectID, projects_enums.ContributorRoleAuthor).
		First(&contributor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &contributor, nil
}

func (r *ContributorRepository) RemoveContributor(userID, projectID uint) error {
	return storage.GetDb().
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Delete(&projects_models.Contributor{}).Error
}

func (r *ContributorRepository) GetProjectsWithRolesByUserID(
	userID uint,
) ([]projects_dto.ProjectResponseDTO, error) {
	results := make([]projects_dto.ProjectResponseDTO, 0)

	err := storage.GetDb().
		Table("projects p").
		Select("p.id, p.title, p.description, p.type, p.created_time, c.role as user_role").
		Joins("JOIN contributors c ON p.id = c.project_id").
		Where("c.user_id = ?", userID).
		Order("p.created_time DESC").
		Scan(&results).Error

	return results, err
}
