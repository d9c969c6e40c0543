package projects_services

import (
	"fmt"
	"time"

	"trackdesk/internal/features/access"
	audit_logs "trackdesk/internal/features/audit_logs"
	projects_dto "trackdesk/internal/features/projects/dto"
	projects_enums "trackdesk/internal/features/projects/enums"
	projects_models "trackdesk/internal/features/projects/models"
	projects_repositories "trackdesk/internal/features/projects/repositories"
	users_models "trackdesk/internal/features/users/models"
)

type ProjectService struct {
	projectRepository     *projects_repositories.ProjectRepository
	contributorRepository *projects_repositories.ContributorRepository
	membershipService     *MembershipService
	auditLogService       *audit_logs.AuditLogService
}

func (s *ProjectService) CreateProject(
	request *projects_dto.CreateProjectRequestDTO,
	creator *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	err := access.Require(
		s.membershipService,
		&access.Actor{UserID: creator.ID},
		access.ActionCreate,
		access.EntityProject,
		access.Context{},
		"insufficient permissions to create projects",
	)
	if err != nil {
		return nil, err
	}

	if !request.Type.IsValid() {
		return nil, access.Validation("invalid project type")
	}

	project := &projects_models.Project{
		Title:       request.Title,
		Description: request.Description,
		Type:        request.Type,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.projectRepository.CreateProject(project, creator.ID); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project created: %s", project.Title),
		&creator.ID,
		&project.ID,
	)

	authorRole := projects_enums.ContributorRoleAuthor

	return &projects_dto.ProjectResponseDTO{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Type:        project.Type,
		CreatedAt:   project.CreatedAt,
		UserRole:    &authorRole,
	}, nil
}

func (s *ProjectService) GetProject(
	projectID uint,
	user *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	project, err := s.getProjectOrNotFound(projectID)
	if err != nil {
		return nil, err
	}

	err = access.Require(
		s.membershipService,
		&access.Actor{UserID: user.ID},
		access.ActionRead,
		access.EntityProject,
		access.Context{ProjectID: projectID},
		"insufficient permissions to view project",
	)
	if err != nil {
		return nil, err
	}

	contributor, err := s.contributorRepository.GetContributorByUserAndProject(user.ID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get contributor: %w", err)
	}

	response := &projects_dto.ProjectResponseDTO{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Type:        project.Type,
		CreatedAt:   project.CreatedAt,
	}

	if contributor != nil {
		response.UserRole = &contributor.Role
	}

	return response, nil
}

func (s *ProjectService) GetUserProjects(
	user *users_models.User,
) (*projects_dto.ListProjectsResponseDTO, error) {
	projects, err := s.contributorRepository.GetProjectsWithRolesByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user projects: %w", err)
	}

	return &projects_dto.ListProjectsResponseDTO{
		Projects: projects,
	}, nil
}

func (s *ProjectService) UpdateProject(
	projectID uint,
	request *projects_dto.UpdateProjectRequestDTO,
	user *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	project, err := s.getProjectOrNotFound(projectID)
	if err != nil {
		return nil, err
	}

	err = access.Require(
		s.membershipService,
		&access.Actor{UserID: user.ID},
		access.ActionUpdate,
		access.EntityProject,
		access.Context{ProjectID: projectID},
		"insufficient permissions to update project",
	)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		project.Title = *request.Title
	}

	if request.Description != nil {
		project.Description = *request.Description
	}

	if request.Type != nil {
		if !request.Type.IsValid() {
			return nil, access.Validation("invalid project type")
		}

		project.Type = *request.Type
	}

	if err := s.projectRepository.UpdateProject(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project updated: %s", project.Title),
		&user.ID,
		&projectID,
	)

	authorRole := projects_enums.ContributorRoleAuthor

	return &projects_dto.ProjectResponseDTO{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Type:        project.Type,
		CreatedAt:   project.CreatedAt,
		UserRole:    &authorRole,
	}, nil
}

func (s *ProjectService) DeleteProject(projectID uint, user *users_models.User) error {
	project, err := s.getProjectOrNotFound(projectID)
	if err != nil {
		return err
	}

	err = access.Require(
		s.membershipService,
		&access.Actor{UserID: user.ID},
		access.ActionDelete,
		access.EntityProject,
		access.Context{ProjectID: projectID},
		"insufficient permissions to delete project",
	)
	if err != nil {
		return err
	}

	if err := s.projectRepository.DeleteProject(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project deleted: %s", project.Title),
		&user.ID,
		nil,
	)

	return nil
}

func (s *ProjectService) GetProjectAuditLogs(
	projectID uint,
	user *users_models.User,
	request *audit_logs.GetAuditLogsRequest,
) (*audit_logs.GetAuditLogsResponse, error) {
	_, err := s.getProjectOrNotFound(projectID)
	if err != nil {
		return nil, err
	}

	err = access.Require(
		s.membershipService,
		&access.Actor{UserID: user.ID},
		access.ActionRead,
		access.EntityProject,
		access.Context{ProjectID: projectID},
		"insufficient permissions to view project audit logs",
	)
	if err != nil {
		return nil, err
	}

	return s.auditLogService.GetProjectAuditLogs(projectID, request)
}

func (s *ProjectService) getProjectOrNotFound(projectID uint) (*projects_models.Project, error) {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if project == nil {
		return nil, access.NotFound("project not found")
	}

	return project, nil
}
