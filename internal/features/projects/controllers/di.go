package projects_controllers

import (
	projects_services "trackdesk/internal/features/projects/services"
)

var projectController = &ProjectController{
	projects_services.GetProjectService(),
}

var contributorController = &ContributorController{
	projects_services.GetMembershipService(),
}

func GetProjectController() *ProjectController {
	return projectController
}

func GetContributorController() *ContributorController {
	return contributorController
}
