package projects_enums

type ProjectType string

const (
	ProjectTypeBackEnd  ProjectType = "BACK_END"
	ProjectTypeFrontEnd ProjectType = "FRONT_END"
	ProjectTypeIOS      ProjectType = "IOS"
	ProjectTypeAndroid  ProjectType = "ANDROID"
)

func (t ProjectType) IsValid() bool {
	switch t {
	case ProjectTypeBackEnd, ProjectTypeFrontEnd, ProjectTypeIOS, ProjectTypeAndroid:
		return true
	}

	return false
}

type ContributorRole string

const (
	ContributorRoleAuthor      ContributorRole = "AUTHOR"
	ContributorRoleContributor ContributorRole = "CONTRIBUTOR"
)

func (r ContributorRole) IsValid() bool {
	switch r {
	case ContributorRoleAuthor, ContributorRoleContributor:
		return true
	}

	return false
}
