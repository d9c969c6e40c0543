package issues_models

type IssueTag string

const (
	IssueTagBug     IssueTag = "BUG"
	IssueTagTask    IssueTag = "TASK"
	IssueTagFeature IssueTag = "FEATURE"
)

func (t IssueTag) IsValid() bool {
	switch t {
	case IssueTagBug, IssueTagTask, IssueTagFeature:
		return true
	}

	return false
}

// IssueStatus is a free-form enum: any authorized update may set any status,
// there is no enforced transition order.
type IssueStatus string

const (
	IssueStatusTodo       IssueStatus = "TODO"
	IssueStatusInProgress IssueStatus = "INPROGRESS"
	IssueStatusFinished   IssueStatus = "FINISHED"
)

func (s IssueStatus) IsValid() bool {
	switch s {
	case IssueStatusTodo, IssueStatusInProgress, IssueStatusFinished:
		return true
	}

	return false
}

type IssuePriority string

const (
	IssuePriorityLow    IssuePriority = "LOW"
	IssuePriorityMedium IssuePriority = "MEDIUM"
	IssuePriorityHigh   IssuePriority = "HIGH"
)

func (p IssuePriority) IsValid() bool {
	switch p {
	case IssuePriorityLow, IssuePriorityMedium, IssuePriorityHigh:
		return true
	}

	return false
}
