package access

// Action is the transport-independent intent of a request. Controllers
// translate HTTP verbs into one of these before asking for a decision.
type Action string

const (
	ActionRead   Action = "read"
	ActionList   Action = "list"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type EntityKind string

const (
	EntityProject     EntityKind = "project"
	EntityContributor EntityKind = "contributor"
	EntityIssue       EntityKind = "issue"
	EntityComment     EntityKind = "comment"
)

// Actor identifies the authenticated user behind a request. A nil *Actor is
// an unauthenticated request and is denied every action.
type Actor struct {
	UserID uint
}

// MembershipResolver answers membership queries against the contributor
// relation. Every call is a fresh lookup: membership can change between
// requests and decisions must never be served from a cache.
type MembershipResolver interface {
	IsContributor(projectID uint, userID uint) (bool, error)
	IsAuthor(projectID uint, userID uint) (bool, error)
}

// Context carries the enclosing entities a decision needs. ProjectID is
// always required. IssueAuthorID is consulted for issue update/delete,
// CommentAuthorID for comment update/delete.
type Context struct {
	ProjectID       uint
	IssueAuthorID   uint
	CommentAuthorID uint
}

type rule func(r MembershipResolver, actor *Actor, ctx Context) (bool, error)

func anyAuthenticated(MembershipResolver, *Actor, Context) (bool, error) {
	return true, nil
}

func projectContributor(r MembershipResolver, actor *Actor, ctx Context) (bool, error) {
	return r.IsContributor(ctx.ProjectID, actor.UserID)
}

func projectAuthor(r MembershipResolver, actor *Actor, ctx Context) (bool, error) {
	return r.IsAuthor(ctx.ProjectID, actor.UserID)
}

func issueAuthor(_ MembershipResolver, actor *Actor, ctx Context) (bool, error) {
	return ctx.IssueAuthorID != 0 && ctx.IssueAuthorID == actor.UserID, nil
}

func commentAuthor(_ MembershipResolver, actor *Actor, ctx Context) (bool, error) {
	return ctx.CommentAuthorID != 0 && ctx.CommentAuthorID == actor.UserID, nil
}

type decisionKey struct {
	kind   EntityKind
	action Action
}

// The permission table. Reads require membership, project-level writes
// require project authorship, and issue/comment mutation belongs to the
// record's own author: a project author cannot edit another contributor's
// issue or comment.
var decisions = map[decisionKey]rule{
	{EntityProject, ActionRead}:   projectContributor,
	{EntityProject, ActionList}:   projectContributor,
	{EntityProject, ActionCreate}: anyAuthenticated,
	{EntityProject, ActionUpdate}: projectAuthor,
	{EntityProject, ActionDelete}: projectAuthor,

	{EntityContributor, ActionRead}:   projectContributor,
	{EntityContributor, ActionList}:   projectContributor,
	{EntityContributor, ActionCreate}: projectAuthor,
	{EntityContributor, ActionUpdate}: projectAuthor,
	{EntityContributor, ActionDelete}: projectAuthor,

	{EntityIssue, ActionRead}:   projectContributor,
	{EntityIssue, ActionList}:   projectContributor,
	{EntityIssue, ActionCreate}: projectAuthor,
	{EntityIssue, ActionUpdate}: issueAuthor,
	{EntityIssue, ActionDelete}: issueAuthor,

	{EntityComment, ActionRead}:   projectContributor,
	{EntityComment, ActionList}:   projectContributor,
	{EntityComment, ActionCreate}: projectContributor,
	{EntityComment, ActionUpdate}: commentAuthor,
	{EntityComment, ActionDelete}: commentAuthor,
}

// CanPerform decides whether actor may perform action on an entity of the
// given kind. It runs before validation and before any mutation; a denial
// must short-circuit the operation with no side effect.
func CanPerform(
	resolver MembershipResolver,
	actor *Actor,
	action Action,
	kind EntityKind,
	ctx Context,
) (bool, error) {
	if actor == nil {
		return false, nil
	}

	decide, ok := decisions[decisionKey{kind, action}]
	if !ok {
		return false, nil
	}

	return decide(resolver, actor, ctx)
}

// Require wraps CanPerform into the error shape services return: a nil
// result means the action may proceed.
func Require(
	resolver MembershipResolver,
	actor *Actor,
	action Action,
	kind EntityKind,
	ctx Context,
	message string,
) error {
	if actor == nil {
		return NotAuthenticated()
	}

	allowed, err := CanPerform(resolver, actor, action, kind, ctx)
	if err != nil {
		return err
	}

	if !allowed {
		return NotAuthorized(message)
	}

	return nil
}
