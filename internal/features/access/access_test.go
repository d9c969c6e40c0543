package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	contributors map[uint][]uint
	authors      map[uint]uint
}

func (r *fakeResolver) IsContributor(projectID uint, userID uint) (bool, error) {
	for _, id := range r.contributors[projectID] {
		if id == userID {
			return true, nil
		}
	}

	return r.authors[projectID] == userID, nil
}

func (r *fakeResolver) IsAuthor(projectID uint, userID uint) (bool, error) {
	return r.authors[projectID] == userID, nil
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		contributors: map[uint][]uint{1: {2}},
		authors:      map[uint]uint{1: 1},
	}
}

func Test_CanPerform_DecisionTable(t *testing.T) {
	resolver := newFakeResolver()

	author := &Actor{UserID: 1}
	contributor := &Actor{UserID: 2}
	outsider := &Actor{UserID: 3}

	testCases := []struct {
		name    string
		actor   *Actor
		action  Action
		kind    EntityKind
		ctx     Context
		allowed bool
	}{
		{"contributor reads project", contributor, ActionRead, EntityProject, Context{ProjectID: 1}, true},
		{"outsider cannot read project", outsider, ActionRead, EntityProject, Context{ProjectID: 1}, false},
		{"anyone authenticated creates project", outsider, ActionCreate, EntityProject, Context{}, true},
		{"contributor cannot update project", contributor, ActionUpdate, EntityProject, Context{ProjectID: 1}, false},
		{"author updates project", author, ActionUpdate, EntityProject, Context{ProjectID: 1}, true},
		{"author deletes project", author, ActionDelete, EntityProject, Context{ProjectID: 1}, true},

		{"contributor lists contributors", contributor, ActionList, EntityContributor, Context{ProjectID: 1}, true},
		{"contributor cannot add contributors", contributor, ActionCreate, EntityContributor, Context{ProjectID: 1}, false},
		{"author adds contributors", author, ActionCreate, EntityContributor, Context{ProjectID: 1}, true},
		{"author removes contributors", author, ActionDelete, EntityContributor, Context{ProjectID: 1}, true},

		{"contributor reads issues", contributor, ActionRead, EntityIssue, Context{ProjectID: 1}, true},
		{"contributor cannot create issues", contributor, ActionCreate, EntityIssue, Context{ProjectID: 1}, false},
		{"author creates issues", author, ActionCreate, EntityIssue, Context{ProjectID: 1}, true},
		{
			"issue author updates own issue",
			contributor,
			ActionUpdate,
			EntityIssue,
			Context{ProjectID: 1, IssueAuthorID: 2},
			true,
		},
		{
			"project author cannot update another contributor's issue",
			author,
			ActionUpdate,
			EntityIssue,
			Context{ProjectID: 1, IssueAuthorID: 2},
			false,
		},
		{
			"issue author deletes own issue",
			contributor,
			ActionDelete,
			EntityIssue,
			Context{ProjectID: 1, IssueAuthorID: 2},
			true,
		},

		{"contributor creates comments", contributor, ActionCreate, EntityComment, Context{ProjectID: 1}, true},
		{"outsider cannot create comments", outsider, ActionCreate, EntityComment, Context{ProjectID: 1}, false},
		{
			"comment author updates own comment",
			author,
			ActionUpdate,
			EntityComment,
			Context{ProjectID: 1, CommentAuthorID: 1},
			true,
		},
		{
			"project author cannot delete another contributor's comment",
			author,
			ActionDelete,
			EntityComment,
			Context{ProjectID: 1, CommentAuthorID: 2},
			false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := CanPerform(resolver, tc.actor, tc.action, tc.kind, tc.ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}

func Test_CanPerform_WithNilActor_Denied(t *testing.T) {
	resolver := newFakeResolver()

	for _, action := range []Action{ActionRead, ActionList, ActionCreate, ActionUpdate, ActionDelete} {
		allowed, err := CanPerform(resolver, nil, action, EntityProject, Context{ProjectID: 1})
		require.NoError(t, err)
		assert.False(t, allowed)
	}
}

func Test_Require_WithNilActor_ReturnsNotAuthenticated(t *testing.T) {
	resolver := newFakeResolver()

	err := Require(resolver, nil, ActionRead, EntityProject, Context{ProjectID: 1}, "denied")

	var accessErr *Error
	require.ErrorAs(t, err, &accessErr)
	assert.Equal(t, CodeNotAuthenticated, accessErr.Code)
}

func Test_Require_WhenDenied_ReturnsNotAuthorizedWithMessage(t *testing.T) {
	resolver := newFakeResolver()

	err := Require(
		resolver,
		&Actor{UserID: 3},
		ActionRead,
		EntityProject,
		Context{ProjectID: 1},
		"insufficient permissions to view project",
	)

	var accessErr *Error
	require.ErrorAs(t, err, &accessErr)
	assert.Equal(t, CodeNotAuthorized, accessErr.Code)
	assert.Equal(t, "insufficient permissions to view project", accessErr.Message)
}

func Test_Error_HTTPStatusMapping(t *testing.T) {
	assert.Equal(t, 401, NotAuthenticated().HTTPStatus())
	assert.Equal(t, 403, NotAuthorized("denied").HTTPStatus())
	assert.Equal(t, 404, NotFound("missing").HTTPStatus())
	assert.Equal(t, 409, DuplicateAuthor("duplicate").HTTPStatus())
	assert.Equal(t, 400, NotAContributor("outsider").HTTPStatus())
	assert.Equal(t, 400, Validation("invalid").HTTPStatus())
}
