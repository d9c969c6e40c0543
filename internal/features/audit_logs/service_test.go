package audit_logs

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_WriteAuditLog_StoresEntryForProject(t *testing.T) {
	service := GetAuditLogService()
	projectID := uint(uuid.New().ID())
	userID := uint(uuid.New().ID())

	service.WriteAuditLog("Something happened", &userID, &projectID)

	response, err := service.GetProjectAuditLogs(projectID, &GetAuditLogsRequest{})
	require.NoError(t, err)

	require.Equal(t, int64(1), response.Total)
	require.Len(t, response.AuditLogs, 1)
	assert.Equal(t, "Something happened", response.AuditLogs[0].Message)
	assert.Equal(t, &userID, response.AuditLogs[0].UserID)
	assert.Equal(t, &projectID, response.AuditLogs[0].ProjectID)

	// No such user or project exists, the joined columns stay empty
	assert.Nil(t, response.AuditLogs[0].Username)
	assert.Nil(t, response.AuditLogs[0].ProjectTitle)
}

func Test_GetProjectAuditLogs_WithLimitAndOffset_PagesResults(t *testing.T) {
	service := GetAuditLogService()
	projectID := uint(uuid.New().ID())

	for i := 0; i < 5; i++ {
		service.WriteAuditLog(fmt.Sprintf("Entry %d", i), nil, &projectID)
	}

	response, err := service.GetProjectAuditLogs(projectID, &GetAuditLogsRequest{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), response.Total)
	assert.Len(t, response.AuditLogs, 2)
	assert.Equal(t, 2, response.Limit)

	response, err = service.GetProjectAuditLogs(projectID, &GetAuditLogsRequest{Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Len(t, response.AuditLogs, 1)
	assert.Equal(t, 4, response.Offset)
}

func Test_GetProjectAuditLogs_WithOutOfRangeLimit_FallsBackToDefault(t *testing.T) {
	service := GetAuditLogService()
	projectID := uint(uuid.New().ID())

	service.WriteAuditLog("Single entry", nil, &projectID)

	for _, limit := range []int{0, -5, 5000} {
		response, err := service.GetProjectAuditLogs(projectID, &GetAuditLogsRequest{Limit: limit})
		require.NoError(t, err)
		assert.Equal(t, 100, response.Limit)
	}
}

func Test_GetProjectAuditLogs_WithBeforeDate_FiltersNewerEntries(t *testing.T) {
	service := GetAuditLogService()
	projectID := uint(uuid.New().ID())

	service.WriteAuditLog("Too recent", nil, &projectID)

	beforeDate := time.Now().UTC().Add(-time.Hour)
	response, err := service.GetProjectAuditLogs(projectID, &GetAuditLogsRequest{BeforeDate: &beforeDate})
	require.NoError(t, err)

	assert.Equal(t, int64(0), response.Total)
	assert.Empty(t, response.AuditLogs)
}
