package users_interfaces

// AuditLogWriter records user-facing events without coupling the users
// feature to the audit log implementation.
type AuditLogWriter interface {
	WriteAuditLog(message string, userID *uint, projectID *uint)
}
