package repositories

// RepositoryProvider bundles every repository facade the service layer consumes.
type RepositoryProvider struct {
	LeaveRequestRepo LeaveRequestRepositoryFacade
	EntitlementRepo  EntitlementRepositoryFacade
	LeaveTypeRepo    LeaveTypeRepositoryFacade
	CalendarRepo     CalendarRepositoryFacade
	AttachmentRepo   AttachmentRepositoryFacade
	NotificationRepo NotificationRepositoryFacade
	EmployeeRepo     EmployeeRepositoryFacade
}
