package services

// ServiceContainer holds instances of all the application services. This is the
// main entry point for accessing service functionality and is what the HTTP
// handlers are wired against.
type ServiceContainer struct {
	LeaveRequest LeaveRequestSvcFacade
	Entitlement  EntitlementSvcFacade
	LeaveConfig  LeaveConfigSvcFacade
	Attachment   AttachmentSvcFacade
	Directory    EmployeeDirectorySvcFacade
	Resolver     ManagerResolverSvcFacade
	Notifier     NotifierSvcFacade
}
