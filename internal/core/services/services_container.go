package services

import (
	portsrepo "github.com/openhrm/leave_workflow_app/internal/core/ports/repositories"
	portssvc "github.com/openhrm/leave_workflow_app/internal/core/ports/services"
)

// NewServiceContainer wires the full service graph in dependency order.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cfg LeaveRequestServiceConfig, maxChainHops int) *portssvc.ServiceContainer {
	directory := NewEmployeeDirectoryService(repos.EmployeeRepo)
	resolver := NewManagerResolverService(directory, maxChainHops)
	notifier := NewNotifierService(repos.NotificationRepo, directory, resolver)
	entitlement := NewEntitlementService(repos.EntitlementRepo)

	leaveRequest := NewLeaveRequestService(
		repos.LeaveRequestRepo,
		repos.LeaveTypeRepo,
		repos.CalendarRepo,
		repos.AttachmentRepo,
		entitlement,
		directory,
		notifier,
		cfg,
	)

	return &portssvc.ServiceContainer{
		LeaveRequest: leaveRequest,
		Entitlement:  entitlement,
		LeaveConfig:  NewLeaveConfigService(repos.LeaveTypeRepo, repos.CalendarRepo),
		Attachment:   NewAttachmentService(repos.AttachmentRepo),
		Directory:    directory,
		Resolver:     resolver,
		Notifier:     notifier,
	}
}
