package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/openhrm/leave_workflow_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LeaveRequestRepo: newPgxLeaveRequestRepository(dbPool),
		EntitlementRepo:  newPgxEntitlementRepository(dbPool),
		LeaveTypeRepo:    newPgxLeaveTypeRepository(dbPool),
		CalendarRepo:     newPgxCalendarRepository(dbPool),
		AttachmentRepo:   newPgxAttachmentRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
		EmployeeRepo:     newPgxEmployeeRepository(dbPool),
	}
}
