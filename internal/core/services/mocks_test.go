package services_test

import (
	"context"

	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	portsrepo "github.com/openhrm/leave_workflow_app/internal/core/ports/repositories"
	portssvc "github.com/openhrm/leave_workflow_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockLeaveRequestRepository is a mock implementation of LeaveRequestRepositoryFacade.
type MockLeaveRequestRepository struct {
	mock.Mock
}

var _ portsrepo.LeaveRequestRepositoryFacade = (*MockLeaveRequestRepository)(nil)

func (m *MockLeaveRequestRepository) FindLeaveRequestByID(ctx context.Context, requestID string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRequestRepository) ListLeaveRequests(ctx context.Context, filter portsrepo.LeaveRequestFilter, limit int, nextToken *string) ([]domain.LeaveRequest, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var reqs []domain.LeaveRequest
	if args.Get(0) != nil {
		reqs = args.Get(0).([]domain.LeaveRequest)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return reqs, token, args.Error(2)
}

func (m *MockLeaveRequestRepository) FindActiveByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRequestRepository) SaveLeaveRequest(ctx context.Context, req domain.LeaveRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockLeaveRequestRepository) UpdateLeaveRequest(ctx context.Context, req domain.LeaveRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockLeaveRequestRepository) UpdateWithApprovalFlow(ctx context.Context, requestID string, statusPatch *domain.StatusPatch, step domain.ApprovalStep, updatedBy string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, requestID, statusPatch, step, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}

// MockEntitlementRepository is a mock implementation of EntitlementRepositoryFacade.
type MockEntitlementRepository struct {
	mock.Mock
}

var _ portsrepo.EntitlementRepositoryFacade = (*MockEntitlementRepository)(nil)

func (m *MockEntitlementRepository) FindByEmployeeAndLeaveType(ctx context.Context, employeeID, leaveTypeID string) (*domain.LeaveEntitlement, error) {
	args := m.Called(ctx, employeeID, leaveTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveEntitlement), args.Error(1)
}

func (m *MockEntitlementRepository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveEntitlement, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveEntitlement), args.Error(1)
}

func (m *MockEntitlementRepository) ApplyCounterDelta(ctx context.Context, employeeID, leaveTypeID string, delta domain.CounterDelta, updatedBy string) (bool, error) {
	args := m.Called(ctx, employeeID, leaveTypeID, delta, updatedBy)
	return args.Bool(0), args.Error(1)
}

// MockLeaveTypeRepository is a mock implementation of LeaveTypeRepositoryFacade.
type MockLeaveTypeRepository struct {
	mock.Mock
}

var _ portsrepo.LeaveTypeRepositoryFacade = (*MockLeaveTypeRepository)(nil)

func (m *MockLeaveTypeRepository) FindLeaveTypeByID(ctx context.Context, leaveTypeID string) (*domain.LeaveType, error) {
	args := m.Called(ctx, leaveTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveType), args.Error(1)
}

func (m *MockLeaveTypeRepository) ListLeaveTypes(ctx context.Context) ([]domain.LeaveType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveType), args.Error(1)
}

func (m *MockLeaveTypeRepository) SaveLeaveType(ctx context.Context, lt domain.LeaveType) error {
	args := m.Called(ctx, lt)
	return args.Error(0)
}

func (m *MockLeaveTypeRepository) FindPolicyByLeaveTypeID(ctx context.Context, leaveTypeID string) (*domain.LeavePolicy, error) {
	args := m.Called(ctx, leaveTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeavePolicy), args.Error(1)
}

func (m *MockLeaveTypeRepository) ListPolicies(ctx context.Context) ([]domain.LeavePolicy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeavePolicy), args.Error(1)
}

func (m *MockLeaveTypeRepository) SavePolicy(ctx context.Context, p domain.LeavePolicy) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockCalendarRepository is a mock implementation of CalendarRepositoryFacade.
type MockCalendarRepository struct {
	mock.Mock
}

var _ portsrepo.CalendarRepositoryFacade = (*MockCalendarRepository)(nil)

func (m *MockCalendarRepository) FindBlockedPeriodsByYear(ctx context.Context, year int) ([]domain.BlockedPeriod, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlockedPeriod), args.Error(1)
}

func (m *MockCalendarRepository) SaveBlockedPeriod(ctx context.Context, p domain.BlockedPeriod) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockAttachmentRepository is a mock implementation of AttachmentRepositoryFacade.
type MockAttachmentRepository struct {
	mock.Mock
}

var _ portsrepo.AttachmentRepositoryFacade = (*MockAttachmentRepository)(nil)

func (m *MockAttachmentRepository) SaveAttachment(ctx context.Context, a domain.Attachment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAttachmentRepository) FindAttachmentByID(ctx context.Context, attachmentID string) (*domain.Attachment, error) {
	args := m.Called(ctx, attachmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

// MockNotificationRepository is a mock implementation of NotificationRepositoryFacade.
type MockNotificationRepository struct {
	mock.Mock
}

var _ portsrepo.NotificationRepositoryFacade = (*MockNotificationRepository)(nil)

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListNotificationsByRecipient(ctx context.Context, recipientID string, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, recipientID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

// MockEmployeeRepository is a mock implementation of EmployeeRepositoryFacade.
type MockEmployeeRepository struct {
	mock.Mock
}

var _ portsrepo.EmployeeRepositoryFacade = (*MockEmployeeRepository)(nil)

func (m *MockEmployeeRepository) FindProfileByID(ctx context.Context, employeeID string) (*domain.EmployeeProfile, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeProfile), args.Error(1)
}

func (m *MockEmployeeRepository) FindManagerForEmployee(ctx context.Context, employeeID string) (*domain.EmployeeProfile, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeProfile), args.Error(1)
}

func (m *MockEmployeeRepository) FindTeamByManager(ctx context.Context, managerID string) ([]domain.EmployeeProfile, error) {
	args := m.Called(ctx, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployeeProfile), args.Error(1)
}

func (m *MockEmployeeRepository) ListProfiles(ctx context.Context, limit, offset int) ([]domain.EmployeeProfile, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployeeProfile), args.Error(1)
}

func (m *MockEmployeeRepository) ListByRole(ctx context.Context, role string) ([]domain.EmployeeProfile, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployeeProfile), args.Error(1)
}

// MockEntitlementSvc is a mock implementation of EntitlementSvcFacade.
type MockEntitlementSvc struct {
	mock.Mock
}

var _ portssvc.EntitlementSvcFacade = (*MockEntitlementSvc)(nil)

func (m *MockEntitlementSvc) OnSubmit(ctx context.Context, employeeID, leaveTypeID string, duration decimal.Decimal, actorID string) error {
	args := m.Called(ctx, employeeID, leaveTypeID, duration, actorID)
	return args.Error(0)
}

func (m *MockEntitlementSvc) OnModify(ctx context.Context, employeeID, leaveTypeID string, oldDuration, newDuration decimal.Decimal, actorID string) error {
	args := m.Called(ctx, employeeID, leaveTypeID, oldDuration, newDuration, actorID)
	return args.Error(0)
}

func (m *MockEntitlementSvc) OnCancel(ctx context.Context, employeeID, leaveTypeID string, duration decimal.Decimal, actorID string) error {
	args := m.Called(ctx, employeeID, leaveTypeID, duration, actorID)
	return args.Error(0)
}

func (m *MockEntitlementSvc) OnFinalize(ctx context.Context, employeeID, leaveTypeID string, duration decimal.Decimal, outcome domain.RequestStatus, actorID string) error {
	args := m.Called(ctx, employeeID, leaveTypeID, duration, outcome, actorID)
	return args.Error(0)
}

func (m *MockEntitlementSvc) GetEntitlements(ctx context.Context, employeeID string) ([]domain.LeaveEntitlement, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveEntitlement), args.Error(1)
}

// MockDirectorySvc is a mock implementation of EmployeeDirectorySvcFacade.
type MockDirectorySvc struct {
	mock.Mock
}

var _ portssvc.EmployeeDirectorySvcFacade = (*MockDirectorySvc)(nil)

func (m *MockDirectorySvc) GetProfile(ctx context.Context, employeeID string) (*domain.EmployeeProfile, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeProfile), args.Error(1)
}

func (m *MockDirectorySvc) GetManagerForEmployee(ctx context.Context, employeeID string) (*domain.EmployeeProfile, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeProfile), args.Error(1)
}

func (m *MockDirectorySvc) GetTeamProfiles(ctx context.Context, managerID string) ([]domain.EmployeeProfile, error) {
	args := m.Called(ctx, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployeeProfile), args.Error(1)
}

func (m *MockDirectorySvc) FindAll(ctx context.Context, limit, offset int) ([]domain.EmployeeProfile, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployeeProfile), args.Error(1)
}

func (m *MockDirectorySvc) FindByRole(ctx context.Context, role string) ([]domain.EmployeeProfile, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployeeProfile), args.Error(1)
}

// MockResolverSvc is a mock implementation of ManagerResolverSvcFacade.
type MockResolverSvc struct {
	mock.Mock
}

var _ portssvc.ManagerResolverSvcFacade = (*MockResolverSvc)(nil)

func (m *MockResolverSvc) ResolveManager(ctx context.Context, employeeID string) (*domain.EmployeeProfile, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeProfile), args.Error(1)
}

func (m *MockResolverSvc) ResolveChainAbove(ctx context.Context, employeeID string) ([]domain.EmployeeProfile, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployeeProfile), args.Error(1)
}

// MockNotifierSvc is a mock implementation of NotifierSvcFacade.
type MockNotifierSvc struct {
	mock.Mock
}

var _ portssvc.NotifierSvcFacade = (*MockNotifierSvc)(nil)

func (m *MockNotifierSvc) RequestSubmitted(ctx context.Context, req *domain.LeaveRequest) {
	m.Called(ctx, req)
}

func (m *MockNotifierSvc) RequestModified(ctx context.Context, req *domain.LeaveRequest, changedFields []string) {
	m.Called(ctx, req, changedFields)
}

func (m *MockNotifierSvc) FlowConfigured(ctx context.Context, req *domain.LeaveRequest, roles []string) {
	m.Called(ctx, req, roles)
}

func (m *MockNotifierSvc) DecisionRecorded(ctx context.Context, req *domain.LeaveRequest, step domain.ApprovalStep) {
	m.Called(ctx, req, step)
}

func (m *MockNotifierSvc) RequestFinalized(ctx context.Context, req *domain.LeaveRequest) {
	m.Called(ctx, req)
}

func (m *MockNotifierSvc) OverrideRejected(ctx context.Context, req *domain.LeaveRequest, reason string) {
	m.Called(ctx, req, reason)
}

func (m *MockNotifierSvc) StatusChanged(ctx context.Context, req *domain.LeaveRequest, newStatus domain.RequestStatus) {
	m.Called(ctx, req, newStatus)
}

func (m *MockNotifierSvc) ListForRecipient(ctx context.Context, recipientID string, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, recipientID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}
