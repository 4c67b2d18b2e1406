package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/openhrm/leave_workflow_app/internal/apperrors"
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	portssvc "github.com/openhrm/leave_workflow_app/internal/core/ports/services"
	"github.com/openhrm/leave_workflow_app/internal/core/services"
	"github.com/openhrm/leave_workflow_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LeaveConfigServiceTestSuite struct {
	suite.Suite
	mockLeaveTypeRepo *MockLeaveTypeRepository
	mockCalendarRepo  *MockCalendarRepository
	service           portssvc.LeaveConfigSvcFacade
	ctx               context.Context
}

func (s *LeaveConfigServiceTestSuite) SetupTest() {
	s.mockLeaveTypeRepo = new(MockLeaveTypeRepository)
	s.mockCalendarRepo = new(MockCalendarRepository)
	s.service = services.NewLeaveConfigService(s.mockLeaveTypeRepo, s.mockCalendarRepo)
	s.ctx = context.Background()
}

func TestLeaveConfigServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveConfigServiceTestSuite))
}

func (s *LeaveConfigServiceTestSuite) TestCreateLeaveType() {
	s.mockLeaveTypeRepo.On("SaveLeaveType", s.ctx,
		mock.MatchedBy(func(lt domain.LeaveType) bool {
			return lt.LeaveTypeID != "" && lt.Code == "SICK" && lt.RequiresAttachment && lt.CreatedBy == "hr-001"
		})).
		Return(nil).Once()

	got, err := s.service.CreateLeaveType(s.ctx, dto.CreateLeaveTypeRequest{
		Name:               "Sick Leave",
		Code:               "SICK",
		IsPaid:             true,
		RequiresAttachment: true,
	}, "hr-001")

	s.Require().NoError(err)
	s.Assert().NotEmpty(got.LeaveTypeID)
	s.mockLeaveTypeRepo.AssertExpectations(s.T())
}

func (s *LeaveConfigServiceTestSuite) TestCreatePolicyRequiresExistingLeaveType() {
	s.mockLeaveTypeRepo.On("FindLeaveTypeByID", s.ctx, "lt-ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	got, err := s.service.CreatePolicy(s.ctx, dto.CreateLeavePolicyRequest{
		LeaveTypeID:   "lt-ghost",
		MinNoticeDays: 3,
	}, "hr-001")

	s.Require().Error(err)
	s.Assert().ErrorIs(err, apperrors.ErrNotFound)
	s.Assert().Nil(got)
	s.mockLeaveTypeRepo.AssertNotCalled(s.T(), "SavePolicy", mock.Anything, mock.Anything)
}

func (s *LeaveConfigServiceTestSuite) TestCreatePolicy() {
	s.mockLeaveTypeRepo.On("FindLeaveTypeByID", s.ctx, "lt-annual").
		Return(&domain.LeaveType{LeaveTypeID: "lt-annual"}, nil).Once()
	s.mockLeaveTypeRepo.On("SavePolicy", s.ctx,
		mock.MatchedBy(func(p domain.LeavePolicy) bool {
			return p.LeaveTypeID == "lt-annual" && p.MinNoticeDays == 3 &&
				p.Eligibility.MinTenureMonths != nil && *p.Eligibility.MinTenureMonths == 6
		})).
		Return(nil).Once()

	got, err := s.service.CreatePolicy(s.ctx, dto.CreateLeavePolicyRequest{
		LeaveTypeID:     "lt-annual",
		MinNoticeDays:   3,
		MinTenureMonths: ptrTo(6),
	}, "hr-001")

	s.Require().NoError(err)
	s.Assert().NotEmpty(got.PolicyID)
	s.mockLeaveTypeRepo.AssertExpectations(s.T())
}

func (s *LeaveConfigServiceTestSuite) TestAddBlockedPeriodRejectsInvertedRange() {
	got, err := s.service.AddBlockedPeriod(s.ctx, 2026, dto.CreateBlockedPeriodRequest{
		Name:     "Fiscal close",
		FromDate: time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC),
		ToDate:   time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
	}, "hr-001")

	s.Require().Error(err)
	s.Assert().ErrorIs(err, apperrors.ErrValidation)
	s.Assert().Nil(got)
	s.mockCalendarRepo.AssertNotCalled(s.T(), "SaveBlockedPeriod", mock.Anything, mock.Anything)
}

func (s *LeaveConfigServiceTestSuite) TestAddBlockedPeriod() {
	s.mockCalendarRepo.On("SaveBlockedPeriod", s.ctx,
		mock.MatchedBy(func(p domain.BlockedPeriod) bool {
			return p.Year == 2026 && p.Name == "Fiscal close" && p.PeriodID != ""
		})).
		Return(nil).Once()

	got, err := s.service.AddBlockedPeriod(s.ctx, 2026, dto.CreateBlockedPeriodRequest{
		Name:     "Fiscal close",
		FromDate: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		ToDate:   time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC),
	}, "hr-001")

	s.Require().NoError(err)
	s.Assert().Equal(2026, got.Year)
	s.mockCalendarRepo.AssertExpectations(s.T())
}

func (s *LeaveConfigServiceTestSuite) TestListBlockedPeriods() {
	s.mockCalendarRepo.On("FindBlockedPeriodsByYear", s.ctx, 2026).
		Return([]domain.BlockedPeriod{{PeriodID: "bp-001", Year: 2026}}, nil).Once()

	got, err := s.service.ListBlockedPeriods(s.ctx, 2026)

	s.Require().NoError(err)
	s.Assert().Len(got, 1)
}
