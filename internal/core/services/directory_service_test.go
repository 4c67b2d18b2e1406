package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	portssvc "github.com/openhrm/leave_workflow_app/internal/core/ports/services"
	"github.com/openhrm/leave_workflow_app/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type DirectoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEmployeeRepository
	service  portssvc.EmployeeDirectorySvcFacade
	ctx      context.Context
}

func (s *DirectoryServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockEmployeeRepository)
	s.service = services.NewEmployeeDirectoryService(s.mockRepo)
	s.ctx = context.Background()
}

func TestDirectoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DirectoryServiceTestSuite))
}

func (s *DirectoryServiceTestSuite) TestGetProfile() {
	s.mockRepo.On("FindProfileByID", s.ctx, "emp-001").
		Return(&domain.EmployeeProfile{EmployeeID: "emp-001", FullName: "Ana Silva"}, nil).Once()

	got, err := s.service.GetProfile(s.ctx, "emp-001")

	s.Require().NoError(err)
	s.Assert().Equal("Ana Silva", got.FullName)
}

func (s *DirectoryServiceTestSuite) TestGetProfileWrapsError() {
	repoErr := errors.New("store down")
	s.mockRepo.On("FindProfileByID", s.ctx, "emp-001").Return(nil, repoErr).Once()

	got, err := s.service.GetProfile(s.ctx, "emp-001")

	s.Require().Error(err)
	s.Assert().ErrorIs(err, repoErr)
	s.Assert().Nil(got)
}

func (s *DirectoryServiceTestSuite) TestFindAllDefaultsPageSize() {
	s.mockRepo.On("ListProfiles", s.ctx, 200, 0).
		Return([]domain.EmployeeProfile{{EmployeeID: "emp-001"}}, nil).Once()

	got, err := s.service.FindAll(s.ctx, 0, 0)

	s.Require().NoError(err)
	s.Assert().Len(got, 1)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *DirectoryServiceTestSuite) TestFindByRole() {
	s.mockRepo.On("ListByRole", s.ctx, domain.RolePayrollCoordinator).
		Return([]domain.EmployeeProfile{{EmployeeID: "pay-001"}}, nil).Once()

	got, err := s.service.FindByRole(s.ctx, domain.RolePayrollCoordinator)

	s.Require().NoError(err)
	s.Assert().Len(got, 1)
}
