package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	portssvc "github.com/openhrm/leave_workflow_app/internal/core/ports/services"
	"github.com/openhrm/leave_workflow_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ManagerResolverTestSuite struct {
	suite.Suite
	mockDirectory *MockDirectorySvc
	resolver      portssvc.ManagerResolverSvcFacade
	ctx           context.Context
}

func (s *ManagerResolverTestSuite) SetupTest() {
	s.mockDirectory = new(MockDirectorySvc)
	s.resolver = services.NewManagerResolverService(s.mockDirectory, 10)
	s.ctx = context.Background()
}

func TestManagerResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ManagerResolverTestSuite))
}

func profile(id string, primaryPos, supervisorPos *string) *domain.EmployeeProfile {
	return &domain.EmployeeProfile{
		EmployeeID:           id,
		FullName:             "Employee " + id,
		PrimaryPositionID:    primaryPos,
		SupervisorPositionID: supervisorPos,
	}
}

func (s *ManagerResolverTestSuite) TestResolveManagerDirect() {
	manager := profile("mgr-001", nil, nil)
	s.mockDirectory.On("GetManagerForEmployee", s.ctx, "emp-001").Return(manager, nil).Once()

	got, err := s.resolver.ResolveManager(s.ctx, "emp-001")

	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal("mgr-001", got.EmployeeID)
	s.mockDirectory.AssertNotCalled(s.T(), "FindAll", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ManagerResolverTestSuite) TestResolveManagerPositionFallback() {
	// No direct manager; the supervisor position matches the second roster entry.
	s.mockDirectory.On("GetManagerForEmployee", s.ctx, "emp-001").Return(nil, nil).Once()
	s.mockDirectory.On("GetProfile", s.ctx, "emp-001").
		Return(profile("emp-001", ptrTo("pos-10"), ptrTo("pos-20")), nil).Once()
	s.mockDirectory.On("FindAll", s.ctx, 200, 0).Return([]domain.EmployeeProfile{
		*profile("emp-002", ptrTo("pos-11"), nil),
		*profile("mgr-002", ptrTo("pos-20"), nil),
	}, nil).Once()

	got, err := s.resolver.ResolveManager(s.ctx, "emp-001")

	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal("mgr-002", got.EmployeeID)
	s.mockDirectory.AssertExpectations(s.T())
}

func (s *ManagerResolverTestSuite) TestResolveManagerPagesThroughRoster() {
	s.mockDirectory.On("GetManagerForEmployee", s.ctx, "emp-001").Return(nil, nil).Once()
	s.mockDirectory.On("GetProfile", s.ctx, "emp-001").
		Return(profile("emp-001", nil, ptrTo("pos-20")), nil).Once()

	// A full first page without a match forces a second fetch.
	fullPage := make([]domain.EmployeeProfile, 200)
	for i := range fullPage {
		fullPage[i] = *profile("filler", ptrTo("pos-other"), nil)
	}
	s.mockDirectory.On("FindAll", s.ctx, 200, 0).Return(fullPage, nil).Once()
	s.mockDirectory.On("FindAll", s.ctx, 200, 200).Return([]domain.EmployeeProfile{
		*profile("mgr-002", ptrTo("pos-20"), nil),
	}, nil).Once()

	got, err := s.resolver.ResolveManager(s.ctx, "emp-001")

	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal("mgr-002", got.EmployeeID)
	s.mockDirectory.AssertExpectations(s.T())
}

func (s *ManagerResolverTestSuite) TestResolveManagerNoSupervisorPosition() {
	s.mockDirectory.On("GetManagerForEmployee", s.ctx, "emp-001").Return(nil, nil).Once()
	s.mockDirectory.On("GetProfile", s.ctx, "emp-001").
		Return(profile("emp-001", nil, nil), nil).Once()

	got, err := s.resolver.ResolveManager(s.ctx, "emp-001")

	s.Require().NoError(err)
	s.Assert().Nil(got)
	s.mockDirectory.AssertNotCalled(s.T(), "FindAll", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ManagerResolverTestSuite) TestResolveManagerExhaustedRoster() {
	s.mockDirectory.On("GetManagerForEmployee", s.ctx, "emp-001").Return(nil, nil).Once()
	s.mockDirectory.On("GetProfile", s.ctx, "emp-001").
		Return(profile("emp-001", nil, ptrTo("pos-20")), nil).Once()
	s.mockDirectory.On("FindAll", s.ctx, 200, 0).Return([]domain.EmployeeProfile{
		*profile("emp-002", ptrTo("pos-11"), nil),
	}, nil).Once()

	got, err := s.resolver.ResolveManager(s.ctx, "emp-001")

	s.Require().NoError(err)
	s.Assert().Nil(got)
}

func (s *ManagerResolverTestSuite) TestResolveManagerDirectoryError() {
	dirErr := errors.New("directory unavailable")
	s.mockDirectory.On("GetManagerForEmployee", s.ctx, "emp-001").Return(nil, dirErr).Once()

	got, err := s.resolver.ResolveManager(s.ctx, "emp-001")

	s.Require().Error(err)
	s.Assert().ErrorIs(err, dirErr)
	s.Assert().Nil(got)
}

func (s *ManagerResolverTestSuite) TestResolveChainAbove() {
	// emp-001 -> mgr-001 -> mgr-002, then the chain ends.
	s.mockDirectory.On("GetManagerForEmployee", s.ctx, "emp-001").Return(profile("mgr-001", nil, nil), nil).Once()
	s.mockDirectory.On("GetManagerForEmployee", s.ctx, "mgr-001").Return(profile("mgr-002", nil, nil), nil).Once()
	s.mockDirectory.On("GetManagerForEmployee", s.ctx, "mgr-002").Return(nil, nil).Once()
	s.mockDirectory.On("GetProfile", s.ctx, "mgr-002").Return(profile("mgr-002", nil, nil), nil).Once()

	chain, err := s.resolver.ResolveChainAbove(s.ctx, "emp-001")

	s.Require().NoError(err)
	s.Require().Len(chain, 2)
	s.Assert().Equal("mgr-001", chain[0].EmployeeID)
	s.Assert().Equal("mgr-002", chain[1].EmployeeID)
}

func (s *ManagerResolverTestSuite) TestResolveChainBreaksOnCycle() {
	// mgr-001 and mgr-002 point at each other; the walk must terminate.
	s.mockDirectory.On("GetManagerForEmployee", s.ctx, "emp-001").Return(profile("mgr-001", nil, nil), nil).Once()
	s.mockDirectory.On("GetManagerForEmployee", s.ctx, "mgr-001").Return(profile("mgr-002", nil, nil), nil).Once()
	s.mockDirectory.On("GetManagerForEmployee", s.ctx, "mgr-002").Return(profile("mgr-001", nil, nil), nil).Once()

	chain, err := s.resolver.ResolveChainAbove(s.ctx, "emp-001")

	s.Require().NoError(err)
	s.Require().Len(chain, 2)
	s.Assert().Equal("mgr-001", chain[0].EmployeeID)
	s.Assert().Equal("mgr-002", chain[1].EmployeeID)
}

func (s *ManagerResolverTestSuite) TestResolveChainHonorsHopCap() {
	resolver := services.NewManagerResolverService(s.mockDirectory, 2)

	s.mockDirectory.On("GetManagerForEmployee", s.ctx, "emp-001").Return(profile("mgr-001", nil, nil), nil).Once()
	s.mockDirectory.On("GetManagerForEmployee", s.ctx, "mgr-001").Return(profile("mgr-002", nil, nil), nil).Once()

	chain, err := resolver.ResolveChainAbove(s.ctx, "emp-001")

	s.Require().NoError(err)
	s.Assert().Len(chain, 2)
	// The third hop was never attempted.
	s.mockDirectory.AssertNotCalled(s.T(), "GetManagerForEmployee", s.ctx, "mgr-002")
}
