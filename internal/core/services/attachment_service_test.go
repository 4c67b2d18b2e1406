package services_test

import (
	"context"
	"testing"

	"github.com/openhrm/leave_workflow_app/internal/apperrors"
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	portssvc "github.com/openhrm/leave_workflow_app/internal/core/ports/services"
	"github.com/openhrm/leave_workflow_app/internal/core/services"
	"github.com/openhrm/leave_workflow_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AttachmentServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAttachmentRepository
	service  portssvc.AttachmentSvcFacade
	ctx      context.Context
}

func (s *AttachmentServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockAttachmentRepository)
	s.service = services.NewAttachmentService(s.mockRepo)
	s.ctx = context.Background()
}

func TestAttachmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttachmentServiceTestSuite))
}

func (s *AttachmentServiceTestSuite) TestCreateAttachmentStampsUploader() {
	s.mockRepo.On("SaveAttachment", s.ctx,
		mock.MatchedBy(func(a domain.Attachment) bool {
			return a.AttachmentID != "" && a.FileName == "certificate.pdf" && a.UploadedBy == "emp-001"
		})).
		Return(nil).Once()

	got, err := s.service.CreateAttachment(s.ctx, dto.CreateAttachmentRequest{
		FileName:    "certificate.pdf",
		ContentType: "application/pdf",
		SizeBytes:   2048,
	}, "emp-001")

	s.Require().NoError(err)
	s.Assert().Equal("emp-001", got.UploadedBy)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *AttachmentServiceTestSuite) TestGetAttachmentNotFound() {
	s.mockRepo.On("FindAttachmentByID", s.ctx, "att-missing").
		Return(nil, apperrors.ErrNotFound).Once()

	got, err := s.service.GetAttachment(s.ctx, "att-missing")

	s.Require().Error(err)
	s.Assert().ErrorIs(err, apperrors.ErrNotFound)
	s.Assert().Nil(got)
}
