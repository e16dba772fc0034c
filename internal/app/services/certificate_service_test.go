package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/apaar/credhub/internal/app/models"
	"github.com/apaar/credhub/internal/app/models/dto"
	"github.com/apaar/credhub/internal/app/repositories/mocks"
	"github.com/apaar/credhub/internal/app/repositories/user"
	"github.com/apaar/credhub/internal/pkg/apperrors"
)

func newTestCertificateService(t *testing.T) (CertificateService, *mocks.MockIUserRepository, *mocks.MockICertificateRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockIUserRepository(ctrl)
	certRepo := mocks.NewMockICertificateRepository(ctrl)
	svc := NewCertificateService(userRepo, certRepo, zerolog.Nop())
	return svc, userRepo, certRepo
}

func TestCertificateService_IssueCertificate(t *testing.T) {
	svc, userRepo, certRepo := newTestCertificateService(t)
	ctx := context.Background()

	userRepo.EXPECT().GetUserByID(ctx, int64(20)).Return(&models.User{
		ID:       20,
		Name:     "Inst",
		RoleType: models.RoleInstitute,
	}, nil)
	userRepo.EXPECT().GetStudentByApparID(ctx, "AP1").Return(&models.Student{
		ID:      1,
		UserID:  10,
		ApparID: "AP1",
	}, nil)
	certRepo.EXPECT().Append(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cert *models.Certificate) error {
			assert.Equal(t, int64(10), cert.StudentUserID)
			assert.Equal(t, "Intro to Go", cert.Title)
			// issuedBy snapshots the issuer's name at issuance time
			assert.Equal(t, "Inst", cert.IssuedBy)
			// issueDate is the server's current date, never client input
			assert.Equal(t, time.Now().Format("2006-01-02"), cert.IssueDate)
			return nil
		})

	err := svc.IssueCertificate(ctx, 20, &dto.IssueCertificateRequest{
		StudentApparID: "AP1",
		Certificate:    "Intro to Go",
	})
	require.NoError(t, err)
}

func TestCertificateService_IssueCertificate_MissingData(t *testing.T) {
	svc, _, _ := newTestCertificateService(t)
	ctx := context.Background()

	err := svc.IssueCertificate(ctx, 20, &dto.IssueCertificateRequest{Certificate: "Intro to Go"})
	assert.ErrorIs(t, err, apperrors.ErrMissingData)

	err = svc.IssueCertificate(ctx, 20, &dto.IssueCertificateRequest{StudentApparID: "AP1"})
	assert.ErrorIs(t, err, apperrors.ErrMissingData)
}

func TestCertificateService_IssueCertificate_IssuerGone(t *testing.T) {
	svc, userRepo, _ := newTestCertificateService(t)
	ctx := context.Background()

	userRepo.EXPECT().GetUserByID(ctx, int64(20)).Return(nil, user.ErrUserNotFound)

	err := svc.IssueCertificate(ctx, 20, &dto.IssueCertificateRequest{StudentApparID: "AP1", Certificate: "X"})
	assert.ErrorIs(t, err, apperrors.ErrInstituteNotFound)
}

func TestCertificateService_IssueCertificate_IssuerNotInstitute(t *testing.T) {
	svc, userRepo, _ := newTestCertificateService(t)
	ctx := context.Background()

	userRepo.EXPECT().GetUserByID(ctx, int64(20)).Return(&models.User{
		ID:       20,
		RoleType: models.RoleCompany,
	}, nil)

	err := svc.IssueCertificate(ctx, 20, &dto.IssueCertificateRequest{StudentApparID: "AP1", Certificate: "X"})
	assert.ErrorIs(t, err, apperrors.ErrInstituteNotFound)
}

func TestCertificateService_IssueCertificate_UnknownApparID(t *testing.T) {
	svc, userRepo, _ := newTestCertificateService(t)
	ctx := context.Background()

	userRepo.EXPECT().GetUserByID(ctx, int64(20)).Return(&models.User{
		ID:       20,
		Name:     "Inst",
		RoleType: models.RoleInstitute,
	}, nil)
	userRepo.EXPECT().GetStudentByApparID(ctx, "NOPE").Return(nil, user.ErrStudentNotFound)

	err := svc.IssueCertificate(ctx, 20, &dto.IssueCertificateRequest{StudentApparID: "NOPE", Certificate: "X"})
	assert.ErrorIs(t, err, apperrors.ErrApparIDNotFound)
}

func TestCertificateService_ListOwnCertificates(t *testing.T) {
	svc, userRepo, certRepo := newTestCertificateService(t)
	ctx := context.Background()

	issued := []models.Certificate{
		{StudentUserID: 10, Title: "Intro to Go", IssuedBy: "Inst", IssueDate: "2026-08-29"},
		{StudentUserID: 10, Title: "Databases", IssuedBy: "Inst", IssueDate: "2026-08-29"},
	}

	userRepo.EXPECT().GetStudentByUserID(ctx, int64(10)).Return(&models.Student{UserID: 10, ApparID: "AP1"}, nil)
	certRepo.EXPECT().ListByStudentUserID(ctx, int64(10)).Return(issued, nil)

	got, err := svc.ListOwnCertificates(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, issued, got)
}

func TestCertificateService_ListOwnCertificates_Empty(t *testing.T) {
	svc, userRepo, certRepo := newTestCertificateService(t)
	ctx := context.Background()

	userRepo.EXPECT().GetStudentByUserID(ctx, int64(10)).Return(&models.Student{UserID: 10, ApparID: "AP1"}, nil)
	certRepo.EXPECT().ListByStudentUserID(ctx, int64(10)).Return([]models.Certificate{}, nil)

	got, err := svc.ListOwnCertificates(ctx, 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCertificateService_ListOwnCertificates_NoStudentRow(t *testing.T) {
	svc, userRepo, _ := newTestCertificateService(t)
	ctx := context.Background()

	userRepo.EXPECT().GetStudentByUserID(ctx, int64(99)).Return(nil, user.ErrStudentNotFound)

	_, err := svc.ListOwnCertificates(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestCertificateService_CheckStudent(t *testing.T) {
	svc, userRepo, certRepo := newTestCertificateService(t)
	ctx := context.Background()

	issued := []models.Certificate{
		{StudentUserID: 10, Title: "Intro to Go", IssuedBy: "Inst", IssueDate: "2026-08-29"},
	}

	userRepo.EXPECT().GetStudentByApparID(ctx, "AP1").Return(&models.Student{
		UserID:  10,
		ApparID: "AP1",
		User:    &models.User{ID: 10, Name: "A"},
	}, nil)
	certRepo.EXPECT().ListByStudentUserID(ctx, int64(10)).Return(issued, nil)

	resp, err := svc.CheckStudent(ctx, "AP1")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "A", resp.Name)
	assert.Equal(t, "AP1", resp.ApparID)
	assert.Equal(t, issued, resp.Certificates)
}

func TestCertificateService_CheckStudent_NotFound(t *testing.T) {
	svc, userRepo, _ := newTestCertificateService(t)
	ctx := context.Background()

	userRepo.EXPECT().GetStudentByApparID(ctx, "NOPE").Return(nil, user.ErrStudentNotFound)

	_, err := svc.CheckStudent(ctx, "NOPE")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
