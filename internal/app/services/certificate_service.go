package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/apaar/credhub/internal/app/models"
	"github.com/apaar/credhub/internal/app/models/dto"
	"github.com/apaar/credhub/internal/app/repositories"
	"github.com/apaar/credhub/internal/app/repositories/user"
	"github.com/apaar/credhub/internal/pkg/apperrors"
	"github.com/apaar/credhub/internal/pkg/helpers"
)

// certificateService implements CertificateService
type certificateService struct {
	userRepo repositories.IUserRepository
	certRepo repositories.ICertificateRepository
	logger   zerolog.Logger
}

// NewCertificateService creates a new CertificateService
func NewCertificateService(userRepo repositories.IUserRepository, certRepo repositories.ICertificateRepository, logger zerolog.Logger) CertificateService {
	return &certificateService{
		userRepo: userRepo,
		certRepo: certRepo,
		logger:   logger,
	}
}

// IssueCertificate appends one certificate to the student addressed by
// APPAR ID. issuedBy is the issuer's current display name at issuance
// time; issueDate is the server's current date. The caller must already
// have been gated to the institute role.
func (s *certificateService) IssueCertificate(ctx context.Context, issuerUserID int64, req *dto.IssueCertificateRequest) error {
	if req.StudentApparID == "" || req.Certificate == "" {
		return apperrors.ErrMissingData
	}

	// The token is valid, but the store may have been mutated out of
	// band since it was issued.
	issuer, err := s.userRepo.GetUserByID(ctx, issuerUserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return apperrors.ErrInstituteNotFound
		}
		return fmt.Errorf("error retrieving issuer: %w", err)
	}
	if issuer.RoleType != models.RoleInstitute {
		return apperrors.ErrInstituteNotFound
	}

	student, err := s.userRepo.GetStudentByApparID(ctx, req.StudentApparID)
	if err != nil {
		if errors.Is(err, user.ErrStudentNotFound) {
			return apperrors.ErrApparIDNotFound
		}
		return fmt.Errorf("error retrieving student: %w", err)
	}

	cert := &models.Certificate{
		StudentUserID: student.UserID,
		Title:         req.Certificate,
		IssuedBy:      issuer.Name,
		IssueDate:     helpers.Today(),
	}

	if err := s.certRepo.Append(ctx, cert); err != nil {
		return fmt.Errorf("error issuing certificate: %w", err)
	}

	s.logger.Info().
		Int64("issuerUserID", issuerUserID).
		Str("apparID", req.StudentApparID).
		Str("title", req.Certificate).
		Msg("Certificate issued")
	return nil
}

// ListOwnCertificates returns the authenticated student's certificates
// in issuance order. No certificates yet is an empty list, not an
// error.
func (s *certificateService) ListOwnCertificates(ctx context.Context, studentUserID int64) ([]models.Certificate, error) {
	if _, err := s.userRepo.GetStudentByUserID(ctx, studentUserID); err != nil {
		if errors.Is(err, user.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	certificates, err := s.certRepo.ListByStudentUserID(ctx, studentUserID)
	if err != nil {
		return nil, fmt.Errorf("error listing certificates: %w", err)
	}

	return certificates, nil
}

// CheckStudent is the employer-facing verification lookup: it resolves
// an APPAR ID to a student's name and certificate list, read-only.
func (s *certificateService) CheckStudent(ctx context.Context, apparID string) (*dto.CheckStudentResponse, error) {
	student, err := s.userRepo.GetStudentByApparID(ctx, apparID)
	if err != nil {
		if errors.Is(err, user.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	certificates, err := s.certRepo.ListByStudentUserID(ctx, student.UserID)
	if err != nil {
		return nil, fmt.Errorf("error listing certificates: %w", err)
	}

	return &dto.CheckStudentResponse{
		Success:      true,
		Name:         student.User.Name,
		ApparID:      student.ApparID,
		Certificates: certificates,
	}, nil
}
