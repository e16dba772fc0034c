// Package services holds the business logic behind the HTTP layer.
//
// Services defined in this package:
//   - AuthService: signup and login for all three roles
//   - CertificateService: role-gated issuance and lookup of certificates
package services

import (
	"context"

	"github.com/apaar/credhub/internal/app/models"
	"github.com/apaar/credhub/internal/app/models/dto"
)

// AuthService handles account creation and credential verification
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// CertificateService handles certificate issuance and lookup
type CertificateService interface {
	IssueCertificate(ctx context.Context, issuerUserID int64, req *dto.IssueCertificateRequest) error
	ListOwnCertificates(ctx context.Context, studentUserID int64) ([]models.Certificate, error)
	CheckStudent(ctx context.Context, apparID string) (*dto.CheckStudentResponse, error)
}
