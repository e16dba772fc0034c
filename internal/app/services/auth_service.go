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
	"github.com/apaar/credhub/internal/pkg/auth"
)

// authService implements AuthService
type authService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Signup registers a new account with the role fixed at creation.
// Role-specific fields are captured only for the matching role.
func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) error {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return apperrors.ErrMissingFields
	}

	if !models.ValidRole(req.Role) {
		s.logger.Warn().Str("role", req.Role).Msg("Signup with unknown role rejected")
		return apperrors.ErrInvalidRole
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return apperrors.ErrEmailAlreadyRegistered
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	account := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		RoleType: models.RoleType(req.Role),
	}

	// The user row and its role row are created in one transaction, so
	// a failed role insert never leaves a claimed email behind.
	var userID int64
	switch account.RoleType {
	case models.RoleStudent:
		student := &models.Student{
			ApparID: req.ApparID,
		}
		if req.DOB != "" {
			student.DOB = &req.DOB
		}
		if req.Phone != "" {
			student.Phone = &req.Phone
		}
		userID, err = s.userRepo.CreateStudentAccount(ctx, account, student)

	case models.RoleInstitute:
		institute := &models.Institute{}
		if req.RecognitionNumber != "" {
			institute.RecognitionNumber = &req.RecognitionNumber
		}
		userID, err = s.userRepo.CreateInstituteAccount(ctx, account, institute)

	case models.RoleCompany:
		companyName := req.CompanyName
		if companyName == "" {
			companyName = req.Name
		}
		company := &models.Company{
			CompanyName: companyName,
		}
		userID, err = s.userRepo.CreateCompanyAccount(ctx, account, company)
	}

	if err != nil {
		// The unique constraint catches a concurrent duplicate signup
		// that slipped past the existence check above.
		if errors.Is(err, user.ErrEmailAlreadyExists) {
			return apperrors.ErrEmailAlreadyRegistered
		}
		return fmt.Errorf("account creation error: %w", err)
	}

	s.logger.Info().Int64("userID", userID).Str("role", req.Role).Msg("User registered")
	return nil
}

// Login verifies credentials and issues a stateless bearer token
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	if !auth.CheckPassword(account.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(account)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		Role:    string(account.RoleType),
		Name:    account.Name,
	}, nil
}
