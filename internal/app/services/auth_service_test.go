package services

import (
	"context"
	"errors"
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
	"github.com/apaar/credhub/internal/pkg/auth"
)

func newTestAuthService(t *testing.T) (AuthService, *mocks.MockIUserRepository, *auth.JWTService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockIUserRepository(ctrl)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    time.Hour,
		TokenIssuer: "credhub.test",
	})
	svc := NewAuthService(userRepo, jwtService, zerolog.Nop())
	return svc, userRepo, jwtService
}

func TestAuthService_Signup_Student(t *testing.T) {
	svc, userRepo, _ := newTestAuthService(t)
	ctx := context.Background()

	req := &dto.SignupRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "pw123456",
		Role:     "student",
		ApparID:  "AP1",
	}

	userRepo.EXPECT().EmailExists(ctx, "a@x.com").Return(false, nil)
	userRepo.EXPECT().CreateStudentAccount(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User, s *models.Student) (int64, error) {
			assert.Equal(t, "A", u.Name)
			assert.Equal(t, models.RoleStudent, u.RoleType)
			// The repository must never see the plaintext password
			assert.NotEqual(t, "pw123456", u.Password)
			assert.True(t, auth.CheckPassword(u.Password, "pw123456"))
			assert.Equal(t, "AP1", s.ApparID)
			assert.Nil(t, s.DOB)
			assert.Nil(t, s.Phone)
			return 10, nil
		})

	require.NoError(t, svc.Signup(ctx, req))
}

func TestAuthService_Signup_CompanyNameDefaultsToName(t *testing.T) {
	svc, userRepo, _ := newTestAuthService(t)
	ctx := context.Background()

	req := &dto.SignupRequest{
		Name:     "Acme Hiring",
		Email:    "hr@acme.com",
		Password: "pw123456",
		Role:     "company",
	}

	userRepo.EXPECT().EmailExists(ctx, "hr@acme.com").Return(false, nil)
	userRepo.EXPECT().CreateCompanyAccount(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *models.User, c *models.Company) (int64, error) {
			assert.Equal(t, "Acme Hiring", c.CompanyName)
			return 11, nil
		})

	require.NoError(t, svc.Signup(ctx, req))
}

func TestAuthService_Signup_MissingFields(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	tests := []struct {
		name string
		req  dto.SignupRequest
	}{
		{name: "no name", req: dto.SignupRequest{Email: "a@x.com", Password: "pw", Role: "student"}},
		{name: "no email", req: dto.SignupRequest{Name: "A", Password: "pw", Role: "student"}},
		{name: "no password", req: dto.SignupRequest{Name: "A", Email: "a@x.com", Role: "student"}},
		{name: "no role", req: dto.SignupRequest{Name: "A", Email: "a@x.com", Password: "pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			err := svc.Signup(context.Background(), &req)
			assert.ErrorIs(t, err, apperrors.ErrMissingFields)
		})
	}
}

func TestAuthService_Signup_InvalidRole(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	req := &dto.SignupRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "pw123456",
		Role:     "admin",
	}

	err := svc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestAuthService_Signup_EmailAlreadyRegistered(t *testing.T) {
	svc, userRepo, _ := newTestAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().EmailExists(ctx, "a@x.com").Return(true, nil)

	req := &dto.SignupRequest{Name: "A", Email: "a@x.com", Password: "pw123456", Role: "student", ApparID: "AP1"}
	err := svc.Signup(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Signup_DuplicateRaceCaughtByConstraint(t *testing.T) {
	svc, userRepo, _ := newTestAuthService(t)
	ctx := context.Background()

	// A concurrent signup wins between the existence check and insert;
	// the unique constraint surfaces as the same business failure.
	userRepo.EXPECT().EmailExists(ctx, "a@x.com").Return(false, nil)
	userRepo.EXPECT().CreateStudentAccount(ctx, gomock.Any(), gomock.Any()).Return(int64(0), user.ErrEmailAlreadyExists)

	req := &dto.SignupRequest{Name: "A", Email: "a@x.com", Password: "pw123456", Role: "student", ApparID: "AP1"}
	err := svc.Signup(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Signup_FailedAccountCreationSurfacesError(t *testing.T) {
	svc, userRepo, _ := newTestAuthService(t)
	ctx := context.Background()

	// The user row and role row commit together, so a failure during
	// account creation must bubble up instead of leaving the email taken.
	userRepo.EXPECT().EmailExists(ctx, "a@x.com").Return(false, nil)
	userRepo.EXPECT().CreateStudentAccount(ctx, gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("students_appar_id_key violation"))

	req := &dto.SignupRequest{Name: "A", Email: "a@x.com", Password: "pw123456", Role: "student", ApparID: "AP1"}
	err := svc.Signup(ctx, req)
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, userRepo, jwtService := newTestAuthService(t)
	ctx := context.Background()

	hash, err := auth.HashPassword("pw123456")
	require.NoError(t, err)

	userRepo.EXPECT().GetUserByEmail(ctx, "a@x.com").Return(&models.User{
		ID:       10,
		Name:     "A",
		Email:    "a@x.com",
		Password: hash,
		RoleType: models.RoleStudent,
	}, nil)

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "a@x.com", Password: "pw123456"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "student", resp.Role)
	assert.Equal(t, "A", resp.Name)

	claims, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(10), claims.UserID)
	assert.Equal(t, "student", claims.Role)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, userRepo, _ := newTestAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().GetUserByEmail(ctx, "nobody@x.com").Return(nil, user.ErrUserNotFound)

	_, err := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@x.com", Password: "pw123456"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, userRepo, _ := newTestAuthService(t)
	ctx := context.Background()

	hash, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	userRepo.EXPECT().GetUserByEmail(ctx, "a@x.com").Return(&models.User{
		ID:       10,
		Email:    "a@x.com",
		Password: hash,
		RoleType: models.RoleStudent,
	}, nil)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "a@x.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
