package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/apaar/credhub/internal/app/models"
	"github.com/apaar/credhub/internal/app/repositories/user"
	"github.com/apaar/credhub/internal/db"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	// Account creation. Each call inserts the user row and its role row
	// in one transaction, so a failed role insert never strands a bare
	// user behind a taken email.
	CreateStudentAccount(ctx context.Context, u *models.User, student *models.Student) (int64, error)
	CreateInstituteAccount(ctx context.Context, u *models.User, institute *models.Institute) (int64, error)
	CreateCompanyAccount(ctx context.Context, u *models.User, company *models.Company) (int64, error)

	// Lookups
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error)
	GetStudentByApparID(ctx context.Context, apparID string) (*models.Student, error)
}

// UserRepository combines all user-related repositories
type UserRepository struct {
	database  *db.PostgresDB
	common    *user.Repository
	student   *user.StudentRepository
	institute *user.InstituteRepository
	company   *user.CompanyRepository
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{
		database:  database,
		common:    user.NewRepository(database.Pool),
		student:   user.NewStudentRepository(database.Pool),
		institute: user.NewInstituteRepository(database.Pool),
		company:   user.NewCompanyRepository(database.Pool),
	}
}

// CreateStudentAccount creates a user row and its student row atomically
func (r *UserRepository) CreateStudentAccount(ctx context.Context, u *models.User, student *models.Student) (int64, error) {
	var userID int64
	err := r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		id, err := r.common.CreateUser(ctx, tx, u)
		if err != nil {
			return err
		}
		student.UserID = id
		if err := r.student.CreateStudent(ctx, tx, student); err != nil {
			return err
		}
		userID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return userID, nil
}

// CreateInstituteAccount creates a user row and its institute row atomically
func (r *UserRepository) CreateInstituteAccount(ctx context.Context, u *models.User, institute *models.Institute) (int64, error) {
	var userID int64
	err := r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		id, err := r.common.CreateUser(ctx, tx, u)
		if err != nil {
			return err
		}
		institute.UserID = id
		if err := r.institute.CreateInstitute(ctx, tx, institute); err != nil {
			return err
		}
		userID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return userID, nil
}

// CreateCompanyAccount creates a user row and its company row atomically
func (r *UserRepository) CreateCompanyAccount(ctx context.Context, u *models.User, company *models.Company) (int64, error) {
	var userID int64
	err := r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		id, err := r.common.CreateUser(ctx, tx, u)
		if err != nil {
			return err
		}
		company.UserID = id
		if err := r.company.CreateCompany(ctx, tx, company); err != nil {
			return err
		}
		userID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return userID, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.common.GetUserByEmail(ctx, email)
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return r.common.GetUserByID(ctx, id)
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.common.EmailExists(ctx, email)
}

// GetStudentByUserID retrieves a student by user ID
func (r *UserRepository) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	return r.student.GetStudentByUserID(ctx, userID)
}

// GetStudentByApparID retrieves a student (with user fields) by APPAR ID
func (r *UserRepository) GetStudentByApparID(ctx context.Context, apparID string) (*models.Student, error) {
	return r.student.GetStudentByApparID(ctx, apparID)
}
