package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apaar/credhub/internal/app/models"
	"github.com/apaar/credhub/internal/pkg/logger"
)

var ErrStudentNotFound = ErrUserNotFound

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateStudent inserts a student row inside the caller's transaction
func (r *StudentRepository) CreateStudent(ctx context.Context, tx pgx.Tx, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("user_id", "appar_id", "dob", "phone").
		Values(student.UserID, student.ApparID, student.DOB, student.Phone).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", student.UserID).Str("apparID", student.ApparID).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	logger.Info().Int64("userID", student.UserID).Str("apparID", student.ApparID).Msg("Student created successfully")
	return nil
}

// GetStudentByUserID retrieves a student by user ID
func (r *StudentRepository) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	var student models.Student
	sql, args, err := r.sb.Select("id", "user_id", "appar_id", "dob", "phone").
		From("students").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by user ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.UserID, &student.ApparID, &student.DOB, &student.Phone)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Warn().Int64("userID", userID).Msg("Student not found by user ID")
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetStudentByApparID retrieves a student by APPAR ID, with the common
// user fields attached. The match is exact and case-sensitive; when the
// same APPAR ID was registered twice, the earliest registration wins.
func (r *StudentRepository) GetStudentByApparID(ctx context.Context, apparID string) (*models.Student, error) {
	var (
		student models.Student
		account models.User
	)
	sql, args, err := r.sb.Select(
		"s.id", "s.user_id", "s.appar_id", "s.dob", "s.phone",
		"u.id", "u.name", "u.email", "u.role_type").
		From("students s").
		Join("users u ON u.id = s.user_id").
		Where(squirrel.Eq{"s.appar_id": apparID, "u.role_type": models.RoleStudent}).
		OrderBy("s.id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by APPAR ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.UserID, &student.ApparID, &student.DOB, &student.Phone,
		&account.ID, &account.Name, &account.Email, &account.RoleType)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Warn().Str("apparID", apparID).Msg("Student not found by APPAR ID")
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Str("apparID", apparID).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	student.User = &account
	return &student, nil
}
