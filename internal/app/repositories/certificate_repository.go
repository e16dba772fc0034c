package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apaar/credhub/internal/app/models"
	"github.com/apaar/credhub/internal/pkg/logger"
)

// ICertificateRepository defines the interface for certificate storage.
// The store is append-only: there is no update or delete.
type ICertificateRepository interface {
	Append(ctx context.Context, cert *models.Certificate) error
	ListByStudentUserID(ctx context.Context, studentUserID int64) ([]models.Certificate, error)
}

// CertificateRepository handles certificate database operations
type CertificateRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCertificateRepository creates a new CertificateRepository
func NewCertificateRepository(db *pgxpool.Pool) *CertificateRepository {
	return &CertificateRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Append inserts one certificate row for a student. A single INSERT is
// an atomic append, so two concurrent issuances against the same
// student both land; there is no read-modify-write of a list.
func (r *CertificateRepository) Append(ctx context.Context, cert *models.Certificate) error {
	sql, args, err := r.sb.Insert("certificates").
		Columns("student_user_id", "title", "issued_by", "issue_date").
		Values(cert.StudentUserID, cert.Title, cert.IssuedBy, cert.IssueDate).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building append certificate SQL")
		return fmt.Errorf("failed to build append certificate query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&cert.ID); err != nil {
		logger.Error().Err(err).Int64("studentUserID", cert.StudentUserID).Str("title", cert.Title).Msg("Error executing append certificate query")
		return fmt.Errorf("error appending certificate: %w", err)
	}

	logger.Info().Int64("studentUserID", cert.StudentUserID).Str("title", cert.Title).Str("issuedBy", cert.IssuedBy).Msg("Certificate issued")
	return nil
}

// ListByStudentUserID returns a student's certificates in issuance
// order. A student with no certificates gets an empty list, not an
// error.
func (r *CertificateRepository) ListByStudentUserID(ctx context.Context, studentUserID int64) ([]models.Certificate, error) {
	sql, args, err := r.sb.Select("id", "student_user_id", "title", "issued_by", "to_char(issue_date, 'YYYY-MM-DD')").
		From("certificates").
		Where(squirrel.Eq{"student_user_id": studentUserID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list certificates SQL")
		return nil, fmt.Errorf("failed to build list certificates query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentUserID", studentUserID).Msg("Error querying certificates")
		return nil, fmt.Errorf("error listing certificates: %w", err)
	}
	defer rows.Close()

	certificates := make([]models.Certificate, 0)
	for rows.Next() {
		var cert models.Certificate
		if err := rows.Scan(&cert.ID, &cert.StudentUserID, &cert.Title, &cert.IssuedBy, &cert.IssueDate); err != nil {
			return nil, fmt.Errorf("error scanning certificate row: %w", err)
		}
		certificates = append(certificates, cert)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating certificate rows: %w", err)
	}

	return certificates, nil
}
