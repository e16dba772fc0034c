package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apaar/credhub/internal/app/models"
	"github.com/apaar/credhub/internal/pkg/logger"
)

// CompanyRepository handles company database operations
type CompanyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateCompany inserts a company row inside the caller's transaction
func (r *CompanyRepository) CreateCompany(ctx context.Context, tx pgx.Tx, company *models.Company) error {
	sql, args, err := r.sb.Insert("companies").
		Columns("user_id", "company_name").
		Values(company.UserID, company.CompanyName).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create company SQL")
		return fmt.Errorf("failed to build create company query: %w", err)
	}

	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", company.UserID).Msg("Error executing create company query")
		return fmt.Errorf("error creating company: %w", err)
	}

	return nil
}
