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

// InstituteRepository handles institute database operations
type InstituteRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInstituteRepository creates a new InstituteRepository
func NewInstituteRepository(db *pgxpool.Pool) *InstituteRepository {
	return &InstituteRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateInstitute inserts an institute row inside the caller's transaction
func (r *InstituteRepository) CreateInstitute(ctx context.Context, tx pgx.Tx, institute *models.Institute) error {
	sql, args, err := r.sb.Insert("institutes").
		Columns("user_id", "recognition_number").
		Values(institute.UserID, institute.RecognitionNumber).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create institute SQL")
		return fmt.Errorf("failed to build create institute query: %w", err)
	}

	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", institute.UserID).Msg("Error executing create institute query")
		return fmt.Errorf("error creating institute: %w", err)
	}

	return nil
}
