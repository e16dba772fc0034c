package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/apaar/credhub/internal/app/models"
	"github.com/apaar/credhub/internal/db"
	"github.com/apaar/credhub/internal/pkg/auth"
	"github.com/apaar/credhub/internal/pkg/dberrors"
)

// demoAccount describes one seeded account per role, for local demos.
type demoAccount struct {
	name     string
	email    string
	password string
	role     models.RoleType

	apparID           string // student
	recognitionNumber string // institute
	companyName       string // company
}

var demoAccounts = []demoAccount{
	{
		name:     "Asha Verma",
		email:    "student@demo.credhub.app",
		password: "student123",
		role:     models.RoleStudent,
		apparID:  "APPAR-DEMO-1",
	},
	{
		name:              "Demo Institute of Technology",
		email:             "institute@demo.credhub.app",
		password:          "institute123",
		role:              models.RoleInstitute,
		recognitionNumber: "REC-2024-001",
	},
	{
		name:        "Demo Hiring Co",
		email:       "company@demo.credhub.app",
		password:    "company123",
		role:        models.RoleCompany,
		companyName: "Demo Hiring Co",
	},
}

// CreateDemoAccounts seeds one account per role when they don't exist
// yet. Each account is created atomically with its role row.
func CreateDemoAccounts(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating demo accounts...")

	for _, account := range demoAccounts {
		account := account
		err := database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, account.email).Scan(&exists); err != nil {
				return fmt.Errorf("failed to check demo account: %w", err)
			}
			if exists {
				return nil
			}

			hash, err := auth.HashPassword(account.password)
			if err != nil {
				return fmt.Errorf("failed to hash demo password: %w", err)
			}

			var userID int64
			err = tx.QueryRow(ctx, `
				INSERT INTO users (name, email, password, role_type)
				VALUES ($1, $2, $3, $4)
				RETURNING id`,
				account.name, account.email, hash, account.role).Scan(&userID)
			if err != nil {
				// Another instance seeding concurrently won the insert
				if dberrors.IsUniqueViolation(err) {
					return nil
				}
				return fmt.Errorf("failed to create demo user: %w", err)
			}

			switch account.role {
			case models.RoleStudent:
				_, err = tx.Exec(ctx, `INSERT INTO students (user_id, appar_id) VALUES ($1, $2)`, userID, account.apparID)
			case models.RoleInstitute:
				_, err = tx.Exec(ctx, `INSERT INTO institutes (user_id, recognition_number) VALUES ($1, $2)`, userID, account.recognitionNumber)
			case models.RoleCompany:
				_, err = tx.Exec(ctx, `INSERT INTO companies (user_id, company_name) VALUES ($1, $2)`, userID, account.companyName)
			}
			if err != nil {
				return fmt.Errorf("failed to create demo role row: %w", err)
			}

			lgr.Info().Str("email", account.email).Str("role", string(account.role)).Msg("Demo account created")
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}
