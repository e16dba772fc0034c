package repositories

import (
	"github.com/apaar/credhub/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	CertificateRepository *CertificateRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(database),
		CertificateRepository: NewCertificateRepository(database.Pool),
	}
}
