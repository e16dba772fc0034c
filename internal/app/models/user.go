package models

import (
	"time"
)

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent   RoleType = "student"
	RoleInstitute RoleType = "institute"
	RoleCompany   RoleType = "company"
)

// ValidRole reports whether a client-supplied role string names a known
// role. Unknown roles are rejected at signup, never stored.
func ValidRole(role string) bool {
	switch RoleType(role) {
	case RoleStudent, RoleInstitute, RoleCompany:
		return true
	}
	return false
}

// User defines the common account fields, based on the 'users' table.
// Role-specific fields live in the satellite tables (students,
// institutes, companies) so that, say, a company row can never carry a
// date of birth.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	RoleType  RoleType  `json:"role" db:"role_type"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Student defines the student model based on the 'students' table.
// ApparID is an externally issued identifier used as a lookup key; it
// is not guaranteed unique in practice.
type Student struct {
	ID      int64   `json:"id" db:"id"`
	UserID  int64   `json:"userId" db:"user_id"`
	ApparID string  `json:"apparId" db:"appar_id"`
	DOB     *string `json:"dob,omitempty" db:"dob"`
	Phone   *string `json:"phone,omitempty" db:"phone"`
	User    *User   `json:"user,omitempty"` // Relation, no db tag
}

// Institute defines the institute model based on the 'institutes' table
type Institute struct {
	ID                int64   `json:"id" db:"id"`
	UserID            int64   `json:"userId" db:"user_id"`
	RecognitionNumber *string `json:"recognitionNumber,omitempty" db:"recognition_number"`
	User              *User   `json:"user,omitempty"` // Relation, no db tag
}

// Company defines the company model based on the 'companies' table
type Company struct {
	ID          int64  `json:"id" db:"id"`
	UserID      int64  `json:"userId" db:"user_id"`
	CompanyName string `json:"companyName" db:"company_name"`
	User        *User  `json:"user,omitempty"` // Relation, no db tag
}
