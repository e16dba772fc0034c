package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost matches the cost the original deployment hashed with
const BcryptCost = 10

// HashPassword hashes a raw password with bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword compares a raw password against a stored hash
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
