package dto

// SignupRequest represents a signup request for any role. Role-specific
// fields are honored only for the matching role; the rest are ignored.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`

	// student fields
	ApparID string `json:"apparId,omitempty"`
	DOB     string `json:"dob,omitempty"` // YYYY-MM-DD
	Phone   string `json:"phone,omitempty"`

	// institute fields
	RecognitionNumber string `json:"recognitionNumber,omitempty"`

	// company fields
	CompanyName string `json:"companyName,omitempty"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Role    string `json:"role"`
	Name    string `json:"name"`
}
