package dto

import "github.com/apaar/credhub/internal/app/models"

// IssueCertificateRequest represents an institute issuing a certificate
// to a student, addressed by APPAR ID.
type IssueCertificateRequest struct {
	StudentApparID string `json:"studentApparId"`
	Certificate    string `json:"certificate"`
}

// CertificateListResponse represents a student's own certificate list
type CertificateListResponse struct {
	Success      bool                 `json:"success"`
	Certificates []models.Certificate `json:"certificates"`
}

// CheckStudentResponse represents the employer-facing verification view
// of a student and their certificates.
type CheckStudentResponse struct {
	Success      bool                 `json:"success"`
	Name         string               `json:"name"`
	ApparID      string               `json:"apparId"`
	Certificates []models.Certificate `json:"certificates"`
}
