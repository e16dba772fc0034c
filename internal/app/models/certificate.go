package models

// Certificate defines one issued credential, based on the
// 'certificates' table. Rows exist only for student users and are
// append-only through the API; IssuedBy is a snapshot of the issuing
// institute's display name at issuance time, not a live reference.
type Certificate struct {
	ID            int64  `json:"-" db:"id"`
	StudentUserID int64  `json:"-" db:"student_user_id"`
	Title         string `json:"title" db:"title"`
	IssuedBy      string `json:"issuedBy" db:"issued_by"`
	IssueDate     string `json:"issueDate" db:"issue_date"` // YYYY-MM-DD, set server-side
}
