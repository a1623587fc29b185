package domain

import "time"

// User represents an application user. Department determines which approval
// actions the user may perform; it is resolved server-side on every request.
type User struct {
	UserID       string     `json:"userID"` // Primary Key (e.g., UUID)
	Username     string     `json:"username"`
	Name         string     `json:"name"`
	Department   Department `json:"department"`
	PasswordHash string     `json:"-"`

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
