package models

import "time"

// CompanyMember links a user to a company with a role.
type CompanyMember struct {
	UserID    string    `db:"user_id"`
	CompanyID string    `db:"company_id"`
	Role      string    `db:"role"`
	JoinedAt  time.Time `db:"joined_at"`
}
