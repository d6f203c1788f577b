package domain

import "time"

// CompanyRole defines the possible roles a user can have within a company.
type CompanyRole string

const (
	RoleAdmin    CompanyRole = "ADMIN"
	RoleMember   CompanyRole = "MEMBER"
	RoleReadOnly CompanyRole = "READONLY" // Users with read-only access to company data
)

// rank orders roles so that a higher role satisfies any lower requirement.
func (r CompanyRole) rank() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleMember:
		return 2
	case RoleReadOnly:
		return 1
	}
	return 0
}

// Satisfies reports whether r grants at least the required role.
func (r CompanyRole) Satisfies(required CompanyRole) bool {
	return r.rank() > 0 && r.rank() >= required.rank()
}

// CompanyMembership represents the membership of a user in a company.
type CompanyMembership struct {
	UserID    string      `json:"userID"`
	CompanyID string      `json:"companyID"`
	Role      CompanyRole `json:"role"`
	JoinedAt  time.Time   `json:"joinedAt"`
}
