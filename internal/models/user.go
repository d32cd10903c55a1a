package models

// Role is the authoritative role column of a user
type Role string

// Role constants
const (
	RoleCitizen      Role = "citizen"
	RoleMunicipality Role = "municipality"
	RoleAdmin        Role = "admin"
)

// AccountStatus is the authoritative account status column of a user
type AccountStatus string

// AccountStatus constants
const (
	AccountStatusActive  AccountStatus = "active"
	AccountStatusBlocked AccountStatus = "blocked"
)

// User represents a user in the system
type User struct {
	ID             int           `json:"id"`
	Username       string        `json:"username"`
	Email          *string       `json:"email,omitempty"`
	PasswordHash   string        `json:"-"` // Never serialize password hash
	Role           Role          `json:"role"`
	AccountStatus  AccountStatus `json:"accountStatus"`
	MunicipalityID *int          `json:"municipalityId,omitempty"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// AdminIdentity is the identity of the logged in admin returned by login and /me
type AdminIdentity struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// LoginRequest represents the admin login body
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse wraps the admin identity, null when there is no admin session
type LoginResponse struct {
	Admin *AdminIdentity `json:"admin"`
}

// SuccessResponse is returned by mutating endpoints
type SuccessResponse struct {
	Success bool `json:"success"`
}
