package models

import "time"

// ApplicationStatus represents the review state of an official application
type ApplicationStatus string

// ApplicationStatus constants
const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// OfficialApplication is a request by a prospective official to join a municipality
type OfficialApplication struct {
	ID                int               `json:"id"`
	MunicipalityID    *int              `json:"municipality_id"`
	UserID            *int              `json:"user_id"`
	FullName          *string           `json:"full_name"`
	Email             *string           `json:"email"`
	Status            ApplicationStatus `json:"status"`
	CreatedAt         time.Time         `json:"created_at"`
	ReviewedAt        *time.Time        `json:"reviewed_at"`
	ReviewedByAdminID *int              `json:"reviewed_by_admin_id"`
	MunicipalityName  *string           `json:"municipalityName"`
	ReviewedBy        *string           `json:"reviewedBy"`
}

// Official is a municipality user with the number of issues they completed
type Official struct {
	ID                 int           `json:"id"`
	Username           string        `json:"username"`
	Email              *string       `json:"email"`
	AccountStatus      AccountStatus `json:"accountStatus"`
	MunicipalityName   *string       `json:"municipalityName"`
	TotalIssuesHandled int           `json:"totalIssuesHandled"`
}
