package models

import "time"

// Issue represents a citizen-submitted request joined with its owner and municipality
type Issue struct {
	ID               int       `json:"id"`
	UserID           int       `json:"userId"`
	MunicipalityID   int       `json:"municipalityId"`
	Title            *string   `json:"title"`
	Description      *string   `json:"description"`
	Location         *string   `json:"location"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	ImagePath        *string   `json:"imagePath"`      // relative to the uploads root in storage
	AfterImagePath   *string   `json:"afterImagePath"` // relative to the uploads root in storage
	CitizenName      string    `json:"citizenName"`
	MunicipalityName string    `json:"municipalityName"`
}

// HistoryEntry is a single status change of an issue
type HistoryEntry struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
	ChangedBy *int      `json:"changed_by"`
}

// IssueDetail is an issue together with its status timeline
type IssueDetail struct {
	Issue    Issue          `json:"issue"`
	Timeline []HistoryEntry `json:"timeline"`
}
