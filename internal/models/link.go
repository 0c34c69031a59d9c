package models

const LinkTypeGitHub = "github"

// Link is an external URL attached to either the profile (github, linkedin,
// portfolio) or a single project (demo, github). Exactly one of ProfileID
// and ProjectID is set.
type Link struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Type      string `gorm:"not null" json:"type"`
	URL       string `gorm:"column:url;not null" json:"url"`
	ProfileID *uint  `gorm:"index" json:"profileId,omitempty"`
	ProjectID *uint  `gorm:"index" json:"projectId,omitempty"`
}
