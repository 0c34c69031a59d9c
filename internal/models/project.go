package models

const DefaultProjectWork = "Personal Project"

// OpenSourceWork labels projects imported from a GitHub URL.
const OpenSourceWork = "Open Source"

type Project struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description"`
	Work        string         `gorm:"not null" json:"work"`
	ProfileID   uint           `gorm:"not null;index" json:"profileId"`
	Skills      []ProjectSkill `gorm:"foreignKey:ProjectID" json:"skills"`
	Links       []Link         `gorm:"foreignKey:ProjectID" json:"links"`
}

// ProjectSkill joins a project to one of the profile's skills.
type ProjectSkill struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProjectID uint   `gorm:"not null;index" json:"projectId"`
	SkillID   uint   `gorm:"not null;index" json:"skillId"`
	Skill     *Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}
