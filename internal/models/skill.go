package models

type Skill struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null;index" json:"name"`
	ProfileID uint   `gorm:"not null;index" json:"profileId"`
}

// SkillCount is a read model for the top-skills leaderboard: one row per
// skill name with its occurrence count, ordered by descending count.
type SkillCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
