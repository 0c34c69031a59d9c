package models

import "time"

// Profile is the portfolio owner. A profile created by seeding or by the
// profile upsert endpoint has no password and cannot sign in; the hash is
// set only through signup and is never serialized.
type Profile struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Name      string      `gorm:"not null" json:"name"`
	Email     string      `gorm:"uniqueIndex;not null" json:"email"`
	Password  *string     `gorm:"column:password" json:"-"`
	Education []Education `gorm:"foreignKey:ProfileID" json:"education"`
	Skills    []Skill     `gorm:"foreignKey:ProfileID" json:"skills"`
	Projects  []Project   `gorm:"foreignKey:ProfileID" json:"projects"`
	Links     []Link      `gorm:"foreignKey:ProfileID" json:"links"`
	CreatedAt time.Time   `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time   `gorm:"not null" json:"updatedAt"`
}

type Education struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Degree      string `gorm:"not null" json:"degree"`
	Institution string `gorm:"not null" json:"institution"`
	StartYear   int    `gorm:"not null" json:"startYear"`
	EndYear     int    `gorm:"not null" json:"endYear"`
	ProfileID   uint   `gorm:"not null;index" json:"profileId"`
}
