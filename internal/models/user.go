package models

import "gorm.io/gorm"

// User represents a user in the system.
type User struct {
	gorm.Model
	Nickname     string `gorm:"size:255;unique;not null"`
	Email        string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:50;not null;default:'user';index"`

	// Public profile attributes.
	FirstName string `gorm:"size:255"`
	LastName  string `gorm:"size:255"`
	Age       int
	Gender    string   `gorm:"size:20"`
	Bio       string
	PhotoURL  string   `gorm:"size:512"`
	Skills    []*Skill `gorm:"many2many:user_skills;"`
}
