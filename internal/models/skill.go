package models

import "gorm.io/gorm"

// Skill represents a skill tag users can attach to their profile
// (e.g., "Go", "React", "Distributed Systems").
type Skill struct {
	gorm.Model
	Name string `gorm:"size:100;unique;not null"`
}
