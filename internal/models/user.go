package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email    string       `gorm:"unique" json:"email"`
	Password string       `json:"-"`
	Role     string       `gorm:"default:user" json:"role"`
	Verified bool         `gorm:"default:false" json:"verified"`
	Profile  *UserProfile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}
