package models

import "time"

// PlatformMessage is an admin-authored broadcast shown to users while active
// and unexpired.
type PlatformMessage struct {
	ID        uint       `json:"id" gorm:"primarykey"`
	Title     string     `json:"title" gorm:"size:200;not null"`
	Body      string     `json:"body" gorm:"type:text"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	ExpiresAt *time.Time `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
}
