package models

import (
	"strings"
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	Email           string    `json:"email" gorm:"uniqueIndex;not null"`
	Username        string    `json:"username" gorm:"uniqueIndex;not null"`
	Password        string    `json:"-" gorm:"not null"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Bio             string    `json:"bio" gorm:"size:500"`
	Location        string    `json:"location" gorm:"size:100"`
	Avatar          string    `json:"avatar"`
	Availability    string    `json:"availability" gorm:"size:50"`
	ExperienceLevel string    `json:"experience_level" gorm:"size:50"`
	ResponseTime    string    `json:"response_time" gorm:"size:100"`
	Rating          float64   `json:"rating" gorm:"type:decimal(3,2);default:0"`
	CompletedSwaps  uint      `json:"completed_swaps" gorm:"default:0"`
	IsAdmin         bool      `json:"is_admin" gorm:"default:false"`
	IsBanned        bool      `json:"is_banned" gorm:"default:false"`
	IsActive        bool      `json:"is_active" gorm:"default:true"`
	Role            UserRole  `json:"role" gorm:"default:'user'"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
