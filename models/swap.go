package models

import "time"

type SwapStatus string

const (
	SwapPending   SwapStatus = "pending"
	SwapAccepted  SwapStatus = "accepted"
	SwapRejected  SwapStatus = "rejected"
	SwapCompleted SwapStatus = "completed"
	SwapCancelled SwapStatus = "cancelled"
)

// SwapRequest is a proposal from one user to trade a skill with another.
// Only the recipient may move it out of pending.
type SwapRequest struct {
	ID             uint       `json:"id" gorm:"primarykey"`
	FromUserID     uint       `json:"-" gorm:"not null"`
	FromUser       User       `json:"from_user" gorm:"foreignKey:FromUserID"`
	ToUserID       uint       `json:"-" gorm:"not null"`
	ToUser         User       `json:"to_user" gorm:"foreignKey:ToUserID"`
	SkillOfferedID uint       `json:"-" gorm:"not null"`
	SkillOffered   Skill      `json:"skill_offered" gorm:"foreignKey:SkillOfferedID"`
	SkillWantedID  uint       `json:"-" gorm:"not null"`
	SkillWanted    Skill      `json:"skill_wanted" gorm:"foreignKey:SkillWantedID"`
	Message        string     `json:"message" gorm:"type:text"`
	Duration       string     `json:"duration" gorm:"size:20"`
	PreferredTime  string     `json:"preferred_time" gorm:"size:30"`
	Status         SwapStatus `json:"status" gorm:"size:20;default:'pending'"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// SwapSession is a scheduled occurrence of an accepted swap, at most one per
// request.
type SwapSession struct {
	ID            uint        `json:"id" gorm:"primarykey"`
	SwapRequestID uint        `json:"swap_request_id" gorm:"uniqueIndex;not null"`
	SwapRequest   SwapRequest `json:"swap_request" gorm:"foreignKey:SwapRequestID"`
	ScheduledDate time.Time   `json:"scheduled_date"`
	Completed     bool        `json:"completed" gorm:"default:false"`
	Notes         string      `json:"notes"`
	CreatedAt     time.Time   `json:"created_at"`
}

// SwapRating is a 1-5 star rating of a session, one per (session, rater).
type SwapRating struct {
	ID            uint        `json:"id" gorm:"primarykey"`
	SwapSessionID uint        `json:"swap_session_id" gorm:"not null;uniqueIndex:idx_session_rater"`
	SwapSession   SwapSession `json:"-" gorm:"foreignKey:SwapSessionID"`
	FromUserID    uint        `json:"-" gorm:"not null;uniqueIndex:idx_session_rater"`
	FromUser      User        `json:"from_user" gorm:"foreignKey:FromUserID"`
	Rating        int         `json:"rating" gorm:"not null"`
	Comment       string      `json:"comment"`
	CreatedAt     time.Time   `json:"created_at"`
}
