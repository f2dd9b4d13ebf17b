package models

import "time"

type SkillCategory string

const (
	CategoryProgramming SkillCategory = "programming"
	CategoryDesign      SkillCategory = "design"
	CategoryMarketing   SkillCategory = "marketing"
	CategoryBusiness    SkillCategory = "business"
	CategoryData        SkillCategory = "data"
	CategoryMobile      SkillCategory = "mobile"
	CategoryOther       SkillCategory = "other"
)

type Skill struct {
	ID          uint          `json:"id" gorm:"primarykey"`
	Name        string        `json:"name" gorm:"uniqueIndex;not null"`
	Category    SkillCategory `json:"category" gorm:"size:50;not null"`
	Description string        `json:"description"`
	CreatedAt   time.Time     `json:"created_at"`
}

type SkillType string

const (
	SkillOffered SkillType = "offered"
	SkillWanted  SkillType = "wanted"
)

type ModerationStatus string

const (
	StatusPending  ModerationStatus = "pending"
	StatusApproved ModerationStatus = "approved"
	StatusRejected ModerationStatus = "rejected"
)

// UserSkill links a user to a skill they offer or want. Each claim goes
// through moderation before non-admins can see it.
type UserSkill struct {
	ID               uint             `json:"id" gorm:"primarykey"`
	UserID           uint             `json:"user_id" gorm:"not null;uniqueIndex:idx_user_skill_type"`
	User             User             `json:"-" gorm:"foreignKey:UserID"`
	SkillID          uint             `json:"skill" gorm:"not null;uniqueIndex:idx_user_skill_type"`
	Skill            Skill            `json:"-" gorm:"foreignKey:SkillID"`
	SkillType        SkillType        `json:"skill_type" gorm:"size:10;not null;uniqueIndex:idx_user_skill_type"`
	ProficiencyLevel string           `json:"proficiency_level" gorm:"size:20"`
	Status           ModerationStatus `json:"status" gorm:"size:10;default:'pending'"`
	RejectionReason  string           `json:"rejection_reason"`
	CreatedAt        time.Time        `json:"created_at"`
}
