package models

import "time"

type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Username        string `json:"username" binding:"required,min=3,max=50"`
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
	// Ignored on purpose: self-registration can never grant a role.
	Role string `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

// Profile is the full user representation, with approved skill names
// flattened in.
type Profile struct {
	User
	FullName      string   `json:"full_name"`
	SkillsOffered []string `json:"skills_offered"`
	SkillsWanted  []string `json:"skills_wanted"`
}

type UpdateProfileRequest struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Bio             *string `json:"bio" binding:"omitempty,max=500"`
	Location        *string `json:"location" binding:"omitempty,max=100"`
	Availability    *string `json:"availability" binding:"omitempty,oneof=weekdays weekends evenings mornings flexible"`
	ExperienceLevel *string `json:"experience_level" binding:"omitempty,oneof=beginner intermediate advanced expert"`
	ResponseTime    *string `json:"response_time" binding:"omitempty,oneof=1hour 3hours 24hours 2-3days"`
}

// UserListItem is the trimmed card shown in search results.
type UserListItem struct {
	ID            uint     `json:"id"`
	FullName      string   `json:"full_name"`
	Avatar        string   `json:"avatar"`
	Location      string   `json:"location"`
	Availability  string   `json:"availability"`
	Rating        float64  `json:"rating"`
	Bio           string   `json:"bio"`
	SkillsOffered []string `json:"skills_offered"`
	SkillsWanted  []string `json:"skills_wanted"`
}

type CreateUserSkillRequest struct {
	SkillName        string    `json:"skill_name" binding:"required,min=1,max=100"`
	SkillType        SkillType `json:"skill_type" binding:"required,oneof=offered wanted"`
	ProficiencyLevel string    `json:"proficiency_level" binding:"omitempty,oneof=beginner intermediate advanced expert"`
}

// UserSkillView joins the association with its skill for API responses.
type UserSkillView struct {
	ID               uint             `json:"id"`
	SkillID          uint             `json:"skill"`
	SkillName        string           `json:"skill_name"`
	SkillCategory    SkillCategory    `json:"skill_category"`
	SkillType        SkillType        `json:"skill_type"`
	ProficiencyLevel string           `json:"proficiency_level"`
	Status           ModerationStatus `json:"status"`
	RejectionReason  string           `json:"rejection_reason,omitempty"`
}

type CreateSwapRequest struct {
	ToUserID       uint   `json:"to_user_id" binding:"required"`
	SkillOfferedID uint   `json:"skill_offered_id" binding:"required"`
	SkillWantedID  uint   `json:"skill_wanted_id" binding:"required"`
	Message        string `json:"message" binding:"required"`
	Duration       string `json:"duration" binding:"required,oneof=30min 1hour 1.5hours 2hours flexible"`
	PreferredTime  string `json:"preferred_time" binding:"required,oneof=weekday-morning weekday-afternoon weekday-evening weekend-morning weekend-afternoon weekend-evening flexible"`
	// Any smuggled status is discarded; new requests always start pending.
	Status string `json:"status,omitempty"`
}

type UpdateSwapStatusRequest struct {
	Status SwapStatus `json:"status" binding:"required"`
}

type CreateSessionRequest struct {
	SwapRequestID uint      `json:"swap_request_id" binding:"required"`
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
	Notes         string    `json:"notes"`
}

type CreateRatingRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

type RejectSkillRequest struct {
	RejectionReason string `json:"rejection_reason"`
}

type CreateMessageRequest struct {
	Title     string     `json:"title" binding:"required,max=200"`
	Body      string     `json:"body" binding:"required"`
	IsActive  *bool      `json:"is_active"`
	ExpiresAt *time.Time `json:"expires_at"`
}

type UpdateMessageRequest struct {
	Title     *string    `json:"title" binding:"omitempty,max=200"`
	Body      *string    `json:"body"`
	IsActive  *bool      `json:"is_active"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// AdminUserSkillRow is the moderation queue entry, association plus owner.
type AdminUserSkillRow struct {
	UserSkillView
	UserID   uint   `json:"user_id"`
	UserName string `json:"user_name"`
}

// AdminUserRow is the compact listing the admin console renders.
type AdminUserRow struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	IsBanned  bool      `json:"is_banned"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}
