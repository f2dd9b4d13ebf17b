package repositories

import (
	"skillswap-api/models"

	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(session *models.SwapSession) error
	GetByID(id uint) (*models.SwapSession, error)
	GetByRequestID(requestID uint) (*models.SwapSession, error)
	ListForUser(userID uint) ([]models.SwapSession, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) preload(db *gorm.DB) *gorm.DB {
	return db.Preload("SwapRequest").
		Preload("SwapRequest.FromUser").
		Preload("SwapRequest.ToUser").
		Preload("SwapRequest.SkillOffered").
		Preload("SwapRequest.SkillWanted")
}

func (r *sessionRepository) Create(session *models.SwapSession) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) GetByID(id uint) (*models.SwapSession, error) {
	var session models.SwapSession
	err := r.preload(r.db).First(&session, id).Error
	return &session, err
}

func (r *sessionRepository) GetByRequestID(requestID uint) (*models.SwapSession, error) {
	var session models.SwapSession
	err := r.db.Where("swap_request_id = ?", requestID).First(&session).Error
	return &session, err
}

func (r *sessionRepository) ListForUser(userID uint) ([]models.SwapSession, error) {
	var sessions []models.SwapSession
	err := r.preload(r.db).
		Joins("JOIN swap_requests ON swap_requests.id = swap_sessions.swap_request_id").
		Where("swap_requests.from_user_id = ? OR swap_requests.to_user_id = ?", userID, userID).
		Order("swap_sessions.created_at desc").
		Find(&sessions).Error
	return sessions, err
}
