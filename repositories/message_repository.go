package repositories

import (
	"time"

	"skillswap-api/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(message *models.PlatformMessage) error
	GetByID(id uint) (*models.PlatformMessage, error)
	Update(message *models.PlatformMessage) error
	ListAll() ([]models.PlatformMessage, error)
	ListActive() ([]models.PlatformMessage, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.PlatformMessage) error {
	return r.db.Create(message).Error
}

func (r *messageRepository) GetByID(id uint) (*models.PlatformMessage, error) {
	var message models.PlatformMessage
	err := r.db.First(&message, id).Error
	return &message, err
}

func (r *messageRepository) Update(message *models.PlatformMessage) error {
	return r.db.Save(message).Error
}

func (r *messageRepository) ListAll() ([]models.PlatformMessage, error) {
	var messages []models.PlatformMessage
	err := r.db.Order("created_at desc").Find(&messages).Error
	return messages, err
}

func (r *messageRepository) ListActive() ([]models.PlatformMessage, error) {
	var messages []models.PlatformMessage
	err := r.db.Where("is_active = ?", true).
		Where("expires_at IS NULL OR expires_at > ?", time.Now()).
		Order("created_at desc").
		Find(&messages).Error
	return messages, err
}
