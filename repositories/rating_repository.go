package repositories

import (
	"skillswap-api/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(rating *models.SwapRating) error
	GetBySessionAndUser(sessionID, userID uint) (*models.SwapRating, error)
	ListAll() ([]models.SwapRating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(rating *models.SwapRating) error {
	return r.db.Create(rating).Error
}

func (r *ratingRepository) GetBySessionAndUser(sessionID, userID uint) (*models.SwapRating, error) {
	var rating models.SwapRating
	err := r.db.Where("swap_session_id = ? AND from_user_id = ?", sessionID, userID).First(&rating).Error
	return &rating, err
}

func (r *ratingRepository) ListAll() ([]models.SwapRating, error) {
	var ratings []models.SwapRating
	err := r.db.Preload("SwapSession").
		Preload("SwapSession.SwapRequest").
		Preload("SwapSession.SwapRequest.FromUser").
		Preload("SwapSession.SwapRequest.ToUser").
		Preload("SwapSession.SwapRequest.SkillOffered").
		Preload("SwapSession.SwapRequest.SkillWanted").
		Preload("FromUser").
		Find(&ratings).Error
	return ratings, err
}
