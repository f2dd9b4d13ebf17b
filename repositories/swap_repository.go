package repositories

import (
	"skillswap-api/models"

	"gorm.io/gorm"
)

type SwapRepository interface {
	Create(request *models.SwapRequest) error
	GetByID(id uint) (*models.SwapRequest, error)
	GetByIDForRecipient(id, toUserID uint) (*models.SwapRequest, error)
	ListForUser(userID uint, status models.SwapStatus) ([]models.SwapRequest, error)
	ListReceived(userID uint, status models.SwapStatus) ([]models.SwapRequest, error)
	ListAll() ([]models.SwapRequest, error)
	Update(request *models.SwapRequest) error
}

type swapRepository struct {
	db *gorm.DB
}

func NewSwapRepository(db *gorm.DB) SwapRepository {
	return &swapRepository{db: db}
}

func (r *swapRepository) preload(db *gorm.DB) *gorm.DB {
	return db.Preload("FromUser").
		Preload("ToUser").
		Preload("SkillOffered").
		Preload("SkillWanted")
}

func (r *swapRepository) Create(request *models.SwapRequest) error {
	return r.db.Create(request).Error
}

func (r *swapRepository) GetByID(id uint) (*models.SwapRequest, error) {
	var request models.SwapRequest
	err := r.preload(r.db).First(&request, id).Error
	return &request, err
}

// GetByIDForRecipient scopes the lookup to the recipient, so non-recipients
// get record-not-found rather than a permission error.
func (r *swapRepository) GetByIDForRecipient(id, toUserID uint) (*models.SwapRequest, error) {
	var request models.SwapRequest
	err := r.preload(r.db).Where("id = ? AND to_user_id = ?", id, toUserID).First(&request).Error
	return &request, err
}

func (r *swapRepository) ListForUser(userID uint, status models.SwapStatus) ([]models.SwapRequest, error) {
	var requests []models.SwapRequest

	query := r.preload(r.db).Where("from_user_id = ? OR to_user_id = ?", userID, userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	err := query.Order("created_at desc").Find(&requests).Error
	return requests, err
}

func (r *swapRepository) ListReceived(userID uint, status models.SwapStatus) ([]models.SwapRequest, error) {
	var requests []models.SwapRequest

	query := r.preload(r.db).Where("to_user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	err := query.Order("created_at desc").Find(&requests).Error
	return requests, err
}

func (r *swapRepository) ListAll() ([]models.SwapRequest, error) {
	var requests []models.SwapRequest
	err := r.preload(r.db).Order("created_at desc").Find(&requests).Error
	return requests, err
}

func (r *swapRepository) Update(request *models.SwapRequest) error {
	return r.db.Save(request).Error
}
