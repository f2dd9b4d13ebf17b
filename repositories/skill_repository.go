package repositories

import (
	"skillswap-api/models"

	"gorm.io/gorm"
)

type SkillRepository interface {
	Create(skill *models.Skill) error
	GetByID(id uint) (*models.Skill, error)
	GetByName(name string) (*models.Skill, error)
	GetAll() ([]models.Skill, error)
}

type skillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

func (r *skillRepository) GetByID(id uint) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, id).Error
	return &skill, err
}

func (r *skillRepository) GetByName(name string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.Where("name = ?", name).First(&skill).Error
	return &skill, err
}

func (r *skillRepository) GetAll() ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.Order("name").Find(&skills).Error
	return skills, err
}
