package repositories

import (
	"skillswap-api/models"

	"gorm.io/gorm"
)

type UserSkillRepository interface {
	Create(userSkill *models.UserSkill) error
	GetByID(id uint) (*models.UserSkill, error)
	GetByIDAndUser(id, userID uint) (*models.UserSkill, error)
	ListByUser(userID uint, approvedOnly bool) ([]models.UserSkill, error)
	ListByUserAndType(userID uint, skillType models.SkillType, approvedOnly bool) ([]models.UserSkill, error)
	ListAll() ([]models.UserSkill, error)
	Update(userSkill *models.UserSkill) error
	Delete(id uint) error
	ApprovedSkillNames(userID uint, skillType models.SkillType) ([]string, error)
}

type userSkillRepository struct {
	db *gorm.DB
}

func NewUserSkillRepository(db *gorm.DB) UserSkillRepository {
	return &userSkillRepository{db: db}
}

func (r *userSkillRepository) Create(userSkill *models.UserSkill) error {
	return r.db.Create(userSkill).Error
}

func (r *userSkillRepository) GetByID(id uint) (*models.UserSkill, error) {
	var userSkill models.UserSkill
	err := r.db.Preload("Skill").First(&userSkill, id).Error
	return &userSkill, err
}

// GetByIDAndUser scopes the lookup to the owner so a foreign id and a missing
// id are indistinguishable to the caller.
func (r *userSkillRepository) GetByIDAndUser(id, userID uint) (*models.UserSkill, error) {
	var userSkill models.UserSkill
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&userSkill).Error
	return &userSkill, err
}

func (r *userSkillRepository) ListByUser(userID uint, approvedOnly bool) ([]models.UserSkill, error) {
	var userSkills []models.UserSkill

	query := r.db.Preload("Skill").Where("user_id = ?", userID)
	if approvedOnly {
		query = query.Where("status = ?", models.StatusApproved)
	}

	err := query.Find(&userSkills).Error
	return userSkills, err
}

func (r *userSkillRepository) ListByUserAndType(userID uint, skillType models.SkillType, approvedOnly bool) ([]models.UserSkill, error) {
	var userSkills []models.UserSkill

	query := r.db.Preload("Skill").Where("user_id = ? AND skill_type = ?", userID, skillType)
	if approvedOnly {
		query = query.Where("status = ?", models.StatusApproved)
	}

	err := query.Find(&userSkills).Error
	return userSkills, err
}

func (r *userSkillRepository) ListAll() ([]models.UserSkill, error) {
	var userSkills []models.UserSkill
	err := r.db.Preload("User").Preload("Skill").Find(&userSkills).Error
	return userSkills, err
}

func (r *userSkillRepository) Update(userSkill *models.UserSkill) error {
	return r.db.Save(userSkill).Error
}

func (r *userSkillRepository) Delete(id uint) error {
	return r.db.Delete(&models.UserSkill{}, id).Error
}

func (r *userSkillRepository) ApprovedSkillNames(userID uint, skillType models.SkillType) ([]string, error) {
	var names []string
	err := r.db.Model(&models.UserSkill{}).
		Joins("JOIN skills ON skills.id = user_skills.skill_id").
		Where("user_skills.user_id = ? AND user_skills.skill_type = ? AND user_skills.status = ?",
			userID, skillType, models.StatusApproved).
		Pluck("skills.name", &names).Error
	return names, err
}
