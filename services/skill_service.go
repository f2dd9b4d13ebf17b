package services

import (
	"errors"
	"fmt"

	"skillswap-api/models"
	"skillswap-api/repositories"

	"gorm.io/gorm"
)

type SkillService interface {
	ListSkills() ([]models.Skill, error)
	AddUserSkill(userID uint, req models.CreateUserSkillRequest) (*models.UserSkillView, error)
	ListUserSkills(userID uint, isAdmin bool) ([]models.UserSkillView, error)
	ListUserSkillsByType(userID uint, isAdmin bool, skillType models.SkillType) ([]models.UserSkillView, error)
	DeleteUserSkill(userID, id uint) error
}

type skillService struct {
	skillRepo     repositories.SkillRepository
	userSkillRepo repositories.UserSkillRepository
}

func NewSkillService(skillRepo repositories.SkillRepository, userSkillRepo repositories.UserSkillRepository) SkillService {
	return &skillService{
		skillRepo:     skillRepo,
		userSkillRepo: userSkillRepo,
	}
}

func (s *skillService) ListSkills() ([]models.Skill, error) {
	return s.skillRepo.GetAll()
}

// AddUserSkill resolves the skill by name, creating it with category "other"
// on first mention, then records a pending association for the caller.
func (s *skillService) AddUserSkill(userID uint, req models.CreateUserSkillRequest) (*models.UserSkillView, error) {
	skill, err := s.resolveSkill(req.SkillName)
	if err != nil {
		return nil, err
	}

	userSkill := &models.UserSkill{
		UserID:           userID,
		SkillID:          skill.ID,
		SkillType:        req.SkillType,
		ProficiencyLevel: req.ProficiencyLevel,
		Status:           models.StatusPending,
	}

	if err := s.userSkillRepo.Create(userSkill); err != nil {
		return nil, fmt.Errorf("%w: skill already listed as %s", models.ErrDuplicate, req.SkillType)
	}

	userSkill.Skill = *skill
	view := toUserSkillView(userSkill)
	return &view, nil
}

// resolveSkill is find-then-insert; on an insert failure (a concurrent create
// of the same name trips the unique constraint) the lookup is retried once.
func (s *skillService) resolveSkill(name string) (*models.Skill, error) {
	skill, err := s.skillRepo.GetByName(name)
	if err == nil {
		return skill, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newSkill := &models.Skill{
		Name:     name,
		Category: models.CategoryOther,
	}
	if createErr := s.skillRepo.Create(newSkill); createErr != nil {
		skill, err = s.skillRepo.GetByName(name)
		if err != nil {
			return nil, createErr
		}
		return skill, nil
	}

	return newSkill, nil
}

func (s *skillService) ListUserSkills(userID uint, isAdmin bool) ([]models.UserSkillView, error) {
	userSkills, err := s.userSkillRepo.ListByUser(userID, !isAdmin)
	if err != nil {
		return nil, err
	}

	return toUserSkillViews(userSkills), nil
}

func (s *skillService) ListUserSkillsByType(userID uint, isAdmin bool, skillType models.SkillType) ([]models.UserSkillView, error) {
	userSkills, err := s.userSkillRepo.ListByUserAndType(userID, skillType, !isAdmin)
	if err != nil {
		return nil, err
	}

	return toUserSkillViews(userSkills), nil
}

// DeleteUserSkill checks ownership and existence together, so a non-owner
// gets the same not-found as a missing id.
func (s *skillService) DeleteUserSkill(userID, id uint) error {
	userSkill, err := s.userSkillRepo.GetByIDAndUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user skill", models.ErrNotFound)
		}
		return err
	}

	return s.userSkillRepo.Delete(userSkill.ID)
}

func toUserSkillView(us *models.UserSkill) models.UserSkillView {
	return models.UserSkillView{
		ID:               us.ID,
		SkillID:          us.SkillID,
		SkillName:        us.Skill.Name,
		SkillCategory:    us.Skill.Category,
		SkillType:        us.SkillType,
		ProficiencyLevel: us.ProficiencyLevel,
		Status:           us.Status,
		RejectionReason:  us.RejectionReason,
	}
}

func toUserSkillViews(userSkills []models.UserSkill) []models.UserSkillView {
	views := make([]models.UserSkillView, 0, len(userSkills))
	for i := range userSkills {
		views = append(views, toUserSkillView(&userSkills[i]))
	}
	return views
}
