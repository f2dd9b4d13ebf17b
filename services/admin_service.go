package services

import (
	"errors"
	"fmt"
	"strconv"

	"skillswap-api/models"
	"skillswap-api/repositories"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const defaultRejectionReason = "Rejected by admin."

type AdminService interface {
	ListUserSkills() ([]models.AdminUserSkillRow, error)
	ApproveSkill(id uint) (*models.UserSkill, error)
	RejectSkill(id uint, reason string) (*models.UserSkill, error)
	ListUsers() ([]models.AdminUserRow, error)
	SetBanned(id uint, banned bool) (*models.User, error)
	ListSwaps() ([]models.SwapRequest, error)
	ListMessages() ([]models.PlatformMessage, error)
	PublicMessages() ([]models.PlatformMessage, error)
	CreateMessage(req models.CreateMessageRequest) (*models.PlatformMessage, error)
	UpdateMessage(id uint, req models.UpdateMessageRequest) (*models.PlatformMessage, error)
	UsersCSV() ([][]string, error)
	SwapsCSV() ([][]string, error)
	RatingsCSV() ([][]string, error)
}

type adminService struct {
	userRepo      repositories.UserRepository
	userSkillRepo repositories.UserSkillRepository
	swapRepo      repositories.SwapRepository
	ratingRepo    repositories.RatingRepository
	messageRepo   repositories.MessageRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	userSkillRepo repositories.UserSkillRepository,
	swapRepo repositories.SwapRepository,
	ratingRepo repositories.RatingRepository,
	messageRepo repositories.MessageRepository,
) AdminService {
	return &adminService{
		userRepo:      userRepo,
		userSkillRepo: userSkillRepo,
		swapRepo:      swapRepo,
		ratingRepo:    ratingRepo,
		messageRepo:   messageRepo,
	}
}

func (s *adminService) ListUserSkills() ([]models.AdminUserSkillRow, error) {
	userSkills, err := s.userSkillRepo.ListAll()
	if err != nil {
		return nil, err
	}

	rows := make([]models.AdminUserSkillRow, 0, len(userSkills))
	for i := range userSkills {
		us := &userSkills[i]
		rows = append(rows, models.AdminUserSkillRow{
			UserSkillView: toUserSkillView(us),
			UserID:        us.UserID,
			UserName:      us.User.FullName(),
		})
	}

	return rows, nil
}

func (s *adminService) ApproveSkill(id uint) (*models.UserSkill, error) {
	userSkill, err := s.userSkillRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user skill", models.ErrNotFound)
		}
		return nil, err
	}

	userSkill.Status = models.StatusApproved
	userSkill.RejectionReason = ""

	if err := s.userSkillRepo.Update(userSkill); err != nil {
		return nil, err
	}

	log.Info().Uint("user_skill_id", id).Msg("skill claim approved")
	return userSkill, nil
}

func (s *adminService) RejectSkill(id uint, reason string) (*models.UserSkill, error) {
	userSkill, err := s.userSkillRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user skill", models.ErrNotFound)
		}
		return nil, err
	}

	if reason == "" {
		reason = defaultRejectionReason
	}

	userSkill.Status = models.StatusRejected
	userSkill.RejectionReason = reason

	if err := s.userSkillRepo.Update(userSkill); err != nil {
		return nil, err
	}

	log.Info().Uint("user_skill_id", id).Str("reason", reason).Msg("skill claim rejected")
	return userSkill, nil
}

func (s *adminService) ListUsers() ([]models.AdminUserRow, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}

	rows := make([]models.AdminUserRow, 0, len(users))
	for i := range users {
		u := &users[i]
		rows = append(rows, models.AdminUserRow{
			ID:        u.ID,
			Email:     u.Email,
			FullName:  u.FullName(),
			IsBanned:  u.IsBanned,
			IsAdmin:   u.IsAdmin,
			CreatedAt: u.CreatedAt,
		})
	}

	return rows, nil
}

func (s *adminService) SetBanned(id uint, banned bool) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", models.ErrNotFound)
		}
		return nil, err
	}

	user.IsBanned = banned
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	log.Info().Uint("user_id", id).Bool("banned", banned).Msg("user ban state changed")
	return user, nil
}

func (s *adminService) ListSwaps() ([]models.SwapRequest, error) {
	return s.swapRepo.ListAll()
}

func (s *adminService) ListMessages() ([]models.PlatformMessage, error) {
	return s.messageRepo.ListAll()
}

func (s *adminService) PublicMessages() ([]models.PlatformMessage, error) {
	return s.messageRepo.ListActive()
}

func (s *adminService) CreateMessage(req models.CreateMessageRequest) (*models.PlatformMessage, error) {
	message := &models.PlatformMessage{
		Title:     req.Title,
		Body:      req.Body,
		IsActive:  true,
		ExpiresAt: req.ExpiresAt,
	}
	if req.IsActive != nil {
		message.IsActive = *req.IsActive
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}

	return message, nil
}

func (s *adminService) UpdateMessage(id uint, req models.UpdateMessageRequest) (*models.PlatformMessage, error) {
	message, err := s.messageRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: message", models.ErrNotFound)
		}
		return nil, err
	}

	if req.Title != nil {
		message.Title = *req.Title
	}
	if req.Body != nil {
		message.Body = *req.Body
	}
	if req.IsActive != nil {
		message.IsActive = *req.IsActive
	}
	if req.ExpiresAt != nil {
		message.ExpiresAt = req.ExpiresAt
	}

	if err := s.messageRepo.Update(message); err != nil {
		return nil, err
	}

	return message, nil
}

// UsersCSV assembles the users report. Header columns are part of the admin
// contract, do not reorder.
func (s *adminService) UsersCSV() ([][]string, error) {
	rows := [][]string{
		{"ID", "Email", "Full Name", "Location", "Rating", "Completed Swaps", "Is Banned", "Is Admin", "Created At"},
	}

	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}

	for i := range users {
		u := &users[i]
		rows = append(rows, []string{
			strconv.FormatUint(uint64(u.ID), 10),
			u.Email,
			u.FullName(),
			u.Location,
			strconv.FormatFloat(u.Rating, 'f', 2, 64),
			strconv.FormatUint(uint64(u.CompletedSwaps), 10),
			strconv.FormatBool(u.IsBanned),
			strconv.FormatBool(u.IsAdmin),
			u.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return rows, nil
}

func (s *adminService) SwapsCSV() ([][]string, error) {
	rows := [][]string{
		{"ID", "From User", "To User", "Skill Offered", "Skill Wanted", "Status", "Duration", "Preferred Time", "Created At"},
	}

	swaps, err := s.swapRepo.ListAll()
	if err != nil {
		return nil, err
	}

	for i := range swaps {
		sw := &swaps[i]
		rows = append(rows, []string{
			strconv.FormatUint(uint64(sw.ID), 10),
			sw.FromUser.FullName(),
			sw.ToUser.FullName(),
			sw.SkillOffered.Name,
			sw.SkillWanted.Name,
			string(sw.Status),
			sw.Duration,
			sw.PreferredTime,
			sw.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return rows, nil
}

func (s *adminService) RatingsCSV() ([][]string, error) {
	rows := [][]string{
		{"ID", "Swap Session", "From User", "Rating", "Comment", "Created At"},
	}

	ratings, err := s.ratingRepo.ListAll()
	if err != nil {
		return nil, err
	}

	for i := range ratings {
		r := &ratings[i]
		sessionLabel := fmt.Sprintf("Session for %s -> %s: %s for %s",
			r.SwapSession.SwapRequest.FromUser.FullName(),
			r.SwapSession.SwapRequest.ToUser.FullName(),
			r.SwapSession.SwapRequest.SkillOffered.Name,
			r.SwapSession.SwapRequest.SkillWanted.Name,
		)
		rows = append(rows, []string{
			strconv.FormatUint(uint64(r.ID), 10),
			sessionLabel,
			r.FromUser.FullName(),
			strconv.Itoa(r.Rating),
			r.Comment,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return rows, nil
}
