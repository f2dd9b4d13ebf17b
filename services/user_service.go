package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"skillswap-api/models"
	"skillswap-api/repositories"
	"skillswap-api/storage"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const maxAvatarSize = 5 * 1024 * 1024

var allowedAvatarTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

type UserService interface {
	GetProfile(userID uint) (*models.Profile, error)
	UpdateProfile(userID uint, req models.UpdateProfileRequest) (*models.Profile, error)
	UploadAvatar(ctx context.Context, userID uint, contentType string, size int64, body io.Reader) (string, error)
	DeleteAvatar(ctx context.Context, userID uint) error
	ListUsers(callerID uint, search string) ([]models.UserListItem, error)
	GetUser(id uint) (*models.UserListItem, error)
}

type userService struct {
	userRepo      repositories.UserRepository
	userSkillRepo repositories.UserSkillRepository
	blobStore     storage.Storage
}

func NewUserService(userRepo repositories.UserRepository, userSkillRepo repositories.UserSkillRepository, blobStore storage.Storage) UserService {
	return &userService{
		userRepo:      userRepo,
		userSkillRepo: userSkillRepo,
		blobStore:     blobStore,
	}
}

func (s *userService) GetProfile(userID uint) (*models.Profile, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", models.ErrNotFound)
		}
		return nil, err
	}

	return buildProfile(s.userSkillRepo, user)
}

func (s *userService) UpdateProfile(userID uint, req models.UpdateProfileRequest) (*models.Profile, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", models.ErrNotFound)
		}
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Availability != nil {
		user.Availability = *req.Availability
	}
	if req.ExperienceLevel != nil {
		user.ExperienceLevel = *req.ExperienceLevel
	}
	if req.ResponseTime != nil {
		user.ResponseTime = *req.ResponseTime
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return buildProfile(s.userSkillRepo, user)
}

func (s *userService) UploadAvatar(ctx context.Context, userID uint, contentType string, size int64, body io.Reader) (string, error) {
	if !allowedAvatarTypes[contentType] {
		return "", fmt.Errorf("%w: invalid file type, only JPEG, PNG, and GIF are allowed", models.ErrValidation)
	}
	if size > maxAvatarSize {
		return "", fmt.Errorf("%w: file too large, maximum size is 5MB", models.ErrValidation)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: user", models.ErrNotFound)
		}
		return "", err
	}

	// The old object goes first. A failure between the delete and the put
	// leaves the user without an avatar, same as the original behavior.
	if user.Avatar != "" {
		if err := s.blobStore.Delete(ctx, user.Avatar); err != nil {
			log.Warn().Err(err).Uint("user_id", userID).Msg("failed to delete old avatar")
		}
	}

	key := storage.AvatarKey()
	if err := s.blobStore.Put(ctx, key, contentType, body, size); err != nil {
		return "", err
	}

	user.Avatar = key
	if err := s.userRepo.Update(user); err != nil {
		return "", err
	}

	return s.blobStore.URL(ctx, key)
}

func (s *userService) DeleteAvatar(ctx context.Context, userID uint) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user", models.ErrNotFound)
		}
		return err
	}

	if user.Avatar == "" {
		return fmt.Errorf("%w: no avatar to delete", models.ErrValidation)
	}

	if err := s.blobStore.Delete(ctx, user.Avatar); err != nil {
		log.Warn().Err(err).Uint("user_id", userID).Msg("failed to delete avatar object")
	}

	user.Avatar = ""
	return s.userRepo.Update(user)
}

func (s *userService) ListUsers(callerID uint, search string) ([]models.UserListItem, error) {
	users, err := s.userRepo.Search(callerID, search)
	if err != nil {
		return nil, err
	}

	items := make([]models.UserListItem, 0, len(users))
	for i := range users {
		item, err := s.listItem(&users[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	return items, nil
}

func (s *userService) GetUser(id uint) (*models.UserListItem, error) {
	user, err := s.userRepo.GetActiveByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", models.ErrNotFound)
		}
		return nil, err
	}

	return s.listItem(user)
}

func (s *userService) listItem(user *models.User) (*models.UserListItem, error) {
	offered, err := s.userSkillRepo.ApprovedSkillNames(user.ID, models.SkillOffered)
	if err != nil {
		return nil, err
	}

	wanted, err := s.userSkillRepo.ApprovedSkillNames(user.ID, models.SkillWanted)
	if err != nil {
		return nil, err
	}

	if offered == nil {
		offered = []string{}
	}
	if wanted == nil {
		wanted = []string{}
	}

	return &models.UserListItem{
		ID:            user.ID,
		FullName:      user.FullName(),
		Avatar:        user.Avatar,
		Location:      user.Location,
		Availability:  user.Availability,
		Rating:        user.Rating,
		Bio:           user.Bio,
		SkillsOffered: offered,
		SkillsWanted:  wanted,
	}, nil
}
