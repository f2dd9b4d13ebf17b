package services

import (
	"errors"
	"fmt"
	"time"

	"skillswap-api/config"
	"skillswap-api/models"
	"skillswap-api/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
}

type authService struct {
	userRepo      repositories.UserRepository
	userSkillRepo repositories.UserSkillRepository
}

func NewAuthService(userRepo repositories.UserRepository, userSkillRepo repositories.UserSkillRepository) AuthService {
	return &authService{userRepo: userRepo, userSkillRepo: userSkillRepo}
}

func (s *authService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	if req.Password != req.PasswordConfirm {
		return nil, fmt.Errorf("%w: passwords don't match", models.ErrValidation)
	}

	existingUser, err := s.userRepo.GetByEmail(req.Email)
	if err == nil && existingUser.ID != 0 {
		return nil, fmt.Errorf("%w: user already exists", models.ErrDuplicate)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// Whatever role the payload carried, self-registration always yields a
	// plain user.
	user := &models.User{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  string(hashedPassword),
		Role:      models.RoleUser,
		IsActive:  true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	profile, err := buildProfile(s.userSkillRepo, user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *profile,
	}, nil
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", models.ErrValidation)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", models.ErrValidation)
	}

	if !user.IsActive {
		return nil, fmt.Errorf("%w: user account is disabled", models.ErrValidation)
	}

	if user.IsBanned {
		return nil, fmt.Errorf("%w: this account has been banned, please contact support", models.ErrValidation)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	profile, err := buildProfile(s.userSkillRepo, user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *profile,
	}, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"is_admin": user.IsAdmin || user.Role == models.RoleAdmin,
		"exp":      now.Add(config.JWTExpiration).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(config.JWTSecret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}
