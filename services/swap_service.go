package services

import (
	"errors"
	"fmt"

	"skillswap-api/models"
	"skillswap-api/repositories"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type SwapService interface {
	CreateRequest(fromUserID uint, req models.CreateSwapRequest) (*models.SwapRequest, error)
	ListRequests(userID uint, status models.SwapStatus) ([]models.SwapRequest, error)
	ListReceived(userID uint, status models.SwapStatus) ([]models.SwapRequest, error)
	UpdateStatus(userID, requestID uint, newStatus models.SwapStatus) (*models.SwapRequest, error)
	CreateSession(userID uint, req models.CreateSessionRequest) (*models.SwapSession, error)
	ListSessions(userID uint) ([]models.SwapSession, error)
	RateSession(userID, sessionID uint, req models.CreateRatingRequest) (*models.SwapRating, error)
}

type swapService struct {
	swapRepo    repositories.SwapRepository
	sessionRepo repositories.SessionRepository
	ratingRepo  repositories.RatingRepository
	userRepo    repositories.UserRepository
	skillRepo   repositories.SkillRepository
}

func NewSwapService(
	swapRepo repositories.SwapRepository,
	sessionRepo repositories.SessionRepository,
	ratingRepo repositories.RatingRepository,
	userRepo repositories.UserRepository,
	skillRepo repositories.SkillRepository,
) SwapService {
	return &swapService{
		swapRepo:    swapRepo,
		sessionRepo: sessionRepo,
		ratingRepo:  ratingRepo,
		userRepo:    userRepo,
		skillRepo:   skillRepo,
	}
}

// CreateRequest validates every referenced id and records the request. The
// status is always pending on creation, whatever the payload carried.
func (s *swapService) CreateRequest(fromUserID uint, req models.CreateSwapRequest) (*models.SwapRequest, error) {
	if _, err := s.userRepo.GetByID(req.ToUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", models.ErrNotFound)
		}
		return nil, err
	}

	if _, err := s.skillRepo.GetByID(req.SkillOfferedID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: offered skill", models.ErrNotFound)
		}
		return nil, err
	}

	if _, err := s.skillRepo.GetByID(req.SkillWantedID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: wanted skill", models.ErrNotFound)
		}
		return nil, err
	}

	request := &models.SwapRequest{
		FromUserID:     fromUserID,
		ToUserID:       req.ToUserID,
		SkillOfferedID: req.SkillOfferedID,
		SkillWantedID:  req.SkillWantedID,
		Message:        req.Message,
		Duration:       req.Duration,
		PreferredTime:  req.PreferredTime,
		Status:         models.SwapPending,
	}

	if err := s.swapRepo.Create(request); err != nil {
		return nil, err
	}

	return s.swapRepo.GetByID(request.ID)
}

func (s *swapService) ListRequests(userID uint, status models.SwapStatus) ([]models.SwapRequest, error) {
	return s.swapRepo.ListForUser(userID, status)
}

func (s *swapService) ListReceived(userID uint, status models.SwapStatus) ([]models.SwapRequest, error) {
	return s.swapRepo.ListReceived(userID, status)
}

// UpdateStatus moves a pending request to accepted or rejected. Only the
// recipient may do it; anyone else sees not-found. Accepting bumps both
// participants' completed_swaps exactly once per request, since a request
// that already left pending cannot transition again.
func (s *swapService) UpdateStatus(userID, requestID uint, newStatus models.SwapStatus) (*models.SwapRequest, error) {
	if newStatus != models.SwapAccepted && newStatus != models.SwapRejected {
		return nil, fmt.Errorf("%w: invalid status", models.ErrInvalidState)
	}

	request, err := s.swapRepo.GetByIDForRecipient(requestID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: swap request", models.ErrNotFound)
		}
		return nil, err
	}

	if request.Status != models.SwapPending {
		return nil, fmt.Errorf("%w: request is already %s", models.ErrInvalidState, request.Status)
	}

	request.Status = newStatus
	if err := s.swapRepo.Update(request); err != nil {
		return nil, err
	}

	if newStatus == models.SwapAccepted {
		request.FromUser.CompletedSwaps++
		request.ToUser.CompletedSwaps++
		if err := s.userRepo.Update(&request.FromUser); err != nil {
			return nil, err
		}
		if err := s.userRepo.Update(&request.ToUser); err != nil {
			return nil, err
		}

		log.Info().
			Uint("request_id", request.ID).
			Uint("from_user", request.FromUserID).
			Uint("to_user", request.ToUserID).
			Msg("swap request accepted")
	}

	return request, nil
}

// CreateSession schedules an accepted swap. One session per request.
func (s *swapService) CreateSession(userID uint, req models.CreateSessionRequest) (*models.SwapSession, error) {
	request, err := s.swapRepo.GetByID(req.SwapRequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: swap request", models.ErrNotFound)
		}
		return nil, err
	}

	if request.FromUserID != userID && request.ToUserID != userID {
		return nil, fmt.Errorf("%w: swap request", models.ErrNotFound)
	}

	if request.Status != models.SwapAccepted {
		return nil, fmt.Errorf("%w: request is %s, only accepted swaps can be scheduled", models.ErrInvalidState, request.Status)
	}

	if _, err := s.sessionRepo.GetByRequestID(request.ID); err == nil {
		return nil, fmt.Errorf("%w: session already scheduled for this request", models.ErrDuplicate)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	session := &models.SwapSession{
		SwapRequestID: request.ID,
		ScheduledDate: req.ScheduledDate,
		Notes:         req.Notes,
	}

	if err := s.sessionRepo.Create(session); err != nil {
		return nil, err
	}

	return s.sessionRepo.GetByID(session.ID)
}

func (s *swapService) ListSessions(userID uint) ([]models.SwapSession, error) {
	return s.sessionRepo.ListForUser(userID)
}

// RateSession records a 1-5 star rating, one per (session, rater).
func (s *swapService) RateSession(userID, sessionID uint, req models.CreateRatingRequest) (*models.SwapRating, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", models.ErrValidation)
	}

	session, err := s.sessionRepo.GetByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: session", models.ErrNotFound)
		}
		return nil, err
	}

	if session.SwapRequest.FromUserID != userID && session.SwapRequest.ToUserID != userID {
		return nil, fmt.Errorf("%w: session", models.ErrNotFound)
	}

	if _, err := s.ratingRepo.GetBySessionAndUser(sessionID, userID); err == nil {
		return nil, fmt.Errorf("%w: you have already rated this session", models.ErrDuplicate)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rating := &models.SwapRating{
		SwapSessionID: sessionID,
		FromUserID:    userID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}

	if err := s.ratingRepo.Create(rating); err != nil {
		return nil, err
	}

	return rating, nil
}
