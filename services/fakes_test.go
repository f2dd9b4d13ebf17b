package services

import (
	"context"
	"io"
	"sort"
	"strings"
	"time"

	"skillswap-api/models"

	"gorm.io/gorm"
)

// In-memory repository fakes backing the service unit tests.

type fakeUserRepo struct {
	users  map[uint]models.User
	nextID uint

	getAllErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]models.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return &models.User{}, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) GetActiveByID(id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok || !u.IsActive {
		return &models.User{}, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return &models.User{}, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Search(excludeID uint, search string) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.ID == excludeID || !u.IsActive {
			continue
		}
		if search != "" {
			needle := strings.ToLower(search)
			haystack := strings.ToLower(u.FirstName + " " + u.LastName + " " + u.Bio + " " + u.Location)
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	if r.getAllErr != nil {
		return nil, r.getAllErr
	}
	var out []models.User
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeSkillRepo struct {
	skills map[uint]models.Skill
	nextID uint

	// raceOnCreate simulates a concurrent insert of the same name: the row
	// appears in the table but the caller's own insert trips the unique
	// constraint.
	raceOnCreate bool
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{skills: map[uint]models.Skill{}, nextID: 1}
}

func (r *fakeSkillRepo) Create(skill *models.Skill) error {
	for _, s := range r.skills {
		if s.Name == skill.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	if r.raceOnCreate {
		raced := *skill
		raced.ID = r.nextID
		r.nextID++
		r.skills[raced.ID] = raced
		return gorm.ErrDuplicatedKey
	}
	skill.ID = r.nextID
	r.nextID++
	r.skills[skill.ID] = *skill
	return nil
}

func (r *fakeSkillRepo) GetByID(id uint) (*models.Skill, error) {
	s, ok := r.skills[id]
	if !ok {
		return &models.Skill{}, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *fakeSkillRepo) GetByName(name string) (*models.Skill, error) {
	for _, s := range r.skills {
		if s.Name == name {
			skill := s
			return &skill, nil
		}
	}
	return &models.Skill{}, gorm.ErrRecordNotFound
}

func (r *fakeSkillRepo) GetAll() ([]models.Skill, error) {
	var out []models.Skill
	for _, s := range r.skills {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeUserSkillRepo struct {
	items     map[uint]models.UserSkill
	nextID    uint
	skillRepo *fakeSkillRepo

	// Optional, only needed by callers that read through the owner preload.
	userRepo *fakeUserRepo
}

func newFakeUserSkillRepo(skillRepo *fakeSkillRepo) *fakeUserSkillRepo {
	return &fakeUserSkillRepo{items: map[uint]models.UserSkill{}, nextID: 1, skillRepo: skillRepo}
}

func (r *fakeUserSkillRepo) withSkill(us models.UserSkill) models.UserSkill {
	if r.skillRepo != nil {
		if s, ok := r.skillRepo.skills[us.SkillID]; ok {
			us.Skill = s
		}
	}
	if r.userRepo != nil {
		if u, ok := r.userRepo.users[us.UserID]; ok {
			us.User = u
		}
	}
	return us
}

func (r *fakeUserSkillRepo) Create(userSkill *models.UserSkill) error {
	for _, us := range r.items {
		if us.UserID == userSkill.UserID && us.SkillID == userSkill.SkillID && us.SkillType == userSkill.SkillType {
			return gorm.ErrDuplicatedKey
		}
	}
	userSkill.ID = r.nextID
	r.nextID++
	r.items[userSkill.ID] = *userSkill
	return nil
}

func (r *fakeUserSkillRepo) GetByID(id uint) (*models.UserSkill, error) {
	us, ok := r.items[id]
	if !ok {
		return &models.UserSkill{}, gorm.ErrRecordNotFound
	}
	us = r.withSkill(us)
	return &us, nil
}

func (r *fakeUserSkillRepo) GetByIDAndUser(id, userID uint) (*models.UserSkill, error) {
	us, ok := r.items[id]
	if !ok || us.UserID != userID {
		return &models.UserSkill{}, gorm.ErrRecordNotFound
	}
	us = r.withSkill(us)
	return &us, nil
}

func (r *fakeUserSkillRepo) ListByUser(userID uint, approvedOnly bool) ([]models.UserSkill, error) {
	var out []models.UserSkill
	for _, us := range r.items {
		if us.UserID != userID {
			continue
		}
		if approvedOnly && us.Status != models.StatusApproved {
			continue
		}
		out = append(out, r.withSkill(us))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserSkillRepo) ListByUserAndType(userID uint, skillType models.SkillType, approvedOnly bool) ([]models.UserSkill, error) {
	all, _ := r.ListByUser(userID, approvedOnly)
	var out []models.UserSkill
	for _, us := range all {
		if us.SkillType == skillType {
			out = append(out, us)
		}
	}
	return out, nil
}

func (r *fakeUserSkillRepo) ListAll() ([]models.UserSkill, error) {
	var out []models.UserSkill
	for _, us := range r.items {
		out = append(out, r.withSkill(us))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserSkillRepo) Update(userSkill *models.UserSkill) error {
	if _, ok := r.items[userSkill.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *userSkill
	stored.Skill = models.Skill{}
	stored.User = models.User{}
	r.items[userSkill.ID] = stored
	return nil
}

func (r *fakeUserSkillRepo) Delete(id uint) error {
	delete(r.items, id)
	return nil
}

func (r *fakeUserSkillRepo) ApprovedSkillNames(userID uint, skillType models.SkillType) ([]string, error) {
	items, _ := r.ListByUserAndType(userID, skillType, true)
	var names []string
	for _, us := range items {
		names = append(names, us.Skill.Name)
	}
	return names, nil
}

type fakeSwapRepo struct {
	requests  map[uint]models.SwapRequest
	nextID    uint
	userRepo  *fakeUserRepo
	skillRepo *fakeSkillRepo

	listAllErr error
}

func newFakeSwapRepo(userRepo *fakeUserRepo, skillRepo *fakeSkillRepo) *fakeSwapRepo {
	return &fakeSwapRepo{requests: map[uint]models.SwapRequest{}, nextID: 1, userRepo: userRepo, skillRepo: skillRepo}
}

func (r *fakeSwapRepo) hydrate(req models.SwapRequest) models.SwapRequest {
	if u, ok := r.userRepo.users[req.FromUserID]; ok {
		req.FromUser = u
	}
	if u, ok := r.userRepo.users[req.ToUserID]; ok {
		req.ToUser = u
	}
	if s, ok := r.skillRepo.skills[req.SkillOfferedID]; ok {
		req.SkillOffered = s
	}
	if s, ok := r.skillRepo.skills[req.SkillWantedID]; ok {
		req.SkillWanted = s
	}
	return req
}

func (r *fakeSwapRepo) Create(request *models.SwapRequest) error {
	request.ID = r.nextID
	r.nextID++
	r.requests[request.ID] = *request
	return nil
}

func (r *fakeSwapRepo) GetByID(id uint) (*models.SwapRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return &models.SwapRequest{}, gorm.ErrRecordNotFound
	}
	req = r.hydrate(req)
	return &req, nil
}

func (r *fakeSwapRepo) GetByIDForRecipient(id, toUserID uint) (*models.SwapRequest, error) {
	req, ok := r.requests[id]
	if !ok || req.ToUserID != toUserID {
		return &models.SwapRequest{}, gorm.ErrRecordNotFound
	}
	req = r.hydrate(req)
	return &req, nil
}

func (r *fakeSwapRepo) ListForUser(userID uint, status models.SwapStatus) ([]models.SwapRequest, error) {
	var out []models.SwapRequest
	for _, req := range r.requests {
		if req.FromUserID != userID && req.ToUserID != userID {
			continue
		}
		if status != "" && req.Status != status {
			continue
		}
		out = append(out, r.hydrate(req))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeSwapRepo) ListReceived(userID uint, status models.SwapStatus) ([]models.SwapRequest, error) {
	var out []models.SwapRequest
	for _, req := range r.requests {
		if req.ToUserID != userID {
			continue
		}
		if status != "" && req.Status != status {
			continue
		}
		out = append(out, r.hydrate(req))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeSwapRepo) ListAll() ([]models.SwapRequest, error) {
	if r.listAllErr != nil {
		return nil, r.listAllErr
	}
	var out []models.SwapRequest
	for _, req := range r.requests {
		out = append(out, r.hydrate(req))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeSwapRepo) Update(request *models.SwapRequest) error {
	stored := *request
	stored.FromUser = models.User{}
	stored.ToUser = models.User{}
	stored.SkillOffered = models.Skill{}
	stored.SkillWanted = models.Skill{}
	r.requests[request.ID] = stored
	return nil
}

type fakeSessionRepo struct {
	sessions map[uint]models.SwapSession
	nextID   uint
	swapRepo *fakeSwapRepo
}

func newFakeSessionRepo(swapRepo *fakeSwapRepo) *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[uint]models.SwapSession{}, nextID: 1, swapRepo: swapRepo}
}

func (r *fakeSessionRepo) hydrate(s models.SwapSession) models.SwapSession {
	if req, err := r.swapRepo.GetByID(s.SwapRequestID); err == nil {
		s.SwapRequest = *req
	}
	return s
}

func (r *fakeSessionRepo) Create(session *models.SwapSession) error {
	for _, s := range r.sessions {
		if s.SwapRequestID == session.SwapRequestID {
			return gorm.ErrDuplicatedKey
		}
	}
	session.ID = r.nextID
	r.nextID++
	r.sessions[session.ID] = *session
	return nil
}

func (r *fakeSessionRepo) GetByID(id uint) (*models.SwapSession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return &models.SwapSession{}, gorm.ErrRecordNotFound
	}
	s = r.hydrate(s)
	return &s, nil
}

func (r *fakeSessionRepo) GetByRequestID(requestID uint) (*models.SwapSession, error) {
	for _, s := range r.sessions {
		if s.SwapRequestID == requestID {
			session := s
			return &session, nil
		}
	}
	return &models.SwapSession{}, gorm.ErrRecordNotFound
}

func (r *fakeSessionRepo) ListForUser(userID uint) ([]models.SwapSession, error) {
	var out []models.SwapSession
	for _, s := range r.sessions {
		hydrated := r.hydrate(s)
		if hydrated.SwapRequest.FromUserID == userID || hydrated.SwapRequest.ToUserID == userID {
			out = append(out, hydrated)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type fakeRatingRepo struct {
	ratings map[uint]models.SwapRating
	nextID  uint

	// Optional, only needed by callers that read through the preloads.
	sessionRepo *fakeSessionRepo
	userRepo    *fakeUserRepo

	listAllErr error
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: map[uint]models.SwapRating{}, nextID: 1}
}

func (r *fakeRatingRepo) hydrate(rating models.SwapRating) models.SwapRating {
	if r.sessionRepo != nil {
		if s, err := r.sessionRepo.GetByID(rating.SwapSessionID); err == nil {
			rating.SwapSession = *s
		}
	}
	if r.userRepo != nil {
		if u, ok := r.userRepo.users[rating.FromUserID]; ok {
			rating.FromUser = u
		}
	}
	return rating
}

func (r *fakeRatingRepo) Create(rating *models.SwapRating) error {
	for _, existing := range r.ratings {
		if existing.SwapSessionID == rating.SwapSessionID && existing.FromUserID == rating.FromUserID {
			return gorm.ErrDuplicatedKey
		}
	}
	rating.ID = r.nextID
	r.nextID++
	r.ratings[rating.ID] = *rating
	return nil
}

func (r *fakeRatingRepo) GetBySessionAndUser(sessionID, userID uint) (*models.SwapRating, error) {
	for _, rating := range r.ratings {
		if rating.SwapSessionID == sessionID && rating.FromUserID == userID {
			found := rating
			return &found, nil
		}
	}
	return &models.SwapRating{}, gorm.ErrRecordNotFound
}

func (r *fakeRatingRepo) ListAll() ([]models.SwapRating, error) {
	if r.listAllErr != nil {
		return nil, r.listAllErr
	}
	var out []models.SwapRating
	for _, rating := range r.ratings {
		out = append(out, r.hydrate(rating))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeMessageRepo struct {
	messages map[uint]models.PlatformMessage
	nextID   uint
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: map[uint]models.PlatformMessage{}, nextID: 1}
}

func (r *fakeMessageRepo) Create(message *models.PlatformMessage) error {
	message.ID = r.nextID
	r.nextID++
	r.messages[message.ID] = *message
	return nil
}

func (r *fakeMessageRepo) GetByID(id uint) (*models.PlatformMessage, error) {
	m, ok := r.messages[id]
	if !ok {
		return &models.PlatformMessage{}, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (r *fakeMessageRepo) Update(message *models.PlatformMessage) error {
	if _, ok := r.messages[message.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.messages[message.ID] = *message
	return nil
}

func (r *fakeMessageRepo) ListAll() ([]models.PlatformMessage, error) {
	var out []models.PlatformMessage
	for _, m := range r.messages {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeMessageRepo) ListActive() ([]models.PlatformMessage, error) {
	all, _ := r.ListAll()
	var out []models.PlatformMessage
	for _, m := range all {
		if !m.IsActive {
			continue
		}
		if m.ExpiresAt != nil && m.ExpiresAt.Before(time.Now()) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type fakeStorage struct {
	objects map[string]string
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string]string{}}
}

func (s *fakeStorage) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	s.objects[key] = contentType
	return nil
}

func (s *fakeStorage) Delete(ctx context.Context, key string) error {
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeStorage) URL(ctx context.Context, key string) (string, error) {
	return "https://blob.test/" + key, nil
}
