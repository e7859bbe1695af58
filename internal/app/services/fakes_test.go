package services

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/pkg/apperrors"
	"github.com/yigit/placementportal/internal/pkg/auth"
	"github.com/yigit/placementportal/internal/pkg/filestorage"
)

var testLogger = zerolog.New(io.Discard)

// fakeClock hands out strictly increasing timestamps so newest-first ordering is deterministic
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Minute)
	return c.now
}

type fakeUserRepo struct {
	mu         sync.Mutex
	users      map[int64]*models.User
	nextID     int64
	clock      *fakeClock
	placements *fakePlacementRepo
	visits     *fakeVisitRepo
	createErr  error
}

func newFakeUserRepo(clock *fakeClock, placements *fakePlacementRepo, visits *fakeVisitRepo) *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User), clock: clock, placements: placements, visits: visits}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
		if u.RollNumber == user.RollNumber {
			return apperrors.ErrRollNumberExists
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = r.clock.Next()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users[user.ID] = &stored
	if r.placements != nil {
		r.placements.registerOwner(&stored)
	}
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmailOrRollNumber(ctx context.Context, email, rollNumber string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email || u.RollNumber == rollNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ExistsByRole(ctx context.Context, role models.Role) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Role == role {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) SetBlocked(ctx context.Context, id int64, blocked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.IsBlocked = blocked
	return nil
}

func (r *fakeUserRepo) DeleteWithPlacements(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	if r.placements != nil {
		r.placements.deleteByUser(id)
	}
	if r.visits != nil {
		r.visits.clearCreator(id)
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) ListWithPlacementCounts(ctx context.Context) ([]*models.UserWithStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.UserWithStats, 0, len(r.users))
	for _, u := range r.users {
		item := &models.UserWithStats{User: *u}
		if r.placements != nil {
			item.PlacementCount = r.placements.countByUser(u.ID)
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeUserRepo) Stats(ctx context.Context, recentSince time.Time) (*models.UserStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &models.UserStats{}
	for _, u := range r.users {
		stats.TotalUsers++
		switch u.Role {
		case models.RoleStudent:
			stats.TotalStudents++
		case models.RoleAdmin:
			stats.TotalAdmins++
		case models.RoleSuperAdmin:
			stats.TotalSuperAdmins++
		}
		if u.IsBlocked {
			stats.BlockedUsers++
		}
		if !u.CreatedAt.Before(recentSince) {
			stats.RecentRegistrations++
		}
	}
	stats.ActiveUsers = stats.TotalUsers - stats.BlockedUsers
	return stats, nil
}

type fakePlacementRepo struct {
	mu         sync.Mutex
	placements map[int64]*models.Placement
	owners     map[int64]models.UserSummary
	nextID     int64
	clock      *fakeClock
	createErr  error
}

func newFakePlacementRepo(clock *fakeClock) *fakePlacementRepo {
	return &fakePlacementRepo{
		placements: make(map[int64]*models.Placement),
		owners:     make(map[int64]models.UserSummary),
		clock:      clock,
	}
}

func (r *fakePlacementRepo) registerOwner(u *models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.owners[u.ID] = models.UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, RollNumber: u.RollNumber, Batch: u.Batch}
}

func (r *fakePlacementRepo) deleteByUser(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, p := range r.placements {
		if p.UserID == userID {
			delete(r.placements, id)
		}
	}
}

func (r *fakePlacementRepo) countByUser(userID int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, p := range r.placements {
		if p.UserID == userID {
			n++
		}
	}
	return n
}

func (r *fakePlacementRepo) withOwner(p *models.Placement) *models.Placement {
	cp := *p
	if owner, ok := r.owners[p.UserID]; ok {
		cp.Owner = &owner
	}
	return &cp
}

func (r *fakePlacementRepo) Create(ctx context.Context, placement *models.Placement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	placement.ID = r.nextID
	placement.CreatedAt = r.clock.Next()
	placement.UpdatedAt = placement.CreatedAt
	stored := *placement
	r.placements[placement.ID] = &stored
	return nil
}

func (r *fakePlacementRepo) GetByID(ctx context.Context, id int64) (*models.Placement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.placements[id]
	if !ok {
		return nil, apperrors.ErrPlacementNotFound
	}
	return r.withOwner(p), nil
}

func (r *fakePlacementRepo) filter(keep func(*models.Placement) bool) []*models.Placement {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Placement, 0)
	for _, p := range r.placements {
		if keep(p) {
			out = append(out, r.withOwner(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *fakePlacementRepo) ListByStatus(ctx context.Context, status models.PlacementStatus) ([]*models.Placement, error) {
	return r.filter(func(p *models.Placement) bool { return p.Status == status }), nil
}

func (r *fakePlacementRepo) ListAll(ctx context.Context) ([]*models.Placement, error) {
	return r.filter(func(*models.Placement) bool { return true }), nil
}

func (r *fakePlacementRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Placement, error) {
	return r.filter(func(p *models.Placement) bool { return p.UserID == userID }), nil
}

func (r *fakePlacementRepo) UpdateReview(ctx context.Context, id int64, status models.PlacementStatus, verifiedBy *int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.placements[id]
	if !ok {
		return apperrors.ErrPlacementNotFound
	}
	p.Status = status
	if verifiedBy != nil {
		v := *verifiedBy
		p.VerifiedBy = &v
	}
	return nil
}

type fakeVisitRepo struct {
	mu     sync.Mutex
	visits map[int64]*models.CompanyVisit
	nextID int64
	clock  *fakeClock
}

func newFakeVisitRepo(clock *fakeClock) *fakeVisitRepo {
	return &fakeVisitRepo{visits: make(map[int64]*models.CompanyVisit), clock: clock}
}

// clearCreator mirrors ON DELETE SET NULL on company_visits.added_by
func (r *fakeVisitRepo) clearCreator(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.visits {
		if v.AddedBy != nil && *v.AddedBy == userID {
			v.AddedBy = nil
			v.Creator = nil
		}
	}
}

func (r *fakeVisitRepo) Create(ctx context.Context, visit *models.CompanyVisit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	visit.ID = r.nextID
	visit.CreatedAt = r.clock.Next()
	visit.UpdatedAt = visit.CreatedAt
	stored := *visit
	r.visits[visit.ID] = &stored
	return nil
}

func (r *fakeVisitRepo) GetByID(ctx context.Context, id int64) (*models.CompanyVisit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.visits[id]
	if !ok {
		return nil, apperrors.ErrCompanyVisitNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVisitRepo) ListByStatus(ctx context.Context, status models.CompanyVisitStatus) ([]*models.CompanyVisit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.CompanyVisit, 0)
	for _, v := range r.visits {
		if v.Status == status {
			cp := *v
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeVisitRepo) Update(ctx context.Context, visit *models.CompanyVisit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.visits[visit.ID]; !ok {
		return apperrors.ErrCompanyVisitNotFound
	}
	stored := *visit
	r.visits[visit.ID] = &stored
	return nil
}

func (r *fakeVisitRepo) SetStatus(ctx context.Context, id int64, status models.CompanyVisitStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.visits[id]
	if !ok {
		return apperrors.ErrCompanyVisitNotFound
	}
	v.Status = status
	return nil
}

func (r *fakeVisitRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.visits[id]; !ok {
		return apperrors.ErrCompanyVisitNotFound
	}
	delete(r.visits, id)
	return nil
}

// fakeStorage records saved and deleted keys without touching the filesystem
type fakeStorage struct {
	mu       sync.Mutex
	saved    []string
	deleted  []string
	failOnID bool
}

func (s *fakeStorage) Save(ctx context.Context, fh *multipart.FileHeader, folder string) (*filestorage.StoredFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOnID && folder == filestorage.FolderIDCards {
		return nil, errors.New("disk full")
	}
	key := folder + "/" + fh.Filename
	s.saved = append(s.saved, key)
	return &filestorage.StoredFile{URL: "uploads/" + key, Key: key, Filename: fh.Filename, Size: fh.Size}, nil
}

func (s *fakeStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeStorage) KeyFromURL(url string) (string, bool) {
	if !strings.HasPrefix(url, "uploads/") {
		return "", false
	}
	return strings.TrimPrefix(url, "uploads/"), true
}

// testEnv wires every service over shared in-memory fakes
type testEnv struct {
	clock      *fakeClock
	users      *fakeUserRepo
	placements *fakePlacementRepo
	visits     *fakeVisitRepo
	storage    *fakeStorage
	jwt        *auth.JWTService

	auth       *AuthService
	placement  *PlacementService
	visit      *CompanyVisitService
	superAdmin *SuperAdminService
}

const (
	testAdminSecret      = "admin-code"
	testSuperAdminSecret = "super-code"
)

func newTestEnv() *testEnv {
	clock := newFakeClock()
	placements := newFakePlacementRepo(clock)
	visits := newFakeVisitRepo(clock)
	users := newFakeUserRepo(clock, placements, visits)
	storage := &fakeStorage{}
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenIssuer: "test"})

	env := &testEnv{
		clock:      clock,
		users:      users,
		placements: placements,
		visits:     visits,
		storage:    storage,
		jwt:        jwtService,
		auth: NewAuthService(users, jwtService, RegistrationSecrets{
			AdminSecret:      testAdminSecret,
			SuperAdminSecret: testSuperAdminSecret,
		}, testLogger),
		placement:  NewPlacementService(placements, storage, testLogger),
		visit:      NewCompanyVisitService(visits, testLogger),
		superAdmin: NewSuperAdminService(users, placements, storage, testLogger),
	}
	env.superAdmin.now = func() time.Time { return clock.now }
	return env
}

func newTestFile(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: 128}
}
