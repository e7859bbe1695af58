package services

import (
	"context"
	"errors"
	"testing"

	"github.com/yigit/placementportal/internal/app/models"
	"github.com/yigit/placementportal/internal/app/models/dto"
	"github.com/yigit/placementportal/internal/pkg/apperrors"
)

func registerRequest(email, roll string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:       "Asha Verma",
		Email:      email,
		Password:   "secret123",
		RollNumber: roll,
		Batch:      "2025",
	}
}

func TestRegisterCreatesUnverifiedStudent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	user, err := env.auth.Register(ctx, registerRequest("  Asha@College.EDU ", "21cs042"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.Role != models.RoleStudent || user.Verified {
		t.Fatalf("expected unverified student, got role=%s verified=%v", user.Role, user.Verified)
	}
	if user.Email != "asha@college.edu" || user.RollNumber != "21CS042" {
		t.Fatalf("identifiers not normalized: %q %q", user.Email, user.RollNumber)
	}
	if user.Password == "secret123" || user.Password == "" {
		t.Fatalf("password must be stored hashed")
	}
}

func TestRegisterRejectsDuplicateEmailOrRollNumber(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	if _, err := env.auth.Register(ctx, registerRequest("a@college.edu", "R1")); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	cases := map[string]*dto.RegisterRequest{
		"same email":       registerRequest("A@college.edu", "R2"),
		"same roll number": registerRequest("b@college.edu", "r1"),
	}
	for name, req := range cases {
		_, err := env.auth.Register(ctx, req)
		if !errors.Is(err, apperrors.ErrUserAlreadyRegistered) {
			t.Errorf("%s: expected ErrUserAlreadyRegistered, got %v", name, err)
		}
	}

	stats, _ := env.users.Stats(ctx, env.clock.now)
	if stats.TotalUsers != 1 {
		t.Fatalf("expected exactly one account, got %d", stats.TotalUsers)
	}
}

func TestRegisterRaceOnUniqueConstraintIsConflict(t *testing.T) {
	env := newTestEnv()
	env.users.createErr = apperrors.ErrRollNumberExists

	_, err := env.auth.Register(context.Background(), registerRequest("a@college.edu", "R1"))
	if !errors.Is(err, apperrors.ErrUserAlreadyRegistered) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRegisterValidatesInput(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	badEmail := registerRequest("not-an-email", "R1")
	if _, err := env.auth.Register(ctx, badEmail); !errors.Is(err, apperrors.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}

	shortPassword := registerRequest("a@college.edu", "R1")
	shortPassword.Password = "123"
	if _, err := env.auth.Register(ctx, shortPassword); !errors.Is(err, apperrors.ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}

	badRoll := registerRequest("a@college.edu", "R 1")
	if _, err := env.auth.Register(ctx, badRoll); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
}

func TestRegisterAdminRequiresSecret(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	req := &dto.RegisterAdminRequest{RegisterRequest: *registerRequest("admin@college.edu", "ADM1"), AdminSecret: "wrong"}
	if _, err := env.auth.RegisterAdmin(ctx, req); !errors.Is(err, apperrors.ErrInvalidSecretCode) {
		t.Fatalf("expected ErrInvalidSecretCode, got %v", err)
	}

	// The superadmin code does not open the admin path
	req.AdminSecret = testSuperAdminSecret
	if _, err := env.auth.RegisterAdmin(ctx, req); !errors.Is(err, apperrors.ErrInvalidSecretCode) {
		t.Fatalf("expected ErrInvalidSecretCode for superadmin code, got %v", err)
	}

	req.AdminSecret = testAdminSecret
	user, err := env.auth.RegisterAdmin(ctx, req)
	if err != nil {
		t.Fatalf("RegisterAdmin: %v", err)
	}
	if user.Role != models.RoleAdmin || !user.Verified {
		t.Fatalf("expected verified admin, got role=%s verified=%v", user.Role, user.Verified)
	}
}

func TestRegisterSuperAdminRequiresSecret(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	req := &dto.RegisterSuperAdminRequest{RegisterRequest: *registerRequest("root@college.edu", "SA1"), SuperSecretCode: testAdminSecret}
	if _, err := env.auth.RegisterSuperAdmin(ctx, req); !errors.Is(err, apperrors.ErrInvalidSecretCode) {
		t.Fatalf("expected ErrInvalidSecretCode, got %v", err)
	}

	req.SuperSecretCode = testSuperAdminSecret
	user, err := env.auth.RegisterSuperAdmin(ctx, req)
	if err != nil {
		t.Fatalf("RegisterSuperAdmin: %v", err)
	}
	if user.Role != models.RoleSuperAdmin || !user.Verified {
		t.Fatalf("expected verified superadmin, got role=%s verified=%v", user.Role, user.Verified)
	}
}

func TestLoginIssuesTokenWithAccountClaims(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	user, err := env.auth.Register(ctx, registerRequest("a@college.edu", "R1"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	resp, err := env.auth.Login(ctx, &dto.LoginRequest{Email: "A@College.edu", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token.TokenType != "Bearer" || resp.Token.ExpiresIn != 7*24*60*60 {
		t.Fatalf("unexpected token metadata %+v", resp.Token)
	}
	if resp.User.ID != user.ID || resp.User.Role != models.RoleStudent {
		t.Fatalf("unexpected user projection %+v", resp.User)
	}

	claims, err := env.jwt.ValidateToken(resp.Token.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != string(models.RoleStudent) {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	if _, err := env.auth.Register(ctx, registerRequest("a@college.edu", "R1")); err != nil {
		t.Fatalf("Register: %v", err)
	}

	for _, req := range []*dto.LoginRequest{
		{Email: "a@college.edu", Password: "wrong-password"},
		{Email: "nobody@college.edu", Password: "secret123"},
	} {
		if _, err := env.auth.Login(ctx, req); !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("login %s: expected ErrInvalidCredentials, got %v", req.Email, err)
		}
	}
}

func TestBlockedAccountLosesAccessImmediately(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	user, err := env.auth.Register(ctx, registerRequest("a@college.edu", "R1"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	session, err := env.auth.Login(ctx, &dto.LoginRequest{Email: "a@college.edu", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := env.auth.Authenticate(ctx, session.Token.AccessToken); err != nil {
		t.Fatalf("token should be accepted before blocking: %v", err)
	}

	if _, err := env.superAdmin.Block(ctx, user.ID); err != nil {
		t.Fatalf("Block: %v", err)
	}

	if _, err := env.auth.Login(ctx, &dto.LoginRequest{Email: "a@college.edu", Password: "secret123"}); !errors.Is(err, apperrors.ErrAccountBlocked) {
		t.Fatalf("expected blocked login to fail with ErrAccountBlocked, got %v", err)
	}
	if _, err := env.auth.Authenticate(ctx, session.Token.AccessToken); !errors.Is(err, apperrors.ErrAccountBlocked) {
		t.Fatalf("expected existing token to be refused with ErrAccountBlocked, got %v", err)
	}

	// The blocked flag wins over a wrong password
	if _, err := env.auth.Login(ctx, &dto.LoginRequest{Email: "a@college.edu", Password: "nope-nope"}); !errors.Is(err, apperrors.ErrAccountBlocked) {
		t.Fatalf("expected ErrAccountBlocked, got %v", err)
	}

	if _, err := env.superAdmin.Unblock(ctx, user.ID); err != nil {
		t.Fatalf("Unblock: %v", err)
	}
	if _, err := env.auth.Authenticate(ctx, session.Token.AccessToken); err != nil {
		t.Fatalf("token should be accepted after unblocking: %v", err)
	}
}

func TestAuthenticateRejectsDeletedAccountAndGarbage(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	user, _ := env.auth.Register(ctx, registerRequest("a@college.edu", "R1"))
	token, _, err := env.jwt.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if err := env.superAdmin.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := env.auth.Authenticate(ctx, token); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for deleted account, got %v", err)
	}
	if _, err := env.auth.Authenticate(ctx, "not.a.token"); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for garbage, got %v", err)
	}
}

func TestGetCurrentUser(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	user, _ := env.auth.Register(ctx, registerRequest("a@college.edu", "R1"))
	got, err := env.auth.GetCurrentUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetCurrentUser: %v", err)
	}
	if got.Email != "a@college.edu" {
		t.Fatalf("unexpected user %+v", got)
	}

	if _, err := env.auth.GetCurrentUser(ctx, 999); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
