package services

import (
	"context"
	"errors"
	"testing"

	"github.com/globopersona/marketing-dashboard/internal/config"
	"github.com/globopersona/marketing-dashboard/internal/models"
	"github.com/globopersona/marketing-dashboard/internal/repositories/localstore"
	"github.com/globopersona/marketing-dashboard/internal/store"
	"github.com/globopersona/marketing-dashboard/internal/utils"
)

func newAuthService(t *testing.T) (AuthService, store.Store) {
	t.Helper()
	st := store.NewMemoryStore()
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600}}
	svc := NewAuthService(
		localstore.NewUserRepository(st),
		localstore.NewSessionRepository(st),
		utils.NewIDGenerator(),
		cfg,
	)
	return svc, st
}

func register(t *testing.T, svc AuthService, name, email, password string) *models.User {
	t.Helper()
	user, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
	})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return user
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	registered := register(t, svc, "A", "a@x.com", "secret")
	if registered.Password != "" {
		t.Fatal("registration response leaks the password")
	}

	resp, err := svc.Login(ctx, &models.LoginRequest{Email: "a@x.com", Password: "secret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.User.Email != "a@x.com" {
		t.Fatalf("wrong user: %+v", resp.User)
	}
	if resp.Token == "" {
		t.Fatal("expected a session token")
	}
	if resp.User.LastLogin.Before(resp.User.RegisteredAt) {
		t.Fatalf("lastLogin %v precedes registeredAt %v", resp.User.LastLogin, resp.User.RegisteredAt)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)
	register(t, svc, "A", "a@x.com", "secret")

	if _, err := svc.Login(ctx, &models.LoginRequest{Email: "a@x.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, &models.LoginRequest{Email: "nobody@x.com", Password: "secret"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Register(ctx, &models.RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret", ConfirmPassword: "other"})
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}

	_, err = svc.Register(ctx, &models.RegisterRequest{Name: "A", Email: "a@x.com", Password: "short", ConfirmPassword: "short"})
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}

	register(t, svc, "A", "a@x.com", "secret")
	_, err = svc.Register(ctx, &models.RegisterRequest{Name: "B", Email: "a@x.com", Password: "secret2", ConfirmPassword: "secret2"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestForgotPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)
	register(t, svc, "A", "a@x.com", "secret")

	msg, err := svc.RequestPasswordReset(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if msg == "" {
		t.Fatal("expected an acknowledgment message")
	}

	if _, err := svc.RequestPasswordReset(ctx, "nobody@x.com"); !errors.Is(err, ErrEmailNotFound) {
		t.Fatalf("expected ErrEmailNotFound, got %v", err)
	}
}

func TestSessionPersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	svc, st := newAuthService(t)
	register(t, svc, "A", "a@x.com", "secret")

	if _, err := svc.Login(ctx, &models.LoginRequest{Email: "a@x.com", Password: "secret"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	// A service built over the same store stands in for a process restart.
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600}}
	restarted := NewAuthService(
		localstore.NewUserRepository(st),
		localstore.NewSessionRepository(st),
		utils.NewIDGenerator(),
		cfg,
	)
	user, err := restarted.RestoreSession(ctx)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if user == nil || user.Email != "a@x.com" {
		t.Fatalf("expected restored session for a@x.com, got %+v", user)
	}

	if err := restarted.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	user, err = restarted.RestoreSession(ctx)
	if err != nil {
		t.Fatalf("restore after logout: %v", err)
	}
	if user != nil {
		t.Fatalf("session survived logout: %+v", user)
	}
}

func TestRestoreSessionDoesNotRevalidate(t *testing.T) {
	ctx := context.Background()
	svc, st := newAuthService(t)
	register(t, svc, "A", "a@x.com", "secret")
	if _, err := svc.Login(ctx, &models.LoginRequest{Email: "a@x.com", Password: "secret"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	// Clearing the users collection leaves the persisted session intact;
	// restore still returns it, as the reference does.
	if err := st.Set(store.KeyUsers, []byte(`[]`)); err != nil {
		t.Fatalf("clear users: %v", err)
	}
	user, err := svc.RestoreSession(ctx)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if user == nil {
		t.Fatal("expected session despite cleared users collection")
	}
}

func TestLoginBackfillsLegacyAccounts(t *testing.T) {
	ctx := context.Background()
	svc, st := newAuthService(t)

	// A record written by an earlier version may lack id and registeredAt.
	if err := st.Set(store.KeyUsers, []byte(`[{"id":0,"name":"Old","email":"old@x.com","password":"secret"}]`)); err != nil {
		t.Fatalf("seed legacy user: %v", err)
	}

	resp, err := svc.Login(ctx, &models.LoginRequest{Email: "old@x.com", Password: "secret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.User.ID == 0 {
		t.Fatal("id not backfilled")
	}
	if resp.User.RegisteredAt.IsZero() {
		t.Fatal("registeredAt not backfilled")
	}
}
