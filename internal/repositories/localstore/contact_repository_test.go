package localstore

import (
	"context"
	"testing"

	"github.com/globopersona/marketing-dashboard/internal/models"
	"github.com/globopersona/marketing-dashboard/internal/store"
)

func TestContactSeedAndCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewContactRepository(store.NewMemoryStore())

	contacts, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(contacts) != 5 {
		t.Fatalf("expected 5 seeded contacts, got %d", len(contacts))
	}

	contact := &models.Contact{
		ID:      2000,
		Name:    "Asha",
		Email:   "asha@example.com",
		Segment: models.SegmentNew,
		Status:  models.ContactActive,
	}
	if err := repo.Create(ctx, contact); err != nil {
		t.Fatalf("create: %v", err)
	}

	contacts, _ = repo.FindAll(ctx)
	if contacts[0].Email != "asha@example.com" {
		t.Fatalf("new contact not first, got %q", contacts[0].Email)
	}
	if len(contacts) != 6 {
		t.Fatalf("expected 6 contacts, got %d", len(contacts))
	}
}

func TestContactDelete(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	repo := NewContactRepository(st)

	if err := repo.Delete(ctx, 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	contacts, _ := repo.FindAll(ctx)
	for _, c := range contacts {
		if c.ID == 2 {
			t.Fatal("contact still present after delete")
		}
	}

	// Write-through: a fresh repository over the same store sees the
	// deletion.
	reloaded, err := NewContactRepository(st).FindAll(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded) != 4 {
		t.Fatalf("deletion not persisted, got %d records", len(reloaded))
	}
}

func TestSettingsToggleMirrorsDarkMode(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	repo := NewSettingsRepository(st)

	settings, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(settings) != 5 {
		t.Fatalf("expected 5 seeded settings, got %d", len(settings))
	}

	var darkID int64
	for _, s := range settings {
		if s.Title == models.SettingDarkMode {
			darkID = s.ID
		}
	}

	toggled, err := repo.Toggle(ctx, darkID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if toggled == nil || !toggled.Enabled {
		t.Fatalf("expected dark mode enabled, got %+v", toggled)
	}

	doc, found, _ := st.Get(store.KeyDarkMode)
	if !found || string(doc) != "true" {
		t.Fatalf("darkMode key not mirrored, found=%v doc=%q", found, doc)
	}

	if _, err := repo.Toggle(ctx, darkID); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	doc, _, _ = st.Get(store.KeyDarkMode)
	if string(doc) != "false" {
		t.Fatalf("darkMode key not flipped back, doc=%q", doc)
	}
}

func TestSettingsToggleUnknownID(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepository(store.NewMemoryStore())

	toggled, err := repo.Toggle(ctx, 42)
	if err != nil {
		t.Fatalf("toggle unknown id: %v", err)
	}
	if toggled != nil {
		t.Fatalf("expected nil for unknown id, got %+v", toggled)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(store.NewMemoryStore())

	user, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get empty session: %v", err)
	}
	if user != nil {
		t.Fatalf("expected empty session, got %+v", user)
	}

	if err := repo.Set(ctx, &models.User{ID: 9, Email: "a@x.com"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	user, err = repo.Get(ctx)
	if err != nil || user == nil {
		t.Fatalf("get: user=%v err=%v", user, err)
	}
	if user.Email != "a@x.com" {
		t.Fatalf("wrong session user: %+v", user)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	user, _ = repo.Get(ctx)
	if user != nil {
		t.Fatal("session survived clear")
	}
}
