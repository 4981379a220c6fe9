package localstore

import (
	"context"
	"testing"

	"github.com/globopersona/marketing-dashboard/internal/models"
	"github.com/globopersona/marketing-dashboard/internal/store"
)

func TestCampaignSeedingHappensOnce(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	repo := NewCampaignRepository(st)
	campaigns, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if len(campaigns) != 5 {
		t.Fatalf("expected 5 seeded campaigns, got %d", len(campaigns))
	}
	if campaigns[0].Name != "Summer Sale 2025" {
		t.Fatalf("unexpected first seed: %q", campaigns[0].Name)
	}

	// A fresh repository over the same store must load what was persisted,
	// not reseed.
	again, err := NewCampaignRepository(st).FindAll(ctx)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if len(again) != 5 {
		t.Fatalf("reseed or duplication detected: %d records", len(again))
	}
}

func TestCampaignEmptyCollectionDoesNotReseed(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	repo := NewCampaignRepository(st)
	campaigns, _ := repo.FindAll(ctx)
	for _, c := range campaigns {
		if err := repo.Delete(ctx, c.ID); err != nil {
			t.Fatalf("delete %d: %v", c.ID, err)
		}
	}

	// The key now holds an empty array; a new load must keep it empty.
	left, err := NewCampaignRepository(st).FindAll(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("seeds resurrected after delete-all: %d records", len(left))
	}
}

func TestCampaignCreatePrependsWithFreshID(t *testing.T) {
	ctx := context.Background()
	repo := NewCampaignRepository(store.NewMemoryStore())

	before, _ := repo.FindAll(ctx)
	seen := make(map[int64]bool)
	for _, c := range before {
		seen[c.ID] = true
	}

	first := &models.Campaign{ID: 1000, Name: "Spring Teaser", Type: models.TypeEmail, Status: models.StatusDraft}
	second := &models.Campaign{ID: 1001, Name: "Spring Launch", Type: models.TypePush, Status: models.StatusScheduled}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("create second: %v", err)
	}

	campaigns, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if seen[first.ID] || seen[second.ID] {
		t.Fatal("created IDs collide with existing records")
	}
	// Newest-first: the second creation leads.
	if campaigns[0].Name != "Spring Launch" || campaigns[1].Name != "Spring Teaser" {
		t.Fatalf("expected reverse-creation order, got %q then %q", campaigns[0].Name, campaigns[1].Name)
	}
}

func TestCampaignUpdateMergesPatch(t *testing.T) {
	ctx := context.Background()
	repo := NewCampaignRepository(store.NewMemoryStore())

	name := "Renamed Sale"
	status := models.StatusPaused
	updated, err := repo.Update(ctx, 1, models.CampaignPatch{Name: &name, Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated == nil {
		t.Fatal("expected updated record")
	}
	if updated.Name != name || updated.Status != status {
		t.Fatalf("patch not applied: %+v", updated)
	}
	// Unpatched fields are retained.
	if updated.Budget != "₹2,500" || updated.Sent != 1250 {
		t.Fatalf("unpatched fields lost: %+v", updated)
	}

	got, _ := repo.FindByID(ctx, 1)
	if got == nil || got.Name != name {
		t.Fatal("update not persisted")
	}
}

func TestCampaignUpdateUnknownIDIsSilentNoOp(t *testing.T) {
	ctx := context.Background()
	repo := NewCampaignRepository(store.NewMemoryStore())

	name := "Ghost"
	updated, err := repo.Update(ctx, 999999, models.CampaignPatch{Name: &name})
	if err != nil {
		t.Fatalf("update unknown id: %v", err)
	}
	if updated != nil {
		t.Fatalf("expected nil for unknown id, got %+v", updated)
	}

	campaigns, _ := repo.FindAll(ctx)
	if len(campaigns) != 5 {
		t.Fatalf("collection changed by no-op update: %d records", len(campaigns))
	}
}

func TestCampaignDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewCampaignRepository(store.NewMemoryStore())

	if err := repo.Delete(ctx, 3); err != nil {
		t.Fatalf("delete: %v", err)
	}
	campaigns, _ := repo.FindAll(ctx)
	for _, c := range campaigns {
		if c.ID == 3 {
			t.Fatal("record still present after delete")
		}
	}
	if len(campaigns) != 4 {
		t.Fatalf("expected 4 records, got %d", len(campaigns))
	}

	if err := repo.Delete(ctx, 3); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
	campaigns, _ = repo.FindAll(ctx)
	if len(campaigns) != 4 {
		t.Fatalf("repeat delete changed the collection: %d records", len(campaigns))
	}
}

func TestCampaignCorruptDocumentSurfacesError(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	if err := st.Set(store.KeyCampaigns, []byte(`{not json`)); err != nil {
		t.Fatalf("seed corrupt doc: %v", err)
	}

	if _, err := NewCampaignRepository(st).FindAll(ctx); err == nil {
		t.Fatal("expected error for corrupt persisted state")
	}
}
