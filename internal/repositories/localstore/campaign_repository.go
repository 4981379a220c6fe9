package localstore

import (
	"context"

	"github.com/globopersona/marketing-dashboard/internal/models"
	"github.com/globopersona/marketing-dashboard/internal/repositories"
	"github.com/globopersona/marketing-dashboard/internal/store"
)

// CampaignRepository implements repositories.CampaignRepository over the
// campaigns store key
type CampaignRepository struct {
	col *collection[models.Campaign]
}

// NewCampaignRepository creates a new CampaignRepository
func NewCampaignRepository(st store.Store) repositories.CampaignRepository {
	return &CampaignRepository{
		col: newCollection(st, store.KeyCampaigns, seedCampaigns()),
	}
}

// FindAll returns all campaigns, newest-first
func (r *CampaignRepository) FindAll(ctx context.Context) ([]models.Campaign, error) {
	return r.col.all()
}

// FindByID finds a campaign by ID
func (r *CampaignRepository) FindByID(ctx context.Context, id int64) (*models.Campaign, error) {
	campaigns, err := r.col.all()
	if err != nil {
		return nil, err
	}
	for i := range campaigns {
		if campaigns[i].ID == id {
			return &campaigns[i], nil
		}
	}
	return nil, nil
}

// Create prepends a new campaign so the sequence stays newest-first
func (r *CampaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	return r.col.mutate(func(campaigns []models.Campaign) []models.Campaign {
		return append([]models.Campaign{*campaign}, campaigns...)
	})
}

// Update merges the patch into the matching campaign. An unknown ID still
// rewrites the unchanged sequence and surfaces no error.
func (r *CampaignRepository) Update(ctx context.Context, id int64, patch models.CampaignPatch) (*models.Campaign, error) {
	var updated *models.Campaign
	err := r.col.mutate(func(campaigns []models.Campaign) []models.Campaign {
		for i := range campaigns {
			if campaigns[i].ID == id {
				patch.Apply(&campaigns[i])
				cp := campaigns[i]
				updated = &cp
				break
			}
		}
		return campaigns
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the matching campaign
func (r *CampaignRepository) Delete(ctx context.Context, id int64) error {
	return r.col.mutate(func(campaigns []models.Campaign) []models.Campaign {
		filtered := campaigns[:0]
		for _, c := range campaigns {
			if c.ID != id {
				filtered = append(filtered, c)
			}
		}
		return filtered
	})
}
