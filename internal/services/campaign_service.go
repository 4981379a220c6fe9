package services

import (
	"context"

	"github.com/globopersona/marketing-dashboard/internal/models"
	"github.com/globopersona/marketing-dashboard/internal/repositories"
	"github.com/globopersona/marketing-dashboard/internal/search"
	"github.com/globopersona/marketing-dashboard/internal/utils"
)

// CampaignService handles campaign business logic
type CampaignService struct {
	campaignRepo repositories.CampaignRepository
	ids          *utils.IDGenerator
}

// NewCampaignService creates a new CampaignService
func NewCampaignService(campaignRepo repositories.CampaignRepository, ids *utils.IDGenerator) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		ids:          ids,
	}
}

// GetCampaigns returns campaigns matching the search term and status filter.
// An empty term and the "all" sentinel return the full sequence unchanged.
func (s *CampaignService) GetCampaigns(ctx context.Context, term, status string) ([]models.Campaign, error) {
	campaigns, err := s.campaignRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return search.Campaigns(campaigns, term, status), nil
}

// GetCampaignByID retrieves a single campaign, (nil, nil) when absent
func (s *CampaignService) GetCampaignByID(ctx context.Context, id int64) (*models.Campaign, error) {
	return s.campaignRepo.FindByID(ctx, id)
}

// CreateCampaign creates a campaign with zeroed delivery metrics
func (s *CampaignService) CreateCampaign(ctx context.Context, req *models.CreateCampaignRequest) (*models.Campaign, error) {
	if !req.Type.Valid() {
		return nil, ErrInvalidType
	}
	if !req.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	campaign := &models.Campaign{
		ID:          s.ids.Next(),
		Name:        req.Name,
		Type:        req.Type,
		Status:      req.Status,
		Subject:     req.Subject,
		Audience:    req.Audience,
		Budget:      req.Budget,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Tags:        req.Tags,
	}
	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// UpdateCampaign patches an existing campaign. An unknown ID is a silent
// no-op returning (nil, nil).
func (s *CampaignService) UpdateCampaign(ctx context.Context, id int64, patch models.CampaignPatch) (*models.Campaign, error) {
	if patch.Type != nil && !patch.Type.Valid() {
		return nil, ErrInvalidType
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.campaignRepo.Update(ctx, id, patch)
}

// DeleteCampaign removes a campaign; deleting an absent ID changes nothing
func (s *CampaignService) DeleteCampaign(ctx context.Context, id int64) error {
	return s.campaignRepo.Delete(ctx, id)
}
