package services

import (
	"context"

	"github.com/globopersona/marketing-dashboard/internal/models"
	"github.com/globopersona/marketing-dashboard/internal/repositories"
)

// DashboardStats aggregates campaign and contact figures for the overview
// page
type DashboardStats struct {
	TotalCampaigns  int     `json:"totalCampaigns"`
	ActiveCampaigns int     `json:"activeCampaigns"`
	TotalContacts   int     `json:"totalContacts"`
	TotalSent       int     `json:"totalSent"`
	TotalOpens      int     `json:"totalOpens"`
	TotalClicks     int     `json:"totalClicks"`
	OpenRate        float64 `json:"openRate"`
	ClickRate       float64 `json:"clickRate"`
}

// DashboardService computes overview statistics from the live collections
type DashboardService struct {
	campaignRepo repositories.CampaignRepository
	contactRepo  repositories.ContactRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(campaignRepo repositories.CampaignRepository, contactRepo repositories.ContactRepository) *DashboardService {
	return &DashboardService{
		campaignRepo: campaignRepo,
		contactRepo:  contactRepo,
	}
}

// GetStats aggregates the current collections
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	campaigns, err := s.campaignRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	contacts, err := s.contactRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalCampaigns: len(campaigns),
		TotalContacts:  len(contacts),
	}
	for _, c := range campaigns {
		if c.Status == models.StatusActive {
			stats.ActiveCampaigns++
		}
		stats.TotalSent += c.Sent
		stats.TotalOpens += c.Opens
		stats.TotalClicks += c.Clicks
	}
	if stats.TotalSent > 0 {
		stats.OpenRate = float64(stats.TotalOpens) / float64(stats.TotalSent)
		stats.ClickRate = float64(stats.TotalClicks) / float64(stats.TotalSent)
	}
	return stats, nil
}
