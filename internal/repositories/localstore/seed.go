package localstore

import "github.com/globopersona/marketing-dashboard/internal/models"

// Sample datasets written to a collection key the first time it is loaded.
// These match the demo data the dashboard ships with.

func seedCampaigns() []models.Campaign {
	return []models.Campaign{
		{
			ID:        1,
			Name:      "Summer Sale 2025",
			Status:    models.StatusActive,
			Type:      models.TypeEmail,
			Audience:  1250,
			Sent:      1250,
			Opens:     856,
			Clicks:    312,
			Budget:    "₹2,500",
			StartDate: "2025-12-28",
			EndDate:   "2026-01-15",
		},
		{
			ID:        2,
			Name:      "Product Launch Announcement",
			Status:    models.StatusCompleted,
			Type:      models.TypeEmail,
			Audience:  3200,
			Sent:      3200,
			Opens:     2145,
			Clicks:    890,
			Budget:    "₹5,000",
			StartDate: "2025-12-25",
			EndDate:   "2025-12-27",
		},
		{
			ID:        3,
			Name:      "Holiday Greetings",
			Status:    models.StatusScheduled,
			Type:      models.TypeSMS,
			Audience:  1800,
			Budget:    "₹1,200",
			StartDate: "2026-01-01",
			EndDate:   "2026-01-02",
		},
		{
			ID:        4,
			Name:      "Newsletter December",
			Status:    models.StatusActive,
			Type:      models.TypeEmail,
			Audience:  2100,
			Sent:      2100,
			Opens:     1450,
			Clicks:    523,
			Budget:    "₹3,000",
			StartDate: "2025-12-20",
			EndDate:   "2026-01-05",
		},
		{
			ID:        5,
			Name:      "Black Friday Promo",
			Status:    models.StatusDraft,
			Type:      models.TypeEmail,
			Audience:  4500,
			Budget:    "₹8,000",
			StartDate: "2026-11-25",
			EndDate:   "2026-11-27",
		},
	}
}

func seedContacts() []models.Contact {
	return []models.Contact{
		{
			ID:        1,
			Name:      "Himam",
			Email:     "himam@example.com",
			Phone:     "+91 234-567-8900",
			Segment:   models.SegmentPremium,
			Status:    models.ContactActive,
			JoinDate:  "2024-03-15",
			Campaigns: 12,
		},
		{
			ID:        2,
			Name:      "Nagaraj",
			Email:     "nagaraj@example.com",
			Phone:     "+91 234-567-8901",
			Segment:   models.SegmentNew,
			Status:    models.ContactActive,
			JoinDate:  "2025-12-01",
			Campaigns: 2,
		},
		{
			ID:        3,
			Name:      "Suresh",
			Email:     "suresh@example.com",
			Phone:     "+91 234-567-8902",
			Segment:   models.SegmentReturning,
			Status:    models.ContactActive,
			JoinDate:  "2024-08-20",
			Campaigns: 8,
		},
		{
			ID:        4,
			Name:      "Mahendra",
			Email:     "mahendra@example.com",
			Phone:     "+91 234-567-8903",
			Segment:   models.SegmentInactive,
			Status:    models.ContactInactive,
			JoinDate:  "2023-06-10",
			Campaigns: 15,
		},
		{
			ID:        5,
			Name:      "Ravi",
			Email:     "ravi@example.com",
			Phone:     "+91 234-567-8904",
			Segment:   models.SegmentPremium,
			Status:    models.ContactActive,
			JoinDate:  "2024-01-05",
			Campaigns: 18,
		},
	}
}

func seedSettings() []models.Setting {
	return []models.Setting{
		{
			ID:          1,
			Title:       "Account Privacy",
			Description: "Manage who can see your profile and activity.",
			Icon:        "🔒",
			Enabled:     true,
		},
		{
			ID:          2,
			Title:       "Email Notifications",
			Description: "Receive daily summaries and campaign alerts.",
			Icon:        "📧",
			Enabled:     true,
		},
		{
			ID:          3,
			Title:       models.SettingDarkMode,
			Description: "Switch between light and dark themes.",
			Icon:        "🌙",
			Enabled:     false,
		},
		{
			ID:          4,
			Title:       "Two-Factor Authentication",
			Description: "Add an extra layer of security to your account.",
			Icon:        "🛡️",
			Enabled:     false,
		},
		{
			ID:          5,
			Title:       "Auto-Save Drafts",
			Description: "Automatically save your work every minute.",
			Icon:        "💾",
			Enabled:     true,
		},
	}
}
