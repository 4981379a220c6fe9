package models

// CampaignType is the delivery channel of a campaign
type CampaignType string

// Campaign types
const (
	TypeEmail  CampaignType = "Email"
	TypeSMS    CampaignType = "SMS"
	TypeSocial CampaignType = "Social"
	TypePush   CampaignType = "Push"
)

// Valid reports whether t is a known campaign type
func (t CampaignType) Valid() bool {
	switch t {
	case TypeEmail, TypeSMS, TypeSocial, TypePush:
		return true
	}
	return false
}

// CampaignStatus is the lifecycle state of a campaign
type CampaignStatus string

// Campaign statuses
const (
	StatusDraft     CampaignStatus = "Draft"
	StatusScheduled CampaignStatus = "Scheduled"
	StatusActive    CampaignStatus = "Active"
	StatusPaused    CampaignStatus = "Paused"
	StatusCompleted CampaignStatus = "Completed"
)

// Valid reports whether s is a known campaign status
func (s CampaignStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusScheduled, StatusActive, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// Campaign represents a marketing campaign
type Campaign struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Type        CampaignType   `json:"type"`
	Status      CampaignStatus `json:"status"`
	Subject     string         `json:"subject,omitempty"`
	Audience    int            `json:"audience"`
	Budget      string         `json:"budget"` // free-form, may carry a currency prefix
	StartDate   string         `json:"startDate"`
	EndDate     string         `json:"endDate"`
	Description string         `json:"description,omitempty"`
	Tags        string         `json:"tags,omitempty"` // comma-separated
	Sent        int            `json:"sent"`
	Opens       int            `json:"opens"`
	Clicks      int            `json:"clicks"`
}

// CampaignPatch carries a field-by-field update; nil fields are left as is.
// The sent/opens/clicks counters are not editable through the form and so
// have no patch fields.
type CampaignPatch struct {
	Name        *string         `json:"name,omitempty"`
	Type        *CampaignType   `json:"type,omitempty"`
	Status      *CampaignStatus `json:"status,omitempty"`
	Subject     *string         `json:"subject,omitempty"`
	Audience    *int            `json:"audience,omitempty"`
	Budget      *string         `json:"budget,omitempty"`
	StartDate   *string         `json:"startDate,omitempty"`
	EndDate     *string         `json:"endDate,omitempty"`
	Description *string         `json:"description,omitempty"`
	Tags        *string         `json:"tags,omitempty"`
}

// Apply merges the patch into c.
func (p CampaignPatch) Apply(c *Campaign) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Subject != nil {
		c.Subject = *p.Subject
	}
	if p.Audience != nil {
		c.Audience = *p.Audience
	}
	if p.Budget != nil {
		c.Budget = *p.Budget
	}
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		c.EndDate = *p.EndDate
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Tags != nil {
		c.Tags = *p.Tags
	}
}
