package models

// LoginRequest defines the structure for login requests
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest defines the structure for registration requests
type RegisterRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// ForgotPasswordRequest defines the structure for password-reset requests
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreateCampaignRequest defines the structure for campaign creation.
// The sent/opens/clicks counters always start at zero and are not part of
// the request.
type CreateCampaignRequest struct {
	Name        string         `json:"name" binding:"required"`
	Type        CampaignType   `json:"type" binding:"required"`
	Status      CampaignStatus `json:"status" binding:"required"`
	Subject     string         `json:"subject"`
	Audience    int            `json:"audience"`
	Budget      string         `json:"budget"`
	StartDate   string         `json:"startDate"`
	EndDate     string         `json:"endDate"`
	Description string         `json:"description"`
	Tags        string         `json:"tags"`
}

// CreateContactRequest defines the structure for adding a contact.
// JoinDate and the campaigns counter are assigned at creation.
type CreateContactRequest struct {
	Name    string         `json:"name" binding:"required"`
	Email   string         `json:"email" binding:"required,email"`
	Phone   string         `json:"phone"`
	Segment ContactSegment `json:"segment" binding:"required"`
	Status  ContactStatus  `json:"status" binding:"required"`
}
