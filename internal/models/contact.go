package models

// ContactSegment classifies a contact for targeting
type ContactSegment string

// Contact segments
const (
	SegmentNew       ContactSegment = "New"
	SegmentPremium   ContactSegment = "Premium"
	SegmentReturning ContactSegment = "Returning"
	SegmentInactive  ContactSegment = "Inactive"
)

// Valid reports whether s is a known segment
func (s ContactSegment) Valid() bool {
	switch s {
	case SegmentNew, SegmentPremium, SegmentReturning, SegmentInactive:
		return true
	}
	return false
}

// ContactStatus is the activity state of a contact
type ContactStatus string

// Contact statuses
const (
	ContactActive   ContactStatus = "Active"
	ContactInactive ContactStatus = "Inactive"
)

// Valid reports whether s is a known contact status
func (s ContactStatus) Valid() bool {
	return s == ContactActive || s == ContactInactive
}

// Contact represents an audience member
type Contact struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Segment  ContactSegment `json:"segment"`
	Status   ContactStatus  `json:"status"`
	JoinDate string         `json:"joinDate"`
	// Campaigns is a free-standing count, not a foreign key.
	Campaigns int `json:"campaigns"`
}
