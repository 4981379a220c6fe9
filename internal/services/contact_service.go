package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/globopersona/marketing-dashboard/internal/models"
	"github.com/globopersona/marketing-dashboard/internal/repositories"
	"github.com/globopersona/marketing-dashboard/internal/search"
	"github.com/globopersona/marketing-dashboard/internal/utils"
)

// ContactService handles contact business logic
type ContactService struct {
	contactRepo repositories.ContactRepository
	ids         *utils.IDGenerator
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo repositories.ContactRepository, ids *utils.IDGenerator) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		ids:         ids,
	}
}

// GetContacts returns contacts matching the search term and segment filter
func (s *ContactService) GetContacts(ctx context.Context, term, segment string) ([]models.Contact, error) {
	contacts, err := s.contactRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return search.Contacts(contacts, term, segment), nil
}

// CreateContact adds a contact with a fresh join date and a zero campaign
// count
func (s *ContactService) CreateContact(ctx context.Context, req *models.CreateContactRequest) (*models.Contact, error) {
	if !req.Segment.Valid() {
		return nil, ErrInvalidSegment
	}
	if !req.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	contact := &models.Contact{
		ID:       s.ids.Next(),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Segment:  req.Segment,
		Status:   req.Status,
		JoinDate: time.Now().Format(time.RFC3339),
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// DeleteContact removes a contact; deleting an absent ID changes nothing
func (s *ContactService) DeleteContact(ctx context.Context, id int64) error {
	return s.contactRepo.Delete(ctx, id)
}

// ImportCSV reads contact rows (name,email,phone,segment,status) and creates
// each through the repository. A header row is skipped when detected. It
// returns the number of contacts imported.
func (s *ContactService) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // rows may omit trailing columns

	imported := 0
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read csv: %w", err)
		}
		line++
		if len(record) < 2 {
			return imported, fmt.Errorf("line %d: expected at least name and email", line)
		}
		if line == 1 && strings.EqualFold(record[0], "name") {
			continue
		}

		req := models.CreateContactRequest{
			Name:    record[0],
			Email:   record[1],
			Segment: models.SegmentNew,
			Status:  models.ContactActive,
		}
		if len(record) > 2 {
			req.Phone = record[2]
		}
		if len(record) > 3 && record[3] != "" {
			req.Segment = models.ContactSegment(record[3])
		}
		if len(record) > 4 && record[4] != "" {
			req.Status = models.ContactStatus(record[4])
		}

		if _, err := s.CreateContact(ctx, &req); err != nil {
			return imported, fmt.Errorf("line %d: %w", line, err)
		}
		imported++
	}
	return imported, nil
}
