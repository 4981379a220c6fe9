package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/globopersona/marketing-dashboard/internal/models"
	"github.com/globopersona/marketing-dashboard/internal/search"
	"github.com/globopersona/marketing-dashboard/internal/services"
)

// ContactHandler handles contact-related HTTP requests
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// GetContacts handles GET /contacts?search=&segment=
func (h *ContactHandler) GetContacts(c *gin.Context) {
	term := c.Query("search")
	segment := c.DefaultQuery("segment", search.All)

	contacts, err := h.contactService.GetContacts(c.Request.Context(), term, segment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get contacts: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// CreateContact handles POST /contacts
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req models.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactService.CreateContact(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSegment) || errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Contact added successfully!",
		"contact": contact,
	})
}

// ImportContacts handles POST /contacts/import with a CSV request body
func (h *ContactHandler) ImportContacts(c *gin.Context) {
	imported, err := h.contactService.ImportCSV(c.Request.Context(), c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    err.Error(),
			"imported": imported,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Contacts imported successfully!",
		"imported": imported,
	})
}

// DeleteContact handles DELETE /contacts/:id
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.contactService.DeleteContact(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted"})
}
