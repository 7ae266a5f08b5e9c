// controllers/contact_controller.go
package controllers

import (
	"roamsafe/models"
	"roamsafe/services"
	"roamsafe/utils"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	contactService *services.ContactService
}

func NewContactController(contactService *services.ContactService) *ContactController {
	return &ContactController{
		contactService: contactService,
	}
}

// ListContacts returns the user's emergency contacts.
// @Summary List emergency contacts
// @Tags EmergencyContacts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=[]models.EmergencyContact}
// @Router /emergency-contacts [get]
func (cc *ContactController) ListContacts(c *gin.Context) {
	contacts, err := cc.contactService.ListContacts(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Contacts retrieved successfully", contacts)
}

// AddContact appends an emergency contact.
// @Summary Add emergency contact
// @Tags EmergencyContacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.APIResponse{data=[]models.EmergencyContact}
// @Router /emergency-contacts [post]
func (cc *ContactController) AddContact(c *gin.Context) {
	var req models.AddContactRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	contacts, err := cc.contactService.AddContact(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Contact added successfully", contacts)
}

// UpdateContact edits a contact by id.
// @Summary Update emergency contact
// @Tags EmergencyContacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param contactId path string true "Contact ID"
// @Success 200 {object} models.APIResponse{data=[]models.EmergencyContact}
// @Router /emergency-contacts/{contactId} [put]
func (cc *ContactController) UpdateContact(c *gin.Context) {
	var req models.UpdateContactRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	contacts, err := cc.contactService.UpdateContact(c.Request.Context(), c.GetString("userID"), c.Param("contactId"), req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Contact updated successfully", contacts)
}

// DeleteContact removes a contact by id.
// @Summary Delete emergency contact
// @Tags EmergencyContacts
// @Produce json
// @Security BearerAuth
// @Param contactId path string true "Contact ID"
// @Success 200 {object} models.APIResponse{data=[]models.EmergencyContact}
// @Router /emergency-contacts/{contactId} [delete]
func (cc *ContactController) DeleteContact(c *gin.Context) {
	contacts, err := cc.contactService.DeleteContact(c.Request.Context(), c.GetString("userID"), c.Param("contactId"))
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Contact deleted successfully", contacts)
}
