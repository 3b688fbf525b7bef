package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kland-web/internal/dto"
	"github.com/noah-isme/kland-web/internal/models"
	"github.com/noah-isme/kland-web/pkg/flash"
	"github.com/noah-isme/kland-web/pkg/response"
)

type messageService interface {
	Submit(ctx context.Context, req dto.ContactRequest) (*models.Message, error)
	Delete(ctx context.Context, id int64) error
}

// MessageHandler serves the contact form and message removal.
type MessageHandler struct {
	messages messageService
}

// NewMessageHandler constructs a MessageHandler.
func NewMessageHandler(messages messageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// ContactPage godoc
// @Summary Contact form
// @Tags Contact
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /contackt [get]
func (h *MessageHandler) ContactPage(c *gin.Context) {
	response.Page(c, gin.H{"form": []string{"name", "phone", "message"}})
}

// Contact godoc
// @Summary Send a contact request
// @Tags Contact
// @Accept x-www-form-urlencoded
// @Param name formData string true "Name"
// @Param phone formData string true "Phone"
// @Param message formData string true "Message (max 800)"
// @Success 303 "Redirect to /contackt"
// @Router /contackt [post]
func (h *MessageHandler) Contact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Redirect(c, "/contackt", flash.Error, "form validation failed")
		return
	}
	if _, err := h.messages.Submit(c.Request.Context(), req); err != nil {
		redirectOnError(c, "/contackt", err)
		return
	}
	response.Redirect(c, "/contackt", flash.Success, "Your request has been sent!")
}

// Delete godoc
// @Summary Delete a contact message
// @Tags Admin
// @Param id path int true "Message ID"
// @Success 303 "Redirect to /admin"
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /delete_message/{id} [post]
func (h *MessageHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.messages.Delete(c.Request.Context(), id); err != nil {
		redirectOnError(c, "/admin", err)
		return
	}
	response.Redirect(c, "/admin", flash.Success, "Message deleted")
}
