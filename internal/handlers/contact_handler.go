package handlers

import (
	"net/http"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

func (h *ContactHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/contact", h.Send)
}

func (h *ContactHandler) Send(c *gin.Context) {
	var req dto.ContactRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.contactService.Send(c.Request.Context(), &req); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Message sent"})
}
