package handlers

import (
	"net/http"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type EducationHandler struct {
	*BaseHandler
	educationService services.EducationService
}

func NewEducationHandler(base *BaseHandler, educationService services.EducationService) *EducationHandler {
	return &EducationHandler{
		BaseHandler:      base,
		educationService: educationService,
	}
}

func (h *EducationHandler) RegisterRoutes(r *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	r.GET("/education", h.List)

	protected := r.Group("/education")
	protected.Use(requireAuth)
	{
		protected.POST("", h.Create)
		protected.PUT("/:id", h.Update)
		protected.DELETE("/:id", h.Delete)
	}
}

func (h *EducationHandler) List(c *gin.Context) {
	entries, err := h.educationService.List(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *EducationHandler) Create(c *gin.Context) {
	var input dto.EducationInput
	if !h.BindAndValidateJSON(c, &input) {
		return
	}

	entry, err := h.educationService.Create(c.Request.Context(), &input)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *EducationHandler) Update(c *gin.Context) {
	var input dto.EducationInput
	if !h.BindAndValidateJSON(c, &input) {
		return
	}

	entry, err := h.educationService.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *EducationHandler) Delete(c *gin.Context) {
	if err := h.educationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Education removed"})
}
