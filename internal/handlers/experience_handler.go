package handlers

import (
	"net/http"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	*BaseHandler
	experienceService services.ExperienceService
}

func NewExperienceHandler(base *BaseHandler, experienceService services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{
		BaseHandler:       base,
		experienceService: experienceService,
	}
}

func (h *ExperienceHandler) RegisterRoutes(r *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	r.GET("/experience", h.List)

	protected := r.Group("/experience")
	protected.Use(requireAuth)
	{
		protected.POST("", h.Create)
		protected.PUT("/:id", h.Update)
		protected.DELETE("/:id", h.Delete)
	}
}

func (h *ExperienceHandler) List(c *gin.Context) {
	entries, err := h.experienceService.List(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	var input dto.ExperienceInput
	if !h.BindAndValidateJSON(c, &input) {
		return
	}

	entry, err := h.experienceService.Create(c.Request.Context(), &input)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	var input dto.ExperienceInput
	if !h.BindAndValidateJSON(c, &input) {
		return
	}

	entry, err := h.experienceService.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	if err := h.experienceService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Experience removed"})
}
