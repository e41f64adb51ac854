package handlers

import (
	"net/http"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AchievementHandler struct {
	*BaseHandler
	achievementService services.AchievementService
}

func NewAchievementHandler(base *BaseHandler, achievementService services.AchievementService) *AchievementHandler {
	return &AchievementHandler{
		BaseHandler:        base,
		achievementService: achievementService,
	}
}

func (h *AchievementHandler) RegisterRoutes(r *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	r.GET("/achievements", h.List)

	protected := r.Group("/achievements")
	protected.Use(requireAuth)
	{
		protected.POST("", h.Create)
		protected.PUT("/:id", h.Update)
		protected.DELETE("/:id", h.Delete)
	}
}

func (h *AchievementHandler) List(c *gin.Context) {
	achievements, err := h.achievementService.List(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, achievements)
}

func (h *AchievementHandler) Create(c *gin.Context) {
	var input dto.AchievementInput
	if !h.BindAndValidateJSON(c, &input) {
		return
	}

	achievement, err := h.achievementService.Create(c.Request.Context(), &input)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, achievement)
}

func (h *AchievementHandler) Update(c *gin.Context) {
	var input dto.AchievementInput
	if !h.BindAndValidateJSON(c, &input) {
		return
	}

	achievement, err := h.achievementService.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, achievement)
}

func (h *AchievementHandler) Delete(c *gin.Context) {
	if err := h.achievementService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Achievement removed"})
}
