package routes

import (
	"portfolio_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every handler under /api. requireAuth is the
// bearer-token guard applied to mutating routes.
func RegisterRoutes(router *gin.Engine, appHandlers *handlers.AppHandlers, requireAuth gin.HandlerFunc) {
	api := router.Group("/api")
	{
		appHandlers.HealthHandler.RegisterRoutes(api)
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ProjectHandler.RegisterRoutes(api, requireAuth)
		appHandlers.ExperienceHandler.RegisterRoutes(api, requireAuth)
		appHandlers.EducationHandler.RegisterRoutes(api, requireAuth)
		appHandlers.AchievementHandler.RegisterRoutes(api, requireAuth)
		appHandlers.ReviewHandler.RegisterRoutes(api, requireAuth)
		appHandlers.UploadHandler.RegisterRoutes(api, requireAuth)
		appHandlers.ContactHandler.RegisterRoutes(api)
	}
}
