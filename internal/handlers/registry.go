package handlers

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	ProjectHandler     *ProjectHandler
	ExperienceHandler  *ExperienceHandler
	EducationHandler   *EducationHandler
	AchievementHandler *AchievementHandler
	ReviewHandler      *ReviewHandler
	UploadHandler      *UploadHandler
	ContactHandler     *ContactHandler
	HealthHandler      *HealthHandler
}
