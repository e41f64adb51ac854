package dto

import "time"

// Input payloads for the content collections. Create and update share
// the same shape; required fields are enforced on both.

type ProjectInput struct {
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description" validate:"required"`
	Image          string   `json:"image"`
	Tags           []string `json:"tags"`
	LiveLink       string   `json:"liveLink"`
	GithubFrontend string   `json:"githubFrontend"`
	GithubBackend  string   `json:"githubBackend"`
	Featured       bool     `json:"featured"`
}

type ExperienceInput struct {
	Company     string `json:"company" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Duration    string `json:"duration" validate:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type EducationInput struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	Duration    string `json:"duration" validate:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type AchievementInput struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
	Icon        string     `json:"icon"`
}

type ReviewInput struct {
	ClientName string `json:"clientName" validate:"required"`
	Company    string `json:"company"`
	Review     string `json:"review" validate:"required"`
	Rating     int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Image      string `json:"image"`
}
