package models

import "gorm.io/datatypes"

// Project is a portfolio entry. Tags keep their insertion order.
type Project struct {
	BaseModel
	Title          string                      `gorm:"not null" json:"title"`
	Description    string                      `gorm:"not null" json:"description"`
	Image          string                      `json:"image"`
	Tags           datatypes.JSONSlice[string] `json:"tags"`
	LiveLink       string                      `json:"liveLink"`
	GithubFrontend string                      `json:"githubFrontend"`
	GithubBackend  string                      `json:"githubBackend"`
	Featured       bool                        `gorm:"default:false" json:"featured"`
}
