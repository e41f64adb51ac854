package models

import "time"

type Achievement struct {
	BaseModel
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
	Icon        string     `json:"icon"`
}
