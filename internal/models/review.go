package models

// Review is a client testimonial shown on the public site.
type Review struct {
	BaseModel
	ClientName string `gorm:"not null" json:"clientName"`
	Company    string `json:"company"`
	Review     string `gorm:"not null" json:"review"`
	Rating     int    `gorm:"default:5;check:rating >= 1 AND rating <= 5" json:"rating"`
	Image      string `json:"image"`
}
