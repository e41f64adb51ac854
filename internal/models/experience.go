package models

// Experience is a timeline entry. Order is a manual sort key with no
// uniqueness or gap constraint.
type Experience struct {
	BaseModel
	Company     string `gorm:"not null" json:"company"`
	Role        string `gorm:"not null" json:"role"`
	Duration    string `gorm:"not null" json:"duration"`
	Description string `json:"description"`
	Order       int    `gorm:"column:sort_order;default:0" json:"order"`
}
