package models

type Education struct {
	BaseModel
	Institution string `gorm:"not null" json:"institution"`
	Degree      string `gorm:"not null" json:"degree"`
	Duration    string `gorm:"not null" json:"duration"`
	Description string `json:"description"`
	Order       int    `gorm:"column:sort_order;default:0" json:"order"`
}

// TableName overrides gorm's pluralization; "educations" is not a word.
func (Education) TableName() string {
	return "education"
}
