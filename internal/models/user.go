package models

// User is the single administrator identity. It is created by the seed
// tool or on first startup and mutated only through password changes.
type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
}
