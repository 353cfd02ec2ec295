package auth

import "time"

// User is the manager account that owns companies. Employees never log in.
type User struct {
	ID        string `gorm:"primaryKey"`
	FirstName string `gorm:"size:255;not null"`
	LastName  string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
	Password  string `gorm:"not null"`
	CreatedAt time.Time
}

func (User) TableName() string { return "app_users" }

type RefreshToken struct {
	ID          uint   `gorm:"primaryKey"`
	Token       string `gorm:"not null;uniqueIndex"`
	JwtID       string `gorm:"column:jwt_id;not null"`
	IsRevoked   bool   `gorm:"not null;default:false"`
	DateAdded   time.Time
	DateExpired time.Time
	UserID      string `gorm:"not null;index"`
}
