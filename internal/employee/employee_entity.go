package employee

import "time"

type Employee struct {
	ID           string    `gorm:"primaryKey"`
	FirstName    string    `gorm:"size:255;not null"`
	LastName     string    `gorm:"size:255;not null"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	DateOfBirth  time.Time `gorm:"type:date;not null"`
	HourlyRate   float64   `gorm:"not null"`
	DepartmentID uint      `gorm:"not null;index"`
}
