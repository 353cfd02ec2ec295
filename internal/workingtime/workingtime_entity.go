package workingtime

import "time"

type WorkingTime struct {
	ID         uint      `gorm:"primaryKey"`
	Date       time.Time `gorm:"type:date;not null;index"`
	StartTime  string    `gorm:"size:5;not null"`
	EndTime    string    `gorm:"size:5;not null"`
	EmployeeID string    `gorm:"not null;index"`
}
