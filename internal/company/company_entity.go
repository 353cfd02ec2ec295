package company

type Company struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"size:255;not null"`
	Address          string `gorm:"size:255;not null"`
	City             string `gorm:"size:255;not null"`
	Country          string `gorm:"size:255;not null"`
	Email            string `gorm:"size:255;not null;uniqueIndex"`
	CompanyManagerID string `gorm:"column:company_manager_id;not null;index"`

	// Default working window used by bulk working-time creation, "HH:MM".
	StartTime string `gorm:"size:5;not null;default:'08:00'"`
	EndTime   string `gorm:"size:5;not null;default:'16:00'"`
}
