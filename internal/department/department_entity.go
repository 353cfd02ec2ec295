package department

type Department struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	CompanyID uint   `gorm:"not null;index"`
}
