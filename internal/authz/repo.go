package authz

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=repo.go -destination=mock/repo_mock.go -package=mock
type Repository interface {
	CompanyManagerID(ctx context.Context, companyID uint) (string, error)
	CompanyIDOfDepartment(ctx context.Context, departmentID uint) (uint, error)
	CompanyIDOfEmployee(ctx context.Context, employeeID string) (uint, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CompanyManagerID(ctx context.Context, companyID uint) (string, error) {
	var managerID string
	err := r.db.WithContext(ctx).
		Table("companies").
		Select("company_manager_id").
		Where("id = ?", companyID).
		Take(&managerID).Error
	return managerID, err
}

func (r *repository) CompanyIDOfDepartment(ctx context.Context, departmentID uint) (uint, error) {
	var companyID uint
	err := r.db.WithContext(ctx).
		Table("departments").
		Select("company_id").
		Where("id = ?", departmentID).
		Take(&companyID).Error
	return companyID, err
}

// CompanyIDOfEmployee walks employee -> department -> company.
func (r *repository) CompanyIDOfEmployee(ctx context.Context, employeeID string) (uint, error) {
	var companyID uint
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("departments.company_id").
		Joins("JOIN departments ON departments.id = employees.department_id").
		Where("employees.id = ?", employeeID).
		Take(&companyID).Error
	return companyID, err
}
