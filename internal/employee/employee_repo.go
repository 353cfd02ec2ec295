package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, emp *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByCompany(ctx context.Context, companyID uint) ([]Employee, error)
	FindByDepartment(ctx context.Context, departmentID uint) ([]Employee, error)
	Update(ctx context.Context, emp *Employee) error
	Delete(ctx context.Context, id string) error
	DeleteWorkingTimes(ctx context.Context, employeeID string) error
	EmailInUse(ctx context.Context, email, excludeID string) (bool, error)
	CompanyIDOfDepartment(ctx context.Context, departmentID uint) (uint, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn binds the statement to the active transaction, if any.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.conn(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	return r.conn(ctx).Create(emp).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var emp Employee
	err := r.conn(ctx).First(&emp, "id = ?", id).Error
	return &emp, err
}

func (r *repository) FindByCompany(ctx context.Context, companyID uint) ([]Employee, error) {
	var emps []Employee
	err := r.conn(ctx).
		Joins("JOIN departments ON departments.id = employees.department_id").
		Where("departments.company_id = ?", companyID).
		Order("employees.last_name, employees.first_name").
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByDepartment(ctx context.Context, departmentID uint) ([]Employee, error) {
	var emps []Employee
	err := r.conn(ctx).
		Where("department_id = ?", departmentID).
		Order("last_name, first_name").
		Find(&emps).Error
	return emps, err
}

func (r *repository) Update(ctx context.Context, emp *Employee) error {
	return r.conn(ctx).Save(emp).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.conn(ctx).Delete(&Employee{}, "id = ?", id).Error
}

func (r *repository) DeleteWorkingTimes(ctx context.Context, employeeID string) error {
	return r.conn(ctx).
		Exec("DELETE FROM working_times WHERE employee_id = ?", employeeID).Error
}

// EmailInUse checks the address against every table that stores one, since
// the login flow treats addresses as a single namespace.
func (r *repository) EmailInUse(ctx context.Context, email, excludeID string) (bool, error) {
	var count int64
	err := r.conn(ctx).Raw(`
		SELECT COUNT(*) FROM (
			SELECT email FROM employees WHERE email = ? AND id <> ?
			UNION ALL
			SELECT email FROM companies WHERE email = ?
			UNION ALL
			SELECT email FROM app_users WHERE email = ?
		) taken`, email, excludeID, email, email).Scan(&count).Error
	return count > 0, err
}

func (r *repository) CompanyIDOfDepartment(ctx context.Context, departmentID uint) (uint, error) {
	var companyID uint
	err := r.conn(ctx).
		Table("departments").
		Select("company_id").
		Where("id = ?", departmentID).
		Take(&companyID).Error
	return companyID, err
}
