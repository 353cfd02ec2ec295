package workingtime

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=workingtime_repo.go -destination=mock/workingtime_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, wt *WorkingTime) error
	CreateBatch(ctx context.Context, wts []WorkingTime) error
	FindByID(ctx context.Context, id uint) (*WorkingTime, error)
	FindByDepartment(ctx context.Context, departmentID uint) ([]WorkingTime, error)
	FindByCompany(ctx context.Context, companyID uint) ([]WorkingTime, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]WorkingTime, error)
	Update(ctx context.Context, wt *WorkingTime) error
	Delete(ctx context.Context, id uint) error
	ExistsOnDateForCompany(ctx context.Context, companyID uint, date time.Time) (bool, error)
	EmployeeIDsByCompany(ctx context.Context, companyID uint) ([]string, error)
	CompanyWindow(ctx context.Context, companyID uint) (start, end string, err error)
	CompanyIDOfEmployee(ctx context.Context, employeeID string) (uint, error)
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

func (r *repository) Create(ctx context.Context, wt *WorkingTime) error {
	return r.conn(ctx).Create(wt).Error
}

func (r *repository) CreateBatch(ctx context.Context, wts []WorkingTime) error {
	return r.conn(ctx).Create(&wts).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*WorkingTime, error) {
	var wt WorkingTime
	err := r.conn(ctx).First(&wt, "id = ?", id).Error
	return &wt, err
}

func (r *repository) FindByDepartment(ctx context.Context, departmentID uint) ([]WorkingTime, error) {
	var wts []WorkingTime
	err := r.conn(ctx).
		Joins("JOIN employees ON employees.id = working_times.employee_id").
		Where("employees.department_id = ?", departmentID).
		Order("working_times.date, working_times.id").
		Find(&wts).Error
	return wts, err
}

func (r *repository) FindByCompany(ctx context.Context, companyID uint) ([]WorkingTime, error) {
	var wts []WorkingTime
	err := r.conn(ctx).
		Joins("JOIN employees ON employees.id = working_times.employee_id").
		Joins("JOIN departments ON departments.id = employees.department_id").
		Where("departments.company_id = ?", companyID).
		Order("working_times.date, working_times.id").
		Find(&wts).Error
	return wts, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]WorkingTime, error) {
	var wts []WorkingTime
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Order("date, id").
		Find(&wts).Error
	return wts, err
}

func (r *repository) Update(ctx context.Context, wt *WorkingTime) error {
	return r.conn(ctx).Save(wt).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.conn(ctx).Delete(&WorkingTime{}, "id = ?", id).Error
}

func (r *repository) ExistsOnDateForCompany(ctx context.Context, companyID uint, date time.Time) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("working_times").
		Joins("JOIN employees ON employees.id = working_times.employee_id").
		Joins("JOIN departments ON departments.id = employees.department_id").
		Where("departments.company_id = ? AND working_times.date = ?", companyID, date).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) EmployeeIDsByCompany(ctx context.Context, companyID uint) ([]string, error) {
	var ids []string
	err := r.conn(ctx).
		Table("employees").
		Select("employees.id").
		Joins("JOIN departments ON departments.id = employees.department_id").
		Where("departments.company_id = ?", companyID).
		Scan(&ids).Error
	return ids, err
}

func (r *repository) CompanyWindow(ctx context.Context, companyID uint) (string, string, error) {
	var window struct {
		StartTime string
		EndTime   string
	}
	err := r.conn(ctx).
		Table("companies").
		Select("start_time, end_time").
		Where("id = ?", companyID).
		Take(&window).Error
	return window.StartTime, window.EndTime, err
}

func (r *repository) CompanyIDOfEmployee(ctx context.Context, employeeID string) (uint, error) {
	var companyID uint
	err := r.conn(ctx).
		Table("employees").
		Select("departments.company_id").
		Joins("JOIN departments ON departments.id = employees.department_id").
		Where("employees.id = ?", employeeID).
		Take(&companyID).Error
	return companyID, err
}
