package company

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, com *Company) error
	FindAllByManager(ctx context.Context, managerID string) ([]Company, error)
	FindByID(ctx context.Context, id uint) (*Company, error)
	Update(ctx context.Context, com *Company) error
	Delete(ctx context.Context, id uint) error
	EmailInUse(ctx context.Context, email string, excludeID uint) (bool, error)

	// Employee relocation/removal used by company deletion.
	MoveEmployees(ctx context.Context, companyID, targetDepartmentID uint) error
	DeleteEmployees(ctx context.Context, companyID uint) error
	DeleteWorkingTimes(ctx context.Context, companyID uint) error
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

func (r *repository) Create(ctx context.Context, com *Company) error {
	return r.conn(ctx).Create(com).Error
}

func (r *repository) FindAllByManager(ctx context.Context, managerID string) ([]Company, error) {
	var coms []Company
	err := r.conn(ctx).
		Where("company_manager_id = ?", managerID).
		Order("id").
		Find(&coms).Error
	return coms, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Company, error) {
	var com Company
	err := r.conn(ctx).First(&com, "id = ?", id).Error
	return &com, err
}

func (r *repository) Update(ctx context.Context, com *Company) error {
	return r.conn(ctx).Save(com).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.conn(ctx).Delete(&Company{}, "id = ?", id).Error
}

// EmailInUse spans managers, companies and employees; email uniqueness is
// global in this system.
func (r *repository) EmailInUse(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	err := r.conn(ctx).Raw(`
		SELECT count(*) FROM (
			SELECT email FROM app_users WHERE email = @email
			UNION ALL
			SELECT email FROM companies WHERE email = @email AND id <> @exclude
			UNION ALL
			SELECT email FROM employees WHERE email = @email
		) AS used`, map[string]interface{}{"email": email, "exclude": excludeID}).
		Scan(&count).Error
	return count > 0, err
}

func (r *repository) MoveEmployees(ctx context.Context, companyID, targetDepartmentID uint) error {
	return r.conn(ctx).Exec(`
		UPDATE employees SET department_id = ?
		WHERE department_id IN (SELECT id FROM departments WHERE company_id = ?)`,
		targetDepartmentID, companyID).Error
}

func (r *repository) DeleteEmployees(ctx context.Context, companyID uint) error {
	return r.conn(ctx).Exec(`
		DELETE FROM employees
		WHERE department_id IN (SELECT id FROM departments WHERE company_id = ?)`,
		companyID).Error
}

func (r *repository) DeleteWorkingTimes(ctx context.Context, companyID uint) error {
	return r.conn(ctx).Exec(`
		DELETE FROM working_times
		WHERE employee_id IN (
			SELECT e.id FROM employees e
			JOIN departments d ON d.id = e.department_id
			WHERE d.company_id = ?
		)`, companyID).Error
}
