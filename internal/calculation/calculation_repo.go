package calculation

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// EmployeeTimes is the read model for one employee's report row input.
type EmployeeTimes struct {
	ID         string
	FirstName  string
	LastName   string
	Department string
	HourlyRate float64
	Times      []TimeRecord
}

//go:generate mockgen -source=calculation_repo.go -destination=mock/calculation_repo_mock.go -package=mock
type Repository interface {
	EmployeesWithTimes(ctx context.Context, companyID uint) ([]EmployeeTimes, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type employeeRow struct {
	ID         string
	FirstName  string
	LastName   string
	Department string
	HourlyRate float64
}

type timeRow struct {
	EmployeeID string
	Date       time.Time
	StartTime  string
	EndTime    string
}

func (r *repository) EmployeesWithTimes(ctx context.Context, companyID uint) ([]EmployeeTimes, error) {
	var emps []employeeRow
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("employees.id, employees.first_name, employees.last_name, departments.name AS department, employees.hourly_rate").
		Joins("JOIN departments ON departments.id = employees.department_id").
		Where("departments.company_id = ?", companyID).
		Order("employees.last_name, employees.first_name").
		Scan(&emps).Error
	if err != nil {
		return nil, err
	}

	var times []timeRow
	err = r.db.WithContext(ctx).
		Table("working_times").
		Select("working_times.employee_id, working_times.date, working_times.start_time, working_times.end_time").
		Joins("JOIN employees ON employees.id = working_times.employee_id").
		Joins("JOIN departments ON departments.id = employees.department_id").
		Where("departments.company_id = ?", companyID).
		Scan(&times).Error
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[string][]TimeRecord, len(emps))
	for _, t := range times {
		byEmployee[t.EmployeeID] = append(byEmployee[t.EmployeeID], TimeRecord{
			Date:      t.Date,
			StartTime: t.StartTime,
			EndTime:   t.EndTime,
		})
	}

	result := make([]EmployeeTimes, len(emps))
	for i, e := range emps {
		result[i] = EmployeeTimes{
			ID:         e.ID,
			FirstName:  e.FirstName,
			LastName:   e.LastName,
			Department: e.Department,
			HourlyRate: e.HourlyRate,
			Times:      byEmployee[e.ID],
		}
	}
	return result, nil
}
