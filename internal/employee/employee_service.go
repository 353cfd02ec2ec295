package employee

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-timesheet/internal/authz"
	emperrors "go-timesheet/internal/employee/errors"
	"go-timesheet/internal/shared/apperror"
	"go-timesheet/internal/shared/contextutil"
)

const dateLayout = "2006-01-02"

// ReportCache invalidates cached earnings reports after a mutation.
type ReportCache interface {
	InvalidateCompany(ctx context.Context, companyID uint) error
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	FromCompany(ctx context.Context, callerID string, companyID uint) ([]EmployeeResponse, error)
	FromDepartment(ctx context.Context, callerID string, departmentID uint) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, callerID, id string) (EmployeeResponse, error)
	Create(ctx context.Context, callerID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, callerID string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, callerID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	guard  authz.Service
	cache  ReportCache
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, guard authz.Service, cache ReportCache, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, guard: guard, cache: cache, logger: l}
}

func (s *service) FromCompany(ctx context.Context, callerID string, companyID uint) ([]EmployeeResponse, error) {
	if err := s.guard.Company(ctx, callerID, companyID, authz.ActionRead); err != nil {
		return nil, err
	}

	emps, err := s.repo.FindByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("list employees by company failed", zap.Uint("company_id", companyID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(emps), nil
}

func (s *service) FromDepartment(ctx context.Context, callerID string, departmentID uint) ([]EmployeeResponse, error) {
	if err := s.guard.Department(ctx, callerID, departmentID, authz.ActionRead); err != nil {
		return nil, err
	}

	emps, err := s.repo.FindByDepartment(ctx, departmentID)
	if err != nil {
		s.logger.Error("list employees by department failed", zap.Uint("department_id", departmentID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(emps), nil
}

func (s *service) GetByID(ctx context.Context, callerID, id string) (EmployeeResponse, error) {
	if err := s.guard.Employee(ctx, callerID, id, authz.ActionRead); err != nil {
		return EmployeeResponse{}, err
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(*emp), nil
}

func (s *service) Create(ctx context.Context, callerID string, req CreateEmployeeRequest) (EmployeeResponse, error) {
	companyID, err := s.repo.CompanyIDOfDepartment(ctx, req.DepartmentID)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if err := s.guard.Company(ctx, callerID, companyID, authz.ActionAdd); err != nil {
		return EmployeeResponse{}, err
	}

	taken, err := s.repo.EmailInUse(ctx, req.Email, "")
	if err != nil {
		return EmployeeResponse{}, err
	}
	if taken {
		return EmployeeResponse{}, apperror.EmailTaken(req.Email)
	}

	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return EmployeeResponse{}, apperror.ErrInvalidInput
	}

	emp := &Employee{
		ID:           NewEmployeeID(dob),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		DateOfBirth:  dob,
		HourlyRate:   req.HourlyRate,
		DepartmentID: req.DepartmentID,
	}

	if err := s.repo.Create(ctx, emp); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateReports(ctx, companyID)
	s.logger.Info("employee created", zap.String("employee_id", emp.ID), zap.Uint("department_id", emp.DepartmentID))
	return mapToResponse(*emp), nil
}

func (s *service) Update(ctx context.Context, callerID string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if err := s.guard.Employee(ctx, callerID, req.ID, authz.ActionEdit); err != nil {
		return EmployeeResponse{}, err
	}

	companyID, err := s.repo.CompanyIDOfDepartment(ctx, req.DepartmentID)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if err := s.guard.Company(ctx, callerID, companyID, authz.ActionEdit); err != nil {
		return EmployeeResponse{}, err
	}

	taken, err := s.repo.EmailInUse(ctx, req.Email, req.ID)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if taken {
		return EmployeeResponse{}, apperror.EmailTaken(req.Email)
	}

	emp, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return EmployeeResponse{}, apperror.ErrInvalidInput
	}

	oldCompanyID, err := s.repo.CompanyIDOfDepartment(ctx, emp.DepartmentID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	emp.FirstName = req.FirstName
	emp.LastName = req.LastName
	emp.Email = req.Email
	emp.DateOfBirth = dob
	emp.HourlyRate = req.HourlyRate
	emp.DepartmentID = req.DepartmentID

	if err := s.repo.Update(ctx, emp); err != nil {
		s.logger.Error("update employee persist failed", zap.String("employee_id", req.ID), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateReports(ctx, companyID)
	if oldCompanyID != companyID {
		s.invalidateReports(ctx, oldCompanyID)
	}
	return mapToResponse(*emp), nil
}

// Delete removes the employee together with its working times. Existence is
// checked before ownership, so deleting an unknown id reports a missing
// employee rather than a denial.
func (s *service) Delete(ctx context.Context, callerID, id string) error {
	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return emperrors.ErrEmployeeNotFound
		}
		return err
	}

	if err := s.guard.Employee(ctx, callerID, id, authz.ActionDelete); err != nil {
		return err
	}

	companyID, err := s.repo.CompanyIDOfDepartment(ctx, emp.DepartmentID)
	if err != nil {
		return err
	}

	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.DeleteWorkingTimes(ctx, id); err != nil {
		return err
	}
	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.String("request_id", rid), zap.String("employee_id", id), zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateReports(ctx, companyID)
	s.logger.Info("employee deleted", zap.String("request_id", rid), zap.String("employee_id", id))
	return nil
}

// invalidateReports is best effort; a stale report expires on its own TTL.
func (s *service) invalidateReports(ctx context.Context, companyID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCompany(ctx, companyID); err != nil {
		s.logger.Warn("report cache invalidation failed", zap.Uint("company_id", companyID), zap.Error(err))
	}
}

func mapToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           emp.ID,
		FirstName:    emp.FirstName,
		LastName:     emp.LastName,
		Email:        emp.Email,
		DateOfBirth:  emp.DateOfBirth.Format(dateLayout),
		HourlyRate:   emp.HourlyRate,
		DepartmentID: emp.DepartmentID,
	}
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = mapToResponse(e)
	}
	return res
}
