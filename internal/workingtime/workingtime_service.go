package workingtime

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"go-timesheet/internal/authz"
	"go-timesheet/internal/shared/apperror"
	wterrors "go-timesheet/internal/workingtime/errors"
)

const (
	dateLayout    = "2006-01-02"
	fallbackStart = "08:00"
	fallbackEnd   = "16:00"
)

// ReportCache invalidates cached earnings reports after a mutation.
type ReportCache interface {
	InvalidateCompany(ctx context.Context, companyID uint) error
}

//go:generate mockgen -source=workingtime_service.go -destination=mock/workingtime_service_mock.go -package=mock
type Service interface {
	FromDepartment(ctx context.Context, callerID string, departmentID uint) ([]WorkingTimeResponse, error)
	FromCompany(ctx context.Context, callerID string, companyID uint) ([]WorkingTimeResponse, error)
	Create(ctx context.Context, callerID string, req CreateWorkingTimeRequest) (WorkingTimeResponse, error)
	CreateRangeForCompany(ctx context.Context, callerID string, companyID uint, date, start, end string) error
	Update(ctx context.Context, callerID string, req UpdateWorkingTimeRequest) (WorkingTimeResponse, error)
	Delete(ctx context.Context, callerID string, id uint) error
	Calendar(ctx context.Context, callerID, employeeID string) (string, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	guard  authz.Service
	cache  ReportCache
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, guard authz.Service, cache ReportCache, logger ...*zap.Logger) Service {
	l := zap.L().Named("workingtime.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workingtime.service")
	}
	return &service{db: db, repo: repo, guard: guard, cache: cache, logger: l}
}

func (s *service) FromDepartment(ctx context.Context, callerID string, departmentID uint) ([]WorkingTimeResponse, error) {
	if err := s.guard.Department(ctx, callerID, departmentID, authz.ActionRead); err != nil {
		return nil, err
	}

	wts, err := s.repo.FindByDepartment(ctx, departmentID)
	if err != nil {
		s.logger.Error("list working times by department failed", zap.Uint("department_id", departmentID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(wts), nil
}

func (s *service) FromCompany(ctx context.Context, callerID string, companyID uint) ([]WorkingTimeResponse, error) {
	if err := s.guard.Company(ctx, callerID, companyID, authz.ActionRead); err != nil {
		return nil, err
	}

	wts, err := s.repo.FindByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("list working times by company failed", zap.Uint("company_id", companyID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(wts), nil
}

func (s *service) Create(ctx context.Context, callerID string, req CreateWorkingTimeRequest) (WorkingTimeResponse, error) {
	if err := s.guard.Employee(ctx, callerID, req.EmployeeID, authz.ActionAdd); err != nil {
		return WorkingTimeResponse{}, err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return WorkingTimeResponse{}, apperror.ErrInvalidInput
	}

	wt := &WorkingTime{
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		EmployeeID: req.EmployeeID,
	}
	if err := s.repo.Create(ctx, wt); err != nil {
		s.logger.Error("create working time persist failed", zap.Error(err))
		return WorkingTimeResponse{}, err
	}

	s.invalidateReportsForEmployee(ctx, req.EmployeeID)
	return mapToResponse(*wt), nil
}

// CreateRangeForCompany records the same shift for every employee of the
// company. Blank params fall back to today and the company working window.
// The whole batch is rejected when any employee of the company already has a
// record on the date.
func (s *service) CreateRangeForCompany(ctx context.Context, callerID string, companyID uint, dateStr, start, end string) error {
	if err := s.guard.Company(ctx, callerID, companyID, authz.ActionAdd); err != nil {
		return err
	}

	date := time.Now().Truncate(24 * time.Hour)
	if dateStr != "" {
		var err error
		date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			return apperror.ErrInvalidInput
		}
	}

	if start == "" || end == "" {
		winStart, winEnd, err := s.repo.CompanyWindow(ctx, companyID)
		if err != nil {
			return err
		}
		if start == "" {
			start = orDefault(winStart, fallbackStart)
		}
		if end == "" {
			end = orDefault(winEnd, fallbackEnd)
		}
	}

	exists, err := s.repo.ExistsOnDateForCompany(ctx, companyID, date)
	if err != nil {
		return err
	}
	if exists {
		return wterrors.ErrTimesExistOnDate
	}

	ids, err := s.repo.EmployeeIDsByCompany(ctx, companyID)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return wterrors.ErrNoEmployees
	}

	wts := make([]WorkingTime, len(ids))
	for i, id := range ids {
		wts[i] = WorkingTime{
			Date:       date,
			StartTime:  start,
			EndTime:    end,
			EmployeeID: id,
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).CreateBatch(ctx, wts); err != nil {
		s.logger.Error("bulk create working times failed", zap.Uint("company_id", companyID), zap.Error(err))
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateReports(ctx, companyID)
	s.logger.Info("working times added for company",
		zap.Uint("company_id", companyID),
		zap.Int("employees", len(ids)),
		zap.String("date", date.Format(dateLayout)),
	)
	return nil
}

func (s *service) Update(ctx context.Context, callerID string, req UpdateWorkingTimeRequest) (WorkingTimeResponse, error) {
	if err := s.guard.Employee(ctx, callerID, req.EmployeeID, authz.ActionEdit); err != nil {
		return WorkingTimeResponse{}, err
	}

	wt, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return WorkingTimeResponse{}, err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return WorkingTimeResponse{}, apperror.ErrInvalidInput
	}

	wt.Date = date
	wt.StartTime = req.StartTime
	wt.EndTime = req.EndTime
	wt.EmployeeID = req.EmployeeID

	if err := s.repo.Update(ctx, wt); err != nil {
		s.logger.Error("update working time persist failed", zap.Uint("working_time_id", req.ID), zap.Error(err))
		return WorkingTimeResponse{}, err
	}

	s.invalidateReportsForEmployee(ctx, req.EmployeeID)
	return mapToResponse(*wt), nil
}

func (s *service) Delete(ctx context.Context, callerID string, id uint) error {
	wt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.guard.Employee(ctx, callerID, wt.EmployeeID, authz.ActionDelete); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete working time failed", zap.Uint("working_time_id", id), zap.Error(err))
		return err
	}

	s.invalidateReportsForEmployee(ctx, wt.EmployeeID)
	return nil
}

// Calendar renders an employee's working times as an iCal feed.
func (s *service) Calendar(ctx context.Context, callerID, employeeID string) (string, error) {
	if err := s.guard.Employee(ctx, callerID, employeeID, authz.ActionRead); err != nil {
		return "", err
	}

	wts, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return "", err
	}
	return buildCalendar(employeeID, wts), nil
}

func (s *service) invalidateReportsForEmployee(ctx context.Context, employeeID string) {
	companyID, err := s.repo.CompanyIDOfEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Warn("company lookup for cache invalidation failed", zap.String("employee_id", employeeID), zap.Error(err))
		return
	}
	s.invalidateReports(ctx, companyID)
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

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func mapToResponse(wt WorkingTime) WorkingTimeResponse {
	return WorkingTimeResponse{
		ID:         wt.ID,
		Date:       wt.Date.Format(dateLayout),
		StartTime:  wt.StartTime,
		EndTime:    wt.EndTime,
		EmployeeID: wt.EmployeeID,
	}
}

func mapToListResponse(wts []WorkingTime) []WorkingTimeResponse {
	res := make([]WorkingTimeResponse, len(wts))
	for i, wt := range wts {
		res[i] = mapToResponse(wt)
	}
	return res
}
