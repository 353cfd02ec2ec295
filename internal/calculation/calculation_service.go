package calculation

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"go-timesheet/internal/authz"
	"go-timesheet/internal/shared/contextutil"
)

//go:generate mockgen -source=calculation_service.go -destination=mock/calculation_service_mock.go -package=mock
type Service interface {
	ForCompany(ctx context.Context, callerID string, companyID uint, year, month int) ([]CalculationRow, error)
}

type service struct {
	repo   Repository
	guard  authz.Service
	cache  *Cache
	group  singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, guard authz.Service, cache *Cache, logger ...*zap.Logger) Service {
	l := zap.L().Named("calculation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calculation.service")
	}
	return &service{repo: repo, guard: guard, cache: cache, logger: l}
}

// ForCompany builds the earnings report. Employees without a single record
// in the filter window are dropped from the result.
func (s *service) ForCompany(ctx context.Context, callerID string, companyID uint, year, month int) ([]CalculationRow, error) {
	if err := s.guard.Company(ctx, callerID, companyID, authz.ActionRead); err != nil {
		return nil, err
	}

	if rows, ok := s.cache.Get(ctx, companyID, year, month); ok {
		return rows, nil
	}

	key := fmt.Sprintf("%d:%d:%d", companyID, year, month)
	v, err, _ := s.group.Do(key, func() (any, error) {
		rows, err := s.compute(ctx, companyID, year, month)
		if err != nil {
			return nil, err
		}
		s.cache.Set(ctx, companyID, year, month, rows)
		return rows, nil
	})
	if err != nil {
		l := contextutil.GetLogger(ctx, s.logger)
		l.Error("report computation failed", zap.Uint("company_id", companyID), zap.Error(err))
		return nil, err
	}
	return v.([]CalculationRow), nil
}

func (s *service) compute(ctx context.Context, companyID uint, year, month int) ([]CalculationRow, error) {
	emps, err := s.repo.EmployeesWithTimes(ctx, companyID)
	if err != nil {
		return nil, err
	}

	rows := make([]CalculationRow, 0, len(emps))
	for _, e := range emps {
		sum := Summarize(e.HourlyRate, e.Times, year, month)
		if sum.WorkingDays == 0 {
			continue
		}
		rows = append(rows, CalculationRow{
			ID:                  e.ID,
			FirstName:           e.FirstName,
			LastName:            e.LastName,
			Department:          e.Department,
			HourlyRate:          e.HourlyRate,
			WorkingDays:         sum.WorkingDays,
			RegularWorkingHours: sum.RegularWorkingHours,
			OvertimeHours:       sum.OvertimeHours,
			Earnings:            sum.Earnings,
		})
	}
	return rows, nil
}
