package company

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"go-timesheet/internal/authz"
	"go-timesheet/internal/shared/apperror"
)

const (
	defaultStartTime = "08:00"
	defaultEndTime   = "16:00"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, callerID string) ([]CompanyResponse, error)
	GetByID(ctx context.Context, callerID string, id uint) (CompanyResponse, error)
	Create(ctx context.Context, callerID string, req CreateCompanyRequest) (CompanyResponse, error)
	Update(ctx context.Context, callerID string, req UpdateCompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context, callerID string, id uint, targetDepartmentID uint, deleteEmployees bool) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	guard  authz.Service
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, guard authz.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{db: db, repo: repo, guard: guard, logger: l}
}

// GetAll lists only the caller's own companies; ownership is the filter,
// not a separate check.
func (s *service) GetAll(ctx context.Context, callerID string) ([]CompanyResponse, error) {
	coms, err := s.repo.FindAllByManager(ctx, callerID)
	if err != nil {
		s.logger.Error("get all companies failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(coms), nil
}

func (s *service) GetByID(ctx context.Context, callerID string, id uint) (CompanyResponse, error) {
	if err := s.guard.Company(ctx, callerID, id, authz.ActionRead); err != nil {
		return CompanyResponse{}, err
	}

	com, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CompanyResponse{}, err
	}
	return mapToResponse(*com), nil
}

func (s *service) Create(ctx context.Context, callerID string, req CreateCompanyRequest) (CompanyResponse, error) {
	taken, err := s.repo.EmailInUse(ctx, req.Email, 0)
	if err != nil {
		return CompanyResponse{}, err
	}
	if taken {
		return CompanyResponse{}, apperror.EmailTaken(req.Email)
	}

	com := &Company{
		Name:             req.Name,
		Address:          req.Address,
		City:             req.City,
		Country:          req.Country,
		Email:            req.Email,
		CompanyManagerID: callerID,
		StartTime:        orDefault(req.StartTime, defaultStartTime),
		EndTime:          orDefault(req.EndTime, defaultEndTime),
	}

	if err := s.repo.Create(ctx, com); err != nil {
		s.logger.Error("create company persist failed", zap.Error(err))
		return CompanyResponse{}, err
	}

	s.logger.Info("company created", zap.Uint("company_id", com.ID), zap.String("manager_id", callerID))
	return mapToResponse(*com), nil
}

func (s *service) Update(ctx context.Context, callerID string, req UpdateCompanyRequest) (CompanyResponse, error) {
	if err := s.guard.Company(ctx, callerID, req.ID, authz.ActionEdit); err != nil {
		return CompanyResponse{}, err
	}

	taken, err := s.repo.EmailInUse(ctx, req.Email, req.ID)
	if err != nil {
		return CompanyResponse{}, err
	}
	if taken {
		return CompanyResponse{}, apperror.EmailTaken(req.Email)
	}

	com, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return CompanyResponse{}, err
	}

	com.Name = req.Name
	com.Address = req.Address
	com.City = req.City
	com.Country = req.Country
	com.Email = req.Email
	com.StartTime = orDefault(req.StartTime, com.StartTime)
	com.EndTime = orDefault(req.EndTime, com.EndTime)

	if err := s.repo.Update(ctx, com); err != nil {
		s.logger.Error("update company persist failed", zap.Uint("company_id", req.ID), zap.Error(err))
		return CompanyResponse{}, err
	}

	return mapToResponse(*com), nil
}

// Delete removes a company. Its employees are either moved to the target
// department or deleted together with their working times, caller's choice.
func (s *service) Delete(ctx context.Context, callerID string, id uint, targetDepartmentID uint, deleteEmployees bool) error {
	if err := s.guard.Company(ctx, callerID, id, authz.ActionDelete); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if deleteEmployees {
		if err := qtx.DeleteWorkingTimes(ctx, id); err != nil {
			return err
		}
		if err := qtx.DeleteEmployees(ctx, id); err != nil {
			return err
		}
	} else if targetDepartmentID != 0 {
		if err := qtx.MoveEmployees(ctx, id, targetDepartmentID); err != nil {
			return err
		}
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete company failed", zap.Uint("company_id", id), zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("company deleted", zap.Uint("company_id", id))
	return nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func mapToResponse(com Company) CompanyResponse {
	return CompanyResponse{
		ID:               com.ID,
		Name:             com.Name,
		Address:          com.Address,
		City:             com.City,
		Country:          com.Country,
		Email:            com.Email,
		CompanyManagerId: com.CompanyManagerID,
		StartTime:        com.StartTime,
		EndTime:          com.EndTime,
	}
}

func mapToListResponse(coms []Company) []CompanyResponse {
	res := make([]CompanyResponse, len(coms))
	for i, c := range coms {
		res[i] = mapToResponse(c)
	}
	return res
}
