package department

import (
	"context"

	"go.uber.org/zap"

	"go-timesheet/internal/authz"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	FromCompany(ctx context.Context, callerID string, companyID uint) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, callerID string, id uint) (DepartmentResponse, error)
	Create(ctx context.Context, callerID string, req CreateDepartmentRequest) (DepartmentResponse, error)
	Update(ctx context.Context, callerID string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, callerID string, id uint) error
}

type service struct {
	repo   Repository
	guard  authz.Service
	logger *zap.Logger
}

func NewService(repo Repository, guard authz.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, guard: guard, logger: l}
}

func (s *service) FromCompany(ctx context.Context, callerID string, companyID uint) ([]DepartmentResponse, error) {
	if err := s.guard.Company(ctx, callerID, companyID, authz.ActionRead); err != nil {
		return nil, err
	}

	depts, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("list departments failed", zap.Uint("company_id", companyID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(depts), nil
}

func (s *service) GetByID(ctx context.Context, callerID string, id uint) (DepartmentResponse, error) {
	if err := s.guard.Department(ctx, callerID, id, authz.ActionRead); err != nil {
		return DepartmentResponse{}, err
	}

	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, err
	}
	return mapToResponse(*dept), nil
}

func (s *service) Create(ctx context.Context, callerID string, req CreateDepartmentRequest) (DepartmentResponse, error) {
	if err := s.guard.Company(ctx, callerID, req.CompanyID, authz.ActionAdd); err != nil {
		return DepartmentResponse{}, err
	}

	dept := &Department{
		Name:      req.Name,
		CompanyID: req.CompanyID,
	}
	if err := s.repo.Create(ctx, dept); err != nil {
		s.logger.Error("create department persist failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	s.logger.Info("department created", zap.Uint("department_id", dept.ID), zap.Uint("company_id", dept.CompanyID))
	return mapToResponse(*dept), nil
}

// Update is a full-record replace; moving a department between companies
// requires ownership of both sides.
func (s *service) Update(ctx context.Context, callerID string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	if err := s.guard.Department(ctx, callerID, req.ID, authz.ActionEdit); err != nil {
		return DepartmentResponse{}, err
	}
	if err := s.guard.Company(ctx, callerID, req.CompanyID, authz.ActionEdit); err != nil {
		return DepartmentResponse{}, err
	}

	dept, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return DepartmentResponse{}, err
	}

	dept.Name = req.Name
	dept.CompanyID = req.CompanyID

	if err := s.repo.Update(ctx, dept); err != nil {
		s.logger.Error("update department persist failed", zap.Uint("department_id", req.ID), zap.Error(err))
		return DepartmentResponse{}, err
	}
	return mapToResponse(*dept), nil
}

func (s *service) Delete(ctx context.Context, callerID string, id uint) error {
	if err := s.guard.Department(ctx, callerID, id, authz.ActionDelete); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete department failed", zap.Uint("department_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("department deleted", zap.Uint("department_id", id))
	return nil
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:        dept.ID,
		Name:      dept.Name,
		CompanyID: dept.CompanyID,
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
