package authz

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"go-timesheet/internal/shared/apperror"
)

// Action selects the verb used in the denial message. The messages are part
// of the wire contract with the legacy frontend.
type Action string

const (
	ActionRead   Action = "read"
	ActionAdd    Action = "add to"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

//go:generate mockgen -source=guard.go -destination=mock/guard_mock.go -package=mock
// Service is the single ownership predicate: every company-scoped read or
// write goes through one of these checks instead of re-deriving the rule
// inline per endpoint. The caller identity is always passed explicitly.
type Service interface {
	Company(ctx context.Context, callerID string, companyID uint, action Action) error
	Department(ctx context.Context, callerID string, departmentID uint, action Action) error
	Employee(ctx context.Context, callerID, employeeID string, action Action) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Company(ctx context.Context, callerID string, companyID uint, action Action) error {
	managerID, err := s.repo.CompanyManagerID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return denied(action)
		}
		return err
	}
	if managerID != callerID {
		return denied(action)
	}
	return nil
}

func (s *service) Department(ctx context.Context, callerID string, departmentID uint, action Action) error {
	companyID, err := s.repo.CompanyIDOfDepartment(ctx, departmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return denied(action)
		}
		return err
	}
	return s.Company(ctx, callerID, companyID, action)
}

func (s *service) Employee(ctx context.Context, callerID, employeeID string, action Action) error {
	companyID, err := s.repo.CompanyIDOfEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return denied(action)
		}
		return err
	}
	return s.Company(ctx, callerID, companyID, action)
}

func denied(action Action) error {
	return apperror.New(
		apperror.CodeUnauthorized,
		fmt.Sprintf("That company is not created by this user. You cannot %s its data.", action),
		http.StatusUnauthorized,
	)
}
