package authz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"go-timesheet/internal/authz"
	authzMock "go-timesheet/internal/authz/mock"
	"go-timesheet/internal/shared/apperror"
)

func setupGuardTest(t *testing.T) (authz.Service, *authzMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := authzMock.NewMockRepository(ctrl)
	return authz.NewService(repo), repo
}

func TestGuard_Company(t *testing.T) {
	ctx := context.Background()

	t.Run("owner passes", func(t *testing.T) {
		guard, repo := setupGuardTest(t)

		repo.EXPECT().
			CompanyManagerID(ctx, uint(7)).
			Return("manager-1", nil)

		assert.NoError(t, guard.Company(ctx, "manager-1", 7, authz.ActionRead))
	})

	t.Run("different manager is denied with the legacy message", func(t *testing.T) {
		guard, repo := setupGuardTest(t)

		repo.EXPECT().
			CompanyManagerID(ctx, uint(7)).
			Return("manager-2", nil)

		err := guard.Company(ctx, "manager-1", 7, authz.ActionEdit)

		assert.Error(t, err)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 401, httpErr.Status)
		assert.Equal(t, "That company is not created by this user. You cannot edit its data.", httpErr.Message)
	})

	t.Run("missing company is denied, not 404", func(t *testing.T) {
		guard, repo := setupGuardTest(t)

		repo.EXPECT().
			CompanyManagerID(ctx, uint(99)).
			Return("", gorm.ErrRecordNotFound)

		err := guard.Company(ctx, "manager-1", 99, authz.ActionDelete)

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 401, httpErr.Status)
		assert.Equal(t, "That company is not created by this user. You cannot delete its data.", httpErr.Message)
	})

	t.Run("storage error surfaces unchanged", func(t *testing.T) {
		guard, repo := setupGuardTest(t)

		dbErr := errors.New("connection reset")
		repo.EXPECT().
			CompanyManagerID(ctx, uint(7)).
			Return("", dbErr)

		assert.ErrorIs(t, guard.Company(ctx, "manager-1", 7, authz.ActionRead), dbErr)
	})
}

func TestGuard_Department(t *testing.T) {
	ctx := context.Background()

	t.Run("walks to the owning company", func(t *testing.T) {
		guard, repo := setupGuardTest(t)

		repo.EXPECT().
			CompanyIDOfDepartment(ctx, uint(3)).
			Return(uint(7), nil)
		repo.EXPECT().
			CompanyManagerID(ctx, uint(7)).
			Return("manager-1", nil)

		assert.NoError(t, guard.Department(ctx, "manager-1", 3, authz.ActionRead))
	})

	t.Run("uses the add verb in the denial", func(t *testing.T) {
		guard, repo := setupGuardTest(t)

		repo.EXPECT().
			CompanyIDOfDepartment(ctx, uint(3)).
			Return(uint(7), nil)
		repo.EXPECT().
			CompanyManagerID(ctx, uint(7)).
			Return("someone-else", nil)

		err := guard.Department(ctx, "manager-1", 3, authz.ActionAdd)

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, "That company is not created by this user. You cannot add to its data.", httpErr.Message)
	})
}

func TestGuard_Employee(t *testing.T) {
	ctx := context.Background()

	t.Run("walks employee to department to company", func(t *testing.T) {
		guard, repo := setupGuardTest(t)

		repo.EXPECT().
			CompanyIDOfEmployee(ctx, "0703985123456").
			Return(uint(7), nil)
		repo.EXPECT().
			CompanyManagerID(ctx, uint(7)).
			Return("manager-1", nil)

		assert.NoError(t, guard.Employee(ctx, "manager-1", "0703985123456", authz.ActionRead))
	})

	t.Run("unknown employee is denied", func(t *testing.T) {
		guard, repo := setupGuardTest(t)

		repo.EXPECT().
			CompanyIDOfEmployee(ctx, "nope").
			Return(uint(0), gorm.ErrRecordNotFound)

		err := guard.Employee(ctx, "manager-1", "nope", authz.ActionRead)

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 401, httpErr.Status)
	})
}
