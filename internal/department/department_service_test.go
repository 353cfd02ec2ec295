package department_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-timesheet/internal/authz"
	authzMock "go-timesheet/internal/authz/mock"
	"go-timesheet/internal/department"
	departmentMock "go-timesheet/internal/department/mock"
	"go-timesheet/internal/shared/apperror"
)

type serviceDeps struct {
	service department.Service
	repo    *departmentMock.MockRepository
	guard   *authzMock.MockService
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	repo := departmentMock.NewMockRepository(ctrl)
	guard := authzMock.NewMockService(ctrl)

	return &serviceDeps{
		service: department.NewService(repo, guard),
		repo:    repo,
		guard:   guard,
	}
}

func TestDepartmentService_FromCompany(t *testing.T) {
	ctx := context.Background()
	callerID := "manager-1"
	companyID := uint(7)

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.guard.EXPECT().
			Company(ctx, callerID, companyID, authz.ActionRead).
			Return(nil)
		deps.repo.EXPECT().
			FindAllByCompany(ctx, companyID).
			Return([]department.Department{
				{ID: 3, Name: "Development", CompanyID: companyID},
				{ID: 4, Name: "QA", CompanyID: companyID},
			}, nil)

		resp, err := deps.service.FromCompany(ctx, callerID, companyID)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Development", resp[0].Name)
	})

	t.Run("guard denial", func(t *testing.T) {
		deps := setupServiceTest(t)

		denied := apperror.New(apperror.CodeUnauthorized, "That company is not created by this user. You cannot read its data.", 401)
		deps.guard.EXPECT().
			Company(ctx, callerID, companyID, authz.ActionRead).
			Return(denied)

		resp, err := deps.service.FromCompany(ctx, callerID, companyID)

		assert.ErrorIs(t, err, denied)
		assert.Nil(t, resp)
	})
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()
	callerID := "manager-1"

	t.Run("guards the owning company with the add verb", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.guard.EXPECT().
			Company(ctx, callerID, uint(7), authz.ActionAdd).
			Return(nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, dept *department.Department) error {
				dept.ID = 3
				return nil
			})

		resp, err := deps.service.Create(ctx, callerID, department.CreateDepartmentRequest{
			Name:      "Development",
			CompanyID: 7,
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(3), resp.ID)
	})
}

func TestDepartmentService_Update(t *testing.T) {
	ctx := context.Background()
	callerID := "manager-1"

	t.Run("moving between companies checks both sides", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.guard.EXPECT().
			Department(ctx, callerID, uint(3), authz.ActionEdit).
			Return(nil)
		deps.guard.EXPECT().
			Company(ctx, callerID, uint(8), authz.ActionEdit).
			Return(nil)
		deps.repo.EXPECT().
			FindByID(ctx, uint(3)).
			Return(&department.Department{ID: 3, Name: "Development", CompanyID: 7}, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, dept *department.Department) error {
				assert.Equal(t, uint(8), dept.CompanyID)
				return nil
			})

		resp, err := deps.service.Update(ctx, callerID, department.UpdateDepartmentRequest{
			ID:        3,
			Name:      "Development",
			CompanyID: 8,
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(8), resp.CompanyID)
	})
}
