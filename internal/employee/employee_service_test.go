package employee_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"go-timesheet/internal/authz"
	authzMock "go-timesheet/internal/authz/mock"
	"go-timesheet/internal/employee"
	employeeMock "go-timesheet/internal/employee/mock"
	"go-timesheet/internal/shared/apperror"
)

type fakeReportCache struct {
	invalidated []uint
}

func (f *fakeReportCache) InvalidateCompany(ctx context.Context, companyID uint) error {
	f.invalidated = append(f.invalidated, companyID)
	return nil
}

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *employeeMock.MockRepository
	guard   *authzMock.MockService
	cache   *fakeReportCache
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	t.Cleanup(func() { db.Close() })

	repo := employeeMock.NewMockRepository(ctrl)
	guard := authzMock.NewMockService(ctrl)
	cache := &fakeReportCache{}

	svc := employee.NewService(db, repo, guard, cache)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		guard:   guard,
		cache:   cache,
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	callerID := "manager-1"

	req := employee.CreateEmployeeRequest{
		FirstName:    "Ana",
		LastName:     "Petrova",
		Email:        "ana@example.com",
		DateOfBirth:  "1985-03-07",
		HourlyRate:   12.5,
		DepartmentID: 3,
	}

	t.Run("synthesizes the id from the date of birth", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			CompanyIDOfDepartment(ctx, uint(3)).
			Return(uint(7), nil)
		deps.guard.EXPECT().
			Company(ctx, callerID, uint(7), authz.ActionAdd).
			Return(nil)
		deps.repo.EXPECT().
			EmailInUse(ctx, req.Email, "").
			Return(false, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, emp *employee.Employee) error {
				assert.Len(t, emp.ID, 13)
				assert.Equal(t, "0703985", emp.ID[:7])
				assert.Equal(t, "Ana", emp.FirstName)
				return nil
			})

		resp, err := deps.service.Create(ctx, callerID, req)

		assert.NoError(t, err)
		assert.Equal(t, "1985-03-07", resp.DateOfBirth)
		assert.Equal(t, []uint{7}, deps.cache.invalidated)
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			CompanyIDOfDepartment(ctx, uint(3)).
			Return(uint(7), nil)
		deps.guard.EXPECT().
			Company(ctx, callerID, uint(7), authz.ActionAdd).
			Return(nil)
		deps.repo.EXPECT().
			EmailInUse(ctx, req.Email, "").
			Return(true, nil)

		_, err := deps.service.Create(ctx, callerID, req)

		assert.Error(t, err)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 400, httpErr.Status)
		assert.Equal(t, "The email ana@example.com has already been used.", httpErr.Message)
		assert.Empty(t, deps.cache.invalidated)
	})

	t.Run("denied by the guard", func(t *testing.T) {
		deps := setupServiceTest(t)

		denied := apperror.New(apperror.CodeUnauthorized, "That company is not created by this user. You cannot add to its data.", 401)
		deps.repo.EXPECT().
			CompanyIDOfDepartment(ctx, uint(3)).
			Return(uint(7), nil)
		deps.guard.EXPECT().
			Company(ctx, callerID, uint(7), authz.ActionAdd).
			Return(denied)

		_, err := deps.service.Create(ctx, callerID, req)

		assert.ErrorIs(t, err, denied)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	callerID := "manager-1"
	empID := "0703985123456"

	t.Run("removes working times in the same transaction", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.guard.EXPECT().
			Employee(ctx, callerID, empID, authz.ActionDelete).
			Return(nil)
		deps.repo.EXPECT().
			FindByID(ctx, empID).
			Return(&employee.Employee{
				ID:           empID,
				DepartmentID: 3,
				DateOfBirth:  time.Date(1985, time.March, 7, 0, 0, 0, 0, time.UTC),
			}, nil)
		deps.repo.EXPECT().
			CompanyIDOfDepartment(ctx, uint(3)).
			Return(uint(7), nil)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeleteWorkingTimes(ctx, empID).Return(nil)
		deps.repo.EXPECT().Delete(ctx, empID).Return(nil)
		deps.sqlMock.ExpectCommit()

		err := deps.service.Delete(ctx, callerID, empID)

		assert.NoError(t, err)
		assert.Equal(t, []uint{7}, deps.cache.invalidated)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown employee is missing, not denied", func(t *testing.T) {
		deps := setupServiceTest(t)

		// No guard expectation: the lookup must fail before ownership
		// is checked.
		deps.repo.EXPECT().
			FindByID(ctx, "9999999999999").
			Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, callerID, "9999999999999")

		assert.Error(t, err)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 404, httpErr.Status)
		assert.Equal(t, "That employee does not exist", httpErr.Message)
		assert.Empty(t, deps.cache.invalidated)
	})
}
