package workingtime_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-timesheet/internal/authz"
	authzMock "go-timesheet/internal/authz/mock"
	"go-timesheet/internal/workingtime"
	wterrors "go-timesheet/internal/workingtime/errors"
	workingtimeMock "go-timesheet/internal/workingtime/mock"
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
	service workingtime.Service
	repo    *workingtimeMock.MockRepository
	guard   *authzMock.MockService
	cache   *fakeReportCache
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	t.Cleanup(func() { db.Close() })

	repo := workingtimeMock.NewMockRepository(ctrl)
	guard := authzMock.NewMockService(ctrl)
	cache := &fakeReportCache{}

	svc := workingtime.NewService(db, repo, guard, cache)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		guard:   guard,
		cache:   cache,
	}
}

func TestWorkingTimeService_Create(t *testing.T) {
	ctx := context.Background()
	callerID := "manager-1"

	t.Run("success invalidates the company report", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := workingtime.CreateWorkingTimeRequest{
			Date:       "2024-03-04",
			StartTime:  "08:00",
			EndTime:    "16:00",
			EmployeeID: "0512987654321",
		}

		deps.guard.EXPECT().
			Employee(ctx, callerID, req.EmployeeID, authz.ActionAdd).
			Return(nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, wt *workingtime.WorkingTime) error {
				assert.Equal(t, "08:00", wt.StartTime)
				assert.Equal(t, req.EmployeeID, wt.EmployeeID)
				wt.ID = 42
				return nil
			})
		deps.repo.EXPECT().
			CompanyIDOfEmployee(ctx, req.EmployeeID).
			Return(uint(7), nil)

		resp, err := deps.service.Create(ctx, callerID, req)

		assert.NoError(t, err)
		assert.Equal(t, uint(42), resp.ID)
		assert.Equal(t, "2024-03-04", resp.Date)
		assert.Equal(t, []uint{7}, deps.cache.invalidated)
	})

	t.Run("bad date is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.guard.EXPECT().
			Employee(ctx, callerID, "0512987654321", authz.ActionAdd).
			Return(nil)

		_, err := deps.service.Create(ctx, callerID, workingtime.CreateWorkingTimeRequest{
			Date:       "04.03.2024",
			StartTime:  "08:00",
			EndTime:    "16:00",
			EmployeeID: "0512987654321",
		})

		assert.Error(t, err)
	})
}

func TestWorkingTimeService_CreateRangeForCompany(t *testing.T) {
	ctx := context.Background()
	callerID := "manager-1"
	companyID := uint(7)
	date := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

	t.Run("creates a record for every employee", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.guard.EXPECT().
			Company(ctx, callerID, companyID, authz.ActionAdd).
			Return(nil)
		deps.repo.EXPECT().
			ExistsOnDateForCompany(ctx, companyID, date).
			Return(false, nil)
		deps.repo.EXPECT().
			EmployeeIDsByCompany(ctx, companyID).
			Return([]string{"emp-1", "emp-2"}, nil)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			CreateBatch(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, wts []workingtime.WorkingTime) error {
				assert.Len(t, wts, 2)
				assert.Equal(t, "09:00", wts[0].StartTime)
				assert.Equal(t, "17:00", wts[0].EndTime)
				assert.Equal(t, date, wts[1].Date)
				return nil
			})
		deps.sqlMock.ExpectCommit()

		err := deps.service.CreateRangeForCompany(ctx, callerID, companyID, "2024-03-04", "09:00", "17:00")

		assert.NoError(t, err)
		assert.Equal(t, []uint{7}, deps.cache.invalidated)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing times fall back to the company window", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.guard.EXPECT().
			Company(ctx, callerID, companyID, authz.ActionAdd).
			Return(nil)
		deps.repo.EXPECT().
			CompanyWindow(ctx, companyID).
			Return("07:30", "15:30", nil)
		deps.repo.EXPECT().
			ExistsOnDateForCompany(ctx, companyID, date).
			Return(false, nil)
		deps.repo.EXPECT().
			EmployeeIDsByCompany(ctx, companyID).
			Return([]string{"emp-1"}, nil)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			CreateBatch(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, wts []workingtime.WorkingTime) error {
				assert.Equal(t, "07:30", wts[0].StartTime)
				assert.Equal(t, "15:30", wts[0].EndTime)
				return nil
			})
		deps.sqlMock.ExpectCommit()

		err := deps.service.CreateRangeForCompany(ctx, callerID, companyID, "2024-03-04", "", "")

		assert.NoError(t, err)
	})

	t.Run("rejects when any record exists on the date", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.guard.EXPECT().
			Company(ctx, callerID, companyID, authz.ActionAdd).
			Return(nil)
		deps.repo.EXPECT().
			ExistsOnDateForCompany(ctx, companyID, date).
			Return(true, nil)

		err := deps.service.CreateRangeForCompany(ctx, callerID, companyID, "2024-03-04", "09:00", "17:00")

		assert.ErrorIs(t, err, wterrors.ErrTimesExistOnDate)
		assert.Empty(t, deps.cache.invalidated)
	})

	t.Run("rejects a company without employees", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.guard.EXPECT().
			Company(ctx, callerID, companyID, authz.ActionAdd).
			Return(nil)
		deps.repo.EXPECT().
			ExistsOnDateForCompany(ctx, companyID, date).
			Return(false, nil)
		deps.repo.EXPECT().
			EmployeeIDsByCompany(ctx, companyID).
			Return(nil, nil)

		err := deps.service.CreateRangeForCompany(ctx, callerID, companyID, "2024-03-04", "09:00", "17:00")

		assert.ErrorIs(t, err, wterrors.ErrNoEmployees)
	})
}

func TestWorkingTimeService_Delete(t *testing.T) {
	ctx := context.Background()
	callerID := "manager-1"

	t.Run("guards on the record's employee", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, uint(42)).
			Return(&workingtime.WorkingTime{ID: 42, EmployeeID: "emp-1"}, nil)
		deps.guard.EXPECT().
			Employee(ctx, callerID, "emp-1", authz.ActionDelete).
			Return(nil)
		deps.repo.EXPECT().
			Delete(ctx, uint(42)).
			Return(nil)
		deps.repo.EXPECT().
			CompanyIDOfEmployee(ctx, "emp-1").
			Return(uint(7), nil)

		err := deps.service.Delete(ctx, callerID, 42)

		assert.NoError(t, err)
		assert.Equal(t, []uint{7}, deps.cache.invalidated)
	})
}
