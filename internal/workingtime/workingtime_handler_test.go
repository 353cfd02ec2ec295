package workingtime_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-timesheet/internal/workingtime"
	wterrors "go-timesheet/internal/workingtime/errors"
)

type fakeWorkingTimeService struct {
	FromDepartmentFn        func(ctx context.Context, callerID string, departmentID uint) ([]workingtime.WorkingTimeResponse, error)
	FromCompanyFn           func(ctx context.Context, callerID string, companyID uint) ([]workingtime.WorkingTimeResponse, error)
	CreateFn                func(ctx context.Context, callerID string, req workingtime.CreateWorkingTimeRequest) (workingtime.WorkingTimeResponse, error)
	CreateRangeForCompanyFn func(ctx context.Context, callerID string, companyID uint, date, start, end string) error
	UpdateFn                func(ctx context.Context, callerID string, req workingtime.UpdateWorkingTimeRequest) (workingtime.WorkingTimeResponse, error)
	DeleteFn                func(ctx context.Context, callerID string, id uint) error
	CalendarFn              func(ctx context.Context, callerID, employeeID string) (string, error)
}

func (f *fakeWorkingTimeService) FromDepartment(ctx context.Context, callerID string, departmentID uint) ([]workingtime.WorkingTimeResponse, error) {
	return f.FromDepartmentFn(ctx, callerID, departmentID)
}
func (f *fakeWorkingTimeService) FromCompany(ctx context.Context, callerID string, companyID uint) ([]workingtime.WorkingTimeResponse, error) {
	return f.FromCompanyFn(ctx, callerID, companyID)
}
func (f *fakeWorkingTimeService) Create(ctx context.Context, callerID string, req workingtime.CreateWorkingTimeRequest) (workingtime.WorkingTimeResponse, error) {
	return f.CreateFn(ctx, callerID, req)
}
func (f *fakeWorkingTimeService) CreateRangeForCompany(ctx context.Context, callerID string, companyID uint, date, start, end string) error {
	return f.CreateRangeForCompanyFn(ctx, callerID, companyID, date, start, end)
}
func (f *fakeWorkingTimeService) Update(ctx context.Context, callerID string, req workingtime.UpdateWorkingTimeRequest) (workingtime.WorkingTimeResponse, error) {
	return f.UpdateFn(ctx, callerID, req)
}
func (f *fakeWorkingTimeService) Delete(ctx context.Context, callerID string, id uint) error {
	return f.DeleteFn(ctx, callerID, id)
}
func (f *fakeWorkingTimeService) Calendar(ctx context.Context, callerID, employeeID string) (string, error) {
	return f.CalendarFn(ctx, callerID, employeeID)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestWorkingTimeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeWorkingTimeService{
			CreateFn: func(ctx context.Context, callerID string, req workingtime.CreateWorkingTimeRequest) (workingtime.WorkingTimeResponse, error) {
				assert.Equal(t, "2024-03-04", req.Date)
				return workingtime.WorkingTimeResponse{ID: 1}, nil
			},
		}

		h := workingtime.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"Date":"2024-03-04","StartTime":"08:00","EndTime":"16:00","EmployeeID":"0703985123456"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/api/workingtime/create", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", "manager-1")

		h.Create(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `"Working time added"`, w.Body.String())
	})

	t.Run("validation error", func(t *testing.T) {
		h := workingtime.NewHandler(&fakeWorkingTimeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/api/workingtime/create", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", "manager-1")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Input all required fields in a correct format!")
	})
}

func TestWorkingTimeHandler_CreateRangeForCompany(t *testing.T) {
	t.Run("passes the query params through", func(t *testing.T) {
		svc := &fakeWorkingTimeService{
			CreateRangeForCompanyFn: func(ctx context.Context, callerID string, companyID uint, date, start, end string) error {
				assert.Equal(t, uint(7), companyID)
				assert.Equal(t, "2024-03-04", date)
				assert.Equal(t, "09:00", start)
				assert.Equal(t, "17:00", end)
				return nil
			},
		}

		h := workingtime.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost,
			"/api/workingtime/createRangeForCompany?comId=7&date=2024-03-04&start=09:00&end=17:00", nil)
		c.Set("user_id", "manager-1")

		h.CreateRangeForCompany(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `"Working times added"`, w.Body.String())
	})

	t.Run("existing records on the date give a 400", func(t *testing.T) {
		svc := &fakeWorkingTimeService{
			CreateRangeForCompanyFn: func(ctx context.Context, callerID string, companyID uint, date, start, end string) error {
				return wterrors.ErrTimesExistOnDate
			},
		}

		h := workingtime.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/api/workingtime/createRangeForCompany?comId=7", nil)
		c.Set("user_id", "manager-1")

		h.CreateRangeForCompany(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "You already added some employee's working times on that date.")
	})
}

func TestWorkingTimeHandler_Calendar(t *testing.T) {
	t.Run("serves text/calendar", func(t *testing.T) {
		svc := &fakeWorkingTimeService{
			CalendarFn: func(ctx context.Context, callerID, employeeID string) (string, error) {
				assert.Equal(t, "0703985123456", employeeID)
				return "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", nil
			},
		}

		h := workingtime.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/api/workingtime/calendar/0703985123456", nil)
		c.Params = gin.Params{{Key: "empId", Value: "0703985123456"}}
		c.Set("user_id", "manager-1")

		h.Calendar(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/calendar", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "BEGIN:VCALENDAR")
	})
}
