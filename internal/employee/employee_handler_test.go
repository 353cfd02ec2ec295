package employee_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-timesheet/internal/employee"
)

type fakeEmployeeService struct {
	FromCompanyFn    func(ctx context.Context, callerID string, companyID uint) ([]employee.EmployeeResponse, error)
	FromDepartmentFn func(ctx context.Context, callerID string, departmentID uint) ([]employee.EmployeeResponse, error)
	GetByIDFn        func(ctx context.Context, callerID, id string) (employee.EmployeeResponse, error)
	CreateFn         func(ctx context.Context, callerID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	UpdateFn         func(ctx context.Context, callerID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn         func(ctx context.Context, callerID, id string) error
}

func (f *fakeEmployeeService) FromCompany(ctx context.Context, callerID string, companyID uint) ([]employee.EmployeeResponse, error) {
	return f.FromCompanyFn(ctx, callerID, companyID)
}
func (f *fakeEmployeeService) FromDepartment(ctx context.Context, callerID string, departmentID uint) ([]employee.EmployeeResponse, error) {
	return f.FromDepartmentFn(ctx, callerID, departmentID)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, callerID, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, callerID, id)
}
func (f *fakeEmployeeService) Create(ctx context.Context, callerID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, callerID, req)
}
func (f *fakeEmployeeService) Update(ctx context.Context, callerID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, callerID, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, callerID, id string) error {
	return f.DeleteFn(ctx, callerID, id)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func manyEmployees(n int) []employee.EmployeeResponse {
	emps := make([]employee.EmployeeResponse, n)
	for i := range emps {
		emps[i] = employee.EmployeeResponse{ID: fmt.Sprintf("070398512345%d", i), FirstName: "Emp"}
	}
	return emps
}

func TestEmployeeHandler_GetByCompanyOrID(t *testing.T) {
	t.Run("numeric id lists the company paginated", func(t *testing.T) {
		svc := &fakeEmployeeService{
			FromCompanyFn: func(ctx context.Context, callerID string, companyID uint) ([]employee.EmployeeResponse, error) {
				assert.Equal(t, uint(7), companyID)
				return manyEmployees(5), nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/api/employee/7?pageNumber=1&pageSize=2", nil)
		c.Params = gin.Params{{Key: "id", Value: "7"}}
		c.Set("user_id", "manager-1")

		h.GetByCompanyOrID(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var page struct {
			ToReturn []employee.EmployeeResponse `json:"ToReturn"`
			Count    int64                       `json:"Count"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, int64(5), page.Count)
		assert.Len(t, page.ToReturn, 2)
	})

	t.Run("page past the end is empty but keeps the total", func(t *testing.T) {
		svc := &fakeEmployeeService{
			FromCompanyFn: func(ctx context.Context, callerID string, companyID uint) ([]employee.EmployeeResponse, error) {
				return manyEmployees(3), nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/api/employee/7?pageNumber=5&pageSize=2", nil)
		c.Params = gin.Params{{Key: "id", Value: "7"}}
		c.Set("user_id", "manager-1")

		h.GetByCompanyOrID(c)

		var page struct {
			ToReturn []employee.EmployeeResponse `json:"ToReturn"`
			Count    int64                       `json:"Count"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, int64(3), page.Count)
		assert.Empty(t, page.ToReturn)
	})

	t.Run("employee id fetches the single record", func(t *testing.T) {
		empID := "0703985123456"
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, callerID, id string) (employee.EmployeeResponse, error) {
				assert.Equal(t, empID, id)
				return employee.EmployeeResponse{ID: empID, FirstName: "Ana"}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/api/employee/"+empID, nil)
		c.Params = gin.Params{{Key: "id", Value: empID}}
		c.Set("user_id", "manager-1")

		h.GetByCompanyOrID(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp employee.EmployeeResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Ana", resp.FirstName)
	})
}
