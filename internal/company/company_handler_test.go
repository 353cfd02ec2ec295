package company_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-timesheet/internal/company"
	"go-timesheet/internal/shared/apperror"
)

type fakeCompanyService struct {
	GetAllFn  func(ctx context.Context, callerID string) ([]company.CompanyResponse, error)
	GetByIDFn func(ctx context.Context, callerID string, id uint) (company.CompanyResponse, error)
	CreateFn  func(ctx context.Context, callerID string, req company.CreateCompanyRequest) (company.CompanyResponse, error)
	UpdateFn  func(ctx context.Context, callerID string, req company.UpdateCompanyRequest) (company.CompanyResponse, error)
	DeleteFn  func(ctx context.Context, callerID string, id, targetDepartmentID uint, deleteEmployees bool) error
}

func (f *fakeCompanyService) GetAll(ctx context.Context, callerID string) ([]company.CompanyResponse, error) {
	return f.GetAllFn(ctx, callerID)
}
func (f *fakeCompanyService) GetByID(ctx context.Context, callerID string, id uint) (company.CompanyResponse, error) {
	return f.GetByIDFn(ctx, callerID, id)
}
func (f *fakeCompanyService) Create(ctx context.Context, callerID string, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	return f.CreateFn(ctx, callerID, req)
}
func (f *fakeCompanyService) Update(ctx context.Context, callerID string, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	return f.UpdateFn(ctx, callerID, req)
}
func (f *fakeCompanyService) Delete(ctx context.Context, callerID string, id, targetDepartmentID uint, deleteEmployees bool) error {
	return f.DeleteFn(ctx, callerID, id, targetDepartmentID, deleteEmployees)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCompanyHandler_Create(t *testing.T) {
	t.Run("success returns the confirmation string", func(t *testing.T) {
		svc := &fakeCompanyService{
			CreateFn: func(ctx context.Context, callerID string, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
				assert.Equal(t, "manager-1", callerID)
				assert.Equal(t, "Acme", req.Name)
				return company.CompanyResponse{ID: 7}, nil
			},
		}

		h := company.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"Name":"Acme","Address":"Main St 1","City":"Sofia","Country":"Bulgaria","Email":"hq@example.com"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/api/company", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", "manager-1")

		h.Create(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `"Company created"`, w.Body.String())
	})

	t.Run("missing fields return the fixed validation message", func(t *testing.T) {
		h := company.NewHandler(&fakeCompanyService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/api/company", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", "manager-1")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Input all required fields in a correct format!")
	})
}

func TestCompanyHandler_Update(t *testing.T) {
	t.Run("keeps the legacy typo", func(t *testing.T) {
		svc := &fakeCompanyService{
			UpdateFn: func(ctx context.Context, callerID string, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
				return company.CompanyResponse{ID: req.ID}, nil
			},
		}

		h := company.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"ID":7,"Name":"Acme","Address":"Main St 1","City":"Sofia","Country":"Bulgaria","Email":"hq@example.com"}`
		c.Request = httptest.NewRequest(http.MethodPut, "/api/company", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", "manager-1")

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `"Company edited succesfully."`, w.Body.String())
	})
}

func TestCompanyHandler_Delete(t *testing.T) {
	t.Run("passes the query params through", func(t *testing.T) {
		svc := &fakeCompanyService{
			DeleteFn: func(ctx context.Context, callerID string, id, targetDepartmentID uint, deleteEmployees bool) error {
				assert.Equal(t, uint(7), id)
				assert.Equal(t, uint(9), targetDepartmentID)
				assert.False(t, deleteEmployees)
				return nil
			},
		}

		h := company.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodDelete, "/api/company/7?targetDepartmentId=9", nil)
		c.Params = gin.Params{{Key: "id", Value: "7"}}
		c.Set("user_id", "manager-1")

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `"Company deleted"`, w.Body.String())
	})

	t.Run("ownership denial comes back as 401", func(t *testing.T) {
		svc := &fakeCompanyService{
			DeleteFn: func(ctx context.Context, callerID string, id, targetDepartmentID uint, deleteEmployees bool) error {
				return apperror.New(apperror.CodeUnauthorized, "That company is not created by this user. You cannot delete its data.", http.StatusUnauthorized)
			},
		}

		h := company.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodDelete, "/api/company/7", nil)
		c.Params = gin.Params{{Key: "id", Value: "7"}}
		c.Set("user_id", "manager-2")

		h.Delete(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "That company is not created by this user. You cannot delete its data.")
	})
}
