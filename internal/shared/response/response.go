package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-timesheet/internal/shared/apperror"
)

// The paired SPA predates any response envelope: successful reads return the
// bare payload, mutations return a confirmation string, and failures return
// the message as a JSON string with the mapped status.

func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Message writes a plain confirmation string ("Employee created", ...).
func Message(c *gin.Context, text string) {
	c.JSON(http.StatusOK, text)
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, message)
}

// Fail maps any error through the apperror taxonomy and writes it.
func Fail(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	c.JSON(httpErr.Status, httpErr.Message)
}

type PaginatedList struct {
	ToReturn any   `json:"ToReturn"`
	Count    int64 `json:"Count"`
}

// Paginated writes a page of items plus the unpaginated total, in the
// shape the employee list screens consume.
func Paginated(c *gin.Context, items any, total int64) {
	c.JSON(http.StatusOK, PaginatedList{ToReturn: items, Count: total})
}
