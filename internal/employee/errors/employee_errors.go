package errors

import (
	"net/http"

	"go-timesheet/internal/shared/apperror"
)

var ErrEmployeeNotFound = apperror.New(
	apperror.CodeNotFound,
	"That employee does not exist",
	http.StatusNotFound,
)
