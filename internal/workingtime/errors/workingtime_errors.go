package errors

import (
	"net/http"

	"go-timesheet/internal/shared/apperror"
)

var (
	ErrTimesExistOnDate = apperror.New(
		apperror.CodeConflict,
		"You already added some employee's working times on that date.",
		http.StatusBadRequest,
	)

	ErrNoEmployees = apperror.New(
		apperror.CodeInvalidInput,
		"That company has no employees to add working times for.",
		http.StatusBadRequest,
	)
)
