package apperror

import (
	"fmt"
	"net/http"
)

// ValidationMessage is the fixed message the legacy frontend expects for
// any malformed or incomplete request body.
const ValidationMessage = "Input all required fields in a correct format!"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		ValidationMessage,
		http.StatusBadRequest,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
)

// EmailTaken reports a uniqueness violation, echoing the offending email.
func EmailTaken(email string) *AppError {
	return New(
		CodeConflict,
		fmt.Sprintf("The email %s has already been used.", email),
		http.StatusBadRequest,
	)
}

func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is required", field), http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is invalid", field), http.StatusBadRequest)
}
