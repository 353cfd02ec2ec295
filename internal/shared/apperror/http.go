package apperror

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// HTTPError is what handlers write back for any failed request.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// ToHTTP maps any error to its transport representation. AppErrors keep
// their status and code; gorm's record-not-found becomes 404; everything
// else surfaces as a 400 with the underlying message, which is what the
// original backend did for uncaught storage faults.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return HTTPError{
			Status:  http.StatusNotFound,
			Code:    CodeNotFound,
			Message: ErrNotFound.Message,
		}
	}

	return HTTPError{
		Status:  http.StatusBadRequest,
		Code:    CodeInvalidInput,
		Message: err.Error(),
	}
}
