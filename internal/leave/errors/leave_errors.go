package leaveerrors

import (
	"fmt"
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"startDate must be before or equal endDate",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"an active leave request already exists in this period",
		http.StatusConflict,
	)
)

// InvalidTransition names the current status so the client sees why the
// decision was refused, e.g. approving an already rejected request.
func InvalidTransition(currentStatus string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidState,
		fmt.Sprintf("leave request is already %s and cannot be decided again", currentStatus),
		http.StatusBadRequest,
	)
}
