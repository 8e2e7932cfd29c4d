package leavetypeerrors

import (
	"fmt"
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave type not found",
		http.StatusNotFound,
	)
	// Deletion stays blocked while any request of any status references the
	// type, to preserve history.
	ErrLeaveTypeInUse = apperror.New(
		apperror.CodeConflict,
		"cannot delete leave type with existing leave requests",
		http.StatusConflict,
	)
)

func DuplicateName(name string) *apperror.AppError {
	return apperror.New(
		apperror.CodeConflict,
		fmt.Sprintf("leave type with name '%s' already exists", name),
		http.StatusConflict,
	)
}
