package usererrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"role must be one of EMPLOYEE, MANAGER, ADMIN",
		http.StatusBadRequest,
	)
	ErrWrongCurrentPassword = apperror.New(
		apperror.CodeInvalidInput,
		"current password is incorrect",
		http.StatusBadRequest,
	)
	ErrPasswordConfirmMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"new passwords do not match",
		http.StatusBadRequest,
	)
	ErrPasswordTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"new password must be at least 6 characters",
		http.StatusBadRequest,
	)
)
