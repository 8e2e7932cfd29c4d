package balanceerrors

import (
	"fmt"
	"net/http"

	"go-leave/internal/shared/apperror"
)

var ErrNoBalanceRecord = apperror.New(
	apperror.CodeInvalidState,
	"leave balance not found for this leave type",
	http.StatusBadRequest,
)

// InsufficientBalance reports both sides of the shortfall so the client can
// show what is actually available.
func InsufficientBalance(available, requested int) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidState,
		fmt.Sprintf("insufficient leave balance: available %d days, requested %d days", available, requested),
		http.StatusBadRequest,
	)
}
