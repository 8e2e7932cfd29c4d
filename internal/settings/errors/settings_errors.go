package settingserrors

import (
	"fmt"
	"net/http"

	"go-leave/internal/shared/apperror"
)

var ErrEmptyKey = apperror.New(
	apperror.CodeInvalidInput,
	"setting key cannot be empty",
	http.StatusBadRequest,
)

func EmptyValue(key string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("value for setting %q cannot be empty", key),
		http.StatusBadRequest,
	)
}
