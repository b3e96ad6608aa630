package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// ParamValidator is a function type that validates a parameter.
type ParamValidator func(valueToTest int64) bool

// gt returns a ParamValidator that checks if the argument is greater than the given bound.
func gt(bound int64) ParamValidator {
	return func(argValue int64) bool {
		return argValue > bound
	}
}

// ParsePathPositiveInt extracts a path value and validates that it is a
// strictly positive integer. Returns the value and a boolean indicating success.
func ParsePathPositiveInt(w http.ResponseWriter, r *http.Request, logger *slog.Logger, key string) (int32, bool) {
	return parseValidatePath(w, r, logger, key, gt(0))
}

func parseValidatePath(w http.ResponseWriter, r *http.Request, logger *slog.Logger, key string, pValidator ParamValidator) (int32, bool) {
	value := r.PathValue(key)
	if value == "" {
		RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("%s path parameter is required", key))
		return 0, false
	}
	intValue, err := strconv.ParseInt(value, 10, 32)
	if err != nil || !pValidator(intValue) {
		RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid %s number: %s", key, value))
		return 0, false
	}
	return int32(intValue), true
}
