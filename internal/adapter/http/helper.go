package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	alertDomain "peerlend/internal/domain/alert"
	loanDomain "peerlend/internal/domain/loan"
	userDomain "peerlend/internal/domain/user"
	"peerlend/internal/usecase/auth"
	"peerlend/internal/usecase/calculator"
)

// statusFor maps domain errors onto the HTTP taxonomy: 400 validation, 401
// auth, 403 forbidden, 404 not found, 409 conflict, 500 everything else.
func statusFor(err error) int {
	switch {
	case errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, alertDomain.ErrNotFound),
		errors.Is(err, userDomain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, loanDomain.ErrNotLender),
		errors.Is(err, alertDomain.ErrNotRecipient):
		return http.StatusForbidden
	case errors.Is(err, loanDomain.ErrAlreadyAssigned),
		errors.Is(err, loanDomain.ErrOwnLoan),
		errors.Is(err, loanDomain.ErrOverpayment),
		errors.Is(err, loanDomain.ErrInvalidTransition),
		errors.Is(err, loanDomain.ErrHasBorrower),
		errors.Is(err, userDomain.ErrDuplicateIdentity):
		return http.StatusConflict
	case errors.Is(err, loanDomain.ErrInvalidAmount),
		errors.Is(err, loanDomain.ErrInvalidTerms),
		errors.Is(err, loanDomain.ErrInvalidAadhaar),
		errors.Is(err, loanDomain.ErrInvalidPAN),
		errors.Is(err, auth.ErrInvalidInput),
		errors.Is(err, calculator.ErrInvalidInput):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// respondErr serializes a domain error; unexpected errors are masked.
func respondErr(c echo.Context, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		c.Logger().Error(err)
		return c.JSON(code, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(code, ErrorResponse{Error: err.Error()})
}

// ---- test helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
