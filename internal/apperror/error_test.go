package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/hvalen/ammkit/internal/apperror"
)

func TestNew(t *testing.T) {
	err := apperror.New(apperror.CodeInvalidAmount)

	if err.Code != apperror.CodeInvalidAmount {
		t.Errorf("Code = %q, want %q", err.Code, apperror.CodeInvalidAmount)
	}
	if err.Message == "" {
		t.Error("expected a default message for a known code")
	}
	if err.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want %d", err.StatusCode, http.StatusBadRequest)
	}
	if err.Timestamp.IsZero() {
		t.Error("expected a timestamp")
	}
}

func TestNew_UnknownCodeFallsBackToCodeString(t *testing.T) {
	err := apperror.New(apperror.Code("SOMETHING_ODD"))
	if err.Message != "SOMETHING_ODD" {
		t.Errorf("Message = %q, want the code itself", err.Message)
	}
}

func TestOptions(t *testing.T) {
	cause := errors.New("boom")
	err := apperror.New(apperror.CodeInternalError,
		apperror.WithMessage("custom message"),
		apperror.WithContext("loading pools"),
		apperror.WithCause(cause),
	)

	if err.Message != "custom message" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Context != "loading pools" {
		t.Errorf("Context = %q", err.Context)
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
}

func TestError_String(t *testing.T) {
	err := apperror.Validation(apperror.CodeInvalidSlippage, "0.7")
	got := err.Error()
	if !strings.Contains(got, "INVALID_SLIPPAGE") || !strings.Contains(got, "0.7") {
		t.Errorf("Error() = %q, want code and context present", got)
	}
}

func TestIs_MatchesByCode(t *testing.T) {
	a := apperror.Validation(apperror.CodePoolNotFound, "WETH/DAI")
	b := apperror.New(apperror.CodePoolNotFound)

	if !errors.Is(a, b) {
		t.Error("errors with the same code should match")
	}
	if errors.Is(a, apperror.New(apperror.CodeInvalidAmount)) {
		t.Error("errors with different codes must not match")
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if apperror.Wrap(nil, apperror.CodeInternalError, "x") != nil {
			t.Error("wrapping nil should return nil")
		}
	})

	t.Run("plain error", func(t *testing.T) {
		cause := errors.New("disk full")
		err := apperror.Wrap(cause, apperror.CodeInternalError, "saving snapshot")

		if err.Code != apperror.CodeInternalError {
			t.Errorf("Code = %q", err.Code)
		}
		if !errors.Is(err, cause) {
			t.Error("cause should survive wrapping")
		}
	})

	t.Run("already an AppError", func(t *testing.T) {
		orig := apperror.Validation(apperror.CodeInvalidAmount, "")
		wrapped := apperror.Wrap(fmt.Errorf("outer: %w", orig), apperror.CodeInternalError, "added context")

		if wrapped.Code != apperror.CodeInvalidAmount {
			t.Errorf("Code = %q, want original code preserved", wrapped.Code)
		}
		if wrapped.Context != "added context" {
			t.Errorf("Context = %q, want context filled in", wrapped.Context)
		}
	})
}

func TestGetCode(t *testing.T) {
	if got := apperror.GetCode(apperror.New(apperror.CodeDivisionByZero)); got != apperror.CodeDivisionByZero {
		t.Errorf("GetCode = %q", got)
	}
	if got := apperror.GetCode(errors.New("plain")); got != apperror.CodeUnknownError {
		t.Errorf("GetCode(plain) = %q, want %q", got, apperror.CodeUnknownError)
	}
	if !apperror.IsCode(apperror.New(apperror.CodeDivisionByZero), apperror.CodeDivisionByZero) {
		t.Error("IsCode should match")
	}
}

func TestIsAppError(t *testing.T) {
	if !apperror.IsAppError(apperror.New(apperror.CodeInternalError)) {
		t.Error("expected true for AppError")
	}
	if apperror.IsAppError(errors.New("plain")) {
		t.Error("expected false for plain error")
	}
}

func TestDefaultStatusCodes(t *testing.T) {
	tests := []struct {
		code apperror.Code
		want int
	}{
		{apperror.CodeInvalidStateTransition, http.StatusConflict},
		{apperror.CodePoolNotFound, http.StatusNotFound},
		{apperror.CodeInvalidAmount, http.StatusBadRequest},
		{apperror.CodeDecimalMismatch, http.StatusBadRequest},
		{apperror.CodeLPTokensExceedSupply, http.StatusBadRequest},
		{apperror.CodeExcessivePriceImpact, http.StatusUnprocessableEntity},
		{apperror.CodeInsufficientLiquidity, http.StatusUnprocessableEntity},
		{apperror.CodeInternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := apperror.New(tt.code).StatusCode; got != tt.want {
				t.Errorf("StatusCode = %d, want %d", got, tt.want)
			}
		})
	}
}
