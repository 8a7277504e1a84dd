package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFactories(t *testing.T) {
	testCases := []struct {
		name   string
		err    *Error
		kind   Kind
		status int
	}{
		{"unauthenticated", Unauthenticated("login"), KindUnauthorized, http.StatusUnauthorized},
		{"missing field", MissingField("field"), KindMissingField, http.StatusBadRequest},
		{"invalid field type", InvalidFieldType("field"), KindInvalidFieldType, http.StatusBadRequest},
		{"box not exist", BoxNotExist("nope"), KindBoxNotExist, http.StatusNotFound},
		{"password required", PasswordRequired("pw"), KindPasswordRequired, http.StatusBadRequest},
		{"invalid password", InvalidPassword("pw"), KindInvalidPassword, http.StatusBadRequest},
		{"otp timeout", OtpTimeout("late"), KindOtpTimeout, http.StatusUnauthorized},
		{"invalid otp", InvalidOtp("bad"), KindInvalidOtp, http.StatusUnauthorized},
		{"internal", Internal("boom"), KindInternal, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Kind != tc.kind {
				t.Errorf("kind = %s, want %s", tc.err.Kind, tc.kind)
			}
			if tc.err.StatusCode != tc.status {
				t.Errorf("status = %d, want %d", tc.err.StatusCode, tc.status)
			}
			if tc.err.Message == "" {
				t.Error("message is empty")
			}
		})
	}
}

func TestFrom(t *testing.T) {
	t.Run("taxonomy error passes through", func(t *testing.T) {
		src := BoxNotExist("Box does not exist")
		got := From(src)
		if got != src {
			t.Errorf("From() = %v, want the original error", got)
		}
	})

	t.Run("wrapped taxonomy error is unwrapped", func(t *testing.T) {
		src := InvalidOtp("OTP is not valid")
		got := From(fmt.Errorf("verify: %w", src))
		if got != src {
			t.Errorf("From() = %v, want the wrapped API error", got)
		}
	})

	t.Run("unknown error becomes generic internal", func(t *testing.T) {
		got := From(errors.New("redis: connection refused"))
		if got.Kind != KindInternal {
			t.Errorf("kind = %s, want %s", got.Kind, KindInternal)
		}
		if got.Message != "Internal server error" {
			t.Errorf("message leaks detail: %q", got.Message)
		}
	})
}
