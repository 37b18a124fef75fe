package view

import (
	"errors"
	"testing"

	"github.com/translogica/tms-console/internal/api"
)

func TestLabelFallback(t *testing.T) {
	if got := VehicleStatusLabels.Label("available"); got != "Disponible" {
		t.Fatalf("known value = %q", got)
	}
	// Unknown enum values render as-is rather than blank.
	if got := VehicleStatusLabels.Label("scrapped"); got != "scrapped" {
		t.Fatalf("unknown value = %q", got)
	}
	if got := CalculationMethodLabels.Label("percentage"); got != "Pourcentage" {
		t.Fatalf("method = %q", got)
	}
}

func TestErrorMessage(t *testing.T) {
	if got := ErrorMessage(api.ErrConnection); got != MsgConnectionError {
		t.Fatalf("connection = %q", got)
	}
	if got := ErrorMessage(&api.ServerError{Message: "Le compte est verrouillé"}); got != "Le compte est verrouillé" {
		t.Fatalf("server message not passed through: %q", got)
	}
	if got := ErrorMessage(&api.ServerError{}); got != MsgGenericError {
		t.Fatalf("empty server message = %q", got)
	}
	if got := ErrorMessage(api.ErrUnauthorized); got != MsgSessionExpired {
		t.Fatalf("unauthorized = %q", got)
	}
	if got := ErrorMessage(errors.New("boom")); got != MsgGenericError {
		t.Fatalf("unknown error = %q", got)
	}
	if got := ErrorMessage(nil); got != "" {
		t.Fatalf("nil error = %q", got)
	}
}
