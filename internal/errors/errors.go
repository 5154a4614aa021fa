// Package errors defines the typed failures that cross the boundary between
// the orbit/zodiac core and its callers.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode identifies a failure kind.
type ErrorCode string

const (
	ErrUnknownBody        ErrorCode = "UNKNOWN_BODY"        // exit 2
	ErrConvergenceFailure ErrorCode = "CONVERGENCE_FAILURE" // exit 3
	ErrSearchExhausted    ErrorCode = "SEARCH_EXHAUSTED"    // exit 4
	ErrInvalidRequest     ErrorCode = "INVALID_REQUEST"     // exit 2, CLI boundary only
)

// OrbitorError is a structured error with code, exit status, and details.
type OrbitorError struct {
	Code     ErrorCode
	ExitCode int
	Message  string
	Details  map[string]any
}

// Error implements the error interface.
func (e *OrbitorError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewUnknownBody reports a body name outside the supported enumeration.
func NewUnknownBody(name string) *OrbitorError {
	return &OrbitorError{
		Code:     ErrUnknownBody,
		ExitCode: 2,
		Message:  fmt.Sprintf("unknown body: %q", name),
		Details:  map[string]any{"body": name},
	}
}

// NewUnknownSign reports a zodiac sign name outside the enumeration. It
// shares the UNKNOWN_BODY code: both are "not a supported value" failures.
func NewUnknownSign(name string) *OrbitorError {
	return &OrbitorError{
		Code:     ErrUnknownBody,
		ExitCode: 2,
		Message:  fmt.Sprintf("unknown zodiac sign: %q", name),
		Details:  map[string]any{"sign": name},
	}
}

// NewNoGeocentricDirection reports a body that has no direction as seen
// from Earth (Earth itself).
func NewNoGeocentricDirection(body string) *OrbitorError {
	return &OrbitorError{
		Code:     ErrUnknownBody,
		ExitCode: 2,
		Message:  fmt.Sprintf("%s has no ecliptic longitude as seen from Earth", body),
		Details:  map[string]any{"body": body},
	}
}

// NewConvergenceFailure reports a Kepler solve that did not settle.
func NewConvergenceFailure(meanAnomaly, eccentricity float64, iterations int, lastStep float64) *OrbitorError {
	return &OrbitorError{
		Code:     ErrConvergenceFailure,
		ExitCode: 3,
		Message: fmt.Sprintf("kepler solver did not converge after %d iterations (M=%g, e=%g, last step %g)",
			iterations, meanAnomaly, eccentricity, lastStep),
		Details: map[string]any{
			"mean_anomaly": meanAnomaly,
			"eccentricity": eccentricity,
			"iterations":   iterations,
			"last_step":    lastStep,
		},
	}
}

// NewInvalidElements reports solver input outside the elliptic domain.
func NewInvalidElements(meanAnomaly, eccentricity float64) *OrbitorError {
	return &OrbitorError{
		Code:     ErrConvergenceFailure,
		ExitCode: 3,
		Message:  fmt.Sprintf("invalid kepler input (M=%g, e=%g): need finite M and 0 <= e < 1", meanAnomaly, eccentricity),
		Details:  map[string]any{"mean_anomaly": meanAnomaly, "eccentricity": eccentricity},
	}
}

// NewSearchExhausted reports a sign search that hit its horizon.
func NewSearchExhausted(body, sign string, startDays, horizonDays float64) *OrbitorError {
	return &OrbitorError{
		Code:     ErrSearchExhausted,
		ExitCode: 4,
		Message: fmt.Sprintf("%s did not enter %s within %.1f days of day %.3f",
			body, sign, horizonDays, startDays),
		Details: map[string]any{
			"body":         body,
			"sign":         sign,
			"start_days":   startDays,
			"horizon_days": horizonDays,
		},
	}
}

// NewInvalidRequest reports malformed caller input at the CLI boundary.
func NewInvalidRequest(msg string) *OrbitorError {
	return &OrbitorError{
		Code:     ErrInvalidRequest,
		ExitCode: 2,
		Message:  msg,
	}
}

// Is checks if err, or anything it wraps, is an OrbitorError with the given code.
func Is(err error, code ErrorCode) bool {
	var oErr *OrbitorError
	if stderrors.As(err, &oErr) {
		return oErr.Code == code
	}
	return false
}

// ExitCode returns the process exit status for err: the OrbitorError's own
// code when present, 1 for any other error, 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var oErr *OrbitorError
	if stderrors.As(err, &oErr) {
		return oErr.ExitCode
	}
	return 1
}
