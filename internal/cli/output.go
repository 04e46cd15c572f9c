package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/hepkin/kinematics"
	"github.com/katalvlaran/hepkin/nanoschema"
	"github.com/katalvlaran/hepkin/stats"
)

// Exit codes for CLI commands.
const (
	ExitSuccess = 0 // Successful execution
	ExitFailure = 1 // The computation was rejected (domain error, overflow, bad table)
	ExitUsage   = 2 // Invalid arguments or flags
)

// Error codes reported in the error record.
const (
	ErrCodeGeneric       = "E001" // Generic/unknown error
	ErrCodeDomain        = "E101" // Input outside the function domain
	ErrCodeOverflow      = "E102" // Finite inputs overflowed
	ErrCodeTable         = "E201" // Branch table could not be loaded
	ErrCodeInvalidWeight = "E301" // Non-finite event weight
)

// ExitError represents an error with a specific exit code.
// Commands return it after the error record has been written.
type ExitError struct {
	Code    int    // Exit code (ExitFailure or ExitUsage)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Errors that are not an ExitError come from argument and flag parsing and
// map to ExitUsage.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}

// errorCode classifies a library error for the error record.
func errorCode(err error) string {
	switch {
	case errors.Is(err, kinematics.ErrDomain):
		return ErrCodeDomain
	case errors.Is(err, kinematics.ErrOverflow):
		return ErrCodeOverflow
	case errors.Is(err, nanoschema.ErrInvalidTable):
		return ErrCodeTable
	case errors.Is(err, stats.ErrInvalidWeight):
		return ErrCodeInvalidWeight
	default:
		return ErrCodeGeneric
	}
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E101", "E201", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
// In text mode data is printed with its String method.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	_, err := fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	return err
}

// fail writes the error record for err and returns the matching ExitError.
func (f *OutputFormatter) fail(err error) error {
	code := errorCode(err)
	_ = f.Error(code, err.Error(), nil)
	return WrapExitError(ExitFailure, code, err)
}

// jsonFloat marshals finite values as JSON numbers and NaN/±Inf, which JSON
// cannot represent, as the strings "NaN", "+Inf" and "-Inf".
type jsonFloat float64

func (x jsonFloat) MarshalJSON() ([]byte, error) {
	f := float64(x)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte(strconv.Quote(strconv.FormatFloat(f, 'g', -1, 64))), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}
