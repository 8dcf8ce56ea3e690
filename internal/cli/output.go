package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/squares/internal/points"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Caller-input failure (duplicate, not found, invalid input)
	ExitCommandError = 2 // Command error (database cannot be opened, file unreadable, etc.)
)

// Error codes reported in CLIError.Code.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeDatabase    = "E002" // Database open or query failure
	ErrCodeReadFailed  = "E003" // Input file cannot be read
	ErrCodeDuplicate   = "E201" // Point already exists
	ErrCodeNotFound    = "E202" // Point not stored
	ErrCodeInvalidData = "E203" // Empty or malformed input
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code     int    // Exit code (use ExitFailure or ExitCommandError)
	Message  string // Error message
	Err      error  // Underlying error (optional)
	ErrCode  string // CLIError code to report (optional, see Report)
	Reported bool   // Already written to the command output
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

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E001", "E201", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
// In text mode data is printed with fmt.Fprintln; in JSON mode it is
// wrapped in a CLIResponse.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Result outputs jsonData in JSON mode and text otherwise.
func (f *OutputFormatter) Result(jsonData any, text string) error {
	if f.Format == "json" {
		return f.Success(jsonData)
	}
	return f.Success(text)
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

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

// printer formats counts for text output ("1,024 points").
var printer = message.NewPrinter(language.English)

// Report writes err through the formatter and returns an ExitError marked
// as reported. Service input errors exit with ExitFailure; an ExitError keeps
// its own exit code; anything else is ExitFailure with the generic code.
func (f *OutputFormatter) Report(err error) error {
	code, exit := ErrCodeGeneric, ExitFailure
	var details any

	var pe *points.Error
	var exitErr *ExitError
	switch {
	case errors.As(err, &pe):
		code = codeForPointsError(pe.Code)
		d := map[string]any{"op": pe.Op}
		if pe.HasPoint {
			d["x"] = pe.X
			d["y"] = pe.Y
		}
		details = d
	case errors.As(err, &exitErr):
		exit = exitErr.Code
		if exitErr.ErrCode != "" {
			code = exitErr.ErrCode
		}
	}

	if writeErr := f.Error(code, err.Error(), details); writeErr != nil {
		return WrapExitError(exit, "failed to write output", writeErr)
	}
	return &ExitError{Code: exit, Message: "command failed", Err: err, ErrCode: code, Reported: true}
}

func codeForPointsError(c points.ErrorCode) string {
	switch c {
	case points.CodeDuplicatePoint:
		return ErrCodeDuplicate
	case points.CodeNotFound:
		return ErrCodeNotFound
	case points.CodeInvalidInput:
		return ErrCodeInvalidData
	}
	return ErrCodeGeneric
}

// storageFailure classifies a service error: caller-input errors pass
// through, anything else is an infrastructure failure.
func storageFailure(err error) error {
	if points.CodeOf(err) != "" {
		return err
	}
	return &ExitError{Code: ExitCommandError, Message: "database error", Err: err, ErrCode: ErrCodeDatabase}
}
