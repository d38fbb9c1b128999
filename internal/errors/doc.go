// Package apperrors defines the structured error types of matreduce and the
// process exit codes they map to. Configuration problems, input validation
// failures and reduction mismatches are kept as distinct types so the
// application layer can choose an exit status with errors.As.
//
// All wrapping follows fmt.Errorf with %w, so errors.Is and errors.As see
// through every layer.
package apperrors
