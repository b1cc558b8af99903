// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "height must be greater than zero",
//	    bmi.ErrInvalidInput,
//	    map[string]any{
//	        "height": req.Height.Value,
//	        "unit":   req.Height.Unit,
//	    },
//	)
//
// The HTTP server maps each ErrorCode to a status code, so handlers can
// pass engine errors straight through.
package errors
