// internal/errors/mapper.go
package errors

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
)

// Domain sentinels raised by the repositories. Services surface them through
// Map so callers always see a typed status error.
var (
	// ErrInvalidAction marks a moderation action code outside {approve, ban, dismiss}.
	ErrInvalidAction = errors.New("invalid moderation action")

	// ErrReportResolved marks an attempt to resolve an already-terminal report.
	ErrReportResolved = errors.New("report already resolved")
)

// Map converts repo/infra errors into gRPC-friendly status errors.
// Keeps service layer clean by centralizing error mapping.
func Map(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return status.Error(codes.NotFound, "record not found")

	case errors.Is(err, ErrInvalidAction):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, ErrReportResolved):
		return status.Error(codes.FailedPrecondition, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request was canceled")

	default:
		// storage faults and anything unclassified: retryable for the caller
		return status.Error(codes.Internal, err.Error())
	}
}

// InvalidArgument creates a gRPC InvalidArgument error.
// Use this in service layer for bad input validation.
func InvalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}

// NotFound creates a gRPC NotFound error with a caller-supplied message.
func NotFound(msg string) error {
	return status.Error(codes.NotFound, msg)
}
