package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// UnaryLogging tags every request with a generated request id and logs the
// outcome with its duration and status code.
func UnaryLogging(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		reqID := uuid.NewString()
		start := time.Now()

		resp, err := handler(ctx, req)

		attrs := []any{
			"req_id", reqID,
			"method", info.FullMethod,
			"duration_ms", time.Since(start).Milliseconds(),
			"code", status.Code(err).String(),
		}
		if err != nil {
			log.Warn("rpc failed", attrs...)
		} else {
			log.Debug("rpc ok", attrs...)
		}
		return resp, err
	}
}
