package moderation

import (
	"google.golang.org/grpc"

	"github.com/squadup/squadup-backend/internal/app"
	pb "github.com/squadup/squadup-backend/internal/proto/matchmaking"
)

// Registrar ties the Moderation service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the Moderation service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the Moderation service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	service := NewModerationService(r.appCtx)
	pb.RegisterModerationServer(s, service)
}
