package matchmaker

import (
	"google.golang.org/grpc"

	"github.com/squadup/squadup-backend/internal/app"
	pb "github.com/squadup/squadup-backend/internal/proto/matchmaking"
)

// Registrar ties the Matchmaker service into the gRPC server
type Registrar struct {
	appCtx       *app.AppContext
	subscription SubscriptionChecker
}

// NewRegistrar creates a new Registrar for the Matchmaker service
func NewRegistrar(appCtx *app.AppContext, subscription SubscriptionChecker) *Registrar {
	return &Registrar{appCtx: appCtx, subscription: subscription}
}

// Register attaches the Matchmaker service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	service := NewMatchmakerService(r.appCtx, r.subscription)
	pb.RegisterMatchmakerServer(s, service)
}
