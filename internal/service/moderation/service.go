package moderation

import (
	"context"

	"github.com/squadup/squadup-backend/internal/app"
	svcErr "github.com/squadup/squadup-backend/internal/errors"
	pb "github.com/squadup/squadup-backend/internal/proto/matchmaking"
	"github.com/squadup/squadup-backend/internal/repository"
)

// Service implements the Moderation gRPC API: report filing, the review
// queue, resolutions and bans.
type Service struct {
	appCtx         *app.AppContext
	moderationRepo *repository.ModerationRepository

	pb.UnimplementedModerationServer
}

// NewModerationService creates a new Moderation service with dependencies
// from AppContext.
func NewModerationService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:         appCtx,
		moderationRepo: repository.NewModerationRepository(appCtx.DB),
	}
}

// FileReport records a complaint. Re-reporting the same (reporter, reported,
// game) triple is a silent no-op surfaced as created=false. The reporter's
// search cache is invalidated: the reported profile must vanish from their
// next page.
func (s *Service) FileReport(ctx context.Context, req *pb.FileReportRequest) (*pb.FileReportResponse, error) {
	s.appCtx.Logger.Debug("FileReport called",
		"reporter", req.GetReporterUserId(), "reported", req.GetReportedUserId(), "game", req.GetGame(),
	)

	if req.GetReporterUserId() == 0 || req.GetReportedUserId() == 0 || req.GetGame() == "" {
		return nil, svcErr.InvalidArgument("reporter_user_id, reported_user_id and game are required")
	}
	if req.GetReporterUserId() == req.GetReportedUserId() {
		return nil, svcErr.InvalidArgument("cannot report yourself")
	}
	if req.GetReason() == "" {
		return nil, svcErr.InvalidArgument("reason is required")
	}

	created, err := s.moderationRepo.FileReport(ctx, req.GetReporterUserId(), req.GetReportedUserId(), req.GetGame(), req.GetReason())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	if created {
		s.invalidateSearch(ctx, s.searchPrefix(req.GetReporterUserId(), req.GetGame()))
	}

	return &pb.FileReportResponse{Created: created}, nil
}

// ListPendingReports returns the review queue, oldest first.
func (s *Service) ListPendingReports(ctx context.Context, req *pb.ListPendingReportsRequest) (*pb.ListPendingReportsResponse, error) {
	reports, err := s.moderationRepo.ListPending(ctx)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListPendingReportsResponse{}
	for _, r := range reports {
		resp.Reports = append(resp.Reports, &pb.Report{
			Id:             r.ID,
			ReporterUserId: r.ReporterID,
			ReportedUserId: r.ReportedID,
			Game:           r.Game,
			Reason:         r.Reason,
			Status:         string(r.Status),
			FiledUnix:      uint64(r.CreatedAt.UnixMilli()),
		})
	}

	return resp, nil
}

// ResolveReport moves a pending report to a terminal state.
//
// Behavior:
//   - approve → reported profile removed (cascade), report approved
//   - ban     → profile removed AND the user banned for the default duration
//   - dismiss → status change only
//   - unknown action → InvalidArgument; already-resolved → FailedPrecondition
//
// A resolution that deletes a profile or bans a user flushes the whole
// search cache namespace: any browser's next page may be affected.
func (s *Service) ResolveReport(ctx context.Context, req *pb.ResolveReportRequest) (*pb.ResolveReportResponse, error) {
	s.appCtx.Logger.Debug("ResolveReport called",
		"report", req.GetReportId(), "action", req.GetAction(), "reviewer", req.GetReviewerUserId(),
	)

	if req.GetReportId() == 0 || req.GetReviewerUserId() == 0 {
		return nil, svcErr.InvalidArgument("report_id and reviewer_user_id are required")
	}

	err := s.moderationRepo.Resolve(ctx, req.GetReportId(), req.GetAction(), req.GetReviewerUserId(), s.appCtx.Cfg.Moderation.DefaultBanDays)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	if req.GetAction() != repository.ActionDismiss {
		s.invalidateSearch(ctx, "search:")
	}

	return &pb.ResolveReportResponse{}, nil
}

// BanUser creates or replaces a time-bounded ban. Zero duration_days falls
// back to the configured default.
func (s *Service) BanUser(ctx context.Context, req *pb.BanUserRequest) (*pb.BanUserResponse, error) {
	if req.GetUserId() == 0 {
		return nil, svcErr.InvalidArgument("user_id is required")
	}

	days := int(req.GetDurationDays())
	if days <= 0 {
		days = s.appCtx.Cfg.Moderation.DefaultBanDays
	}

	if err := s.moderationRepo.Ban(ctx, req.GetUserId(), req.GetReason(), days); err != nil {
		return nil, svcErr.Map(err)
	}

	s.invalidateSearch(ctx, "search:")

	return &pb.BanUserResponse{}, nil
}

// UnbanUser removes any ban for the user. Idempotent.
func (s *Service) UnbanUser(ctx context.Context, req *pb.UnbanUserRequest) (*pb.UnbanUserResponse, error) {
	if req.GetUserId() == 0 {
		return nil, svcErr.InvalidArgument("user_id is required")
	}

	if err := s.moderationRepo.Unban(ctx, req.GetUserId()); err != nil {
		return nil, svcErr.Map(err)
	}

	s.invalidateSearch(ctx, "search:")

	return &pb.UnbanUserResponse{}, nil
}

// CheckBan reports whether the user is currently banned, with the expiry
// when a ban row exists.
func (s *Service) CheckBan(ctx context.Context, req *pb.CheckBanRequest) (*pb.CheckBanResponse, error) {
	if req.GetUserId() == 0 {
		return nil, svcErr.InvalidArgument("user_id is required")
	}

	banned, err := s.moderationRepo.IsBanned(ctx, req.GetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.CheckBanResponse{Banned: banned}
	if ban, err := s.moderationRepo.GetBan(ctx, req.GetUserId()); err == nil {
		resp.ExpiresUnix = uint64(ban.ExpiresAt.UnixMilli())
	}

	return resp, nil
}

func (s *Service) searchPrefix(userID uint64, game string) string {
	return s.appCtx.RedisCache.SearchPrefix(userID, game)
}

// invalidateSearch is best-effort: cache failures are logged and swallowed.
func (s *Service) invalidateSearch(ctx context.Context, prefix string) {
	if s.appCtx.RedisCache == nil {
		return
	}
	if err := s.appCtx.RedisCache.DelByPrefix(ctx, prefix); err != nil {
		s.appCtx.Logger.Warn("cache prefix del failed", "prefix", prefix, "err", err)
	}
}
