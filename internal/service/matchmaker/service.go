package matchmaker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/squadup/squadup-backend/internal/app"
	"github.com/squadup/squadup-backend/internal/cache"
	"github.com/squadup/squadup-backend/internal/db"
	svcErr "github.com/squadup/squadup-backend/internal/errors"
	pb "github.com/squadup/squadup-backend/internal/proto/matchmaking"
	"github.com/squadup/squadup-backend/internal/repository"
)

const (
	inboxPageSize      = 10
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

// SubscriptionChecker is the external gate consulted by CheckAccess, e.g. a
// Telegram channel-membership probe. A nil checker allows everyone.
type SubscriptionChecker func(ctx context.Context, userID uint64, game string) (bool, error)

// Service implements the Matchmaker gRPC API.
// It contains the business logic on top of repository and cache layers.
// Each method corresponds to a gRPC endpoint defined in matchmaking.proto.
type Service struct {
	appCtx          *app.AppContext
	profileRepo     *repository.ProfileRepository
	interactionRepo *repository.InteractionRepository
	searchRepo      *repository.SearchRepository
	subscription    SubscriptionChecker

	pb.UnimplementedMatchmakerServer
}

// NewMatchmakerService creates a new Matchmaker service with dependencies
// from AppContext. The cache handle may be nil: every read then goes straight
// to the authoritative store.
func NewMatchmakerService(appCtx *app.AppContext, subscription SubscriptionChecker) *Service {
	return &Service{
		appCtx:          appCtx,
		profileRepo:     repository.NewProfileRepository(appCtx.DB),
		interactionRepo: repository.NewInteractionRepository(appCtx.DB),
		searchRepo:      repository.NewSearchRepository(appCtx.DB),
		subscription:    subscription,
	}
}

// GetProfile returns the profile for (user_id, game).
//
// Cache-first strategy:
//  1. Attempts the profile key in Redis.
//  2. On miss, reads the store and populates the cache with the profile TTL.
//
// Absent profile → NotFound.
func (s *Service) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {
	s.appCtx.Logger.Debug("GetProfile called", "user", req.GetUserId(), "game", req.GetGame())

	if req.GetUserId() == 0 || req.GetGame() == "" {
		return nil, svcErr.InvalidArgument("user_id and game are required")
	}

	if cached := s.cacheGet(ctx, s.profileKey(req.GetUserId(), req.GetGame())); cached != "" {
		var profile db.Profile
		if err := json.Unmarshal([]byte(cached), &profile); err == nil {
			return &pb.GetProfileResponse{Profile: toPBProfile(&profile)}, nil
		}
	}

	profile, err := s.profileRepo.Get(ctx, req.GetUserId(), req.GetGame())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, svcErr.NotFound("profile not found")
		}
		return nil, svcErr.Map(err)
	}

	s.cacheSetJSON(ctx, s.profileKey(req.GetUserId(), req.GetGame()), profile, s.appCtx.Cfg.Cache.ProfileTTL)

	return &pb.GetProfileResponse{Profile: toPBProfile(profile)}, nil
}

// UpsertProfile replaces the caller's profile for the game wholesale,
// creating it (and the owning user row) when absent. The profile cache entry
// and the owner's search-result entries are invalidated on success.
func (s *Service) UpsertProfile(ctx context.Context, req *pb.UpsertProfileRequest) (*pb.UpsertProfileResponse, error) {
	p := req.GetProfile()
	if p == nil {
		return nil, svcErr.InvalidArgument("profile is required")
	}
	s.appCtx.Logger.Debug("UpsertProfile called", "user", p.GetUserId(), "game", p.GetGame())

	if p.GetUserId() == 0 || p.GetGame() == "" {
		return nil, svcErr.InvalidArgument("profile.user_id and profile.game are required")
	}
	switch p.GetRole() {
	case db.RolePlayer, db.RoleCoach, db.RoleManager:
	default:
		return nil, svcErr.InvalidArgument("role must be player, coach or manager")
	}

	if err := s.profileRepo.Upsert(ctx, fromPBProfile(p)); err != nil {
		return nil, svcErr.Map(err)
	}

	s.cacheDel(ctx, s.profileKey(p.GetUserId(), p.GetGame()))
	s.cacheDelPrefix(ctx, s.searchPrefix(p.GetUserId(), p.GetGame()))

	return &pb.UpsertProfileResponse{}, nil
}

// DeleteProfile removes the caller's profile for the game together with all
// ledger rows referencing it (one atomic cascade in the store).
func (s *Service) DeleteProfile(ctx context.Context, req *pb.DeleteProfileRequest) (*pb.DeleteProfileResponse, error) {
	s.appCtx.Logger.Debug("DeleteProfile called", "user", req.GetUserId(), "game", req.GetGame())

	if req.GetUserId() == 0 || req.GetGame() == "" {
		return nil, svcErr.InvalidArgument("user_id and game are required")
	}

	if err := s.profileRepo.Delete(ctx, req.GetUserId(), req.GetGame()); err != nil {
		return nil, svcErr.Map(err)
	}

	s.cacheDel(ctx, s.profileKey(req.GetUserId(), req.GetGame()))
	s.cacheDelPrefix(ctx, s.searchPrefix(req.GetUserId(), req.GetGame()))

	return &pb.DeleteProfileResponse{}, nil
}

// SearchCandidates returns the next batch of browsable profiles for the
// requesting user.
//
// Behavior:
//   - Excludes self, already-liked, reported and banned candidates for any
//     filter combination (enforced in the search query).
//   - Ordering is randomized per call; an empty pool is an empty response.
//   - Results are cached per (user, game, filter-hash) with the search TTL.
func (s *Service) SearchCandidates(ctx context.Context, req *pb.SearchCandidatesRequest) (*pb.SearchCandidatesResponse, error) {
	s.appCtx.Logger.Debug("SearchCandidates called",
		"user", req.GetUserId(), "game", req.GetGame(),
		"rating", req.GetRating(), "position", req.GetPosition(), "region", req.GetRegion(),
	)

	if req.GetUserId() == 0 || req.GetGame() == "" {
		return nil, svcErr.InvalidArgument("user_id and game are required")
	}

	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	hash := cache.FilterHash(req.GetRating(), req.GetPosition(), req.GetRegion(), limit)
	key := s.searchKey(req.GetUserId(), req.GetGame(), hash)

	if cached := s.cacheGet(ctx, key); cached != "" {
		var profiles []db.Profile
		if err := json.Unmarshal([]byte(cached), &profiles); err == nil {
			return &pb.SearchCandidatesResponse{Profiles: toPBProfiles(profiles)}, nil
		}
	}

	profiles, err := s.searchRepo.Candidates(ctx, req.GetUserId(), req.GetGame(), repository.SearchFilters{
		Rating:   req.GetRating(),
		Position: req.GetPosition(),
		Region:   req.GetRegion(),
	}, limit)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	s.cacheSetJSON(ctx, key, profiles, s.appCtx.Cfg.Cache.SearchTTL)

	return &pb.SearchCandidatesResponse{Profiles: toPBProfiles(profiles)}, nil
}

// PutLike records a directed like and reports whether it completed a match.
//
// Behavior:
//   - A repeat like is a defined no-op (created=false) and emits nothing.
//   - A fresh like that completes the pair emits MatchFormed; one that does
//     not emits LikeReceived. Both fire exactly once, synchronously with the
//     write's success.
//   - Both users' search caches are coarsely invalidated.
func (s *Service) PutLike(ctx context.Context, req *pb.PutLikeRequest) (*pb.PutLikeResponse, error) {
	s.appCtx.Logger.Debug("PutLike called",
		"from", req.GetFromUserId(), "to", req.GetToUserId(), "game", req.GetGame(),
	)

	if req.GetFromUserId() == 0 || req.GetToUserId() == 0 || req.GetGame() == "" {
		return nil, svcErr.InvalidArgument("from_user_id, to_user_id and game are required")
	}
	if req.GetFromUserId() == req.GetToUserId() {
		return nil, svcErr.InvalidArgument("cannot like yourself")
	}

	result, err := s.interactionRepo.Like(ctx, req.GetFromUserId(), req.GetToUserId(), req.GetGame(), req.GetMessage())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	if result.Created {
		s.cacheDelPrefix(ctx, s.searchPrefix(req.GetFromUserId(), req.GetGame()))
		s.cacheDelPrefix(ctx, s.searchPrefix(req.GetToUserId(), req.GetGame()))

		if result.Matched {
			a, b := db.CanonicalPair(req.GetFromUserId(), req.GetToUserId())
			s.appCtx.Notifier.MatchFormed(ctx, a, b, req.GetGame())
		} else {
			s.appCtx.Notifier.LikeReceived(ctx, req.GetToUserId(), req.GetFromUserId(), req.GetGame())
		}
	}

	return &pb.PutLikeResponse{Created: result.Created, Mutual: result.Matched}, nil
}

// SkipCandidate records a pass on a search candidate. Repeatable; only the
// skip counter and timestamp move. The skipper's search cache is invalidated
// so the next page can reflect the pass.
func (s *Service) SkipCandidate(ctx context.Context, req *pb.SkipCandidateRequest) (*pb.SkipCandidateResponse, error) {
	if req.GetUserId() == 0 || req.GetCandidateUserId() == 0 || req.GetGame() == "" {
		return nil, svcErr.InvalidArgument("user_id, candidate_user_id and game are required")
	}
	if req.GetUserId() == req.GetCandidateUserId() {
		return nil, svcErr.InvalidArgument("cannot skip yourself")
	}

	if err := s.interactionRepo.SkipCandidate(ctx, req.GetUserId(), req.GetCandidateUserId(), req.GetGame()); err != nil {
		return nil, svcErr.Map(err)
	}

	s.cacheDelPrefix(ctx, s.searchPrefix(req.GetUserId(), req.GetGame()))

	return &pb.SkipCandidateResponse{}, nil
}

// SkipInboundLike permanently dismisses a liker from the caller's pending
// inbox for the game. Idempotent.
func (s *Service) SkipInboundLike(ctx context.Context, req *pb.SkipInboundLikeRequest) (*pb.SkipInboundLikeResponse, error) {
	if req.GetUserId() == 0 || req.GetLikerUserId() == 0 || req.GetGame() == "" {
		return nil, svcErr.InvalidArgument("user_id, liker_user_id and game are required")
	}

	if err := s.interactionRepo.SkipInboundLike(ctx, req.GetUserId(), req.GetLikerUserId(), req.GetGame()); err != nil {
		return nil, svcErr.Map(err)
	}

	return &pb.SkipInboundLikeResponse{}, nil
}

// ListLikesInbox returns the caller's pending likes, most recent first, with
// cursor pagination. Matched pairs and dismissed likers never appear.
func (s *Service) ListLikesInbox(ctx context.Context, req *pb.ListLikesInboxRequest) (*pb.ListLikesInboxResponse, error) {
	s.appCtx.Logger.Debug("ListLikesInbox called", "user", req.GetUserId(), "game", req.GetGame(), "token", req.GetPaginationToken())

	if req.GetUserId() == 0 || req.GetGame() == "" {
		return nil, svcErr.InvalidArgument("user_id and game are required")
	}

	likes, nextToken, err := s.interactionRepo.ListInbox(ctx, req.GetUserId(), req.GetGame(), req.PaginationToken, inboxPageSize)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListLikesInboxResponse{}
	for _, l := range likes {
		resp.Likers = append(resp.Likers, &pb.ListLikesInboxResponse_Liker{
			LikerUserId:   l.FromUserID,
			Message:       l.Message,
			UnixTimestamp: uint64(l.CreatedAt.UnixMilli()),
		})
	}
	if nextToken != nil {
		resp.NextPaginationToken = nextToken
	}

	return resp, nil
}

// ListMatches returns the caller's matches for the game, most recent first,
// reported as partner ids.
func (s *Service) ListMatches(ctx context.Context, req *pb.ListMatchesRequest) (*pb.ListMatchesResponse, error) {
	if req.GetUserId() == 0 || req.GetGame() == "" {
		return nil, svcErr.InvalidArgument("user_id and game are required")
	}

	matches, err := s.interactionRepo.ListMatches(ctx, req.GetUserId(), req.GetGame())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListMatchesResponse{}
	for _, m := range matches {
		partner := m.UserAID
		if partner == req.GetUserId() {
			partner = m.UserBID
		}
		resp.Matches = append(resp.Matches, &pb.ListMatchesResponse_Entry{
			PartnerUserId: partner,
			UnixTimestamp: uint64(m.CreatedAt.UnixMilli()),
		})
	}

	return resp, nil
}

// CheckAccess runs the subscription gate for (user, game), caching the
// verdict with the subscription TTL. Without a configured checker everyone
// is allowed.
func (s *Service) CheckAccess(ctx context.Context, req *pb.CheckAccessRequest) (*pb.CheckAccessResponse, error) {
	if req.GetUserId() == 0 || req.GetGame() == "" {
		return nil, svcErr.InvalidArgument("user_id and game are required")
	}

	if s.subscription == nil {
		return &pb.CheckAccessResponse{Allowed: true}, nil
	}

	key := s.subscriptionKey(req.GetUserId(), req.GetGame())
	switch s.cacheGet(ctx, key) {
	case "1":
		return &pb.CheckAccessResponse{Allowed: true}, nil
	case "0":
		return &pb.CheckAccessResponse{Allowed: false}, nil
	}

	allowed, err := s.subscription(ctx, req.GetUserId(), req.GetGame())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	val := "0"
	if allowed {
		val = "1"
	}
	s.cacheSet(ctx, key, val, s.appCtx.Cfg.Cache.SubscriptionTTL)

	return &pb.CheckAccessResponse{Allowed: allowed}, nil
}

//
// cache helpers: every failure is logged and swallowed; the cache is a pure
// accelerator and must never block the authoritative path.
//

func (s *Service) profileKey(userID uint64, game string) string {
	return s.appCtx.RedisCache.KeyForProfile(userID, game)
}

func (s *Service) searchKey(userID uint64, game, hash string) string {
	return s.appCtx.RedisCache.KeyForSearch(userID, game, hash)
}

func (s *Service) searchPrefix(userID uint64, game string) string {
	return s.appCtx.RedisCache.SearchPrefix(userID, game)
}

func (s *Service) subscriptionKey(userID uint64, game string) string {
	return s.appCtx.RedisCache.KeyForSubscription(userID, game)
}

func (s *Service) cacheGet(ctx context.Context, key string) string {
	if s.appCtx.RedisCache == nil {
		return ""
	}
	val, err := s.appCtx.RedisCache.Get(ctx, key)
	if err != nil {
		s.appCtx.Logger.Warn("cache get failed", "key", key, "err", err)
		return ""
	}
	return val
}

func (s *Service) cacheSet(ctx context.Context, key, val string, ttl time.Duration) {
	if s.appCtx.RedisCache == nil {
		return
	}
	if err := s.appCtx.RedisCache.Set(ctx, key, val, ttl); err != nil {
		s.appCtx.Logger.Warn("cache set failed", "key", key, "err", err)
	}
}

func (s *Service) cacheSetJSON(ctx context.Context, key string, val interface{}, ttl time.Duration) {
	b, err := json.Marshal(val)
	if err != nil {
		return
	}
	s.cacheSet(ctx, key, string(b), ttl)
}

func (s *Service) cacheDel(ctx context.Context, key string) {
	if s.appCtx.RedisCache == nil {
		return
	}
	if err := s.appCtx.RedisCache.Del(ctx, key); err != nil {
		s.appCtx.Logger.Warn("cache del failed", "key", key, "err", err)
	}
}

func (s *Service) cacheDelPrefix(ctx context.Context, prefix string) {
	if s.appCtx.RedisCache == nil {
		return
	}
	if err := s.appCtx.RedisCache.DelByPrefix(ctx, prefix); err != nil {
		s.appCtx.Logger.Warn("cache prefix del failed", "prefix", prefix, "err", err)
	}
}

//
// model conversions
//

func toPBProfile(p *db.Profile) *pb.Profile {
	out := &pb.Profile{
		UserId:      p.UserID,
		Game:        p.Game,
		Name:        p.Name,
		Nickname:    p.Nickname,
		Age:         uint32(p.Age),
		Rating:      p.Rating,
		Region:      p.Region,
		Role:        p.Role,
		Positions:   p.Positions,
		Goals:       p.Goals,
		Bio:         p.Bio,
		UpdatedUnix: uint64(p.UpdatedAt.UnixMilli()),
	}
	if p.PhotoID != nil {
		out.PhotoId = *p.PhotoID
	}
	if p.ProfileURL != nil {
		out.ProfileUrl = *p.ProfileURL
	}
	return out
}

func toPBProfiles(profiles []db.Profile) []*pb.Profile {
	out := make([]*pb.Profile, 0, len(profiles))
	for i := range profiles {
		out = append(out, toPBProfile(&profiles[i]))
	}
	return out
}

func fromPBProfile(p *pb.Profile) *db.Profile {
	out := &db.Profile{
		UserID:    p.GetUserId(),
		Game:      p.GetGame(),
		Name:      p.GetName(),
		Nickname:  p.GetNickname(),
		Age:       int(p.GetAge()),
		Rating:    p.GetRating(),
		Region:    p.GetRegion(),
		Role:      p.GetRole(),
		Positions: p.GetPositions(),
		Goals:     p.GetGoals(),
		Bio:       p.GetBio(),
	}
	if v := p.GetPhotoId(); v != "" {
		out.PhotoID = &v
	}
	if v := p.GetProfileUrl(); v != "" {
		out.ProfileURL = &v
	}
	return out
}
