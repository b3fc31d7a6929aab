// Package events defines the outbound boundary between the matching core and
// whatever delivers user-facing notifications. The core emits each event
// synchronously, exactly once, right after the triggering write commits;
// delivery mechanics live entirely on the other side of the interface.
package events

import (
	"context"
	"log/slog"
)

// Notifier receives match/like facts from the matching core.
type Notifier interface {
	// MatchFormed fires once per created match, with the canonical pair order.
	MatchFormed(ctx context.Context, userA, userB uint64, game string)

	// LikeReceived fires once per fresh directed like that did not complete a
	// match. Duplicate likes never fire.
	LikeReceived(ctx context.Context, to, from uint64, game string)
}

// LogNotifier is the default Notifier: it records events on the structured
// log and nothing else. Deployments swap in a real delivery collaborator.
type LogNotifier struct {
	Log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{Log: log}
}

func (n *LogNotifier) MatchFormed(ctx context.Context, userA, userB uint64, game string) {
	n.Log.InfoContext(ctx, "match formed", "user_a", userA, "user_b", userB, "game", game)
}

func (n *LogNotifier) LikeReceived(ctx context.Context, to, from uint64, game string) {
	n.Log.InfoContext(ctx, "like received", "to", to, "from", from, "game", game)
}
