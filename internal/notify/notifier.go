package notify

import (
	"context"
	"log/slog"

	"github.com/leagueops/leaguekeeper/internal/model"
)

// Notifier delivers a pre-match reminder for a match between two clubs.
//
// The reminder scheduler relies on being invoked at most once per match;
// failures are logged by the caller and never retried automatically.
type Notifier interface {
	Notify(ctx context.Context, match model.Match, club1, club2 model.Club) error
}

// LogNotifier is a Notifier that writes reminders to the application log.
// It stands in for a real delivery channel (chat webhook, email, push).
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Ensure LogNotifier implements Notifier
var _ Notifier = (*LogNotifier)(nil)

// Notify logs the reminder
func (n *LogNotifier) Notify(ctx context.Context, match model.Match, club1, club2 model.Club) error {
	n.logger.Info("match reminder",
		slog.Int("match_id", match.ID),
		slog.String("club1", club1.Name),
		slog.String("club2", club2.Name),
		slog.Time("kickoff", match.ScheduledTime),
	)
	return nil
}
