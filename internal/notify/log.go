package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kikiarya/hsc-planner/internal/reconciler"
)

// LogNotifier writes notices to a logger. Error notices log at warn level.
type LogNotifier struct {
	log *slog.Logger
}

var _ reconciler.Notifier = (*LogNotifier)(nil)

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{log: log.With("component", "notifier")}
}

func (n *LogNotifier) Notify(notice reconciler.Notice) {
	level := slog.LevelInfo
	if notice.Kind == reconciler.NoticeError {
		level = slog.LevelWarn
	}
	n.log.Log(context.Background(), level, notice.Message,
		slog.String("kind", string(notice.Kind)),
		slog.String("key", notice.Key.String()),
		slog.String("notice_id", notice.ID.String()),
	)
}

func (n *LogNotifier) Dismiss(id uuid.UUID) {
	n.log.Debug("notice dismissed", slog.String("notice_id", id.String()))
}
