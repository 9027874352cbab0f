package roster

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// BuildEvent captures telemetry for one department's roster build.
type BuildEvent struct {
	Department string
	Index      int
	Candidates int
	Admitted   int
	Waitlisted int
	Duration   time.Duration
}

// Observer receives roster build events.
type Observer interface {
	ObserveBuild(ctx context.Context, event BuildEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveBuild(context.Context, BuildEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes build events to w at the given minimum level.
func NewLogObserver(w io.Writer, level slog.Level) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

func (o *logObserver) ObserveBuild(ctx context.Context, event BuildEvent) {
	o.logger.InfoContext(ctx, "roster_build",
		"department", event.Department,
		"index", event.Index,
		"candidates", event.Candidates,
		"admitted", event.Admitted,
		"waitlisted", event.Waitlisted,
		"duration_us", event.Duration.Microseconds(),
	)
}
