// Package eventlog turns flyer game events into structured log lines and
// keeps per-session counters for the summary printed on exit.
package eventlog

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-flyer/internal/games/flyer"
)

// Stats are the counters collected across all runs of a session.
type Stats struct {
	Runs      int // Runs started, including the first
	Spawned   int
	Removed   int
	LastScore int
	BestScore int
}

// Recorder is a flyer.Listener that logs every event tagged with the ID of
// the run it belongs to.
type Recorder struct {
	base   *log.Logger
	logger *log.Logger
	runID  uuid.UUID
	stats  Stats
}

// New creates a recorder and starts its first run.
func New(logger *log.Logger) *Recorder {
	r := &Recorder{base: logger}
	r.StartRun()
	return r
}

// StartRun assigns a fresh run ID. Restart events start a run on their own;
// hosts call this after a full Reset.
func (r *Recorder) StartRun() uuid.UUID {
	r.runID = uuid.New()
	r.logger = r.base.With("run", r.runID.String())
	r.stats.Runs++
	r.logger.Info("run started")
	return r.runID
}

// OnEvent implements flyer.Listener.
func (r *Recorder) OnEvent(e flyer.Event) {
	switch ev := e.(type) {
	case flyer.ObstacleSpawnedEvent:
		r.stats.Spawned++
		r.logger.Debug("rock spawned",
			"id", ev.Obstacle.ID,
			"x", ev.Obstacle.Position.X,
			"y", ev.Obstacle.Position.Y,
			"size", ev.Obstacle.Size,
		)
	case flyer.ObstacleRemovedEvent:
		r.stats.Removed++
		r.logger.Debug("rock removed", "id", ev.Obstacle.ID, "z", ev.Obstacle.Position.Z)
	case flyer.GameOverEvent:
		r.stats.LastScore = ev.Score
		r.stats.BestScore = max(r.stats.BestScore, ev.Score)
		r.logger.Info("game over", "score", ev.Score, "rock", ev.Obstacle.ID, "in_flight", r.stats.Live())
	case flyer.RestartedEvent:
		r.StartRun()
	default:
		r.logger.Warn("unknown event", "type", e)
	}
}

// RunID returns the ID of the current run.
func (r *Recorder) RunID() uuid.UUID {
	return r.runID
}

// Stats returns a copy of the session counters.
func (r *Recorder) Stats() Stats {
	return r.stats
}

// Live returns the number of rocks spawned but not yet removed.
func (s Stats) Live() int {
	return s.Spawned - s.Removed
}
