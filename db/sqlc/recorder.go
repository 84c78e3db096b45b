package sqlc

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sqlc-dev/pqtype"

	mb "github.com/saeidalz13/battleship-hotseat/models/battleship"
)

// Recorder counts matches and shots of this host. A failed write is
// logged and never interrupts the match.
type Recorder struct {
	analytics *AnalyticsManager
	serverIp  pqtype.Inet
	timeout   time.Duration
}

func NewRecorder(analytics *AnalyticsManager, serverIp pqtype.Inet) *Recorder {
	return &Recorder{
		analytics: analytics,
		serverIp:  serverIp,
		timeout:   QuerierCtxTimeout,
	}
}

func (r *Recorder) MatchStarted(match *mb.Match) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.analytics.IncrementMatchesCreatedCount(ctx, r.serverIp); err != nil {
		log.Error("failed to record created match", "match", match.Uuid(), "err", err)
	}
}

func (r *Recorder) ShotFired(match *mb.Match, record mb.ShotRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.analytics.AddShotsFired(ctx, r.serverIp, 1); err != nil {
		log.Error("failed to record shot", "match", match.Uuid(), "turn", record.Turn, "err", err)
	}
}

func (r *Recorder) MatchEnded(match *mb.Match) {
	if _, over := match.IsOver(); !over {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.analytics.IncrementMatchesFinishedCount(ctx, r.serverIp); err != nil {
		log.Error("failed to record finished match", "match", match.Uuid(), "err", err)
	}
}
