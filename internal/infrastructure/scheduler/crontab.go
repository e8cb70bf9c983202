// Package scheduler runs the autonomy loop: a periodic pass over autonomous
// personas that records activity and notifies realtime subscribers.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/mileusna/crontab"

	"titan-server/internal/config"
	"titan-server/internal/domain/events"
	"titan-server/internal/domain/persona"
	"titan-server/internal/infrastructure/logger"
	"titan-server/internal/infrastructure/metrics"
	"titan-server/internal/utils/platformerrors"
)

const (
	DefaultTickIntervalMinutes = 15
	CronJobTimeout             = 5 * time.Minute
)

type Crontab struct {
	ctab        *crontab.Crontab
	personas    persona.Repository
	broadcaster events.Broadcaster
}

func NewCrontab(personas persona.Repository, broadcaster events.Broadcaster) *Crontab {
	return &Crontab{
		ctab:        crontab.New(),
		personas:    personas,
		broadcaster: broadcaster,
	}
}

func (c *Crontab) Run(ctx context.Context) error {
	log := logger.GetLogger()

	cfg := config.GetGlobal()
	if cfg != nil && cfg.AutonomyEnabled {
		interval := cfg.AutonomyIntervalMinutes
		if interval <= 0 {
			interval = DefaultTickIntervalMinutes
		}

		cronExpr := fmt.Sprintf("*/%d * * * *", interval)
		if err := c.ctab.AddJob(cronExpr, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), CronJobTimeout)
			defer cancel()
			c.runAutonomyTick(jobCtx)
		}); err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to add autonomy tick job")
		}
		log.Warn().Msgf("Autonomy tick scheduled: every %d minute(s)", interval)
	}

	// Schedule environment reload job
	if err := c.ctab.AddJob("* * * * *", func() {
		config.Load()
	}); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to add env reload job")
	}

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

// runAutonomyTick visits every eligible persona once. A failure on one
// persona does not stop the pass.
func (c *Crontab) runAutonomyTick(ctx context.Context) {
	log := logger.GetLogger()

	personas, err := c.personas.ListAutonomous(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list autonomous personas")
		metrics.RecordAutonomyTick("error")
		return
	}

	if len(personas) == 0 {
		metrics.RecordAutonomyTick("empty")
		return
	}

	visited := 0
	for _, p := range personas {
		run := persona.AutonomyRun{
			Action: "autonomy_tick",
			Detail: fmt.Sprintf("level %d pass", p.Autonomy.Level),
			RanAt:  time.Now().UTC(),
		}
		p.RecordAutonomyRun(run)

		if err := c.personas.Update(ctx, p); err != nil {
			log.Error().Err(err).Str("persona_id", p.PublicID).Msg("Failed to record autonomy run")
			continue
		}
		if err := c.personas.UpdateStats(ctx, p.ID, p.Stats); err != nil {
			log.Error().Err(err).Str("persona_id", p.PublicID).Msg("Failed to update persona activity")
		}
		visited++
	}

	metrics.RecordAutonomyTick("ok")
	c.broadcaster.Broadcast(events.AutonomyTick, map[string]any{
		"personas_visited": visited,
		"ran_at":           time.Now().UTC(),
	})

	log.Info().Int("personas_visited", visited).Msg("Autonomy tick complete")
}
