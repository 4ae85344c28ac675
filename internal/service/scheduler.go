package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/novina/Novina/internal/pkg/log"
)

// StartSchedule периодически запускает плановый режим по s.cfg.Schedule.
//
// Особенности:
//   - при run_on_start первый прогон выполняется сразу;
//   - ошибка прогона логируется, цикл продолжается;
//   - останавливается по ctx.
func (s *Service) StartSchedule(ctx context.Context) error {
	const op = "service.scheduler.StartSchedule"

	interval := s.cfg.Schedule.Interval
	if interval <= 0 {
		return fmt.Errorf("%s: interval must be > 0", op)
	}

	lg := log.From(ctx)
	lg.Info("schedule_start",
		slog.String("op", op),
		slog.Duration("interval", interval),
		slog.Bool("run_on_start", s.cfg.Schedule.RunOnStart),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if s.cfg.Schedule.RunOnStart {
		s.scheduledTick(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			lg.Info("schedule_stop", slog.String("op", op))
			return nil
		case <-ticker.C:
			s.scheduledTick(ctx)
		}
	}
}

// scheduledTick: один плановый прогон с логированием исхода.
func (s *Service) scheduledTick(ctx context.Context) {
	const op = "service.scheduler.scheduledTick"

	lg := log.From(ctx)

	res, err := s.RunScheduled(ctx)
	if err != nil {
		lg.Warn("schedule_tick_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return
	}

	lg.Info("schedule_tick_done",
		slog.String("op", op),
		slog.String("batch_id", res.Batch.ID.String()),
		slog.String("status", string(res.Batch.Status)),
		slog.Int("articles", res.Batch.ArticlesGenerated),
	)
}
