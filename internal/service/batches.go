package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/novina/Novina/internal/models"
	"github.com/novina/Novina/internal/pkg/log"
)

const defaultFinalizeTimeout = 10 * time.Second

// ProviderFailure: неудача генерации у одного провайдера.
type ProviderFailure struct {
	Provider string
	Message  string
}

// batchOutcome: итог работы по пакету до терминального перехода.
type batchOutcome struct {
	generated int
	failures  []ProviderFailure
}

// status: completed, если есть хотя бы одна статья, даже при частичных сбоях.
func (o batchOutcome) status() models.BatchStatus {
	if o.generated > 0 {
		return models.BatchCompleted
	}
	return models.BatchFailed
}

// errorMessage склеивает сбои в "<провайдер>: <ошибка>; ...". nil, если сбоев нет.
func (o batchOutcome) errorMessage() *string {
	if len(o.failures) == 0 {
		return nil
	}

	parts := make([]string, 0, len(o.failures))
	for _, f := range o.failures {
		if f.Provider == "" {
			parts = append(parts, f.Message)
			continue
		}
		parts = append(parts, f.Provider+": "+f.Message)
	}

	msg := strings.Join(parts, "; ")
	return &msg
}

// openBatch создаёт пакет в pending и сразу переводит его в processing,
// до любых внешних вызовов.
func (s *Service) openBatch(ctx context.Context, b *models.Batch) error {
	const op = "service.batches.openBatch"

	lg := log.From(ctx)

	now := s.now()
	b.ID = uuid.New()
	b.BatchDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	b.Status = models.BatchPending
	b.CreatedAt = now

	if err := s.storage.SaveBatch(ctx, b); err != nil {
		lg.Error("batch_create_failed",
			slog.String("op", op),
			slog.String("type", string(b.GenerationType)),
			slog.String("err", err.Error()),
		)

		return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
	}

	if err := s.storage.MarkBatchProcessing(ctx, b.ID); err != nil {
		lg.Error("batch_processing_failed",
			slog.String("op", op),
			slog.String("batch_id", b.ID.String()),
			slog.String("err", err.Error()),
		)

		// Пакет не должен остаться в pending навсегда.
		_ = s.finishBatch(ctx, b, batchOutcome{failures: []ProviderFailure{{Message: Reason(err)}}})

		return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
	}

	b.Status = models.BatchProcessing

	lg.Info("batch_opened",
		slog.String("op", op),
		slog.String("batch_id", b.ID.String()),
		slog.String("type", string(b.GenerationType)),
	)

	return nil
}

// finishBatch выполняет терминальный переход. Контекст отвязан от отмены вызывающего,
// чтобы разрыв соединения клиента не оставил пакет в processing.
func (s *Service) finishBatch(ctx context.Context, b *models.Batch, out batchOutcome) error {
	const op = "service.batches.finishBatch"

	timeout := s.cfg.Generation.FinalizeTimeout
	if timeout <= 0 {
		timeout = defaultFinalizeTimeout
	}

	fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	res := models.BatchResult{
		Status:            out.status(),
		ArticlesGenerated: out.generated,
		ErrorMessage:      out.errorMessage(),
		CompletedAt:       s.now(),
	}

	lg := log.From(ctx)

	if err := s.storage.FinishBatch(fctx, b.ID, res); err != nil {
		lg.Error("batch_finish_failed",
			slog.String("op", op),
			slog.String("batch_id", b.ID.String()),
			slog.String("status", string(res.Status)),
			slog.String("err", err.Error()),
		)

		return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
	}

	b.Status = res.Status
	b.ArticlesGenerated = res.ArticlesGenerated
	b.ErrorMessage = res.ErrorMessage
	b.CompletedAt = &res.CompletedAt

	s.metrics.ObserveBatch(string(b.GenerationType), string(res.Status))

	lg.Info("batch_finished",
		slog.String("op", op),
		slog.String("batch_id", b.ID.String()),
		slog.String("status", string(res.Status)),
		slog.Int("articles", res.ArticlesGenerated),
		slog.Int("failures", len(out.failures)),
	)

	return nil
}

// ListBatches возвращает историю пакетов от новых к старым.
//
// Правила нормализации:
// - limit <= 0 -> cfg.Limits.Default;
// - limit > max -> cfg.Limits.Max.
//
// Ошибки:
// - ErrInvalidArgument: неизвестный статус в фильтре.
func (s *Service) ListBatches(ctx context.Context, limit int, status *models.BatchStatus) ([]models.Batch, error) {
	const op = "service.batches.ListBatches"

	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("%s: %w: unknown status %q", op, ErrInvalidArgument, *status)
	}

	if limit <= 0 {
		limit = s.cfg.Limits.Default
	}
	if s.cfg.Limits.Max > 0 && limit > s.cfg.Limits.Max {
		limit = s.cfg.Limits.Max
	}

	list, err := s.storage.ListBatches(ctx, models.BatchFilter{Limit: limit, Status: status})
	if err != nil {
		log.From(ctx).Error("list_batches_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}

// BatchByID возвращает пакет по идентификатору.
func (s *Service) BatchByID(ctx context.Context, id uuid.UUID) (*models.Batch, error) {
	const op = "service.batches.BatchByID"

	b, err := s.storage.BatchByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return b, nil
}

// DeleteBatch удаляет запись истории; статьи пакета остаются.
func (s *Service) DeleteBatch(ctx context.Context, id uuid.UUID) error {
	const op = "service.batches.DeleteBatch"

	if err := s.storage.DeleteBatch(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	log.From(ctx).Info("batch_deleted",
		slog.String("op", op),
		slog.String("batch_id", id.String()),
	)

	return nil
}

// ClearBatches удаляет всю историю пакетов и возвращает число удалённых записей.
func (s *Service) ClearBatches(ctx context.Context) (int64, error) {
	const op = "service.batches.ClearBatches"

	n, err := s.storage.ClearBatches(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("batches_cleared",
		slog.String("op", op),
		slog.Int64("deleted", n),
	)

	return n, nil
}
