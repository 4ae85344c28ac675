package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/novina/Novina/internal/models"
	"github.com/novina/Novina/internal/pkg/log"
	"github.com/novina/Novina/internal/prompt"
)

// ErrAuthorNotFound: в плановом режиме у провайдера нет автора.
var ErrAuthorNotFound = errors.New("author not found")

// ScheduledResult: итог планового прогона.
type ScheduledResult struct {
	Batch    *models.Batch
	Failures []ProviderFailure
	// Articles: успешно созданные статьи в порядке провайдеров.
	Articles []*models.Article
}

// providerOutcome: исход генерации одного провайдера.
type providerOutcome struct {
	article *models.Article
	err     error
}

// RunScheduled генерирует по одной новости от каждого активного провайдера параллельно.
//
// Особенности:
//   - клиенты моделей строятся до создания пакета: без ключа шлюза пакет не создаётся;
//   - сбой одного провайдера не прерывает и не задерживает остальных;
//   - статус пакета вычисляется только после завершения всех генераций:
//     completed при хотя бы одной статье, иначе failed;
//   - error_message: "<провайдер>: <ошибка>" через "; ";
//   - пакет не отменяется вызывающим, каждую генерацию ограничивает таймаут шлюза.
//
// Ошибки:
// - ErrConfiguration: нет ключа шлюза;
// - ErrPersistence: не удалось создать или завершить пакет.
func (s *Service) RunScheduled(ctx context.Context) (*ScheduledResult, error) {
	const op = "service.scheduled.RunScheduled"

	lg := log.From(ctx)

	providers, err := s.ActiveProviders(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	gens := make([]Generator, len(providers))
	for i, p := range providers {
		g, err := s.generatorFor(p)
		if err != nil {
			lg.Error("scheduled_generation_not_configured",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)

			return nil, fmt.Errorf("%s: %w", op, err)
		}
		gens[i] = g
	}

	batch := &models.Batch{GenerationType: models.GenerationScheduled}
	if err := s.openBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	runCtx := log.With(context.WithoutCancel(ctx), slog.String("batch_id", batch.ID.String()))

	if len(providers) == 0 {
		out := batchOutcome{failures: []ProviderFailure{{Message: "no active providers"}}}
		if err := s.finishBatch(runCtx, batch, out); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return &ScheduledResult{Batch: batch, Failures: out.failures}, nil
	}

	category, err := s.defaultCategory(runCtx)
	if err != nil {
		out := batchOutcome{failures: []ProviderFailure{{Message: Reason(err)}}}
		_ = s.finishBatch(runCtx, batch, out)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("scheduled_run_start",
		slog.String("op", op),
		slog.String("batch_id", batch.ID.String()),
		slog.Int("providers", len(providers)),
		slog.Int("max_parallel", s.cfg.Generation.MaxParallel),
	)

	outcomes := s.fanOut(runCtx, batch.ID, providers, gens, category)

	res := &ScheduledResult{Batch: batch}
	var out batchOutcome
	for i, o := range outcomes {
		if o.err != nil {
			f := ProviderFailure{Provider: providers[i].Name, Message: Reason(o.err)}
			out.failures = append(out.failures, f)
			continue
		}
		out.generated++
		res.Articles = append(res.Articles, o.article)
	}
	res.Failures = out.failures

	if err := s.finishBatch(runCtx, batch, out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("scheduled_run_done",
		slog.String("op", op),
		slog.String("batch_id", batch.ID.String()),
		slog.String("status", string(batch.Status)),
		slog.Int("articles", out.generated),
		slog.Int("failures", len(out.failures)),
	)

	return res, nil
}

// fanOut запускает генерацию по каждому провайдеру и ждёт все исходы.
// Результаты пишутся в ячейки по индексу провайдера, общих изменяемых данных нет.
func (s *Service) fanOut(
	ctx context.Context,
	batchID uuid.UUID,
	providers []models.Provider,
	gens []Generator,
	category *models.Category,
) []providerOutcome {
	outcomes := make([]providerOutcome, len(providers))

	var sem chan struct{}
	if n := s.cfg.Generation.MaxParallel; n > 0 {
		sem = make(chan struct{}, n)
	}

	var wg sync.WaitGroup
	for i := range providers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}

			defer func() {
				if r := recover(); r != nil {
					outcomes[i] = providerOutcome{err: fmt.Errorf("panic: %v", r)}
				}
			}()

			pctx := log.With(ctx, slog.String("provider", providers[i].Name))
			a, err := s.generateForProvider(pctx, batchID, providers[i], gens[i], category)
			outcomes[i] = providerOutcome{article: a, err: err}
		}(i)
	}
	wg.Wait()

	return outcomes
}

// generateForProvider: одна генерация планового режима: промпт в стиле провайдера,
// вызов модели, обязательный автор, статья со slug "<основа>-<провайдер>-<мс>".
func (s *Service) generateForProvider(
	ctx context.Context,
	batchID uuid.UUID,
	p models.Provider,
	g Generator,
	category *models.Category,
) (*models.Article, error) {
	const op = "service.scheduled.generateForProvider"

	start := time.Now()

	content, err := s.generate(ctx, p, g, prompt.BuildScheduled(p.StylePrompt))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	author, err := s.authorFor(ctx, p.Name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if author == nil {
		return nil, fmt.Errorf("%s: %w for %s", op, ErrAuthorNotFound, p.Name)
	}

	a, err := s.persistArticle(ctx, articleDraft{
		content:        content,
		author:         author,
		category:       category,
		batchID:        batchID,
		slugQualifiers: []string{p.Name},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("scheduled_generation_ok",
		slog.String("op", op),
		slog.String("article_id", a.ID.String()),
		slog.Duration("dur", time.Since(start)),
	)

	return a, nil
}
