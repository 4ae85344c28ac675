package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/novina/Novina/internal/models"
	"github.com/novina/Novina/internal/pkg/log"
	"github.com/novina/Novina/internal/prompt"
)

// ManualRequest: запрос редактора на одну новость.
type ManualRequest struct {
	ProviderID   uuid.UUID
	TopicID      uuid.UUID
	Instructions string
	// Type: тип пакета; пусто означает manual.
	Type models.GenerationType
	// UserID: редактор, запустивший генерацию.
	UserID *uuid.UUID
}

// ManualResult: результат ручной генерации для предпросмотра в редакторе.
type ManualResult struct {
	Batch    *models.Batch
	Article  *models.Article
	Topic    models.TopicRef
	Provider models.ProviderRef
}

// GenerateManual синхронно генерирует и публикует одну новость по теме.
//
// Порядок: провайдер и тема -> клиент модели -> пакет (pending -> processing) ->
// промпт -> вызов модели -> автор и рубрика -> статья -> пакет completed.
//
// Любой сбой после создания пакета переводит его в failed с текстом ошибки
// и возвращается вызывающему. Статья пишется целиком или не пишется вовсе.
//
// Ошибки:
// - ErrInvalidArgument: не заданы provider_id/topic_id или неизвестный тип;
// - ErrNotFound: провайдер или тема отсутствуют;
// - ErrConfiguration: нет ключа шлюза (пакет не создаётся);
// - ошибки gateway (ErrTimeout, ErrUpstream, ...): модель не дала статью;
// - ErrPersistence: сбой записи пакета или статьи.
func (s *Service) GenerateManual(ctx context.Context, req ManualRequest) (*ManualResult, error) {
	const op = "service.manual.GenerateManual"

	if req.ProviderID == uuid.Nil || req.TopicID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w: provider and topic required", op, ErrInvalidArgument)
	}

	genType := req.Type
	if genType == "" {
		genType = models.GenerationManual
	}
	if genType != models.GenerationManual && genType != models.GenerationScheduled {
		return nil, fmt.Errorf("%s: %w: unknown generation type %q", op, ErrInvalidArgument, genType)
	}

	provider, err := s.storage.ProviderByID(ctx, req.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("%s: provider: %w", op, mapStorageErr(err))
	}

	topic, err := s.storage.TopicByID(ctx, req.TopicID)
	if err != nil {
		return nil, fmt.Errorf("%s: topic: %w", op, mapStorageErr(err))
	}

	ctx = log.With(ctx,
		slog.String("provider", provider.Name),
		slog.String("topic", topic.Slug),
	)
	lg := log.From(ctx)

	gen, err := s.generatorFor(*provider)
	if err != nil {
		lg.Error("manual_generation_not_configured",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	batch := &models.Batch{
		GenerationType: genType,
		UserID:         req.UserID,
		TopicID:        &topic.ID,
		ProviderID:     &provider.ID,
	}
	if err := s.openBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Начатый пакет не отменяется вызывающим: его ограничивает только таймаут шлюза.
	ctx = log.With(context.WithoutCancel(ctx), slog.String("batch_id", batch.ID.String()))

	article, err := s.runManual(ctx, batch, *provider, *topic, gen, req)
	if err != nil {
		_ = s.finishBatch(ctx, batch, batchOutcome{
			failures: []ProviderFailure{{Message: Reason(err)}},
		})

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.finishBatch(ctx, batch, batchOutcome{generated: 1}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("manual_generation_ok",
		slog.String("op", op),
		slog.String("article_id", article.ID.String()),
		slog.String("slug", article.Slug),
	)

	return &ManualResult{
		Batch:    batch,
		Article:  article,
		Topic:    models.TopicRef{Name: topic.Name, Color: topic.Color},
		Provider: models.ProviderRef{Name: provider.Name, DisplayName: provider.DisplayName},
	}, nil
}

// runManual: шаги ручного режима после открытия пакета, строго последовательно.
// Паника генератора возвращается ошибкой, чтобы открытый пакет был закрыт как failed.
func (s *Service) runManual(
	ctx context.Context,
	batch *models.Batch,
	provider models.Provider,
	topic models.Topic,
	gen Generator,
	req ManualRequest,
) (article *models.Article, err error) {
	defer func() {
		if r := recover(); r != nil {
			article, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()

	text := prompt.Build(topic, s.now(), strings.TrimSpace(req.Instructions))

	content, err := s.generate(ctx, provider, gen, text)
	if err != nil {
		return nil, err
	}

	// Автор в ручном режиме необязателен.
	author, err := s.authorFor(ctx, provider.Name)
	if err != nil {
		return nil, err
	}

	category, err := s.defaultCategory(ctx)
	if err != nil {
		return nil, err
	}

	return s.persistArticle(ctx, articleDraft{
		content:  content,
		author:   author,
		category: category,
		batchID:  batch.ID,
		userID:   req.UserID,
	})
}
