package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/novina/Novina/internal/models"
	"github.com/novina/Novina/internal/storage"
)

// SaveBatch создаёт пакет. Статус берётся из b (ожидается pending).
func (s *Storage) SaveBatch(ctx context.Context, b *models.Batch) error {
	const op = "storage.postgres.SaveBatch"

	_, err := s.db.Exec(ctx, `
	INSERT INTO news_generation_batches (id, batch_date, generation_type, status,
		articles_generated, created_at, user_id, topic_id, provider_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		b.ID,
		b.BatchDate,
		string(b.GenerationType),
		string(b.Status),
		b.ArticlesGenerated,
		b.CreatedAt,
		b.UserID,
		b.TopicID,
		b.ProviderID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}

	return nil
}

// MarkBatchProcessing переводит пакет из pending в processing.
func (s *Storage) MarkBatchProcessing(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.MarkBatchProcessing"

	tag, err := s.db.Exec(ctx, `
	UPDATE news_generation_batches SET status = 'processing'
	WHERE id = $1 AND status = 'pending'
	`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, s.transitionMiss(ctx, id, storage.ErrInvalidTransition))
	}

	return nil
}

// FinishBatch выполняет терминальный переход.
// Условие по статусу гарантирует, что completed_at ставится ровно один раз.
func (s *Storage) FinishBatch(ctx context.Context, id uuid.UUID, res models.BatchResult) error {
	const op = "storage.postgres.FinishBatch"

	if !res.Status.Terminal() {
		return fmt.Errorf("%s: status %q is not terminal: %w", op, res.Status, storage.ErrInvalidTransition)
	}

	tag, err := s.db.Exec(ctx, `
	UPDATE news_generation_batches
	SET status = $2, articles_generated = $3, error_message = $4, completed_at = $5
	WHERE id = $1 AND status IN ('pending', 'processing')
	`,
		id,
		string(res.Status),
		res.ArticlesGenerated,
		res.ErrorMessage,
		res.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, s.transitionMiss(ctx, id, storage.ErrBatchFinalized))
	}

	return nil
}

// transitionMiss уточняет причину неудачного перехода: пакета нет или он не в том статусе.
func (s *Storage) transitionMiss(ctx context.Context, id uuid.UUID, stateErr error) error {
	var status string
	err := s.db.QueryRow(ctx, `SELECT status FROM news_generation_batches WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return storage.ErrNotFound
		}

		return err
	}

	if models.BatchStatus(status).Terminal() {
		return storage.ErrBatchFinalized
	}

	return stateErr
}

const batchSelect = `b.id, b.batch_date, b.generation_type, b.status, b.articles_generated,
	b.error_message, b.created_at, b.completed_at, b.user_id, b.topic_id, b.provider_id,
	t.name, t.color, p.name, p.display_name`

func scanBatch(row pgx.Row) (*models.Batch, error) {
	var (
		b                     models.Batch
		genType, status       string
		topicName, topicColor *string
		provName, provDisplay *string
	)

	err := row.Scan(
		&b.ID,
		&b.BatchDate,
		&genType,
		&status,
		&b.ArticlesGenerated,
		&b.ErrorMessage,
		&b.CreatedAt,
		&b.CompletedAt,
		&b.UserID,
		&b.TopicID,
		&b.ProviderID,
		&topicName,
		&topicColor,
		&provName,
		&provDisplay,
	)
	if err != nil {
		return nil, err
	}

	b.GenerationType = models.GenerationType(genType)
	b.Status = models.BatchStatus(status)
	b.CreatedAt = b.CreatedAt.UTC()
	if b.CompletedAt != nil {
		c := b.CompletedAt.UTC()
		b.CompletedAt = &c
	}

	if topicName != nil {
		b.Topic = &models.TopicRef{Name: *topicName}
		if topicColor != nil {
			b.Topic.Color = *topicColor
		}
	}
	if provName != nil {
		b.Provider = &models.ProviderRef{Name: *provName}
		if provDisplay != nil {
			b.Provider.DisplayName = *provDisplay
		}
	}

	return &b, nil
}

func batchQuery() string {
	return `SELECT ` + batchSelect + `
	FROM news_generation_batches b
	LEFT JOIN news_topics t ON t.id = b.topic_id
	LEFT JOIN ai_providers p ON p.id = b.provider_id`
}

// BatchByID возвращает пакет вместе с краткими ссылками на тему и провайдера.
func (s *Storage) BatchByID(ctx context.Context, id uuid.UUID) (*models.Batch, error) {
	const op = "storage.postgres.BatchByID"

	b, err := scanBatch(s.db.QueryRow(ctx, batchQuery()+` WHERE b.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

// ListBatches возвращает историю от новых к старым.
// Лимит <= 0 трактуется как 1, как и в остальных списках хранилища.
func (s *Storage) ListBatches(ctx context.Context, filter models.BatchFilter) ([]models.Batch, error) {
	const op = "storage.postgres.ListBatches"

	limit := filter.Limit
	if limit <= 0 {
		limit = 1
	}

	query := psql.Select(batchSelect).
		From("news_generation_batches b").
		LeftJoin("news_topics t ON t.id = b.topic_id").
		LeftJoin("ai_providers p ON p.id = b.provider_id").
		OrderBy("b.created_at DESC", "b.id DESC").
		Limit(uint64(limit))
	if filter.Status != nil {
		query = query.Where("b.status = ?", string(*filter.Status))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build: %w", op, err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []models.Batch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		out = append(out, *b)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return out, nil
}

// DeleteBatch удаляет пакет. Статьи остаются с batch_id = NULL.
func (s *Storage) DeleteBatch(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteBatch"

	tag, err := s.db.Exec(ctx, `DELETE FROM news_generation_batches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ClearBatches очищает всю историю пакетов.
func (s *Storage) ClearBatches(ctx context.Context) (int64, error) {
	const op = "storage.postgres.ClearBatches"

	tag, err := s.db.Exec(ctx, `DELETE FROM news_generation_batches`)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected(), nil
}
