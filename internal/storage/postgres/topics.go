package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/novina/Novina/internal/models"
	"github.com/novina/Novina/internal/storage"
)

const topicColumns = `id, name, slug, description, prompt_template, icon, color,
	sort_order, is_active, created_at, updated_at`

func scanTopic(row pgx.Row) (*models.Topic, error) {
	var t models.Topic
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Slug,
		&t.Description,
		&t.PromptTemplate,
		&t.Icon,
		&t.Color,
		&t.SortOrder,
		&t.IsActive,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()

	return &t, nil
}

// ListTopics возвращает темы в порядке sort_order.
func (s *Storage) ListTopics(ctx context.Context, activeOnly bool) ([]models.Topic, error) {
	const op = "storage.postgres.ListTopics"

	query := psql.Select(topicColumns).From("news_topics").OrderBy("sort_order ASC", "created_at ASC")
	if activeOnly {
		query = query.Where("is_active")
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

	var out []models.Topic
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		out = append(out, *t)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return out, nil
}

// TopicByID находит тему по ID.
func (s *Storage) TopicByID(ctx context.Context, id uuid.UUID) (*models.Topic, error) {
	const op = "storage.postgres.TopicByID"

	t, err := scanTopic(s.db.QueryRow(ctx,
		`SELECT `+topicColumns+` FROM news_topics WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return t, nil
}

// SaveTopic добавляет тему в конец списка: sort_order = max + 1.
func (s *Storage) SaveTopic(ctx context.Context, t *models.Topic) error {
	const op = "storage.postgres.SaveTopic"

	err := s.db.QueryRow(ctx, `
	INSERT INTO news_topics (id, name, slug, description, prompt_template, icon, color,
		sort_order, is_active, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7,
		(SELECT COALESCE(MAX(sort_order), 0) + 1 FROM news_topics), $8, $9, $10)
	RETURNING sort_order
	`,
		t.ID,
		t.Name,
		t.Slug,
		t.Description,
		t.PromptTemplate,
		t.Icon,
		t.Color,
		t.IsActive,
		t.CreatedAt,
		t.UpdatedAt,
	).Scan(&t.SortOrder)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}

	return nil
}

// UpdateTopic частично обновляет тему.
// Slug при переименовании не меняется: он фиксируется при создании.
func (s *Storage) UpdateTopic(ctx context.Context, id uuid.UUID, upd models.TopicUpdate, now time.Time) (*models.Topic, error) {
	const op = "storage.postgres.UpdateTopic"

	query := psql.Update("news_topics").Set("updated_at", now).Where("id = ?", id).Suffix("RETURNING " + topicColumns)
	if upd.Name != nil {
		query = query.Set("name", *upd.Name)
	}
	if upd.Description != nil {
		query = query.Set("description", *upd.Description)
	}
	if upd.PromptTemplate != nil {
		query = query.Set("prompt_template", *upd.PromptTemplate)
	}
	if upd.Icon != nil {
		query = query.Set("icon", *upd.Icon)
	}
	if upd.Color != nil {
		query = query.Set("color", *upd.Color)
	}
	if upd.IsActive != nil {
		query = query.Set("is_active", *upd.IsActive)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build: %w", op, err)
	}

	t, err := scanTopic(s.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return t, nil
}

// DeleteTopic удаляет тему. Пакеты сохраняют историю с topic_id = NULL.
func (s *Storage) DeleteTopic(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteTopic"

	tag, err := s.db.Exec(ctx, `DELETE FROM news_topics WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ReorderTopics выставляет sort_order по позиции id в списке (с единицы).
// Выполняется пачкой в одной транзакции; неизвестные id игнорируются.
func (s *Storage) ReorderTopics(ctx context.Context, ids []uuid.UUID, now time.Time) error {
	const op = "storage.postgres.ReorderTopics"

	if len(ids) == 0 {
		return nil
	}

	err := s.withTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for i, id := range ids {
			batch.Queue(
				`UPDATE news_topics SET sort_order = $1, updated_at = $2 WHERE id = $3`,
				i+1, now, id,
			)
		}

		br := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				return fmt.Errorf("batch item %d: %w", i, err)
			}
		}

		return br.Close()
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
