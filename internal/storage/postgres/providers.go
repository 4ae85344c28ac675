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

const providerColumns = `id, name, display_name, model_id, style_prompt, icon, color,
	is_active, is_default, credential_ref, created_at, updated_at`

func scanProvider(row pgx.Row) (*models.Provider, error) {
	var p models.Provider
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.DisplayName,
		&p.ModelID,
		&p.StylePrompt,
		&p.Icon,
		&p.Color,
		&p.IsActive,
		&p.IsDefault,
		&p.CredentialRef,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()

	return &p, nil
}

// ListProviders возвращает провайдеров, упорядоченных по display_name.
func (s *Storage) ListProviders(ctx context.Context, activeOnly bool) ([]models.Provider, error) {
	const op = "storage.postgres.ListProviders"

	query := psql.Select(providerColumns).From("ai_providers").OrderBy("display_name ASC", "id ASC")
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

	var out []models.Provider
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		out = append(out, *p)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return out, nil
}

// ProviderByID находит провайдера по ID.
func (s *Storage) ProviderByID(ctx context.Context, id uuid.UUID) (*models.Provider, error) {
	const op = "storage.postgres.ProviderByID"

	p, err := scanProvider(s.db.QueryRow(ctx,
		`SELECT `+providerColumns+` FROM ai_providers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// DefaultProvider находит провайдера с is_default = true.
func (s *Storage) DefaultProvider(ctx context.Context) (*models.Provider, error) {
	const op = "storage.postgres.DefaultProvider"

	p, err := scanProvider(s.db.QueryRow(ctx,
		`SELECT `+providerColumns+` FROM ai_providers WHERE is_default LIMIT 1`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// SaveProvider создаёт провайдера.
// Флаг по умолчанию снимается с остальных в той же транзакции.
func (s *Storage) SaveProvider(ctx context.Context, p *models.Provider) error {
	const op = "storage.postgres.SaveProvider"

	err := s.withTx(ctx, func(tx pgx.Tx) error {
		if p.IsDefault {
			if _, err := tx.Exec(ctx,
				`UPDATE ai_providers SET is_default = FALSE, updated_at = $1 WHERE is_default`,
				p.UpdatedAt,
			); err != nil {
				return err
			}
		}

		_, err := tx.Exec(ctx, `
		INSERT INTO ai_providers (id, name, display_name, model_id, style_prompt, icon, color,
			is_active, is_default, credential_ref, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`,
			p.ID,
			p.Name,
			p.DisplayName,
			p.ModelID,
			p.StylePrompt,
			p.Icon,
			p.Color,
			p.IsActive,
			p.IsDefault,
			p.CredentialRef,
			p.CreatedAt,
			p.UpdatedAt,
		)

		return err
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}

	return nil
}

// UpdateProvider частично обновляет провайдера.
// IsDefault=true снимает флаг с остальных в той же транзакции.
func (s *Storage) UpdateProvider(ctx context.Context, id uuid.UUID, upd models.ProviderUpdate, now time.Time) (*models.Provider, error) {
	const op = "storage.postgres.UpdateProvider"

	query := psql.Update("ai_providers").Set("updated_at", now).Where("id = ?", id).Suffix("RETURNING " + providerColumns)
	if upd.DisplayName != nil {
		query = query.Set("display_name", *upd.DisplayName)
	}
	if upd.ModelID != nil {
		query = query.Set("model_id", *upd.ModelID)
	}
	if upd.StylePrompt != nil {
		query = query.Set("style_prompt", *upd.StylePrompt)
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
	if upd.IsDefault != nil {
		query = query.Set("is_default", *upd.IsDefault)
	}
	if upd.CredentialRef != nil {
		// Пустая строка означает «убрать ключ».
		if *upd.CredentialRef == "" {
			query = query.Set("credential_ref", nil)
		} else {
			query = query.Set("credential_ref", *upd.CredentialRef)
		}
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build: %w", op, err)
	}

	var out *models.Provider
	err = s.withTx(ctx, func(tx pgx.Tx) error {
		if upd.IsDefault != nil && *upd.IsDefault {
			if _, err := tx.Exec(ctx,
				`UPDATE ai_providers SET is_default = FALSE, updated_at = $1 WHERE is_default AND id <> $2`,
				now, id,
			); err != nil {
				return err
			}
		}

		p, err := scanProvider(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			return err
		}
		out = p

		return nil
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}

	return out, nil
}

// SetDefaultProvider делает id единственным провайдером по умолчанию.
// Сначала снимает флаг со всех остальных, затем ставит на целевого, в одной транзакции.
func (s *Storage) SetDefaultProvider(ctx context.Context, id uuid.UUID, now time.Time) error {
	const op = "storage.postgres.SetDefaultProvider"

	err := s.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`UPDATE ai_providers SET is_default = FALSE, updated_at = $1 WHERE is_default AND id <> $2`,
			now, id,
		); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx,
			`UPDATE ai_providers SET is_default = TRUE, updated_at = $1 WHERE id = $2`,
			now, id,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return storage.ErrNotFound
		}

		return nil
	})
	if err != nil {
		// Параллельная смена умолчания упирается в ai_providers_single_default_idx.
		return fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}

	return nil
}

// DeleteProvider удаляет провайдера.
func (s *Storage) DeleteProvider(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.DeleteProvider"

	tag, err := s.db.Exec(ctx, `DELETE FROM ai_providers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
