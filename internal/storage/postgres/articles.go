package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/novina/Novina/internal/models"
	"github.com/novina/Novina/internal/storage"
)

// SaveArticle сохраняет сгенерированную статью одной вставкой.
func (s *Storage) SaveArticle(ctx context.Context, a *models.Article) error {
	const op = "storage.postgres.SaveArticle"

	_, err := s.db.Exec(ctx, `
	INSERT INTO articles (id, title, slug, content, excerpt, article_type, author_id,
		category_id, is_published, published_at, user_id, batch_id, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`,
		a.ID,
		a.Title,
		a.Slug,
		a.Content,
		a.Excerpt,
		a.ArticleType,
		a.AuthorID,
		a.CategoryID,
		a.IsPublished,
		a.PublishedAt,
		a.UserID,
		a.BatchID,
		a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}

	return nil
}

// AuthorByType находит автора по типу.
func (s *Storage) AuthorByType(ctx context.Context, typ string) (*models.Author, error) {
	const op = "storage.postgres.AuthorByType"

	var a models.Author
	err := s.db.QueryRow(ctx, `
	SELECT id, name, type
	FROM authors
	WHERE type = $1
	`, typ).Scan(&a.ID, &a.Name, &a.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &a, nil
}

// SaveAuthor создаёт автора.
func (s *Storage) SaveAuthor(ctx context.Context, a *models.Author) error {
	const op = "storage.postgres.SaveAuthor"

	_, err := s.db.Exec(ctx, `INSERT INTO authors (id, name, type) VALUES ($1, $2, $3)`,
		a.ID, a.Name, a.Type)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}

	return nil
}

// CategoryBySlug находит рубрику по slug.
func (s *Storage) CategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	const op = "storage.postgres.CategoryBySlug"

	var c models.Category
	err := s.db.QueryRow(ctx, `
	SELECT id, name, slug
	FROM categories
	WHERE slug = $1
	`, slug).Scan(&c.ID, &c.Name, &c.Slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &c, nil
}
