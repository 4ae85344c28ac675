package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/novina/Novina/internal/models"
	"github.com/novina/Novina/internal/pkg/log"
	"github.com/novina/Novina/internal/slug"
	"github.com/novina/Novina/internal/storage"
)

// articleDraft: всё, что нужно для записи одной сгенерированной статьи.
type articleDraft struct {
	content  *models.GeneratedContent
	author   *models.Author
	category *models.Category
	batchID  uuid.UUID
	userID   *uuid.UUID
	// slugQualifiers добавляются в slug перед меткой времени.
	slugQualifiers []string
}

// persistArticle сохраняет статью как уже опубликованную.
// Slug получает метку времени в миллисекундах; уникальность заранее не проверяется.
func (s *Service) persistArticle(ctx context.Context, d articleDraft) (*models.Article, error) {
	const op = "service.persist.persistArticle"

	now := s.now()

	a := &models.Article{
		ID:          uuid.New(),
		Title:       d.content.Title,
		Slug:        slug.Article(d.content.Title, now, d.slugQualifiers...),
		Content:     d.content.Content,
		Excerpt:     d.content.Excerpt,
		ArticleType: models.ArticleTypeShortNews,
		IsPublished: true,
		PublishedAt: now,
		UserID:      d.userID,
		BatchID:     d.batchID,
		CreatedAt:   now,
	}
	if d.author != nil {
		a.AuthorID = &d.author.ID
	}
	if d.category != nil {
		a.CategoryID = &d.category.ID
	}

	if err := s.storage.SaveArticle(ctx, a); err != nil {
		log.From(ctx).Error("article_save_failed",
			slog.String("op", op),
			slog.String("batch_id", d.batchID.String()),
			slog.String("slug", a.Slug),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
	}

	log.From(ctx).Info("article_saved",
		slog.String("op", op),
		slog.String("article_id", a.ID.String()),
		slog.String("slug", a.Slug),
		slog.String("batch_id", d.batchID.String()),
	)

	return a, nil
}

// authorFor ищет автора по имени провайдера. nil без ошибки, если автора нет.
func (s *Service) authorFor(ctx context.Context, providerName string) (*models.Author, error) {
	const op = "service.persist.authorFor"

	a, err := s.storage.AuthorByType(ctx, providerName)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
	}

	return a, nil
}

// defaultCategory возвращает рубрику для сгенерированных вестей.
// nil без ошибки, если рубрика не настроена или отсутствует.
func (s *Service) defaultCategory(ctx context.Context) (*models.Category, error) {
	const op = "service.persist.defaultCategory"

	sl := s.cfg.Generation.CategorySlug
	if sl == "" {
		return nil, nil
	}

	c, err := s.storage.CategoryBySlug(ctx, sl)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.From(ctx).Warn("category_not_found",
				slog.String("op", op),
				slog.String("slug", sl),
			)
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
	}

	return c, nil
}
