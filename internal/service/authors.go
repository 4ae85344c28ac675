package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/novina/Novina/internal/models"
	"github.com/novina/Novina/internal/pkg/log"
	"github.com/novina/Novina/internal/storage"
)

// EnsureAuthor создаёт ИИ-автора с типом typ, если его ещё нет.
// Тип совпадает с машинным именем провайдера: по нему плановый режим подписывает статьи.
// Возвращает true, если автор создан.
func (s *Service) EnsureAuthor(ctx context.Context, name, typ string) (bool, error) {
	const op = "service.authors.EnsureAuthor"

	name = strings.TrimSpace(name)
	typ = NormalizeProviderName(typ)
	if name == "" || typ == "" {
		return false, fmt.Errorf("%s: %w: name and type are required", op, ErrInvalidArgument)
	}

	_, err := s.storage.AuthorByType(ctx, typ)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, storage.ErrNotFound):
		return false, fmt.Errorf("%s: %w", op, err)
	}

	a := &models.Author{ID: uuid.New(), Name: name, Type: typ}
	if err := s.storage.SaveAuthor(ctx, a); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("author_created",
		slog.String("op", op),
		slog.String("type", typ),
	)

	return true, nil
}
