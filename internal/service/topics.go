package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/novina/Novina/internal/models"
	"github.com/novina/Novina/internal/pkg/log"
	"github.com/novina/Novina/internal/slug"
)

// TopicInput: данные для создания темы.
type TopicInput struct {
	Name           string
	Description    *string
	PromptTemplate string
	Icon           *string
	Color          string
	IsActive       *bool
}

// ListTopics возвращает темы в порядке sort_order.
func (s *Service) ListTopics(ctx context.Context, activeOnly bool) ([]models.Topic, error) {
	const op = "service.topics.ListTopics"

	list, err := s.storage.ListTopics(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}

// TopicByID возвращает тему по идентификатору.
func (s *Service) TopicByID(ctx context.Context, id uuid.UUID) (*models.Topic, error) {
	const op = "service.topics.TopicByID"

	t, err := s.storage.TopicByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return t, nil
}

// CreateTopic добавляет тему в конец списка.
//
// Правила:
// - name и prompt_template обязательны;
// - slug выводится из name (ASCII без диакритики), уникальность не проверяется;
// - цвет по умолчанию models.DefaultTopicColor, тема активна, если не сказано иное.
func (s *Service) CreateTopic(ctx context.Context, in TopicInput) (*models.Topic, error) {
	const op = "service.topics.CreateTopic"

	name := strings.TrimSpace(in.Name)
	tmpl := strings.TrimSpace(in.PromptTemplate)
	if name == "" || tmpl == "" {
		return nil, fmt.Errorf("%s: %w: name and prompt_template are required", op, ErrInvalidArgument)
	}

	sl := slug.Make(name)
	if sl == "" {
		return nil, fmt.Errorf("%s: %w: name %q yields an empty slug", op, ErrInvalidArgument, name)
	}

	color := strings.TrimSpace(in.Color)
	if color == "" {
		color = models.DefaultTopicColor
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	now := s.now()
	t := &models.Topic{
		ID:             uuid.New(),
		Name:           name,
		Slug:           sl,
		Description:    nonEmpty(in.Description),
		PromptTemplate: tmpl,
		Icon:           nonEmpty(in.Icon),
		Color:          color,
		IsActive:       active,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.storage.SaveTopic(ctx, t); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	log.From(ctx).Info("topic_created",
		slog.String("op", op),
		slog.String("id", t.ID.String()),
		slog.String("slug", t.Slug),
		slog.Int("sort_order", t.SortOrder),
	)

	return t, nil
}

// UpdateTopic частично обновляет тему. Slug при переименовании не меняется.
func (s *Service) UpdateTopic(ctx context.Context, id uuid.UUID, upd models.TopicUpdate) (*models.Topic, error) {
	const op = "service.topics.UpdateTopic"

	if upd.Empty() {
		return nil, fmt.Errorf("%s: %w: nothing to update", op, ErrInvalidArgument)
	}
	if blank(upd.Name) || blank(upd.PromptTemplate) {
		return nil, fmt.Errorf("%s: %w: name and prompt_template cannot be empty", op, ErrInvalidArgument)
	}

	t, err := s.storage.UpdateTopic(ctx, id, upd, s.now())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return t, nil
}

// DeleteTopic удаляет тему.
func (s *Service) DeleteTopic(ctx context.Context, id uuid.UUID) error {
	const op = "service.topics.DeleteTopic"

	if err := s.storage.DeleteTopic(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return nil
}

// ReorderTopics задаёт порядок тем: sort_order = позиция в ids + 1.
//
// Ошибки:
// - ErrInvalidArgument: пустой список, нулевой или повторяющийся id.
func (s *Service) ReorderTopics(ctx context.Context, ids []uuid.UUID) error {
	const op = "service.topics.ReorderTopics"

	if len(ids) == 0 {
		return fmt.Errorf("%s: %w: orderedIds must not be empty", op, ErrInvalidArgument)
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return fmt.Errorf("%s: %w: nil topic id", op, ErrInvalidArgument)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%s: %w: duplicate topic id %s", op, ErrInvalidArgument, id)
		}
		seen[id] = struct{}{}
	}

	if err := s.storage.ReorderTopics(ctx, ids, s.now()); err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	log.From(ctx).Info("topics_reordered",
		slog.String("op", op),
		slog.Int("count", len(ids)),
	)

	return nil
}
