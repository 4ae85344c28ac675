package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/novina/Novina/internal/models"
	"github.com/novina/Novina/internal/pkg/log"
	"github.com/novina/Novina/internal/pkg/redact"
)

// ProviderInput: данные для создания провайдера.
type ProviderInput struct {
	Name          string
	DisplayName   string
	ModelID       string
	StylePrompt   string
	Icon          string
	Color         string
	IsActive      *bool
	IsDefault     bool
	CredentialRef *string
}

// NormalizeProviderName приводит имя к машинному виду: нижний регистр, пробелы -> "-".
func NormalizeProviderName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// ListProviders возвращает всех провайдеров, упорядоченных по display_name.
func (s *Service) ListProviders(ctx context.Context) ([]models.Provider, error) {
	return s.providers(ctx, false)
}

// ActiveProviders возвращает только активных провайдеров.
// Кеша нет: правки админа видны со следующей генерации.
func (s *Service) ActiveProviders(ctx context.Context) ([]models.Provider, error) {
	return s.providers(ctx, true)
}

func (s *Service) providers(ctx context.Context, activeOnly bool) ([]models.Provider, error) {
	const op = "service.registry.providers"

	list, err := s.storage.ListProviders(ctx, activeOnly)
	if err != nil {
		log.From(ctx).Error("list_providers_storage_error",
			slog.String("op", op),
			slog.Bool("active_only", activeOnly),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}

// DefaultProvider возвращает провайдера по умолчанию.
//
// Ошибки:
// - ErrNotFound: провайдер по умолчанию не назначен.
func (s *Service) DefaultProvider(ctx context.Context) (*models.Provider, error) {
	const op = "service.registry.DefaultProvider"

	p, err := s.storage.DefaultProvider(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return p, nil
}

// ProviderByID возвращает провайдера по идентификатору.
func (s *Service) ProviderByID(ctx context.Context, id uuid.UUID) (*models.Provider, error) {
	const op = "service.registry.ProviderByID"

	p, err := s.storage.ProviderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return p, nil
}

// CreateProvider регистрирует провайдера.
//
// Правила:
// - name, display_name и model_id обязательны; name нормализуется;
// - is_active по умолчанию true;
// - is_default=true снимает флаг с остальных провайдеров.
//
// Ошибки:
// - ErrInvalidArgument: не заполнены обязательные поля;
// - ErrAlreadyExists: провайдер с таким именем уже есть.
func (s *Service) CreateProvider(ctx context.Context, in ProviderInput) (*models.Provider, error) {
	const op = "service.registry.CreateProvider"

	lg := log.From(ctx)

	name := NormalizeProviderName(in.Name)
	displayName := strings.TrimSpace(in.DisplayName)
	modelID := strings.TrimSpace(in.ModelID)

	if name == "" || displayName == "" || modelID == "" {
		return nil, fmt.Errorf("%s: %w: name, display_name and model_id are required", op, ErrInvalidArgument)
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	now := s.now()
	p := &models.Provider{
		ID:            uuid.New(),
		Name:          name,
		DisplayName:   displayName,
		ModelID:       modelID,
		StylePrompt:   strings.TrimSpace(in.StylePrompt),
		Icon:          in.Icon,
		Color:         in.Color,
		IsActive:      active,
		IsDefault:     in.IsDefault,
		CredentialRef: nonEmpty(in.CredentialRef),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.storage.SaveProvider(ctx, p); err != nil {
		lg.Warn("create_provider_failed",
			slog.String("op", op),
			slog.String("name", name),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	lg.Info("provider_created",
		slog.String("op", op),
		slog.String("id", p.ID.String()),
		slog.String("name", p.Name),
		slog.String("model", p.ModelID),
		slog.Bool("is_default", p.IsDefault),
		slog.String("credential_ref", redact.Secret(deref(p.CredentialRef))),
	)

	return p, nil
}

// UpdateProvider частично обновляет провайдера.
// is_default=true обрабатывается хранилищем атомарно вместе со снятием флага у остальных.
//
// Ошибки:
// - ErrInvalidArgument: пустое обновление или пустые обязательные поля;
// - ErrNotFound: провайдер отсутствует.
func (s *Service) UpdateProvider(ctx context.Context, id uuid.UUID, upd models.ProviderUpdate) (*models.Provider, error) {
	const op = "service.registry.UpdateProvider"

	if upd.Empty() {
		return nil, fmt.Errorf("%s: %w: nothing to update", op, ErrInvalidArgument)
	}
	if blank(upd.DisplayName) || blank(upd.ModelID) {
		return nil, fmt.Errorf("%s: %w: display_name and model_id cannot be empty", op, ErrInvalidArgument)
	}

	p, err := s.storage.UpdateProvider(ctx, id, upd, s.now())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	log.From(ctx).Info("provider_updated",
		slog.String("op", op),
		slog.String("id", id.String()),
		slog.Bool("is_default", p.IsDefault),
		slog.Bool("is_active", p.IsActive),
	)

	return p, nil
}

// SetDefaultProvider делает провайдера единственным провайдером по умолчанию.
func (s *Service) SetDefaultProvider(ctx context.Context, id uuid.UUID) error {
	const op = "service.registry.SetDefaultProvider"

	if err := s.storage.SetDefaultProvider(ctx, id, s.now()); err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	log.From(ctx).Info("default_provider_set",
		slog.String("op", op),
		slog.String("id", id.String()),
	)

	return nil
}

// DeleteProvider удаляет провайдера. Пакеты истории сохраняются без ссылки на него.
func (s *Service) DeleteProvider(ctx context.Context, id uuid.UUID) error {
	const op = "service.registry.DeleteProvider"

	if err := s.storage.DeleteProvider(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	log.From(ctx).Info("provider_deleted",
		slog.String("op", op),
		slog.String("id", id.String()),
	)

	return nil
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func blank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) == ""
}
