// seed загружает начальные провайдеры, темы и ИИ-авторов из YAML
// и создаёт в хранилище только недостающие записи.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/novina/Novina/internal/models"
	"github.com/novina/Novina/internal/pkg/log"
	"github.com/novina/Novina/internal/service"
	"github.com/novina/Novina/internal/slug"
)

// File: содержимое seed-файла.
type File struct {
	Providers []Provider `yaml:"providers"`
	Topics    []Topic    `yaml:"topics"`
	Authors   []Author   `yaml:"authors"`
}

type Provider struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	ModelID     string `yaml:"model_id"`
	StylePrompt string `yaml:"style_prompt"`
	Icon        string `yaml:"icon"`
	Color       string `yaml:"color"`
	IsActive    *bool  `yaml:"is_active"`
	IsDefault   bool   `yaml:"is_default"`
}

type Topic struct {
	Name           string  `yaml:"name"`
	Description    *string `yaml:"description"`
	PromptTemplate string  `yaml:"prompt_template"`
	Icon           *string `yaml:"icon"`
	Color          string  `yaml:"color"`
	IsActive       *bool   `yaml:"is_active"`
}

// Author: ИИ-автор; Type совпадает с машинным именем провайдера.
type Author struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Report: сколько записей создано при Apply.
type Report struct {
	Providers int
	Topics    int
	Authors   int
}

// Target: операции сервиса, нужные для применения seed.
type Target interface {
	ListProviders(ctx context.Context) ([]models.Provider, error)
	CreateProvider(ctx context.Context, in service.ProviderInput) (*models.Provider, error)
	ListTopics(ctx context.Context, activeOnly bool) ([]models.Topic, error)
	CreateTopic(ctx context.Context, in service.TopicInput) (*models.Topic, error)
	EnsureAuthor(ctx context.Context, name, typ string) (bool, error)
}

// Load читает seed-файл. Неизвестные ключи считаются ошибкой.
func Load(path string) (*File, error) {
	const op = "seed.Load"

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	f, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, path, err)
	}

	return f, nil
}

// Parse разбирает и проверяет содержимое seed-файла.
func Parse(raw []byte) (*File, error) {
	const op = "seed.Parse"

	var f File

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &f, nil
}

func (f *File) validate() error {
	defaults := 0
	for i, p := range f.Providers {
		if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.DisplayName) == "" || strings.TrimSpace(p.ModelID) == "" {
			return fmt.Errorf("providers[%d]: name, display_name and model_id are required", i)
		}
		if p.IsDefault {
			defaults++
		}
	}
	if defaults > 1 {
		return fmt.Errorf("providers: at most one provider can be default, got %d", defaults)
	}

	for i, t := range f.Topics {
		if strings.TrimSpace(t.Name) == "" || strings.TrimSpace(t.PromptTemplate) == "" {
			return fmt.Errorf("topics[%d]: name and prompt_template are required", i)
		}
	}

	for i, a := range f.Authors {
		if strings.TrimSpace(a.Name) == "" || strings.TrimSpace(a.Type) == "" {
			return fmt.Errorf("authors[%d]: name and type are required", i)
		}
	}

	return nil
}

// Apply создаёт недостающие записи:
//   - провайдеров, которых нет по машинному имени;
//   - темы, которых нет по slug;
//   - авторов, которых нет по типу.
//
// Существующие записи не изменяются, поэтому повторный запуск безопасен.
func Apply(ctx context.Context, t Target, f *File) (Report, error) {
	const op = "seed.Apply"

	var rep Report

	providers, err := t.ListProviders(ctx)
	if err != nil {
		return rep, fmt.Errorf("%s: %w", op, err)
	}
	haveProvider := make(map[string]struct{}, len(providers))
	for _, p := range providers {
		haveProvider[p.Name] = struct{}{}
	}

	for _, p := range f.Providers {
		name := service.NormalizeProviderName(p.Name)
		if _, ok := haveProvider[name]; ok {
			continue
		}

		if _, err := t.CreateProvider(ctx, service.ProviderInput{
			Name:        name,
			DisplayName: p.DisplayName,
			ModelID:     p.ModelID,
			StylePrompt: p.StylePrompt,
			Icon:        p.Icon,
			Color:       p.Color,
			IsActive:    p.IsActive,
			IsDefault:   p.IsDefault,
		}); err != nil {
			return rep, fmt.Errorf("%s: provider %s: %w", op, name, err)
		}
		haveProvider[name] = struct{}{}
		rep.Providers++
	}

	topics, err := t.ListTopics(ctx, false)
	if err != nil {
		return rep, fmt.Errorf("%s: %w", op, err)
	}
	haveTopic := make(map[string]struct{}, len(topics))
	for _, tp := range topics {
		haveTopic[tp.Slug] = struct{}{}
	}

	for _, tp := range f.Topics {
		sl := slug.Make(tp.Name)
		if _, ok := haveTopic[sl]; ok {
			continue
		}

		if _, err := t.CreateTopic(ctx, service.TopicInput{
			Name:           tp.Name,
			Description:    tp.Description,
			PromptTemplate: tp.PromptTemplate,
			Icon:           tp.Icon,
			Color:          tp.Color,
			IsActive:       tp.IsActive,
		}); err != nil {
			return rep, fmt.Errorf("%s: topic %s: %w", op, sl, err)
		}
		haveTopic[sl] = struct{}{}
		rep.Topics++
	}

	for _, a := range f.Authors {
		created, err := t.EnsureAuthor(ctx, a.Name, a.Type)
		if err != nil {
			return rep, fmt.Errorf("%s: author %s: %w", op, a.Type, err)
		}
		if created {
			rep.Authors++
		}
	}

	log.From(ctx).Info("seed_applied",
		slog.String("op", op),
		slog.Int("providers_created", rep.Providers),
		slog.Int("topics_created", rep.Topics),
		slog.Int("authors_created", rep.Authors),
	)

	return rep, nil
}
