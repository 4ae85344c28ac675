package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/novina/Novina/internal/gateway"
	"github.com/novina/Novina/internal/models"
	"github.com/novina/Novina/internal/pkg/log"
)

// generatorFor строит клиента модели провайдера.
// Любая ошибка фабрики считается ошибкой конфигурации и прерывает прогон.
func (s *Service) generatorFor(p models.Provider) (Generator, error) {
	const op = "service.generate.generatorFor"

	if s.generators == nil {
		return nil, fmt.Errorf("%s: %w: no generator factory", op, ErrConfiguration)
	}

	g, err := s.generators(p.ModelID)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w: %w", op, p.Name, ErrConfiguration, err)
	}

	return g, nil
}

// generate выполняет один вызов модели и учитывает его в метриках.
func (s *Service) generate(ctx context.Context, p models.Provider, g Generator, prompt string) (*models.GeneratedContent, error) {
	const op = "service.generate.generate"

	defer s.metrics.Begin()()
	start := time.Now()

	content, err := g.Generate(ctx, prompt)

	took := time.Since(start)
	s.metrics.ObserveGeneration(p.Name, gateway.Kind(err), took)

	if err != nil {
		log.From(ctx).Warn("generation_failed",
			slog.String("op", op),
			slog.String("provider", p.Name),
			slog.String("model", p.ModelID),
			slog.String("kind", gateway.Kind(err)),
			slog.Duration("dur", took),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return content, nil
}
