// service содержит бизнес-логику генерации новостей: реестр провайдеров,
// каталог тем, учёт пакетов и оркестрацию ручного и планового режимов.
package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/novina/Novina/internal/config"
	"github.com/novina/Novina/internal/metrics"
	"github.com/novina/Novina/internal/models"
	"github.com/novina/Novina/internal/storage"
)

var (
	// ErrNotFound: сущность отсутствует.
	// Транспорт: 404.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument: некорректные входные аргументы.
	// Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAlreadyExists: конфликт уникальности.
	// Транспорт: 409.
	ErrAlreadyExists = errors.New("already exists")
	// ErrConfiguration: генерация невозможна без ключа шлюза; прогон прерывается до создания пакета.
	// Транспорт: 503.
	ErrConfiguration = errors.New("generation is not configured")
	// ErrPersistence: не удалось записать пакет или статью.
	// Транспорт: 500.
	ErrPersistence = errors.New("persistence failure")
)

// Generator: клиент модели, привязанный к одному model_id.
// Реализация: *gateway.Client.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*models.GeneratedContent, error)
}

// GeneratorFactory создаёт Generator для модели.
// Ошибка, оборачивающая gateway.ErrConfiguration, считается фатальной для всего прогона.
type GeneratorFactory func(modelID string) (Generator, error)

// Service: описывает бизнес-логику newsgen.
type Service struct {
	storage    storage.Storage
	cfg        config.Config
	generators GeneratorFactory
	metrics    *metrics.Metrics
	now        func() time.Time
}

// New создает новый экземпляр Service.
// m может быть nil: метрики тогда не пишутся.
func New(storage storage.Storage, cfg config.Config, generators GeneratorFactory, m *metrics.Metrics) *Service {
	return &Service{
		storage:    storage,
		cfg:        cfg,
		generators: generators,
		metrics:    m,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// mapStorageErr переводит sentinel-ошибки хранилища в ошибки сервиса.
func mapStorageErr(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, storage.ErrAlreadyExists):
		return ErrAlreadyExists
	default:
		return err
	}
}

var opPrefix = regexp.MustCompile(`(^|: )[a-z]+(?:\.[A-Za-z]+)+: `)

// Reason возвращает текст ошибки без префиксов операций ("service.x.Y: ").
// Используется в error_message пакета и в details HTTP-ответа.
func Reason(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for {
		next := opPrefix.ReplaceAllString(msg, "${1}")
		if next == msg {
			return msg
		}
		msg = next
	}
}
