// storage определяет контракты доступа к БД для сервиса генерации новостей.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/novina/Novina/internal/models"
)

var (
	// ErrNotFound: сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists: конфликт уникальности (например, имя провайдера).
	ErrAlreadyExists = errors.New("already exists")
	// ErrBatchFinalized: пакет уже в терминальном статусе, повторное завершение запрещено.
	ErrBatchFinalized = errors.New("batch already finalized")
	// ErrInvalidTransition: пакет не в том статусе, из которого разрешён переход.
	ErrInvalidTransition = errors.New("invalid batch transition")
)

// ProviderStorage описывает операции над models.Provider.
type ProviderStorage interface {
	// ListProviders возвращает провайдеров, упорядоченных по display_name.
	ListProviders(ctx context.Context, activeOnly bool) ([]models.Provider, error)
	// ProviderByID возвращает провайдера или ErrNotFound.
	ProviderByID(ctx context.Context, id uuid.UUID) (*models.Provider, error)
	// DefaultProvider возвращает провайдера по умолчанию или ErrNotFound.
	DefaultProvider(ctx context.Context) (*models.Provider, error)
	// SaveProvider создаёт провайдера; ErrAlreadyExists при повторе имени.
	// Если p.IsDefault, флаг снимается с остальных в той же транзакции.
	SaveProvider(ctx context.Context, p *models.Provider) error
	// UpdateProvider частично обновляет провайдера; ErrNotFound, если его нет.
	UpdateProvider(ctx context.Context, id uuid.UUID, upd models.ProviderUpdate, now time.Time) (*models.Provider, error)
	// SetDefaultProvider снимает флаг по умолчанию со всех и ставит его на id.
	SetDefaultProvider(ctx context.Context, id uuid.UUID, now time.Time) error
	// DeleteProvider удаляет провайдера; ErrNotFound, если его нет.
	DeleteProvider(ctx context.Context, id uuid.UUID) error
}

// TopicStorage описывает операции над models.Topic.
type TopicStorage interface {
	// ListTopics возвращает темы, упорядоченные по sort_order.
	ListTopics(ctx context.Context, activeOnly bool) ([]models.Topic, error)
	TopicByID(ctx context.Context, id uuid.UUID) (*models.Topic, error)
	// SaveTopic создаёт тему в конце списка; итоговый sort_order записывается в t.
	SaveTopic(ctx context.Context, t *models.Topic) error
	UpdateTopic(ctx context.Context, id uuid.UUID, upd models.TopicUpdate, now time.Time) (*models.Topic, error)
	DeleteTopic(ctx context.Context, id uuid.UUID) error
	// ReorderTopics выставляет sort_order = позиция + 1 для переданных id.
	ReorderTopics(ctx context.Context, ids []uuid.UUID, now time.Time) error
}

// BatchStorage описывает жизненный цикл models.Batch.
type BatchStorage interface {
	// SaveBatch создаёт пакет в статусе pending.
	SaveBatch(ctx context.Context, b *models.Batch) error
	// MarkBatchProcessing переводит pending -> processing; иначе ErrInvalidTransition.
	MarkBatchProcessing(ctx context.Context, id uuid.UUID) error
	// FinishBatch переводит пакет в терминальный статус.
	// Если пакет уже завершён: ErrBatchFinalized, если его нет: ErrNotFound.
	FinishBatch(ctx context.Context, id uuid.UUID, res models.BatchResult) error
	BatchByID(ctx context.Context, id uuid.UUID) (*models.Batch, error)
	// ListBatches возвращает историю от новых к старым вместе с краткими ссылками на тему и провайдера.
	ListBatches(ctx context.Context, filter models.BatchFilter) ([]models.Batch, error)
	DeleteBatch(ctx context.Context, id uuid.UUID) error
	// ClearBatches удаляет всю историю и возвращает число удалённых записей.
	ClearBatches(ctx context.Context) (int64, error)
}

// ArticleStorage описывает запись статей и справочники внешнего хранилища статей.
type ArticleStorage interface {
	// SaveArticle сохраняет статью целиком или не сохраняет ничего.
	SaveArticle(ctx context.Context, a *models.Article) error
	// AuthorByType ищет автора по типу (имени провайдера); ErrNotFound, если нет.
	AuthorByType(ctx context.Context, typ string) (*models.Author, error)
	// SaveAuthor создаёт автора; ErrAlreadyExists при повторе типа.
	SaveAuthor(ctx context.Context, a *models.Author) error
	// CategoryBySlug ищет рубрику; ErrNotFound, если нет.
	CategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
}

// Storage задаёт контракт доступа к хранилищу для сервиса.
type Storage interface {
	ProviderStorage
	TopicStorage
	BatchStorage
	ArticleStorage
	Close()
}
