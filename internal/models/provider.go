// models содержит доменные сущности сервиса генерации новостей.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Provider: конфигурация языковой модели, от имени которой пишется новость.
//
// Особенности:
//   - Name: машинное имя (нижний регистр, пробелы заменены на "-"),
//     по нему же ищется автор статьи;
//   - одновременно только один провайдер может иметь IsDefault;
//   - CredentialRef наружу не отдаётся.
type Provider struct {
	// ID: уникальный идентификатор провайдера.
	ID uuid.UUID
	// Name: машинное имя провайдера.
	Name string
	// DisplayName: имя для отображения в админке.
	DisplayName string
	// ModelID: идентификатор модели на шлюзе (например, anthropic/claude-3.5-sonnet).
	ModelID string
	// StylePrompt: строка фирменного стиля для плановой генерации.
	StylePrompt string
	Icon        string
	Color       string
	IsActive    bool
	IsDefault   bool
	// CredentialRef: ссылка на отдельный ключ провайдера, если задан.
	CredentialRef *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProviderUpdate: частичное обновление провайдера.
// nil-поле означает «не менять».
type ProviderUpdate struct {
	DisplayName   *string
	ModelID       *string
	StylePrompt   *string
	Icon          *string
	Color         *string
	IsActive      *bool
	IsDefault     *bool
	CredentialRef *string
}

// Empty сообщает, что обновление не содержит ни одного поля.
func (u ProviderUpdate) Empty() bool {
	return u.DisplayName == nil && u.ModelID == nil && u.StylePrompt == nil &&
		u.Icon == nil && u.Color == nil && u.IsActive == nil &&
		u.IsDefault == nil && u.CredentialRef == nil
}

// ProviderRef: краткая ссылка на провайдера для истории пакетов.
type ProviderRef struct {
	Name        string
	DisplayName string
}
