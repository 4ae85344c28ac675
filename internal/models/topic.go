package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTopicColor: цвет темы, если админ его не указал.
const DefaultTopicColor = "#3B82F6"

// Topic: тема генерации с шаблоном инструкций для модели.
type Topic struct {
	ID   uuid.UUID
	Name string
	// Slug: производное от Name, ASCII без диакритики. Уникальность не гарантируется.
	Slug        string
	Description *string
	// PromptTemplate: основной набор инструкций, вставляется в промпт как есть.
	PromptTemplate string
	Icon           *string
	Color          string
	SortOrder      int
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TopicUpdate: частичное обновление темы.
type TopicUpdate struct {
	Name           *string
	Description    *string
	PromptTemplate *string
	Icon           *string
	Color          *string
	IsActive       *bool
}

// Empty сообщает, что обновление не содержит ни одного поля.
func (u TopicUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.PromptTemplate == nil &&
		u.Icon == nil && u.Color == nil && u.IsActive == nil
}

// TopicRef: краткая ссылка на тему для истории пакетов.
type TopicRef struct {
	Name  string
	Color string
}
