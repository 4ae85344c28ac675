package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/novina/Novina/internal/models"
)

// providerDTO: провайдер для админки. Ссылка на ключ наружу не отдаётся, только факт её наличия.
type providerDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	DisplayName   string    `json:"display_name"`
	ModelID       string    `json:"model_id"`
	StylePrompt   string    `json:"style_prompt"`
	Icon          string    `json:"icon"`
	Color         string    `json:"color"`
	IsActive      bool      `json:"is_active"`
	IsDefault     bool      `json:"is_default"`
	HasCredential bool      `json:"has_credential"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toProviderDTO(p *models.Provider) providerDTO {
	return providerDTO{
		ID:            p.ID,
		Name:          p.Name,
		DisplayName:   p.DisplayName,
		ModelID:       p.ModelID,
		StylePrompt:   p.StylePrompt,
		Icon:          p.Icon,
		Color:         p.Color,
		IsActive:      p.IsActive,
		IsDefault:     p.IsDefault,
		HasCredential: p.CredentialRef != nil && *p.CredentialRef != "",
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

type topicDTO struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    *string   `json:"description"`
	PromptTemplate string    `json:"prompt_template"`
	Icon           *string   `json:"icon"`
	Color          string    `json:"color"`
	SortOrder      int       `json:"sort_order"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toTopicDTO(t *models.Topic) topicDTO {
	return topicDTO{
		ID:             t.ID,
		Name:           t.Name,
		Slug:           t.Slug,
		Description:    t.Description,
		PromptTemplate: t.PromptTemplate,
		Icon:           t.Icon,
		Color:          t.Color,
		SortOrder:      t.SortOrder,
		IsActive:       t.IsActive,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

type topicRefDTO struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type providerRefDTO struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
}

type batchDTO struct {
	ID                uuid.UUID       `json:"id"`
	BatchDate         string          `json:"batch_date"`
	GenerationType    string          `json:"generation_type"`
	Status            string          `json:"status"`
	ArticlesGenerated int             `json:"articles_generated"`
	ErrorMessage      *string         `json:"error_message"`
	CreatedAt         time.Time       `json:"created_at"`
	CompletedAt       *time.Time      `json:"completed_at"`
	UserID            *uuid.UUID      `json:"user_id"`
	TopicID           *uuid.UUID      `json:"topic_id"`
	ProviderID        *uuid.UUID      `json:"provider_id"`
	Topic             *topicRefDTO    `json:"topic,omitempty"`
	Provider          *providerRefDTO `json:"provider,omitempty"`
}

func toBatchDTO(b *models.Batch) batchDTO {
	out := batchDTO{
		ID:                b.ID,
		BatchDate:         b.BatchDate.Format(time.DateOnly),
		GenerationType:    string(b.GenerationType),
		Status:            string(b.Status),
		ArticlesGenerated: b.ArticlesGenerated,
		ErrorMessage:      b.ErrorMessage,
		CreatedAt:         b.CreatedAt,
		CompletedAt:       b.CompletedAt,
		UserID:            b.UserID,
		TopicID:           b.TopicID,
		ProviderID:        b.ProviderID,
	}
	if b.Topic != nil {
		out.Topic = &topicRefDTO{Name: b.Topic.Name, Color: b.Topic.Color}
	}
	if b.Provider != nil {
		out.Provider = &providerRefDTO{Name: b.Provider.Name, DisplayName: b.Provider.DisplayName}
	}
	return out
}

func toBatchDTOs(list []models.Batch) []batchDTO {
	out := make([]batchDTO, 0, len(list))
	for i := range list {
		out = append(out, toBatchDTO(&list[i]))
	}
	return out
}

// articleDTO: статья для предпросмотра после ручной генерации.
type articleDTO struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Slug        string    `json:"slug"`
	PublishedAt time.Time `json:"published_at"`
}

type generateResponse struct {
	Success     bool           `json:"success"`
	BatchID     uuid.UUID      `json:"batchId"`
	ArticleID   uuid.UUID      `json:"articleId"`
	ArticleSlug string         `json:"articleSlug"`
	Article     articleDTO     `json:"article"`
	Topic       topicRefDTO    `json:"topic"`
	Provider    providerRefDTO `json:"provider"`
}

type cronResponse struct {
	Success           bool      `json:"success"`
	BatchID           uuid.UUID `json:"batchId"`
	Status            string    `json:"status"`
	ArticlesGenerated int       `json:"articlesGenerated"`
	Timestamp         time.Time `json:"timestamp"`
}
