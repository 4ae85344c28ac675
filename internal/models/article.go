package models

import (
	"time"

	"github.com/google/uuid"
)

// ArticleTypeShortNews: тип статей, которые пишет генератор.
const ArticleTypeShortNews = "short_news"

// GeneratedContent: проверенный ответ модели.
// Все три поля непустые; длины не проверяются.
type GeneratedContent struct {
	Title   string
	Excerpt string
	Content string
}

// Article: опубликованная статья, созданная генератором.
// После сохранения принадлежит общему хранилищу статей и редактируется как обычная.
type Article struct {
	ID          uuid.UUID
	Title       string
	Slug        string
	Content     string
	Excerpt     string
	ArticleType string
	AuthorID    *uuid.UUID
	CategoryID  *uuid.UUID
	IsPublished bool
	PublishedAt time.Time
	UserID      *uuid.UUID
	BatchID     uuid.UUID
	CreatedAt   time.Time
}

// Author: автор статей; для ИИ-авторов Type совпадает с Provider.Name.
type Author struct {
	ID   uuid.UUID
	Name string
	Type string
}

// Category: рубрика сайта.
type Category struct {
	ID   uuid.UUID
	Name string
	Slug string
}
