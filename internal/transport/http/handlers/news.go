package handlers

import (
	"net/http"
	"time"

	apierrors "github.com/novina/Novina/internal/errors"
	"github.com/novina/Novina/internal/models"
	"github.com/novina/Novina/internal/service"
	"github.com/novina/Novina/internal/transport/http/middleware"
)

// defaultRecentBatches: размер ленты последних пакетов в панели генерации.
const defaultRecentBatches = 10

type generateRequest struct {
	Type               string `json:"type"`
	ProviderID         string `json:"provider_id"`
	TopicID            string `json:"topic_id"`
	CustomInstructions string `json:"custom_instructions"`
}

// GenerateNews: ручной режим: одна новость от выбранного провайдера по теме.
func (h *Handlers) GenerateNews(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	providerID, err := parseID("provider_id", req.ProviderID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	topicID, err := parseID("topic_id", req.TopicID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	in := service.ManualRequest{
		ProviderID:   providerID,
		TopicID:      topicID,
		Instructions: req.CustomInstructions,
		Type:         models.GenerationType(req.Type),
	}
	if uid, ok := middleware.UserID(r.Context()); ok {
		in.UserID = &uid
	}

	res, err := h.Service.GenerateManual(r.Context(), in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	a := res.Article
	writeJSON(w, http.StatusOK, generateResponse{
		Success:     true,
		BatchID:     res.Batch.ID,
		ArticleID:   a.ID,
		ArticleSlug: a.Slug,
		Article: articleDTO{
			ID:          a.ID,
			Title:       a.Title,
			Excerpt:     a.Excerpt,
			Content:     a.Content,
			Slug:        a.Slug,
			PublishedAt: a.PublishedAt,
		},
		Topic:    topicRefDTO{Name: res.Topic.Name, Color: res.Topic.Color},
		Provider: providerRefDTO{Name: res.Provider.DisplayName},
	})
}

// RecentBatches: последние пакеты для панели генерации (по умолчанию 10).
func (h *Handlers) RecentBatches(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, defaultRecentBatches)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	list, err := h.Service.ListBatches(r.Context(), limit, nil)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"batches": toBatchDTOs(list)})
}

// GenerateDailyNews: плановый режим по вызову внешнего cron.
// success=true означает, что прогон отработал; сбои провайдеров видны в истории пакетов.
func (h *Handlers) GenerateDailyNews(w http.ResponseWriter, r *http.Request) {
	res, err := h.Service.RunScheduled(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	ts := time.Now().UTC()
	if res.Batch.CompletedAt != nil {
		ts = *res.Batch.CompletedAt
	}

	writeJSON(w, http.StatusOK, cronResponse{
		Success:           true,
		BatchID:           res.Batch.ID,
		Status:            string(res.Batch.Status),
		ArticlesGenerated: res.Batch.ArticlesGenerated,
		Timestamp:         ts,
	})
}
