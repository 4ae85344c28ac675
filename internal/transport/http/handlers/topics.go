package handlers

import (
	"net/http"

	"github.com/google/uuid"

	apierrors "github.com/novina/Novina/internal/errors"
	"github.com/novina/Novina/internal/models"
	"github.com/novina/Novina/internal/service"
)

type createTopicRequest struct {
	Name           string  `json:"name"`
	Description    *string `json:"description"`
	PromptTemplate string  `json:"prompt_template"`
	Icon           *string `json:"icon"`
	Color          string  `json:"color"`
	IsActive       *bool   `json:"is_active"`
}

type updateTopicRequest struct {
	ID             string  `json:"id"`
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	PromptTemplate *string `json:"prompt_template"`
	Icon           *string `json:"icon"`
	Color          *string `json:"color"`
	IsActive       *bool   `json:"is_active"`
}

type reorderRequest struct {
	OrderedIDs []string `json:"orderedIds"`
}

// ListTopics: темы по sort_order; ?active=true оставляет только активные.
func (h *Handlers) ListTopics(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	list, err := h.Service.ListTopics(r.Context(), activeOnly)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]topicDTO, 0, len(list))
	for i := range list {
		out = append(out, toTopicDTO(&list[i]))
	}

	writeJSON(w, http.StatusOK, map[string]any{"topics": out})
}

func (h *Handlers) CreateTopic(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	t, err := h.Service.CreateTopic(r.Context(), service.TopicInput{
		Name:           req.Name,
		Description:    req.Description,
		PromptTemplate: req.PromptTemplate,
		Icon:           req.Icon,
		Color:          req.Color,
		IsActive:       req.IsActive,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"topic": toTopicDTO(t)})
}

func (h *Handlers) UpdateTopic(w http.ResponseWriter, r *http.Request) {
	var req updateTopicRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	id, err := parseID("id", req.ID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	t, err := h.Service.UpdateTopic(r.Context(), id, models.TopicUpdate{
		Name:           req.Name,
		Description:    req.Description,
		PromptTemplate: req.PromptTemplate,
		Icon:           req.Icon,
		Color:          req.Color,
		IsActive:       req.IsActive,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"topic": toTopicDTO(t)})
}

func (h *Handlers) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	id, err := parseID("id", r.URL.Query().Get("id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Service.DeleteTopic(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// ReorderTopics: {orderedIds: [...]}: sort_order = позиция + 1.
func (h *Handlers) ReorderTopics(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	ids := make([]uuid.UUID, 0, len(req.OrderedIDs))
	for _, raw := range req.OrderedIDs {
		id, err := parseID("orderedIds[]", raw)
		if err != nil {
			apierrors.WriteError(w, r, err)
			return
		}
		ids = append(ids, id)
	}

	if err := h.Service.ReorderTopics(r.Context(), ids); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
