package handlers

import (
	"net/http"

	apierrors "github.com/novina/Novina/internal/errors"
	"github.com/novina/Novina/internal/models"
)

// ListBatches: история пакетов с темой и провайдером; ?limit=&status=.
func (h *Handlers) ListBatches(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, 0)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var status *models.BatchStatus
	if v := r.URL.Query().Get("status"); v != "" {
		st := models.BatchStatus(v)
		status = &st
	}

	list, err := h.Service.ListBatches(r.Context(), limit, status)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"batches": toBatchDTOs(list)})
}

// GetBatch: один пакет по id.
func (h *Handlers) GetBatch(w http.ResponseWriter, r *http.Request) {
	id, err := parseID("id", chiParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	b, err := h.Service.BatchByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"batch": toBatchDTO(b)})
}

// DeleteBatches: ?id=<uuid> удаляет один пакет, ?clearAll=true очищает историю.
func (h *Handlers) DeleteBatches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("clearAll") == "true" {
		n, err := h.Service.ClearBatches(r.Context())
		if err != nil {
			apierrors.WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "All batches cleared",
			"deleted": n,
		})
		return
	}

	id, err := parseID("id", q.Get("id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Service.DeleteBatch(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
