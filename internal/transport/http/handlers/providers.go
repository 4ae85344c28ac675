package handlers

import (
	"net/http"

	apierrors "github.com/novina/Novina/internal/errors"
	"github.com/novina/Novina/internal/models"
	"github.com/novina/Novina/internal/service"
)

type createProviderRequest struct {
	Name          string  `json:"name"`
	DisplayName   string  `json:"display_name"`
	ModelID       string  `json:"model_id"`
	StylePrompt   string  `json:"style_prompt"`
	Icon          string  `json:"icon"`
	Color         string  `json:"color"`
	IsActive      *bool   `json:"is_active"`
	IsDefault     bool    `json:"is_default"`
	CredentialRef *string `json:"credential_ref"`
}

type updateProviderRequest struct {
	ID            string  `json:"id"`
	DisplayName   *string `json:"display_name"`
	ModelID       *string `json:"model_id"`
	StylePrompt   *string `json:"style_prompt"`
	Icon          *string `json:"icon"`
	Color         *string `json:"color"`
	IsActive      *bool   `json:"is_active"`
	IsDefault     *bool   `json:"is_default"`
	CredentialRef *string `json:"credential_ref"`
}

func (h *Handlers) ListProviders(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListProviders(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]providerDTO, 0, len(list))
	for i := range list {
		out = append(out, toProviderDTO(&list[i]))
	}

	writeJSON(w, http.StatusOK, map[string]any{"providers": out})
}

func (h *Handlers) GetDefaultProvider(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.DefaultProvider(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"provider": toProviderDTO(p)})
}

func (h *Handlers) CreateProvider(w http.ResponseWriter, r *http.Request) {
	var req createProviderRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	p, err := h.Service.CreateProvider(r.Context(), service.ProviderInput{
		Name:          req.Name,
		DisplayName:   req.DisplayName,
		ModelID:       req.ModelID,
		StylePrompt:   req.StylePrompt,
		Icon:          req.Icon,
		Color:         req.Color,
		IsActive:      req.IsActive,
		IsDefault:     req.IsDefault,
		CredentialRef: req.CredentialRef,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"provider": toProviderDTO(p)})
}

// UpdateProvider: частичное обновление, id в теле; is_default=true снимает флаг с остальных.
func (h *Handlers) UpdateProvider(w http.ResponseWriter, r *http.Request) {
	var req updateProviderRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	id, err := parseID("id", req.ID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	p, err := h.Service.UpdateProvider(r.Context(), id, models.ProviderUpdate{
		DisplayName:   req.DisplayName,
		ModelID:       req.ModelID,
		StylePrompt:   req.StylePrompt,
		Icon:          req.Icon,
		Color:         req.Color,
		IsActive:      req.IsActive,
		IsDefault:     req.IsDefault,
		CredentialRef: req.CredentialRef,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"provider": toProviderDTO(p)})
}

// SetDefaultProvider: POST /admin/ai-providers/{id}/default.
func (h *Handlers) SetDefaultProvider(w http.ResponseWriter, r *http.Request) {
	id, err := parseID("id", chiParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Service.SetDefaultProvider(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *Handlers) DeleteProvider(w http.ResponseWriter, r *http.Request) {
	id, err := parseID("id", r.URL.Query().Get("id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Service.DeleteProvider(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
