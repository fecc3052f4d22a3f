package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wash-admin/internal/model"
	"wash-admin/internal/server/service"
)

type CatalogHandler struct {
	service *service.CatalogService
}

func NewCatalogHandler(service *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) ListServices(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.ListOfferings())
}

func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var payload model.UpsertServiceRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	offering, err := h.service.CreateOffering(payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, offering)
}

func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	var payload model.UpsertServiceRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	offering, err := h.service.UpdateOffering(chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, offering)
}

func (h *CatalogHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteOffering(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"deleted": true})
}

func (h *CatalogHandler) ListMedia(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.ListMedia())
}

func (h *CatalogHandler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMedia(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"deleted": true})
}
