package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wash-admin/internal/model"
	"wash-admin/internal/server/service"
)

type BookingHandler struct {
	service *service.BookingService
}

func NewBookingHandler(service *service.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) List(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.List())
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.CreateBookingRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	booking, err := h.service.Create(payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, booking)
}

func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload model.UpdateBookingRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	booking, err := h.service.Update(chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, booking)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Cancel(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"cancelled": true})
}
