package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wash-admin/internal/model"
	"wash-admin/internal/server/service"
)

type ReviewHandler struct {
	service *service.ReviewService
}

func NewReviewHandler(service *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) ListReviews(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.ListReviews())
}

func (h *ReviewHandler) Moderate(w http.ResponseWriter, r *http.Request) {
	var payload model.ModerateReviewRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	review, err := h.service.Moderate(chi.URLParam(r, "id"), payload.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, review)
}

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteReview(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"deleted": true})
}

func (h *ReviewHandler) ListFeedback(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.ListFeedback())
}

func (h *ReviewHandler) ResolveFeedback(w http.ResponseWriter, r *http.Request) {
	var payload model.ResolveFeedbackRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	entry, err := h.service.ResolveFeedback(chi.URLParam(r, "id"), payload.Resolved)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, entry)
}

func (h *ReviewHandler) Summary(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.Summary())
}
