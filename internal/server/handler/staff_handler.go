package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wash-admin/internal/model"
	"wash-admin/internal/server/middleware"
	"wash-admin/internal/server/service"
	"wash-admin/pkg/apierror"
)

type StaffHandler struct {
	service *service.AuthService
}

func NewStaffHandler(service *service.AuthService) *StaffHandler {
	return &StaffHandler{service: service}
}

func (h *StaffHandler) List(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, h.service.ListUsers())
}

func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	var payload model.CreateStaffRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	user, err := h.service.CreateStaff(claims.Role, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, user)
}

func (h *StaffHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	var payload model.SetRoleRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	user, err := h.service.SetRole(claims.Role, chi.URLParam(r, "id"), payload.Role)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, user)
}

func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	if err := h.service.DeleteUser(claims.UserID, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"deleted": true})
}
