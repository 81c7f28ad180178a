package handler

import (
	"log/slog"
	"net/http"

	"github.com/kmalikov/social-api/internal/apperror"
	"github.com/kmalikov/social-api/internal/model"
	"github.com/kmalikov/social-api/internal/service"
)

// ProfileHandler manages profile CRUD.
type ProfileHandler struct {
	profiles *service.ProfileService
	logger   *slog.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles *service.ProfileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, logger: logger}
}

// createProfileRequest is the body of POST /api/profiles.
type createProfileRequest struct {
	Avatar       string `json:"avatar"`
	Sex          string `json:"sex"`
	Birthday     int    `json:"birthday"`
	Country      string `json:"country"`
	Street       string `json:"street"`
	City         string `json:"city"`
	UserID       string `json:"userId"`
	MemberTypeID string `json:"memberTypeId"`
}

// HandleList returns all profiles.
//
// HTTP: GET /api/profiles
func (h *ProfileHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.profiles.List(r.Context()))
}

// HandleGetByID returns a single profile.
//
// HTTP: GET /api/profiles/{id}
func (h *ProfileHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	profile, ok := h.profiles.GetByID(r.Context(), id)
	if !ok {
		writeError(w, apperror.NotFound("profile", id))
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// HandleCreate stores a new profile. Fails 400 if the user or member type is
// missing, or if the user already has a profile.
//
// HTTP: POST /api/profiles
func (h *ProfileHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.profiles.Create(r.Context(), model.Profile{
		Avatar:       req.Avatar,
		Sex:          req.Sex,
		Birthday:     req.Birthday,
		Country:      req.Country,
		Street:       req.Street,
		City:         req.City,
		UserID:       req.UserID,
		MemberTypeID: req.MemberTypeID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

// HandleUpdate applies a partial update to a profile.
//
// HTTP: PATCH /api/profiles/{id}
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch model.ProfilePatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	profile, err := h.profiles.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// HandleDelete removes a profile and returns the removed record.
//
// HTTP: DELETE /api/profiles/{id}
func (h *ProfileHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
