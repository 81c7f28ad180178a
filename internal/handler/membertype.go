package handler

import (
	"log/slog"
	"net/http"

	"github.com/kmalikov/social-api/internal/apperror"
	"github.com/kmalikov/social-api/internal/model"
	"github.com/kmalikov/social-api/internal/service"
)

// MemberTypeHandler exposes the seeded subscription plans. No create or
// delete routes — the plan set is closed.
type MemberTypeHandler struct {
	memberTypes *service.MemberTypeService
	logger      *slog.Logger
}

// NewMemberTypeHandler creates a new MemberTypeHandler.
func NewMemberTypeHandler(memberTypes *service.MemberTypeService, logger *slog.Logger) *MemberTypeHandler {
	return &MemberTypeHandler{memberTypes: memberTypes, logger: logger}
}

// HandleList returns all member types.
//
// HTTP: GET /api/member-types
func (h *MemberTypeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.memberTypes.List(r.Context()))
}

// HandleGetByID returns a single member type.
//
// HTTP: GET /api/member-types/{id}
func (h *MemberTypeHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	mt, ok := h.memberTypes.GetByID(r.Context(), id)
	if !ok {
		writeError(w, apperror.NotFound("member type", id))
		return
	}
	writeJSON(w, http.StatusOK, mt)
}

// HandleUpdate applies a partial update to a member type.
//
// HTTP: PATCH /api/member-types/{id}
func (h *MemberTypeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch model.MemberTypePatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	mt, err := h.memberTypes.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mt)
}
