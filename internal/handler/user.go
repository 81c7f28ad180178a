// Package handler contains the HTTP layer: request parsing, response
// encoding, and the mapping from domain errors to status codes. Handlers
// never touch the stores directly — everything goes through the services.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/kmalikov/social-api/internal/apperror"
	"github.com/kmalikov/social-api/internal/model"
	"github.com/kmalikov/social-api/internal/service"
)

// UserHandler manages user CRUD, the subscription routes, and the aggregated
// "full" views.
type UserHandler struct {
	users    *service.UserService
	resolver *service.Resolver
	logger   *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService, resolver *service.Resolver, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, resolver: resolver, logger: logger}
}

// createUserRequest is the body of POST /api/users.
type createUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// subscriptionRequest is the body of the subscribeTo/unsubscribeFrom routes.
// UserID names the subscriber; the route's {id} names the target.
type subscriptionRequest struct {
	UserID string `json:"userId"`
}

// HandleList returns all users.
//
// HTTP: GET /api/users
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.users.List(r.Context()))
}

// HandleGetByID returns a single user.
//
// HTTP: GET /api/users/{id}
func (h *UserHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	user, ok := h.users.GetByID(r.Context(), id)
	if !ok {
		writeError(w, apperror.NotFound("user", id))
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// HandleCreate stores a new user.
//
// HTTP: POST /api/users
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.users.Create(r.Context(), req.FirstName, req.LastName, req.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// HandleUpdate applies a partial update to a user.
//
// HTTP: PATCH /api/users/{id}
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch model.UserPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	user, err := h.users.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// HandleDelete removes a user and returns the removed record.
//
// HTTP: DELETE /api/users/{id}
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// HandleSubscribe subscribes the body's user to the route's user.
//
// HTTP: POST /api/users/{id}/subscribeTo
// BODY: {"userId": "<subscriber id>"}
func (h *UserHandler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	var req subscriptionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.users.Subscribe(r.Context(), r.PathValue("id"), req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// HandleUnsubscribe removes the subscription edge added by HandleSubscribe.
//
// HTTP: POST /api/users/{id}/unsubscribeFrom
// BODY: {"userId": "<subscriber id>"}
func (h *UserHandler) HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	var req subscriptionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.users.Unsubscribe(r.Context(), r.PathValue("id"), req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// HandleGetFull returns the aggregated composite view of one user. Lenient
// like all reads: an unknown id yields an empty composite, not a 404.
//
// HTTP: GET /api/users/{id}/full
func (h *UserHandler) HandleGetFull(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.resolver.UserFull(r.Context(), r.PathValue("id")))
}

// HandleListFull returns the aggregated composite view of every user.
//
// HTTP: GET /api/users/full
func (h *UserHandler) HandleListFull(w http.ResponseWriter, r *http.Request) {
	full, err := h.resolver.AllUsersFull(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, full)
}
