package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/homemate-app/homemate/internal/store"
)

// ResourceHandler serves the four owner-scoped inventory resources. The
// resources are structurally identical, so list/create/update/delete are
// written once; each resource supplies its collection, display name, and a
// parse function that decodes and validates the request payload.
//
// The owner id is always taken from the session claims: any ownerId in the
// payload is ignored, and lookups scoped to another user's document report
// not-found rather than leaking existence.
type ResourceHandler[T any] struct {
	DB         *sql.DB
	Name       string // display name for messages, e.g. "Appliance"
	Collection *store.Collection[T]
	Parse      func(r *http.Request) (*T, error)
}

// List handles GET /api/{resource}.
func (h *ResourceHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	docs, err := h.Collection.ListByOwner(r.Context(), h.DB, claims.UserID)
	if err != nil {
		slog.Error("failed to list "+strings.ToLower(h.Name)+"s", "error", err)
		jsonError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if docs == nil {
		docs = []T{}
	}
	jsonResponse(w, http.StatusOK, docs)
}

// Create handles POST /api/{resource}.
func (h *ResourceHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	doc, err := h.Parse(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.Collection.Insert(r.Context(), h.DB, claims.UserID, doc)
	if err != nil {
		slog.Error("failed to create "+strings.ToLower(h.Name), "user", claims.Username, "error", err)
		jsonError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	jsonResponse(w, http.StatusCreated, created)
}

// Update handles PUT /api/{resource}/{id}.
func (h *ResourceHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	doc, err := h.Parse(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.Collection.Update(r.Context(), h.DB, id, claims.UserID, doc)
	if err != nil {
		slog.Error("failed to update "+strings.ToLower(h.Name), "user", claims.Username, "id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if updated == nil {
		jsonError(w, http.StatusNotFound, h.Name+" not found")
		return
	}

	jsonResponse(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/{resource}/{id}.
func (h *ResourceHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	deleted, err := h.Collection.Delete(r.Context(), h.DB, id, claims.UserID)
	if err != nil {
		slog.Error("failed to delete "+strings.ToLower(h.Name), "user", claims.Username, "id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !deleted {
		jsonError(w, http.StatusNotFound, h.Name+" not found")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": h.Name + " deleted"})
}
