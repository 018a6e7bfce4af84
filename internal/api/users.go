package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"github.com/homemate-app/homemate/internal/imaging"
	"github.com/homemate-app/homemate/internal/model"
	"github.com/homemate-app/homemate/internal/store"
)

// maxProfilePictureBytes limits profile picture uploads.
const maxProfilePictureBytes = 10 << 20

// UsersHandler handles user account endpoints.
type UsersHandler struct {
	DB *sql.DB
}

type updateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signout handles POST /api/user/signout. The session token is revoked
// server-side and the cookie cleared.
func (h *UsersHandler) Signout(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	if claims.ID != "" && claims.ExpiresAt != nil {
		if err := store.RevokeToken(r.Context(), h.DB, claims.ID, claims.ExpiresAt.Time); err != nil {
			slog.Error("failed to revoke token", "error", err)
			jsonError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
	}

	clearSessionCookie(w)
	slog.Info("user signed out", "user", claims.Username)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "Signout successful"})
}

// Profile handles GET /api/user/profile.
func (h *UsersHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	user, err := store.GetUser(r.Context(), h.DB, claims.UserID)
	if err != nil {
		slog.Error("failed to get user", "error", err)
		jsonError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if user == nil {
		jsonError(w, http.StatusNotFound, "User not found")
		return
	}

	jsonResponse(w, http.StatusOK, user)
}

// Update handles PUT /api/user/update/{userId}. Callers may only update
// their own record, admins included.
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("userId"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if claims.UserID != id {
		jsonError(w, http.StatusForbidden, "You are not allowed to update this user")
		return
	}

	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username != "" {
		if err := model.ValidateUsername(req.Username); err != nil {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	var passwordHash string
	if req.Password != "" {
		if err := model.ValidatePassword(req.Password); err != nil {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		passwordHash = string(hash)
	}

	err = store.UpdateUser(r.Context(), h.DB, id, req.Username, req.Email, passwordHash)
	if errors.Is(err, store.ErrDuplicateUsername) || errors.Is(err, store.ErrDuplicateEmail) {
		jsonError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to update user", "error", err)
		jsonError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	user, err := store.GetUser(r.Context(), h.DB, id)
	if err != nil || user == nil {
		jsonError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	slog.Info("user updated own record", "user", user.Username)
	jsonResponse(w, http.StatusOK, user)
}

// Delete handles DELETE /api/user/delete/{userId}. Self or admin only. The
// user's inventory documents are deliberately left in place.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("userId"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if !claims.IsAdmin && claims.UserID != id {
		jsonError(w, http.StatusForbidden, "You are not allowed to delete this user")
		return
	}

	deleted, err := store.DeleteUser(r.Context(), h.DB, id)
	if err != nil {
		slog.Error("failed to delete user", "error", err)
		jsonError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !deleted {
		jsonError(w, http.StatusNotFound, "User not found")
		return
	}

	slog.Info("user deleted", "user", claims.Username, "deleted_id", id)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

// List handles GET /api/user (admin). Password hashes never serialize.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := store.ListUsers(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list users", "error", err)
		jsonError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if users == nil {
		users = []model.User{}
	}
	jsonResponse(w, http.StatusOK, users)
}

// UploadProfilePicture handles PUT /api/user/profile/picture. The image is
// re-encoded and downscaled before storage.
func (h *UsersHandler) UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	result, err := imaging.Process(http.MaxBytesReader(w, r.Body, maxProfilePictureBytes))
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.SetUserProfilePicture(r.Context(), h.DB, claims.UserID, result.Data, result.MIME); err != nil {
		slog.Error("failed to store profile picture", "error", err)
		jsonError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	slog.Info("profile picture updated", "user", claims.Username)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "Profile picture updated"})
}

// GetProfilePicture handles GET /api/user/profile/picture.
func (h *UsersHandler) GetProfilePicture(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	data, mime, err := store.GetUserProfilePicture(r.Context(), h.DB, claims.UserID)
	if err != nil {
		slog.Error("failed to get profile picture", "error", err)
		jsonError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if len(data) == 0 {
		jsonError(w, http.StatusNotFound, "No profile picture")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
