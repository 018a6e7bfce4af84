package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/homemate-app/homemate/internal/model"
	"github.com/homemate-app/homemate/internal/store"
)

// ReviewsHandler handles public review submission and admin moderation.
type ReviewsHandler struct {
	DB        *sql.DB
	JWTSecret string
}

type reviewRequest struct {
	ReviewerName        string `json:"reviewerName"`
	ReviewerDescription string `json:"reviewerDescription"`
	ReviewerRate        *int64 `json:"reviewerRate"`
	IsApproved          bool   `json:"isApproved"`
}

func (req *reviewRequest) validate() string {
	switch {
	case req.ReviewerName == "" || req.ReviewerDescription == "" || req.ReviewerRate == nil:
		return "All fields are required"
	case *req.ReviewerRate < 1 || *req.ReviewerRate > 5:
		return "Rating must be between 1 and 5"
	case len(req.ReviewerDescription) > model.MaxReviewDescriptionLength:
		return "Description must be at most 1000 characters"
	}
	return ""
}

// List handles GET /api/reviews. The public sees approved reviews only;
// showAll=true is honored for admin sessions and silently ignored otherwise.
func (h *ReviewsHandler) List(w http.ResponseWriter, r *http.Request) {
	showAll := false
	if r.URL.Query().Get("showAll") == "true" {
		claims := resolveClaims(r, h.JWTSecret, h.DB)
		showAll = claims != nil && claims.IsAdmin
	}

	reviews, err := store.ListReviews(r.Context(), h.DB, !showAll)
	if err != nil {
		slog.Error("failed to list reviews", "error", err)
		jsonError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	jsonResponse(w, http.StatusOK, reviews)
}

// Get handles GET /api/reviews/{id} (authenticated).
func (h *ReviewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid review id")
		return
	}

	review, err := store.GetReview(r.Context(), h.DB, id)
	if err != nil {
		slog.Error("failed to get review", "error", err)
		jsonError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if review == nil {
		jsonError(w, http.StatusNotFound, "Review not found")
		return
	}

	jsonResponse(w, http.StatusOK, review)
}

// Create handles POST /api/reviews. Public and unauthenticated; reviews
// start unapproved regardless of the payload.
func (h *ReviewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := req.validate(); msg != "" {
		jsonError(w, http.StatusBadRequest, msg)
		return
	}

	review, err := store.CreateReview(r.Context(), h.DB, req.ReviewerName, req.ReviewerDescription, *req.ReviewerRate)
	if err != nil {
		slog.Error("failed to create review", "error", err)
		jsonError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	jsonResponse(w, http.StatusCreated, review)
}

// Update handles PUT /api/reviews/{id} (admin). A full replace including the
// approval flag; this is the only way to un-approve a review.
func (h *ReviewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid review id")
		return
	}

	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := req.validate(); msg != "" {
		jsonError(w, http.StatusBadRequest, msg)
		return
	}

	review, err := store.UpdateReview(r.Context(), h.DB, id, req.ReviewerName, req.ReviewerDescription, *req.ReviewerRate, req.IsApproved)
	if err != nil {
		slog.Error("failed to update review", "error", err)
		jsonError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if review == nil {
		jsonError(w, http.StatusNotFound, "Review not found")
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("review updated", "user", claims.Username, "review", id, "approved", req.IsApproved)
	jsonResponse(w, http.StatusOK, review)
}

// Delete handles DELETE /api/reviews/{id} (admin).
func (h *ReviewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid review id")
		return
	}

	deleted, err := store.DeleteReview(r.Context(), h.DB, id)
	if err != nil {
		slog.Error("failed to delete review", "error", err)
		jsonError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !deleted {
		jsonError(w, http.StatusNotFound, "Review not found")
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("review deleted", "user", claims.Username, "review", id)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "Review deleted successfully"})
}

// Approve handles PATCH /api/reviews/{id}/approve (admin).
func (h *ReviewsHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid review id")
		return
	}

	review, err := store.ApproveReview(r.Context(), h.DB, id)
	if err != nil {
		slog.Error("failed to approve review", "error", err)
		jsonError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if review == nil {
		jsonError(w, http.StatusNotFound, "Review not found")
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("review approved", "user", claims.Username, "review", id)
	jsonResponse(w, http.StatusOK, map[string]any{
		"message": "Review approved successfully",
		"review":  review,
	})
}

// Average handles GET /api/reviews/average (public). Aggregates approved
// reviews only; with none the result is zeroes, not an error.
func (h *ReviewsHandler) Average(w http.ResponseWriter, r *http.Request) {
	average, count, err := store.AverageRating(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to compute average rating", "error", err)
		jsonError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"averageRating": average,
		"totalReviews":  count,
	})
}
