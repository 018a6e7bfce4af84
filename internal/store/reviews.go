package store

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"github.com/homemate-app/homemate/internal/model"
)

// CreateReview inserts a new review. Reviews always start unapproved.
func CreateReview(ctx context.Context, db *sql.DB, name, description string, rate int64) (*model.Review, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO reviews (reviewer_name, reviewer_description, reviewer_rate) VALUES (?, ?, ?)`,
		name, description, rate,
	)
	if err != nil {
		return nil, fmt.Errorf("creating review: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting review id: %w", err)
	}

	return GetReview(ctx, db, id)
}

// GetReview returns a review by ID, or nil if absent.
func GetReview(ctx context.Context, db *sql.DB, id int64) (*model.Review, error) {
	r := &model.Review{}
	err := db.QueryRowContext(ctx,
		`SELECT id, reviewer_name, reviewer_description, reviewer_rate, is_approved, created_at, updated_at
		 FROM reviews WHERE id = ?`, id,
	).Scan(&r.ID, &r.ReviewerName, &r.ReviewerDescription, &r.ReviewerRate, &r.IsApproved, &r.CreatedAt, &r.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting review: %w", err)
	}
	return r, nil
}

// ListReviews returns reviews newest first. With approvedOnly set, unapproved
// reviews are excluded (the public view).
func ListReviews(ctx context.Context, db *sql.DB, approvedOnly bool) ([]model.Review, error) {
	query := `SELECT id, reviewer_name, reviewer_description, reviewer_rate, is_approved, created_at, updated_at
	          FROM reviews ORDER BY created_at DESC, id DESC`
	if approvedOnly {
		query = `SELECT id, reviewer_name, reviewer_description, reviewer_rate, is_approved, created_at, updated_at
		         FROM reviews WHERE is_approved = 1 ORDER BY created_at DESC, id DESC`
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing reviews: %w", err)
	}
	defer rows.Close()

	var reviews []model.Review
	for rows.Next() {
		var r model.Review
		if err := rows.Scan(&r.ID, &r.ReviewerName, &r.ReviewerDescription, &r.ReviewerRate, &r.IsApproved, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning review: %w", err)
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

// UpdateReview replaces a review's fields, including its approval flag.
// Returns the updated review, or nil if no review matched.
func UpdateReview(ctx context.Context, db *sql.DB, id int64, name, description string, rate int64, approved bool) (*model.Review, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE reviews SET reviewer_name = ?, reviewer_description = ?, reviewer_rate = ?,
		        is_approved = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		name, description, rate, approved, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating review: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking review update: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}

	return GetReview(ctx, db, id)
}

// ApproveReview marks a review as approved. Returns the review, or nil if
// absent.
func ApproveReview(ctx context.Context, db *sql.DB, id int64) (*model.Review, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE reviews SET is_approved = 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("approving review: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking review approval: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}

	return GetReview(ctx, db, id)
}

// DeleteReview removes a review. It reports whether a review was deleted.
func DeleteReview(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting review: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking review delete: %w", err)
	}
	return affected > 0, nil
}

// AverageRating returns the mean rating over approved reviews, rounded to one
// decimal, and the approved review count. With no approved reviews both are
// zero.
func AverageRating(ctx context.Context, db *sql.DB) (float64, int64, error) {
	var avg sql.NullFloat64
	var count int64
	err := db.QueryRowContext(ctx,
		`SELECT AVG(reviewer_rate), COUNT(*) FROM reviews WHERE is_approved = 1`,
	).Scan(&avg, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("computing average rating: %w", err)
	}
	if !avg.Valid {
		return 0, 0, nil
	}
	return math.Round(avg.Float64*10) / 10, count, nil
}
