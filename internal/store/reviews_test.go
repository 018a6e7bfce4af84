package store

import (
	"context"
	"testing"

	"github.com/homemate-app/homemate/internal/db"
)

func TestCreateReviewStartsUnapproved(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	review, err := CreateReview(ctx, database, "Alice", "Great for tracking my pantry", 5)
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if review.IsApproved {
		t.Error("new reviews must start unapproved")
	}
	if review.ReviewerRate != 5 {
		t.Errorf("expected rate 5, got %d", review.ReviewerRate)
	}
}

func TestListReviewsApprovedOnly(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	r1, _ := CreateReview(ctx, database, "Alice", "Love it", 5)
	CreateReview(ctx, database, "Bob", "Not bad", 3)
	ApproveReview(ctx, database, r1.ID)

	public, err := ListReviews(ctx, database, true)
	if err != nil {
		t.Fatalf("ListReviews: %v", err)
	}
	if len(public) != 1 {
		t.Fatalf("expected 1 approved review, got %d", len(public))
	}
	if public[0].ReviewerName != "Alice" {
		t.Errorf("expected Alice's review, got %q", public[0].ReviewerName)
	}

	all, err := ListReviews(ctx, database, false)
	if err != nil {
		t.Fatalf("ListReviews: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 reviews, got %d", len(all))
	}
}

func TestApproveReview(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	review, _ := CreateReview(ctx, database, "Alice", "Love it", 5)

	approved, err := ApproveReview(ctx, database, review.ID)
	if err != nil {
		t.Fatalf("ApproveReview: %v", err)
	}
	if approved == nil || !approved.IsApproved {
		t.Error("expected approved review")
	}

	missing, err := ApproveReview(ctx, database, 9999)
	if err != nil {
		t.Fatalf("ApproveReview: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing review")
	}
}

func TestUpdateReviewCanUnapprove(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	review, _ := CreateReview(ctx, database, "Alice", "Love it", 5)
	ApproveReview(ctx, database, review.ID)

	updated, err := UpdateReview(ctx, database, review.ID, "Alice", "Changed my mind", 2, false)
	if err != nil {
		t.Fatalf("UpdateReview: %v", err)
	}
	if updated == nil {
		t.Fatal("expected updated review")
	}
	if updated.IsApproved {
		t.Error("expected review to be unapproved again")
	}
	if updated.ReviewerRate != 2 || updated.ReviewerDescription != "Changed my mind" {
		t.Errorf("update not applied: %+v", updated)
	}
}

func TestDeleteReview(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	review, _ := CreateReview(ctx, database, "Alice", "Love it", 5)

	deleted, err := DeleteReview(ctx, database, review.ID)
	if err != nil {
		t.Fatalf("DeleteReview: %v", err)
	}
	if !deleted {
		t.Fatal("expected deletion")
	}

	deleted, err = DeleteReview(ctx, database, review.ID)
	if err != nil {
		t.Fatalf("second DeleteReview: %v", err)
	}
	if deleted {
		t.Error("expected no deletion the second time")
	}
}

func TestAverageRating(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	// No approved reviews: zeroes, not an error.
	avg, count, err := AverageRating(ctx, database)
	if err != nil {
		t.Fatalf("AverageRating: %v", err)
	}
	if avg != 0 || count != 0 {
		t.Errorf("expected 0/0, got %v/%d", avg, count)
	}

	r1, _ := CreateReview(ctx, database, "Alice", "Love it", 4)
	r2, _ := CreateReview(ctx, database, "Bob", "Great", 5)
	CreateReview(ctx, database, "Carol", "Meh", 1) // unapproved, excluded
	ApproveReview(ctx, database, r1.ID)
	ApproveReview(ctx, database, r2.ID)

	avg, count, err = AverageRating(ctx, database)
	if err != nil {
		t.Fatalf("AverageRating: %v", err)
	}
	if avg != 4.5 {
		t.Errorf("expected average 4.5, got %v", avg)
	}
	if count != 2 {
		t.Errorf("expected 2 approved reviews, got %d", count)
	}
}

func TestAverageRatingRounding(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	for _, rate := range []int64{5, 5, 4} {
		r, _ := CreateReview(ctx, database, "Reviewer", "Description", rate)
		ApproveReview(ctx, database, r.ID)
	}

	// 14/3 = 4.666... rounds to 4.7.
	avg, _, err := AverageRating(ctx, database)
	if err != nil {
		t.Fatalf("AverageRating: %v", err)
	}
	if avg != 4.7 {
		t.Errorf("expected 4.7, got %v", avg)
	}
}
