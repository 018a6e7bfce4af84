package model

import "time"

// MaxReviewDescriptionLength limits review descriptions.
const MaxReviewDescriptionLength = 1000

// Review is a public site review. Reviews are not owned by a user; they are
// submitted anonymously and moderated by admins. Only approved reviews are
// publicly visible.
type Review struct {
	ID                  int64     `json:"id"`
	ReviewerName        string    `json:"reviewerName"`
	ReviewerDescription string    `json:"reviewerDescription"`
	ReviewerRate        int64     `json:"reviewerRate"`
	IsApproved          bool      `json:"isApproved"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
