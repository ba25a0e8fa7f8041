package models

import "time"

// Idea categories (mirrors the CHECK constraint on ideas.category).
const (
	CategoryProcessImprovement = "process_improvement"
	CategoryProductIdea        = "product_idea"
	CategoryCostReduction      = "cost_reduction"
	CategoryCustomerExperience = "customer_experience"
	CategoryOther              = "other"
)

// Idea lifecycle statuses.
const (
	StatusSubmitted   = "submitted"
	StatusUnderReview = "under_review"
	StatusAccepted    = "accepted"
	StatusRejected    = "rejected"
)

// ValidCategories lists every accepted category value.
var ValidCategories = []string{
	CategoryProcessImprovement,
	CategoryProductIdea,
	CategoryCostReduction,
	CategoryCustomerExperience,
	CategoryOther,
}

type Idea struct {
	IdeaID      int       `gorm:"primaryKey;column:idea_id" json:"id"`
	Title       string    `gorm:"column:title" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	Category    string    `gorm:"column:category" json:"category"`
	Status      string    `gorm:"column:status;default:submitted" json:"status"`
	SubmitterID int       `gorm:"column:submitter_id" json:"submitter_id"`
	IsPublic    bool      `gorm:"column:is_public" json:"is_public"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`

	// SubmitterEmail is populated by joined queries, never written.
	SubmitterEmail string `gorm:"column:submitter_email;->" json:"submitter_email,omitempty"`
}

func (Idea) TableName() string {
	return "ideas"
}

// IsValidCategory reports whether c is an accepted category value.
func IsValidCategory(c string) bool {
	for _, v := range ValidCategories {
		if v == c {
			return true
		}
	}
	return false
}
