package models

import "time"

// Evaluation decisions.
const (
	DecisionAccepted = "accepted"
	DecisionRejected = "rejected"
)

// Evaluation holds an admin's decision on an idea. At most one row per idea;
// re-evaluation overwrites it (upsert, never append).
type Evaluation struct {
	EvaluationID int       `gorm:"primaryKey;column:evaluation_id" json:"evaluation_id"`
	IdeaID       int       `gorm:"column:idea_id;unique" json:"idea_id"`
	AdminID      int       `gorm:"column:admin_id" json:"admin_id"`
	Decision     string    `gorm:"column:decision" json:"decision"`
	Comment      string    `gorm:"column:comment" json:"comment"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`

	AdminEmail string `gorm:"column:admin_email;->" json:"admin_email,omitempty"`
}

func (Evaluation) TableName() string {
	return "evaluations"
}

// IsValidDecision reports whether d is an accepted decision value.
func IsValidDecision(d string) bool {
	return d == DecisionAccepted || d == DecisionRejected
}
