package models

import "time"

// IdeaVote marks that a user endorsed a public idea. The unique index on
// (idea_id, user_id) is authoritative: row existence means "has voted".
type IdeaVote struct {
	VoteID    int       `gorm:"primaryKey;column:vote_id" json:"vote_id"`
	IdeaID    int       `gorm:"column:idea_id;uniqueIndex:uq_idea_votes_idea_user" json:"idea_id"`
	UserID    int       `gorm:"column:user_id;uniqueIndex:uq_idea_votes_idea_user" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (IdeaVote) TableName() string {
	return "idea_votes"
}
