package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"idea-management-api/models"
)

// VoteService maintains the vote ledger for public ideas. The unique index on
// (idea_id, user_id) is the sole source of truth for "has voted"; toggling
// never relies on a read-then-write check.
type VoteService struct {
	db *gorm.DB
}

func NewVoteService(db *gorm.DB) *VoteService {
	return &VoteService{db: db}
}

// VoteInfo is the ledger state for one idea as seen by one user.
type VoteInfo struct {
	VoteCount int64 `json:"voteCount"`
	HasVoted  bool  `json:"hasVoted"`
}

// IdeaWithVotes is a listing row enriched with ledger data.
type IdeaWithVotes struct {
	models.Idea
	VoteCount int64 `json:"voteCount"`
	HasVoted  bool  `json:"hasVoted"`
}

// Toggle flips the user's vote on a public idea and returns the new state.
// A delete that removes nothing means the vote was absent, so one is inserted;
// concurrent duplicate inserts collapse on the unique index.
func (s *VoteService) Toggle(ideaID, userID int) (*VoteInfo, error) {
	var idea models.Idea
	if err := s.db.Where("idea_id = ?", ideaID).First(&idea).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("Idea not found.")
		}
		return nil, err
	}
	if !idea.IsPublic {
		return nil, ErrForbidden("You can only vote on public ideas.")
	}

	res := s.db.Where("idea_id = ? AND user_id = ?", ideaID, userID).Delete(&models.IdeaVote{})
	if res.Error != nil {
		return nil, res.Error
	}

	hasVoted := false
	if res.RowsAffected == 0 {
		vote := models.IdeaVote{IdeaID: ideaID, UserID: userID}
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&vote).Error; err != nil {
			return nil, err
		}
		hasVoted = true
	}

	count, err := s.countForIdea(ideaID)
	if err != nil {
		return nil, err
	}
	return &VoteInfo{VoteCount: count, HasVoted: hasVoted}, nil
}

// Info returns the current ledger state without modifying it.
func (s *VoteService) Info(ideaID, userID int) (*VoteInfo, error) {
	count, err := s.countForIdea(ideaID)
	if err != nil {
		return nil, err
	}

	var voted int64
	if err := s.db.Model(&models.IdeaVote{}).
		Where("idea_id = ? AND user_id = ?", ideaID, userID).
		Count(&voted).Error; err != nil {
		return nil, err
	}

	return &VoteInfo{VoteCount: count, HasVoted: voted > 0}, nil
}

// Enrich decorates a batch of ideas with vote counts and the user's voted set
// using exactly two aggregate queries, however many ideas are passed in.
func (s *VoteService) Enrich(ideas []models.Idea, userID int) ([]IdeaWithVotes, error) {
	enriched := make([]IdeaWithVotes, 0, len(ideas))
	if len(ideas) == 0 {
		return enriched, nil
	}

	ids := make([]int, 0, len(ideas))
	for _, idea := range ideas {
		ids = append(ids, idea.IdeaID)
	}

	type countRow struct {
		IdeaID int   `gorm:"column:idea_id"`
		Count  int64 `gorm:"column:count"`
	}
	var countRows []countRow
	if err := s.db.Model(&models.IdeaVote{}).
		Select("idea_id, COUNT(*) AS count").
		Where("idea_id IN ?", ids).
		Group("idea_id").
		Scan(&countRows).Error; err != nil {
		return nil, err
	}
	counts := make(map[int]int64, len(countRows))
	for _, row := range countRows {
		counts[row.IdeaID] = row.Count
	}

	var votedIDs []int
	if err := s.db.Model(&models.IdeaVote{}).
		Where("user_id = ? AND idea_id IN ?", userID, ids).
		Pluck("idea_id", &votedIDs).Error; err != nil {
		return nil, err
	}
	voted := make(map[int]bool, len(votedIDs))
	for _, id := range votedIDs {
		voted[id] = true
	}

	for _, idea := range ideas {
		enriched = append(enriched, IdeaWithVotes{
			Idea:      idea,
			VoteCount: counts[idea.IdeaID],
			HasVoted:  voted[idea.IdeaID],
		})
	}
	return enriched, nil
}

func (s *VoteService) countForIdea(ideaID int) (int64, error) {
	var count int64
	err := s.db.Model(&models.IdeaVote{}).
		Where("idea_id = ?", ideaID).
		Count(&count).Error
	return count, err
}
