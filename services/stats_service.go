package services

import (
	"math"

	"gorm.io/gorm"

	"idea-management-api/models"
)

// StatsService aggregates idea counts for the admin dashboard.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type IdeaStats struct {
	TotalIdeas          int64            `json:"totalIdeas"`
	PendingReview       int64            `json:"pendingReview"`
	AcceptedIdeas       int64            `json:"acceptedIdeas"`
	RejectedIdeas       int64            `json:"rejectedIdeas"`
	AcceptanceRate      int              `json:"acceptanceRate"`
	CategoryCounts      map[string]int64 `json:"categoryCounts"`
	MostPopularCategory string           `json:"mostPopularCategory,omitempty"`
}

// Overview computes the status and category breakdowns in two grouped queries.
func (s *StatsService) Overview() (*IdeaStats, error) {
	type groupRow struct {
		Key   string `gorm:"column:group_key"`
		Count int64  `gorm:"column:count"`
	}

	var statusRows []groupRow
	if err := s.db.Model(&models.Idea{}).
		Select("status AS group_key, COUNT(*) AS count").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, err
	}

	stats := &IdeaStats{CategoryCounts: make(map[string]int64)}
	byStatus := make(map[string]int64, len(statusRows))
	for _, row := range statusRows {
		byStatus[row.Key] = row.Count
		stats.TotalIdeas += row.Count
	}
	stats.AcceptedIdeas = byStatus[models.StatusAccepted]
	stats.RejectedIdeas = byStatus[models.StatusRejected]
	stats.PendingReview = byStatus[models.StatusSubmitted] + byStatus[models.StatusUnderReview]
	if stats.TotalIdeas > 0 {
		stats.AcceptanceRate = int(math.Round(float64(stats.AcceptedIdeas) / float64(stats.TotalIdeas) * 100))
	}

	var categoryRows []groupRow
	if err := s.db.Model(&models.Idea{}).
		Select("category AS group_key, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Scan(&categoryRows).Error; err != nil {
		return nil, err
	}
	for _, row := range categoryRows {
		stats.CategoryCounts[row.Key] = row.Count
	}
	if len(categoryRows) > 0 {
		stats.MostPopularCategory = categoryRows[0].Key
	}

	return stats, nil
}
