package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"idea-management-api/models"
)

// MailSender delivers a decision mail; config.SendMail satisfies it.
type MailSender func(to []string, subject, html string) error

// EvaluationService records admin decisions. An evaluation is an upsert keyed
// by idea: re-evaluating overwrites the previous row and the idea status with
// it (last writer wins, no transition guard).
type EvaluationService struct {
	db            *gorm.DB
	notifications *NotificationService
	audit         *AuditService
	sendMail      MailSender
}

func NewEvaluationService(db *gorm.DB, notifications *NotificationService, audit *AuditService, sendMail MailSender) *EvaluationService {
	return &EvaluationService{db: db, notifications: notifications, audit: audit, sendMail: sendMail}
}

// EvaluationResult pairs the updated idea with its evaluation row.
type EvaluationResult struct {
	Idea       models.Idea       `json:"idea"`
	Evaluation models.Evaluation `json:"evaluation"`
}

// Evaluate validates the decision, upserts the evaluation, and syncs the idea
// status to match. Side effects (submitter notification, decision mail,
// activity entry, history entry) are best-effort and never abort the write.
func (s *EvaluationService) Evaluate(actor Actor, ideaID int, decision, comment string) (*EvaluationResult, error) {
	if !models.IsValidDecision(decision) {
		return nil, ErrValidation(fmt.Sprintf("Decision must be one of: %s, %s.", models.DecisionAccepted, models.DecisionRejected))
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, ErrValidation("A comment is required for every evaluation.")
	}

	var idea models.Idea
	err := s.db.Model(&models.Idea{}).
		Select("ideas.*, users.email AS submitter_email").
		Joins("JOIN users ON users.user_id = ideas.submitter_id").
		Where("ideas.idea_id = ?", ideaID).
		First(&idea).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound("Idea not found.")
	}
	if err != nil {
		return nil, err
	}

	// The UI hides the form for own ideas; the service owns the real guard.
	if idea.SubmitterID == actor.ID {
		return nil, ErrForbidden("You cannot evaluate your own idea.")
	}

	now := time.Now()
	evaluation := models.Evaluation{
		IdeaID:    ideaID,
		AdminID:   actor.ID,
		Decision:  decision,
		Comment:   comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "idea_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"admin_id", "decision", "comment", "updated_at"}),
	}).Create(&evaluation).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Idea{}).
		Where("idea_id = ?", ideaID).
		Updates(map[string]interface{}{
			"status":     decision,
			"updated_at": now,
		}).Error; err != nil {
		return nil, err
	}
	idea.Status = decision
	idea.UpdatedAt = now
	evaluation.AdminEmail = actor.Email

	message := fmt.Sprintf("Your idea '%s' was %s", idea.Title, decision)
	RunEffects(
		Effect{Name: "notify submitter of decision", Run: func() error {
			return s.notifications.NotifySubmitter(idea, decision, message)
		}},
		Effect{Name: "mail decision to submitter", Run: func() error {
			if s.sendMail == nil || idea.SubmitterEmail == "" {
				return nil
			}
			subject := fmt.Sprintf("Your idea was %s", decision)
			body := fmt.Sprintf("<p>%s.</p><p>Evaluator comment: %s</p>", message, comment)
			return s.sendMail([]string{idea.SubmitterEmail}, subject, body)
		}},
		Effect{Name: "record evaluation activity", Run: func() error {
			return s.audit.RecordActivity(ActivityIdeaEvaluated, actor.Email, idea.Title)
		}},
		Effect{Name: "record status change", Run: func() error {
			return s.audit.RecordStatusChange(ideaID, decision, actor.Email)
		}},
	)

	return &EvaluationResult{Idea: idea, Evaluation: evaluation}, nil
}
