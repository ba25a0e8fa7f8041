package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"idea-management-api/models"
)

// IdeaService handles idea submission, visibility-scoped reads, and the
// permissive under-review transition. Lifecycle side effects run best-effort
// after the primary write.
type IdeaService struct {
	db            *gorm.DB
	notifications *NotificationService
	audit         *AuditService
}

func NewIdeaService(db *gorm.DB, notifications *NotificationService, audit *AuditService) *IdeaService {
	return &IdeaService{db: db, notifications: notifications, audit: audit}
}

// AttachmentInput carries metadata for a file the controller already stored.
type AttachmentInput struct {
	Filename   string
	StoredName string
	MimeType   string
	Size       int64
}

// SubmitIdeaInput is the payload for a new idea.
type SubmitIdeaInput struct {
	Title       string
	Description string
	Category    string
	IsPublic    bool
	Attachment  *AttachmentInput
}

// IdeaDetail is a full single-idea view. VoteCount/HasVoted are filled by the
// caller from the vote ledger.
type IdeaDetail struct {
	models.Idea
	Attachments []models.IdeaAttachment    `json:"attachments"`
	Evaluation  *models.Evaluation         `json:"evaluation"`
	History     []models.IdeaStatusHistory `json:"status_history"`
	VoteCount   int64                      `json:"voteCount"`
	HasVoted    bool                       `json:"hasVoted"`
}

// Submit validates and creates a new idea, then fans out the submission side
// effects (admin notifications, activity entry, initial history entry).
func (s *IdeaService) Submit(actor Actor, input SubmitIdeaInput) (*IdeaDetail, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)

	if title == "" {
		return nil, ErrValidation("Title is required.")
	}
	if description == "" {
		return nil, ErrValidation("Description is required.")
	}
	if !models.IsValidCategory(input.Category) {
		return nil, ErrValidation(fmt.Sprintf("Category must be one of: %s.", strings.Join(models.ValidCategories, ", ")))
	}

	now := time.Now()
	idea := models.Idea{
		Title:       title,
		Description: description,
		Category:    input.Category,
		Status:      models.StatusSubmitted,
		SubmitterID: actor.ID,
		IsPublic:    input.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.db.Create(&idea).Error; err != nil {
		return nil, err
	}

	attachments := make([]models.IdeaAttachment, 0, 1)
	if input.Attachment != nil {
		attachment := models.IdeaAttachment{
			IdeaID:     idea.IdeaID,
			Filename:   input.Attachment.Filename,
			StoredName: input.Attachment.StoredName,
			MimeType:   input.Attachment.MimeType,
			Size:       input.Attachment.Size,
			CreatedAt:  now,
		}
		if err := s.db.Create(&attachment).Error; err != nil {
			return nil, err
		}
		attachments = append(attachments, attachment)
	}

	idea.SubmitterEmail = actor.Email

	RunEffects(
		Effect{Name: "notify admins of submission", Run: func() error {
			return s.notifications.NotifyAdminsOfSubmission(idea)
		}},
		Effect{Name: "record submission activity", Run: func() error {
			return s.audit.RecordActivity(ActivityIdeaSubmitted, actor.Email, idea.Title)
		}},
		Effect{Name: "record initial status", Run: func() error {
			return s.audit.RecordStatusChange(idea.IdeaID, models.StatusSubmitted, actor.Email)
		}},
	)

	return &IdeaDetail{Idea: idea, Attachments: attachments, History: nil}, nil
}

// List returns the ideas visible to the actor, newest first: everything for
// admins, own plus public for everyone else.
func (s *IdeaService) List(actor Actor) ([]models.Idea, error) {
	query := s.ideaQuery()
	if !actor.IsAdmin() {
		query = query.Where("ideas.submitter_id = ? OR ideas.is_public = ?", actor.ID, true)
	}

	ideas := make([]models.Idea, 0)
	err := query.Order("ideas.created_at DESC").Find(&ideas).Error
	return ideas, err
}

// Detail returns one idea with attachments, evaluation (nil when absent), and
// status history, enforcing the view policy.
func (s *IdeaService) Detail(ideaID int, actor Actor) (*IdeaDetail, error) {
	idea, err := s.findByID(ideaID)
	if err != nil {
		return nil, err
	}
	if !CanViewIdea(actor, *idea) {
		return nil, ErrForbidden("You do not have permission to view this idea.")
	}

	detail := &IdeaDetail{Idea: *idea}

	detail.Attachments = make([]models.IdeaAttachment, 0)
	if err := s.db.Where("idea_id = ?", ideaID).Find(&detail.Attachments).Error; err != nil {
		return nil, err
	}

	var evaluation models.Evaluation
	err = s.db.Model(&models.Evaluation{}).
		Select("evaluations.*, users.email AS admin_email").
		Joins("JOIN users ON users.user_id = evaluations.admin_id").
		Where("evaluations.idea_id = ?", ideaID).
		First(&evaluation).Error
	switch {
	case err == nil:
		detail.Evaluation = &evaluation
	case errors.Is(err, gorm.ErrRecordNotFound):
		detail.Evaluation = nil
	default:
		return nil, err
	}

	detail.History, err = s.audit.HistoryForIdea(ideaID)
	if err != nil {
		return nil, err
	}

	return detail, nil
}

// MarkUnderReview sets the idea's status to under_review. The transition is
// deliberately permissive: existence is the only precondition, whatever the
// current status.
func (s *IdeaService) MarkUnderReview(ideaID int, actor Actor) (*models.Idea, error) {
	idea, err := s.findByID(ideaID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Idea{}).
		Where("idea_id = ?", ideaID).
		Updates(map[string]interface{}{
			"status":     models.StatusUnderReview,
			"updated_at": time.Now(),
		}).Error; err != nil {
		return nil, err
	}
	idea.Status = models.StatusUnderReview

	RunEffects(
		Effect{Name: "notify submitter of review", Run: func() error {
			message := fmt.Sprintf("Your idea '%s' is under review", idea.Title)
			return s.notifications.NotifySubmitter(*idea, models.NotificationUnderReview, message)
		}},
		Effect{Name: "record review activity", Run: func() error {
			return s.audit.RecordActivity(ActivityIdeaUnderReview, actor.Email, idea.Title)
		}},
		Effect{Name: "record status change", Run: func() error {
			return s.audit.RecordStatusChange(ideaID, models.StatusUnderReview, actor.Email)
		}},
	)

	return idea, nil
}

func (s *IdeaService) ideaQuery() *gorm.DB {
	return s.db.Model(&models.Idea{}).
		Select("ideas.*, users.email AS submitter_email").
		Joins("JOIN users ON users.user_id = ideas.submitter_id")
}

func (s *IdeaService) findByID(ideaID int) (*models.Idea, error) {
	var idea models.Idea
	err := s.ideaQuery().Where("ideas.idea_id = ?", ideaID).First(&idea).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound("Idea not found.")
	}
	if err != nil {
		return nil, err
	}
	return &idea, nil
}
