package services

import "idea-management-api/models"

// Actor is the authenticated identity attached to a request.
type Actor struct {
	ID    int
	Email string
	Role  string
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// CanViewIdea decides whether the actor may read the idea:
// admins see everything, owners see their own ideas, everyone
// else only sees public ones.
func CanViewIdea(actor Actor, idea models.Idea) bool {
	if actor.IsAdmin() {
		return true
	}
	if idea.SubmitterID == actor.ID {
		return true
	}
	return idea.IsPublic
}

// CanModerateIdea decides whether the actor may perform admin-only
// lifecycle actions (mark under review, evaluate). Ownership grants
// no moderation rights.
func CanModerateIdea(actor Actor, _ models.Idea) bool {
	return actor.IsAdmin()
}
