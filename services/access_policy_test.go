package services

import (
	"testing"

	"idea-management-api/models"
)

func TestCanViewIdea(t *testing.T) {
	admin := Actor{ID: 1, Role: models.RoleAdmin}
	owner := Actor{ID: 2, Role: models.RoleSubmitter}
	stranger := Actor{ID: 3, Role: models.RoleSubmitter}

	privateIdea := models.Idea{IdeaID: 10, SubmitterID: 2, IsPublic: false}
	publicIdea := models.Idea{IdeaID: 11, SubmitterID: 2, IsPublic: true}

	cases := []struct {
		name  string
		actor Actor
		idea  models.Idea
		want  bool
	}{
		{"admin sees private idea", admin, privateIdea, true},
		{"admin sees public idea", admin, publicIdea, true},
		{"owner sees own private idea", owner, privateIdea, true},
		{"owner sees own public idea", owner, publicIdea, true},
		{"stranger denied private idea", stranger, privateIdea, false},
		{"stranger sees public idea", stranger, publicIdea, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanViewIdea(tc.actor, tc.idea); got != tc.want {
				t.Fatalf("CanViewIdea = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCanModerateIdeaIgnoresOwnership(t *testing.T) {
	idea := models.Idea{IdeaID: 10, SubmitterID: 2}

	if !CanModerateIdea(Actor{ID: 1, Role: models.RoleAdmin}, idea) {
		t.Fatal("admin should be allowed to moderate")
	}
	if CanModerateIdea(Actor{ID: 2, Role: models.RoleSubmitter}, idea) {
		t.Fatal("owner must not gain moderation rights on their own idea")
	}
	if CanModerateIdea(Actor{ID: 3, Role: models.RoleSubmitter}, idea) {
		t.Fatal("submitter must not be allowed to moderate")
	}
}
