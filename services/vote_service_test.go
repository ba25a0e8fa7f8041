package services

import (
	"database/sql/driver"
	"regexp"
	"testing"

	"idea-management-api/models"
)

func TestToggleRejectsPrivateIdea(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `ideas` WHERE idea_id = \\?"),
			args:    []driver.Value{int64(10)},
			columns: []string{"idea_id", "submitter_id", "is_public"},
			rows:    [][]driver.Value{{int64(10), int64(2), false}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewVoteService(db)

	_, err := svc.Toggle(10, 3)
	apiErr, ok := AsAPIError(err)
	if !ok || apiErr.Status != 403 {
		t.Fatalf("expected 403 for private idea, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestToggleReturnsNotFoundForAbsentIdea(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `ideas` WHERE idea_id = \\?"),
			args:    []driver.Value{int64(99)},
			columns: []string{"idea_id", "submitter_id", "is_public"},
			rows:    [][]driver.Value{},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewVoteService(db)

	_, err := svc.Toggle(99, 3)
	apiErr, ok := AsAPIError(err)
	if !ok || apiErr.Status != 404 {
		t.Fatalf("expected 404 for absent idea, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestToggleInsertsWhenNoVoteRemoved(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `ideas` WHERE idea_id = \\?"),
			args:    []driver.Value{int64(10)},
			columns: []string{"idea_id", "submitter_id", "is_public"},
			rows:    [][]driver.Value{{int64(10), int64(2), true}},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("DELETE FROM `idea_votes` WHERE idea_id = \\? AND user_id = \\?"),
			args:    []driver.Value{int64(10), int64(3)},
			result:  scriptedResult{rowsAffected: 0},
		},
		{
			kind:     kindExec,
			pattern:  regexp.MustCompile("INSERT INTO `idea_votes`.*ON DUPLICATE KEY UPDATE"),
			argCount: 3,
			result:   scriptedResult{lastInsertID: 1, rowsAffected: 1},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT count\\(\\*\\) FROM `idea_votes` WHERE idea_id = \\?"),
			args:    []driver.Value{int64(10)},
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(5)}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewVoteService(db)

	info, err := svc.Toggle(10, 3)
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if !info.HasVoted {
		t.Fatal("expected hasVoted=true after inserting a vote")
	}
	if info.VoteCount != 5 {
		t.Fatalf("expected voteCount 5, got %d", info.VoteCount)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestToggleRemovesExistingVote(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `ideas` WHERE idea_id = \\?"),
			args:    []driver.Value{int64(10)},
			columns: []string{"idea_id", "submitter_id", "is_public"},
			rows:    [][]driver.Value{{int64(10), int64(2), true}},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("DELETE FROM `idea_votes` WHERE idea_id = \\? AND user_id = \\?"),
			args:    []driver.Value{int64(10), int64(3)},
			result:  scriptedResult{rowsAffected: 1},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT count\\(\\*\\) FROM `idea_votes` WHERE idea_id = \\?"),
			args:    []driver.Value{int64(10)},
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(4)}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewVoteService(db)

	info, err := svc.Toggle(10, 3)
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if info.HasVoted {
		t.Fatal("expected hasVoted=false after removing the vote")
	}
	if info.VoteCount != 4 {
		t.Fatalf("expected voteCount 4, got %d", info.VoteCount)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEnrichUsesTwoQueriesForAnyBatch(t *testing.T) {
	ideas := []models.Idea{
		{IdeaID: 1, Title: "a"},
		{IdeaID: 2, Title: "b"},
		{IdeaID: 3, Title: "c"},
	}

	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT idea_id, COUNT\\(\\*\\) AS count FROM `idea_votes` WHERE idea_id IN \\(\\?,\\?,\\?\\) GROUP BY"),
			args:    []driver.Value{int64(1), int64(2), int64(3)},
			columns: []string{"idea_id", "count"},
			rows: [][]driver.Value{
				{int64(1), int64(7)},
				{int64(3), int64(2)},
			},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT `idea_id` FROM `idea_votes` WHERE user_id = \\? AND idea_id IN \\(\\?,\\?,\\?\\)"),
			args:    []driver.Value{int64(9), int64(1), int64(2), int64(3)},
			columns: []string{"idea_id"},
			rows:    [][]driver.Value{{int64(3)}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewVoteService(db)

	enriched, err := svc.Enrich(ideas, 9)
	if err != nil {
		t.Fatalf("Enrich returned error: %v", err)
	}
	if len(enriched) != 3 {
		t.Fatalf("expected 3 enriched ideas, got %d", len(enriched))
	}
	if enriched[0].VoteCount != 7 || enriched[0].HasVoted {
		t.Fatalf("unexpected enrichment for idea 1: %+v", enriched[0])
	}
	if enriched[1].VoteCount != 0 || enriched[1].HasVoted {
		t.Fatalf("unexpected enrichment for idea 2: %+v", enriched[1])
	}
	if enriched[2].VoteCount != 2 || !enriched[2].HasVoted {
		t.Fatalf("unexpected enrichment for idea 3: %+v", enriched[2])
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEnrichEmptyBatchSkipsQueries(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewVoteService(db)

	enriched, err := svc.Enrich(nil, 9)
	if err != nil {
		t.Fatalf("Enrich returned error: %v", err)
	}
	if len(enriched) != 0 {
		t.Fatalf("expected empty result, got %d", len(enriched))
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
