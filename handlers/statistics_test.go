// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/tor-iv/foe-finder-sub000/models"
	"github.com/tor-iv/foe-finder-sub000/testutil"
)

func TestReadPopulation_GroupsAnswersByUser(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	answered, _ := testutil.CreateTestUser(t, conn, "Answered")
	blank, _ := testutil.CreateTestUser(t, conn, "Blank Sheet")
	answers := []models.Answer{{QuestionID: 7, Value: 2}, {QuestionID: 3, Value: 6}}
	testutil.SubmitTestAnswers(t, conn, answered, answers)
	testutil.SubmitTestAnswers(t, conn, blank, nil)

	pop, err := readPopulation(context.Background(), conn)
	if err != nil {
		t.Fatalf("readPopulation failed: %v", err)
	}

	// A response without answers is still part of the population
	if len(pop.sets) != 2 {
		t.Fatalf("Expected 2 answer sets, got %d: %+v", len(pop.sets), pop.sets)
	}

	var found bool
	for _, set := range pop.sets {
		if len(set) == 0 {
			continue
		}
		found = true
		if !reflect.DeepEqual([]models.Answer(set), answers) {
			t.Errorf("Expected %v in submission order, got %v", answers, set)
		}
	}
	if !found {
		t.Error("Expected one non-empty answer set")
	}

	again, err := readPopulation(context.Background(), conn)
	if err != nil {
		t.Fatalf("readPopulation failed: %v", err)
	}
	if again.inputsHash != pop.inputsHash {
		t.Error("Expected inputs hash to be stable across reads")
	}
}

func TestRefreshStatistics_PrunesOldSnapshots(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cat := testCatalog()
	ctx := context.Background()

	userID, _ := testutil.CreateTestUser(t, conn, "Steady")
	testutil.SubmitTestAnswers(t, conn, userID, testutil.UniformAnswers(2, 5))

	var last models.StatisticsSnapshot
	for i := 0; i < SnapshotRetention+3; i++ {
		snapshot, err := RefreshStatistics(ctx, conn, cat)
		if err != nil {
			t.Fatalf("RefreshStatistics #%d failed: %v", i, err)
		}
		last = snapshot
	}

	if got := testutil.CountRows(t, conn, "statistics_snapshot"); got != SnapshotRetention {
		t.Errorf("Expected %d snapshots kept, got %d", SnapshotRetention, got)
	}

	latest, err := LatestStatistics(ctx, conn, cat)
	if err != nil {
		t.Fatalf("LatestStatistics failed: %v", err)
	}
	if latest.ID != last.ID {
		t.Errorf("Expected newest snapshot %s to survive pruning, got %s", last.ID, latest.ID)
	}
}

func TestUpdateDerived_CancelledRequest(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cat := testCatalog()
	h := NewResponsesHandler(conn, cat, testutil.GetTestConfig())

	userID, _ := testutil.CreateTestUser(t, conn, "Hung Up")
	answers := testutil.UniformAnswers(30, 4)
	testutil.SubmitTestAnswers(t, conn, userID, answers)

	// The client is gone by the time the submission has committed
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	neighborhood := h.updateDerived(ctx, userID, answers, time.Now().UTC())
	if neighborhood.ID != "upper-east-side" {
		t.Errorf("Expected upper-east-side, got %s", neighborhood.ID)
	}

	var cached string
	err := conn.QueryRow(`SELECT neighborhood_id FROM user_neighborhood WHERE user_id = ?`, userID).Scan(&cached)
	if err != nil {
		t.Fatalf("Expected neighborhood to be cached: %v", err)
	}
	if cached != neighborhood.ID {
		t.Errorf("Expected cached %s, got %s", neighborhood.ID, cached)
	}

	if got := testutil.CountRows(t, conn, "statistics_snapshot"); got != 1 {
		t.Fatalf("Expected the refresh to store a snapshot, got %d", got)
	}
	latest, err := LatestStatistics(context.Background(), conn, cat)
	if err != nil {
		t.Fatalf("LatestStatistics failed: %v", err)
	}
	if latest.ResponseCount != 1 {
		t.Errorf("Expected the snapshot to include the new response, got %d", latest.ResponseCount)
	}
}
