package progress

import (
	"reflect"
	"testing"

	"conecta_tool/internal/domain/entities"
)

func newBoard() []entities.Category {
	return []entities.Category{
		cat("c1",
			act("a1", entities.ActivityStatusPorIniciar),
			act("a2", entities.ActivityStatusPorIniciar),
		),
		cat("c2",
			act("a3", entities.ActivityStatusCompletada),
		),
	}
}

func TestTrackerBeginStatusChange(t *testing.T) {
	t.Run("unknown activity", func(t *testing.T) {
		tr := NewTracker("p1", newBoard(), nil)
		if _, err := tr.BeginStatusChange("nope", entities.ActivityStatusCompletada); err != ErrActivityNotFound {
			t.Fatalf("expected ErrActivityNotFound, got %v", err)
		}
	})

	t.Run("applies optimistically and notifies", func(t *testing.T) {
		var gotProject string
		var gotProgress int
		var gotLabel entities.ProjectStatusLabel
		tr := NewTracker("p1", newBoard(), func(projectID string, progress int, label entities.ProjectStatusLabel) {
			gotProject, gotProgress, gotLabel = projectID, progress, label
		})

		tok, err := tr.BeginStatusChange("a1", entities.ActivityStatusCompletada)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 2 of 3 completed -> 67%
		if gotProject != "p1" || gotProgress != 67 || gotLabel != entities.ProjectStatusEnProgreso {
			t.Fatalf("unexpected notification: %s %d %s", gotProject, gotProgress, gotLabel)
		}
		if !tr.Confirm(tok) {
			t.Fatalf("expected confirm to apply")
		}
	})
}

func TestTrackerFailRevertsAndNotifies(t *testing.T) {
	notifications := 0
	tr := NewTracker("p1", newBoard(), func(string, int, entities.ProjectStatusLabel) {
		notifications++
	})

	tok, err := tr.BeginStatusChange("a1", entities.ActivityStatusCompletada)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tr.Fail(tok) {
		t.Fatalf("expected fail to apply")
	}
	if notifications != 2 {
		t.Fatalf("expected 2 notifications, got %d", notifications)
	}
	if got := tr.Categories()[0].Activities[0].Status; got != entities.ActivityStatusPorIniciar {
		t.Fatalf("expected revert to por_iniciar, got %s", got)
	}
}

func TestTrackerStaleTokenIgnored(t *testing.T) {
	tr := NewTracker("p1", newBoard(), nil)

	first, err := tr.BeginStatusChange("a1", entities.ActivityStatusEnProgreso)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := tr.BeginStatusChange("a1", entities.ActivityStatusCompletada)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The slower first call resolving late must not touch local state.
	if tr.Fail(first) {
		t.Fatalf("stale fail should be a no-op")
	}
	if got := tr.Categories()[0].Activities[0].Status; got != entities.ActivityStatusCompletada {
		t.Fatalf("stale fail clobbered newer state: %s", got)
	}
	if tr.Confirm(first) {
		t.Fatalf("stale confirm should be a no-op")
	}
	if !tr.Confirm(second) {
		t.Fatalf("latest confirm should apply")
	}
}

func TestTrackerRemoveActivity(t *testing.T) {
	tr := NewTracker("p1", newBoard(), nil)

	if err := tr.RemoveActivity("nope"); err != ErrActivityNotFound {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}

	if err := tr.RemoveActivity("a1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tr.RemoveActivity("a2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only a3 (completed) qualifies now.
	s := tr.Snapshot()
	if s.Progress != 100 || s.Label != entities.ProjectStatusCompletado {
		t.Fatalf("expected 100/completado, got %d/%s", s.Progress, s.Label)
	}
}

func TestTrackerInPlaceMatchesSnapshot(t *testing.T) {
	// Apply a run of mutations and check after each one that the tracked
	// state, recomputed from scratch, matches the notified summary.
	var last Summary
	tr := NewTracker("p1", newBoard(), nil)
	tr.listener = func(projectID string, progress int, label entities.ProjectStatusLabel) {
		last = Summary{ProjectID: projectID, Progress: progress, Label: label}
	}

	check := func(step string) {
		t.Helper()
		s := tr.Snapshot()
		if last.ProjectID != s.ProjectID || last.Progress != s.Progress || last.Label != s.Label {
			t.Fatalf("%s: notified %+v, snapshot %+v", step, last, s)
		}
	}

	tok1, _ := tr.BeginStatusChange("a1", entities.ActivityStatusEnProgreso)
	check("begin a1")
	tr.Confirm(tok1)
	check("confirm a1")

	tok2, _ := tr.BeginStatusChange("a2", entities.ActivityStatusCompletada)
	check("begin a2")
	tr.Fail(tok2)
	check("fail a2")

	if err := tr.RemoveActivity("a3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	check("remove a3")
}

func TestTrackerSnapshotCategories(t *testing.T) {
	tr := NewTracker("p1", newBoard(), nil)
	got := tr.Snapshot().Categories
	want := []CategorySummary{
		{CategoryID: "c1", Status: entities.CategoryStatusPendiente, Progress: 0},
		{CategoryID: "c2", Status: entities.CategoryStatusCompletada, Progress: 100},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
