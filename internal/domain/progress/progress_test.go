package progress

import (
	"testing"

	"conecta_tool/internal/domain/entities"
)

func act(id string, status entities.ActivityStatus) entities.Activity {
	return entities.Activity{ID: id, Status: status}
}

func deletedAct(id string, status entities.ActivityStatus) entities.Activity {
	a := act(id, status)
	a.Deleted = true
	return a
}

func cat(id string, activities ...entities.Activity) entities.Category {
	return entities.Category{ID: id, Activities: activities}
}

func TestCategoryProgress(t *testing.T) {
	t.Run("empty category", func(t *testing.T) {
		if got := CategoryProgress(cat("c1")); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})

	t.Run("only cancelled and deleted activities", func(t *testing.T) {
		c := cat("c1",
			act("a1", entities.ActivityStatusCancelada),
			deletedAct("a2", entities.ActivityStatusCompletada),
		)
		if got := CategoryProgress(c); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
		if got := CategoryStatus(c); got != entities.CategoryStatusPendiente {
			t.Fatalf("expected pendiente, got %s", got)
		}
	})

	t.Run("all completed", func(t *testing.T) {
		c := cat("c1",
			act("a1", entities.ActivityStatusCompletada),
			act("a2", entities.ActivityStatusCompletada),
		)
		if got := CategoryProgress(c); got != 100 {
			t.Fatalf("expected 100, got %d", got)
		}
		if got := CategoryStatus(c); got != entities.CategoryStatusCompletada {
			t.Fatalf("expected completada, got %s", got)
		}
	})

	t.Run("rounding", func(t *testing.T) {
		c := cat("c1",
			act("a1", entities.ActivityStatusCompletada),
			act("a2", entities.ActivityStatusPorIniciar),
			act("a3", entities.ActivityStatusPorIniciar),
		)
		// 1 of 3 -> 33.33 -> 33
		if got := CategoryProgress(c); got != 33 {
			t.Fatalf("expected 33, got %d", got)
		}
	})
}

func TestCategoryStatus(t *testing.T) {
	cases := []struct {
		name     string
		category entities.Category
		want     entities.CategoryStatus
	}{
		{
			name:     "no activities",
			category: cat("c1"),
			want:     entities.CategoryStatusPendiente,
		},
		{
			name:     "all pending",
			category: cat("c1", act("a1", entities.ActivityStatusPorIniciar)),
			want:     entities.CategoryStatusPendiente,
		},
		{
			name:     "one in progress",
			category: cat("c1", act("a1", entities.ActivityStatusPorIniciar), act("a2", entities.ActivityStatusEnProgreso)),
			want:     entities.CategoryStatusEnProgreso,
		},
		{
			name:     "some completed",
			category: cat("c1", act("a1", entities.ActivityStatusCompletada), act("a2", entities.ActivityStatusPorIniciar)),
			want:     entities.CategoryStatusEnProgreso,
		},
		{
			name:     "all completed",
			category: cat("c1", act("a1", entities.ActivityStatusCompletada)),
			want:     entities.CategoryStatusCompletada,
		},
		{
			name:     "completed plus cancelled still completed",
			category: cat("c1", act("a1", entities.ActivityStatusCompletada), act("a2", entities.ActivityStatusCancelada)),
			want:     entities.CategoryStatusCompletada,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CategoryStatus(tc.category); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestProjectProgressIsGlobalRatio(t *testing.T) {
	// One category 1/1 completed, another 0/10: the project ratio is
	// 1/11 = 9%, not the 50% a per-category average would give.
	a := cat("a", act("a1", entities.ActivityStatusCompletada))
	pending := make([]entities.Activity, 0, 10)
	for i := 0; i < 10; i++ {
		pending = append(pending, act(string(rune('b'+i)), entities.ActivityStatusPorIniciar))
	}
	b := cat("b", pending...)

	if got := ProjectProgress([]entities.Category{a, b}); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
}

func TestProjectProgressEmpty(t *testing.T) {
	if got := ProjectProgress(nil); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := ProjectProgress([]entities.Category{cat("c1")}); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestProjectStatusLabel(t *testing.T) {
	cases := []struct {
		name          string
		progress      int
		anyInProgress bool
		want          entities.ProjectStatusLabel
	}{
		{"complete", 100, false, entities.ProjectStatusCompletado},
		{"half done", 50, false, entities.ProjectStatusEnProgreso},
		{"zero with in-progress activity", 0, true, entities.ProjectStatusEnProgreso},
		{"zero without activity", 0, false, entities.ProjectStatusPorIniciar},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ProjectStatusLabel(tc.progress, tc.anyInProgress); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestCancelledAndDeletedNeverAffectResults(t *testing.T) {
	base := cat("c1",
		act("a1", entities.ActivityStatusCompletada),
		act("a2", entities.ActivityStatusPorIniciar),
	)
	wantProgress := CategoryProgress(base)
	wantStatus := CategoryStatus(base)

	noisy := base
	noisy.Activities = append([]entities.Activity{}, base.Activities...)
	for i := 0; i < 5; i++ {
		noisy.Activities = append(noisy.Activities,
			act("x", entities.ActivityStatusCancelada),
			deletedAct("y", entities.ActivityStatusCompletada),
			deletedAct("z", entities.ActivityStatusEnProgreso),
		)
	}

	if got := CategoryProgress(noisy); got != wantProgress {
		t.Fatalf("progress changed: expected %d, got %d", wantProgress, got)
	}
	if got := CategoryStatus(noisy); got != wantStatus {
		t.Fatalf("status changed: expected %s, got %s", wantStatus, got)
	}

	// A cancelled in-progress activity must not flip the project label.
	cats := []entities.Category{cat("c2", act("a1", entities.ActivityStatusPorIniciar), act("a2", entities.ActivityStatusCancelada))}
	if AnyInProgress(cats) {
		t.Fatalf("cancelled activity counted as in progress")
	}
	deletedInProgress := deletedAct("a3", entities.ActivityStatusEnProgreso)
	cats[0].Activities = append(cats[0].Activities, deletedInProgress)
	if AnyInProgress(cats) {
		t.Fatalf("deleted activity counted as in progress")
	}
}
