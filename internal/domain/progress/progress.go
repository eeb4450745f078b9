package progress

import (
	"math"

	"conecta_tool/internal/domain/entities"
)

// This package derives category status, category progress, project
// progress and the project status label from activity data. Everything
// here is a pure function of the current activity set; nothing is
// cached or persisted, so recomputation is always the source of truth.

func qualifying(activities []entities.Activity) (total, completed, inProgress int) {
	for _, a := range activities {
		if !a.Qualifies() {
			continue
		}
		total++
		switch a.Status {
		case entities.ActivityStatusCompletada:
			completed++
		case entities.ActivityStatusEnProgreso:
			inProgress++
		}
	}
	return total, completed, inProgress
}

func ratio(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// CategoryProgress returns the category's completion percentage over
// its qualifying activities. Zero qualifying activities yield 0.
func CategoryProgress(c entities.Category) int {
	total, completed, _ := qualifying(c.Activities)
	return ratio(completed, total)
}

// CategoryStatus derives the category's three-state status. A category
// is Completada only when it has at least one qualifying activity and
// all of them are completed.
func CategoryStatus(c entities.Category) entities.CategoryStatus {
	total, completed, inProgress := qualifying(c.Activities)
	switch {
	case total > 0 && completed == total:
		return entities.CategoryStatusCompletada
	case total > 0 && (completed > 0 || inProgress > 0):
		return entities.CategoryStatusEnProgreso
	default:
		return entities.CategoryStatusPendiente
	}
}

// ProjectProgress returns the project-wide completion percentage: the
// ratio of completed to qualifying activities summed across ALL
// categories. This is deliberately a global ratio weighted by activity
// count, not an average of per-category percentages.
func ProjectProgress(categories []entities.Category) int {
	var total, completed int
	for _, c := range categories {
		t, d, _ := qualifying(c.Activities)
		total += t
		completed += d
	}
	return ratio(completed, total)
}

// AnyInProgress reports whether any qualifying activity in any category
// is currently in progress.
func AnyInProgress(categories []entities.Category) bool {
	for _, c := range categories {
		_, _, inProgress := qualifying(c.Activities)
		if inProgress > 0 {
			return true
		}
	}
	return false
}

// ProjectStatusLabel maps progress plus the in-progress flag to the
// client-facing label. An in-progress activity moves a 0% project to
// "En progreso" without moving the percentage.
func ProjectStatusLabel(progress int, anyInProgress bool) entities.ProjectStatusLabel {
	switch {
	case progress == 100:
		return entities.ProjectStatusCompletado
	case progress > 0 || anyInProgress:
		return entities.ProjectStatusEnProgreso
	default:
		return entities.ProjectStatusPorIniciar
	}
}
