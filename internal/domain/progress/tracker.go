package progress

import (
	"errors"

	"conecta_tool/internal/domain/entities"
)

var ErrActivityNotFound = errors.New("activity not found in loaded categories")

// StatusListener receives the recomputed project summary after every
// applied mutation, so a caller holding a cached project list can update
// its row without re-querying the backend.
type StatusListener func(projectID string, progress int, label entities.ProjectStatusLabel)

// Summary is a full recomputation of the loaded board.
type Summary struct {
	ProjectID  string
	Progress   int
	Label      entities.ProjectStatusLabel
	Categories []CategorySummary
}

type CategorySummary struct {
	CategoryID string
	Status     entities.CategoryStatus
	Progress   int
}

// Token identifies one in-flight status change. A later change to the
// same activity supersedes earlier tokens; Confirm/Fail with a
// superseded token are no-ops, so a stale backend response can never
// clobber newer local state.
type Token struct {
	activityID string
	seq        uint64
	prev       entities.ActivityStatus
}

// Tracker holds one project's loaded categories and applies activity
// mutations in place, recomputing aggregates after each one. The
// in-place results are required to match a from-scratch Snapshot;
// Snapshot is the correctness oracle.
//
// The tracker serves a single request at a time; it is not safe for
// concurrent use.
type Tracker struct {
	projectID  string
	categories []entities.Category
	listener   StatusListener
	inflight   map[string]uint64
	seq        uint64
}

func NewTracker(projectID string, categories []entities.Category, listener StatusListener) *Tracker {
	return &Tracker{
		projectID:  projectID,
		categories: categories,
		listener:   listener,
		inflight:   make(map[string]uint64),
	}
}

// BeginStatusChange applies an optimistic in-place status update,
// recomputes and publishes the project summary, and returns a token for
// the caller to resolve once the backend call finishes.
func (t *Tracker) BeginStatusChange(activityID string, status entities.ActivityStatus) (Token, error) {
	a := t.find(activityID)
	if a == nil {
		return Token{}, ErrActivityNotFound
	}

	prev := a.Status
	a.Status = status
	t.seq++
	t.inflight[activityID] = t.seq
	t.notify()
	return Token{activityID: activityID, seq: t.seq, prev: prev}, nil
}

// Confirm marks the in-flight change as accepted by the backend.
// Returns false when the token was superseded by a newer change.
func (t *Tracker) Confirm(tok Token) bool {
	if t.inflight[tok.activityID] != tok.seq {
		return false
	}
	delete(t.inflight, tok.activityID)
	return true
}

// Fail rolls the optimistic update back to the status recorded in the
// token. A superseded token is ignored: the newer change owns the
// activity's local state.
func (t *Tracker) Fail(tok Token) bool {
	if t.inflight[tok.activityID] != tok.seq {
		return false
	}
	delete(t.inflight, tok.activityID)
	if a := t.find(tok.activityID); a != nil {
		a.Status = tok.prev
		t.notify()
	}
	return true
}

// RemoveActivity soft-deletes the activity in place and republishes the
// summary. Callers persist the delete first; removal is not optimistic.
func (t *Tracker) RemoveActivity(activityID string) error {
	a := t.find(activityID)
	if a == nil {
		return ErrActivityNotFound
	}
	a.Deleted = true
	delete(t.inflight, activityID)
	t.notify()
	return nil
}

// Snapshot recomputes every aggregate from the current activity data.
func (t *Tracker) Snapshot() Summary {
	s := Summary{
		ProjectID:  t.projectID,
		Progress:   ProjectProgress(t.categories),
		Categories: make([]CategorySummary, 0, len(t.categories)),
	}
	s.Label = ProjectStatusLabel(s.Progress, AnyInProgress(t.categories))
	for _, c := range t.categories {
		s.Categories = append(s.Categories, CategorySummary{
			CategoryID: c.ID,
			Status:     CategoryStatus(c),
			Progress:   CategoryProgress(c),
		})
	}
	return s
}

// Categories exposes the tracked category set (with any applied
// mutations) for rendering.
func (t *Tracker) Categories() []entities.Category {
	return t.categories
}

func (t *Tracker) find(activityID string) *entities.Activity {
	for ci := range t.categories {
		acts := t.categories[ci].Activities
		for ai := range acts {
			if acts[ai].ID == activityID {
				return &acts[ai]
			}
		}
	}
	return nil
}

func (t *Tracker) notify() {
	if t.listener == nil {
		return
	}
	p := ProjectProgress(t.categories)
	t.listener(t.projectID, p, ProjectStatusLabel(p, AnyInProgress(t.categories)))
}
