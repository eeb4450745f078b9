package entities

import "time"

// ActivityStatus represents the kanban column an activity sits in.
//
// Domain notes:
//   - Cancelled activities stay in the table but are excluded from every
//     progress computation, exactly like soft-deleted ones.
//   - Status moves are operator-driven (drag between columns or edit).

type ActivityStatus string

const (
	ActivityStatusPorIniciar ActivityStatus = "por_iniciar"
	ActivityStatusEnProgreso ActivityStatus = "en_progreso"
	ActivityStatusCompletada ActivityStatus = "completada"
	ActivityStatusCancelada  ActivityStatus = "cancelada"
)

// ValidActivityStatus reports whether s is one of the four known statuses.
func ValidActivityStatus(s ActivityStatus) bool {
	switch s {
	case ActivityStatusPorIniciar, ActivityStatusEnProgreso, ActivityStatusCompletada, ActivityStatusCancelada:
		return true
	}
	return false
}

// Activity is a unit of work inside a category.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (category_id-index): category_id
//   - GSI2 (project_id-index): project_id (denormalized for the joined
//     board query)
//
// Activities are never hard-deleted; removal flips Deleted.
type Activity struct {
	ID             string         `json:"id"`
	CategoryID     string         `json:"category_id"`
	ProjectID      string         `json:"project_id"`
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	Status         ActivityStatus `json:"status"`
	Assignee       string         `json:"assignee,omitempty"`
	TentativeStart *time.Time     `json:"tentative_start,omitempty"`
	TentativeEnd   *time.Time     `json:"tentative_end,omitempty"`
	Deleted        bool           `json:"deleted"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Qualifies reports whether the activity counts toward progress and
// status derivation.
func (a Activity) Qualifies() bool {
	return !a.Deleted && a.Status != ActivityStatusCancelada
}
