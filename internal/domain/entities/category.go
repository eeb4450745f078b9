package entities

import "time"

// CategoryStatus is derived from a category's activities. It is never
// stored; repositories persist only the category row and the derivation
// runs on every read so stored and derived truth cannot drift.

type CategoryStatus string

const (
	CategoryStatusPendiente  CategoryStatus = "pendiente"
	CategoryStatusEnProgreso CategoryStatus = "en_progreso"
	CategoryStatusCompletada CategoryStatus = "completada"
)

// Category is a named grouping of activities within a project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// Display order is by ID, which is assigned monotonically enough for
// the board (UUIDv7-style ordering is not required; the board sorts by
// CreatedAt then ID).
type Category struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Activities  []Activity `json:"activities,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
